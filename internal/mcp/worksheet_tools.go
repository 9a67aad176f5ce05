package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/mamaar/gocalc/pkg/worksheet"
)

// EvaluateWorksheetInput carries the worksheet entries to evaluate.
type EvaluateWorksheetInput struct {
	Entries []worksheet.Entry `json:"entries" jsonschema:"operations to evaluate, in order"`
}

// EvaluateWorksheetOutput is the per-entry outcomes plus a summary.
type EvaluateWorksheetOutput struct {
	Results   []worksheet.Outcome `json:"results"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
}

func registerWorksheetTools(s *mcpsdk.Server, state *MCPServer) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "evaluate_worksheet",
		Description: "Evaluate a batch of arithmetic operations in order. Entry failures are isolated: each failing entry carries its error and the rest still evaluate.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in EvaluateWorksheetInput) (*mcpsdk.CallToolResult, any, error) {
		if len(in.Entries) == 0 {
			return errResult(fmt.Errorf("worksheet has no entries")), nil, nil
		}
		maxEntries := state.Config().Limits.MaxWorksheetEntries
		if len(in.Entries) > maxEntries {
			return errResult(fmt.Errorf("worksheet has %d entries, limit is %d", len(in.Entries), maxEntries)), nil, nil
		}

		ws := &worksheet.Worksheet{Entries: in.Entries}
		outcomes := ws.Evaluate()
		succeeded, failed := worksheet.Summary(outcomes)

		state.logger.Debug("worksheet evaluated",
			zap.Int("entries", len(in.Entries)),
			zap.Int("failed", failed),
		)
		return textResult(EvaluateWorksheetOutput{
			Results:   outcomes,
			Succeeded: succeeded,
			Failed:    failed,
		}), nil, nil
	})
}
