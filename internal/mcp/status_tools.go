package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// CalculatorStatusInput has no fields; the tool takes no arguments.
type CalculatorStatusInput struct{}

// CalculatorStatusOutput reports server diagnostics.
type CalculatorStatusOutput struct {
	Version       string           `json:"version"`
	UptimeSeconds float64          `json:"uptime_seconds"`
	Precision     int              `json:"precision"`
	Calls         map[string]int64 `json:"calls"`
}

func registerStatusTools(s *mcpsdk.Server, state *MCPServer) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "calculator_status",
		Description: "Return server diagnostics: version, uptime, configured precision, and per-operation call counts.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in CalculatorStatusInput) (*mcpsdk.CallToolResult, any, error) {
		return textResult(CalculatorStatusOutput{
			Version:       Version,
			UptimeSeconds: state.Uptime().Seconds(),
			Precision:     state.Config().Precision,
			Calls:         state.CallCounts(),
		}), nil, nil
	})
}
