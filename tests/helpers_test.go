package tests_test

import (
	"context"
	"encoding/json"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/tests/mcptest"
)

// callTool invokes a tool and returns the raw result.
func callTool(ctx context.Context, t *testing.T, sess *mcptest.Session, name string, args map[string]any) *mcpsdk.CallToolResult {
	t.Helper()

	result, err := sess.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	return result
}

// resultText concatenates the text content blocks of a result.
func resultText(t *testing.T, result *mcpsdk.CallToolResult) string {
	t.Helper()

	var text string
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			text += tc.Text
		}
	}
	return text
}

// decodeResult unmarshals the result's text content into v.
func decodeResult(t *testing.T, result *mcpsdk.CallToolResult, v any) {
	t.Helper()

	text := resultText(t, result)
	if err := json.Unmarshal([]byte(text), v); err != nil {
		t.Fatalf("decoding tool result %q: %v", text, err)
	}
}

// requireSuccess fails the test when the result signals an error.
func requireSuccess(t *testing.T, tool string, result *mcpsdk.CallToolResult) {
	t.Helper()

	if result.IsError {
		t.Fatalf("CallTool(%s) returned error: %s", tool, resultText(t, result))
	}
}
