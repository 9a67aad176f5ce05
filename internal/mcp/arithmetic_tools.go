package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/mamaar/gocalc/pkg/calc"
)

// ArithmeticInput is the shared input shape of the four arithmetic tools.
type ArithmeticInput struct {
	A float64 `json:"a" jsonschema:"left operand"`
	B float64 `json:"b" jsonschema:"right operand"`
}

// ArithmeticOutput echoes the operation and operands alongside the result.
type ArithmeticOutput struct {
	Op     string  `json:"op"`
	A      float64 `json:"a"`
	B      float64 `json:"b"`
	Result float64 `json:"result"`
}

var arithmeticDescriptions = map[calc.Op]string{
	calc.OpAdd:      "Add two numbers and return their sum.",
	calc.OpSubtract: "Subtract the second number from the first and return the difference.",
	calc.OpMultiply: "Multiply two numbers and return their product.",
	calc.OpDivide:   "Divide the first number by the second. Fails when the divisor is zero.",
}

func registerArithmeticTools(s *mcpsdk.Server, state *MCPServer) {
	for _, op := range calc.Ops() {
		mcpsdk.AddTool(s, &mcpsdk.Tool{
			Name:        string(op),
			Description: arithmeticDescriptions[op],
		}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in ArithmeticInput) (*mcpsdk.CallToolResult, any, error) {
			state.RecordCall(op)

			result, err := calc.Apply(op, in.A, in.B)
			if err != nil {
				state.logger.Debug("tool call failed",
					zap.String("tool", string(op)),
					zap.Error(err),
				)
				return errResult(err), nil, nil
			}
			return textResult(ArithmeticOutput{
				Op:     string(op),
				A:      in.A,
				B:      in.B,
				Result: result,
			}), nil, nil
		})
	}
}
