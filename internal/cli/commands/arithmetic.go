package commands

import (
	"fmt"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/pkg/calc"
)

// CalcResult is the JSON shape of a single arithmetic result.
type CalcResult struct {
	Op     string  `json:"op"`
	A      float64 `json:"a"`
	B      float64 `json:"b"`
	Result float64 `json:"result"`
}

// AddCommand handles the add command
func AddCommand(args []string) {
	runArithmetic(calc.OpAdd, args)
}

// SubtractCommand handles the subtract command
func SubtractCommand(args []string) {
	runArithmetic(calc.OpSubtract, args)
}

// MultiplyCommand handles the multiply command
func MultiplyCommand(args []string) {
	runArithmetic(calc.OpMultiply, args)
}

// DivideCommand handles the divide command
func DivideCommand(args []string) {
	runArithmetic(calc.OpDivide, args)
}

func runArithmetic(op calc.Op, args []string) {
	if len(args) != 2 {
		FailUsage("Usage: gocalc %s <a> <b>", op)
	}

	a, b, err := ParseOperands(args)
	if err != nil {
		FailUsage("%v", err)
	}

	result, err := calc.Apply(op, a, b)
	if err != nil {
		Fail(err)
	}

	if *cli.GlobalFlags.Json {
		OutputJSON(CalcResult{Op: string(op), A: a, B: b, Result: result})
		return
	}
	fmt.Println(calc.Format(result, cli.Precision()))
}
