package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// OutputJSON outputs data as JSON
func OutputJSON(data interface{}) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}

// ParseOperands parses the two positional operands of an arithmetic command.
func ParseOperands(args []string) (a, b float64, err error) {
	a, err = strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid operand %q", args[0])
	}
	b, err = strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid operand %q", args[1])
	}
	return a, b, nil
}

// FailUsage reports a usage error and exits with code 2.
func FailUsage(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// Fail reports an operation error and exits with code 1.
func Fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
