// Package calc provides the four elementary arithmetic operations over
// float64 pairs, plus name-based dispatch for the gocalc tool surfaces.
//
// Every operation is a pure function of its two operands: no shared state,
// no locks, no I/O. Divide is the only operation that can fail, and it fails
// only on a zero divisor.
package calc

import (
	"strconv"
	"strings"
)

// Op identifies an arithmetic operation by its canonical name.
type Op string

const (
	OpAdd      Op = "add"
	OpSubtract Op = "subtract"
	OpMultiply Op = "multiply"
	OpDivide   Op = "divide"
)

// Ops returns the supported operations in stable order.
func Ops() []Op {
	return []Op{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// Add returns a + b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a - b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns a * b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a / b. A zero divisor (negative zero included) fails with
// ErrDivisionByZero before any computation happens.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// ParseOp resolves a user-supplied operation name to its canonical Op.
// Matching is case-insensitive and accepts the aliases sub, mul, and div.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add":
		return OpAdd, nil
	case "subtract", "sub":
		return OpSubtract, nil
	case "multiply", "mul":
		return OpMultiply, nil
	case "divide", "div":
		return OpDivide, nil
	default:
		return "", unknownOp(s)
	}
}

// Aliases returns the accepted short names for op, if any.
func Aliases(op Op) []string {
	switch op {
	case OpSubtract:
		return []string{"sub"}
	case OpMultiply:
		return []string{"mul"}
	case OpDivide:
		return []string{"div"}
	default:
		return nil
	}
}

// Apply evaluates op over (a, b). Callers that accept operation names from
// the outside should go through ParseOp first; Apply rejects anything not in
// the canonical set.
func Apply(op Op, a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return Add(a, b), nil
	case OpSubtract:
		return Subtract(a, b), nil
	case OpMultiply:
		return Multiply(a, b), nil
	case OpDivide:
		return Divide(a, b)
	default:
		return 0, unknownOp(string(op))
	}
}

// Format renders v for text surfaces. A negative precision selects the
// shortest representation that round-trips; otherwise fixed decimals.
// JSON surfaces marshal the raw float64 and never call this.
func Format(v float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
