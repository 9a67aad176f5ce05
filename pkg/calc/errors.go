package calc

import (
	"errors"
	"fmt"
)

// DivisionByZeroMessage is the exact text a zero-divisor failure carries.
// Every surface must preserve it verbatim.
const DivisionByZeroMessage = "Division by zero is not allowed"

// CalcError represents errors in calculation operations.
type CalcError struct {
	Kind    ErrorKind
	Message string
	Op      Op
	Cause   error
}

func (e *CalcError) Error() string {
	return e.Message
}

func (e *CalcError) Unwrap() error {
	return e.Cause
}

type ErrorKind int

const (
	InvalidArgument ErrorKind = iota
	UnknownOperation
)

// Code returns the machine-readable code surfaces report for the kind.
func (k ErrorKind) Code() string {
	switch k {
	case InvalidArgument:
		return "invalid_argument"
	case UnknownOperation:
		return "unknown_operation"
	default:
		return "unknown"
	}
}

// ErrDivisionByZero is the error Divide returns for a zero divisor.
var ErrDivisionByZero = &CalcError{
	Kind:    InvalidArgument,
	Op:      OpDivide,
	Message: DivisionByZeroMessage,
}

func unknownOp(name string) *CalcError {
	return &CalcError{
		Kind:    UnknownOperation,
		Message: fmt.Sprintf("unknown operation %q", name),
	}
}

// KindOf extracts the ErrorKind from err. The second return is false when
// err did not originate in this package.
func KindOf(err error) (ErrorKind, bool) {
	var ce *CalcError
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return 0, false
}

// CodeOf returns the machine-readable code for err, or "error" for errors
// that did not originate in this package.
func CodeOf(err error) string {
	if kind, ok := KindOf(err); ok {
		return kind.Code()
	}
	return "error"
}
