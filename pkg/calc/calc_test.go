package calc

import (
	"errors"
	"math"
	"testing"
)

// sampleValues is a spread of finite operands reused by the property tests.
var sampleValues = []float64{-1e6, -273.15, -2, -0.5, 0, 0.1, 0.5, 1, 2, 3, 42, 1e6}

func TestAdd(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"positive operands", 2, 3, 5},
		{"negative left operand", -2, 3, 1},
		{"both negative", -2, -3, -5},
		{"zero right operand", 7.5, 0, 7.5},
		{"fractional operands", 1.5, 2.25, 3.75},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Add(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Expected Add(%v, %v) to be %v, got %v", tc.a, tc.b, tc.expected, result)
			}
		})
	}
}

func TestSubtract(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"positive operands", 5, 3, 2},
		{"result negative", 3, 5, -2},
		{"zero right operand", 4.5, 0, 4.5},
		{"both negative", -2, -3, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Subtract(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Expected Subtract(%v, %v) to be %v, got %v", tc.a, tc.b, tc.expected, result)
			}
		})
	}
}

func TestMultiply(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"positive operands", 2, 3, 6},
		{"by zero", 5, 0, 0},
		{"negative operand", -4, 2.5, -10},
		{"fractions", 0.5, 0.5, 0.25},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Multiply(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Expected Multiply(%v, %v) to be %v, got %v", tc.a, tc.b, tc.expected, result)
			}
		})
	}
}

func TestDivide(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"even division", 6, 3, 2},
		{"fractional result", 5, 2, 2.5},
		{"negative divisor", 9, -3, -3},
		{"zero dividend", 0, 7, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Divide(tc.a, tc.b)
			if err != nil {
				t.Fatalf("Expected Divide(%v, %v) to succeed, got error %v", tc.a, tc.b, err)
			}
			if result != tc.expected {
				t.Errorf("Expected Divide(%v, %v) to be %v, got %v", tc.a, tc.b, tc.expected, result)
			}
		})
	}
}

func TestDivide_ByZero(t *testing.T) {
	for _, a := range []float64{5, -5, 0, 12345.678} {
		result, err := Divide(a, 0)
		if err == nil {
			t.Fatalf("Expected Divide(%v, 0) to fail, got result %v", a, result)
		}
		if err.Error() != "Division by zero is not allowed" {
			t.Errorf("Expected error message 'Division by zero is not allowed', got '%s'", err.Error())
		}
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("Expected error to match ErrDivisionByZero, got %v", err)
		}
		if result != 0 {
			t.Errorf("Expected zero result alongside the error, got %v", result)
		}
	}
}

func TestDivide_ByNegativeZero(t *testing.T) {
	negZero := math.Copysign(0, -1)
	_, err := Divide(1, negZero)
	if err == nil {
		t.Fatal("Expected Divide(1, -0) to fail, got nil error")
	}
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Expected error to match ErrDivisionByZero, got %v", err)
	}
}

func TestAdd_Commutative(t *testing.T) {
	for _, a := range sampleValues {
		for _, b := range sampleValues {
			if Add(a, b) != Add(b, a) {
				t.Errorf("Expected Add(%v, %v) == Add(%v, %v), got %v and %v", a, b, b, a, Add(a, b), Add(b, a))
			}
		}
	}
}

func TestAdd_ZeroIdentity(t *testing.T) {
	for _, a := range sampleValues {
		if Add(a, 0) != a {
			t.Errorf("Expected Add(%v, 0) to be %v, got %v", a, a, Add(a, 0))
		}
	}
}

func TestSubtract_SwappedOperandsNegate(t *testing.T) {
	for _, a := range sampleValues {
		for _, b := range sampleValues {
			if Subtract(a, b) != -Subtract(b, a) {
				t.Errorf("Expected Subtract(%v, %v) == -Subtract(%v, %v), got %v and %v",
					a, b, b, a, Subtract(a, b), -Subtract(b, a))
			}
		}
	}
}

func TestMultiply_Commutative(t *testing.T) {
	for _, a := range sampleValues {
		for _, b := range sampleValues {
			if Multiply(a, b) != Multiply(b, a) {
				t.Errorf("Expected Multiply(%v, %v) == Multiply(%v, %v), got %v and %v",
					a, b, b, a, Multiply(a, b), Multiply(b, a))
			}
		}
	}
}

func TestMultiply_ByZeroIsZero(t *testing.T) {
	for _, a := range sampleValues {
		if Multiply(a, 0) != 0 {
			t.Errorf("Expected Multiply(%v, 0) to be 0, got %v", a, Multiply(a, 0))
		}
	}
}

func TestDivide_UndoesMultiply(t *testing.T) {
	for _, a := range sampleValues {
		for _, b := range sampleValues {
			if b == 0 {
				continue
			}
			result, err := Divide(Multiply(a, b), b)
			if err != nil {
				t.Fatalf("Expected Divide(Multiply(%v, %v), %v) to succeed, got %v", a, b, b, err)
			}
			if !closeEnough(result, a) {
				t.Errorf("Expected Divide(Multiply(%v, %v), %v) to round-trip to %v, got %v", a, b, b, a, result)
			}
		}
	}
}

// closeEnough compares within a relative tolerance to absorb floating-point
// rounding in the multiply/divide round-trip.
func closeEnough(got, want float64) bool {
	diff := math.Abs(got - want)
	scale := math.Max(1, math.Max(math.Abs(got), math.Abs(want)))
	return diff <= 1e-9*scale
}

func TestParseOp(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Op
	}{
		{"canonical add", "add", OpAdd},
		{"canonical subtract", "subtract", OpSubtract},
		{"canonical multiply", "multiply", OpMultiply},
		{"canonical divide", "divide", OpDivide},
		{"alias sub", "sub", OpSubtract},
		{"alias mul", "mul", OpMultiply},
		{"alias div", "div", OpDivide},
		{"uppercase", "ADD", OpAdd},
		{"surrounding whitespace", "  divide ", OpDivide},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			op, err := ParseOp(tc.input)
			if err != nil {
				t.Fatalf("Expected ParseOp(%q) to succeed, got %v", tc.input, err)
			}
			if op != tc.expected {
				t.Errorf("Expected ParseOp(%q) to be %q, got %q", tc.input, tc.expected, op)
			}
		})
	}
}

func TestParseOp_Unknown(t *testing.T) {
	for _, input := range []string{"", "modulo", "plus", "add2"} {
		_, err := ParseOp(input)
		if err == nil {
			t.Fatalf("Expected ParseOp(%q) to fail, got nil error", input)
		}
		kind, ok := KindOf(err)
		if !ok || kind != UnknownOperation {
			t.Errorf("Expected UnknownOperation kind for %q, got %v", input, err)
		}
	}
}

func TestApply(t *testing.T) {
	testCases := []struct {
		name     string
		op       Op
		a, b     float64
		expected float64
	}{
		{"add", OpAdd, 2, 3, 5},
		{"subtract", OpSubtract, 5, 3, 2},
		{"multiply", OpMultiply, 2, 3, 6},
		{"divide", OpDivide, 6, 3, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Apply(tc.op, tc.a, tc.b)
			if err != nil {
				t.Fatalf("Expected Apply(%q, %v, %v) to succeed, got %v", tc.op, tc.a, tc.b, err)
			}
			if result != tc.expected {
				t.Errorf("Expected Apply(%q, %v, %v) to be %v, got %v", tc.op, tc.a, tc.b, tc.expected, result)
			}
		})
	}
}

func TestApply_Errors(t *testing.T) {
	if _, err := Apply(Op("power"), 2, 3); err == nil {
		t.Error("Expected Apply with unknown op to fail, got nil error")
	}

	_, err := Apply(OpDivide, 5, 0)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Expected divide-by-zero error through Apply, got %v", err)
	}
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		name      string
		value     float64
		precision int
		expected  string
	}{
		{"shortest integer", 5, -1, "5"},
		{"shortest fraction", 2.5, -1, "2.5"},
		{"fixed two decimals", 2.5, 2, "2.50"},
		{"fixed zero decimals", 2.5, 0, "2"},
		{"negative shortest", -0.125, -1, "-0.125"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Format(tc.value, tc.precision)
			if result != tc.expected {
				t.Errorf("Expected Format(%v, %d) to be %q, got %q", tc.value, tc.precision, tc.expected, result)
			}
		})
	}
}
