package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRunPipe(t *testing.T) {
	input := strings.Join([]string{
		`{"op":"add","a":2,"b":3}`,
		``,
		`{"op":"divide","a":5,"b":0}`,
		`not json`,
		`{"op":"modulo","a":5,"b":2}`,
		`{"op":"div","a":6,"b":3}`,
	}, "\n")

	var out bytes.Buffer
	RunPipe(strings.NewReader(input), &out)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("Expected 5 responses (blank line skipped), got %d:\n%s", len(lines), out.String())
	}

	var responses []PipeResponse
	for i, line := range lines {
		var resp PipeResponse
		if err := json.Unmarshal([]byte(line), &resp); err != nil {
			t.Fatalf("response %d is not valid JSON: %v", i, err)
		}
		responses = append(responses, resp)
	}

	if responses[0].Result == nil || *responses[0].Result != 5 {
		t.Errorf("Expected add result 5, got %v", responses[0].Result)
	}

	if responses[1].Error != "Division by zero is not allowed" {
		t.Errorf("Expected division-by-zero error, got %q", responses[1].Error)
	}
	if responses[1].Code != "invalid_argument" {
		t.Errorf("Expected code invalid_argument, got %q", responses[1].Code)
	}
	if responses[1].Result != nil {
		t.Error("Expected no result on a failed line")
	}

	if responses[2].Code != "bad_request" {
		t.Errorf("Expected code bad_request for undecodable line, got %q", responses[2].Code)
	}

	if responses[3].Code != "unknown_operation" {
		t.Errorf("Expected code unknown_operation, got %q", responses[3].Code)
	}

	if responses[4].Op != "divide" {
		t.Errorf("Expected alias div to canonicalize to divide, got %q", responses[4].Op)
	}
	if responses[4].Result == nil || *responses[4].Result != 2 {
		t.Errorf("Expected divide result 2, got %v", responses[4].Result)
	}
}

func TestParseOperands(t *testing.T) {
	a, b, err := ParseOperands([]string{"2.5", "-3"})
	if err != nil {
		t.Fatalf("ParseOperands: %v", err)
	}
	if a != 2.5 || b != -3 {
		t.Errorf("Expected (2.5, -3), got (%v, %v)", a, b)
	}

	if _, _, err := ParseOperands([]string{"x", "1"}); err == nil {
		t.Error("Expected an error for a non-numeric operand")
	}
	if _, _, err := ParseOperands([]string{"1", "y"}); err == nil {
		t.Error("Expected an error for a non-numeric operand")
	}
}
