// Package worksheet loads YAML worksheets and evaluates them as a batch of
// arithmetic operations.
package worksheet

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mamaar/gocalc/pkg/calc"
)

// Entry is one operation in a worksheet.
type Entry struct {
	Op string  `yaml:"op" json:"op"`
	A  float64 `yaml:"a" json:"a"`
	B  float64 `yaml:"b" json:"b"`
}

// Worksheet is an ordered list of operations to evaluate.
type Worksheet struct {
	Entries []Entry `yaml:"entries" json:"entries"`
}

// Outcome is the result of evaluating one entry. Result is set only on
// success; Error carries the failure message verbatim and Code its
// machine-readable classification.
type Outcome struct {
	Op     string   `json:"op"`
	A      float64  `json:"a"`
	B      float64  `json:"b"`
	Result *float64 `json:"result,omitempty"`
	Error  string   `json:"error,omitempty"`
	Code   string   `json:"code,omitempty"`
}

// Failed reports whether the entry failed to evaluate.
func (o Outcome) Failed() bool {
	return o.Error != ""
}

// Load decodes a worksheet from r. Unknown fields are rejected, and every
// entry must name an operation; operand values default to zero.
func Load(r io.Reader) (*Worksheet, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ws Worksheet
	if err := dec.Decode(&ws); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("worksheet is empty")
		}
		return nil, fmt.Errorf("decode worksheet: %w", err)
	}
	if len(ws.Entries) == 0 {
		return nil, fmt.Errorf("worksheet has no entries")
	}
	for i, e := range ws.Entries {
		if e.Op == "" {
			return nil, fmt.Errorf("entry %d: missing op", i+1)
		}
	}
	return &ws, nil
}

// LoadFile reads and decodes the worksheet at path.
func LoadFile(path string) (*Worksheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open worksheet: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Evaluate runs every entry in order. Failures are isolated: a failed entry
// yields an Outcome carrying its error and evaluation continues with the
// next entry.
func (w *Worksheet) Evaluate() []Outcome {
	outcomes := make([]Outcome, 0, len(w.Entries))
	for _, e := range w.Entries {
		outcomes = append(outcomes, evaluateEntry(e))
	}
	return outcomes
}

func evaluateEntry(e Entry) Outcome {
	out := Outcome{Op: e.Op, A: e.A, B: e.B}

	op, err := calc.ParseOp(e.Op)
	if err != nil {
		out.Error = err.Error()
		out.Code = calc.CodeOf(err)
		return out
	}
	out.Op = string(op)

	result, err := calc.Apply(op, e.A, e.B)
	if err != nil {
		out.Error = err.Error()
		out.Code = calc.CodeOf(err)
		return out
	}
	out.Result = &result
	return out
}

// Summary counts succeeded and failed outcomes.
func Summary(outcomes []Outcome) (succeeded, failed int) {
	for _, o := range outcomes {
		if o.Failed() {
			failed++
		} else {
			succeeded++
		}
	}
	return succeeded, failed
}
