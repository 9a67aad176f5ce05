package commands

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/pkg/calc"
)

// PipeRequest is one line of pipe-mode input.
type PipeRequest struct {
	Op string  `json:"op"`
	A  float64 `json:"a"`
	B  float64 `json:"b"`
}

// PipeResponse is one line of pipe-mode output. Result is present on
// success; Error and Code are present on failure.
type PipeResponse struct {
	Op     string   `json:"op,omitempty"`
	A      float64  `json:"a"`
	B      float64  `json:"b"`
	Result *float64 `json:"result,omitempty"`
	Error  string   `json:"error,omitempty"`
	Code   string   `json:"code,omitempty"`
}

// PipeCommand reads one JSON request per line from stdin and writes one JSON
// response per line to stdout. Per-line failures produce error responses and
// the loop continues; EOF exits cleanly.
func PipeCommand(args []string) {
	if len(args) != 0 {
		FailUsage("Usage: gocalc pipe")
	}
	RunPipe(os.Stdin, os.Stdout)
}

// RunPipe is the pipe-mode loop, split out so tests can drive it with
// in-memory streams.
func RunPipe(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	enc := json.NewEncoder(out)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		_ = enc.Encode(evaluateLine(line))
	}
	if err := scanner.Err(); err != nil {
		Fail(err)
	}
}

func evaluateLine(line string) PipeResponse {
	var req PipeRequest
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		cli.Logger.Debug("bad pipe request", zap.Error(err))
		return PipeResponse{Error: "invalid request: " + err.Error(), Code: "bad_request"}
	}

	resp := PipeResponse{Op: req.Op, A: req.A, B: req.B}

	op, err := calc.ParseOp(req.Op)
	if err != nil {
		resp.Error = err.Error()
		resp.Code = calc.CodeOf(err)
		return resp
	}
	resp.Op = string(op)

	result, err := calc.Apply(op, req.A, req.B)
	if err != nil {
		resp.Error = err.Error()
		resp.Code = calc.CodeOf(err)
		return resp
	}
	resp.Result = &result
	return resp
}
