package commands

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/pkg/calc"
	"github.com/mamaar/gocalc/pkg/worksheet"
)

// BatchCommand evaluates a YAML worksheet. "-" reads the worksheet from
// stdin. The exit code is non-zero when any entry failed.
func BatchCommand(args []string) {
	if len(args) != 1 {
		FailUsage("Usage: gocalc batch <file>")
	}

	var (
		ws  *worksheet.Worksheet
		err error
	)
	if args[0] == "-" {
		ws, err = worksheet.Load(os.Stdin)
	} else {
		ws, err = worksheet.LoadFile(args[0])
	}
	if err != nil {
		Fail(err)
	}

	maxEntries := cli.GlobalConfig.Current().Limits.MaxWorksheetEntries
	if len(ws.Entries) > maxEntries {
		Fail(fmt.Errorf("worksheet has %d entries, limit is %d", len(ws.Entries), maxEntries))
	}

	cli.Logger.Debug("evaluating worksheet", zap.Int("entries", len(ws.Entries)))
	outcomes := ws.Evaluate()
	succeeded, failed := worksheet.Summary(outcomes)

	if *cli.GlobalFlags.Json {
		OutputJSON(struct {
			Results   []worksheet.Outcome `json:"results"`
			Succeeded int                 `json:"succeeded"`
			Failed    int                 `json:"failed"`
		}{outcomes, succeeded, failed})
	} else {
		precision := cli.Precision()
		for _, o := range outcomes {
			if o.Failed() {
				fmt.Printf("%s(%v, %v): error: %s\n", o.Op, o.A, o.B, o.Error)
			} else {
				fmt.Printf("%s(%v, %v) = %s\n", o.Op, o.A, o.B, calc.Format(*o.Result, precision))
			}
		}
		fmt.Fprintf(os.Stderr, "%d succeeded, %d failed\n", succeeded, failed)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
