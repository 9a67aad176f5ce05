package commands

import (
	"fmt"
	"strings"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/pkg/calc"
)

// OpInfo describes one supported operation.
type OpInfo struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
}

// OpsCommand lists the supported operations and their aliases.
func OpsCommand(args []string) {
	if len(args) != 0 {
		FailUsage("Usage: gocalc ops")
	}

	ops := make([]OpInfo, 0, len(calc.Ops()))
	for _, op := range calc.Ops() {
		ops = append(ops, OpInfo{Name: string(op), Aliases: calc.Aliases(op)})
	}

	if *cli.GlobalFlags.Json {
		OutputJSON(struct {
			Operations []OpInfo `json:"operations"`
		}{ops})
		return
	}

	for _, info := range ops {
		if len(info.Aliases) > 0 {
			fmt.Printf("%-10s (alias: %s)\n", info.Name, strings.Join(info.Aliases, ", "))
		} else {
			fmt.Println(info.Name)
		}
	}
}
