package commands

import (
	"fmt"

	"github.com/mamaar/gocalc/internal/cli"
)

var commandHelp = map[string]string{
	"add": `Add Command - Add two numbers

Usage: gocalc add <a> <b>

Prints a + b. With --json the result is a JSON object; with --precision
the output uses a fixed number of decimals.`,

	"subtract": `Subtract Command - Subtract two numbers

Usage: gocalc subtract <a> <b>    (alias: sub)

Prints a - b.`,

	"multiply": `Multiply Command - Multiply two numbers

Usage: gocalc multiply <a> <b>    (alias: mul)

Prints a * b.`,

	"divide": `Divide Command - Divide two numbers

Usage: gocalc divide <a> <b>    (alias: div)

Prints a / b. Fails with "Division by zero is not allowed" when b is zero.`,

	"batch": `Batch Command - Evaluate a YAML worksheet

Usage: gocalc batch <file>

Evaluates every entry of the worksheet in order. Entry failures do not stop
the batch; the exit code is 1 when any entry failed. Use "-" as the file to
read the worksheet from stdin.

Worksheet format:

  entries:
    - op: add
      a: 2
      b: 3
    - op: divide
      a: 5
      b: 0`,

	"pipe": `Pipe Command - JSON request/response loop

Usage: gocalc pipe

Reads one JSON request per line from stdin, for example
{"op":"divide","a":6,"b":3}, and writes one JSON response per line to
stdout. Failing lines produce error responses and the loop continues.`,

	"ops": `Ops Command - List supported operations

Usage: gocalc ops

Lists the supported operation names and their aliases.`,

	"version": `Version Command - Show application version

Usage: gocalc version`,
}

// HelpCommand shows general usage or help for a specific command.
func HelpCommand(args []string) {
	if len(args) == 0 {
		cli.Usage()
		return
	}

	name := args[0]
	switch name {
	case "sub":
		name = "subtract"
	case "mul":
		name = "multiply"
	case "div":
		name = "divide"
	}

	if text, ok := commandHelp[name]; ok {
		fmt.Println(text)
		return
	}
	FailUsage("Unknown command: %s", args[0])
}
