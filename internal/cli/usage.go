package cli

import (
	"flag"
	"fmt"
	"os"
)

// Usage prints the usage information for the gocalc command
func Usage() {
	fmt.Fprintf(os.Stderr, `gocalc - command line calculator

Usage: gocalc [options] <command> [arguments]

Arithmetic Commands:
  add <a> <b>
    Print the sum a + b

  subtract <a> <b>    (alias: sub)
    Print the difference a - b

  multiply <a> <b>    (alias: mul)
    Print the product a * b

  divide <a> <b>      (alias: div)
    Print the quotient a / b (fails if b is zero)

Batch Commands:
  batch <file>
    Evaluate a YAML worksheet; "-" reads the worksheet from stdin

  pipe
    Read one JSON request per line from stdin and write one JSON
    response per line to stdout, until EOF

General:
  ops
    List the supported operations and their aliases

  version
    Show version information

  help [command]
    Show help for a specific command

Options:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  # One-shot arithmetic
  gocalc add 2 3
  gocalc divide 6 3

  # Fixed output precision
  gocalc --precision 2 divide 1 3

  # Machine-readable output
  gocalc --json multiply 2 3

  # Evaluate a worksheet file
  gocalc batch sheet.yaml

  # Evaluate a worksheet from stdin
  cat sheet.yaml | gocalc batch -

  # Drive gocalc from another program
  echo '{"op":"add","a":2,"b":3}' | gocalc pipe

Exit codes:
  0  success
  1  operation or file error (including division by zero)
  2  usage error (unknown command, wrong argument count)
`)
}
