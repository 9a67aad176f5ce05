// Command gocalc is the command line front-end for the calculation toolkit.
//
// Usage:
//
//	gocalc add 2 3
//	gocalc --json divide 6 3
//	gocalc batch sheet.yaml
//	echo '{"op":"add","a":2,"b":3}' | gocalc pipe
package main

import (
	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/cli/commands"
)

func main() {
	app := cli.NewApp()
	app.Initialize()

	runner := cli.NewRunner()

	runner.RegisterCommand("add", commands.AddCommand)
	runner.RegisterCommand("subtract", commands.SubtractCommand)
	runner.RegisterCommand("sub", commands.SubtractCommand)
	runner.RegisterCommand("multiply", commands.MultiplyCommand)
	runner.RegisterCommand("mul", commands.MultiplyCommand)
	runner.RegisterCommand("divide", commands.DivideCommand)
	runner.RegisterCommand("div", commands.DivideCommand)
	runner.RegisterCommand("batch", commands.BatchCommand)
	runner.RegisterCommand("pipe", commands.PipeCommand)
	runner.RegisterCommand("ops", commands.OpsCommand)
	runner.RegisterCommand("version", commands.VersionCommand)
	runner.RegisterCommand("help", commands.HelpCommand)

	app.Run(runner)
}
