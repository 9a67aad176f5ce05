package cli

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mamaar/gocalc/internal/config"
)

// GlobalConfig is the configuration store shared with the command handlers.
var GlobalConfig *config.Store

// Logger is the process logger shared with the command handlers. It stays a
// no-op unless --verbose is given; CLI output goes to stdout, diagnostics to
// stderr.
var Logger = zap.NewNop()

// App represents the gocalc application
type App struct {
	flags *Flags
}

// NewApp creates a new application instance
func NewApp() *App {
	return &App{}
}

// Initialize sets up the application with flags and configuration
func (app *App) Initialize() {
	ParseFlags(Usage)
	app.flags = GlobalFlags

	// Version requests don't need a config.
	if *app.flags.Version {
		return
	}

	cfg, err := config.Load(*app.flags.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if app.flags.PrecisionSet() {
		cfg.Precision = *app.flags.Precision
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	}
	GlobalConfig = config.NewStore(cfg)

	if *app.flags.Verbose {
		logger, _, err := config.NewLogger(config.LogConfig{Level: "debug", JSON: cfg.Log.JSON})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		Logger = logger
	}
}

// Run executes the application logic with the provided runner
func (app *App) Run(runner *Runner) {
	// Handle version flag
	if *app.flags.Version {
		ShowVersion()
		return
	}

	// Get command arguments
	args := flag.Args()
	if len(args) < 1 {
		Usage()
		os.Exit(2)
	}

	// Execute the command
	runner.Execute(args[0], args[1:])
}

// Precision returns the effective output precision for text results.
func Precision() int {
	return GlobalConfig.Current().Precision
}
