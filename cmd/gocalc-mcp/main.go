// Command gocalc-mcp serves the gocalc operations as MCP tools over stdio,
// for use by AI coding assistants.
//
// Usage:
//
//	gocalc-mcp
//	gocalc-mcp --config gocalc.yaml --debug
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/mamaar/gocalc/internal/config"
	"github.com/mamaar/gocalc/internal/mcp"
)

func main() {
	var (
		configFlag  = flag.String("config", "", "Path to config file (defaults to searching gocalc.yaml)")
		debugFlag   = flag.Bool("debug", false, "Enable debug logging")
		versionFlag = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("gocalc-mcp v%s\n", mcp.Version)
		fmt.Println("Model Context Protocol server for gocalc")
		os.Exit(0)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logCfg := cfg.Log
	if *debugFlag {
		logCfg.Level = "debug"
	}
	// Logging goes to stderr; stdout belongs to the stdio transport.
	logger, _, err := config.NewLogger(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	state := mcp.NewMCPServer(config.NewStore(cfg), logger)
	server := mcp.NewServer(state)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("gocalc-mcp serving on stdio", zap.String("version", mcp.Version))
	if err := server.Run(ctx, &mcpsdk.StdioTransport{}); err != nil && ctx.Err() == nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
