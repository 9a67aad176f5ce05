// Package mcptest provides test helpers for invoking gocalc MCP tools with
// swappable transports: in-process (fast) or subprocess (full binary).
package mcptest

import (
	"context"
	"os/exec"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/mamaar/gocalc/internal/config"
	internalmcp "github.com/mamaar/gocalc/internal/mcp"
)

// Session wraps an MCP ClientSession with cleanup logic.
type Session struct {
	*mcpsdk.ClientSession
	cancel context.CancelFunc
}

// Close tears down the session.
func (s *Session) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Transport selects how the MCP server is reached.
type Transport interface {
	connect(ctx context.Context, t testing.TB) (*Session, error)
}

// Dial connects to a gocalc MCP server using the given transport.
func Dial(ctx context.Context, t testing.TB, transport Transport) *Session {
	t.Helper()
	sess, err := transport.connect(ctx, t)
	if err != nil {
		t.Fatalf("mcptest.Dial: connect: %v", err)
	}
	return sess
}

// inProcess is the in-process transport using NewInMemoryTransports.
type inProcess struct{}

// InProcess returns a transport that runs the MCP server in-process.
func InProcess() Transport { return inProcess{} }

func (inProcess) connect(ctx context.Context, t testing.TB) (*Session, error) {
	// Built-in defaults keep the session independent of any gocalc.yaml or
	// GOCALC_* variables in the test environment.
	state := internalmcp.NewMCPServer(config.NewStore(config.Default()), zap.NewNop())
	server := internalmcp.NewServer(state)

	serverT, clientT := mcpsdk.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(ctx)
	go server.Run(ctx, serverT)

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "1.0"}, nil)
	session, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	return &Session{ClientSession: session, cancel: cancel}, nil
}

// subprocess is the subprocess transport using CommandTransport.
type subprocess struct {
	binPath string
}

// Subprocess returns a transport that shells out to the given binary.
func Subprocess(bin string) Transport { return subprocess{binPath: bin} }

func (sp subprocess) connect(ctx context.Context, t testing.TB) (*Session, error) {
	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, sp.binPath)

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "1.0"}, nil)
	session, err := client.Connect(ctx, &mcpsdk.CommandTransport{Command: cmd}, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	return &Session{ClientSession: session, cancel: cancel}, nil
}
