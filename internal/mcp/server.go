package mcp

import (
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/mamaar/gocalc/internal/config"
	"github.com/mamaar/gocalc/pkg/calc"
)

// Version is the gocalc-mcp server version.
const Version = "0.1.0"

// MCPServer holds the shared state for the MCP tool handlers: the live
// configuration, per-operation call counters, and the process logger.
type MCPServer struct {
	mu      sync.Mutex
	calls   map[calc.Op]int64
	started time.Time
	cfg     *config.Store
	logger  *zap.Logger
}

// NewMCPServer creates a new MCPServer with the given config store and logger.
func NewMCPServer(cfg *config.Store, logger *zap.Logger) *MCPServer {
	return &MCPServer{
		calls:   make(map[calc.Op]int64),
		started: time.Now(),
		cfg:     cfg,
		logger:  logger,
	}
}

// NewServer builds the SDK server with every gocalc tool registered.
func NewServer(state *MCPServer) *mcpsdk.Server {
	s := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "gocalc", Version: Version}, nil)
	RegisterAllTools(s, state)
	return s
}

// Config returns the live configuration snapshot.
func (s *MCPServer) Config() *config.Config {
	return s.cfg.Current()
}

// RecordCall bumps the served-call counter for op.
func (s *MCPServer) RecordCall(op calc.Op) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[op]++
}

// CallCounts returns a copy of the per-operation call counters, keyed by
// operation name.
func (s *MCPServer) CallCounts() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int64, len(s.calls))
	for op, n := range s.calls {
		counts[string(op)] = n
	}
	return counts
}

// Uptime returns how long the server state has existed.
func (s *MCPServer) Uptime() time.Duration {
	return time.Since(s.started)
}
