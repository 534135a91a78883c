// SPDX-License-Identifier: MIT

// Package mcpserver exposes lvchem as Model Context Protocol tools:
// balance_equation, decompose_formula and molar_mass. It serves over stdio
// or SSE.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/katalvlaran/lvchem/balance"
	"github.com/katalvlaran/lvchem/cache"
	"github.com/katalvlaran/lvchem/internal/logging"
	"github.com/katalvlaran/lvchem/molar"
)

// Tool names.
const (
	ToolBalance   = "balance_equation"
	ToolDecompose = "decompose_formula"
	ToolMass      = "molar_mass"
)

// Server wraps an MCP server bound to the lvchem operations.
type Server struct {
	mcpServer *server.MCPServer
	cache     cache.Cache
	table     *molar.Table
	balOpts   []balance.Option
	logger    *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithCache memoizes balance results.
func WithCache(c cache.Cache) Option {
	return func(s *Server) { s.cache = c }
}

// WithBalanceOptions forwards options to every balance call.
func WithBalanceOptions(opts ...balance.Option) Option {
	return func(s *Server) { s.balOpts = append(s.balOpts, opts...) }
}

// WithLogger sets the logger. stdout belongs to JSON-RPC in stdio mode, so
// the logger must write elsewhere.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a server advertising version and registers the tools.
func New(version string, opts ...Option) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer("lvchem-mcp", version),
		table:     molar.Default(),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()

	return s
}

// MCPServer returns the underlying server, e.g. for in-process transports.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves on stdin/stdout until EOF or a signal.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves /sse and /message on port until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	sse := server.NewSSEServer(s.mcpServer, server.WithBaseURL(fmt.Sprintf("http://localhost:%d", port)))

	mux := http.NewServeMux()
	mux.Handle("/sse", sse.SSEHandler())
	mux.Handle("/message", sse.MessageHandler())
	httpServer := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop MCP server gracefully: %w", err)
		}

		return nil
	}
}

func (s *Server) registerTools() {
	stringItems := mcp.Items(map[string]any{"type": "string"})

	balanceTool := mcp.NewTool(ToolBalance,
		mcp.WithDescription("Balance a chemical equation. Pass either a reaction string such as \"H2 + O2 -> H2O\" or explicit reactant and product lists. Species come back sorted alphabetically with coefficients aligned to them."),
		mcp.WithString("reaction", mcp.Description("Reaction with sides separated by ->, →, <=> or =, species by +")),
		mcp.WithArray("reactants", mcp.Description("Reactant formulas"), stringItems),
		mcp.WithArray("products", mcp.Description("Product formulas"), stringItems),
		mcp.WithOutputSchema[BalanceResult](),
	)
	s.mcpServer.AddTool(balanceTool, mcp.NewStructuredToolHandler(s.handleBalance))

	decomposeTool := mcp.NewTool(ToolDecompose,
		mcp.WithDescription("Count the atoms of each element in a chemical formula, expanding parenthesized groups."),
		mcp.WithString("formula", mcp.Required(), mcp.Description("Chemical formula, e.g. Ca(OH)2")),
		mcp.WithOutputSchema[DecomposeResult](),
	)
	s.mcpServer.AddTool(decomposeTool, mcp.NewStructuredToolHandler(s.handleDecompose))

	massTool := mcp.NewTool(ToolMass,
		mcp.WithDescription("Molar mass of a chemical formula in g/mol."),
		mcp.WithString("formula", mcp.Required(), mcp.Description("Chemical formula, e.g. H2SO4")),
		mcp.WithOutputSchema[MassResult](),
	)
	s.mcpServer.AddTool(massTool, mcp.NewStructuredToolHandler(s.handleMass))
}
