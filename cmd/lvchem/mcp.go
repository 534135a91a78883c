// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvchem/config"
	"github.com/katalvlaran/lvchem/mcpserver"
)

func newMCPCmd(a *app) *cobra.Command {
	var (
		transport string
		port      int
	)
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the Model Context Protocol server",
		Long: `Exposes balance_equation, decompose_formula and molar_mass as MCP tools.
The stdio transport keeps stdout for JSON-RPC; logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if transport == "" {
				transport = a.cfg.MCP.Transport
			}
			if port == 0 {
				port = a.cfg.MCP.Port
			}
			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			c, closeCache, err := a.openCache(ctx)
			if err != nil {
				return err
			}
			defer closeCache()

			s := mcpserver.New(version,
				mcpserver.WithCache(c),
				mcpserver.WithLogger(a.logger),
				mcpserver.WithBalanceOptions(a.cfg.BalanceOptions()...),
			)

			switch transport {
			case config.TransportStdio:
				a.logger.Info("Starting lvchem MCP server (stdio)")

				return s.ServeStdio()
			case config.TransportSSE:
				a.logger.Info("Starting lvchem MCP server (SSE)", "port", port)

				return s.ServeSSE(ctx, port)
			default:
				return fmt.Errorf("unknown transport %q (want %s or %s)", transport, config.TransportStdio, config.TransportSSE)
			}
		},
	}
	cmd.Flags().StringVar(&transport, "transport", "", "stdio or sse (overrides config)")
	cmd.Flags().IntVar(&port, "port", 0, "SSE port (overrides config)")

	return cmd
}
