// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvchem/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long:  `Serves POST /v1/balance, GET /v1/decompose/{formula}, GET /v1/mass/{formula}, /healthz and /metrics.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			c, closeCache, err := a.openCache(ctx)
			if err != nil {
				return err
			}
			defer closeCache()

			h := server.New(
				server.WithCache(c),
				server.WithLogger(a.logger),
				server.WithBalanceOptions(a.cfg.BalanceOptions()...),
			)

			return server.ListenAndServe(ctx, a.cfg.Server.Addr, h,
				a.cfg.Server.ReadTimeout.Duration, a.cfg.Server.WriteTimeout.Duration, a.logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}
