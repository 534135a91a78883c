// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvchem/internal/shell"
)

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := contextOf(cmd)
			c, closeCache, err := a.openCache(ctx)
			if err != nil {
				return err
			}
			defer closeCache()

			out := cmd.OutOrStdout()
			opts := []shell.Option{
				shell.WithCache(c),
				shell.WithBalanceOptions(a.cfg.BalanceOptions()...),
			}
			if shell.IsTerminal(out) {
				render, err := shell.NewRenderer()
				if err != nil {
					a.logger.Warn("markdown renderer unavailable", "error", err)
				} else {
					opts = append(opts, shell.WithRenderer(render))
				}
			}

			return shell.New(cmd.InOrStdin(), out, opts...).Run(ctx)
		},
	}
}
