// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvchem/formula"
	"github.com/katalvlaran/lvchem/molar"
)

func newDecomposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "decompose FORMULA...",
		Short:   "Count the atoms of each element in a formula",
		Example: "  lvchem decompose H2O 'Ca(OH)2'",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range args {
				c, err := formula.Decompose(f)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", f, c)
			}

			return nil
		},
	}
}

func newMassCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "mass FORMULA...",
		Short:   "Compute molar masses in g/mol",
		Example: "  lvchem mass H2O NaCl",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tab := molar.Default()
			for _, f := range args {
				m, err := tab.Mass(f)
				if err != nil {
					return err
				}
				a.logger.Debug("molar mass", "formula", f, "g_per_mol", m)
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %.3f g/mol\n", f, m)
			}

			return nil
		},
	}
}
