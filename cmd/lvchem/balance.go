// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvchem/balance"
)

type balanceOutput struct {
	*balance.Equation
	Formatted string `json:"formatted"`
}

type errorOutput struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func newBalanceCmd(a *app) *cobra.Command {
	var (
		reactants, products []string
		asJSON, aggregate   bool
	)
	cmd := &cobra.Command{
		Use:   "balance [REACTION]",
		Short: "Balance a chemical equation",
		Long: `Balance a chemical equation given either as a reaction string
("H2 + O2 -> H2O", also → and =) or as repeated -r/-p flags.
Species are printed sorted alphabetically within each side.`,
		Example: `  lvchem balance "C2H4 + O2 -> CO2 + H2O"
  lvchem balance -r H2 -r O2 -p H2O --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")

			fail := func(err error) error {
				if asJSON {
					_ = enc.Encode(errorOutput{Error: err.Error(), Kind: balance.Kind(err)})
				}

				return err
			}

			if len(args) > 0 {
				if len(reactants) > 0 || len(products) > 0 {
					return errors.New("pass either a reaction string or -r/-p flags, not both")
				}
				var err error
				if reactants, products, err = balance.ParseReaction(strings.Join(args, " ")); err != nil {
					return fail(err)
				}
			}

			opts := append(a.cfg.BalanceOptions(), balance.WithLogger(a.logger))
			if aggregate {
				opts = append(opts, balance.WithAggregateFreeColumns())
			}
			eq, err := balance.Balance(reactants, products, opts...)
			if err != nil {
				return fail(err)
			}

			if asJSON {
				return enc.Encode(balanceOutput{Equation: eq, Formatted: balance.Format(eq)})
			}
			_, err = fmt.Fprintln(out, balance.Format(eq))

			return err
		},
	}
	cmd.Flags().StringArrayVarP(&reactants, "reactant", "r", nil, "reactant formula (repeatable)")
	cmd.Flags().StringArrayVarP(&products, "product", "p", nil, "product formula (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&aggregate, "aggregate", false, "combine independent reactions instead of failing")

	return cmd
}
