// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvchem/molar"
)

func newConcentrationCmd() *cobra.Command {
	var moles, mass, volume, ci, vi, vf float64
	var solute string

	cmd := &cobra.Command{
		Use:   "concentration",
		Short: "Evaluate a molar concentration",
		Long: `Evaluate a molar concentration in mol/L from one of:
  --moles N --volume V                 c = n / V
  --mass M --formula F --volume V      c = m / (M(F) * V)
  --ci C --vi Vi --vf Vf               c = C * Vi / Vf (dilution)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			var (
				c   float64
				err error
			)
			switch {
			case flags.Changed("moles"):
				c, err = molar.FromMoles(moles, volume)
			case flags.Changed("mass"):
				if solute == "" {
					return errors.New("--mass requires --formula")
				}
				c, err = molar.FromMass(solute, mass, volume)
			case flags.Changed("ci"):
				c, err = molar.Dilute(ci, vi, vf)
			default:
				return errors.New("one of --moles, --mass or --ci is required")
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "c = %s mol/L\n",
				strconv.FormatFloat(math.Round(c*1000)/1000, 'f', -1, 64))

			return err
		},
	}
	f := cmd.Flags()
	f.Float64Var(&moles, "moles", 0, "amount of solute [mol]")
	f.Float64Var(&mass, "mass", 0, "mass of solute [g]")
	f.StringVar(&solute, "formula", "", "solute formula, with --mass")
	f.Float64Var(&volume, "volume", 0, "solution volume [L]")
	f.Float64Var(&ci, "ci", 0, "initial concentration [mol/L]")
	f.Float64Var(&vi, "vi", 0, "initial volume [L]")
	f.Float64Var(&vf, "vf", 0, "final volume [L]")
	cmd.MarkFlagsMutuallyExclusive("moles", "mass", "ci")

	return cmd
}
