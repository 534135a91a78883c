// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mitchellh/mapstructure"

	"github.com/katalvlaran/lvchem/balance"
	"github.com/katalvlaran/lvchem/cache"
	"github.com/katalvlaran/lvchem/formula"
)

// BalanceArgs are the balance_equation arguments.
type BalanceArgs struct {
	Reaction  string   `mapstructure:"reaction"`
	Reactants []string `mapstructure:"reactants"`
	Products  []string `mapstructure:"products"`
}

// FormulaArgs are the decompose_formula and molar_mass arguments.
type FormulaArgs struct {
	Formula string `mapstructure:"formula"`
}

// BalanceResult is the structured balance_equation output.
type BalanceResult struct {
	Reactants            []string `json:"reactants" jsonschema_description:"Reactants, sorted"`
	Products             []string `json:"products" jsonschema_description:"Products, sorted"`
	ReactantCoefficients []int    `json:"reactant_coefficients" jsonschema_description:"Coefficients aligned with reactants"`
	ProductCoefficients  []int    `json:"product_coefficients" jsonschema_description:"Coefficients aligned with products"`
	Formatted            string   `json:"formatted" jsonschema_description:"Balanced equation as text"`
}

// DecomposeResult is the structured decompose_formula output.
type DecomposeResult struct {
	Formula  string         `json:"formula"`
	Elements map[string]int `json:"elements" jsonschema_description:"Atom count per element symbol"`
	Atoms    int            `json:"atoms" jsonschema_description:"Total atom count"`
}

// MassResult is the structured molar_mass output.
type MassResult struct {
	Formula   string  `json:"formula"`
	MolarMass float64 `json:"molar_mass" jsonschema_description:"Molar mass in g/mol"`
}

func decodeArgs(args map[string]interface{}, out interface{}) error {
	if err := mapstructure.Decode(args, out); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	return nil
}

func (s *Server) handleBalance(ctx context.Context, _ mcp.CallToolRequest, args map[string]interface{}) (BalanceResult, error) {
	var in BalanceArgs
	if err := decodeArgs(args, &in); err != nil {
		return BalanceResult{}, err
	}
	if in.Reaction != "" {
		rs, ps, err := balance.ParseReaction(in.Reaction)
		if err != nil {
			return BalanceResult{}, fmt.Errorf("%s: %w", balance.Kind(err), err)
		}
		in.Reactants, in.Products = rs, ps
	}

	eq, hit, err := cache.Balance(ctx, s.cache, in.Reactants, in.Products, s.balOpts...)
	if err != nil {
		s.logger.Debug("balance_equation failed", "error", err)

		return BalanceResult{}, fmt.Errorf("%s: %w", balance.Kind(err), err)
	}
	s.logger.Debug("balance_equation", "equation", balance.Format(eq), "cached", hit)

	return BalanceResult{
		Reactants:            eq.Reactants,
		Products:             eq.Products,
		ReactantCoefficients: eq.ReactantCoefficients,
		ProductCoefficients:  eq.ProductCoefficients,
		Formatted:            balance.Format(eq),
	}, nil
}

func (s *Server) handleDecompose(_ context.Context, _ mcp.CallToolRequest, args map[string]interface{}) (DecomposeResult, error) {
	var in FormulaArgs
	if err := decodeArgs(args, &in); err != nil {
		return DecomposeResult{}, err
	}
	c, err := formula.Decompose(in.Formula)
	if err != nil {
		return DecomposeResult{}, err
	}

	return DecomposeResult{Formula: in.Formula, Elements: c, Atoms: c.Atoms()}, nil
}

func (s *Server) handleMass(_ context.Context, _ mcp.CallToolRequest, args map[string]interface{}) (MassResult, error) {
	var in FormulaArgs
	if err := decodeArgs(args, &in); err != nil {
		return MassResult{}, err
	}
	m, err := s.table.Mass(in.Formula)
	if err != nil {
		return MassResult{}, err
	}

	return MassResult{Formula: in.Formula, MolarMass: m}, nil
}
