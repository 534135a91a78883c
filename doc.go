// Package lvchem balances chemical equations exactly and computes the molar
// quantities around them.
//
// 🚀 What is lvchem?
//
//	A small stoichiometry toolkit built on exact rational arithmetic:
//		• Formulas: tokenize and decompose "Al2(SO4)3" into element counts
//		• Balancing: minimal positive integer coefficients via the null space
//		  of the element × species matrix (no floating point anywhere)
//		• Molar mass & concentration: embedded IUPAC atomic weights
//		• Surfaces: CLI, interactive shell, HTTP API, MCP tools
//
// ✨ Why choose lvchem?
//
//   - Exact – math/big rationals, so large coefficients never round
//   - Predictable – species are sorted; the same input always yields the same output
//   - Explicit failures – element mismatch, no solution and indeterminate
//     reactions are distinct sentinel errors
//
// Packages:
//
//	formula/     tokenizer and decomposer (ElementCountMap)
//	matrix/      exact-rational Dense, RREF, null space, integer scaling
//	balance/     Balance, Verify, Format, ParseReaction
//	molar/       periodic table, molar mass, concentration
//	cache/       memory and Redis result caches
//	config/      YAML/TOML configuration
//	server/      chi HTTP API with Prometheus metrics
//	mcpserver/   Model Context Protocol tools
//	cmd/lvchem/  cobra CLI
//
// Quick example:
//
//	eq, _ := balance.Balance([]string{"C2H4", "O2"}, []string{"H2O", "CO2"})
//	fmt.Println(balance.Format(eq)) // C2H4 + 3 O2 → 2 CO2 + 2 H2O
//
//	go install github.com/katalvlaran/lvchem/cmd/lvchem@latest
package lvchem
