// SPDX-License-Identifier: MIT

// Command lvchem balances chemical equations, decomposes formulas and
// computes molar masses and concentrations. It also serves the same
// operations over HTTP (serve) and the Model Context Protocol (mcp).
package main

func main() {
	Execute()
}
