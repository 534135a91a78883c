// SPDX-License-Identifier: MIT

// Package formula decomposes chemical formulas into element counts.
//
// What:
//
//   - Tokenize splits a formula into element symbols, group delimiters and
//     integer multipliers ("Al2(SO4)3" → Al 2 ( S O 4 ) 3).
//   - Decompose expands groups and sums repeated symbols into a Composition
//     ("Al2(SO4)3" → Al:2 O:12 S:3).
//   - DecomposeAll applies Decompose to a list, preserving order.
//
// Grammar (ASCII only):
//
//	formula  := part+
//	part     := symbol count? | "(" part+ ")" count?
//	symbol   := [A-Z][a-z]*
//	count    := [0-9]+        (positive; multi-digit runs form one number)
//
// A symbol or closing group without a count has an implicit multiplier of 1.
// Groups may nest; every count inside a group is multiplied by the group's
// count on the way out.
//
// Errors:
//
//   - *ParseError (matching ErrParse via errors.Is) carrying the formula, the
//     byte offset of the offending token and a reason: empty formula, symbol
//     starting with a lowercase letter, unbalanced parentheses, empty group,
//     multiplier with no preceding symbol or group, zero multiplier, count
//     overflow, unexpected character.
//
// Concurrency:
//
//   - All functions are pure; they may be called from many goroutines.
//
// Complexity:
//
//   - O(n) time in the formula length, plus O(g·k) for merging k symbols out
//     of g nested groups.
package formula
