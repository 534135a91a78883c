// SPDX-License-Identifier: MIT

package formula

import (
	"errors"
	"fmt"
)

// ErrParse is the sentinel every *ParseError matches via errors.Is.
var ErrParse = errors.New("formula: parse error")

// Parse failure reasons. Kept as constants so tests and callers avoid magic strings.
const (
	ReasonEmpty          = "empty formula"
	ReasonLowercase      = "element symbol must start with an uppercase letter"
	ReasonUnclosedGroup  = "unclosed '('"
	ReasonStrayClose     = "unexpected ')'"
	ReasonEmptyGroup     = "empty group '()'"
	ReasonDanglingNumber = "multiplier has no preceding element or group"
	ReasonZeroCount      = "multiplier must be positive"
	ReasonOverflow       = "atom count overflow"
	ReasonUnexpected     = "unexpected character"
)

// ParseError reports a malformed formula.
//
// Formula is the full input, Pos the byte offset of the offending token and
// Reason one of the Reason* constants.
type ParseError struct {
	Formula string
	Pos     int
	Reason  string
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("formula: parse %q at %d: %s", e.Formula, e.Pos, e.Reason)
}

// Is makes errors.Is(err, ErrParse) true for every *ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func parseErr(formula string, pos int, reason string) *ParseError {
	return &ParseError{Formula: formula, Pos: pos, Reason: reason}
}
