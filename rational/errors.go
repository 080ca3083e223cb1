// SPDX-License-Identifier: MIT
// Package rational: sentinel error set.
// Every message is prefixed with "rational: ..."; callers match with errors.Is.

package rational

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDenominator is returned when a fraction is built with denominator 0.
	ErrZeroDenominator = errors.New("rational: zero denominator")

	// ErrDivisionByZero is returned by Div and Inv for a zero-valued operand.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrMalformed is returned by Parse for text that is not "p", "p/q" or a decimal.
	ErrMalformed = errors.New("rational: malformed number")
)

const (
	opNew   = "New"
	opDiv   = "Div"
	opInv   = "Inv"
	opParse = "Parse"
)

// rationalErrorf wraps err with an operation tag, preserving it for errors.Is.
func rationalErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
