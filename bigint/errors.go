// SPDX-License-Identifier: MIT
// Package bigint: sentinel error set.
// Every message is prefixed with "bigint: ..."; callers match with errors.Is.

package bigint

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is returned when a decimal string does not match ["+"|"-"] digit+.
	ErrMalformed = errors.New("bigint: malformed decimal string")

	// ErrDivisionByZero is returned by DivMod, Quo and Rem for a zero divisor.
	ErrDivisionByZero = errors.New("bigint: division by zero")

	// ErrLimbOutOfRange is returned by FromLimbs when a limb is not below the base.
	ErrLimbOutOfRange = errors.New("bigint: limb out of range")
)

// Operation tags for uniform error wrapping.
const (
	opParse     = "Parse"
	opFromLimbs = "FromLimbs"
	opDivMod    = "DivMod"
)

// bigintErrorf wraps err with an operation tag, preserving it for errors.Is.
func bigintErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
