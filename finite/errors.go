// SPDX-License-Identifier: MIT
// Package finite: sentinel error set.
// Every message is prefixed with "finite: ..."; callers match with errors.Is.

package finite

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPrime is returned by Inverse and Div when the modulus is composite:
	// Fermat inversion would silently produce a meaningless value there.
	ErrNotPrime = errors.New("finite: modulus is not prime, inverse is undefined")

	// ErrNotInvertible is returned by Inverse and Div for the zero element.
	ErrNotInvertible = errors.New("finite: zero has no multiplicative inverse")

	// ErrMalformed is returned by Parse for non-integer text.
	ErrMalformed = errors.New("finite: malformed element")
)

const (
	opInverse = "Inverse"
	opDiv     = "Div"
	opParse   = "Parse"
)

// finiteErrorf wraps err with an operation tag, preserving it for errors.Is.
func finiteErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
