// SPDX-License-Identifier: MIT
// Package elimination: sentinel error set.
// Every message is prefixed with "elimination: ..."; callers match with errors.Is.
// Field division failures are propagated wrapped, never replaced.

package elimination

import (
	"errors"
	"fmt"
)

var (
	// ErrRaggedRows is returned when the input rows do not all have the same length.
	ErrRaggedRows = errors.New("elimination: rows have different lengths")

	// ErrRowOutOfRange is returned when a row operation names a row the target lacks.
	ErrRowOutOfRange = errors.New("elimination: row index out of range")
)

const (
	opEliminate = "Eliminate"
	opReplay    = "Replay"
	opApply     = "Apply"
)

// eliminationErrorf wraps err with an operation tag, preserving it for errors.Is.
func eliminationErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
