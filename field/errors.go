// SPDX-License-Identifier: MIT
// Package field: sentinel error set.

package field

import "errors"

// ErrLengthMismatch is returned by vector helpers given slices of different length.
var ErrLengthMismatch = errors.New("field: length mismatch")
