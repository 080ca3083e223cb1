// SPDX-License-Identifier: MIT

package elimination

// Defaults: a plain forward sweep keeping every row, with no log.
const (
	// DefaultRecord controls whether Result.Log is filled.
	DefaultRecord = false

	// DefaultNormalize controls the final ScaleRow pass for square full-rank input.
	DefaultNormalize = false

	// DefaultDropZeroRows controls whether trailing zero rows are removed from Result.Rows.
	DefaultDropZeroRows = false
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the effective configuration of one Eliminate call.
type Options struct {
	record       bool // DefaultRecord
	normalize    bool // DefaultNormalize
	dropZeroRows bool // DefaultDropZeroRows
}

// WithRecord fills Result.Log with every row operation performed, in order.
func WithRecord() Option { return func(o *Options) { o.record = true } }

// WithNormalize scales every pivot to One when the input is square and of
// full rank. Inversion needs it; determinant must not use it.
func WithNormalize() Option { return func(o *Options) { o.normalize = true } }

// WithDropZeroRows truncates Result.Rows to its Rank nonzero rows.
func WithDropZeroRows() Option { return func(o *Options) { o.dropZeroRows = true } }

// gatherOptions applies user setters over the defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		record:       DefaultRecord,
		normalize:    DefaultNormalize,
		dropZeroRows: DefaultDropZeroRows,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
