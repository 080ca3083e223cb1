// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Fix the shape at construction; no operation ever reshapes a Dense in place.
//
// Complexity quicksheet:
//   - New/Zeros/Identity: O(r*c); At/Set: O(1); Clone/ToRows/Transpose: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvalgebra/field"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix over the field T.
//   - r,c hold dimensions (rows, cols), both > 0, fixed at construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense owns its buffer: constructors copy their inputs and accessors
// return copies, so no two matrices ever alias the same storage.
type Dense[T field.Field[T]] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// New creates an r×c matrix with every entry set to fill.
//
// Errors:
//   - ErrInvalidDimensions if rows ≤ 0 or cols ≤ 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T field.Field[T]](rows, cols int, fill T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	buf := make([]T, rows*cols)
	for i := range buf {
		buf[i] = fill
	}

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// Zeros creates an r×c matrix filled with the field's zero.
func Zeros[T field.Field[T]](rows, cols int) (*Dense[T], error) {
	return New(rows, cols, field.Zero[T]())
}

// Identity creates the n×n identity.
func Identity[T field.Field[T]](n int) (*Dense[T], error) {
	m, err := Zeros[T](n, n)
	if err != nil {
		return nil, err
	}
	one := field.One[T]()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// FromRows copies a rectangular [][]T into a new Dense.
//
// Errors:
//   - ErrInvalidDimensions if there are no rows or the first row is empty.
//   - ErrRaggedRows if a row's length differs from the first row's.
func FromRows[T field.Field[T]](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	buf := make([]T, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(row), c, ErrRaggedRows)
		}
		buf = append(buf, row...)
	}

	return &Dense[T]{r: r, c: c, data: buf}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense[T]) Shape() (int, int) { return m.r, m.c }

// IsSquare reports whether rows == cols.
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows returns the entries as a freshly allocated [][]T.
// This is the shape the elimination engine consumes.
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: buf}
}

// Equal reports whether b has the same shape and equal entries.
// A nil matrix equals only another nil matrix.
func (m *Dense[T]) Equal(b *Dense[T]) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(b.data[i]) {
			return false
		}
	}

	return true
}

// Transpose returns a new c×r matrix with mᵀ[j][i] = m[i][j].
func (m *Dense[T]) Transpose() *Dense[T] {
	out := &Dense[T]{r: m.c, c: m.r, data: make([]T, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// String renders one bracketed, comma-separated line per row, e.g.
// "[1, 1/2]\n[0, 3]\n".
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
