// SPDX-License-Identifier: MIT

package elimination

import (
	"fmt"

	"github.com/katalvlaran/lvalgebra/field"
)

// OpKind tags the variant of a RowOp.
type OpKind uint8

const (
	// OpSwap exchanges rows Target and Source.
	OpSwap OpKind = iota
	// OpAddScaled adds Factor × row Source to row Target.
	OpAddScaled
	// OpScaleRow multiplies row Target by Factor.
	OpScaleRow
)

// String returns the lower-case op name.
func (k OpKind) String() string {
	switch k {
	case OpSwap:
		return "swap"
	case OpAddScaled:
		return "add"
	case OpScaleRow:
		return "scale"
	default:
		return fmt.Sprintf("OpKind(%d)", uint8(k))
	}
}

// RowOp is one elementary row operation. It holds indices and a factor only,
// never a reference to the matrix it was recorded against, so it can be
// replayed on any matrix with enough rows.
//   - OpSwap:      Target <-> Source; Factor unused.
//   - OpAddScaled: row[Target] += Factor · row[Source].
//   - OpScaleRow:  row[Target] *= Factor; Source unused.
type RowOp[T field.Field[T]] struct {
	Kind   OpKind
	Target int
	Source int
	Factor T
}

// Swap returns the op exchanging rows a and b.
func Swap[T field.Field[T]](a, b int) RowOp[T] {
	return RowOp[T]{Kind: OpSwap, Target: a, Source: b}
}

// AddScaled returns the op row[target] += factor · row[source].
func AddScaled[T field.Field[T]](target, source int, factor T) RowOp[T] {
	return RowOp[T]{Kind: OpAddScaled, Target: target, Source: source, Factor: factor}
}

// ScaleRow returns the op row[row] *= factor.
func ScaleRow[T field.Field[T]](row int, factor T) RowOp[T] {
	return RowOp[T]{Kind: OpScaleRow, Target: row, Factor: factor}
}

// String renders the op as swap(a, b), add(t, s, f) or scale(r, f).
func (op RowOp[T]) String() string {
	switch op.Kind {
	case OpSwap:
		return fmt.Sprintf("swap(%d, %d)", op.Target, op.Source)
	case OpAddScaled:
		return fmt.Sprintf("add(%d, %d, %s)", op.Target, op.Source, op.Factor)
	default:
		return fmt.Sprintf("%s(%d, %s)", op.Kind, op.Target, op.Factor)
	}
}

// Apply performs op in place on rows.
//
// Errors:
//   - ErrRowOutOfRange if Target (or Source, for two-row ops) is not a row of rows.
//   - ErrRaggedRows if the two rows of an AddScaled differ in length.
func (op RowOp[T]) Apply(rows [][]T) error {
	if op.Target < 0 || op.Target >= len(rows) {
		return eliminationErrorf(opApply, fmt.Errorf("%s on %d rows: %w", op, len(rows), ErrRowOutOfRange))
	}
	if op.Kind != OpScaleRow && (op.Source < 0 || op.Source >= len(rows)) {
		return eliminationErrorf(opApply, fmt.Errorf("%s on %d rows: %w", op, len(rows), ErrRowOutOfRange))
	}
	if op.Kind == OpAddScaled && len(rows[op.Target]) != len(rows[op.Source]) {
		return eliminationErrorf(opApply, fmt.Errorf("%s: %w", op, ErrRaggedRows))
	}
	op.apply(rows)

	return nil
}

// apply performs op without bounds checks.
func (op RowOp[T]) apply(rows [][]T) {
	switch op.Kind {
	case OpSwap:
		rows[op.Target], rows[op.Source] = rows[op.Source], rows[op.Target]
	case OpAddScaled:
		dst, src := rows[op.Target], rows[op.Source]
		for j := range dst {
			if src[j].IsZero() {
				continue
			}
			dst[j] = dst[j].Add(op.Factor.Mul(src[j]))
		}
	case OpScaleRow:
		row := rows[op.Target]
		for j := range row {
			row[j] = row[j].Mul(op.Factor)
		}
	}
}
