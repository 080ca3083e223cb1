// SPDX-License-Identifier: MIT

package elimination

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/lvalgebra/field"
)

var log = logging.Logger("elimination")

// Result describes one elimination.
type Result[T field.Field[T]] struct {
	// Rows is the reduced echelon form (a private copy; the input is untouched).
	// With WithDropZeroRows it holds only the first Rank rows.
	Rows [][]T

	// Rank is the number of pivots found.
	Rank int

	// Pivots[i] is the pivot column of row i, for i < Rank.
	Pivots []int

	// Swaps counts row exchanges; (-1)^Swaps is the determinant's sign.
	Swaps int

	// Log lists the performed operations in order (WithRecord only).
	Log []RowOp[T]
}

// Eliminate reduces rows to reduced row-echelon form.
//
// Implementation:
//   - Stage 1: validate the shape and deep-copy the input.
//   - Stage 2: per column, pick the first nonzero entry at or below the next
//     unfinished row, swap it up, and clear the column in all other rows.
//   - Stage 3: optional pivot normalisation (square full rank only).
//   - Stage 4: optional truncation to Rank rows.
//
// Behavior highlights:
//   - Rows whose entry in the pivot column is already zero are skipped,
//     so no AddScaled with a zero factor is ever logged.
//   - An empty input (no rows) yields Rank 0 and no rows.
//
// Errors:
//   - ErrRaggedRows for non-rectangular input.
//   - Any error from T.Div, wrapped with the op tag.
//
// Complexity:
//   - Time O(m·n·min(m, n)) field operations, Space O(m·n) for the copy.
func Eliminate[T field.Field[T]](rows [][]T, opts ...Option) (Result[T], error) {
	o := gatherOptions(opts...)

	m := len(rows)
	n := 0
	if m > 0 {
		n = len(rows[0])
	}
	work := make([][]T, m)
	for i, row := range rows {
		if len(row) != n {
			return Result[T]{}, eliminationErrorf(opEliminate, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), n, ErrRaggedRows))
		}
		work[i] = append(make([]T, 0, n), row...)
	}

	res := Result[T]{Pivots: make([]int, 0, min(m, n))}
	record := func(op RowOp[T]) {
		op.apply(work)
		if o.record {
			res.Log = append(res.Log, op)
		}
	}

	var (
		rank, col, p, i int
		ratio           T
		err             error
	)
	for col = 0; col < n && rank < m; col++ {
		p = -1
		for i = rank; i < m; i++ {
			if !work[i][col].IsZero() {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		if p != rank {
			record(Swap[T](rank, p))
			res.Swaps++
		}

		pivot := work[rank][col]
		for i = 0; i < m; i++ {
			if i == rank || work[i][col].IsZero() {
				continue
			}
			if ratio, err = work[i][col].Div(pivot); err != nil {
				return Result[T]{}, eliminationErrorf(opEliminate, fmt.Errorf("row %d, column %d: %w", i, col, err))
			}
			record(AddScaled(i, rank, field.Neg(ratio)))
		}
		res.Pivots = append(res.Pivots, col)
		rank++
	}

	if o.normalize && m == n && rank == m {
		var inv T
		for i = 0; i < m; i++ {
			if inv, err = field.Inv(work[i][i]); err != nil {
				return Result[T]{}, eliminationErrorf(opEliminate, fmt.Errorf("normalising row %d: %w", i, err))
			}
			record(ScaleRow(i, inv))
		}
	}

	if o.dropZeroRows {
		// After full reduction, rows rank..m-1 are exactly the zero rows.
		work = work[:rank]
	}

	res.Rows = work
	res.Rank = rank
	log.Debugf("eliminated %dx%d: rank=%d swaps=%d ops=%d", m, n, rank, res.Swaps, len(res.Log))

	return res, nil
}

// Replay applies every op of ops, in order, to rows in place.
// Replaying the log of Eliminate(A, WithRecord(), WithNormalize()) on the
// identity turns it into A⁻¹.
//
// Errors:
//   - ErrRowOutOfRange / ErrRaggedRows from the first failing op, with its
//     index; ops before it have already been applied.
func Replay[T field.Field[T]](ops []RowOp[T], rows [][]T) error {
	for k, op := range ops {
		if err := op.Apply(rows); err != nil {
			return eliminationErrorf(opReplay, fmt.Errorf("op %d: %w", k, err))
		}
	}

	return nil
}
