// SPDX-License-Identifier: MIT
// Package matrix - elimination-backed kernels: rank, determinant, trace,
// inverse and integer powers.
//
// Purpose:
//   - Route every echelon-form question through elimination.Eliminate so
//     there is exactly one pivoting policy in the repository.
//   - Define operation tags shared by all kernels for uniform error wrapping.
//
// Notes:
//   - Field errors (e.g. finite.ErrNotPrime) are propagated wrapped with the
//     op tag, never turned into a wrong answer.

package matrix

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/lvalgebra/elimination"
	"github.com/katalvlaran/lvalgebra/field"
)

var log = logging.Logger("matrix")

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opScale       = "Scale"
	opMul         = "Mul"
	opRank        = "Rank"
	opDeterminant = "Determinant"
	opTrace       = "Trace"
	opInverse     = "Inverse"
	opPow         = "Pow"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Rank returns the number of linearly independent rows.
//
// Implementation:
//   - Stage 1: eliminate a copy of the rows with zero-row dropping.
//   - Stage 2: count the surviving rows.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions; field division errors, wrapped.
//
// Complexity:
//   - Time O(r·c·min(r,c)) field operations.
func (m *Dense[T]) Rank() (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	res, err := elimination.Eliminate(m.ToRows(), elimination.WithDropZeroRows())
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return len(res.Rows), nil
}

// Determinant returns det(m).
//
// Implementation:
//   - Stage 1: full elimination without normalisation (row additions keep
//     the determinant, each swap flips its sign).
//   - Stage 2: multiply the diagonal of the reduced form; any zero on it
//     (rank deficiency) makes the product zero.
//   - Stage 3: negate when the number of swaps is odd.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare; field division errors, wrapped.
//
// Complexity:
//   - Time O(n³) field operations.
func (m *Dense[T]) Determinant() (T, error) {
	zero := field.Zero[T]()
	if err := ValidateSquareNonNil(m); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}
	res, err := elimination.Eliminate(m.ToRows())
	if err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}
	if res.Rank < m.r {
		return zero, nil
	}

	det := field.One[T]()
	for i := 0; i < m.r; i++ {
		det = det.Mul(res.Rows[i][i])
	}
	if res.Swaps%2 == 1 {
		det = field.Neg(det)
	}

	return det, nil
}

// Trace returns the sum of the diagonal.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func (m *Dense[T]) Trace() (T, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return field.Zero[T](), matrixErrorf(opTrace, err)
	}
	diag := make([]T, m.r)
	for i := range diag {
		diag[i] = m.data[i*m.c+i]
	}

	return field.Sum(diag...), nil
}

// Inverse returns m⁻¹.
//
// Implementation:
//   - Stage 1: eliminate with operation logging and pivot normalisation;
//     for invertible m this reduces m to I.
//   - Stage 2: rank < n means det == 0: fail with ErrDegenerate.
//   - Stage 3: replay the log, in order, on a fresh identity. The log is
//     the product E of elementary matrices with E·m = I, so E·I = m⁻¹.
//
// Behavior highlights:
//   - The identity is only touched by the replay, never during elimination.
//   - m itself is not modified.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare, ErrDegenerate; field division errors, wrapped
//     (finite.ErrNotPrime for a composite modulus).
//
// Complexity:
//   - Time O(n³) field operations, Space O(n²) plus the log (O(n²) ops).
func (m *Dense[T]) Inverse() (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	res, err := elimination.Eliminate(m.ToRows(), elimination.WithRecord(), elimination.WithNormalize())
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if res.Rank < m.r {
		return nil, matrixErrorf(opInverse, fmt.Errorf("rank %d of %d: %w", res.Rank, m.r, ErrDegenerate))
	}

	id, err := Identity[T](m.r)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	rows := id.ToRows()
	if err = elimination.Replay(res.Log, rows); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	log.Debugf("inverse %dx%d: replayed %d row ops", m.r, m.c, len(res.Log))

	return FromRows(rows)
}

// Pow returns m^n by repeated squaring; m^0 is the identity.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare.
//
// Complexity:
//   - O(log n) products.
func (m *Dense[T]) Pow(n uint64, opts ...Option) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	result, err := Identity[T](m.r)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	base := m.Clone()
	for n > 0 {
		if n&1 == 1 {
			if result, err = Mul(result, base, opts...); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
		n >>= 1
		if n == 0 {
			break
		}
		if base, err = Mul(base, base, opts...); err != nil {
			return nil, matrixErrorf(opPow, err)
		}
	}

	return result, nil
}
