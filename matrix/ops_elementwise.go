// SPDX-License-Identifier: MIT
// Package matrix - element-wise kernels.
//
// Purpose:
//   - In-place compound operations (+=, -=, scalar *=) on a receiver of fixed shape.
//   - Value forms that clone first and leave both operands untouched.
//
// There is deliberately no in-place matrix product: a product may change
// shape, so Mul always allocates its result.

package matrix

import "github.com/katalvlaran/lvalgebra/field"

// AddInPlace sets m = m + b element-wise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (m is left unchanged).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) AddInPlace(b *Dense[T]) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(opAdd, err)
	}
	for i := range m.data {
		m.data[i] = m.data[i].Add(b.data[i])
	}

	return nil
}

// SubInPlace sets m = m - b element-wise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (m is left unchanged).
func (m *Dense[T]) SubInPlace(b *Dense[T]) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(opSub, err)
	}
	for i := range m.data {
		m.data[i] = m.data[i].Sub(b.data[i])
	}

	return nil
}

// ScaleInPlace multiplies every entry of m by v.
func (m *Dense[T]) ScaleInPlace(v T) {
	for i := range m.data {
		m.data[i] = m.data[i].Mul(v)
	}
}

// Add returns a + b as a new matrix.
func Add[T field.Field[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := a.Clone()
	// Shapes were checked above.
	_ = out.AddInPlace(b)

	return out, nil
}

// Sub returns a - b as a new matrix.
func Sub[T field.Field[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	out := a.Clone()
	_ = out.SubInPlace(b)

	return out, nil
}

// Scale returns v·a as a new matrix.
func Scale[T field.Field[T]](a *Dense[T], v T) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := a.Clone()
	out.ScaleInPlace(v)

	return out, nil
}
