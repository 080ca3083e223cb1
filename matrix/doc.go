// SPDX-License-Identifier: MIT

// Package matrix offers dense matrices over any exact field.
//
// The matrix package provides:
//
//   - Dense[T], a row-major matrix generic over field.Field[T]: build it over
//     rational.Rational for exact rational algebra or over finite.Element[M]
//     for arithmetic modulo a prime.
//   - Rank, Determinant, Trace and Inverse, all driven by one Gaussian
//     elimination (package elimination). Inverse records the row operations
//     that reduce A to I and replays them on a fresh identity.
//   - Mul, a block-recursive product (seven sub-products per split) with
//     zero padding to the next power of two and a final crop, and MulDirect,
//     the plain triple loop it is checked against.
//   - In-place element-wise AddInPlace, SubInPlace, ScaleInPlace and their
//     allocating forms Add, Sub, Scale.
//
// Shapes are fixed at construction and checked once per operation: a
// mismatch is ErrDimensionMismatch, a square-only operation on a
// rectangular matrix is ErrNonSquare, and inverting a matrix whose
// determinant is zero is ErrDegenerate. Errors from the element field are
// passed through wrapped, so errors.Is(err, finite.ErrNotPrime) works on
// the result of Inverse over a composite modulus.
//
// Example:
//
//	a, _ := matrix.FromRows([][]rational.Rational{
//		{rational.FromInt64(2), rational.FromInt64(0)},
//		{rational.FromInt64(0), rational.FromInt64(2)},
//	})
//	inv, _ := a.Inverse() // [1/2, 0] [0, 1/2]
//
// Debug logging goes through github.com/ipfs/go-log/v2 under the "matrix"
// subsystem and is silent unless enabled.
package matrix
