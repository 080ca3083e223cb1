// Package lvalgebra is exact linear algebra in pure Go: arbitrary-precision
// integers and rationals, prime fields, and dense matrices generic over
// whichever of them you pick.
//
// What is inside?
//
//	bigint/       signed integers on base-10^9 limbs, exact decimal I/O
//	rational/     reduced fractions over bigint, truncated decimal rendering
//	finite/       Z/m elements with the modulus in the type: Element[Mod29]
//	numtheory/    Miller–Rabin, modular mul/pow on 64-bit moduli, NextPow2
//	field/        the Field[T] contract plus Neg, Inv, Pow, Sum, Dot
//	elimination/  Gaussian elimination with a replayable row-operation log
//	matrix/       Dense[T]: rank, determinant, trace, inverse, block product
//
// Nothing rounds. A determinant over rational.Rational is the exact fraction;
// over finite.Element[M] it is the exact residue. Inverting modulo a
// composite is refused with finite.ErrNotPrime instead of silently returning
// garbage.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]rational.Rational{
//		{rational.FromInt64(1), rational.FromInt64(2)},
//		{rational.FromInt64(3), rational.FromInt64(4)},
//	})
//	inv, _ := a.Inverse()   // [[-2, 1], [3/2, -1/2]]
//	det, _ := a.Determinant() // -2
//
// The cmd/lvalgebra command runs the same operations on matrices read from
// text, and examples/ holds a Hill cipher over GF(29) and Fibonacci by
// matrix powers.
//
//	go get github.com/katalvlaran/lvalgebra
package lvalgebra
