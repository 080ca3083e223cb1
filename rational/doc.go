// SPDX-License-Identifier: MIT

// Package rational implements exact fractions over bigint.Int.
//
// 🚀 What is rational.Rational?
//
//	A numerator/denominator pair kept in lowest terms: the denominator is
//	positive and gcd(|num|, den) == 1 after every operation, so two equal
//	values always have the same representation. Rational satisfies
//	field.Field and is the default element type for exact matrices.
//
// ✨ Key features:
//   - Add, Sub, Mul by cross multiplication followed by Euclidean reduction
//   - Div and Inv refuse a zero divisor with ErrDivisionByZero
//   - Cmp/Equal by cross multiplication, no common denominator needed
//   - Decimal(precision): exact digits, truncated toward zero
//   - Parse accepts "7", "-3/4" and "-1.25"
//
// ⚙️ Usage:
//
//	a := rational.MustFrac(1, 3)
//	b := rational.MustFrac(1, 6)
//	fmt.Println(a.Add(b))          // 1/2
//	fmt.Println(a.Decimal(5))      // 0.33333
//
// The zero value of Rational is 0 (0/1) and is ready to use.
package rational
