// SPDX-License-Identifier: MIT

// Package rational - arithmetic, ordering and the field contract.

package rational

import "fmt"

// Zero returns 0. The receiver is ignored.
func (Rational) Zero() Rational { return Rational{} }

// One returns 1. The receiver is ignored.
func (Rational) One() Rational { return one }

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.num.IsZero() }

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int { return r.num.Sign() }

// IsInteger reports whether the denominator is 1.
func (r Rational) IsInteger() bool { return r.den.IsZero() || r.den.Equal(one.den) }

// Neg returns -r.
func (r Rational) Neg() Rational { return Rational{num: r.num.Neg(), den: r.Den()} }

// Abs returns |r|.
func (r Rational) Abs() Rational { return Rational{num: r.num.Abs(), den: r.Den()} }

// Add returns r + s = (a·d + c·b) / (b·d), reduced.
func (r Rational) Add(s Rational) Rational {
	b, d := r.Den(), s.Den()

	return reduce(r.num.Mul(d).Add(s.num.Mul(b)), b.Mul(d))
}

// Sub returns r - s = (a·d - c·b) / (b·d), reduced.
func (r Rational) Sub(s Rational) Rational {
	b, d := r.Den(), s.Den()

	return reduce(r.num.Mul(d).Sub(s.num.Mul(b)), b.Mul(d))
}

// Mul returns r · s = (a·c) / (b·d), reduced.
func (r Rational) Mul(s Rational) Rational {
	return reduce(r.num.Mul(s.num), r.Den().Mul(s.Den()))
}

// Div returns r / s, i.e. r times the reciprocal of s.
//
// Errors:
//   - ErrDivisionByZero if s == 0.
func (r Rational) Div(s Rational) (Rational, error) {
	if s.IsZero() {
		return Rational{}, rationalErrorf(opDiv, fmt.Errorf("%s / 0: %w", r, ErrDivisionByZero))
	}

	return reduce(r.num.Mul(s.Den()), r.Den().Mul(s.num)), nil
}

// Inv returns 1/r.
//
// Errors:
//   - ErrDivisionByZero if r == 0.
func (r Rational) Inv() (Rational, error) {
	if r.IsZero() {
		return Rational{}, rationalErrorf(opInv, ErrDivisionByZero)
	}

	return reduce(r.Den(), r.num), nil
}

// Cmp compares r and s by cross multiplication: sign(a·d - c·b).
// Both denominators are positive, so the sign carries over.
func (r Rational) Cmp(s Rational) int {
	return r.num.Mul(s.Den()).Cmp(s.num.Mul(r.Den()))
}

// Equal reports whether r == s.
func (r Rational) Equal(s Rational) bool { return r.Cmp(s) == 0 }

// Less reports whether r < s.
func (r Rational) Less(s Rational) bool { return r.Cmp(s) < 0 }
