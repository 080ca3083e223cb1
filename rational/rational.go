// SPDX-License-Identifier: MIT

// Package rational - Rational storage, construction and text I/O.
//
// Representation invariants (enforced by reduce on every result):
//   - den > 0;
//   - gcd(|num|, den) == 1;
//   - zero is 0/1.

package rational

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/lvalgebra/bigint"
	"github.com/katalvlaran/lvalgebra/field"
)

// Rational is an immutable exact fraction num/den in lowest terms.
// The zero value is 0 (its empty denominator reads as 1).
type Rational struct {
	num bigint.Int // carries the sign
	den bigint.Int // always > 0 once reduced; zero only in the zero value
}

// Compile-time assertion: Rational is a field element.
var _ field.Field[Rational] = Rational{}

// one is the shared multiplicative identity. Rational values are immutable,
// so sharing it is safe.
var one = Rational{num: bigint.One(), den: bigint.One()}

// reduce brings num/den into canonical form. den must be nonzero.
//
// Implementation:
//   - Stage 1: move the sign onto the numerator.
//   - Stage 2: divide both by g = gcd(|num|, den) unless g == 1.
func reduce(num, den bigint.Int) Rational {
	if den.Sign() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	if num.IsZero() {
		return Rational{num: bigint.Zero(), den: bigint.One()}
	}
	g := bigint.GCD(num, den)
	if !g.Equal(bigint.One()) {
		// g > 0 here, so neither division can fail.
		num, _ = num.Quo(g)
		den, _ = den.Quo(g)
	}

	return Rational{num: num, den: den}
}

// New returns num/den in lowest terms.
//
// Errors:
//   - ErrZeroDenominator if den == 0.
func New(num, den bigint.Int) (Rational, error) {
	if den.IsZero() {
		return Rational{}, rationalErrorf(opNew, fmt.Errorf("%s/0: %w", num, ErrZeroDenominator))
	}

	return reduce(num, den), nil
}

// FromInt returns the integer n as n/1.
func FromInt(n bigint.Int) Rational { return Rational{num: n, den: bigint.One()} }

// FromInt64 returns the machine integer n as n/1.
func FromInt64(n int64) Rational { return FromInt(bigint.New(n)) }

// FromFrac returns n/d for machine integers.
func FromFrac(n, d int64) (Rational, error) { return New(bigint.New(n), bigint.New(d)) }

// MustFrac is FromFrac for literals; it panics when d == 0.
func MustFrac(n, d int64) Rational {
	r, err := FromFrac(n, d)
	if err != nil {
		panic(err)
	}

	return r
}

// Parse reads a rational from one of three spellings:
//   - an integer:        "42", "-7", "+3"
//   - a fraction:        "6/8" (reduced to 3/4), "-1/3", "1/-3"
//   - a decimal literal: "-1.25" (= -5/4), ".5", "2."
//
// Errors:
//   - ErrMalformed for anything else (wrapping bigint.ErrMalformed where a
//     component failed to parse).
//   - ErrZeroDenominator for "p/0".
func Parse(s string) (Rational, error) {
	if p, q, ok := strings.Cut(s, "/"); ok {
		num, err := bigint.Parse(p)
		if err != nil {
			return Rational{}, rationalErrorf(opParse, fmt.Errorf("%q: %w: %w", s, ErrMalformed, err))
		}
		den, err := bigint.Parse(q)
		if err != nil {
			return Rational{}, rationalErrorf(opParse, fmt.Errorf("%q: %w: %w", s, ErrMalformed, err))
		}

		return New(num, den)
	}

	intPart, frac, isDecimal := strings.Cut(s, ".")
	if !isDecimal {
		n, err := bigint.Parse(s)
		if err != nil {
			return Rational{}, rationalErrorf(opParse, fmt.Errorf("%q: %w: %w", s, ErrMalformed, err))
		}

		return FromInt(n), nil
	}

	sign := ""
	if intPart != "" && (intPart[0] == '-' || intPart[0] == '+') {
		sign, intPart = intPart[:1], intPart[1:]
	}
	// At least one digit on either side of the point; the fraction must be
	// bare digits (bigint.Parse would accept a sign there).
	if intPart+frac == "" || strings.ContainsAny(frac, "+-") {
		return Rational{}, rationalErrorf(opParse, fmt.Errorf("%q: %w", s, ErrMalformed))
	}
	num, err := bigint.Parse(sign + intPart + frac)
	if err != nil {
		return Rational{}, rationalErrorf(opParse, fmt.Errorf("%q: %w", s, ErrMalformed))
	}

	return reduce(num, bigint.Pow10(len(frac))), nil
}

// Num returns the numerator (carries the sign).
func (r Rational) Num() bigint.Int { return r.num }

// Den returns the denominator, always > 0.
func (r Rational) Den() bigint.Int {
	if r.den.IsZero() {
		return bigint.One()
	}

	return r.den
}

// String renders "p" for integers and "p/q" otherwise.
func (r Rational) String() string {
	if r.IsInteger() {
		return r.num.String()
	}

	return r.num.String() + "/" + r.den.String()
}

// MaxDecimalPrecision caps the fractional digits Decimal prints.
const MaxDecimalPrecision = 1 << 16

// Decimal renders r with exactly precision fractional digits, truncated
// toward zero. Precision 0 prints the integer part without a point;
// precision above MaxDecimalPrecision is treated as MaxDecimalPrecision.
// A minus sign is printed only if some printed digit is nonzero, so
// MustFrac(-1, 3).Decimal(0) is "0".
//
// Implementation:
//   - Stage 1: q = |num|·10^precision / den (integer division truncates).
//   - Stage 2: left-pad the digits of q to precision+1 and insert the point
//     precision places from the right.
//
// Complexity:
//   - One big multiplication and one long division of O(len(num)+precision/9) limbs.
func (r Rational) Decimal(precision uint) string {
	p := MaxDecimalPrecision
	if precision < MaxDecimalPrecision {
		p = int(precision)
	}
	scaled := r.num.Abs().Mul(bigint.Pow10(p))
	q, _ := scaled.Quo(r.Den())

	digits := q.String()
	if len(digits) <= p {
		digits = strings.Repeat("0", p+1-len(digits)) + digits
	}

	var sb strings.Builder
	sb.Grow(len(digits) + 2)
	if r.num.Sign() < 0 && !q.IsZero() {
		sb.WriteByte('-')
	}
	sb.WriteString(digits[:len(digits)-p])
	if p > 0 {
		sb.WriteByte('.')
		sb.WriteString(digits[len(digits)-p:])
	}

	return sb.String()
}

// Float64 returns the nearest float64 (and whether it is exact), via math/big.
func (r Rational) Float64() (float64, bool) {
	return new(big.Rat).SetFrac(r.num.Big(), r.Den().Big()).Float64()
}
