// SPDX-License-Identifier: MIT

// Package bigint - signed arithmetic and ordering.
//
// Purpose:
//   - Reduce every signed operation to one magnitude kernel (mag.go) plus a sign rule.
//   - Keep results canonical via newInt (no negative zero, no leading zero limbs).

package bigint

import "fmt"

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool { return isZeroMag(x.limbs) }

// Len returns the number of base-10^9 limbs (1 for zero).
func (x Int) Len() int { return len(x.mag()) }

// Neg returns -x. Zero stays +0.
func (x Int) Neg() Int {
	if x.IsZero() {
		return Zero()
	}

	return Int{limbs: x.limbs, neg: !x.neg}
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return Int{limbs: x.mag()}
}

// Cmp compares x and y and returns -1, 0 or +1.
// Ordering is decided by sign first, then by limb count, then limb by limb
// from the most significant end.
func (x Int) Cmp(y Int) int {
	xs, ys := x.Sign(), y.Sign()
	if xs != ys {
		if xs < ys {
			return -1
		}
		return 1
	}
	c := cmpMag(x.mag(), y.mag())
	if xs < 0 {
		return -c
	}

	return c
}

// Equal reports whether x == y. Canonical zero compares equal whatever its origin.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// Less reports whether x < y.
func (x Int) Less(y Int) bool { return x.Cmp(y) < 0 }

// Add returns x + y.
//
// Implementation:
//   - Same signs: add magnitudes limb-wise with carry; keep the common sign.
//   - Opposite signs: subtract the smaller magnitude from the larger; the
//     result takes the sign of the operand with the larger magnitude.
//
// Complexity: O(max(len(x), len(y))).
func (x Int) Add(y Int) Int {
	xm, ym := x.mag(), y.mag()
	if x.neg == y.neg {
		return newInt(addMag(xm, ym), x.neg)
	}
	switch c := cmpMag(xm, ym); {
	case c == 0:
		return Zero()
	case c > 0:
		return newInt(subMag(xm, ym), x.neg)
	default:
		return newInt(subMag(ym, xm), y.neg)
	}
}

// Sub returns x - y.
//
// Implementation:
//   - Opposite signs: |x| + |y| with the sign of x.
//   - Same signs, |x| ≥ |y|: borrow subtraction |x| - |y| with the sign of x.
//   - Same signs, |x| < |y|: |y| - |x| with the sign flipped.
//
// Complexity: O(max(len(x), len(y))).
func (x Int) Sub(y Int) Int {
	xm, ym := x.mag(), y.mag()
	if x.neg != y.neg {
		return newInt(addMag(xm, ym), x.neg)
	}
	if cmpMag(xm, ym) >= 0 {
		return newInt(subMag(xm, ym), x.neg)
	}

	return newInt(subMag(ym, xm), !x.neg)
}

// Mul returns x * y (schoolbook, sign = product of signs).
// Complexity: O(len(x)·len(y)).
func (x Int) Mul(y Int) Int {
	return newInt(mulMag(x.mag(), y.mag()), x.neg != y.neg)
}

// MulSmall returns x * d for 0 ≤ d < Base in a single pass.
func (x Int) MulSmall(d uint32) Int {
	if d >= Base {
		return x.Mul(FromUint64(uint64(d)))
	}

	return newInt(mulMagSmall(x.mag(), d), x.neg)
}

// Inc returns x + 1.
func (x Int) Inc() Int { return x.Add(One()) }

// Dec returns x - 1.
func (x Int) Dec() Int { return x.Sub(One()) }

// DivMod returns the truncated quotient and remainder of x / y:
// x == y*q + r, |r| < |y|, and r is zero or has the sign of x.
//
// Implementation:
//   - Stage 1: reject y == 0 (the digit search would otherwise spin on garbage).
//   - Stage 2: long division of |x| by |y| (divModMag).
//   - Stage 3: q is negative iff the signs differ; r takes the sign of x.
//
// Errors:
//   - ErrDivisionByZero.
//
// Complexity:
//   - Time O(len(x)·len(y)·30), Space O(len(x)).
func (x Int) DivMod(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, bigintErrorf(opDivMod, fmt.Errorf("%s / 0: %w", x, ErrDivisionByZero))
	}
	qm, rm := divModMag(x.mag(), y.mag())

	return newInt(qm, x.neg != y.neg), newInt(rm, x.neg), nil
}

// Quo returns the quotient of DivMod.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.DivMod(y)

	return q, err
}

// Rem returns the remainder of DivMod.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.DivMod(y)

	return r, err
}

// GCD returns gcd(|a|, |b|) by the Euclidean algorithm; GCD(0, 0) == 0.
// Complexity: O(log(min)) division steps.
func GCD(a, b Int) Int {
	x, y := a.mag(), b.mag()
	var r []uint32
	for !isZeroMag(y) {
		_, r = divModMag(x, y)
		x, y = y, r
	}

	return newInt(x, false)
}

// Pow10 returns 10^n for n ≥ 0 (n < 0 yields 1).
func Pow10(n int) Int {
	if n <= 0 {
		return One()
	}
	mag := make([]uint32, n/BaseDigits+1)
	top := uint32(1)
	for i := 0; i < n%BaseDigits; i++ {
		top *= 10
	}
	mag[len(mag)-1] = top

	return Int{limbs: mag}
}
