// SPDX-License-Identifier: MIT

// Package bigint - Int storage, constructors and decimal I/O.
//
// Purpose:
//   - Hold the limb vector + sign representation and its canonical form.
//   - Convert between decimal text, machine integers, raw limbs and math/big.
//
// Representation invariants (enforced by newInt on every result):
//   - every limb < Base;
//   - no most-significant zero limbs, except zero itself which is {0};
//   - zero is never negative.

package bigint

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	// Base is the limb radix. Each limb holds exactly BaseDigits decimal digits.
	Base = 1_000_000_000

	// BaseDigits is log10(Base).
	BaseDigits = 9
)

// Int is an immutable arbitrary-precision signed integer.
//   - limbs hold the magnitude in base 10^9, least significant limb first.
//   - neg is the sign; it is false for zero.
//
// The zero value is 0. Int values may be copied freely: no method mutates the
// limb slice of an existing value.
type Int struct {
	limbs []uint32 // magnitude, little-endian base-10^9 limbs
	neg   bool     // true iff the value is < 0
}

var _ fmt.Stringer = Int{}

// zeroLimbs is the canonical magnitude of 0.
var zeroLimbs = []uint32{0}

// newInt builds a canonical Int from a magnitude it takes ownership of.
func newInt(mag []uint32, neg bool) Int {
	mag = trim(mag)
	if isZeroMag(mag) {
		return Int{limbs: zeroLimbs}
	}

	return Int{limbs: mag, neg: neg}
}

// Zero returns 0.
func Zero() Int { return Int{limbs: zeroLimbs} }

// One returns 1.
func One() Int { return Int{limbs: []uint32{1}} }

// New converts a machine integer, including math.MinInt64.
func New(v int64) Int {
	if v >= 0 {
		return FromUint64(uint64(v))
	}
	// -(v+1)+1 avoids overflowing on MinInt64.
	u := uint64(-(v + 1)) + 1
	x := FromUint64(u)
	x.neg = true

	return x
}

// FromUint64 converts an unsigned machine integer.
func FromUint64(u uint64) Int {
	if u == 0 {
		return Zero()
	}
	mag := make([]uint32, 0, 3)
	for u > 0 {
		mag = append(mag, uint32(u%Base))
		u /= Base
	}

	return Int{limbs: mag}
}

// FromLimbs builds an Int from little-endian base-10^9 limbs.
// The slice is copied; most-significant zero limbs are trimmed and a zero
// magnitude always yields +0 regardless of negative.
//
// Errors:
//   - ErrLimbOutOfRange if any limb ≥ Base.
func FromLimbs(limbs []uint32, negative bool) (Int, error) {
	for i, l := range limbs {
		if l >= Base {
			return Int{}, bigintErrorf(opFromLimbs, fmt.Errorf("limb %d = %d: %w", i, l, ErrLimbOutOfRange))
		}
	}
	mag := make([]uint32, len(limbs))
	copy(mag, limbs)

	return newInt(mag, negative), nil
}

// Parse reads a decimal integer matching ["+"|"-"] digit+.
// Leading zeros are accepted and dropped; "-0" parses to 0.
//
// Implementation:
//   - Stage 1: strip an optional sign and validate that the rest is a non-empty digit run.
//   - Stage 2: cut the digits into 9-digit groups from the right; each group is one limb.
//
// Errors:
//   - ErrMalformed on empty input, a bare sign, or any non-digit byte.
//
// Complexity:
//   - Time O(len(s)), Space O(len(s)/9).
func Parse(s string) (Int, error) {
	digits := s
	neg := false
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}
	if digits == "" {
		return Int{}, bigintErrorf(opParse, fmt.Errorf("%q: %w", s, ErrMalformed))
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Int{}, bigintErrorf(opParse, fmt.Errorf("%q: %w", s, ErrMalformed))
		}
	}

	mag := make([]uint32, 0, (len(digits)+BaseDigits-1)/BaseDigits)
	var (
		left, right int
		limb        uint64
	)
	for right = len(digits); right > 0; right -= BaseDigits {
		left = right - BaseDigits
		if left < 0 {
			left = 0
		}
		// The group is at most 9 validated digits, so ParseUint cannot fail.
		limb, _ = strconv.ParseUint(digits[left:right], 10, 32)
		mag = append(mag, uint32(limb))
	}

	return newInt(mag, neg), nil
}

// MustParse is Parse for literals; it panics on malformed input.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return x
}

// String renders the exact decimal value, with a leading '-' iff x < 0.
// Complexity: O(n) limbs.
func (x Int) String() string {
	mag := x.mag()
	var sb strings.Builder
	sb.Grow(len(mag)*BaseDigits + 1)
	if x.neg {
		sb.WriteByte('-')
	}
	top := len(mag) - 1
	sb.WriteString(strconv.FormatUint(uint64(mag[top]), 10))

	var buf [BaseDigits]byte
	var i, j int
	var limb uint32
	for i = top - 1; i >= 0; i-- {
		// Lower limbs are always printed as exactly nine digits.
		limb = mag[i]
		for j = BaseDigits - 1; j >= 0; j-- {
			buf[j] = byte('0' + limb%10)
			limb /= 10
		}
		sb.Write(buf[:])
	}

	return sb.String()
}

// Limbs returns a copy of the little-endian magnitude limbs.
func (x Int) Limbs() []uint32 {
	mag := x.mag()
	out := make([]uint32, len(mag))
	copy(out, mag)

	return out
}

// Int64 returns x as an int64 and whether it fits.
func (x Int) Int64() (int64, bool) {
	u, ok := magToUint64(x.mag())
	if !ok {
		return 0, false
	}
	if x.neg {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u-1) - 1, true
	}
	if u > math.MaxInt64 {
		return 0, false
	}

	return int64(u), true
}

// Uint64 returns x as a uint64 and whether it fits (x must be ≥ 0).
func (x Int) Uint64() (uint64, bool) {
	if x.neg {
		return 0, false
	}

	return magToUint64(x.mag())
}

// FromBig converts a math/big integer.
func FromBig(b *big.Int) Int {
	if b == nil {
		return Zero()
	}
	// big.Int.String is always a valid decimal integer.
	return MustParse(b.String())
}

// Big converts x to a freshly allocated *big.Int.
func (x Int) Big() *big.Int {
	b, _ := new(big.Int).SetString(x.String(), 10)

	return b
}

// mag returns the magnitude, treating the zero value as {0}.
func (x Int) mag() []uint32 {
	if len(x.limbs) == 0 {
		return zeroLimbs
	}

	return x.limbs
}

// magToUint64 folds a magnitude into a uint64, reporting overflow.
func magToUint64(mag []uint32) (uint64, bool) {
	var u uint64
	for i := len(mag) - 1; i >= 0; i-- {
		if u > (math.MaxUint64-uint64(mag[i]))/Base {
			return 0, false
		}
		u = u*Base + uint64(mag[i])
	}

	return u, true
}
