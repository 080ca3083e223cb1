// SPDX-License-Identifier: MIT

// Package bigint - unsigned magnitude kernels.
//
// Purpose:
//   - Implement the limb-level algorithms on little-endian base-10^9 slices.
//   - Keep sign handling out of the hot loops; arith.go composes these.
//
// All kernels allocate their result and never write to their inputs.

package bigint

// trim drops most-significant zero limbs; an all-zero or empty slice becomes {0}.
func trim(mag []uint32) []uint32 {
	n := len(mag)
	for n > 1 && mag[n-1] == 0 {
		n--
	}
	if n == 0 {
		return zeroLimbs
	}

	return mag[:n]
}

// isZeroMag reports whether a trimmed magnitude is 0.
func isZeroMag(mag []uint32) bool {
	return len(mag) == 0 || (len(mag) == 1 && mag[0] == 0)
}

// cmpMag compares two trimmed magnitudes: first by limb count, then from the
// most significant limb down.
func cmpMag(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}

	return 0
}

// addMag returns a + b with carry propagation.
// Complexity: O(max(len(a), len(b))).
func addMag(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a)+1)
	var carry uint32
	var sum uint32
	for i := 0; i < len(a); i++ {
		sum = a[i] + carry
		if i < len(b) {
			sum += b[i]
		}
		// Two limbs plus carry stay below 2·10^9+1 < 2^32.
		if sum >= Base {
			sum -= Base
			carry = 1
		} else {
			carry = 0
		}
		out[i] = sum
	}
	out[len(a)] = carry

	return trim(out)
}

// subMag returns a - b with borrow propagation. Requires a ≥ b.
// Complexity: O(len(a)).
func subMag(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow int64
	var diff int64
	for i := 0; i < len(a); i++ {
		diff = int64(a[i]) - borrow
		if i < len(b) {
			diff -= int64(b[i])
		}
		if diff < 0 {
			diff += Base
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(diff)
	}

	return trim(out)
}

// mulMag returns a * b by schoolbook limb convolution.
//
// Implementation:
//   - Stage 1: allocate len(a)+len(b) limbs.
//   - Stage 2: for each a[i], accumulate a[i]*b[j] + out[i+j] + carry in a uint64
//     (at most (10^9-1)^2 + 2·10^9 < 2^64) and split into limb and carry.
//
// Complexity:
//   - Time O(len(a)·len(b)), Space O(len(a)+len(b)).
func mulMag(a, b []uint32) []uint32 {
	if isZeroMag(a) || isZeroMag(b) {
		return zeroLimbs
	}
	out := make([]uint32, len(a)+len(b))
	var (
		i, j  int
		ai    uint64
		cur   uint64
		carry uint64
	)
	for i = 0; i < len(a); i++ {
		ai = uint64(a[i])
		if ai == 0 {
			continue
		}
		carry = 0
		for j = 0; j < len(b); j++ {
			cur = uint64(out[i+j]) + ai*uint64(b[j]) + carry
			out[i+j] = uint32(cur % Base)
			carry = cur / Base
		}
		for k := i + len(b); carry > 0; k++ {
			cur = uint64(out[k]) + carry
			out[k] = uint32(cur % Base)
			carry = cur / Base
		}
	}

	return trim(out)
}

// mulMagSmall returns a * d for a single digit d < Base.
func mulMagSmall(a []uint32, d uint32) []uint32 {
	if d == 0 || isZeroMag(a) {
		return zeroLimbs
	}
	out := make([]uint32, len(a)+1)
	var cur, carry uint64
	for i := 0; i < len(a); i++ {
		cur = uint64(a[i])*uint64(d) + carry
		out[i] = uint32(cur % Base)
		carry = cur / Base
	}
	out[len(a)] = uint32(carry)

	return trim(out)
}

// shiftIn returns buf*Base + limb, i.e. limb prepended as the new least
// significant limb of buf.
func shiftIn(buf []uint32, limb uint32) []uint32 {
	if isZeroMag(buf) {
		return []uint32{limb}
	}
	out := make([]uint32, len(buf)+1)
	out[0] = limb
	copy(out[1:], buf)

	return out
}

// divModMag performs long division of magnitudes: a = b*q + r, 0 ≤ r < b.
// Requires b ≠ 0.
//
// Implementation:
//   - Stage 1: walk a from the most significant limb down, shifting each limb
//     into the running remainder buffer.
//   - Stage 2: while the buffer is below b the quotient digit is 0; otherwise
//     binary-search the largest d in [0, Base) with b*d ≤ buffer.
//   - Stage 3: subtract b*d from the buffer and emit d as the next quotient limb.
//
// Behavior highlights:
//   - No multi-limb digit estimation: each digit costs ~30 probes of b*d,
//     which is simple and exact for base 10^9.
//
// Complexity:
//   - Time O(len(a)·len(b)·log2(Base)), Space O(len(a)).
func divModMag(a, b []uint32) (q, r []uint32) {
	if cmpMag(a, b) < 0 {
		r = make([]uint32, len(a))
		copy(r, a)
		return zeroLimbs, r
	}

	// Quotient is built most-significant first, then reversed.
	digits := make([]uint32, 0, len(a)-len(b)+1)
	buf := zeroLimbs
	var (
		lo, hi, mid uint32
	)
	for i := len(a) - 1; i >= 0; i-- {
		buf = shiftIn(buf, a[i])
		if cmpMag(buf, b) < 0 {
			digits = append(digits, 0)
			continue
		}
		lo, hi = 1, Base
		for hi-lo > 1 {
			mid = lo + (hi-lo)/2
			if cmpMag(mulMagSmall(b, mid), buf) > 0 {
				hi = mid
			} else {
				lo = mid
			}
		}
		buf = subMag(buf, mulMagSmall(b, lo))
		digits = append(digits, lo)
	}

	q = make([]uint32, len(digits))
	for i, d := range digits {
		q[len(digits)-1-i] = d
	}

	return trim(q), trim(buf)
}
