// SPDX-License-Identifier: MIT

package numtheory

import "github.com/holiman/uint256"

// MulMod returns a*b mod m for m > 0.
// Products that fit in 64 bits take the machine path; the rest are widened
// to 256 bits so no modulus below 2^64 can overflow.
func MulMod(a, b, m uint64) uint64 {
	if a < 1<<32 && b < 1<<32 {
		return (a * b) % m
	}
	var x, y, n uint256.Int
	x.SetUint64(a)
	y.SetUint64(b)
	n.SetUint64(m)

	return x.MulMod(&x, &y, &n).Uint64()
}

// AddMod returns a+b mod m for m > 0.
func AddMod(a, b, m uint64) uint64 {
	if s := a + b; s >= a {
		return s % m
	}
	// a+b wrapped past 2^64.
	var x, y, n uint256.Int
	x.SetUint64(a)
	y.SetUint64(b)
	n.SetUint64(m)

	return x.AddMod(&x, &y, &n).Uint64()
}

// SubMod returns a-b mod m for a, b already reduced into [0, m).
func SubMod(a, b, m uint64) uint64 {
	if a >= b {
		return a - b
	}

	return a + (m - b)
}

// ModPow returns a^n mod m by binary exponentiation, O(log n) multiplications.
// ModPow(a, 0, m) is 1 mod m.
func ModPow(a, n, m uint64) uint64 {
	if m == 1 {
		return 0
	}
	result := uint64(1)
	a %= m
	for n > 0 {
		if n&1 == 1 {
			result = MulMod(result, a, m)
		}
		a = MulMod(a, a, m)
		n >>= 1
	}

	return result
}
