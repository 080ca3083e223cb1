// SPDX-License-Identifier: MIT

package numtheory

// millerRabinBases are the first twelve primes; together they decide
// primality exactly for every n < 3.3·10^24, which covers uint64.
var millerRabinBases = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsPrime reports whether n is prime.
//
// Implementation:
//   - Stage 1: dispose of n < 2 and of multiples of the small bases.
//   - Stage 2: write n-1 = d·2^s with d odd.
//   - Stage 3: for each base, a^d ≡ 1 or a^(d·2^r) ≡ -1 for some r < s, else composite.
//
// Determinism:
//   - Fixed bases; no randomness, so the answer is exact, not probabilistic.
//
// Complexity:
//   - Time O(12·log n) modular multiplications.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for _, p := range millerRabinBases {
		if n%p == 0 {
			return n == p
		}
	}

	d, s := n-1, 0
	for d&1 == 0 {
		d >>= 1
		s++
	}

	var x uint64
	var r int
nextBase:
	for _, a := range millerRabinBases {
		x = ModPow(a, d, n)
		if x == 1 || x == n-1 {
			continue
		}
		for r = 1; r < s; r++ {
			x = MulMod(x, x, n)
			if x == n-1 {
				continue nextBase
			}
		}
		return false
	}

	return true
}

// NextPow2 returns the smallest power of two ≥ k; k ≤ 1 yields 1.
func NextPow2(k int) int {
	p := 1
	for p < k {
		p <<= 1
	}

	return p
}

// PrimesUpTo returns all primes in [0, n] in ascending order (sieve of
// Eratosthenes, O(n log log n) time, O(n) memory).
func PrimesUpTo(n int) []uint64 {
	if n < 2 {
		return nil
	}
	composite := make([]bool, n+1)
	for i := 2; i*i <= n; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= n; j += i {
			composite[j] = true
		}
	}

	out := make([]uint64, 0, n/4+1)
	for i := 2; i <= n; i++ {
		if !composite[i] {
			out = append(out, uint64(i))
		}
	}

	return out
}

// NextPrime returns the first prime strictly greater than n.
// Returns 0 when no such prime fits in a uint64.
func NextPrime(n uint64) uint64 {
	for c := n + 1; c > n; c++ {
		if IsPrime(c) {
			return c
		}
	}

	return 0
}
