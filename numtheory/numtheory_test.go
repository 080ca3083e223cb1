// Package numtheory_test contains unit tests for the number-theory oracles.
package numtheory_test

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvalgebra/numtheory"
	"github.com/stretchr/testify/require"
)

// TestIsPrimeAgainstSieve compares the Miller–Rabin oracle with the sieve.
func TestIsPrimeAgainstSieve(t *testing.T) {
	t.Parallel()

	const limit = 20000
	primes := numtheory.PrimesUpTo(limit)
	isPrime := make(map[uint64]bool, len(primes))
	for _, p := range primes {
		isPrime[p] = true
	}
	for n := uint64(0); n <= limit; n++ {
		require.Equal(t, isPrime[n], numtheory.IsPrime(n), "n=%d", n)
	}
}

// TestIsPrimeLarge covers the moduli used across the repository plus
// strong pseudoprimes that fool single-base tests.
func TestIsPrimeLarge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    uint64
		want bool
	}{
		{1000000007, true},
		{1000000009, true},
		{2006000099, true},
		{998244353, true},
		{2305843009213693951, true}, // 2^61 - 1
		{18446744073709551557, true}, // largest 64-bit prime
		{561, false},                 // Carmichael
		{2047, false},                // strong pseudoprime to base 2
		{3215031751, false},          // strong pseudoprime to bases 2,3,5,7
		{2083881914, false},
		{1000000000, false},
		{2383881, false},
		{math.MaxUint64, false},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, numtheory.IsPrime(tc.n), "n=%d", tc.n)
		require.Equal(t, new(big.Int).SetUint64(tc.n).ProbablyPrime(20), numtheory.IsPrime(tc.n), "n=%d", tc.n)
	}
}

// TestNextPow2 pins the padding rule used by block multiplication.
func TestNextPow2(t *testing.T) {
	t.Parallel()

	tests := []struct{ k, want int }{
		{-3, 1}, {0, 1}, {1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8}, {17, 32}, {1024, 1024}, {1025, 2048},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, numtheory.NextPow2(tc.k), "k=%d", tc.k)
	}
}

// TestPrimesUpTo checks the sieve head and degenerate bounds.
func TestPrimesUpTo(t *testing.T) {
	t.Parallel()

	require.Nil(t, numtheory.PrimesUpTo(1))
	require.Equal(t, []uint64{2}, numtheory.PrimesUpTo(2))
	require.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, numtheory.PrimesUpTo(30))
	require.Len(t, numtheory.PrimesUpTo(10000), 1229)
}

// TestNextPrime checks successor search, including the 64-bit ceiling.
func TestNextPrime(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint64(2), numtheory.NextPrime(0))
	require.Equal(t, uint64(3), numtheory.NextPrime(2))
	require.Equal(t, uint64(101), numtheory.NextPrime(97))
	require.Equal(t, uint64(1000000007), numtheory.NextPrime(1000000000))
	require.Equal(t, uint64(0), numtheory.NextPrime(18446744073709551557))
}

// TestModularAgainstMathBig cross-checks MulMod/AddMod/ModPow with math/big,
// including moduli above 2^63 where naive uint64 arithmetic overflows.
func TestModularAgainstMathBig(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(61))
	moduli := []uint64{2, 5, 1000000007, 2305843009213693951, 18446744073709551557, math.MaxUint64}
	var a, b, n uint64
	for _, m := range moduli {
		bm := new(big.Int).SetUint64(m)
		for i := 0; i < 200; i++ {
			a, b, n = rng.Uint64()%m, rng.Uint64()%m, rng.Uint64()%1000
			ba, bb := new(big.Int).SetUint64(a), new(big.Int).SetUint64(b)

			want := new(big.Int).Mul(ba, bb)
			want.Mod(want, bm)
			require.Equal(t, want.Uint64(), numtheory.MulMod(a, b, m), "%d*%d mod %d", a, b, m)

			want.Add(ba, bb).Mod(want, bm)
			require.Equal(t, want.Uint64(), numtheory.AddMod(a, b, m), "%d+%d mod %d", a, b, m)

			want.Sub(ba, bb).Mod(want, bm)
			require.Equal(t, want.Uint64(), numtheory.SubMod(a, b, m), "%d-%d mod %d", a, b, m)

			want.Exp(ba, new(big.Int).SetUint64(n), bm)
			require.Equal(t, want.Uint64(), numtheory.ModPow(a, n, m), "%d^%d mod %d", a, n, m)
		}
	}
	require.Equal(t, uint64(0), numtheory.ModPow(5, 3, 1))
}
