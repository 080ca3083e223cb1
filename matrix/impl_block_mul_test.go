// Package matrix_test contains unit tests for the block-recursive product.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvalgebra/finite"
	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/stretchr/testify/require"
)

// TestMulConcrete checks a hand-computed 2×3 · 3×2 product on both paths.
func TestMulConcrete(t *testing.T) {
	t.Parallel()

	a := MustRat(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	b := MustRat(t, [][]int64{{7, 8}, {9, 10}, {11, 12}})
	want := MustRat(t, [][]int64{{58, 64}, {139, 154}})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	RequireEqualDense(t, want, got)

	got, err = matrix.MulDirect(a, b)
	require.NoError(t, err)
	RequireEqualDense(t, want, got)
}

// TestMulBlockEqualsDirect compares the block product with the triple loop
// over non-power-of-two shapes, including the 1×1 base case and several
// recursion depths.
func TestMulBlockEqualsDirect(t *testing.T) {
	t.Parallel()

	shapes := [][3]int{
		{1, 1, 1}, // base case, no split
		{3, 5, 2}, // padded to 8
		{2, 2, 2}, // exactly one split
		{1, 7, 1},
		{5, 1, 6},
		{4, 4, 4},
		{9, 3, 10}, // padded to 16
	}
	rng := rand.New(rand.NewSource(35))
	for _, s := range shapes {
		s := s
		t.Run(fmt.Sprintf("%dx%d*%dx%d", s[0], s[1], s[1], s[2]), func(t *testing.T) {
			a, b := RandomRat(t, rng, s[0], s[1]), RandomRat(t, rng, s[1], s[2])
			direct, err := matrix.MulDirect(a, b)
			require.NoError(t, err)
			for _, leaf := range []int{1, 2, 3, 64} {
				block, err := matrix.Mul(a, b, matrix.WithLeafSize(leaf))
				require.NoError(t, err)
				require.Equal(t, s[0], block.Rows())
				require.Equal(t, s[2], block.Cols())
				RequireEqualDense(t, direct, block)
			}
		})
	}
}

// TestMulBlockEqualsDirectFinite repeats the comparison modulo 10^9+7,
// where intermediate sums wrap around the modulus.
func TestMulBlockEqualsDirectFinite(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1_000_000_007))
	a, b := RandomMod(t, rng, 7, 11), RandomMod(t, rng, 11, 6)
	direct, err := matrix.MulDirect(a, b)
	require.NoError(t, err)
	block, err := matrix.Mul(a, b)
	require.NoError(t, err)
	RequireEqualDense(t, direct, block)

	forced, err := matrix.Mul(a, b, matrix.WithDirectMul())
	require.NoError(t, err)
	RequireEqualDense(t, direct, forced)
}

// TestMulDimensionMismatch rejects a.Cols != b.Rows on both paths.
func TestMulDimensionMismatch(t *testing.T) {
	t.Parallel()

	a := MustRat(t, [][]int64{{1, 2, 3}})
	_, err := matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MulDirect(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul[rat](nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulLeavesOperands ensures padding works on copies.
func TestMulLeavesOperands(t *testing.T) {
	t.Parallel()

	a := MustMod[finite.Mod5](t, [][]int64{{1, 2, 3}, {4, 0, 1}, {2, 2, 2}})
	before := a.Clone()
	_, err := matrix.Mul(a, a)
	require.NoError(t, err)
	RequireEqualDense(t, before, a)
}

// TestPadCrop round-trips a rectangular matrix through the zero padding.
func TestPadCrop(t *testing.T) {
	t.Parallel()

	a := MustRat(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	RequireEqualDense(t, a, matrix.PadCrop_TestOnly(a, 4))
	RequireEqualDense(t, a, matrix.PadCrop_TestOnly(a, 8))
}
