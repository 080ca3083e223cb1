// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures over both element fields.
//   • Fail the test (not return errors) when a fixture cannot be built.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvalgebra/field"
	"github.com/katalvlaran/lvalgebra/finite"
	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/katalvlaran/lvalgebra/rational"
	"github.com/stretchr/testify/require"
)

type (
	rat = rational.Rational
	gf7 = finite.Element[finite.Mod7]
	gfp = finite.Element[finite.Mod1e9p7]
)

// MustRat BUILDS a Dense[Rational] from an integer grid or fails the test.
func MustRat(t testing.TB, grid [][]int64) *matrix.Dense[rat] {
	t.Helper()
	rows := make([][]rat, len(grid))
	for i, row := range grid {
		rows[i] = make([]rat, len(row))
		for j, v := range row {
			rows[i][j] = rational.FromInt64(v)
		}
	}
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// MustMod BUILDS a Dense over Z/M from an integer grid or fails the test.
func MustMod[M finite.Modulus](t testing.TB, grid [][]int64) *matrix.Dense[finite.Element[M]] {
	t.Helper()
	rows := make([][]finite.Element[M], len(grid))
	for i, row := range grid {
		rows[i] = make([]finite.Element[M], len(row))
		for j, v := range row {
			rows[i][j] = finite.New[M](v)
		}
	}
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// IdentityRat RETURNS I_n over Rational or fails the test.
func IdentityRat(t testing.TB, n int) *matrix.Dense[rat] {
	t.Helper()
	m, err := matrix.Identity[rat](n)
	if err != nil {
		t.Fatalf("Identity(%d): %v", n, err)
	}

	return m
}

// RandomRat FILLS an r×c rational matrix with small fractions by seed.
// Entries are p/q with p in [-9, 9] and q in [1, 4], so exact products stay small.
func RandomRat(t testing.TB, rng *rand.Rand, r, c int) *matrix.Dense[rat] {
	t.Helper()
	rows := make([][]rat, r)
	for i := range rows {
		rows[i] = make([]rat, c)
		for j := range rows[i] {
			rows[i][j] = rational.MustFrac(rng.Int63n(19)-9, rng.Int63n(4)+1)
		}
	}
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// RandomMod FILLS an r×c matrix over Z/(10^9+7) by seed.
func RandomMod(t testing.TB, rng *rand.Rand, r, c int) *matrix.Dense[gfp] {
	t.Helper()
	rows := make([][]gfp, r)
	for i := range rows {
		rows[i] = make([]gfp, c)
		for j := range rows[i] {
			rows[i][j] = finite.FromUint64[finite.Mod1e9p7](rng.Uint64())
		}
	}
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// RequireEqualDense ASSERTS equal shapes and entries, printing both on failure.
func RequireEqualDense[T field.Field[T]](t testing.TB, want, got *matrix.Dense[T]) {
	t.Helper()
	require.True(t, want.Equal(got), "want\n%s\ngot\n%s", want, got)
}
