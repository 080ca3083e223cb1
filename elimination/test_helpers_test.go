// Package elimination_test contains test helpers.
package elimination_test

import (
	"github.com/katalvlaran/lvalgebra/finite"
	"github.com/katalvlaran/lvalgebra/rational"
)

type q = rational.Rational

// ratRows converts an integer grid to rational rows.
func ratRows(grid [][]int64) [][]q {
	out := make([][]q, len(grid))
	for i, row := range grid {
		out[i] = make([]q, len(row))
		for j, v := range row {
			out[i][j] = rational.FromInt64(v)
		}
	}

	return out
}

// modRows converts an integer grid to rows over Z/M.
func modRows[M finite.Modulus](grid [][]int64) [][]finite.Element[M] {
	out := make([][]finite.Element[M], len(grid))
	for i, row := range grid {
		out[i] = make([]finite.Element[M], len(row))
		for j, v := range row {
			out[i][j] = finite.New[M](v)
		}
	}

	return out
}

// identityRows returns the n×n identity over Rational.
func identityRows(n int) [][]q {
	out := make([][]q, n)
	for i := range out {
		out[i] = make([]q, n)
		for j := range out[i] {
			if i == j {
				out[i][j] = rational.FromInt64(1)
			}
		}
	}

	return out
}

// strRows renders rows for compact equality checks.
func strRows[T interface{ String() string }](rows [][]T) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = v.String()
		}
	}

	return out
}
