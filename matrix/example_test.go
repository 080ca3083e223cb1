package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvalgebra/finite"
	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/katalvlaran/lvalgebra/rational"
)

// ExampleDense_Inverse inverts a diagonal matrix over the rationals.
func ExampleDense_Inverse() {
	a, _ := matrix.FromRows([][]rational.Rational{
		{rational.FromInt64(2), rational.FromInt64(0)},
		{rational.FromInt64(0), rational.FromInt64(2)},
	})
	inv, err := a.Inverse()
	fmt.Print(inv)
	fmt.Println(err)
	// Output:
	// [1/2, 0]
	// [0, 1/2]
	// <nil>
}

// ExampleDense_Determinant works modulo 7.
func ExampleDense_Determinant() {
	f := finite.New[finite.Mod7]
	a, _ := matrix.FromRows([][]finite.Element[finite.Mod7]{
		{f(1), f(2)},
		{f(3), f(4)},
	})
	det, _ := a.Determinant() // -2 mod 7
	rank, _ := a.Rank()
	fmt.Println(det, rank)
	// Output: 5 2
}

// ExampleMul multiplies a 2×3 by a 3×1 matrix with the block algorithm.
func ExampleMul() {
	q := rational.FromInt64
	a, _ := matrix.FromRows([][]rational.Rational{{q(1), q(2), q(3)}, {q(4), q(5), q(6)}})
	b, _ := matrix.FromRows([][]rational.Rational{{q(1)}, {q(0)}, {q(-1)}})
	c, _ := matrix.Mul(a, b)
	fmt.Print(c)
	// Output:
	// [-2]
	// [-2]
}
