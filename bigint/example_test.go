package bigint_test

import (
	"fmt"

	"github.com/katalvlaran/lvalgebra/bigint"
)

// ExampleInt_Add shows carry propagation across limb boundaries.
func ExampleInt_Add() {
	a := bigint.MustParse("123456789123456789")
	b := bigint.MustParse("876543210876543211")
	fmt.Println(a.Add(b))
	// Output:
	// 1000000000000000000
}

// ExampleInt_DivMod shows truncating division.
func ExampleInt_DivMod() {
	q, r, err := bigint.New(-7).DivMod(bigint.New(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(q, r)
	// Output:
	// -3 -1
}

// ExampleParse shows how malformed input is reported.
func ExampleParse() {
	_, err := bigint.Parse("12x")
	fmt.Println(err)
	// Output:
	// Parse: "12x": bigint: malformed decimal string
}
