package finite_test

import (
	"fmt"

	"github.com/katalvlaran/lvalgebra/finite"
)

func ExampleElement_Inverse() {
	x := finite.New[finite.Mod5](3)
	inv, err := x.Inverse()
	fmt.Println(x.Mul(finite.New[finite.Mod5](4)), inv, err)
	// Output: 2 2 <nil>
}

func ExampleElement_Div() {
	_, err := finite.New[finite.Mod4](1).Div(finite.New[finite.Mod4](3))
	fmt.Println(err)
	// Output: Div: Inverse: modulus 4: finite: modulus is not prime, inverse is undefined
}
