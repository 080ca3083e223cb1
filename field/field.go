// SPDX-License-Identifier: MIT

package field

import "fmt"

// Field is the closed capability set of a field element type T.
// T is expected to be a value type whose zero value is a usable receiver
// for Zero and One.
type Field[T any] interface {
	Zero() T
	One() T
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) (T, error)
	Equal(T) bool
	IsZero() bool
	fmt.Stringer
}

// Zero returns the additive identity of T.
func Zero[T Field[T]]() T {
	var t T

	return t.Zero()
}

// One returns the multiplicative identity of T.
func One[T Field[T]]() T {
	var t T

	return t.One()
}

// Neg returns -x.
func Neg[T Field[T]](x T) T { return x.Zero().Sub(x) }

// Inv returns 1/x, propagating the field's division error.
func Inv[T Field[T]](x T) (T, error) { return x.One().Div(x) }

// Pow returns x^n by binary exponentiation; Pow(x, 0) is One.
// Complexity: O(log n) multiplications.
func Pow[T Field[T]](x T, n uint64) T {
	result := x.One()
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(x)
		}
		x = x.Mul(x)
		n >>= 1
	}

	return result
}

// Sum returns the sum of xs; the empty sum is Zero.
func Sum[T Field[T]](xs ...T) T {
	acc := Zero[T]()
	for _, x := range xs {
		acc = acc.Add(x)
	}

	return acc
}

// Dot returns Σ a[i]*b[i].
//
// Errors:
//   - ErrLengthMismatch if len(a) != len(b).
func Dot[T Field[T]](a, b []T) (T, error) {
	if len(a) != len(b) {
		return Zero[T](), fmt.Errorf("Dot: %d vs %d: %w", len(a), len(b), ErrLengthMismatch)
	}
	acc := Zero[T]()
	for i := range a {
		acc = acc.Add(a[i].Mul(b[i]))
	}

	return acc, nil
}
