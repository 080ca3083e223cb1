// SPDX-License-Identifier: MIT

package finite

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/lvalgebra/bigint"
	"github.com/katalvlaran/lvalgebra/field"
	"github.com/katalvlaran/lvalgebra/numtheory"
)

// Element is an integer modulo M, always held in [0, M).
// The zero value is 0 and is ready to use.
type Element[M Modulus] struct {
	v uint64
}

// Compile-time assertion: elements of a prime field satisfy field.Field.
var _ field.Field[Element[Mod7]] = Element[Mod7]{}

// panicBadModulus is raised for a Modulus type returning 0 or 1.
const panicBadModulus = "finite: modulus must be at least 2, got %d"

// primality memoizes numtheory.IsPrime per modulus value (uint64 -> bool).
var primality sync.Map

// modulus returns M's value, panicking on a nonsensical modulus type.
func modulus[M Modulus]() uint64 {
	var m M
	n := m.Modulus()
	if n < 2 {
		panic(fmt.Sprintf(panicBadModulus, n))
	}

	return n
}

// isPrime consults the primality oracle once per modulus value.
func isPrime(m uint64) bool {
	if v, ok := primality.Load(m); ok {
		return v.(bool)
	}
	p := numtheory.IsPrime(m)
	primality.Store(m, p)

	return p
}

// New returns x mod M, normalised into [0, M) as ((x % M) + M) % M.
func New[M Modulus](x int64) Element[M] {
	m := modulus[M]()
	if x >= 0 {
		return Element[M]{v: uint64(x) % m}
	}
	// |x| without overflowing on MinInt64.
	r := (uint64(-(x + 1)) + 1) % m
	if r == 0 {
		return Element[M]{}
	}

	return Element[M]{v: m - r}
}

// FromUint64 returns u mod M.
func FromUint64[M Modulus](u uint64) Element[M] {
	return Element[M]{v: u % modulus[M]()}
}

// FromInt returns x mod M for an arbitrary-precision integer.
func FromInt[M Modulus](x bigint.Int) Element[M] {
	m := modulus[M]()
	// m ≥ 2, so the divisor is never zero.
	r, _ := x.Rem(bigint.FromUint64(m))
	u, _ := r.Abs().Uint64()
	if r.Sign() < 0 {
		return Element[M]{v: m - u}
	}

	return Element[M]{v: u}
}

// Parse reads an integer ("-12") or a fraction ("3/4", meaning 3·4⁻¹) and
// reduces it mod M. Integers of any length are accepted.
//
// Errors:
//   - ErrMalformed for non-integer text.
//   - ErrNotPrime / ErrNotInvertible from the fraction's division.
func Parse[M Modulus](s string) (Element[M], error) {
	p, q, isFrac := strings.Cut(s, "/")
	num, err := bigint.Parse(p)
	if err != nil {
		return Element[M]{}, finiteErrorf(opParse, fmt.Errorf("%q: %w: %w", s, ErrMalformed, err))
	}
	if !isFrac {
		return FromInt[M](num), nil
	}
	den, err := bigint.Parse(q)
	if err != nil {
		return Element[M]{}, finiteErrorf(opParse, fmt.Errorf("%q: %w: %w", s, ErrMalformed, err))
	}

	return FromInt[M](num).Div(FromInt[M](den))
}

// Value returns the representative in [0, M).
func (a Element[M]) Value() uint64 { return a.v }

// Modulus returns M.
func (Element[M]) Modulus() uint64 { return modulus[M]() }

// String renders the representative in decimal.
func (a Element[M]) String() string { return strconv.FormatUint(a.v, 10) }

// Zero returns 0. The receiver is ignored.
func (Element[M]) Zero() Element[M] { return Element[M]{} }

// One returns 1 (which is 1 mod M for every M ≥ 2).
func (Element[M]) One() Element[M] { return Element[M]{v: 1} }

// IsZero reports whether a == 0.
func (a Element[M]) IsZero() bool { return a.v == 0 }

// Equal reports whether a == b.
func (a Element[M]) Equal(b Element[M]) bool { return a.v == b.v }

// Add returns a + b mod M.
func (a Element[M]) Add(b Element[M]) Element[M] {
	return Element[M]{v: numtheory.AddMod(a.v, b.v, modulus[M]())}
}

// Sub returns a - b mod M.
func (a Element[M]) Sub(b Element[M]) Element[M] {
	return Element[M]{v: numtheory.SubMod(a.v, b.v, modulus[M]())}
}

// Mul returns a · b mod M.
func (a Element[M]) Mul(b Element[M]) Element[M] {
	return Element[M]{v: numtheory.MulMod(a.v, b.v, modulus[M]())}
}

// Neg returns -a mod M.
func (a Element[M]) Neg() Element[M] {
	if a.v == 0 {
		return a
	}

	return Element[M]{v: modulus[M]() - a.v}
}

// Pow returns a^n by binary exponentiation, O(log n) multiplications.
// Pow(0) is 1, including for a == 0.
func (a Element[M]) Pow(n uint64) Element[M] {
	return Element[M]{v: numtheory.ModPow(a.v, n, modulus[M]())}
}

// Pow is the package-level form of a.Pow(n).
func Pow[M Modulus](a Element[M], n uint64) Element[M] { return a.Pow(n) }

// Inverse returns a⁻¹ = a^(M-2) (Fermat's little theorem).
//
// Errors:
//   - ErrNotPrime if M is composite (checked before anything else).
//   - ErrNotInvertible if a == 0.
func (a Element[M]) Inverse() (Element[M], error) {
	m := modulus[M]()
	if !isPrime(m) {
		return Element[M]{}, finiteErrorf(opInverse, fmt.Errorf("modulus %d: %w", m, ErrNotPrime))
	}
	if a.v == 0 {
		return Element[M]{}, finiteErrorf(opInverse, ErrNotInvertible)
	}

	return a.Pow(m - 2), nil
}

// Div returns a · b⁻¹, propagating Inverse's errors.
func (a Element[M]) Div(b Element[M]) (Element[M], error) {
	inv, err := b.Inverse()
	if err != nil {
		return Element[M]{}, finiteErrorf(opDiv, err)
	}

	return a.Mul(inv), nil
}
