// SPDX-License-Identifier: MIT

// Package finite implements integers modulo a fixed M, the prime-field
// element type for matrices.
//
// What & Why:
//
//	Element[M] carries only its value; the modulus lives in the type
//	parameter M, a zero-size type whose Modulus method returns the
//	constant. Elements of different moduli are therefore different Go
//	types and cannot be mixed by accident.
//
// Arithmetic:
//   - New normalises any int64 into [0, M) via ((x % M) + M) % M.
//   - Add, Sub, Mul, Pow go through numtheory, which widens to 256 bits
//     (github.com/holiman/uint256) whenever a 64-bit product could overflow.
//   - Inverse is a^(M-2) (Fermat). It is refused with ErrNotPrime when M is
//     composite; primality is decided once per modulus and memoized.
//   - Div is Mul by Inverse and propagates the same errors, which is what
//     lets matrix elimination surface a composite modulus instead of
//     returning a wrong rank or inverse.
//
// Defining a modulus:
//
//	type Mod17 struct{}
//
//	func (Mod17) Modulus() uint64 { return 17 }
//
//	x := finite.New[Mod17](-1) // 16
//
// Moduli below 2 are rejected with a panic on first use.
package finite
