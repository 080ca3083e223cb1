// SPDX-License-Identifier: MIT

// Package field defines the capability set every matrix element type provides.
//
// What & Why:
//
//	The elimination engine and the generic matrix never look inside their
//	elements. They only need an additive and a multiplicative identity, the
//	four operations (division may fail) and equality. Field[T] names exactly
//	that set; rational.Rational and finite.Element[M] implement it, and so
//	can any user type.
//
// Contract:
//   - Zero and One ignore their receiver and return the identities, so the
//     zero value of T is enough to reach them (see Zero[T] and One[T]).
//   - Add, Sub, Mul never fail and never mutate operands.
//   - Div returns an error instead of a meaningless value: division by zero,
//     or a modulus under which inverses are undefined.
//   - Equal is exact equality; IsZero is Equal(Zero()).
//
// Helpers:
//   - Neg, Inv, Pow, Sum, Dot – generic compositions over the contract.
package field
