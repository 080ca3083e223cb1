// SPDX-License-Identifier: MIT

// Package bigint implements an arbitrary-precision signed integer.
//
// 🚀 What is bigint.Int?
//
//	An exact integer of any length, stored as base-10^9 limbs (least
//	significant first) plus a sign. The decimal base keeps parsing and
//	printing linear and makes every limb a printable 9-digit group.
//
// ✨ Key features:
//   - value semantics: every operation returns a new Int, operands are never mutated
//   - Add, Sub, Mul (schoolbook), DivMod (long division with binary-searched digits)
//   - truncating division: a == b*q + r, r carries the sign of a
//   - lossless decimal round-trip: Parse(x.String()) == x
//   - math/big interop for callers that already hold *big.Int values
//
// ⚙️ Usage:
//
//	a := bigint.MustParse("123456789123456789")
//	b := bigint.MustParse("876543210876543211")
//	fmt.Println(a.Add(b)) // 1000000000000000000
//
//	q, r, err := bigint.New(7).DivMod(bigint.New(2))
//	// q == 3, r == 1, err == nil
//
// Errors:
//   - ErrMalformed       – Parse on empty or non-decimal input.
//   - ErrDivisionByZero  – DivMod/Quo/Rem with a zero divisor.
//   - ErrLimbOutOfRange  – FromLimbs with a limb ≥ 10^9.
//
// Complexity:
//   - Add/Sub/Cmp: O(n); Mul: O(n·m); DivMod: O(n·m·log(10^9)).
//
// The zero value of Int is the integer 0 and is ready to use.
package bigint
