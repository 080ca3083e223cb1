// SPDX-License-Identifier: MIT

// Package numtheory holds the small number-theory oracles the algebra
// packages consult at their boundaries.
//
// What & Why:
//
//	finite.Element needs to know whether its modulus is prime before it
//	agrees to invert anything, and block matrix multiplication needs the
//	smallest power of two covering its operands. Both live here, next to the
//	modular primitives they are built from.
//
// Contents:
//   - IsPrime     – deterministic Miller–Rabin, exact for every uint64.
//   - NextPow2    – smallest power of two ≥ k.
//   - PrimesUpTo  – sieve of Eratosthenes on [0, n].
//   - NextPrime   – first prime strictly greater than n.
//   - MulMod, AddMod, ModPow – 64-bit modular arithmetic with a 256-bit
//     accumulator (github.com/holiman/uint256), safe for any modulus < 2^64.
package numtheory
