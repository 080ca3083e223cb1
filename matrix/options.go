// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for multiplication.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLeafSize is the dimension below which block multiplication
	// stops splitting: a product whose dimensions are all < DefaultLeafSize
	// goes straight to the triple loop, and the recursion bottoms out at
	// blocks of side < DefaultLeafSize. With 2 the recursion runs down to 1×1.
	DefaultLeafSize = 2

	// DefaultDirectMul forces the triple loop for every product when true.
	DefaultDirectMul = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLeafSizeInvalid = "matrix: WithLeafSize: leaf size must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	leafSize  int  // >= 1; DefaultLeafSize
	directMul bool // DefaultDirectMul
}

// WithLeafSize sets the block-multiplication cut-off.
//
// Implementation:
//   - Stage 1: validate n ≥ 1.
//   - Stage 2: return a setter that writes n into Options.
//
// Behavior highlights:
//   - n == 1 never takes the direct path except through WithDirectMul;
//     every product is padded and split down to 1×1 blocks.
//   - Larger n trades multiplications for fewer allocations; 32–64 is a
//     reasonable choice for Rational matrices of a few hundred rows.
//
// Errors:
//   - Panics with a stable message when n < 1.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithLeafSize(n int) Option {
	if n < 1 {
		panic(panicLeafSizeInvalid)
	}

	return func(o *Options) { o.leafSize = n }
}

// WithDirectMul always uses the O(M·N·K) triple loop. This is the reference
// path for tests and benchmarks.
func WithDirectMul() Option { return func(o *Options) { o.directMul = true } }

// gatherOptions applies user setters over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		leafSize:  DefaultLeafSize,
		directMul: DefaultDirectMul,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
