// SPDX-License-Identifier: MIT
// Package bigint_test contains test helpers.
//
// Purpose:
//   - Deterministic random decimal fixtures (fixed seeds, no wall clock).
//   - Small conversions that fail the test instead of returning errors.

package bigint_test

import (
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/lvalgebra/bigint"
)

// newRand returns a seeded source so every run sees the same operands.
func newRand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// randomDecimal returns a signed decimal string with exactly n digits
// (leading digit may be zero, which also exercises leading-zero parsing).
func randomDecimal(rng *rand.Rand, n int) string {
	var sb strings.Builder
	if rng.Intn(2) == 0 {
		sb.WriteByte('-')
	}
	for i := 0; i < n; i++ {
		sb.WriteByte(byte('0' + rng.Intn(10)))
	}

	return sb.String()
}

// mustBig parses s with math/big or fails the test.
func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("math/big could not parse %q", s)
	}

	return b
}

// mustInt64 converts x or fails the test.
func mustInt64(t *testing.T, x bigint.Int) int64 {
	t.Helper()
	v, ok := x.Int64()
	if !ok {
		t.Fatalf("%s does not fit in int64", x)
	}

	return v
}
