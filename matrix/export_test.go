// SPDX-License-Identifier: MIT
// Test-only exports of package internals.

package matrix

import "github.com/katalvlaran/lvalgebra/field"

// OptionsSnapshot is a read-only copy of the resolved Options.
type OptionsSnapshot struct {
	LeafSize  int
	DirectMul bool
}

// GatherOptionsSnapshot_TestOnly resolves opts the way Mul does.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{LeafSize: o.leafSize, DirectMul: o.directMul}
}

// PadCrop_TestOnly pads m with zeros to size×size and crops it back.
func PadCrop_TestOnly[T field.Field[T]](m *Dense[T], size int) *Dense[T] {
	return crop(pad(m, size), size, m.r, m.c)
}
