// SPDX-License-Identifier: MIT
// Package matrix - matrix products.
//
// Purpose:
//   - MulDirect: the O(M·N·K) triple loop, the reference kernel.
//   - Mul: block-recursive product with seven sub-products per split.
//
// The recursive core only ever sees square power-of-two blocks; odd and
// rectangular shapes are handled once, by a pad/crop wrapper around it.

package matrix

import (
	"github.com/katalvlaran/lvalgebra/field"
	"github.com/katalvlaran/lvalgebra/numtheory"
)

// MulDirect returns a·b by the triple loop.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Determinism:
//   - Fixed loop order i→k→j.
//
// Complexity:
//   - Time O(M·N·K), Space O(M·K). Zero entries of a are skipped.
func MulDirect[T field.Field[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return &Dense[T]{r: a.r, c: b.c, data: mulFlat(a.data, b.data, a.r, a.c, b.c)}, nil
}

// Mul returns a·b for a of shape M×N and b of shape N×K.
//
// Implementation:
//   - Stage 1: validate; with WithDirectMul, or when M, N and K are all
//     below the leaf size, return MulDirect.
//   - Stage 2: pad both operands with zeros to S×S, S = NextPow2(max(M, N, K)).
//   - Stage 3: recursive block product (below).
//   - Stage 4: crop the S×S result to M×K.
//
// Block step, quadrants A11..A22 and B11..B22 of side h = S/2:
//
//	P1 = (A11+A22)(B11+B22)   P5 = (A11+A12)B22
//	P2 = (A21+A22)B11         P6 = (A21-A11)(B11+B12)
//	P3 = A11(B12-B22)         P7 = (A12-A22)(B21+B22)
//	P4 = A22(B21-B11)
//
//	C11 = P1+P4-P5+P7   C12 = P3+P5
//	C21 = P2+P4         C22 = P1-P2+P3+P6
//
// Blocks of side below the leaf size use the triple loop.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(S^log2(7)) field multiplications, Space O(S²) per level.
//
// AI-Hints:
//   - Padding can quadruple the work for shapes just above a power of two;
//     raise WithLeafSize for large operands.
func Mul[T field.Field[T]](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	o := gatherOptions(opts...)
	m, n, k := a.r, a.c, b.c
	if o.directMul || (m < o.leafSize && n < o.leafSize && k < o.leafSize) {
		return MulDirect(a, b)
	}

	size := numtheory.NextPow2(max(m, n, k))
	log.Debugf("block multiply %dx%d * %dx%d padded to %d, leaf %d", m, n, n, k, size, o.leafSize)
	c := blockMul(pad(a, size), pad(b, size), size, o.leafSize)

	return crop(c, size, m, k), nil
}

// blockMul multiplies two n×n row-major blocks, n a power of two.
func blockMul[T field.Field[T]](a, b []T, n, leaf int) []T {
	if n < leaf || n == 1 {
		return mulFlat(a, b, n, n, n)
	}
	h := n / 2
	a11, a12, a21, a22 := quadrants(a, n)
	b11, b12, b21, b22 := quadrants(b, n)

	p1 := blockMul(addFlat(a11, a22), addFlat(b11, b22), h, leaf)
	p2 := blockMul(addFlat(a21, a22), b11, h, leaf)
	p3 := blockMul(a11, subFlat(b12, b22), h, leaf)
	p4 := blockMul(a22, subFlat(b21, b11), h, leaf)
	p5 := blockMul(addFlat(a11, a12), b22, h, leaf)
	p6 := blockMul(subFlat(a21, a11), addFlat(b11, b12), h, leaf)
	p7 := blockMul(subFlat(a12, a22), addFlat(b21, b22), h, leaf)

	c11 := addFlat(subFlat(addFlat(p1, p4), p5), p7)
	c12 := addFlat(p3, p5)
	c21 := addFlat(p2, p4)
	c22 := addFlat(addFlat(subFlat(p1, p2), p3), p6)

	return join(c11, c12, c21, c22, h)
}

// mulFlat is the triple loop on row-major buffers: (m×n)·(n×k).
func mulFlat[T field.Field[T]](a, b []T, m, n, k int) []T {
	out := zeroFlat[T](m * k)
	var (
		i, p, j int
		av      T
	)
	for i = 0; i < m; i++ {
		for p = 0; p < n; p++ {
			av = a[i*n+p]
			if av.IsZero() {
				continue
			}
			for j = 0; j < k; j++ {
				out[i*k+j] = out[i*k+j].Add(av.Mul(b[p*k+j]))
			}
		}
	}

	return out
}

// zeroFlat returns n copies of the field's zero.
func zeroFlat[T field.Field[T]](n int) []T {
	out := make([]T, n)
	zero := field.Zero[T]()
	for i := range out {
		out[i] = zero
	}

	return out
}

func addFlat[T field.Field[T]](x, y []T) []T {
	out := make([]T, len(x))
	for i := range x {
		out[i] = x[i].Add(y[i])
	}

	return out
}

func subFlat[T field.Field[T]](x, y []T) []T {
	out := make([]T, len(x))
	for i := range x {
		out[i] = x[i].Sub(y[i])
	}

	return out
}

// quadrants copies the four h×h quadrants out of an n×n block, h = n/2.
func quadrants[T any](x []T, n int) (q11, q12, q21, q22 []T) {
	h := n / 2
	q11, q12 = make([]T, 0, h*h), make([]T, 0, h*h)
	q21, q22 = make([]T, 0, h*h), make([]T, 0, h*h)
	for i := 0; i < h; i++ {
		top, bottom := x[i*n:(i+1)*n], x[(i+h)*n:(i+h+1)*n]
		q11 = append(q11, top[:h]...)
		q12 = append(q12, top[h:]...)
		q21 = append(q21, bottom[:h]...)
		q22 = append(q22, bottom[h:]...)
	}

	return q11, q12, q21, q22
}

// join assembles four h×h quadrants into one 2h×2h block.
func join[T any](c11, c12, c21, c22 []T, h int) []T {
	n := 2 * h
	out := make([]T, 0, n*n)
	for i := 0; i < h; i++ {
		out = append(out, c11[i*h:(i+1)*h]...)
		out = append(out, c12[i*h:(i+1)*h]...)
	}
	for i := 0; i < h; i++ {
		out = append(out, c21[i*h:(i+1)*h]...)
		out = append(out, c22[i*h:(i+1)*h]...)
	}

	return out
}

// pad embeds m in the top-left corner of a zero size×size block.
func pad[T field.Field[T]](m *Dense[T], size int) []T {
	out := zeroFlat[T](size * size)
	for i := 0; i < m.r; i++ {
		copy(out[i*size:i*size+m.c], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// crop extracts the top-left rows×cols corner of a size×size block.
func crop[T field.Field[T]](buf []T, size, rows, cols int) *Dense[T] {
	out := &Dense[T]{r: rows, c: cols, data: make([]T, 0, rows*cols)}
	for i := 0; i < rows; i++ {
		out.data = append(out.data, buf[i*size:i*size+cols]...)
	}

	return out
}
