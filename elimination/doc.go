// SPDX-License-Identifier: MIT

// Package elimination implements Gaussian elimination over any field.Field
// element type, with an optional replayable log of elementary row operations.
//
// What & Why:
//
//	Rank, determinant and inverse all reduce to the same forward sweep.
//	Eliminate performs it once on a private copy and reports what it did:
//	the echelon rows, the rank, the pivot columns, the number of row swaps
//	(the determinant's sign) and, on request, the ordered list of Swap,
//	AddScaled and ScaleRow operations. Replaying that list against the
//	identity yields the inverse, because the list is exactly the left
//	factor E with E·A = I.
//
// Algorithm (columns left to right):
//  1. Scan rows from the first unfinished one downward for a nonzero entry.
//  2. None: the column has no pivot, move on.
//  3. Swap the pivot row into place (Swap logged).
//  4. Clear the column in every other row, above and below, by adding
//     -(entry/pivot) × pivot row (AddScaled logged).
//  5. WithNormalize: if the matrix is square and of full rank, scale each
//     row so its pivot is One (ScaleRow logged).
//  6. WithDropZeroRows: drop the trailing all-zero rows.
//
// Pivot choice is the first nonzero entry. Elements are exact, so there is
// no need for partial pivoting.
//
// Errors:
//   - ErrRaggedRows     – input rows of different length.
//   - ErrRowOutOfRange  – Replay/Apply of an op naming a missing row.
//   - any error returned by T.Div, wrapped (for example finite.ErrNotPrime).
package elimination
