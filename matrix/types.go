// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface consumed by the solver and its
// collaborators (generator, oracle, render).
package matrix

// Matrix is a mutable r×c grid of costs. The solver only reads through it;
// generators write through Set.
//
// Complexity: At, Set, Rows and Cols are O(1); Clone is O(r·c).
type Matrix interface {
	// Rows is the row count r.
	Rows() int

	// Cols is the column count c.
	Cols() int

	// At reads cell (row, col); ErrIndexOutOfBounds outside [0,r)×[0,c).
	At(row, col int) (float64, error)

	// Set writes v into cell (row, col); ErrIndexOutOfBounds outside the grid.
	Set(row, col int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
