// Package matrix provides the dense cost-matrix primitive shared by the
// assignment solver and its tooling.
//
// The matrix package provides:
//
//   - Matrix, a minimal mutable 2-D float64 interface (Rows, Cols, At, Set, Clone).
//   - Dense, a row-major implementation backed by a flat slice.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateFinite) returning
//     tagged sentinel errors for uniform guard logic at API boundaries.
//
// Indexers never panic: out-of-range access returns ErrIndexOutOfBounds.
//
//	m, _ := matrix.NewDenseFrom([][]float64{{4, 2}, {3, 1}})
//	v, _ := m.At(1, 0) // 3
package matrix
