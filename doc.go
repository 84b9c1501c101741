// Package munkres is the module root of an exact solver for the square
// assignment problem: given an n×n cost matrix, pick one cell per row and
// per column so the total is minimal (or maximal).
//
// 🚀 What is in the box?
//
//	A small, dependency-light toolkit built around the Hungarian
//	(Kuhn–Munkres) method:
//		• munkres/:   the solver: reduction, greedy starring, prime/augment
//		              search and matrix adjustment as an explicit state machine
//		• matrix/:    Dense cost matrix + validators (square, finite, non-nil)
//		• generator/: seeded random, constant and batch matrices
//		• oracle/:    brute-force permutation search for small n
//		• render/:    plain, LaTeX pmatrix and marked-snapshot output
//		• config/:    YAML configuration and zap logger construction
//		• cmd/munkres: the CLI (solve, random, verify)
//
// ✨ Guarantees:
//
//   - Deterministic: identical input, identical assignment
//   - No shared state: every solve owns its workspace; batches run in parallel
//   - Input untouched: the cost matrix is copied before any mutation
//   - Checked: optional invariant verification after every step
//
// Quick example:
//
//	res, err := munkres.SolveRows([][]int{
//		{4, 2, 8},
//		{4, 3, 7},
//		{3, 1, 6},
//	}, munkres.DefaultOptions())
//	// res.Assignment == []int{1, 2, 0}, res.Cost == 12
//
//	go install github.com/katalvlaran/munkres/cmd/munkres@latest
package munkres
