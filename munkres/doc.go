// Package munkres solves the square assignment problem with the
// Kuhn–Munkres (Hungarian) primal-dual method.
//
// 🚀 What is the assignment problem?
//
//	Given an n×n cost matrix, pick one cell per row and per column so that
//	the sum of the picked cells is minimal. Typical uses:
//	  • workers ↔ jobs, drivers ↔ riders
//	  • detections ↔ tracks in multi-object tracking
//	  • matching in bipartite graphs with weights
//
// Algorithm Outline:
//  1. Reduce: subtract each row minimum, then each column minimum.
//  2. Star a maximal set of independent zeros (row-major greedy), cover their columns.
//  3. State machine, driven iteratively:
//     SEEKING:   prime the first exposed zero; if its row has a star, cover the
//     row and uncover the star's column (stay SEEKING); else PATH_FOUND.
//     PATH_FOUND: flip the alternating prime/star chain (+1 star), reset primes
//     and covers, re-cover starred columns; DONE when all columns covered.
//     EXHAUSTED: no exposed zero; shift by the minimum uncovered value h.
//  4. Read the stars as the assignment; sum the ORIGINAL costs.
//
// ✨ Key features:
//   - one tri-state mark grid (None / Primed / Starred), no recursion;
//   - Options.Maximize for value maximization;
//   - Options.Ctx cancellation between scans, zap logging per step;
//   - Options.OnStep observer with deep-copied Snapshots, Options.CheckInvariants;
//   - SolveAll for many independent matrices on a bounded worker pool.
//
// ⚙️ Usage:
//
//	res, err := munkres.SolveRows([][]int{
//	  {4, 2, 8},
//	  {4, 3, 7},
//	  {3, 1, 6},
//	}, munkres.DefaultOptions())
//	// res.Assignment == [1 2 0], res.Cost == 12
//
// Errors: ErrShapeMismatch and ErrInvalidValue for bad input, ErrInvalidOptions
// for bad options, *InvariantError (errors.Is ErrInternal) for internal bugs.
//
// Performance:
//
//   - Augmentations: at most n; between two of them at most n blocked primes
//     and n adjustments.
//   - Working values live in potential form (cost − row potential − column
//     potential), so an adjustment is O(n); a per-row slack (minimum over the
//     uncovered columns) lets each exposed-zero search skip rows in O(1) and
//     is refreshed in O(n) when a column is uncovered.
//   - Time:   O(n³) worst case; Stats.Visited ≤ 8n³ + 7n².
//   - Memory: O(n²) per solve.
package munkres
