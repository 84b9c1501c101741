// SPDX-License-Identifier: MIT

package munkres

// markInitialZeros stars zeros in row-major order whenever neither the row
// nor the column already holds a star, covering the column of each new star.
// The result is a maximal (not necessarily maximum) independent set; the
// number of stars placed is returned. The per-row slack is seeded for the
// path search that follows.
//
// Complexity: O(n²) using per-row/per-column flags.
func markInitialZeros(ws *workspace) int {
	var (
		n       = ws.n
		rowStar = make([]bool, n)
		r, c    int
		placed  int
	)
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			if rowStar[r] || ws.colCovered[c] || !ws.isZero(r, c) {
				continue
			}
			ws.setMark(r, c, Starred)
			ws.colCovered[c] = true
			rowStar[r] = true
			placed++
		}
	}
	ws.resetSlack()

	return placed
}
