// SPDX-License-Identifier: MIT

package munkres

// reduce subtracts each row's minimum from that row, then each column's
// minimum (taken on the row-reduced values) from that column. The minima
// are recorded as row and column potentials; values itself is not touched.
//
// Postcondition: every row and every column holds a zero and all entries are ≥ 0.
// Each pass only sets the potential of the line it is processing.
//
// Complexity: O(n²).
func reduce(ws *workspace) {
	var (
		n    = ws.n
		r, c int
		lo   float64
		v    float64
	)

	// Stage 1: row pass.
	for r = 0; r < n; r++ {
		lo = ws.values[r*n]
		for c = 1; c < n; c++ {
			if v = ws.values[r*n+c]; v < lo {
				lo = v
			}
		}
		ws.rowOff[r] = lo
	}

	// Stage 2: column pass on the row-reduced matrix.
	for c = 0; c < n; c++ {
		lo = ws.values[c] - ws.rowOff[0]
		for r = 1; r < n; r++ {
			if v = ws.values[r*n+c] - ws.rowOff[r]; v < lo {
				lo = v
			}
		}
		ws.colOff[c] = lo
	}
}
