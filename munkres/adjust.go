// SPDX-License-Identifier: MIT

package munkres

import "math"

// adjust exposes new zeros when no exposed zero remains.
//
// h is the minimum working value over cells whose row and column are both
// uncovered, read from the row slack. h is added to every covered row and
// subtracted from every uncovered column: a covered-row/uncovered-column cell
// nets 0, a doubly covered cell gains h, and a doubly uncovered cell loses h
// (so at least one exposed zero appears). Every marked zero lies on exactly
// one covered line, so stars and primes stay zero. Shifting whole
// rows/columns changes every permutation's total by the same amount, so the
// optimum is unchanged.
//
// The shift is applied to the row and column potentials, and the slack of
// every uncovered row drops by h.
//
// Returns h, or an *InvariantError if no doubly uncovered cell exists or h is
// not strictly positive (an exposed zero was missed).
//
// Complexity: O(n).
func adjust(ws *workspace) (float64, error) {
	var (
		n       = ws.n
		h       = math.Inf(1)
		openRow bool
		openCol bool
		r, c    int
	)

	// Stage 1: minimum uncovered value.
	for r = 0; r < n; r++ {
		if ws.rowCovered[r] {
			continue
		}
		openRow = true
		if ws.slack[r] < h {
			h = ws.slack[r]
		}
	}
	for c = 0; c < n && !openCol; c++ {
		openCol = !ws.colCovered[c]
	}
	ws.visited += 2 * n
	if !openRow || !openCol {
		return 0, invariantf(StepAdjust, "no cell with uncovered row and column")
	}
	if h <= ws.eps {
		return 0, invariantf(StepAdjust, "minimum uncovered value %g is not positive", h)
	}

	// Stage 2: shift covered rows up, uncovered columns down.
	for r = 0; r < n; r++ {
		if ws.rowCovered[r] {
			ws.rowOff[r] -= h
		} else {
			ws.slack[r] -= h
		}
	}
	for c = 0; c < n; c++ {
		if !ws.colCovered[c] {
			ws.colOff[c] += h
		}
	}

	return h, nil
}
