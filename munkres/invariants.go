// SPDX-License-Identifier: MIT

package munkres

// verify re-checks the store invariants that must hold after step. It is
// only called when Options.CheckInvariants is set.
//
// Always:
//   - no working value is below −eps;
//   - stars and primes sit on zeros;
//   - stars are row- and column-independent.
//
// After StepReduce and StepAdjust: every row and every column holds a zero.
// After StepMarkInitial and StepAugment: no primes, no covered rows, columns
// covered iff starred, and the star count equals wantStars.
//
// Complexity: O(n²).
func (ws *workspace) verify(step StepKind, wantStars int) error {
	var (
		n        = ws.n
		r, c     int
		rowStars = make([]int, n)
		colStars = make([]int, n)
		rowZero  = make([]bool, n)
		colZero  = make([]bool, n)
		stars    int
		primes   int
	)
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			if ws.at(r, c) < -ws.eps {
				return invariantf(step, "cell (%d,%d) is negative: %g", r, c, ws.at(r, c))
			}
			zero := ws.isZero(r, c)
			if zero {
				rowZero[r] = true
				colZero[c] = true
			}
			switch ws.mark(r, c) {
			case Starred:
				if !zero {
					return invariantf(step, "star (%d,%d) is not a zero: %g", r, c, ws.at(r, c))
				}
				rowStars[r]++
				colStars[c]++
				stars++
			case Primed:
				if !zero {
					return invariantf(step, "prime (%d,%d) is not a zero: %g", r, c, ws.at(r, c))
				}
				primes++
			}
		}
	}

	for r = 0; r < n; r++ {
		if rowStars[r] > 1 {
			return invariantf(step, "row %d holds %d stars", r, rowStars[r])
		}
		if colStars[r] > 1 {
			return invariantf(step, "column %d holds %d stars", r, colStars[r])
		}
	}

	switch step {
	case StepReduce, StepAdjust:
		for r = 0; r < n; r++ {
			if !rowZero[r] {
				return invariantf(step, "row %d holds no zero", r)
			}
			if !colZero[r] {
				return invariantf(step, "column %d holds no zero", r)
			}
		}

	case StepMarkInitial, StepAugment:
		if stars != wantStars {
			return invariantf(step, "star count is %d, want %d", stars, wantStars)
		}
		if primes != 0 {
			return invariantf(step, "%d primes left after reset", primes)
		}
		for r = 0; r < n; r++ {
			if ws.rowCovered[r] {
				return invariantf(step, "row %d still covered", r)
			}
			if ws.colCovered[r] != (colStars[r] == 1) {
				return invariantf(step, "column %d cover=%t but stars=%d", r, ws.colCovered[r], colStars[r])
			}
		}
	}

	return nil
}
