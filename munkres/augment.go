// SPDX-License-Identifier: MIT

package munkres

// augment flips the alternating primed/starred chain that starts at seed.
//
// Chain construction: Z = [seed]; while the current column holds a star,
// append that star, then append the primed cell of the star's row. Because
// stars are column-independent the column lookup stops at its single match.
// A star row without a prime means the search state is corrupt and is
// reported as an *InvariantError.
//
// Flip: even positions become Starred, odd positions become None. Then all
// primes are erased, all rows uncovered, columns re-covered iff starred and
// the row slack rebuilt. The star count grows by exactly one.
//
// Complexity: O(n²) (chain length ≤ 2n, each link O(n), plus the O(n²) reset).
func augment(ws *workspace, seed Cell) error {
	if ws.mark(seed.Row, seed.Col) != Primed {
		return invariantf(StepAugment, "seed (%d,%d) is %s, want primed",
			seed.Row, seed.Col, ws.mark(seed.Row, seed.Col))
	}

	// Stage 1: build the alternating sequence.
	var (
		chain   = []Cell{seed}
		col     = seed.Col
		starRow int
		primeC  int
	)
	for {
		starRow = ws.findInCol(col, Starred)
		if starRow < 0 {
			break
		}
		chain = append(chain, Cell{Row: starRow, Col: col})

		primeC = ws.findInRow(starRow, Primed)
		if primeC < 0 {
			return invariantf(StepAugment, "row %d holds star (%d,%d) but no prime",
				starRow, starRow, col)
		}
		chain = append(chain, Cell{Row: starRow, Col: primeC})
		col = primeC

		if len(chain) > 2*ws.n {
			return invariantf(StepAugment, "augmenting chain exceeds %d cells", 2*ws.n)
		}
	}

	// Stage 2: flip marks along the chain.
	for i, z := range chain {
		if i%2 == 0 {
			ws.setMark(z.Row, z.Col, Starred)
		} else {
			ws.setMark(z.Row, z.Col, None)
		}
	}

	// Stage 3: reset primes and row covers, recompute column coverage and slack.
	ws.clearPrimes()
	ws.uncoverRows()
	ws.coverStarredColumns()
	ws.resetSlack()

	return nil
}
