// SPDX-License-Identifier: MIT

package munkres

import (
	"math"

	"github.com/katalvlaran/munkres/matrix"
)

// workspace is the Matrix Store: the working costs plus the tri-state mark
// grid and the row/column cover flags. It is owned by one Driver run and
// touched by every phase; nothing outlives the solve.
//
// Layout: values and marks are row-major flat slices of length n*n, indexed
// by r*n + c. The working value of (r, c) is kept in potential form,
//
//	values[r*n+c] - rowOff[r] - colOff[c]
//
// so reduction and adjustment shift whole lines in O(n) instead of O(n²).
//
// slack[r] is the minimum working value of row r over the uncovered columns
// (+Inf for covered rows). It lets the path search skip rows without an
// exposed zero and gives the adjuster its minimum in O(n).
type workspace struct {
	n          int
	eps        float64
	values     []float64
	rowOff     []float64
	colOff     []float64
	marks      []Mark
	rowCovered []bool
	colCovered []bool
	slack      []float64

	// visited counts row and cell visits of the search, slack and adjust steps.
	visited int
}

// newWorkspace copies cost into a fresh workspace. When maximize is set the
// working values are max(cost) - cost, which turns the maximization into an
// equivalent minimization over non-negative values.
//
// Assumes cost is non-nil, square and finite (validated by the Driver).
// Complexity: O(n²).
func newWorkspace(cost matrix.Matrix, eps float64, maximize bool) (*workspace, error) {
	n := cost.Rows()
	ws := &workspace{
		n:          n,
		eps:        eps,
		values:     make([]float64, n*n),
		rowOff:     make([]float64, n),
		colOff:     make([]float64, n),
		marks:      make([]Mark, n*n),
		rowCovered: make([]bool, n),
		colCovered: make([]bool, n),
		slack:      make([]float64, n),
	}

	var (
		r, c int
		v    float64
		err  error
		hi   = math.Inf(-1)
	)
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			if v, err = cost.At(r, c); err != nil {
				return nil, err
			}
			ws.values[r*n+c] = v
			if v > hi {
				hi = v
			}
		}
	}
	if maximize {
		for r = range ws.values {
			ws.values[r] = hi - ws.values[r]
		}
	}

	return ws, nil
}

// at returns the working value of (r, c).
func (ws *workspace) at(r, c int) float64 {
	return ws.values[r*ws.n+c] - ws.rowOff[r] - ws.colOff[c]
}

// setAt stores v as the working value of (r, c) under the current potentials.
func (ws *workspace) setAt(r, c int, v float64) {
	ws.values[r*ws.n+c] = v + ws.rowOff[r] + ws.colOff[c]
}

// isZero reports whether the working value of (r, c) is zero within eps.
func (ws *workspace) isZero(r, c int) bool {
	return math.Abs(ws.at(r, c)) <= ws.eps
}

// rowSlack recomputes the minimum working value of row r over the
// uncovered columns, +Inf if every column is covered.
// Complexity: O(n).
func (ws *workspace) rowSlack(r int) float64 {
	lo := math.Inf(1)
	for c := 0; c < ws.n; c++ {
		if ws.colCovered[c] {
			continue
		}
		if v := ws.at(r, c); v < lo {
			lo = v
		}
	}
	ws.visited += ws.n

	return lo
}

// resetSlack rebuilds slack from scratch after the covers changed wholesale.
// Complexity: O(n²).
func (ws *workspace) resetSlack() {
	for r := 0; r < ws.n; r++ {
		if ws.rowCovered[r] {
			ws.slack[r] = math.Inf(1)
			continue
		}
		ws.slack[r] = ws.rowSlack(r)
	}
}

// mark returns the mark of (r, c).
func (ws *workspace) mark(r, c int) Mark {
	return ws.marks[r*ws.n+c]
}

// setMark sets the mark of (r, c).
func (ws *workspace) setMark(r, c int, m Mark) {
	ws.marks[r*ws.n+c] = m
}

// findInRow returns the column of the first cell in row r carrying mark m, or -1.
// Complexity: O(n).
func (ws *workspace) findInRow(r int, m Mark) int {
	var (
		base = r * ws.n
		c    int
	)
	for c = 0; c < ws.n; c++ {
		if ws.marks[base+c] == m {
			return c
		}
	}

	return -1
}

// findInCol returns the row of the first cell in column c carrying mark m, or -1.
// Complexity: O(n).
func (ws *workspace) findInCol(c int, m Mark) int {
	var r int
	for r = 0; r < ws.n; r++ {
		if ws.marks[r*ws.n+c] == m {
			return r
		}
	}

	return -1
}

// stars counts starred cells.
// Complexity: O(n²).
func (ws *workspace) stars() int {
	var k int
	for _, m := range ws.marks {
		if m == Starred {
			k++
		}
	}

	return k
}

// clearPrimes resets every Primed mark to None.
func (ws *workspace) clearPrimes() {
	for i, m := range ws.marks {
		if m == Primed {
			ws.marks[i] = None
		}
	}
}

// uncoverRows clears all row covers.
func (ws *workspace) uncoverRows() {
	for r := range ws.rowCovered {
		ws.rowCovered[r] = false
	}
}

// coverStarredColumns recomputes column coverage as "covered iff the column
// holds a star".
// Complexity: O(n²).
func (ws *workspace) coverStarredColumns() {
	for c := 0; c < ws.n; c++ {
		ws.colCovered[c] = ws.findInCol(c, Starred) >= 0
	}
}

// allColumnsCovered reports whether every column is covered.
func (ws *workspace) allColumnsCovered() bool {
	for _, covered := range ws.colCovered {
		if !covered {
			return false
		}
	}

	return true
}

// assignment reads the starred cells as a row→column mapping. A row without a
// star yields -1, which the Driver treats as an invariant violation.
func (ws *workspace) assignment() []int {
	out := make([]int, ws.n)
	var r int
	for r = 0; r < ws.n; r++ {
		out[r] = ws.findInRow(r, Starred)
	}

	return out
}
