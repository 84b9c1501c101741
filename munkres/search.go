// SPDX-License-Identifier: MIT

package munkres

import "math"

// state is the Path Search Engine's position in the solve loop.
//
//	seeking ──(blocked prime)──▶ seeking
//	seeking ──(unblocked prime)──▶ pathFound ──augment──▶ seeking | done
//	seeking ──(no exposed zero)──▶ exhausted ──adjust──▶ seeking
type state int

const (
	stateSeeking state = iota
	statePathFound
	stateExhausted
	stateDone
)

func (s state) String() string {
	switch s {
	case stateSeeking:
		return "seeking"
	case statePathFound:
		return "path-found"
	case stateExhausted:
		return "exhausted"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}

// findExposedZero returns the first zero in row-major order whose row and
// column are both uncovered. Rows whose slack is above eps hold no exposed
// zero and are skipped without touching their cells. A row whose slack
// claims a zero the scan cannot find has its slack recomputed.
//
// Complexity: O(n) plus O(n) per row scanned.
func (ws *workspace) findExposedZero() (Cell, bool) {
	var r, c int
	for r = 0; r < ws.n; r++ {
		ws.visited++
		if ws.rowCovered[r] || ws.slack[r] > ws.eps {
			continue
		}
		for c = 0; c < ws.n; c++ {
			ws.visited++
			if !ws.colCovered[c] && ws.isZero(r, c) {
				return Cell{Row: r, Col: c}, true
			}
		}
		ws.slack[r] = ws.rowSlack(r)
	}

	return Cell{}, false
}

// coverRowUncoverCol covers row r and uncovers column c, folding the newly
// exposed column into the slack of every uncovered row.
// Complexity: O(n).
func (ws *workspace) coverRowUncoverCol(r, c int) {
	ws.rowCovered[r] = true
	ws.slack[r] = math.Inf(1)
	ws.colCovered[c] = false

	for i := 0; i < ws.n; i++ {
		if ws.rowCovered[i] {
			continue
		}
		if v := ws.at(i, c); v < ws.slack[i] {
			ws.slack[i] = v
		}
	}
	ws.visited += ws.n
}

// seek performs exactly one exposed-zero search.
//
//   - No exposed zero: stateExhausted.
//   - Exposed zero (r,c) is primed. If row r holds a star at (r,c′), row r is
//     covered and column c′ uncovered; the engine stays in stateSeeking and
//     the blocked cell is returned with blocked=true.
//   - Otherwise statePathFound with (r,c) as the augmenting seed.
//
// Complexity: O(n) amortised; see findExposedZero.
func seek(ws *workspace) (next state, cell Cell, blocked bool) {
	cell, ok := ws.findExposedZero()
	if !ok {
		return stateExhausted, Cell{}, false
	}

	ws.setMark(cell.Row, cell.Col, Primed)
	if starCol := ws.findInRow(cell.Row, Starred); starCol >= 0 {
		ws.coverRowUncoverCol(cell.Row, starCol)

		return stateSeeking, cell, true
	}

	return statePathFound, cell, false
}
