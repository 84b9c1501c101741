// SPDX-License-Identifier: MIT

package munkres

// Snapshot is a deep copy of the solver state handed to Options.OnStep.
// Values and Marks are row-major with length N*N. Snapshots may be retained.
type Snapshot struct {
	N          int
	Values     []float64
	Marks      []Mark
	RowCovered []bool
	ColCovered []bool
}

// At returns the working value of (r, c).
func (s Snapshot) At(r, c int) float64 {
	return s.Values[r*s.N+c]
}

// MarkAt returns the mark of (r, c).
func (s Snapshot) MarkAt(r, c int) Mark {
	return s.Marks[r*s.N+c]
}

// Stars returns the starred cells in row-major order.
func (s Snapshot) Stars() []Cell {
	var out []Cell
	for i, m := range s.Marks {
		if m == Starred {
			out = append(out, Cell{Row: i / s.N, Col: i % s.N})
		}
	}

	return out
}

// snapshot copies the current workspace state with working values resolved.
// Complexity: O(n²).
func (ws *workspace) snapshot() Snapshot {
	s := Snapshot{
		N:          ws.n,
		Values:     make([]float64, len(ws.values)),
		Marks:      make([]Mark, len(ws.marks)),
		RowCovered: make([]bool, ws.n),
		ColCovered: make([]bool, ws.n),
	}
	var r, c int
	for r = 0; r < ws.n; r++ {
		for c = 0; c < ws.n; c++ {
			s.Values[r*ws.n+c] = ws.at(r, c)
		}
	}
	copy(s.Marks, ws.marks)
	copy(s.RowCovered, ws.rowCovered)
	copy(s.ColCovered, ws.colCovered)

	return s
}
