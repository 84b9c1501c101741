package munkres

// Test bridge (white-box) for the private phases.
//
// Stepper wraps a workspace so that munkres_test can drive reduce, the initial
// marker, the path search, the augmenter and the adjuster one step at a time
// without widening the production API. It compiles only with the test binary.

import "github.com/katalvlaran/munkres/matrix"

// Stepper exposes one workspace to black-box tests.
type Stepper struct {
	ws *workspace
}

// NewStepper builds a workspace over rows with the given zero tolerance.
func NewStepper(rows [][]float64, eps float64) (*Stepper, error) {
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, err
	}
	if err = validateCost(m); err != nil {
		return nil, err
	}
	ws, err := newWorkspace(m, eps, false)
	if err != nil {
		return nil, err
	}
	ws.resetSlack()

	return &Stepper{ws: ws}, nil
}

// Setters below change values, marks or covers behind the solver's back, so
// they rebuild the row slack the search and the adjuster rely on.

func (p *Stepper) Reduce() {
	reduce(p.ws)
	p.ws.resetSlack()
}

func (p *Stepper) MarkInitial() int { return markInitialZeros(p.ws) }

// Seek runs one search and reports the next state by name.
func (p *Stepper) Seek() (string, Cell, bool) {
	next, cell, blocked := seek(p.ws)

	return next.String(), cell, blocked
}

func (p *Stepper) Augment(seed Cell) error { return augment(p.ws, seed) }
func (p *Stepper) Adjust() (float64, error) { return adjust(p.ws) }
func (p *Stepper) Verify(step StepKind, stars int) error { return p.ws.verify(step, stars) }
func (p *Stepper) Snapshot() Snapshot { return p.ws.snapshot() }
func (p *Stepper) SetMark(r, c int, m Mark) { p.ws.setMark(r, c, m) }
func (p *Stepper) Assignment() []int { return p.ws.assignment() }
func (p *Stepper) AllColumnsCovered() bool { return p.ws.allColumnsCovered() }
func (p *Stepper) Visited() int { return p.ws.visited }

func (p *Stepper) SetValue(r, c int, v float64) {
	p.ws.setAt(r, c, v)
	p.ws.resetSlack()
}

func (p *Stepper) CoverRow(r int, covered bool) {
	p.ws.rowCovered[r] = covered
	p.ws.resetSlack()
}

func (p *Stepper) CoverCol(c int, covered bool) {
	p.ws.colCovered[c] = covered
	p.ws.resetSlack()
}
