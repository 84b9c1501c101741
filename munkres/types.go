// SPDX-License-Identifier: MIT

package munkres

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when the cost matrix is nil, empty, or not square.
	ErrShapeMismatch = errors.New("munkres: cost matrix must be square and non-empty")

	// ErrInvalidValue is returned when the cost matrix holds a NaN or ±Inf entry.
	ErrInvalidValue = errors.New("munkres: cost matrix entries must be finite")

	// ErrInvalidOptions is returned for nonsensical Options or batch parameters
	// (negative Epsilon, workers < 1).
	ErrInvalidOptions = errors.New("munkres: invalid options")

	// ErrInternal marks a violated solver invariant. It is never caused by
	// user input; see InvariantError.
	ErrInternal = errors.New("munkres: internal consistency error")
)

// InvariantError reports a broken internal invariant together with the step
// that detected it. errors.Is(err, ErrInternal) holds for every InvariantError.
type InvariantError struct {
	Step   StepKind
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("munkres: internal consistency error during %s: %s", e.Step, e.Detail)
}

// Unwrap ties InvariantError to the ErrInternal sentinel.
func (e *InvariantError) Unwrap() error { return ErrInternal }

// invariantf builds an *InvariantError with a formatted detail message.
func invariantf(step StepKind, format string, args ...any) error {
	return &InvariantError{Step: step, Detail: fmt.Sprintf(format, args...)}
}

// Mark is the per-cell marking state. A cell is never primed and starred at once.
type Mark uint8

const (
	// None means the cell carries no mark.
	None Mark = iota
	// Primed marks a candidate zero found during path search.
	Primed
	// Starred marks a zero in the current independent set.
	Starred
)

func (m Mark) String() string {
	switch m {
	case None:
		return "none"
	case Primed:
		return "primed"
	case Starred:
		return "starred"
	default:
		return fmt.Sprintf("Mark(%d)", uint8(m))
	}
}

// Cell addresses one matrix entry.
type Cell struct {
	Row, Col int
}

// StepKind identifies the solver step reported to observers and in errors.
type StepKind int

const (
	// StepReduce is the initial row-then-column minimum subtraction.
	StepReduce StepKind = iota
	// StepMarkInitial is the greedy starring of independent zeros.
	StepMarkInitial
	// StepPrime is a blocked prime: the row was covered and the star's column uncovered.
	StepPrime
	// StepAugment is a completed augmenting-path flip.
	StepAugment
	// StepAdjust is a matrix adjustment by the minimum uncovered value.
	StepAdjust
	// StepDone is emitted once, when every column is covered.
	StepDone
)

func (s StepKind) String() string {
	switch s {
	case StepReduce:
		return "reduce"
	case StepMarkInitial:
		return "mark-initial"
	case StepPrime:
		return "prime"
	case StepAugment:
		return "augment"
	case StepAdjust:
		return "adjust"
	case StepDone:
		return "done"
	default:
		return fmt.Sprintf("StepKind(%d)", int(s))
	}
}

// Event describes one solver step.
//
//   - Seq:   0-based position of the step in the run.
//   - Stars: number of starred cells after the step.
//   - Cell:  the primed cell for StepPrime, the augmenting seed for StepAugment.
//   - Delta: the shift h applied by StepAdjust.
type Event struct {
	Step  StepKind
	Seq   int
	Stars int
	Cell  Cell
	Delta float64
}

// Stats counts the work done by one solve.
type Stats struct {
	// InitialStars is the size of the greedy independent set.
	InitialStars int
	// Scans is the number of exposed-zero scans performed by the path search.
	Scans int
	// Primes counts every primed zero, blocked or not.
	Primes int
	// Augmentations counts augmenting-path flips; at most n - InitialStars.
	Augmentations int
	// Adjustments counts matrix adjustments.
	Adjustments int
	// Visited counts the row and cell visits made by the path search, the slack
	// bookkeeping and the adjuster. It never exceeds 8n³ + 7n².
	Visited int
}

// Result holds the outcome of a solve.
type Result struct {
	// Assignment maps each row index to its column: Assignment[r] = c.
	Assignment []int

	// Cost is the sum of the original costs of the assigned cells.
	Cost float64

	// Stats reports the per-phase work.
	Stats Stats
}

// Pairs returns the assignment as cells in row order.
func (r Result) Pairs() []Cell {
	out := make([]Cell, len(r.Assignment))
	for row, col := range r.Assignment {
		out[row] = Cell{Row: row, Col: col}
	}

	return out
}
