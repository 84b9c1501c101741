// SPDX-License-Identifier: MIT

// Package munkres - Driver.
//
// This file sequences the phases of one solve:
//
//	validate → reduce → markInitialZeros → loop {
//	    seeking:   seek (one exposed-zero scan)
//	    pathFound: augment, then termination check
//	    exhausted: adjust
//	} until done → extract assignment and original cost.
//
// The loop is iterative; no phase calls another. Each iteration is a safe
// preemption point, so Options.Ctx is checked once per iteration.
package munkres

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/munkres/matrix"
)

// Number lists the element types accepted by SolveRows.
// Integer costs must lie within ±2⁵³, the range float64 holds exactly.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// maxExactInt is the largest magnitude below which every integer is a float64.
const maxExactInt = 1 << 53

// SolveRows converts rows to a Dense matrix and delegates to Solve.
// Empty or ragged input yields ErrShapeMismatch; an integer cost that would
// round on conversion yields ErrInvalidValue.
func SolveRows[T Number](rows [][]T, opts Options) (Result, error) {
	if len(rows) == 0 {
		return Result{}, fmt.Errorf("%w: empty input", ErrShapeMismatch)
	}
	half := 0.5
	integral := T(half) == 0
	grid := make([][]float64, len(rows))
	for i, row := range rows {
		grid[i] = make([]float64, len(row))
		for j, v := range row {
			f := float64(v)
			if integral && (math.Abs(f) > maxExactInt || T(f) != v) {
				return Result{}, fmt.Errorf("%w: cell (%d,%d)=%v is not exact as float64", ErrInvalidValue, i, j, v)
			}
			grid[i][j] = f
		}
	}
	m, err := matrix.NewDenseFrom(grid)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}

	return Solve(m, opts)
}

// Solve finds a minimum-cost (or, with opts.Maximize, maximum-value)
// assignment of rows to columns of the square matrix cost.
//
// Contracts:
//   - cost is non-nil, square and non-empty; otherwise ErrShapeMismatch.
//   - every entry is finite; otherwise ErrInvalidValue. Negative entries are allowed.
//   - cost is never mutated.
//
// Errors: ErrShapeMismatch, ErrInvalidValue, ErrInvalidOptions (before any work);
// the context error if opts.Ctx is done; *InvariantError (ErrInternal) if an
// internal invariant breaks. No partial result is returned on error.
//
// Complexity: O(n³) time: at most n augmentations, each preceded by O(n)
// searches of O(n) and one O(n²) slack rebuild; memory O(n²).
func Solve(cost matrix.Matrix, opts Options) (Result, error) {
	// Stage 1: validation, all-or-nothing.
	if err := opts.normalize(); err != nil {
		return Result{}, fmt.Errorf("%w: epsilon %v", err, opts.Epsilon)
	}
	if err := validateCost(cost); err != nil {
		return Result{}, err
	}

	// Stage 2: working state.
	ws, err := newWorkspace(cost, opts.Epsilon, opts.Maximize)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}

	d := &driver{ws: ws, opts: opts, log: opts.Logger.With(zap.Int("n", ws.n))}
	if err = d.run(); err != nil {
		return Result{}, err
	}

	// Stage 3: extraction against the original costs.
	res := Result{Assignment: ws.assignment(), Stats: d.stats}
	var v float64
	for r, c := range res.Assignment {
		if c < 0 {
			return Result{}, invariantf(StepDone, "row %d has no star", r)
		}
		if v, err = cost.At(r, c); err != nil {
			return Result{}, err
		}
		res.Cost += v
	}
	d.log.Info("munkres: solved",
		zap.Float64("cost", res.Cost),
		zap.Int("augmentations", res.Stats.Augmentations),
		zap.Int("adjustments", res.Stats.Adjustments),
		zap.Int("scans", res.Stats.Scans),
		zap.Int("visited", res.Stats.Visited),
	)

	return res, nil
}

// validateCost maps matrix validator failures onto the solver's sentinels.
func validateCost(cost matrix.Matrix) error {
	if err := matrix.ValidateNotNil(cost); err != nil {
		return fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	if err := matrix.ValidateSquare(cost); err != nil {
		return fmt.Errorf("%w: %dx%d: %v", ErrShapeMismatch, cost.Rows(), cost.Cols(), err)
	}
	if err := matrix.ValidateFinite(cost); err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}

		return fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}

	return nil
}

// driver carries the per-solve loop state. Stats replace any process-wide counter.
type driver struct {
	ws    *workspace
	opts  Options
	log   *zap.Logger
	stats Stats
	seq   int
	stars int
}

// emit records a finished step: optional invariant check, debug log, observer.
func (d *driver) emit(ev Event) error {
	ev.Seq = d.seq
	ev.Stars = d.stars
	d.seq++

	if d.opts.CheckInvariants {
		if err := d.ws.verify(ev.Step, d.stars); err != nil {
			return err
		}
	}
	if ce := d.log.Check(zap.DebugLevel, "munkres: step"); ce != nil {
		ce.Write(
			zap.Stringer("step", ev.Step),
			zap.Int("seq", ev.Seq),
			zap.Int("stars", ev.Stars),
			zap.Int("row", ev.Cell.Row),
			zap.Int("col", ev.Cell.Col),
			zap.Float64("delta", ev.Delta),
		)
	}
	if d.opts.OnStep != nil {
		d.opts.OnStep(ev, d.ws.snapshot())
	}

	return nil
}

// run drives the state machine to completion.
func (d *driver) run() error {
	var (
		ws  = d.ws
		ctx = d.opts.Ctx
		err error
	)
	if err = ctx.Err(); err != nil {
		return err
	}

	reduce(ws)
	if err = d.emit(Event{Step: StepReduce}); err != nil {
		return err
	}

	d.stars = markInitialZeros(ws)
	d.stats.InitialStars = d.stars
	if err = d.emit(Event{Step: StepMarkInitial}); err != nil {
		return err
	}

	cur := stateSeeking
	if ws.allColumnsCovered() {
		cur = stateDone
	}

	var (
		seed    Cell
		cell    Cell
		blocked bool
		h       float64
	)
	for cur != stateDone {
		if err = ctx.Err(); err != nil {
			return err
		}

		switch cur {
		case stateSeeking:
			d.stats.Scans++
			cur, cell, blocked = seek(ws)
			if cur == stateExhausted {
				continue
			}
			d.stats.Primes++
			if blocked {
				if err = d.emit(Event{Step: StepPrime, Cell: cell}); err != nil {
					return err
				}
				continue
			}
			seed = cell

		case statePathFound:
			if err = augment(ws, seed); err != nil {
				return err
			}
			d.stars++
			d.stats.Augmentations++
			if err = d.emit(Event{Step: StepAugment, Cell: seed}); err != nil {
				return err
			}
			// Termination check on every return to seeking.
			cur = stateSeeking
			if ws.allColumnsCovered() {
				cur = stateDone
			}

		case stateExhausted:
			if h, err = adjust(ws); err != nil {
				return err
			}
			d.stats.Adjustments++
			if err = d.emit(Event{Step: StepAdjust, Delta: h}); err != nil {
				return err
			}
			cur = stateSeeking

		default:
			return invariantf(StepDone, "unexpected state %s", cur)
		}
	}

	d.stats.Visited = ws.visited
	if got := ws.stars(); got != ws.n {
		return invariantf(StepDone, "%d stars at termination, want %d", got, ws.n)
	}

	return d.emit(Event{Step: StepDone})
}
