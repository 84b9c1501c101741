// SPDX-License-Identifier: MIT

package munkres

import (
	"context"
	"math"

	"go.uber.org/zap"
)

// DefaultEpsilon is the zero tolerance used by DefaultOptions. Working values
// with |v| ≤ Epsilon are treated as zero; this absorbs floating-point drift
// from repeated row/column shifts.
const DefaultEpsilon = 1e-9

// Options configures a solve.
//
//   - Ctx:             checked before every exposed-zero scan; nil means context.Background().
//   - Epsilon:         zero tolerance; must be ≥ 0. Zero means exact comparison,
//     which suits integral costs; fractional costs need a positive tolerance
//     because potentials accumulate rounding.
//   - Maximize:        maximize the total instead of minimizing it.
//   - CheckInvariants: re-verify the store invariants after every step and
//     fail with an *InvariantError on violation. O(n²) per step.
//   - Logger:          Debug entries per step, Info on completion; nil means no logging.
//   - OnStep:          observer called after every step with a deep copy of the
//     solver state. Costs O(n²) per step while set.
type Options struct {
	Ctx             context.Context
	Epsilon         float64
	Maximize        bool
	CheckInvariants bool
	Logger          *zap.Logger
	OnStep          func(Event, Snapshot)
}

// DefaultOptions returns Options with a background context and DefaultEpsilon.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Epsilon: DefaultEpsilon,
	}
}

// normalize validates o and fills nil fields with their defaults.
func (o *Options) normalize() error {
	if o.Epsilon < 0 || math.IsNaN(o.Epsilon) || math.IsInf(o.Epsilon, 0) {
		return ErrInvalidOptions
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return nil
}
