package generator

import (
	"errors"
	"math"
	"math/rand"

	"github.com/katalvlaran/munkres/matrix"
)

var (
	// ErrInvalidOrder is returned when the requested matrix order n < 1.
	ErrInvalidOrder = errors.New("generator: order must be >= 1")

	// ErrInvalidRange is returned when the value range is empty, negative or not finite.
	ErrInvalidRange = errors.New("generator: invalid value range")

	// ErrNilRand is returned when a nil *rand.Rand is supplied.
	ErrNilRand = errors.New("generator: nil rand source")
)

// Ints returns an n×n matrix of integers drawn uniformly from [0, high).
//
// Complexity: O(n²).
func Ints(r *rand.Rand, n, high int) (*matrix.Dense, error) {
	if r == nil {
		return nil, ErrNilRand
	}
	if n < 1 {
		return nil, ErrInvalidOrder
	}
	if high < 1 {
		return nil, ErrInvalidRange
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err = m.Set(i, j, float64(r.Intn(high))); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Floats returns an n×n matrix of values drawn uniformly from [0, high).
//
// Complexity: O(n²).
func Floats(r *rand.Rand, n int, high float64) (*matrix.Dense, error) {
	if r == nil {
		return nil, ErrNilRand
	}
	if n < 1 {
		return nil, ErrInvalidOrder
	}
	if !(high > 0) || math.IsInf(high, 0) {
		return nil, ErrInvalidRange
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err = m.Set(i, j, r.Float64()*high); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Constant returns an n×n matrix with every entry equal to v.
func Constant(n int, v float64) (*matrix.Dense, error) {
	if n < 1 {
		return nil, ErrInvalidOrder
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, ErrInvalidRange
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Batch returns count integer matrices of order n, matrix i drawn from the
// stream Derive(seed, i). Any single matrix can therefore be regenerated
// from (seed, i) alone.
//
// Complexity: O(count·n²).
func Batch(seed int64, count, n, high int) ([]matrix.Matrix, error) {
	if count < 0 {
		return nil, ErrInvalidOrder
	}
	out := make([]matrix.Matrix, count)
	for i := 0; i < count; i++ {
		m, err := Ints(Derive(seed, uint64(i)), n, high)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}

	return out, nil
}
