// Package oracle is the brute-force reference for the assignment solver:
// it enumerates every row→column permutation and keeps the best total.
//
// Complexity: O(n·n!) time, O(n) extra space. Use only for small n
// (MaxOrder = 10 ⇒ 3 628 800 permutations).
package oracle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/munkres/matrix"
)

// MaxOrder is the largest matrix order the oracle accepts.
const MaxOrder = 10

var (
	// ErrNonSquare is returned for nil, empty or non-square input.
	ErrNonSquare = errors.New("oracle: cost matrix must be square and non-empty")

	// ErrTooLarge is returned when n > MaxOrder.
	ErrTooLarge = errors.New("oracle: matrix order exceeds MaxOrder")
)

// Solution is the best permutation found by exhaustive search.
type Solution struct {
	// Assignment maps row r to column Assignment[r]. Ties keep the first
	// permutation in enumeration order.
	Assignment []int

	// Cost is the total of the selected entries.
	Cost float64

	// Visited is the number of permutations evaluated (n!).
	Visited int
}

// MinCost returns the minimum-total permutation of m.
func MinCost(m matrix.Matrix) (Solution, error) {
	return search(m, func(candidate, best float64) bool { return candidate < best })
}

// MaxCost returns the maximum-total permutation of m.
func MaxCost(m matrix.Matrix) (Solution, error) {
	return search(m, func(candidate, best float64) bool { return candidate > best })
}

// search enumerates permutations with the iterative form of Heap's algorithm
// and keeps the first permutation that reaches the best total.
func search(m matrix.Matrix, better func(candidate, best float64) bool) (Solution, error) {
	// Stage 1: validate and load the matrix into a local grid.
	if err := matrix.ValidateNotNil(m); err != nil {
		return Solution{}, fmt.Errorf("%w: %v", ErrNonSquare, err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return Solution{}, fmt.Errorf("%w: %v", ErrNonSquare, err)
	}
	n := m.Rows()
	if n > MaxOrder {
		return Solution{}, fmt.Errorf("%w: n=%d", ErrTooLarge, n)
	}
	grid := make([]float64, n*n)
	var (
		i, j int
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if grid[i*n+j], err = m.At(i, j); err != nil {
				return Solution{}, err
			}
		}
	}

	total := func(p []int) float64 {
		var s float64
		for r, c := range p {
			s += grid[r*n+c]
		}

		return s
	}

	// Stage 2: Heap's algorithm over perm; c is the per-level loop counter.
	perm := make([]int, n)
	for i = range perm {
		perm[i] = i
	}
	best := Solution{Assignment: append([]int(nil), perm...), Cost: total(perm), Visited: 1}

	c := make([]int, n)
	i = 1
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[c[i]], perm[i] = perm[i], perm[c[i]]
			}
			best.Visited++
			if s := total(perm); better(s, best.Cost) {
				best.Cost = s
				copy(best.Assignment, perm)
			}
			c[i]++
			i = 1
		} else {
			c[i] = 0
			i++
		}
	}

	return best, nil
}
