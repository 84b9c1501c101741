package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/munkres/matrix"
	"github.com/katalvlaran/munkres/oracle"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// TestMinCost_ThreeByThree enumerates all 6 permutations of a known instance.
func TestMinCost_ThreeByThree(t *testing.T) {
	sol, err := oracle.MinCost(dense(t, [][]float64{
		{4, 2, 8},
		{4, 3, 7},
		{3, 1, 6},
	}))
	require.NoError(t, err)
	assert.Equal(t, 12.0, sol.Cost)
	assert.Equal(t, 6, sol.Visited)
	assert.Len(t, sol.Assignment, 3)
}

// TestMaxCost picks the largest diagonal-free total.
func TestMaxCost(t *testing.T) {
	sol, err := oracle.MaxCost(dense(t, [][]float64{
		{1, 9},
		{9, 1},
	}))
	require.NoError(t, err)
	assert.Equal(t, 18.0, sol.Cost)
	assert.Equal(t, []int{1, 0}, sol.Assignment)
}

// TestMinCost_VisitsFactorial checks Heap's algorithm covers n! permutations.
func TestMinCost_VisitsFactorial(t *testing.T) {
	fact := 1
	for n := 1; n <= 6; n++ {
		fact *= n
		m, err := matrix.NewDense(n, n)
		require.NoError(t, err)
		sol, err := oracle.MinCost(m)
		require.NoError(t, err)
		assert.Equal(t, fact, sol.Visited, "n=%d", n)
	}
}

func TestMinCost_Errors(t *testing.T) {
	_, err := oracle.MinCost(nil)
	assert.ErrorIs(t, err, oracle.ErrNonSquare)

	_, err = oracle.MinCost(dense(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	assert.ErrorIs(t, err, oracle.ErrNonSquare)

	big, err := matrix.NewDense(oracle.MaxOrder+1, oracle.MaxOrder+1)
	require.NoError(t, err)
	_, err = oracle.MinCost(big)
	assert.ErrorIs(t, err, oracle.ErrTooLarge)
}
