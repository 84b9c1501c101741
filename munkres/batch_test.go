package munkres_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/munkres/generator"
	"github.com/katalvlaran/munkres/matrix"
	"github.com/katalvlaran/munkres/munkres"
)

// TestSolveAll_MatchesSequential: concurrent results are index-aligned and
// equal to one-by-one solves.
func TestSolveAll_MatchesSequential(t *testing.T) {
	defer goleak.VerifyNone(t)

	batch, err := generator.Batch(31, 64, 6, 25)
	require.NoError(t, err)

	got, err := munkres.SolveAll(context.Background(), batch, munkres.DefaultOptions(), 4)
	require.NoError(t, err)
	require.Len(t, got, len(batch))

	for i, m := range batch {
		want, err := munkres.Solve(m, munkres.DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, want.Cost, got[i].Cost, "matrix=%d", i)
		require.Equal(t, want.Assignment, got[i].Assignment, "matrix=%d", i)
	}
}

// TestSolveAll_Empty returns an empty result slice.
func TestSolveAll_Empty(t *testing.T) {
	defer goleak.VerifyNone(t)

	got, err := munkres.SolveAll(context.Background(), nil, munkres.DefaultOptions(), 2)
	require.NoError(t, err)
	require.Empty(t, got)
}

// TestSolveAll_ErrorCarriesIndex annotates the failing matrix.
func TestSolveAll_ErrorCarriesIndex(t *testing.T) {
	defer goleak.VerifyNone(t)

	batch, err := generator.Batch(5, 4, 3, 9)
	require.NoError(t, err)
	bad, err := matrix.NewDenseFrom([][]float64{{1, math.NaN()}, {3, 4}})
	require.NoError(t, err)
	batch[2] = bad

	_, err = munkres.SolveAll(context.Background(), batch, munkres.DefaultOptions(), 1)
	require.ErrorIs(t, err, munkres.ErrInvalidValue)
	require.Contains(t, err.Error(), "matrix 2")
}

func TestSolveAll_InvalidWorkers(t *testing.T) {
	_, err := munkres.SolveAll(context.Background(), nil, munkres.DefaultOptions(), 0)
	require.ErrorIs(t, err, munkres.ErrInvalidOptions)
}

func TestSolveAll_Canceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch, err := generator.Batch(8, 10, 5, 9)
	require.NoError(t, err)
	_, err = munkres.SolveAll(ctx, batch, munkres.DefaultOptions(), 3)
	require.ErrorIs(t, err, context.Canceled)
}
