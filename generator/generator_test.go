package generator_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/munkres/generator"
	"github.com/katalvlaran/munkres/matrix"
)

// TestInts_SeedDeterminism checks that equal seeds give identical matrices
// and that values stay in [0, high).
func TestInts_SeedDeterminism(t *testing.T) {
	a, err := generator.Ints(generator.NewRand(42), 6, 10)
	require.NoError(t, err)
	b, err := generator.Ints(generator.NewRand(42), 6, 10)
	require.NoError(t, err)

	if diff := cmp.Diff(a.ToRows(), b.ToRows()); diff != "" {
		t.Fatalf("same seed produced different matrices (-a +b):\n%s", diff)
	}
	for _, row := range a.ToRows() {
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 10.0)
			assert.Equal(t, math.Trunc(v), v, "integer generator must yield integral values")
		}
	}
}

// TestNewRand_ZeroSeedPolicy verifies seed 0 maps onto DefaultSeed.
func TestNewRand_ZeroSeedPolicy(t *testing.T) {
	assert.Equal(t, generator.NewRand(generator.DefaultSeed).Int63(), generator.NewRand(0).Int63())
}

// TestDerive_IndependentStreams checks stream separation and reproducibility.
func TestDerive_IndependentStreams(t *testing.T) {
	s0 := generator.Derive(7, 0).Int63()
	s1 := generator.Derive(7, 1).Int63()
	assert.NotEqual(t, s0, s1)
	assert.Equal(t, s0, generator.Derive(7, 0).Int63())
}

func TestFloats(t *testing.T) {
	m, err := generator.Floats(generator.NewRand(3), 4, 2.5)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateFinite(m))
	for _, row := range m.ToRows() {
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 2.5)
		}
	}
}

func TestConstant(t *testing.T) {
	m, err := generator.Constant(3, 7)
	require.NoError(t, err)
	want := [][]float64{{7, 7, 7}, {7, 7, 7}, {7, 7, 7}}
	if diff := cmp.Diff(want, m.ToRows()); diff != "" {
		t.Fatalf("Constant mismatch (-want +got):\n%s", diff)
	}
}

// TestBatch_Reproducible checks that matrix i of a batch equals Ints over Derive(seed, i).
func TestBatch_Reproducible(t *testing.T) {
	batch, err := generator.Batch(11, 5, 4, 9)
	require.NoError(t, err)
	require.Len(t, batch, 5)

	third, err := generator.Ints(generator.Derive(11, 3), 4, 9)
	require.NoError(t, err)
	if diff := cmp.Diff(third.ToRows(), batch[3].(*matrix.Dense).ToRows()); diff != "" {
		t.Fatalf("batch[3] is not reproducible (-want +got):\n%s", diff)
	}
}

func TestGenerator_InvalidInput(t *testing.T) {
	r := generator.NewRand(1)

	_, err := generator.Ints(nil, 3, 5)
	assert.ErrorIs(t, err, generator.ErrNilRand)
	_, err = generator.Ints(r, 0, 5)
	assert.ErrorIs(t, err, generator.ErrInvalidOrder)
	_, err = generator.Ints(r, 3, 0)
	assert.ErrorIs(t, err, generator.ErrInvalidRange)
	_, err = generator.Floats(r, 3, math.NaN())
	assert.ErrorIs(t, err, generator.ErrInvalidRange)
	_, err = generator.Floats(r, 3, math.Inf(1))
	assert.ErrorIs(t, err, generator.ErrInvalidRange)
	_, err = generator.Constant(2, math.Inf(-1))
	assert.ErrorIs(t, err, generator.ErrInvalidRange)
	_, err = generator.Batch(1, -1, 3, 5)
	assert.ErrorIs(t, err, generator.ErrInvalidOrder)
}
