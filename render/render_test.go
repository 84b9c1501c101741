package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/munkres/matrix"
	"github.com/katalvlaran/munkres/munkres"
	"github.com/katalvlaran/munkres/render"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func TestPlain_Aligned(t *testing.T) {
	out, err := render.Plain(dense(t, [][]float64{{10, 2}, {3, 1.5}}))
	require.NoError(t, err)
	assert.Equal(t, " 10   2\n  3 1.5\n", out)
}

func TestLaTeX(t *testing.T) {
	out, err := render.LaTeX(dense(t, [][]float64{{4, 2}, {3, 1}}))
	require.NoError(t, err)
	assert.Equal(t, "\\begin{pmatrix}\n  4 & 2\\\\\n  3 & 1\\\\\n\\end{pmatrix}", out)
}

func TestRender_NilMatrix(t *testing.T) {
	_, err := render.Plain(nil)
	assert.ErrorIs(t, err, render.ErrNilMatrix)
	var d *matrix.Dense
	_, err = render.LaTeX(d)
	assert.ErrorIs(t, err, render.ErrNilMatrix)
}

// captureStep solves the worked example and keeps the snapshot taken at step.
func captureStep(t *testing.T, step munkres.StepKind) munkres.Snapshot {
	t.Helper()
	var snap munkres.Snapshot
	opts := munkres.DefaultOptions()
	opts.OnStep = func(ev munkres.Event, s munkres.Snapshot) {
		if ev.Step == step && snap.N == 0 {
			snap = s
		}
	}
	_, err := munkres.SolveRows([][]int{{4, 2, 8}, {4, 3, 7}, {3, 1, 6}}, opts)
	require.NoError(t, err)
	require.NotZero(t, snap.N)

	return snap
}

func TestSnapshot_AfterInitialMarking(t *testing.T) {
	out := render.Snapshot(captureStep(t, munkres.StepMarkInitial), false)
	assert.Equal(t, ""+
		"  x  x\n"+
		"  1  0* 2\n"+
		"  0* 0  0\n"+
		"  1  0  1\n", out)
}

func TestSnapshot_BlockedPrime(t *testing.T) {
	out := render.Snapshot(captureStep(t, munkres.StepPrime), false)
	assert.Equal(t, ""+
		"     x\n"+
		"  1  0* 2\n"+
		"x 0* 0  0'\n"+
		"  1  0  1\n", out)
}

func TestSnapshot_Styled(t *testing.T) {
	out := render.Snapshot(captureStep(t, munkres.StepMarkInitial), true)
	assert.Contains(t, out, "0*")
	assert.Contains(t, out, "x")
}
