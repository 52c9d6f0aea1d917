package hillclimb

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClimbImproves(t *testing.T) {
	res, err := Climb(InvertedParabola.F, DefaultOptions(), NewRand(DefaultSeed))
	require.NoError(t, err)

	assert.Equal(t, -1, res.Initial.Iteration)
	assert.GreaterOrEqual(t, res.Initial.X, -10.0)
	assert.Less(t, res.Initial.X, 10.0)
	assert.GreaterOrEqual(t, res.F, res.Initial.F)
	assert.LessOrEqual(t, res.F, 5.0)

	prev := res.Initial
	for _, imp := range res.Trace {
		assert.Greater(t, imp.F, prev.F, "moves only on strict improvement")
		assert.Greater(t, imp.Iteration, prev.Iteration)
		assert.LessOrEqual(t, math.Abs(imp.X-prev.X), 0.2)
		prev = imp
	}
	if len(res.Trace) > 0 {
		assert.Equal(t, res.X, res.Trace[len(res.Trace)-1].X)
	} else {
		assert.Equal(t, res.Initial.X, res.X)
	}
}

func TestClimbIsReproducible(t *testing.T) {
	opts := Options{Iterations: 100, StepSize: 2.25, Low: -10, High: 10}
	a, err := Climb(TwoPeaks, opts, NewRand(7))
	require.NoError(t, err)
	b, err := Climb(TwoPeaks, opts, NewRand(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestClimbFindsPeak(t *testing.T) {
	// Enough iterations to walk from anywhere in the range to the top
	opts := Options{Iterations: 5000, StepSize: 0.2, Low: -10, High: 10}
	res, err := Climb(InvertedParabola.F, opts, NewRand(DefaultSeed))
	require.NoError(t, err)
	assert.InDelta(t, 0, res.X, 0.05)
	assert.InDelta(t, 5, res.F, 0.01)
}

func TestMinimize(t *testing.T) {
	opts := Options{Iterations: 5000, StepSize: 0.2, Low: -10, High: 10}
	res, err := Minimize(Parabola.F, opts, NewRand(DefaultSeed))
	require.NoError(t, err)
	assert.InDelta(t, -5, res.F, 0.01)
	assert.LessOrEqual(t, res.F, res.Initial.F)
	for _, imp := range res.Trace {
		assert.InDelta(t, Parabola.F(imp.X), imp.F, 1e-12)
	}

	roots := Parabola.Solve(res.F)
	require.Len(t, roots, 2)
	assert.InDelta(t, -roots[0], roots[1], 1e-9)
	assert.InDelta(t, math.Abs(res.X), roots[1], 1e-6)
}

func TestQuadraticSolve(t *testing.T) {
	assert.Equal(t, []float64{-2, 2}, Parabola.Solve(-1))
	assert.Equal(t, []float64{0}, Parabola.Solve(-5))
	assert.Nil(t, Parabola.Solve(-6))
	assert.Equal(t, []float64{-1.414214, 1.414214}, Parabola.Solve(-3))
	assert.Equal(t, []float64{-0.5}, Quadratic{B: 2, C: 1}.Solve(0))
	assert.Nil(t, Quadratic{C: 1}.Solve(0))
}

func TestInvalidOptions(t *testing.T) {
	for _, opts := range []Options{
		{Iterations: -1, StepSize: 1, Low: 0, High: 1},
		{Iterations: 1, StepSize: 0, Low: 0, High: 1},
		{Iterations: 1, StepSize: 1, Low: 1, High: 1},
	} {
		_, err := Climb(TwoPeaks, opts, nil)
		assert.True(t, errors.Is(err, ErrInvalidOptions), "%+v", opts)
	}
}

func TestObjectives(t *testing.T) {
	o, err := Lookup("two-peaks")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, o.F(4), 0.01)
	assert.Greater(t, o.F(4), o.F(1))

	_, err = Lookup("rosenbrock")
	assert.True(t, errors.Is(err, ErrUnknownObjective))

	q, ok := QuadraticOf("parabola")
	assert.True(t, ok)
	assert.Equal(t, Parabola, q)
	assert.Len(t, Objectives(), 3)
	assert.Equal(t, 0.0, Round6(-1e-9))
}
