package bounce

import (
	"testing"

	"github.com/phbasler/BSMPT-sub002/internal/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmallRhoStart_ConstantForceRegime(t *testing.T) {
	l, dl := smallRhoStart(3, 0, 1.0, 0, 1e-4)
	assert.Greater(t, l, 0.0)
	assert.Greater(t, dl, 0.0)
}

func TestDVdlRaster_FitsLinearGradient(t *testing.T) {
	knots := []numeric.Vec{{0}, {1}, {2}}
	path, err := numeric.NewPathSpline(knots)
	require.NoError(t, err)

	gradAlong := func(l float64) float64 { return l } // dV/dl = l
	sp, err := dVdlRaster(path, gradAlong, 50)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sp.Eval(1.0), 1e-6)
}

func TestSolve1DBounce_FindsConvergedTrajectory(t *testing.T) {
	// A linear dV/dl = l - 1 over [0,2] gives a force that changes sign at
	// l=1, a minimal setup exercising the undershoot/overshoot bisection.
	ls := []float64{0, 0.5, 1, 1.5, 2}
	vals := []float64{-1, -0.5, 0, 0.5, 1}
	dVdl, err := numeric.FitNaturalSpline(ls, vals)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.ShooterMaxBisections = 40
	force := func(l float64) float64 { return dVdl.Eval(clampTo(l, 0, 2)) }
	mass2 := func(l float64) float64 { return dVdl.Derivative(clampTo(l, 0, 2)) }

	res, l0, status, err := solve1DBounce(3, dVdl, -1, 2, force, mass2, cfg)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, status)
	require.NotNil(t, res)
	assert.Less(t, l0, 0.0)
}
