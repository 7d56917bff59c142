package thermo

import (
	"testing"

	"github.com/phbasler/BSMPT-sub002/internal/bouncedrv"
	"github.com/phbasler/BSMPT-sub002/internal/fixtures"
	"github.com/phbasler/BSMPT-sub002/internal/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlpha_PositiveForLatentHeatRelease(t *testing.T) {
	pot := fixtures.CubicBarrier{A: 3.0, Lambda: 0.8}
	trueVac, err := pot.GlobalMin(0)
	require.NoError(t, err)
	falseVac := numeric.Vec{0}

	alpha := Alpha(pot, trueVac, falseVac, 1.0, DefaultConfig())
	assert.Greater(t, alpha, 0.0)
}

func TestBetaOverH_FiniteForSmoothSpline(t *testing.T) {
	ts := []float64{10, 30, 50, 70, 90}
	ss := []float64{400, 300, 200, 120, 80}
	sp, err := numeric.FitNaturalSpline(ts, ss)
	require.NoError(t, err)
	bs := &bouncedrv.BounceSolution{Spline: sp, Status: bouncedrv.StatusSuccess}

	beta := BetaOverH(bs, 50)
	assert.False(t, beta != beta) // not NaN
}

func TestChapmanJouguet_IncreasesWithAlpha(t *testing.T) {
	vLow := chapmanJouguet(0.01)
	vHigh := chapmanJouguet(1.0)
	assert.Greater(t, vHigh, vLow)
}

func TestVWall_RunawayAboveThreshold(t *testing.T) {
	v, status := VWall(1000.0, DefaultConfig())
	assert.Equal(t, 1.0, v)
	assert.Equal(t, -1, status)
}

func TestVWall_ConvergesForModerateAlpha(t *testing.T) {
	v, status := VWall(0.05, DefaultConfig())
	assert.GreaterOrEqual(t, v, 0.0)
	assert.LessOrEqual(t, v, 1.0)
	assert.NotEqual(t, -1, status)
}
