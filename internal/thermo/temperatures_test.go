package thermo

import (
	"testing"

	"github.com/phbasler/BSMPT-sub002/internal/bouncedrv"
	"github.com/phbasler/BSMPT-sub002/internal/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticSolution builds a BounceSolution whose S(T)/T decreases
// linearly from a large value near TLow to a small value near Tc,
// crossing every characteristic threshold exactly once.
func syntheticSolution(t *testing.T) *bouncedrv.BounceSolution {
	ts := []float64{10, 30, 50, 70, 90, 110}
	ss := make([]float64, len(ts))
	for i, tt := range ts {
		ss[i] = 500 - 4*tt // S(T)/T = 500/T - 4, decreasing across the window
	}
	sp, err := numeric.FitNaturalSpline(ts, ss)
	require.NoError(t, err)
	return &bouncedrv.BounceSolution{Spline: sp, Status: bouncedrv.StatusSuccess}
}

func TestDerive_ApproxNucleationCrosses(t *testing.T) {
	bs := syntheticSolution(t)
	cfg := DefaultConfig()
	cfg.ApproxNucleationThreshold = 1.5 // S(T)/T = 1.5 near the middle of the window

	temps, err := Derive(bs, 120, cfg)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, temps.TnApproxStatus)
	assert.True(t, temps.TnApprox > bs.Spline.DomainMin() && temps.TnApprox < bs.Spline.DomainMax())
}

func TestDerive_NilSplineErrors(t *testing.T) {
	_, err := Derive(&bouncedrv.BounceSolution{}, 100, DefaultConfig())
	assert.Error(t, err)
}

func TestApproxNucleationCriterion_NoSignChange(t *testing.T) {
	bs := syntheticSolution(t)
	cfg := DefaultConfig()
	cfg.ApproxNucleationThreshold = -1000 // never crossed within the domain
	_, status := approxNucleationCriterion(bs, cfg)
	assert.Equal(t, StatusNoSignChange, status)
}

func TestHubbleRate_ScalesWithTSquared(t *testing.T) {
	cfg := DefaultConfig()
	h1 := hubbleRate(1, cfg)
	h2 := hubbleRate(2, cfg)
	assert.InDelta(t, 4*h1, h2, 1e-15)
}
