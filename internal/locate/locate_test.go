package locate

import (
	"context"
	"testing"

	"github.com/phbasler/BSMPT-sub002/internal/fixtures"
	"github.com/phbasler/BSMPT-sub002/internal/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateMinimum_ConvergesToOrigin(t *testing.T) {
	pot := fixtures.SymmetricQuadratic{M20: 1, CT: 0.5}
	res, err := LocateMinimum(pot, numeric.Vec{2.0}, 1.0, DefaultConfig())
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.Point[0], 1e-2)
	assert.LessOrEqual(t, res.GradNorm, DefaultConfig().GradientTolerance)
}

func TestLocateMinimum_ConvergesToNonzeroVacuum(t *testing.T) {
	pot := fixtures.CubicBarrier{A: 3.0, Lambda: 0.8}
	res, err := LocateMinimum(pot, numeric.Vec{1.5}, 0, DefaultConfig())
	require.NoError(t, err)
	assert.Greater(t, res.Point[0], 0.5)
}

func TestLocateMinimum_FailsWhenIterationsExhausted(t *testing.T) {
	pot := fixtures.SymmetricQuadratic{M20: 1, CT: 0.5}
	cfg := DefaultConfig()
	cfg.MaxIterations = 0
	_, err := LocateMinimum(pot, numeric.Vec{5.0}, 1.0, cfg)
	assert.Error(t, err)
}

func TestLocateMinimumBatch_Sequential(t *testing.T) {
	pot := fixtures.SymmetricQuadratic{M20: 1, CT: 0.5}
	seeds := []Seed{{Guess: numeric.Vec{1}, T: 1}, {Guess: numeric.Vec{-3}, T: 1}}
	results := LocateMinimumBatch(context.Background(), pot, seeds, DefaultConfig())
	require.Len(t, results, 2)
	for _, r := range results {
		require.NotNil(t, r)
		assert.InDelta(t, 0.0, r.Point[0], 1e-2)
	}
}

func TestLocateMinimumBatch_Multithreaded(t *testing.T) {
	pot := fixtures.SymmetricQuadratic{M20: 1, CT: 0.5}
	cfg := DefaultConfig()
	cfg.UseMultithreading = true
	cfg.MaxWorkers = 2
	seeds := []Seed{{Guess: numeric.Vec{1}, T: 1}, {Guess: numeric.Vec{-2}, T: 1}, {Guess: numeric.Vec{4}, T: 1}}
	results := LocateMinimumBatch(context.Background(), pot, seeds, cfg)
	require.Len(t, results, 3)
	for _, r := range results {
		require.NotNil(t, r)
	}
}
