package bounce

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/phbasler/BSMPT-sub002/internal/fixtures"
	"github.com/phbasler/BSMPT-sub002/internal/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_CubicBarrierProducesPositiveAction(t *testing.T) {
	pot := fixtures.CubicBarrier{A: 3.0, Lambda: 0.8}
	falseVac := numeric.Vec{0}
	trueVac, err := pot.GlobalMin(0)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.NumPathKnots = 8
	cfg.RasterPoints = 60

	action, err := Solve(pot, trueVac, falseVac, 0, nil, cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, action.Status)
	assert.Greater(t, action.S, 0.0)
	assert.Equal(t, 3, action.Alpha) // T=0 -> O(4) symmetric
}

func TestSolve_CubicBarrierWithUnmodifiedDefaultConfig(t *testing.T) {
	pot := fixtures.CubicBarrier{A: 3.0, Lambda: 0.8}
	falseVac := numeric.Vec{0}
	trueVac, err := pot.GlobalMin(0)
	require.NoError(t, err)

	action, err := Solve(pot, trueVac, falseVac, 0, nil, DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, action.Status)
	assert.Greater(t, action.S, 0.0)
}

func TestSolve_RejectsNonMinimumFalseVacuum(t *testing.T) {
	pot := fixtures.CubicBarrier{A: 3.0, Lambda: 0.8}
	falseVac := numeric.Vec{0.3} // not a stationary point
	trueVac, err := pot.GlobalMin(0)
	require.NoError(t, err)

	cfg := DefaultConfig()
	_, err = Solve(pot, trueVac, falseVac, 0, nil, cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestDedupeMonotone_DropsNonIncreasing(t *testing.T) {
	xs := []float64{0, 1, 1, 2, 1.5, 3}
	ys := []float64{0, 1, 1, 2, 99, 3}
	dx, dy := dedupeMonotone(xs, ys)
	assert.Equal(t, []float64{0, 1, 2, 3}, dx)
	assert.Equal(t, []float64{0, 1, 2, 3}, dy)
}

func TestStraightLine_EndpointsMatch(t *testing.T) {
	a, b := numeric.Vec{0, 0}, numeric.Vec{1, 2}
	knots := straightLine(a, b, 5)
	assert.Equal(t, a, knots[0])
	assert.Equal(t, b, knots[len(knots)-1])
}
