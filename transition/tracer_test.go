package transition

import (
	"testing"

	"github.com/phbasler/BSMPT-sub002/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace_TwoFieldRunsToCompletion(t *testing.T) {
	pot := fixtures.TwoFieldZ2{M1_0: -1, M2_0: 4, CT1: 1, CT2: 0.2, Lambda: 0.5, Coupling: 0.3}
	cfg := DefaultConfig(0, 3)
	cfg.Vacuum.DTInit = 0.25
	cfg.Bounce.NumPathKnots = 8
	cfg.Bounce.RasterPoints = 60
	cfg.Driver.InitialSamples = 4

	result, err := New(cfg).Trace(pot)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.GreaterOrEqual(t, len(result.Vacuum.Phases), 1)
	assert.NotEmpty(t, result.ColumnLegend())
}

func TestTrace_SingleFieldNoCoexistingPairs(t *testing.T) {
	pot := fixtures.SymmetricQuadratic{M20: 1, CT: 0.5}
	cfg := DefaultConfig(0, 5)

	result, err := New(cfg).Trace(pot)
	require.NoError(t, err)
	assert.Empty(t, result.Pairs)
}

func TestColumnLegend_HasThirteenColumns(t *testing.T) {
	r := &Result{}
	assert.Len(t, r.ColumnLegend(), 13)
}
