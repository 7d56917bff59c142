package phase

import (
	"testing"

	"github.com/phbasler/BSMPT-sub002/internal/fixtures"
	"github.com/phbasler/BSMPT-sub002/internal/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackPhase_FollowsSymmetricQuadratic(t *testing.T) {
	pot := fixtures.SymmetricQuadratic{M20: 1, CT: 0.5}
	ph, err := TrackPhase(pot, numeric.Vec{0}, 0, 5, 0.5, DefaultTrackConfig())
	require.NoError(t, err)
	assert.Equal(t, 0.0, ph.TLow)
	assert.Equal(t, 5.0, ph.THigh)
	assert.GreaterOrEqual(t, len(ph.Minima), 2)

	pt, err := ph.PointAt(2.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, pt[0], 1e-2)
}

func TestTrackPhase_RejectsZeroStep(t *testing.T) {
	pot := fixtures.SymmetricQuadratic{M20: 1, CT: 0.5}
	_, err := TrackPhase(pot, numeric.Vec{0}, 0, 5, 0, DefaultTrackConfig())
	assert.Error(t, err)
}

func TestPhase_ContainsAndOverlaps(t *testing.T) {
	pot := fixtures.SymmetricQuadratic{M20: 1, CT: 0.5}
	a, err := TrackPhase(pot, numeric.Vec{0}, 0, 3, 0.5, DefaultTrackConfig())
	require.NoError(t, err)
	b, err := TrackPhase(pot, numeric.Vec{0}, 2, 5, 0.5, DefaultTrackConfig())
	require.NoError(t, err)

	assert.True(t, a.Contains(1.0))
	assert.False(t, a.Contains(4.0))
	assert.True(t, a.Overlaps(b))
}

func TestPhase_PointAtSingleSample(t *testing.T) {
	p := newPhase([]Minimum{{Point: numeric.Vec{1, 2}, T: 3}})
	pt, err := p.PointAt(3)
	require.NoError(t, err)
	assert.Equal(t, numeric.Vec{1, 2}, pt)

	_, err = p.PointAt(4)
	assert.Error(t, err)
}
