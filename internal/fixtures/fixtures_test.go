package fixtures

import (
	"testing"

	"github.com/phbasler/BSMPT-sub002/internal/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymmetricQuadratic_MinimumIsOrigin(t *testing.T) {
	p := SymmetricQuadratic{M20: 1, CT: 0.5}
	min, err := p.GlobalMin(1.0)
	require.NoError(t, err)
	assert.Equal(t, numeric.Vec{0}, min)
	assert.Equal(t, 0.0, p.V(min, 1.0))

	// Z2 symmetric: V(phi) == V(-phi).
	assert.Equal(t, p.V(numeric.Vec{1.3}, 2.0), p.V(numeric.Vec{-1.3}, 2.0))
}

func TestCubicBarrier_HasTwoVacua(t *testing.T) {
	p := CubicBarrier{A: 3.0, Lambda: 0.8}
	min, err := p.GlobalMin(0)
	require.NoError(t, err)
	require.Len(t, min, 1)

	// Gradient should vanish (approximately) at the located minimum.
	grad := p.Gradient(min, 0)
	assert.InDelta(t, 0.0, grad[0], 1e-9)
}

func TestCubicBarrier_NoExtremumWhenDiscriminantNegative(t *testing.T) {
	p := CubicBarrier{A: 0.1, Lambda: 1.0}
	_, err := p.GlobalMin(0)
	assert.Error(t, err)
}

func TestTwoFieldZ2_SymmetricAtHighT(t *testing.T) {
	p := TwoFieldZ2{M1_0: -1, M2_0: 4, CT1: 1, CT2: 0.2, Lambda: 0.5, Coupling: 0.3}
	// At large T, mass1Sq(t) = M1_0 + CT1*t^2 is positive -> origin is the minimum.
	min, err := p.GlobalMin(10)
	require.NoError(t, err)
	assert.Equal(t, numeric.Vec{0, 0}, min)
}

func TestTwoFieldZ2_BrokenAtLowT(t *testing.T) {
	p := TwoFieldZ2{M1_0: -1, M2_0: 4, CT1: 1, CT2: 0.2, Lambda: 0.5, Coupling: 0.3}
	min, err := p.GlobalMin(0)
	require.NoError(t, err)
	assert.NotEqual(t, 0.0, min[0])
}

func TestTwoFieldZ2_RestrictFoldsSign(t *testing.T) {
	p := TwoFieldZ2{}
	r := p.Restrict(numeric.Vec{-2, 3})
	assert.Equal(t, numeric.Vec{2, 3}, r)
}
