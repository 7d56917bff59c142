package locate

import (
	"testing"

	"github.com/phbasler/BSMPT-sub002/internal/fixtures"
	"github.com/phbasler/BSMPT-sub002/internal/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindZeroSmallestEigenvalue_TwoFieldCrossing(t *testing.T) {
	pot := fixtures.TwoFieldZ2{M1_0: -1, M2_0: 4, CT1: 1, CT2: 0.2, Lambda: 0.5, Coupling: 0.3}
	// mass1Sq(t) = -1 + t^2 changes sign at t=1: the origin's Hessian
	// along the x-direction crosses zero there.
	tCross, err := FindZeroSmallestEigenvalue(pot, numeric.Vec{0, 0}, 0, numeric.Vec{0, 0}, 2, DefaultBisectionConfig())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, tCross, 0.05)
}

func TestFindZeroSmallestEigenvalue_NoSignChangeErrors(t *testing.T) {
	pot := fixtures.SymmetricQuadratic{M20: 1, CT: 0.5}
	_, err := FindZeroSmallestEigenvalue(pot, numeric.Vec{0}, 0, numeric.Vec{0}, 1, DefaultBisectionConfig())
	assert.Error(t, err)
}
