package bounce

import (
	"testing"

	"github.com/phbasler/BSMPT-sub002/internal/fixtures"
	"github.com/phbasler/BSMPT-sub002/internal/numeric"
	"github.com/phbasler/BSMPT-sub002/internal/potential"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBernstein_PartitionOfUnity(t *testing.T) {
	const n = 5
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		sum := 0.0
		for nu := 0; nu <= n; nu++ {
			sum += bernstein(nu, n, x)
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestBinomial_KnownValues(t *testing.T) {
	assert.Equal(t, 1.0, binomial(5, 0))
	assert.Equal(t, 5.0, binomial(5, 1))
	assert.Equal(t, 10.0, binomial(5, 2))
	assert.Equal(t, 0.0, binomial(5, 6))
}

func TestBernsteinKernel_Symmetric(t *testing.T) {
	k := bernsteinKernel(4)
	r, c := k.Dims()
	assert.Equal(t, 5, r)
	assert.Equal(t, 5, c)
	assert.InDelta(t, k.At(1, 3), k.At(3, 1), 1e-12)
}

func TestNormalForce_VanishesAlongGradientDirection(t *testing.T) {
	// A straight-line path aligned with the field gradient of a
	// separable quadratic potential has zero component normal to its
	// own tangent.
	pot := straightLineQuadratic{}
	knots := []numeric.Vec{{0, 0}, {1, 1}, {2, 2}}
	path, err := numeric.NewPathSpline(knots)
	require.NoError(t, err)

	f := normalForce(pot, path, 0, path.Length()/2)
	assert.InDelta(t, 0.0, numeric.Norm(f), 1e-6)
}

// TestDeformOnce_MatchesDefaultConfigKernelSize exercises deformOnce
// with the real DefaultConfig() knot count and a kernel built the same
// way Solve builds it (action.go), so a kernel/knot-count mismatch
// would panic here instead of only surfacing inside Solve.
func TestDeformOnce_MatchesDefaultConfigKernelSize(t *testing.T) {
	pot := fixtures.CubicBarrier{A: 3.0, Lambda: 0.8}
	falseVac := numeric.Vec{0}
	trueVac, err := pot.GlobalMin(0)
	require.NoError(t, err)

	cfg := DefaultConfig()
	knots := straightLine(trueVac, falseVac, cfg.NumPathKnots)
	path, err := numeric.NewPathSpline(knots)
	require.NoError(t, err)

	kernel := bernsteinKernel(cfg.NumPathKnots - 1)
	knotL := path.KnotArclengths()

	result, err := deformOnce(pot, path, 0, knotL, kernel, cfg)
	require.NoError(t, err)
	assert.Len(t, result.newKnots, cfg.NumPathKnots)
}

// straightLineQuadratic is V = 0.5(x^2+y^2), whose gradient is always
// radial and therefore parallel to the diagonal path x=y.
type straightLineQuadratic struct{}

func (straightLineQuadratic) Dim() int { return 2 }
func (straightLineQuadratic) V(phi numeric.Vec, t float64) float64 {
	return 0.5 * (phi[0]*phi[0] + phi[1]*phi[1])
}
func (straightLineQuadratic) Gradient(phi numeric.Vec, t float64) numeric.Vec {
	return numeric.Vec{phi[0], phi[1]}
}
func (straightLineQuadratic) Hessian(phi numeric.Vec, t float64) [][]float64 {
	return [][]float64{{1, 0}, {0, 1}}
}
func (straightLineQuadratic) DT(phi numeric.Vec, t float64) float64     { return 0 }
func (straightLineQuadratic) Restrict(phi numeric.Vec) numeric.Vec      { return phi }
func (straightLineQuadratic) GlobalMin(t float64) (numeric.Vec, error)  { return numeric.Vec{0, 0}, nil }
func (straightLineQuadratic) SymmetryElements() []potential.SymmetryOp  { return nil }
