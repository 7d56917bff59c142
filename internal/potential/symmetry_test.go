package potential

import (
	"testing"

	"github.com/phbasler/BSMPT-sub002/internal/numeric"
	"github.com/stretchr/testify/assert"
)

func TestOptimalSymmetryImage_PicksClosest(t *testing.T) {
	ops := []SymmetryOp{
		Identity(1),
		NewSymmetryOp([][]float64{{-1}}),
	}
	trueVac := numeric.Vec{2}
	falseVac := numeric.Vec{-1.5}

	img := OptimalSymmetryImage(trueVac, falseVac, ops)
	assert.InDelta(t, -2.0, img[0], 1e-12)
}

func TestOptimalSymmetryImage_EmptyOpsReturnsUnchanged(t *testing.T) {
	trueVac := numeric.Vec{3, 4}
	img := OptimalSymmetryImage(trueVac, numeric.Vec{0, 0}, nil)
	assert.Equal(t, trueVac, img)
}

func TestSymmetryOp_Apply(t *testing.T) {
	op := NewSymmetryOp([][]float64{{0, 1}, {1, 0}})
	out := op.Apply(numeric.Vec{1, 2})
	assert.Equal(t, numeric.Vec{2, 1}, out)
}
