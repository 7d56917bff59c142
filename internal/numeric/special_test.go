package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBesselI_KnownValues(t *testing.T) {
	// I_0(0) = 1, I_1(0) = 0 (series definitions).
	assert.InDelta(t, 1.0, BesselI(0, 0), 1e-12)
	assert.InDelta(t, 0.0, BesselI(1, 0), 1e-12)

	// I_0(1) ~= 1.2660658..., I_1(1) ~= 0.5651591... (standard tables).
	assert.InDelta(t, 1.2660658777520084, BesselI(0, 1), 1e-9)
	assert.InDelta(t, 0.5651591039924851, BesselI(1, 1), 1e-9)
}

func TestBesselI_NegativeOrderMatchesPositive(t *testing.T) {
	assert.Equal(t, BesselI(3, 2.5), BesselI(-3, 2.5))
}

func TestLi2_KnownValues(t *testing.T) {
	assert.InDelta(t, math.Pi*math.Pi/6, Li2(1), 1e-9)
	assert.InDelta(t, -math.Pi*math.Pi/12, Li2(-1), 1e-9)
	assert.InDelta(t, 0.0, Li2(0), 1e-12)
}

func TestLi2_ReflectionConsistency(t *testing.T) {
	// Li2(x) + Li2(1-x) = pi^2/6 - ln(x)ln(1-x), for 0<x<1.
	x := 0.3
	lhs := Li2(x) + Li2(1-x)
	rhs := math.Pi*math.Pi/6 - math.Log(x)*math.Log(1-x)
	assert.InDelta(t, rhs, lhs, 1e-8)
}

func TestLi2_LargeArgument(t *testing.T) {
	v := Li2(5.0)
	assert.False(t, math.IsNaN(v))
	assert.False(t, math.IsInf(v, 0))
}
