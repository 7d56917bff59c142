package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptiveQuad_Polynomial(t *testing.T) {
	f := func(x float64) float64 { return x * x }
	v, err := AdaptiveQuad(f, 0, 3, DefaultQuadConfig())
	require.NoError(t, err)
	assert.InDelta(t, 9.0, v, 1e-6) // integral of x^2 from 0 to 3 is 9
}

func TestAdaptiveQuad_Sine(t *testing.T) {
	v, err := AdaptiveQuad(math.Sin, 0, math.Pi, DefaultQuadConfig())
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-6)
}

func TestAdaptiveQuad_DegenerateInterval(t *testing.T) {
	v, err := AdaptiveQuad(func(x float64) float64 { return 1 / x }, 1, 1, DefaultQuadConfig())
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}
