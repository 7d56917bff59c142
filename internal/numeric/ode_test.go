package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dy/drho = y, y(0) = 1 has the exact solution y(rho) = e^rho.
func TestIntegrateRK45_Exponential(t *testing.T) {
	f := func(rho float64, y []float64) []float64 { return []float64{y[0]} }
	cfg := DefaultRK45Config()
	cfg.InitialStep = 0.01

	res, err := IntegrateRK45(f, 0, []float64{1}, 1, cfg, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.718281828, res.Y[0], 1e-5)
	assert.False(t, res.Stopped)
}

func TestIntegrateRK45_RecorderCapturesTrajectory(t *testing.T) {
	f := func(rho float64, y []float64) []float64 { return []float64{1} } // y' = 1 -> y = rho + y0
	var rhos []float64
	cfg := DefaultRK45Config()
	cfg.Recorder = func(rho float64, y []float64) { rhos = append(rhos, rho) }

	res, err := IntegrateRK45(f, 0, []float64{0}, 1, cfg, nil)
	require.NoError(t, err)
	require.NotEmpty(t, rhos)
	assert.Equal(t, 0.0, rhos[0]) // initial state recorded
	assert.InDelta(t, res.Rho, rhos[len(rhos)-1], 1e-12)
}

func TestIntegrateRK45_StopFuncHalts(t *testing.T) {
	f := func(rho float64, y []float64) []float64 { return []float64{1} }
	stop := func(rho float64, y []float64) bool { return y[0] >= 0.5 }

	res, err := IntegrateRK45(f, 0, []float64{0}, 10, DefaultRK45Config(), stop)
	require.NoError(t, err)
	assert.True(t, res.Stopped)
	assert.GreaterOrEqual(t, res.Y[0], 0.5)
}

func TestIntegrateRK45_RejectsBadRange(t *testing.T) {
	f := func(rho float64, y []float64) []float64 { return y }
	_, err := IntegrateRK45(f, 1, []float64{1}, 1, DefaultRK45Config(), nil)
	assert.Error(t, err)
}
