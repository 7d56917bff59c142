package gw

import (
	"math"

	"github.com/phbasler/BSMPT-sub002/internal/numeric"
)

// SensitivityCurve is a detector's power spectral noise density
// expressed as an effective Omega_sens h^2(f), against which a
// Spectrum's SNR is computed (spec section 4.7). A LISA-like curve is
// provided by LISASensitivity.
type SensitivityCurve func(f float64) float64

// LISASensitivity approximates a LISA-like effective energy-density
// noise curve (spec section 4.7): a flat shot-noise floor above the
// transfer-function knee and a low-frequency rise below it.
func LISASensitivity(f float64) float64 {
	const (
		floor    = 1.0e-11
		knee     = 2.0e-3 // Hz, instrument transfer-function corner
		lowSlope = -4.0
	)
	if f >= knee {
		return floor * math.Pow(f/knee, 2)
	}
	return floor * math.Pow(f/knee, lowSlope)
}

// SNR computes the signal-to-noise ratio of spectrum against curve
// over [cfg.FreqMin, cfg.FreqMax], observed for cfg.MissionYears with
// cfg.NumChannels correlated channels (spec section 4.7):
//
//	SNR^2 = T_obs * N_channels * integral (Omega_GW(f)/Omega_sens(f))^2 df
func SNR(spectrum *Spectrum, curve SensitivityCurve, cfg Config, quad numeric.QuadConfig) (float64, error) {
	const secondsPerYear = 3.15576e7
	integrand := func(f float64) float64 {
		sens := curve(f)
		if sens == 0 {
			return 0
		}
		ratio := spectrum.Total(f) / sens
		return ratio * ratio
	}

	integral, err := numeric.AdaptiveQuad(integrand, cfg.FreqMin, cfg.FreqMax, quad)
	if err != nil {
		return 0, err
	}

	tObs := cfg.MissionYears * secondsPerYear
	return math.Sqrt(tObs * cfg.NumChannels * integral), nil
}
