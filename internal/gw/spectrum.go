package gw

import "math"

// Spectrum is the transition's predicted GW energy-density spectrum
// Omega_GW(f) h^2, the sum of the sound-wave and MHD-turbulence
// contributions (spec section 4.7).
type Spectrum struct {
	Tn, Alpha, BetaOverH, VWall, EffectiveDOF float64
	Cfg                                       Config
}

// NewSpectrum builds a Spectrum from the transition's derived
// quantities at the chosen reference temperature (typically T_n or T_p).
func NewSpectrum(tn, alpha, betaOverH, vWall, gStar float64, cfg Config) *Spectrum {
	return &Spectrum{Tn: tn, Alpha: alpha, BetaOverH: betaOverH, VWall: vWall, EffectiveDOF: gStar, Cfg: cfg}
}

// peakFreqSoundWave returns the sound-wave peak frequency today (Hz),
// redshifted from its production-time value (spec section 4.7).
func (s *Spectrum) peakFreqSoundWave() float64 {
	return 1.9e-5 / s.VWall * s.BetaOverH * (s.Tn / 100) * math.Pow(s.EffectiveDOF/100, 1.0/6)
}

// peakFreqTurbulence returns the MHD-turbulence peak frequency today
// (Hz) (spec section 4.7).
func (s *Spectrum) peakFreqTurbulence() float64 {
	return 2.7e-5 / s.VWall * s.BetaOverH * (s.Tn / 100) * math.Pow(s.EffectiveDOF/100, 1.0/6)
}

// soundWaveShape is the double-broken power law S_sw(f/f_sw) (spec
// section 4.7).
func soundWaveShape(x float64) float64 {
	return math.Pow(x, 3) * math.Pow(7/(4+3*x*x), 3.5)
}

// turbulenceShape is the single-broken power law S_turb(f/f_turb)
// (spec section 4.7).
func turbulenceShape(x float64) float64 {
	const hStarTimesRStar = 16.5 // heuristic detector-band suppression scale
	return math.Pow(x, 3) / (math.Pow(1+x, 11.0/3) * (1 + 8*math.Pi*x/hStarTimesRStar))
}

// SoundWave returns Omega_sw h^2(f) (spec section 4.7).
func (s *Spectrum) SoundWave(f float64) float64 {
	kappaAlpha := s.Cfg.KappaV * s.Alpha / (1 + s.Alpha)
	amp := 2.65e-6 * (1 / s.BetaOverH) * kappaAlpha * kappaAlpha * math.Pow(100/s.EffectiveDOF, 1.0/3) * s.VWall

	suppression := 1.0
	if s.Cfg.SoundwaveLifetimeSuppression {
		tauSwH := math.Min(1, (4.0/3)*(1/s.BetaOverH)/math.Sqrt(kappaAlpha))
		suppression = tauSwH
	}

	fPeak := s.peakFreqSoundWave()
	return amp * suppression * soundWaveShape(f/fPeak)
}

// Turbulence returns Omega_turb h^2(f) (spec section 4.7).
func (s *Spectrum) Turbulence(f float64) float64 {
	kappaAlpha := s.Cfg.KappaTurb * s.Alpha / (1 + s.Alpha)
	amp := 3.35e-4 * (1 / s.BetaOverH) * math.Pow(kappaAlpha, 1.5) * math.Pow(100/s.EffectiveDOF, 1.0/3) * s.VWall

	fPeak := s.peakFreqTurbulence()
	return amp * turbulenceShape(f/fPeak)
}

// Total returns the combined spectrum Omega_GW h^2(f) (spec section 4.7).
func (s *Spectrum) Total(f float64) float64 {
	return s.SoundWave(f) + s.Turbulence(f)
}
