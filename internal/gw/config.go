// Package gw derives the stochastic gravitational-wave background
// sourced by a completed first-order phase transition (sound waves and
// MHD turbulence) and its signal-to-noise ratio against a detector
// sensitivity curve (spec section 4.7).
package gw

// Config carries the efficiency factors and detector parameters used
// to build the transition's GW spectrum (spec section 4.7).
type Config struct {
	// KappaV is the fraction of latent heat converted to bulk fluid
	// kinetic energy (sound waves).
	KappaV float64
	// KappaTurb is the fraction converted to MHD turbulence.
	KappaTurb float64

	// SoundwaveLifetimeSuppression caps the sound-wave source duration
	// at H*^-1 * min(1, tau_sw H*) (spec: finite-lifetime suppression).
	SoundwaveLifetimeSuppression bool

	// FreqMin/FreqMax bound the spectrum's support (Hz) for the SNR
	// integral.
	FreqMin, FreqMax float64

	// MissionYears is the detector's observation time, entering the
	// SNR normalization.
	MissionYears float64

	// NumChannels is the number of independent correlated channels
	// (spec default: 2, per a LISA-like A/E channel combination).
	NumChannels float64
}

// DefaultConfig returns the defaults named in spec section 4.7/6.
func DefaultConfig() Config {
	return Config{
		KappaV:                       0.5,
		KappaTurb:                    0.05,
		SoundwaveLifetimeSuppression: true,
		FreqMin:                      1e-5,
		FreqMax:                      1.0,
		MissionYears:                 4.0,
		NumChannels:                  2.0,
	}
}
