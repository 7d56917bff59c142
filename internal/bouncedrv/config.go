package bouncedrv

import "github.com/phbasler/BSMPT-sub002/internal/bounce"

// Config controls the temperature scan that samples S(T) along a
// coexisting phase pair (spec section 4.5).
type Config struct {
	// InitialSamples is the number of temperatures sampled on the
	// primary scan, spaced uniformly between Tc and TLow.
	InitialSamples int

	// MinSamplesForSpline is the minimum number of converged samples
	// required before a spline fit of S(T) is attempted (spec: 4).
	MinSamplesForSpline int

	// SecondaryScanFactor multiplies InitialSamples when the primary
	// scan leaves the sample count below MinSamplesForSpline, re-scanning
	// at twice the density before giving up.
	SecondaryScanFactor int

	// ExtrapolationMargin shrinks the scan window's approach to Tc (where
	// the bounce action diverges) by this fraction of the window width.
	ExtrapolationMargin float64

	Bounce bounce.Config
}

// DefaultConfig returns the defaults named in spec section 4.5/6.
func DefaultConfig() Config {
	return Config{
		InitialSamples:      8,
		MinSamplesForSpline: 4,
		SecondaryScanFactor: 2,
		ExtrapolationMargin: 1e-3,
		Bounce:              bounce.DefaultConfig(),
	}
}
