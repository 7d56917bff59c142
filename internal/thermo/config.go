// Package thermo derives the transition's characteristic temperatures
// (nucleation, percolation, completion) and strength parameters
// (alpha_PT, beta/H, wall velocity) from a fitted bounce-action curve
// S(T) (spec section 4.6).
package thermo

import "github.com/phbasler/BSMPT-sub002/internal/numeric"

// Config carries the physical constants and numerical tolerances used
// to derive the transition's characteristic temperatures and strength
// parameters (spec section 4.6).
type Config struct {
	// EffectiveDOF is g_* and enters both the radiation energy density
	// rho_rad = (pi^2/30) g_* T^4 and the Hubble rate H(T).
	EffectiveDOF float64

	// ReducedPlanckMass is M_pl in the same units as the potential.
	ReducedPlanckMass float64

	// ApproxNucleationThreshold is the S(T)/T value the approximate
	// nucleation criterion bisects against (spec default: 140).
	ApproxNucleationThreshold float64

	// PercolationThreshold is the false-vacuum-fraction exponent I(T_p)
	// at which percolation occurs (spec default: 0.34, P_f = exp(-I) ~ 0.71).
	PercolationThreshold float64

	// CompletionThreshold is I(T_f) at transition completion (spec
	// default: ln(100) ~ 4.6, P_f ~ 1%).
	CompletionThreshold float64

	BisectionTol  float64
	MaxBisections int

	Quad numeric.QuadConfig

	// VWallMaxIterations caps the alpha_PT/v_w fixed-point recursion.
	VWallMaxIterations int

	// VWallFallback is returned when the recursion fails to converge
	// (spec section 4.6, Open Question resolution).
	VWallFallback float64
}

// DefaultConfig returns the defaults named in spec section 4.6/6.
func DefaultConfig() Config {
	return Config{
		EffectiveDOF:              106.75,
		ReducedPlanckMass:         2.435e18,
		ApproxNucleationThreshold: 140,
		PercolationThreshold:      0.34,
		CompletionThreshold:       4.6,
		BisectionTol:              1e-6,
		MaxBisections:             80,
		Quad:                      numeric.DefaultQuadConfig(),
		VWallMaxIterations:        20,
		VWallFallback:             0.95,
	}
}
