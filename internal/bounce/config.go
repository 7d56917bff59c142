package bounce

import "github.com/phbasler/BSMPT-sub002/internal/numeric"

// Config holds BounceAction solver parameters.
type Config struct {
	// NumPathKnots is the number of knots in the initial straight-line
	// path (and the target density after each Reparameterize). The
	// Bernstein-basis deformation kernel is built at degree
	// NumPathKnots-1, so every knot gets its own basis function.
	NumPathKnots int

	// RasterPoints is the number of points used to rasterize dV/dl into
	// a secondary 1-D spline before shooting (spec section 4.4: "speed
	// in high d").
	RasterPoints int

	// ForceTolerance is epsilon_force: path deformation stops once
	// max|N|/max|gradV| drops below this (default 1e-2).
	ForceTolerance float64

	// MaxDeformIters caps one deformation pass's internal iterations.
	MaxDeformIters int

	// MaxPathIntegrations caps the outer deform<->solve cycle count
	// (spec section 6 default: 7).
	MaxPathIntegrations int

	// SkipFinalResolve: when true, Solve assembles the action even if
	// deformation has not reached ForceTolerance within
	// MaxPathIntegrations, instead of returning
	// PathDeformationNotConverged. The final 1-D re-solve on the last
	// path is always run; no earlier shooter solution is reused.
	SkipFinalResolve bool

	// Shooter parameters.
	ShooterMaxBisections int
	ShooterTol           float64 // relative tolerance on l(rho_max) vs FalseVac arclength
	RK45                 numeric.RK45Config
	RhoMax               float64 // integration domain cutoff

	// GradEps is epsilon_grad, used to validate the false vacuum is a
	// genuine minimum before shooting (spec: FalseVacuumNotMinimum).
	GradEps float64
}

// DefaultConfig returns the defaults named across spec section 4.4/6.
func DefaultConfig() Config {
	return Config{
		NumPathKnots:          20,
		RasterPoints:          200,
		ForceTolerance:        1e-2,
		MaxDeformIters:        30,
		MaxPathIntegrations:   7,
		SkipFinalResolve:      false,
		ShooterMaxBisections:  64,
		ShooterTol:            1e-6,
		RK45:                  numeric.DefaultRK45Config(),
		RhoMax:                100.0,
		GradEps:               1e-3,
	}
}
