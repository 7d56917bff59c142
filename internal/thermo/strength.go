package thermo

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/phbasler/BSMPT-sub002/internal/bouncedrv"
	"github.com/phbasler/BSMPT-sub002/internal/potential"
)

// Strength collects the transition-strength parameters derived at a
// chosen reference temperature (spec section 4.6), typically T_n or
// T_p.
type Strength struct {
	T       float64
	Alpha   float64
	BetaOverH float64
	VWall   float64
	// VWallStatus is -1 for a runaway wall (v_w=1), -2 if the
	// fixed-point recursion failed to converge (VWallFallback used
	// instead), 0 otherwise (spec section 4.6, Open Question resolution).
	VWallStatus int
}

// radiationEnergyDensity returns rho_rad(T) = (pi^2/30) g_* T^4.
func radiationEnergyDensity(t float64, cfg Config) float64 {
	return math.Pi * math.Pi / 30 * cfg.EffectiveDOF * math.Pow(t, 4)
}

// Alpha returns alpha_PT = (DeltaV - T/4 dDeltaV/dT) / rho_rad at t,
// the transition's latent-heat-to-radiation ratio (spec section 4.6).
func Alpha(pot potential.Potential, trueVac, falseVac []float64, t float64, cfg Config) float64 {
	deltaV := func(tt float64) float64 {
		return pot.V(falseVac, tt) - pot.V(trueVac, tt)
	}
	dv := deltaV(t)
	grad := fd.Derivative(deltaV, t, &fd.Settings{Step: math.Max(1e-4*math.Abs(t), 1e-8)})
	latent := dv - t/4*grad
	rho := radiationEnergyDensity(t, cfg)
	if rho == 0 {
		return 0
	}
	return latent / rho
}

// BetaOverH returns beta/H(T) = T * d(S/T)/dT evaluated at t via a
// central finite difference on the fitted bounce-action spline (spec
// section 4.6: "beta is minus the second time-derivative of the
// nucleation rate's exponent, expressed here through dS/dT").
func BetaOverH(bs *bouncedrv.BounceSolution, t float64) float64 {
	f := func(tt float64) float64 { return bs.S(tt) / tt }
	return t * fd.Derivative(f, t, &fd.Settings{Step: math.Max(1e-4*t, 1e-8)})
}

// chapmanJouguet returns the Chapman-Jouguet wall velocity bound for a
// given alpha (spec section 4.6), the fastest deflagration velocity.
func chapmanJouguet(alpha float64) float64 {
	num := math.Sqrt(2.0/3*alpha+alpha*alpha) + math.Sqrt(1.0/3)
	den := 1 + alpha
	return num / den
}

// VWall runs the alpha_PT/v_w fixed-point recursion (spec section 4.6):
// a friction-limited deflagration wall velocity that iterates toward
// equilibrium between the driving pressure (alpha) and the plasma
// friction, clamped by the Chapman-Jouguet bound. Diverges to a
// runaway wall (v_w=1, Status=-1) once alpha exceeds the
// friction-equilibrium threshold; falls back to cfg.VWallFallback
// (Status=-2) if the recursion does not settle within
// cfg.VWallMaxIterations.
func VWall(alpha float64, cfg Config) (float64, int) {
	vCJ := chapmanJouguet(alpha)
	if alpha > 2*vCJ {
		return 1.0, -1
	}

	v := 0.5
	const frictionCoeff = 0.1 // effective friction normalization
	for i := 0; i < cfg.VWallMaxIterations; i++ {
		driving := alpha / (1 + alpha)
		friction := frictionCoeff * v / (1 - v*v)
		vNext := math.Min(vCJ, driving/math.Max(friction, 1e-6))
		vNext = math.Max(0, math.Min(1, vNext))
		if math.Abs(vNext-v) < 1e-6 {
			return vNext, 0
		}
		v = vNext
	}
	return cfg.VWallFallback, -2
}
