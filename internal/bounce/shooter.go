package bounce

import (
	"fmt"
	"math"

	"github.com/phbasler/BSMPT-sub002/internal/numeric"
)

// dVdlRaster rasterizes dV/dl (spec eq. 2: grad V(Gamma(l)) . dGamma/dl)
// at cfg.RasterPoints points along the path and fits a secondary 1-D
// spline over it, traded off for speed against evaluating the
// potential's gradient directly at every shooter step (spec section
// 4.4: "Rasterize dV/dl via a secondary 1-D spline for speed in high d").
func dVdlRaster(path *numeric.PathSpline, gradAlongPath func(l float64) float64, n int) (*numeric.NaturalSpline, error) {
	L := path.Length()
	ls := make([]float64, n)
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		l := L * float64(i) / float64(n-1)
		ls[i] = l
		vals[i] = gradAlongPath(l)
	}
	return numeric.FitNaturalSpline(ls, vals)
}

// smallRhoStart computes the analytic small-rho expansion of (l, dl/drho)
// at rho=rho0, starting the shooter away from the rho=0 singularity in
// equation (1) (spec section 4.4). Near l0 the force dV/dl is
// linearized as dV/dl(l) ~= dV/dl(l0) + m2*(l-l0); the constant-force
// regime (|m2| tiny) uses the polynomial closed form, the
// linear-force regime uses the modified Bessel function I_nu with
// nu=(alpha-1)/2, matching spec section 4.4's "two closed forms...
// smoothly matched".
func smallRhoStart(alpha int, l0, force, m2, rho0 float64) (l, dldrho float64) {
	const m2Threshold = 1e-10
	if math.Abs(m2) < m2Threshold {
		l = l0 + force*rho0*rho0/(2*(float64(alpha)+1))
		dldrho = force * rho0 / (float64(alpha) + 1)
		return
	}

	nu := (float64(alpha) - 1) / 2
	if m2 > 0 {
		m := math.Sqrt(m2)
		order := int(math.Round(nu)) // nearest supported integer order
		// Particular solution -force/m2 plus the regular homogeneous
		// solution ~ rho^{-n} I_n(m*rho), normalized by
		// g(x) = n! (2/x)^n I_n(x), which tends to 1 as x -> 0, so l(0)=l0.
		x := m * rho0
		norm := math.Gamma(float64(order)+1) * math.Pow(2/x, float64(order))
		shape := norm * numeric.BesselI(order, x)
		l = l0 - force/m2*(1-shape)
		// dl/drho = (force/m2) m g'(x), differentiated analytically via the
		// Bessel recurrence I_n'(x) = I_{n-1}(x) - (n/x) I_n(x)
		// (I_0'(x) = I_1(x)).
		dldrho = (force / m2) * m * norm * (besselIDerivative(order, x) - float64(order)/x*numeric.BesselI(order, x))
		return
	}

	// Concave regime (m2<0): oscillatory; fall back to the
	// constant-force polynomial, which remains accurate for rho0 small.
	l = l0 + force*rho0*rho0/(2*(float64(alpha)+1))
	dldrho = force * rho0 / (float64(alpha) + 1)
	return
}

// besselIDerivative evaluates d/dx I_n(x) in closed form via the
// standard recurrence I_n'(x) = I_{n-1}(x) - (n/x) I_n(x), with
// I_0'(x) = I_1(x). Used instead of a finite difference so
// smallRhoStart never has to call itself.
func besselIDerivative(n int, x float64) float64 {
	if n == 0 {
		return numeric.BesselI(1, x)
	}
	if x == 0 {
		return 0
	}
	return numeric.BesselI(n-1, x) - (float64(n)/x)*numeric.BesselI(n, x)
}

// shooterODE builds the ODEFunc for state y=[l, dl/drho] given the
// rasterized dV/dl spline (equation 1 of spec section 4.4).
func shooterODE(alpha int, dVdl *numeric.NaturalSpline, lBound func(l float64) float64) numeric.ODEFunc {
	return func(rho float64, y []float64) []float64 {
		l, dl := y[0], y[1]
		lc := lBound(l)
		force := dVdl.Eval(lc)
		d2l := force - (float64(alpha)/rho)*dl
		return []float64{dl, d2l}
	}
}

// shootOnce integrates one trial trajectory from l0 and classifies it
// relative to the false-vacuum arclength L (spec section 4.4).
func shootOnce(alpha int, dVdl *numeric.NaturalSpline, l0, force0, m2_0, L float64, cfg Config) (trajectoryClass, *numeric.RK45Result, error) {
	rho0 := 1e-4
	l, dl := smallRhoStart(alpha, l0, force0, m2_0, rho0)

	clamp := func(l float64) float64 {
		if l < 0 {
			return 0
		}
		if l > L {
			return L
		}
		return l
	}
	rhs := shooterODE(alpha, dVdl, clamp)

	var turned, passed bool
	stop := func(rho float64, y []float64) bool {
		if y[0] >= L {
			passed = true
			return true
		}
		if y[1] <= 0 && y[0] < L {
			turned = true
			return true
		}
		return false
	}

	res, err := numeric.IntegrateRK45(rhs, rho0, []float64{l, dl}, cfg.RhoMax, cfg.RK45, stop)
	if err != nil {
		return classUndershoot, nil, err
	}

	switch {
	case passed:
		return classOvershoot, res, nil
	case turned:
		return classUndershoot, res, nil
	default:
		// Reached rhoMax without turning back or passing: treat as
		// converged if close enough to L, else undershoot.
		if math.Abs(res.Y[0]-L) < cfg.ShooterTol*L {
			return classConverged, res, nil
		}
		return classUndershoot, res, nil
	}
}

// solve1DBounce implements spec section 4.4's Solve1DBounce: binary
// search on l0 in [lMin, 0), requiring at least one undershoot and one
// overshoot to be observed.
func solve1DBounce(alpha int, dVdl *numeric.NaturalSpline, lMin, L float64, force func(l float64) float64, mass2 func(l float64) float64, cfg Config) (*numeric.RK45Result, float64, ActionStatus, error) {
	seenUndershoot, seenOvershoot := false, false
	lo, hi := lMin, 0.0
	var best *numeric.RK45Result
	var bestL0 float64

	for iter := 0; iter < cfg.ShooterMaxBisections; iter++ {
		l0 := (lo + hi) / 2
		class, res, err := shootOnce(alpha, dVdl, l0, force(l0), mass2(l0), L, cfg)
		if err != nil {
			return nil, 0, StatusIntegration1DFailed, fmt.Errorf("bounce: shooter step failed: %w", err)
		}
		switch class {
		case classConverged:
			return res, l0, StatusSuccess, nil
		case classUndershoot:
			seenUndershoot = true
			lo = l0
		case classOvershoot:
			seenOvershoot = true
			hi = l0
		}
		best, bestL0 = res, l0
		if seenUndershoot && seenOvershoot && math.Abs(hi-lo) < cfg.ShooterTol*math.Max(1.0, math.Abs(L)) {
			return best, bestL0, StatusSuccess, nil
		}
	}

	if !seenUndershoot || !seenOvershoot {
		return nil, 0, StatusNeverUndershootOvershoot, fmt.Errorf("bounce: NeverUndershootOvershoot after %d bisections", cfg.ShooterMaxBisections)
	}
	return best, bestL0, StatusSuccess, nil
}
