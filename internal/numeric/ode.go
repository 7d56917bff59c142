package numeric

import (
	"fmt"
	"math"
)

// ODEFunc is the right-hand side of dy/drho = f(rho, y).
type ODEFunc func(rho float64, y []float64) []float64

// StopFunc lets the caller halt integration early (e.g. once the
// bounce trajectory has overshot or undershot the target vacuum).
// rho and y are the state just accepted by the stepper.
type StopFunc func(rho float64, y []float64) bool

// RK45Config controls the adaptive Cash-Karp Runge-Kutta 4(5)
// stepper used by the bounce shooter (spec section 4.4: "adaptive
// Runge-Kutta 4(5) step with embedded 5th-order error estimate").
type RK45Config struct {
	AbsTol      float64
	RelTol      float64
	InitialStep float64
	MaxStep     float64
	MinStep     float64
	MaxSteps    int

	// Recorder, when non-nil, is called with every accepted (rho, y)
	// state including the initial one. Used to reconstruct the full
	// trajectory for the bounce action's kinetic/potential integrals
	// without re-deriving them from the final state alone.
	Recorder func(rho float64, y []float64)
}

// DefaultRK45Config returns conservative defaults.
func DefaultRK45Config() RK45Config {
	return RK45Config{
		AbsTol:      1e-10,
		RelTol:      1e-8,
		InitialStep: 1e-3,
		MaxStep:     1.0,
		MinStep:     1e-12,
		MaxSteps:    100000,
	}
}

// RK45Result carries the final accepted state and run statistics.
type RK45Result struct {
	Rho   float64
	Y     []float64
	Steps int
	// Stopped is true if the StopFunc requested early termination.
	Stopped bool
}

// Cash-Karp RK4(5) Butcher tableau (Numerical Recipes, section 16.2).
var (
	ckA = [6][5]float64{
		{},
		{1.0 / 5},
		{3.0 / 40, 9.0 / 40},
		{3.0 / 10, -9.0 / 10, 6.0 / 5},
		{-11.0 / 54, 5.0 / 2, -70.0 / 27, 35.0 / 27},
		{1631.0 / 55296, 175.0 / 512, 575.0 / 13824, 44275.0 / 110592, 253.0 / 4096},
	}
	ckC  = [6]float64{0, 1.0 / 5, 3.0 / 10, 3.0 / 5, 1, 7.0 / 8}
	ck5  = [6]float64{37.0 / 378, 0, 250.0 / 621, 125.0 / 594, 0, 512.0 / 1771}
	ck4  = [6]float64{2825.0 / 27648, 0, 18575.0 / 48384, 13525.0 / 55296, 277.0 / 14336, 1.0 / 4}
)

// cashKarpStep advances one Cash-Karp step of size h from (rho, y),
// returning the 5th-order solution and the embedded 4th-order error
// estimate (5th minus 4th, per component).
func cashKarpStep(f ODEFunc, rho float64, y []float64, h float64) (y5, errEst []float64) {
	n := len(y)
	k := make([][]float64, 6)

	eval := func(stage int, cRho float64, yStage []float64) []float64 {
		return f(cRho, yStage)
	}

	k[0] = eval(0, rho, y)
	for s := 1; s < 6; s++ {
		ys := make([]float64, n)
		for i := 0; i < n; i++ {
			acc := y[i]
			for j := 0; j < s; j++ {
				acc += h * ckA[s][j] * k[j][i]
			}
			ys[i] = acc
		}
		k[s] = eval(s, rho+ckC[s]*h, ys)
	}

	y5 = make([]float64, n)
	y4 := make([]float64, n)
	for i := 0; i < n; i++ {
		sum5, sum4 := y[i], y[i]
		for s := 0; s < 6; s++ {
			sum5 += h * ck5[s] * k[s][i]
			sum4 += h * ck4[s] * k[s][i]
		}
		y5[i] = sum5
		y4[i] = sum4
	}

	errEst = make([]float64, n)
	for i := 0; i < n; i++ {
		errEst[i] = y5[i] - y4[i]
	}
	return y5, errEst
}

// IntegrateRK45 steps y from (rho0, y0) toward rhoMax with adaptive
// step-size control, honoring cfg's tolerances, and stops early if
// stop (optional, may be nil) reports the trajectory has reached a
// classification boundary.
func IntegrateRK45(f ODEFunc, rho0 float64, y0 []float64, rhoMax float64, cfg RK45Config, stop StopFunc) (*RK45Result, error) {
	if rho0 >= rhoMax {
		return nil, fmt.Errorf("numeric: rho0 (%g) must be < rhoMax (%g)", rho0, rhoMax)
	}
	rho := rho0
	y := CloneSlice(y0)
	h := cfg.InitialStep
	if h <= 0 {
		h = (rhoMax - rho0) / 1000
	}
	if cfg.Recorder != nil {
		cfg.Recorder(rho, y)
	}

	for step := 0; step < cfg.MaxSteps; step++ {
		if rho >= rhoMax {
			return &RK45Result{Rho: rho, Y: y, Steps: step}, nil
		}
		if rho+h > rhoMax {
			h = rhoMax - rho
		}

		y5, errEst := cashKarpStep(f, rho, y, h)

		// Scaled error norm (one tolerance combining AbsTol/RelTol per
		// component, per Numerical Recipes section 16.2).
		errNorm := 0.0
		for i := range y5 {
			scale := cfg.AbsTol + cfg.RelTol*math.Max(math.Abs(y[i]), math.Abs(y5[i]))
			if scale == 0 {
				scale = cfg.AbsTol
			}
			r := errEst[i] / scale
			errNorm += r * r
		}
		errNorm = math.Sqrt(errNorm / float64(len(y5)))

		if errNorm <= 1.0 || h <= cfg.MinStep {
			rho += h
			y = y5
			if cfg.Recorder != nil {
				cfg.Recorder(rho, y)
			}
			if stop != nil && stop(rho, y) {
				return &RK45Result{Rho: rho, Y: y, Steps: step + 1, Stopped: true}, nil
			}
		}

		// Step-size control (standard PI-less adaptive rule).
		var factor float64
		if errNorm == 0 {
			factor = 5.0
		} else {
			factor = 0.9 * math.Pow(errNorm, -0.2)
		}
		factor = math.Max(0.1, math.Min(5.0, factor))
		h *= factor
		if h > cfg.MaxStep {
			h = cfg.MaxStep
		}
		if h < cfg.MinStep {
			h = cfg.MinStep
		}
	}

	return &RK45Result{Rho: rho, Y: y, Steps: cfg.MaxSteps}, fmt.Errorf("numeric: RK45 did not reach rhoMax within MaxSteps")
}

// CloneSlice copies a plain float64 slice (used where Vec's semantics
// don't apply, e.g. the raw ODE state vector).
func CloneSlice(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
