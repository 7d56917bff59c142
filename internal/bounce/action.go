// Package bounce computes the Euclidean bounce action S(T) between a
// false and a true vacuum along a field-space path (spec section 4.4):
// a 1-D radial shooter coupled to Bernstein-basis path deformation,
// following CosmoTransitions'/BSMPT's overshoot/undershoot method.
package bounce

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/phbasler/BSMPT-sub002/internal/numeric"
	"github.com/phbasler/BSMPT-sub002/internal/potential"
)

// BounceAction is the outcome of one bounce-action solve at fixed T
// (spec section 4.4).
type BounceAction struct {
	ID       uuid.UUID
	T        float64
	TrueVac  numeric.Vec
	FalseVac numeric.Vec
	Path     *numeric.PathSpline
	S        float64
	SKinetic float64
	SPotential float64
	Alpha    int // 2 (O(3), T>0) or 3 (O(4), T=0)
	Status   ActionStatus
	Iterations int // number of shooter<->deform cycles used
}

// trajectorySample is one accepted (rho, l, dl/drho) point recorded
// during the final shooter pass, used to assemble the action integral.
type trajectorySample struct {
	rho, l, dl float64
}

// Solve computes the bounce action at temperature t along a path
// between falseVac and trueVac (spec section 4.4, Steps A-D). If
// initialPath is non-empty it seeds the initial knots (warm start from
// a neighboring temperature); otherwise a straight line is used.
func Solve(pot potential.Potential, trueVac, falseVac numeric.Vec, t float64, initialPath []numeric.Vec, cfg Config, log zerolog.Logger) (*BounceAction, error) {
	alpha := 3
	if t > 0 {
		alpha = 2
	}

	if g := numeric.Norm(pot.Gradient(falseVac, t)); g > cfg.GradEps {
		return &BounceAction{ID: uuid.New(), T: t, TrueVac: trueVac, FalseVac: falseVac, Alpha: alpha, Status: StatusFalseVacuumNotMinimum},
			fmt.Errorf("bounce: false vacuum gradient norm %g exceeds GradEps %g", g, cfg.GradEps)
	}

	knots := initialPath
	if len(knots) == 0 {
		knots = straightLine(trueVac, falseVac, cfg.NumPathKnots)
	}
	path, err := numeric.NewPathSpline(knots)
	if err != nil {
		return &BounceAction{ID: uuid.New(), T: t, TrueVac: trueVac, FalseVac: falseVac, Alpha: alpha, Status: StatusPathDeformationCrashed},
			fmt.Errorf("bounce: building initial path: %w", err)
	}

	// The Bernstein degree is tied to the knot count so the kernel's
	// (degree+1)x(degree+1) Gram matrix always matches deformOnce's
	// per-knot right-hand side in dimension.
	kernel := bernsteinKernel(cfg.NumPathKnots - 1)

	var lastDVdl *numeric.NaturalSpline
	converged := false
	iterations := 0

	for iterations = 0; iterations < cfg.MaxPathIntegrations; iterations++ {
		dVdl, shooterErr := rasterizeAlongPath(pot, path, t, cfg.RasterPoints)
		if shooterErr != nil {
			return &BounceAction{ID: uuid.New(), T: t, TrueVac: trueVac, FalseVac: falseVac, Alpha: alpha, Path: path, Status: StatusIntegration1DFailed},
				fmt.Errorf("bounce: rasterizing dV/dl: %w", shooterErr)
		}

		L := path.Length()
		force := func(l float64) float64 { return dVdl.Eval(clampTo(l, 0, L)) }
		mass2 := func(l float64) float64 { return dVdl.Derivative(clampTo(l, 0, L)) }
		lMin := -0.5 * L

		_, _, status, err := solve1DBounce(alpha, dVdl, lMin, L, force, mass2, cfg)
		if err != nil {
			log.Debug().Err(err).Int("iteration", iterations).Msg("bounce shooter failed")
			return &BounceAction{ID: uuid.New(), T: t, TrueVac: trueVac, FalseVac: falseVac, Alpha: alpha, Path: path, Status: status},
				fmt.Errorf("bounce: shooter: %w", err)
		}
		lastDVdl = dVdl

		knotL := path.KnotArclengths()
		bestRatio := math.Inf(1)
		for d := 0; d < cfg.MaxDeformIters; d++ {
			result, derr := deformOnce(pot, path, t, knotL, kernel, cfg)
			if derr != nil {
				return &BounceAction{ID: uuid.New(), T: t, TrueVac: trueVac, FalseVac: falseVac, Alpha: alpha, Path: path, Status: StatusPathDeformationCrashed},
					fmt.Errorf("bounce: deformation: %w", derr)
			}
			bestRatio = result.forceRatio
			if result.forceRatio < cfg.ForceTolerance {
				converged = true
				break
			}
			newPath, perr := numeric.NewPathSpline(result.newKnots)
			if perr != nil {
				return &BounceAction{ID: uuid.New(), T: t, TrueVac: trueVac, FalseVac: falseVac, Alpha: alpha, Path: path, Status: StatusPathDeformationCrashed},
					fmt.Errorf("bounce: rebuilding deformed path: %w", perr)
			}
			path, perr = newPath.Reparameterize(cfg.NumPathKnots)
			if perr != nil {
				return &BounceAction{ID: uuid.New(), T: t, TrueVac: trueVac, FalseVac: falseVac, Alpha: alpha, Path: path, Status: StatusPathDeformationCrashed},
					fmt.Errorf("bounce: reparameterizing deformed path: %w", perr)
			}
			knotL = path.KnotArclengths()
		}
		log.Debug().Int("iteration", iterations).Float64("forceRatio", bestRatio).Msg("path deformation pass complete")

		if converged {
			iterations++
			break
		}
	}

	if !converged && !cfg.SkipFinalResolve {
		return &BounceAction{ID: uuid.New(), T: t, TrueVac: trueVac, FalseVac: falseVac, Alpha: alpha, Path: path, Status: StatusPathDeformationNotConverged, Iterations: iterations},
			fmt.Errorf("bounce: path deformation did not converge within %d integrations", cfg.MaxPathIntegrations)
	}

	// Step D: re-integrate the converged path once more, recording the
	// full trajectory, then assemble S (spec section 4.4).
	if lastDVdl, err = rasterizeAlongPath(pot, path, t, cfg.RasterPoints); err != nil {
		return &BounceAction{ID: uuid.New(), T: t, TrueVac: trueVac, FalseVac: falseVac, Alpha: alpha, Path: path, Status: StatusIntegration1DFailed, Iterations: iterations},
			fmt.Errorf("bounce: rasterizing dV/dl on the final path: %w", err)
	}
	L := path.Length()
	force := func(l float64) float64 { return lastDVdl.Eval(clampTo(l, 0, L)) }
	mass2 := func(l float64) float64 { return lastDVdl.Derivative(clampTo(l, 0, L)) }

	samples, l0Final, resolveStatus, err := resolveTrajectory(alpha, lastDVdl, -0.5*L, L, force, mass2, cfg)
	if err != nil {
		return &BounceAction{ID: uuid.New(), T: t, TrueVac: trueVac, FalseVac: falseVac, Alpha: alpha, Path: path, Status: resolveStatus, Iterations: iterations},
			fmt.Errorf("bounce: final trajectory resolve: %w", err)
	}
	_ = l0Final

	if len(samples) < 2 {
		return &BounceAction{ID: uuid.New(), T: t, TrueVac: trueVac, FalseVac: falseVac, Alpha: alpha, Path: path, Status: StatusNotEnoughPointsForSpline, Iterations: iterations},
			fmt.Errorf("bounce: trajectory produced too few samples to integrate")
	}

	sKin, sPot, err := assembleAction(pot, path, t, samples, alpha)
	if err != nil {
		return &BounceAction{ID: uuid.New(), T: t, TrueVac: trueVac, FalseVac: falseVac, Alpha: alpha, Path: path, Status: StatusIntegration1DFailed, Iterations: iterations},
			fmt.Errorf("bounce: assembling action integral: %w", err)
	}

	surface := 4 * math.Pi
	if alpha == 3 {
		surface = 2 * math.Pi * math.Pi
	}

	return &BounceAction{
		ID:         uuid.New(),
		T:          t,
		TrueVac:    trueVac,
		FalseVac:   falseVac,
		Path:       path,
		S:          surface * (sKin + sPot),
		SKinetic:   surface * sKin,
		SPotential: surface * sPot,
		Alpha:      alpha,
		Status:     StatusSuccess,
		Iterations: iterations,
	}, nil
}

func straightLine(a, b numeric.Vec, n int) []numeric.Vec {
	if n < 2 {
		n = 2
	}
	out := make([]numeric.Vec, n)
	for i := 0; i < n; i++ {
		frac := float64(i) / float64(n-1)
		out[i] = numeric.Add(a, numeric.Scale(frac, numeric.Sub(b, a)))
	}
	return out
}

func clampTo(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func rasterizeAlongPath(pot potential.Potential, path *numeric.PathSpline, t float64, n int) (*numeric.NaturalSpline, error) {
	gradAlong := func(l float64) float64 {
		tangent := path.UnitTangent(l)
		return numeric.Dot(pot.Gradient(path.Eval(l), t), tangent)
	}
	return dVdlRaster(path, gradAlong, n)
}

// resolveTrajectory re-derives the winning l0 via one more
// solve1DBounce bisection, then re-integrates from it with trajectory
// recording enabled, returning the recorded (rho, l, dl) samples used
// to assemble the action integral.
func resolveTrajectory(alpha int, dVdl *numeric.NaturalSpline, lMin, L float64, force, mass2 func(float64) float64, cfg Config) ([]trajectorySample, float64, ActionStatus, error) {
	_, l0, status, err := solve1DBounce(alpha, dVdl, lMin, L, force, mass2, cfg)
	if err != nil {
		return nil, 0, status, err
	}

	var samples []trajectorySample
	recordingCfg := cfg.RK45
	recordingCfg.Recorder = func(rho float64, y []float64) {
		samples = append(samples, trajectorySample{rho: rho, l: y[0], dl: y[1]})
	}

	rho0 := 1e-4
	l, dl := smallRhoStart(alpha, l0, force(l0), mass2(l0), rho0)
	clamp := func(l float64) float64 { return clampTo(l, 0, L) }
	rhs := shooterODE(alpha, dVdl, clamp)
	stop := func(rho float64, y []float64) bool {
		return y[0] >= L || (y[1] <= 0 && y[0] < L)
	}
	if _, err := numeric.IntegrateRK45(rhs, rho0, []float64{l, dl}, cfg.RhoMax, recordingCfg, stop); err != nil {
		return nil, l0, StatusIntegration1DFailed, err
	}
	return samples, l0, StatusSuccess, nil
}

// assembleAction integrates the kinetic and potential contributions to
// S along the recorded trajectory (spec section 4.4):
//
//	S_kin = integral rho^alpha * 1/2 (dl/drho)^2 drho
//	S_pot = integral rho^alpha * (V(Gamma(l)) - V(FalseVac)) drho
func assembleAction(pot potential.Potential, path *numeric.PathSpline, t float64, samples []trajectorySample, alpha int) (sKin, sPot float64, err error) {
	vFalse := pot.V(path.Eval(path.Length()), t)
	L := path.Length()

	rhos := make([]float64, len(samples))
	kinVals := make([]float64, len(samples))
	potVals := make([]float64, len(samples))
	for i, s := range samples {
		l := clampTo(s.l, 0, L)
		point := path.Eval(l)
		rhos[i] = s.rho
		weight := math.Pow(s.rho, float64(alpha))
		kinVals[i] = weight * 0.5 * s.dl * s.dl
		potVals[i] = weight * (pot.V(point, t) - vFalse)
	}

	sKin, err = integrateSamples(rhos, kinVals)
	if err != nil {
		return 0, 0, err
	}
	sPot, err = integrateSamples(rhos, potVals)
	if err != nil {
		return 0, 0, err
	}
	return sKin, sPot, nil
}

// integrateSamples fits a natural spline through the recorded
// (possibly unevenly spaced) trajectory samples and integrates it with
// adaptive Gauss-Legendre quadrature.
func integrateSamples(xs, ys []float64) (float64, error) {
	dedupXs, dedupYs := dedupeMonotone(xs, ys)
	if len(dedupXs) < 2 {
		return 0, fmt.Errorf("bounce: need at least 2 distinct samples to integrate")
	}
	sp, err := numeric.FitNaturalSpline(dedupXs, dedupYs)
	if err != nil {
		return 0, err
	}
	return numeric.AdaptiveQuad(sp.Eval, dedupXs[0], dedupXs[len(dedupXs)-1], numeric.DefaultQuadConfig())
}

func dedupeMonotone(xs, ys []float64) ([]float64, []float64) {
	if len(xs) == 0 {
		return nil, nil
	}
	outX := []float64{xs[0]}
	outY := []float64{ys[0]}
	for i := 1; i < len(xs); i++ {
		if xs[i] > outX[len(outX)-1] {
			outX = append(outX, xs[i])
			outY = append(outY, ys[i])
		}
	}
	return outX, outY
}
