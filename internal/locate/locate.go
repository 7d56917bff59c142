// Package locate implements MinimumLocator (spec section 4.2): turning
// an initial guess and temperature into either a verified local
// minimum or a failure, by damped Newton iteration on grad V with a
// gradient-descent fallback when the shifted Hessian is ill
// conditioned — the same two-tier strategy the teacher's
// physics.MinimizeEnergy / optimization.MinimizeLBFGS pair uses
// (steepest descent as the robust baseline, a quasi-Newton step for
// speed), generalized here into a single routine with an explicit
// fallback rather than two separate entry points.
package locate

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/phbasler/BSMPT-sub002/internal/numeric"
	"github.com/phbasler/BSMPT-sub002/internal/potential"
)

// Config holds MinimumLocator parameters.
type Config struct {
	// GradientTolerance is epsilon_grad: the locator succeeds once
	// ||grad V|| <= GradientTolerance.
	GradientTolerance float64

	// HessianShift is the diagonal conditioning shift epsilon in H+epsilon*I.
	HessianShift float64

	// MaxIterations caps the Newton/gradient-descent loop.
	MaxIterations int

	// UseMultithreading dispatches independent LocateMinimum calls
	// (distinct temperature slices or seeds) across a worker pool.
	UseMultithreading bool

	// MaxWorkers bounds the errgroup worker pool when UseMultithreading
	// is set. Zero means "let errgroup run them all concurrently".
	MaxWorkers int
}

// DefaultConfig returns the locator defaults named in spec section 4.2.
func DefaultConfig() Config {
	return Config{
		GradientTolerance: 1e-3,
		HessianShift:      1e-3,
		MaxIterations:     500,
		UseMultithreading: false,
		MaxWorkers:        0,
	}
}

// Result is the outcome of one LocateMinimum call.
type Result struct {
	Point       numeric.Vec
	GradNorm    float64
	Iterations  int
	UsedFallback bool
}

// LocateMinimum performs damped Newton iteration on grad V(phi,T)
// starting from guess, falling back to a small gradient-descent step
// whenever H+epsilon*I is not safely invertible, until
// ||grad V|| <= GradientTolerance or MaxIterations is exhausted. It
// returns only a stationary point: the caller (internal/phase) verifies
// min-ness via the smallest Hessian eigenvalue.
func LocateMinimum(pot potential.Potential, guess numeric.Vec, t float64, cfg Config) (*Result, error) {
	phi := numeric.CloneVec(guess)
	gradNorm := numeric.Norm(pot.Gradient(phi, t))
	usedFallback := false

	iter := 0
	for ; iter < cfg.MaxIterations; iter++ {
		grad := pot.Gradient(phi, t)
		gradNorm = numeric.Norm(grad)
		if gradNorm <= cfg.GradientTolerance {
			break
		}

		h := pot.Hessian(phi, t)
		dx, fellBack := potential.DampedNewtonStep(h, []float64(grad), cfg.HessianShift)
		if fellBack {
			usedFallback = true
		}
		phi = numeric.Add(phi, numeric.Vec(dx))
	}

	if gradNorm > cfg.GradientTolerance {
		return nil, fmt.Errorf("locate: OptimizerFailure: gradient norm %g exceeds tolerance %g after %d iterations",
			gradNorm, cfg.GradientTolerance, iter)
	}

	return &Result{Point: phi, GradNorm: gradNorm, Iterations: iter, UsedFallback: usedFallback}, nil
}

// Seed is one (guess, temperature) pair to locate in parallel.
type Seed struct {
	Guess numeric.Vec
	T     float64
}

// LocateMinimumBatch dispatches LocateMinimum over every seed. When
// cfg.UseMultithreading is set, seeds are processed concurrently with
// golang.org/x/sync/errgroup, each worker operating on its own cloned
// guess vector (spec section 5: "no shared mutable state"); otherwise
// they run sequentially in order. A failure at one seed does not abort
// the others — its slot in the result is nil.
func LocateMinimumBatch(ctx context.Context, pot potential.Potential, seeds []Seed, cfg Config) []*Result {
	results := make([]*Result, len(seeds))

	if !cfg.UseMultithreading {
		for i, s := range seeds {
			if r, err := LocateMinimum(pot, s.Guess, s.T, cfg); err == nil {
				results[i] = r
			}
		}
		return results
	}

	g, _ := errgroup.WithContext(ctx)
	if cfg.MaxWorkers > 0 {
		g.SetLimit(cfg.MaxWorkers)
	}
	for i, s := range seeds {
		i, s := i, s
		g.Go(func() error {
			if r, err := LocateMinimum(pot, numeric.CloneVec(s.Guess), s.T, cfg); err == nil {
				results[i] = r
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
