// Package bouncedrv scans the bounce action S(T) across a coexisting
// phase pair's temperature window and fits a spline over the
// converged samples (spec section 4.5), warm-starting each bounce
// solve's path from the previous temperature's converged path.
package bouncedrv

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/phbasler/BSMPT-sub002/internal/bounce"
	"github.com/phbasler/BSMPT-sub002/internal/numeric"
	"github.com/phbasler/BSMPT-sub002/internal/potential"
)

// BounceSolution is the fitted S(T) curve over one coexisting phase
// pair's temperature window, plus every individual sample that went
// into it.
type BounceSolution struct {
	Samples []*bounce.BounceAction
	Spline  *numeric.NaturalSpline
	Status  Status
}

// S evaluates the fitted S(T)/T curve's underlying S(T) at t. Callers
// wanting S(T)/T (as used by the nucleation/percolation criteria)
// divide by t themselves; S alone is undefined outside the fitted
// domain and panics per NaturalSpline's domain contract.
func (b *BounceSolution) S(t float64) float64 {
	return b.Spline.Eval(t)
}

// InDomain reports whether t falls within the fitted spline's range.
func (b *BounceSolution) InDomain(t float64) bool {
	return b.Spline != nil && b.Spline.InDomain(t)
}

// pathKnots extracts the current knot positions of a path spline by
// re-evaluating it at its own arclength knots, used to warm-start the
// next temperature's bounce solve (spec section 4.5: "warm-start the
// next sample's initial path from the previous sample's converged
// path").
func pathKnots(p *numeric.PathSpline) []numeric.Vec {
	ls := p.KnotArclengths()
	out := make([]numeric.Vec, len(ls))
	for i, l := range ls {
		out[i] = p.Eval(l)
	}
	return out
}

// Scan samples S(T) between tLow and tc (exclusive of tc, where the
// action diverges) for the given pair of vacua, warm-starting each
// solve from its predecessor, and fits a natural spline once enough
// samples have converged.
func Scan(pot potential.Potential, trueVac, falseVac numeric.Vec, tLow, tc float64, cfg Config, log zerolog.Logger) (*BounceSolution, error) {
	window := tc - tLow
	if window <= 0 {
		return &BounceSolution{Status: StatusNoConvergedSamples}, fmt.Errorf("bouncedrv: degenerate scan window [%g, %g]", tLow, tc)
	}
	top := tc - cfg.ExtrapolationMargin*window

	samples, err := scanAt(pot, trueVac, falseVac, tLow, top, cfg.InitialSamples, cfg, log)
	if err != nil {
		return &BounceSolution{Status: StatusNoConvergedSamples}, err
	}

	if len(samples) < cfg.MinSamplesForSpline {
		denser, err := scanAt(pot, trueVac, falseVac, tLow, top, cfg.InitialSamples*cfg.SecondaryScanFactor, cfg, log)
		if err == nil && len(denser) > len(samples) {
			samples = denser
		}
	}

	if len(samples) == 0 {
		return &BounceSolution{Status: StatusNoConvergedSamples}, fmt.Errorf("bouncedrv: no converged bounce samples in [%g, %g]", tLow, top)
	}
	if len(samples) < cfg.MinSamplesForSpline {
		return &BounceSolution{Samples: samples, Status: StatusSplineUnderdetermined},
			fmt.Errorf("bouncedrv: only %d converged samples, need >= %d for a spline fit", len(samples), cfg.MinSamplesForSpline)
	}

	ts := make([]float64, len(samples))
	ss := make([]float64, len(samples))
	for i, s := range samples {
		ts[i] = s.T
		ss[i] = s.S
	}
	spline, err := numeric.FitNaturalSpline(ts, ss)
	if err != nil {
		return &BounceSolution{Samples: samples, Status: StatusSplineUnderdetermined}, fmt.Errorf("bouncedrv: fitting S(T) spline: %w", err)
	}

	return &BounceSolution{Samples: samples, Spline: spline, Status: StatusSuccess}, nil
}

// scanAt runs n evenly spaced bounce solves across [lo, hi], warm
// starting each from the previous converged path, collecting only the
// samples that reached StatusSuccess.
func scanAt(pot potential.Potential, trueVac, falseVac numeric.Vec, lo, hi float64, n int, cfg Config, log zerolog.Logger) ([]*bounce.BounceAction, error) {
	if n < 2 {
		n = 2
	}
	var samples []*bounce.BounceAction
	var warmStart []numeric.Vec

	for i := 0; i < n; i++ {
		t := hi - (hi-lo)*float64(i)/float64(n-1)
		action, err := bounce.Solve(pot, trueVac, falseVac, t, warmStart, cfg.Bounce, log)
		if err != nil {
			log.Debug().Err(err).Float64("t", t).Msg("bounce sample did not converge, skipping")
			continue
		}
		samples = append(samples, action)
		warmStart = pathKnots(action.Path)
	}
	return samples, nil
}
