// Package phase implements phase tracing, the Vacuum orchestrator and
// coexisting-phase-pair discovery (spec section 4.3). It is grounded
// on the teacher's internal/pipeline multi-stage orchestration shape
// (predict -> sample -> optimize -> validate, one config struct, one
// result struct) generalized to trace -> pair -> critical-temperature.
package phase

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/phbasler/BSMPT-sub002/internal/locate"
	"github.com/phbasler/BSMPT-sub002/internal/numeric"
	"github.com/phbasler/BSMPT-sub002/internal/potential"
)

// Minimum is a verified (or trusted) local minimum at one temperature
// (spec section 3). Edge is +1 for a phase's first recorded minimum,
// -1 for a minimum at which the phase was confirmed to end (a
// bifurcation was bisected, per spec section 4.3 step 3), 0 otherwise.
type Minimum struct {
	Point       numeric.Vec
	T           float64
	V           float64
	IsGlobalMin bool
	Edge        int
}

// Phase is a continuous branch of minima as T varies (spec section 3).
type Phase struct {
	ID         uuid.UUID
	TLow, THigh float64
	Minima     []Minimum
	// GlobMinEnd is the temperature at which this phase ceases to be
	// the deepest known minimum (spec section 4.3, "enforced
	// global-minimum mode"); math.NaN() if never computed.
	GlobMinEnd float64

	splines []*numeric.NaturalSpline // one per field dimension, fit lazily
}

func newPhase(minima []Minimum) *Phase {
	sort.Slice(minima, func(i, j int) bool { return minima[i].T < minima[j].T })
	return &Phase{
		ID:         uuid.New(),
		TLow:       minima[0].T,
		THigh:      minima[len(minima)-1].T,
		Minima:     minima,
		GlobMinEnd: math.NaN(),
	}
}

// fitSplines lazily builds one natural spline per field dimension over
// the traced (T, point) samples, used to interpolate the phase's
// minimum at an arbitrary T within [TLow, THigh].
func (p *Phase) fitSplines() error {
	if p.splines != nil {
		return nil
	}
	if len(p.Minima) < 2 {
		return fmt.Errorf("phase: need at least 2 minima to interpolate, got %d", len(p.Minima))
	}
	dim := len(p.Minima[0].Point)
	ts := make([]float64, len(p.Minima))
	for i, m := range p.Minima {
		ts[i] = m.T
	}
	splines := make([]*numeric.NaturalSpline, dim)
	coord := make([]float64, len(p.Minima))
	for d := 0; d < dim; d++ {
		for i, m := range p.Minima {
			coord[i] = m.Point[d]
		}
		sp, err := numeric.FitNaturalSpline(ts, coord)
		if err != nil {
			return err
		}
		splines[d] = sp
	}
	p.splines = splines
	return nil
}

// PointAt interpolates the phase's minimum position at T, which must
// lie within [TLow, THigh] (a single-minimum phase returns its only
// point when T equals that sample's temperature, and an error otherwise).
func (p *Phase) PointAt(t float64) (numeric.Vec, error) {
	if len(p.Minima) == 1 {
		if t != p.Minima[0].T {
			return nil, fmt.Errorf("phase: single-sample phase has no point at T=%g", t)
		}
		return p.Minima[0].Point, nil
	}
	if err := p.fitSplines(); err != nil {
		return nil, err
	}
	out := make(numeric.Vec, len(p.splines))
	for d, sp := range p.splines {
		out[d] = sp.Eval(t)
	}
	return out, nil
}

// Contains reports whether t lies within [TLow, THigh].
func (p *Phase) Contains(t float64) bool {
	return t >= p.TLow && t <= p.THigh
}

// Overlaps reports whether two phases' temperature ranges intersect.
func (p *Phase) Overlaps(o *Phase) bool {
	return p.TLow <= o.THigh && o.TLow <= p.THigh
}

// TrackConfig controls TrackPhase.
type TrackConfig struct {
	Locate        locate.Config
	Bisection     locate.BisectionConfig
	MinStepShrink float64 // floor on |dT| before giving up on a halved step
	MaxSteps      int
}

// DefaultTrackConfig returns conservative defaults.
func DefaultTrackConfig() TrackConfig {
	return TrackConfig{
		Locate:        locate.DefaultConfig(),
		Bisection:     locate.DefaultBisectionConfig(),
		MinStepShrink: 1e-4,
		MaxSteps:      2000,
	}
}

// TrackPhase implements spec section 4.3: starting at (phi0, Tstart),
// locate a verified minimum, then step T toward Tend re-locating at
// each step (using the previous minimum as the new guess), halving the
// step on a failed gradient check, and bisecting to the phase's true
// end the moment the smallest Hessian eigenvalue goes negative.
func TrackPhase(pot potential.Potential, phi0 numeric.Vec, tStart, tEnd, dTInit float64, cfg TrackConfig) (*Phase, error) {
	if dTInit == 0 {
		return nil, fmt.Errorf("phase: dTInit must be non-zero")
	}
	dir := 1.0
	if tEnd < tStart {
		dir = -1.0
	}
	dT := math.Abs(dTInit) * dir

	first, err := locate.LocateMinimum(pot, phi0, tStart, cfg.Locate)
	if err != nil {
		return nil, fmt.Errorf("phase: %w", err)
	}
	eig := potential.SmallestHessianEigenvalue(pot.Hessian(first.Point, tStart))
	if eig < 0 {
		return nil, fmt.Errorf("phase: starting point at T=%g is not a minimum (smallest eigenvalue %g)", tStart, eig)
	}

	minima := []Minimum{{
		Point: first.Point, T: tStart,
		V:    pot.V(first.Point, tStart),
		Edge: 1,
	}}

	prevPoint, prevT, prevEig := first.Point, tStart, eig
	steps := 0
	for steps < cfg.MaxSteps {
		steps++
		t := prevT + dT
		overshotEnd := (dir > 0 && t >= tEnd) || (dir < 0 && t <= tEnd)
		if overshotEnd {
			t = tEnd
		}

		res, err := locate.LocateMinimum(pot, prevPoint, t, cfg.Locate)
		if err != nil {
			// Gradient check failed: halve the step and retry, unless the
			// step has shrunk below the configured floor.
			if math.Abs(dT) <= cfg.MinStepShrink {
				break
			}
			dT /= 2
			continue
		}

		curEig := potential.SmallestHessianEigenvalue(pot.Hessian(res.Point, t))
		if curEig < 0 && prevEig >= 0 {
			// The phase ends somewhere between prevT and t: bisect.
			tEndFound, berr := locate.FindZeroSmallestEigenvalue(pot, prevPoint, prevT, res.Point, t, cfg.Bisection)
			if berr == nil {
				endRes, lerr := locate.LocateMinimum(pot, prevPoint, tEndFound, cfg.Locate)
				if lerr == nil {
					minima = append(minima, Minimum{
						Point: endRes.Point, T: tEndFound,
						V:    pot.V(endRes.Point, tEndFound),
						Edge: -1,
					})
				}
			}
			break
		}

		minima = append(minima, Minimum{Point: res.Point, T: t, V: pot.V(res.Point, t)})
		prevPoint, prevT, prevEig = res.Point, t, curEig

		if overshotEnd {
			break
		}
	}

	return newPhase(minima), nil
}
