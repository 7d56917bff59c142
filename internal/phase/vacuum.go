package phase

import (
	"math"

	"github.com/phbasler/BSMPT-sub002/internal/numeric"
	"github.com/phbasler/BSMPT-sub002/internal/potential"
)

// VacuumConfig controls Vacuum tracing.
type VacuumConfig struct {
	Mode        MultistepMode
	NumPoints   int // grid size used to probe for coverage gaps in mode 1/2
	DTInit      float64
	Track       TrackConfig
	MaxNewSeeds int // cap on additional trace seeds in coverage modes
}

// DefaultVacuumConfig returns conservative defaults.
func DefaultVacuumConfig() VacuumConfig {
	return VacuumConfig{
		Mode:        ModeCoverage,
		NumPoints:   50,
		DTInit:      1.0,
		Track:       DefaultTrackConfig(),
		MaxNewSeeds: 20,
	}
}

// Vacuum is all traced phases at one parameter point (spec section 3).
type Vacuum struct {
	TLow, THigh    float64
	Phases         []*Phase
	CoexPairs      []*CoexPhases
	TracingStatus  StatusTracing
	CoexPairStatus StatusCoexPair
}

// BuildVacuum traces the phase manifold of pot over [tLow, tHigh]
// according to cfg.Mode (spec section 4.3), then enumerates
// coexisting-phase pairs and their critical temperatures.
func BuildVacuum(pot potential.Potential, tLow, tHigh float64, cfg VacuumConfig) *Vacuum {
	v := &Vacuum{TLow: tLow, THigh: tHigh}

	switch cfg.Mode {
	case ModeSingleStep:
		v.traceSingleStep(pot, cfg)
	case ModeGlobalMinCoverage:
		v.traceCoverage(pot, cfg, true)
	default: // ModeCoverage and unspecified default to coverage mode
		v.traceCoverage(pot, cfg, false)
	}

	if len(v.Phases) == 0 {
		v.TracingStatus = StatusTracingNoMinsAtBoundaries
		v.CoexPairStatus = StatusCoexPairNoCoexPairs
		return v
	}

	v.computeGlobMinEnds(pot)
	v.buildCoexPairs(pot)
	return v
}

func (v *Vacuum) traceSingleStep(pot potential.Potential, cfg VacuumConfig) {
	if high, err := pot.GlobalMin(v.THigh); err == nil {
		if ph, err := TrackPhase(pot, high, v.THigh, v.TLow, cfg.DTInit, cfg.Track); err == nil {
			v.Phases = append(v.Phases, ph)
		}
	}
	if low, err := pot.GlobalMin(v.TLow); err == nil {
		if ph, err := TrackPhase(pot, low, v.TLow, v.THigh, cfg.DTInit, cfg.Track); err == nil {
			v.Phases = append(v.Phases, ph)
		}
	}
	if len(v.Phases) == 0 {
		v.TracingStatus = StatusTracingFailure
		return
	}
	v.TracingStatus = StatusTracingSuccess
}

// traceCoverage implements spec section 4.3 modes 1/2: repeatedly find
// a temperature in [TLow, THigh] not yet covered by any traced phase
// (or, in global-min-coverage mode, not covered by the phase matching
// the global minimum there), seed a new trace from the potential's
// global minimizer at that temperature, and repeat until covered or
// MaxNewSeeds is exhausted.
func (v *Vacuum) traceCoverage(pot potential.Potential, cfg VacuumConfig, requireGlobMin bool) {
	grid := make([]float64, cfg.NumPoints)
	for i := range grid {
		frac := float64(i) / float64(cfg.NumPoints-1)
		grid[i] = v.TLow + frac*(v.THigh-v.TLow)
	}

	seeded := 0
	for seeded < cfg.MaxNewSeeds {
		gapT, ok := v.firstUncoveredGridPoint(pot, grid, requireGlobMin)
		if !ok {
			break
		}
		guess, err := pot.GlobalMin(gapT)
		if err != nil {
			break
		}
		seeded++
		down, errDown := TrackPhase(pot, guess, gapT, v.TLow, cfg.DTInit, cfg.Track)
		if errDown == nil {
			v.Phases = append(v.Phases, down)
		}
		if gapT < v.THigh {
			up, errUp := TrackPhase(pot, guess, gapT, v.THigh, cfg.DTInit, cfg.Track)
			if errUp == nil {
				v.Phases = append(v.Phases, up)
			}
		}
		if errDown != nil && (gapT >= v.THigh) {
			break
		}
	}

	switch {
	case len(v.Phases) == 0:
		v.TracingStatus = StatusTracingFailure
	case !v.isFullyCovered(grid):
		if requireGlobMin {
			v.TracingStatus = StatusTracingNoGlobMinCoverage
		} else {
			v.TracingStatus = StatusTracingNoCoverage
		}
	default:
		v.TracingStatus = StatusTracingSuccess
	}
}

func (v *Vacuum) firstUncoveredGridPoint(pot potential.Potential, grid []float64, requireGlobMin bool) (float64, bool) {
	for _, t := range grid {
		covered := false
		for _, ph := range v.Phases {
			if !ph.Contains(t) {
				continue
			}
			if !requireGlobMin {
				covered = true
				break
			}
			pt, err := ph.PointAt(t)
			if err != nil {
				continue
			}
			g, err := pot.GlobalMin(t)
			if err != nil {
				continue
			}
			if numeric.Distance(pt, g) < 1e-2*(1+numeric.Norm(g)) {
				covered = true
				break
			}
		}
		if !covered {
			return t, true
		}
	}
	return 0, false
}

func (v *Vacuum) isFullyCovered(grid []float64) bool {
	for _, t := range grid {
		covered := false
		for _, ph := range v.Phases {
			if ph.Contains(t) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

// computeGlobMinEnds records, for each phase, the temperature at which
// it stops being the deepest known minimum among all traced phases
// (spec section 4.3, "enforced global-minimum mode"), by sampling each
// phase's own temperature range and comparing V at every other
// overlapping phase.
func (v *Vacuum) computeGlobMinEnds(pot potential.Potential) {
	const samples = 25
	for _, p := range v.Phases {
		p.GlobMinEnd = math.NaN()
		for i := 0; i < samples; i++ {
			t := p.TLow + (p.THigh-p.TLow)*float64(i)/float64(samples-1)
			pt, err := p.PointAt(t)
			if err != nil {
				continue
			}
			vHere := pot.V(pt, t)
			isDeepest := true
			for _, other := range v.Phases {
				if other == p || !other.Contains(t) {
					continue
				}
				otherPt, err := other.PointAt(t)
				if err != nil {
					continue
				}
				if pot.V(otherPt, t) < vHere {
					isDeepest = false
					break
				}
			}
			if !isDeepest {
				p.GlobMinEnd = t
				break
			}
		}
	}
}
