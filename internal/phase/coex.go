package phase

import (
	"math"

	"github.com/google/uuid"

	"github.com/phbasler/BSMPT-sub002/internal/potential"
)

// CoexPhases is an ordered pair (false, true) of phases overlapping in
// T, together with their critical temperature (spec section 3).
type CoexPhases struct {
	ID          uuid.UUID
	TLow, THigh float64
	FalseIdx    int // index into Vacuum.Phases
	TrueIdx     int
	Tc          float64
	CritStatus  StatusCrit
}

// CriticalTempTol is the relative tolerance used to bisect Tc (spec
// invariant I3/testable property P3: |V_true-V_false|/max(...) < 1e-4).
const CriticalTempTol = 1e-4

func (v *Vacuum) buildCoexPairs(pot potential.Potential) {
	n := len(v.Phases)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := v.Phases[i], v.Phases[j]
			if !a.Overlaps(b) {
				continue
			}
			lo := math.Max(a.TLow, b.TLow)
			hi := math.Min(a.THigh, b.THigh)
			if lo >= hi {
				continue
			}
			pair := resolveCoexPair(pot, i, j, a, b, lo, hi)
			v.CoexPairs = append(v.CoexPairs, pair)
		}
	}
	if len(v.CoexPairs) == 0 {
		v.CoexPairStatus = StatusCoexPairNoCoexPairs
	} else {
		v.CoexPairStatus = StatusCoexPairSuccess
	}
}

// deltaVAt returns V(phases[0]) - V(phases[1]) at T; ok is false when
// either phase has no point at T.
func deltaVAt(pot potential.Potential, phases [2]*Phase, t float64) (float64, bool) {
	p0, err0 := phases[0].PointAt(t)
	p1, err1 := phases[1].PointAt(t)
	if err0 != nil || err1 != nil {
		return 0, false
	}
	return pot.V(p0, t) - pot.V(p1, t), true
}

// resolveCoexPair computes Tc for the overlap window [lo, hi] by
// bisecting DeltaV(T) = V(i,T) - V(j,T) = 0 (spec invariant I3), then
// assigns which phase is "true" (lower V) for T just below Tc.
func resolveCoexPair(pot potential.Potential, i, j int, a, b *Phase, lo, hi float64) *CoexPhases {
	pair := &CoexPhases{ID: uuid.New(), TLow: lo, THigh: hi}

	phases := [2]*Phase{a, b}
	dvLo, okLo := deltaVAt(pot, phases, lo)
	dvHi, okHi := deltaVAt(pot, phases, hi)
	if !okLo || !okHi {
		pair.CritStatus = StatusCritFailure
		pair.FalseIdx, pair.TrueIdx = j, i
		return pair
	}

	switch {
	case dvHi > 0:
		// a is higher (false) at the top of the overlap: a=false, b=true.
		pair.FalseIdx, pair.TrueIdx = i, j
	case dvHi < 0:
		pair.FalseIdx, pair.TrueIdx = j, i
	default:
		pair.FalseIdx, pair.TrueIdx = i, j
	}

	if (dvLo > 0) == (dvHi > 0) {
		// No sign change across the whole overlap: one phase is always
		// deeper. Report which, per spec's StatusCrit vocabulary.
		if dvHi > 0 {
			pair.CritStatus = StatusCritTrueLower // b is always lower (true)
		} else {
			pair.CritStatus = StatusCritFalseLower
		}
		pair.Tc = math.NaN()
		return pair
	}

	loT, hiT := lo, hi
	dvLoSign := dvLo > 0
	for iter := 0; iter < 100; iter++ {
		mid := (loT + hiT) / 2
		dvMid, ok := deltaVAt(pot, phases, mid)
		if !ok {
			pair.CritStatus = StatusCritFailure
			return pair
		}
		if (dvMid > 0) == dvLoSign {
			loT = mid
		} else {
			hiT = mid
		}
		if relConverged(pot, phases, loT, hiT) {
			break
		}
	}
	pair.Tc = (loT + hiT) / 2
	pair.CritStatus = StatusCritSuccess
	return pair
}

func relConverged(pot potential.Potential, phases [2]*Phase, lo, hi float64) bool {
	mid := (lo + hi) / 2
	dv, ok := deltaVAt(pot, phases, mid)
	if !ok {
		return false
	}
	p0, _ := phases[0].PointAt(mid)
	v0 := pot.V(p0, mid)
	denom := math.Max(math.Max(math.Abs(v0), math.Abs(v0-dv)), 1e-300)
	return math.Abs(dv)/denom < CriticalTempTol
}
