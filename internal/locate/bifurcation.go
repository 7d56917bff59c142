package locate

import (
	"fmt"

	"github.com/phbasler/BSMPT-sub002/internal/numeric"
	"github.com/phbasler/BSMPT-sub002/internal/potential"
)

// BisectionConfig controls FindZeroSmallestEigenvalue.
type BisectionConfig struct {
	RelTol   float64
	MaxIters int
}

// DefaultBisectionConfig returns conservative defaults.
func DefaultBisectionConfig() BisectionConfig {
	return BisectionConfig{RelTol: 1e-4, MaxIters: 60}
}

// FindZeroSmallestEigenvalue bisects along the straight line in
// (phi,T) from (phi1,T1) to (phi2,T2) for the temperature at which the
// smallest Hessian eigenvalue crosses zero (spec section 4.2) — used
// to detect a phase ending or a bifurcation. The eigenvalue at the two
// endpoints must have opposite sign, otherwise an error is returned.
func FindZeroSmallestEigenvalue(pot potential.Potential, phi1 numeric.Vec, t1 float64, phi2 numeric.Vec, t2 float64, cfg BisectionConfig) (float64, error) {
	eigAt := func(frac float64) float64 {
		phi := numeric.Add(phi1, numeric.Scale(frac, numeric.Sub(phi2, phi1)))
		t := t1 + frac*(t2-t1)
		h := pot.Hessian(phi, t)
		return potential.SmallestHessianEigenvalue(h)
	}

	lo, hi := 0.0, 1.0
	eLo, eHi := eigAt(lo), eigAt(hi)
	if eLo == 0 {
		return t1, nil
	}
	if eHi == 0 {
		return t2, nil
	}
	if (eLo > 0) == (eHi > 0) {
		return 0, fmt.Errorf("locate: smallest eigenvalue does not change sign between T=%g and T=%g", t1, t2)
	}

	for i := 0; i < cfg.MaxIters; i++ {
		mid := (lo + hi) / 2
		eMid := eigAt(mid)
		if (eMid > 0) == (eLo > 0) {
			lo, eLo = mid, eMid
		} else {
			hi = mid
		}
		if (hi - lo) < cfg.RelTol {
			break
		}
	}

	frac := (lo + hi) / 2
	return t1 + frac*(t2-t1), nil
}
