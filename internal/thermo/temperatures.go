package thermo

import (
	"fmt"
	"math"

	"github.com/phbasler/BSMPT-sub002/internal/bouncedrv"
	"github.com/phbasler/BSMPT-sub002/internal/numeric"
)

// Status reports which characteristic temperatures were resolved
// (spec section 4.6).
type Status int

const (
	StatusNotCalculated Status = iota
	StatusSuccess
	StatusOutOfRange
	StatusNoSignChange
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusOutOfRange:
		return "OutOfRange"
	case StatusNoSignChange:
		return "NoSignChange"
	default:
		return "NotCalculated"
	}
}

// Temperatures collects the transition's characteristic temperatures
// derived from one BounceSolution (spec section 4.6).
type Temperatures struct {
	Tc                float64
	TnApprox          float64
	TnApproxStatus    Status
	TnExact           float64
	TnExactStatus     Status
	Tp                float64
	TpStatus          Status
	Tf                float64
	TfStatus          Status
}

// hubbleRate returns H(T) = sqrt(8*pi^3*g*/90) * T^2 / Mpl (spec
// section 4.6).
func hubbleRate(t float64, cfg Config) float64 {
	return math.Sqrt(8*math.Pi*math.Pi*math.Pi*cfg.EffectiveDOF/90) * t * t / cfg.ReducedPlanckMass
}

// nucleationRate returns Gamma(T) = T^4 (S(T)/(2 pi T))^{3/2} exp(-S(T)/T)
// (spec section 4.6), the bubble-nucleation rate per unit volume.
func nucleationRate(bs *bouncedrv.BounceSolution, t float64) float64 {
	if !bs.InDomain(t) {
		return 0
	}
	s := bs.S(t)
	return math.Pow(t, 4) * math.Pow(s/(2*math.Pi*t), 1.5) * math.Exp(-s/t)
}

// approxNucleationCriterion bisects S(T)/T - threshold = 0, the fast
// approximate criterion for T_n (spec section 4.6).
func approxNucleationCriterion(bs *bouncedrv.BounceSolution, cfg Config) (float64, Status) {
	lo, hi := bs.Spline.DomainMin(), bs.Spline.DomainMax()
	f := func(t float64) float64 { return bs.S(t)/t - cfg.ApproxNucleationThreshold }

	fLo, fHi := f(lo), f(hi)
	if (fLo > 0) == (fHi > 0) {
		return 0, StatusNoSignChange
	}
	loSign := fLo > 0
	for i := 0; i < cfg.MaxBisections; i++ {
		mid := (lo + hi) / 2
		fm := f(mid)
		if (fm > 0) == loSign {
			lo = mid
		} else {
			hi = mid
		}
		if math.Abs(hi-lo) < cfg.BisectionTol*math.Max(1, math.Abs(hi)) {
			break
		}
	}
	return (lo + hi) / 2, StatusSuccess
}

// falseVacuumExponent returns I(T) = (4 pi / 3) * integral_T^Tc dT'
// Gamma(T')/(T'^4 H(T')) * (integral_T'^T dT''/H(T''))^3, the
// exponent in the false-vacuum-fraction survival probability P_f(T) =
// exp(-I(T)) (spec section 4.6).
func falseVacuumExponent(bs *bouncedrv.BounceSolution, t float64, cfg Config) (float64, error) {
	tc := bs.Spline.DomainMax()
	if t >= tc {
		return 0, nil
	}

	outer := func(tp float64) float64 {
		inner := func(tpp float64) float64 { return 1 / hubbleRate(tpp, cfg) }
		bubbleRadius, err := integrate(inner, t, tp, cfg)
		if err != nil {
			return 0
		}
		return nucleationRate(bs, tp) / (math.Pow(tp, 4) * hubbleRate(tp, cfg)) * math.Pow(math.Abs(bubbleRadius), 3)
	}
	val, err := integrate(outer, t, tc, cfg)
	if err != nil {
		return 0, err
	}
	return 4 * math.Pi / 3 * val, nil
}

func integrate(f func(float64) float64, a, b float64, cfg Config) (float64, error) {
	return numeric.AdaptiveQuad(f, a, b, cfg.Quad)
}

// exactCriterion bisects I(T) - threshold = 0 over [TnApprox, Tc)
// falling back to the whole domain if no approximate estimate exists.
func exactCriterion(bs *bouncedrv.BounceSolution, threshold float64, lo, hi float64, cfg Config) (float64, Status) {
	f := func(t float64) (float64, error) {
		i, err := falseVacuumExponent(bs, t, cfg)
		return i - threshold, err
	}
	fLo, errLo := f(lo)
	fHi, errHi := f(hi)
	if errLo != nil || errHi != nil {
		return 0, StatusOutOfRange
	}
	if (fLo > 0) == (fHi > 0) {
		return 0, StatusNoSignChange
	}
	loSign := fLo > 0
	for i := 0; i < cfg.MaxBisections; i++ {
		mid := (lo + hi) / 2
		fm, err := f(mid)
		if err != nil {
			return 0, StatusOutOfRange
		}
		if (fm > 0) == loSign {
			lo = mid
		} else {
			hi = mid
		}
		if math.Abs(hi-lo) < cfg.BisectionTol*math.Max(1, math.Abs(hi)) {
			break
		}
	}
	return (lo + hi) / 2, StatusSuccess
}

// Derive computes every characteristic temperature from a converged
// BounceSolution (spec section 4.6). Tc must be supplied by the
// caller (the coexisting phase pair's critical temperature).
func Derive(bs *bouncedrv.BounceSolution, tc float64, cfg Config) (*Temperatures, error) {
	if bs == nil || bs.Spline == nil {
		return nil, fmt.Errorf("thermo: BounceSolution has no fitted spline")
	}

	out := &Temperatures{Tc: tc}

	tnApprox, status := approxNucleationCriterion(bs, cfg)
	out.TnApprox, out.TnApproxStatus = tnApprox, status

	lo, hi := bs.Spline.DomainMin(), bs.Spline.DomainMax()
	if status == StatusSuccess {
		lo = math.Max(lo, tnApprox*0.5)
	}

	tnExact, tnStatus := exactCriterion(bs, 1.0, lo, hi, cfg)
	out.TnExact, out.TnExactStatus = tnExact, tnStatus

	tp, tpStatus := exactCriterion(bs, cfg.PercolationThreshold, bs.Spline.DomainMin(), hi, cfg)
	out.Tp, out.TpStatus = tp, tpStatus

	tf, tfStatus := exactCriterion(bs, cfg.CompletionThreshold, bs.Spline.DomainMin(), hi, cfg)
	out.Tf, out.TfStatus = tf, tfStatus

	return out, nil
}
