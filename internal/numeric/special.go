package numeric

import "math"

// besselSeriesCap and besselSeriesEps are the truncation rule spec
// section 4.4 mandates: stop when the last series term drops below
// 1e-15 of the running sum, or after 100 terms, whichever comes first.
const (
	besselSeriesCap = 100
	besselSeriesEps = 1e-15
)

// BesselI evaluates the modified Bessel function of the first kind,
// I_nu(x), for non-negative integer order nu, via its defining series
//
//	I_nu(x) = sum_{k=0}^inf (x/2)^(2k+nu) / (k! (k+nu)!)
//
// This is used for the analytic small-rho expansion that starts the
// bounce-ODE shooter away from its rho=0 singularity (spec 4.4).
func BesselI(nu int, x float64) float64 {
	if nu < 0 {
		nu = -nu // I_{-n} = I_n for integer n
	}
	halfX := x / 2
	// term_k = (x/2)^(2k+nu) / (k! (k+nu)!)
	term := math.Pow(halfX, float64(nu)) / factorial(nu)
	sum := term
	for k := 1; k < besselSeriesCap; k++ {
		term *= (halfX * halfX) / (float64(k) * float64(k+nu))
		sum += term
		if math.Abs(term) < besselSeriesEps*math.Abs(sum) {
			break
		}
	}
	return sum
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

// Li2 evaluates the dilogarithm (Spence's function)
//
//	Li2(x) = -integral_0^x ln(1-t)/t dt
//
// via its Taylor series for 0 <= x <= 0.5, the reflection identity
// Li2(x) = pi^2/6 - ln(x)ln(1-x) - Li2(1-x) for 0.5 < x < 1, the
// duplication identity Li2(x) = 0.5*Li2(x^2) - Li2(-x) for -1 < x < 0,
// and the inversion identities for x < -1 and x > 1.
func Li2(x float64) float64 {
	switch {
	case x == 1:
		return math.Pi * math.Pi / 6
	case x == -1:
		return -math.Pi * math.Pi / 12
	case x < -1:
		// Li2(x) = -Li2(1/x) - pi^2/6 - 0.5*ln(-x)^2
		lnmx := math.Log(-x)
		return -li2Series(1/x) - math.Pi*math.Pi/6 - 0.5*lnmx*lnmx
	case x < 0:
		// Map into (0, 0.5] via Li2(x) = 0.5*Li2(x^2) - Li2(-x)
		return 0.5*Li2(x*x) - li2ViaSeriesOrReflection(-x)
	case x <= 0.5:
		return li2Series(x)
	case x < 1:
		// Li2(x) = pi^2/6 - ln(x)ln(1-x) - Li2(1-x)
		return math.Pi*math.Pi/6 - math.Log(x)*math.Log(1-x) - li2ViaSeriesOrReflection(1-x)
	default: // x >= 1
		// Li2(x) = pi^2/3 - 0.5*ln(x)^2 - Li2(1/x), x > 1
		lnx := math.Log(x)
		return math.Pi*math.Pi/3 - 0.5*lnx*lnx - li2ViaSeriesOrReflection(1/x)
	}
}

func li2ViaSeriesOrReflection(x float64) float64 {
	if x <= 0.5 {
		return li2Series(x)
	}
	return Li2(x)
}

func li2Series(x float64) float64 {
	sum := 0.0
	term := x
	for k := 1; k < 10000; k++ {
		sum += term / float64(k*k)
		term *= x
		if math.Abs(term/float64((k+1)*(k+1))) < 1e-16*math.Abs(sum) {
			break
		}
	}
	return sum
}
