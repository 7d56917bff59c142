package bounce

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/phbasler/BSMPT-sub002/internal/numeric"
	"github.com/phbasler/BSMPT-sub002/internal/potential"
)

// bernstein evaluates B_{nu,n}(x) = C(n,nu) x^nu (1-x)^(n-nu) (spec
// section 4.4/GLOSSARY).
func bernstein(nu, n int, x float64) float64 {
	return binomial(n, nu) * math.Pow(x, float64(nu)) * math.Pow(1-x, float64(n-nu))
}

func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	r := 1.0
	for i := 0; i < k; i++ {
		r *= float64(n-i) / float64(i+1)
	}
	return r
}

// bernsteinKernel builds K_{ij} = integral_0^1 B_i(x) B_j(x) dx via
// composite Simpson quadrature, for degree n (so i,j range 0..n).
func bernsteinKernel(n int) *mat.SymDense {
	const panels = 400 // even, for Simpson's rule
	h := 1.0 / float64(panels)

	k := mat.NewSymDense(n+1, nil)
	// Precompute B_i at each quadrature node once.
	bvals := make([][]float64, n+1)
	for i := 0; i <= n; i++ {
		bvals[i] = make([]float64, panels+1)
		for q := 0; q <= panels; q++ {
			bvals[i][q] = bernstein(i, n, float64(q)*h)
		}
	}

	simpsonWeight := func(q int) float64 {
		switch {
		case q == 0 || q == panels:
			return 1
		case q%2 == 1:
			return 4
		default:
			return 2
		}
	}

	for i := 0; i <= n; i++ {
		for j := i; j <= n; j++ {
			sum := 0.0
			for q := 0; q <= panels; q++ {
				sum += simpsonWeight(q) * bvals[i][q] * bvals[j][q]
			}
			k.SetSym(i, j, sum*h/3)
		}
	}
	return k
}

// normalForce returns N(l) = gradV(Gamma(l)) - (gradV.Gamma')Gamma'
// (spec section 4.4), the component of the potential gradient normal
// to the path's tangent at arclength l.
func normalForce(pot potential.Potential, path *numeric.PathSpline, t, l float64) numeric.Vec {
	point := path.Eval(l)
	tangent := path.UnitTangent(l)
	grad := pot.Gradient(point, t)
	along := numeric.Dot(grad, tangent)
	return numeric.Sub(grad, numeric.Scale(along, tangent))
}

// deformationResult is one deformation attempt's outcome.
type deformationResult struct {
	newKnots  []numeric.Vec
	forceRatio float64 // max|N| / max|gradV| on the path before the step
	converged bool
}

// deformOnce runs one Bernstein-basis deformation pass over the
// current path's knots (spec section 4.4, Step C): sample the normal
// force at each knot, solve K * step = force via Cholesky (K built
// once per degree and cached by the caller), scale by the reductor,
// and return the moved knots with the current path's
// force-to-gradient ratio. The step is always returned; whether it
// lowers that ratio is not checked here or by the caller.
func deformOnce(pot potential.Potential, path *numeric.PathSpline, t float64, knotL []float64, kernel *mat.SymDense, cfg Config) (deformationResult, error) {
	n := len(knotL)
	dim := path.Dim()

	forces := make([]numeric.Vec, n)
	maxGrad := 0.0
	maxForce := 0.0
	for i, l := range knotL {
		forces[i] = normalForce(pot, path, t, l)
		g := numeric.Norm(pot.Gradient(path.Eval(l), t))
		if g > maxGrad {
			maxGrad = g
		}
		if nf := numeric.Norm(forces[i]); nf > maxForce {
			maxForce = nf
		}
	}
	if maxGrad == 0 {
		maxGrad = 1e-300
	}

	L := path.Length()
	reductor := cfg.ForceTolerance * maxGrad / math.Max(L, 1e-300) * 10
	if reductor == 0 {
		reductor = 1
	}

	var chol mat.Cholesky
	ok := chol.Factorize(kernel)

	newKnots := make([]numeric.Vec, n)
	for i := range newKnots {
		newKnots[i] = numeric.CloneVec(path.Eval(knotL[i]))
	}

	if ok {
		for d := 0; d < dim; d++ {
			rhs := make([]float64, n)
			for i := range rhs {
				rhs[i] = forces[i][d]
			}
			b := mat.NewVecDense(n, rhs)
			var x mat.VecDense
			if err := chol.SolveVecTo(&x, b); err == nil {
				for i := 0; i < n; i++ {
					newKnots[i][d] += x.AtVec(i) / reductor
				}
				continue
			}
			// Fall back to an unsmoothed gradient step for this dimension.
			for i := 0; i < n; i++ {
				newKnots[i][d] += forces[i][d] / reductor
			}
		}
	} else {
		for i := 0; i < n; i++ {
			newKnots[i] = numeric.Add(newKnots[i], numeric.Scale(1/reductor, forces[i]))
		}
	}
	// Path endpoints are fixed (spec invariant I4).
	newKnots[0] = numeric.CloneVec(path.Eval(knotL[0]))
	newKnots[n-1] = numeric.CloneVec(path.Eval(knotL[n-1]))

	ratio := maxForce / maxGrad
	return deformationResult{newKnots: newKnots, forceRatio: ratio}, nil
}
