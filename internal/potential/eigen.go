package potential

import (
	"gonum.org/v1/gonum/mat"
)

// SmallestHessianEigenvalue returns the smallest eigenvalue of the
// (symmetric) Hessian H, used by the minimum locator and phase tracer
// to decide whether a stationary point is a genuine local minimum
// (spec section 4.2: "the caller verifies min-ness via Hessian
// eigenvalues"). Kept out of the public API per the design note in
// spec section 9 ("bundle these into the Potential capability rather
// than expose linear-algebra types in the core API") — no mat.Matrix
// type crosses this function's boundary.
func SmallestHessianEigenvalue(h [][]float64) float64 {
	n := len(h)
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			// Symmetrize defensively; a caller-supplied Hessian may be
			// only approximately symmetric due to finite-difference noise.
			v := (h[i][j] + h[j][i]) / 2
			sym.SetSym(i, j, v)
		}
	}

	var eig mat.EigenSym
	ok := eig.Factorize(sym, false)
	if !ok {
		// Degenerate Hessian: fall back to the smallest diagonal entry,
		// which is an upper bound on the smallest eigenvalue.
		smallest := h[0][0]
		for i := 1; i < n; i++ {
			if h[i][i] < smallest {
				smallest = h[i][i]
			}
		}
		return smallest
	}

	values := eig.Values(nil)
	smallest := values[0]
	for _, v := range values[1:] {
		if v < smallest {
			smallest = v
		}
	}
	return smallest
}

// DampedNewtonStep solves (H + epsilon*I) dx = -grad for dx via
// Cholesky (falling back to a plain gradient step if the shifted
// Hessian is not positive-definite), implementing the damped-Newton
// update of spec section 4.2.
func DampedNewtonStep(h [][]float64, grad []float64, epsilon float64) (dx []float64, usedGradientFallback bool) {
	n := len(h)
	shifted := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := (h[i][j] + h[j][i]) / 2
			if i == j {
				v += epsilon
			}
			shifted.SetSym(i, j, v)
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(shifted); ok {
		b := mat.NewVecDense(n, grad)
		var x mat.VecDense
		if err := chol.SolveVecTo(&x, b); err == nil {
			out := make([]float64, n)
			for i := 0; i < n; i++ {
				out[i] = -x.AtVec(i)
			}
			return out, false
		}
	}

	// Fallback: small gradient-descent step (spec section 4.2: "If
	// |det H| is near zero, fall back to a gradient-descent step").
	const smallStep = 1e-3
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = -smallStep * grad[i]
	}
	return out, true
}
