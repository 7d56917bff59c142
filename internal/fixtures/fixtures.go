// Package fixtures provides small closed-form effective potentials
// used across the test suites to exercise phase tracing, bounce-action
// solving, and the full transition pipeline without depending on a
// real particle-physics model (spec section 8, scenarios E1-E6).
package fixtures

import (
	"fmt"
	"math"

	"github.com/phbasler/BSMPT-sub002/internal/numeric"
	"github.com/phbasler/BSMPT-sub002/internal/potential"
)

// SymmetricQuadratic (E1) is a single-field potential V = 0.5 m2(T)
// phi^2 with m2(T) = m2_0 + cT*T^2, symmetric under phi -> -phi. It
// has a single minimum at phi=0 for all T > 0 and is used to exercise
// the Z2 symmetry tie-break and single-phase tracing path (no
// transition).
type SymmetricQuadratic struct {
	M20, CT float64
}

func (p SymmetricQuadratic) Dim() int { return 1 }

func (p SymmetricQuadratic) mass2(t float64) float64 { return p.M20 + p.CT*t*t }

func (p SymmetricQuadratic) V(phi numeric.Vec, t float64) float64 {
	return 0.5 * p.mass2(t) * phi[0] * phi[0]
}

func (p SymmetricQuadratic) Gradient(phi numeric.Vec, t float64) numeric.Vec {
	return numeric.Vec{p.mass2(t) * phi[0]}
}

func (p SymmetricQuadratic) Hessian(phi numeric.Vec, t float64) [][]float64 {
	return [][]float64{{p.mass2(t)}}
}

func (p SymmetricQuadratic) DT(phi numeric.Vec, t float64) float64 {
	return p.CT * t * phi[0] * phi[0]
}

func (p SymmetricQuadratic) Restrict(phi numeric.Vec) numeric.Vec { return phi }

func (p SymmetricQuadratic) GlobalMin(t float64) (numeric.Vec, error) {
	return numeric.Vec{0}, nil
}

func (p SymmetricQuadratic) SymmetryElements() []potential.SymmetryOp {
	return []potential.SymmetryOp{potential.Identity(1), potential.NewSymmetryOp([][]float64{{-1}})}
}

// CubicBarrier (E2) is the classic single-field toy potential used to
// validate the 1-D shooter against a known bounce-action regime (spec
// section 8, E2): V = 0.5 phi^2 - (A/3) phi^3 + (Lambda/4) phi^4,
// independent of T, with a false vacuum at phi=0 and a true vacuum at
// some phi > 0 for suitable A, Lambda.
type CubicBarrier struct {
	A, Lambda float64
}

func (p CubicBarrier) Dim() int { return 1 }

func (p CubicBarrier) V(phi numeric.Vec, t float64) float64 {
	x := phi[0]
	return 0.5*x*x - p.A/3*x*x*x + p.Lambda/4*x*x*x*x
}

func (p CubicBarrier) Gradient(phi numeric.Vec, t float64) numeric.Vec {
	x := phi[0]
	return numeric.Vec{x - p.A*x*x + p.Lambda*x*x*x}
}

func (p CubicBarrier) Hessian(phi numeric.Vec, t float64) [][]float64 {
	x := phi[0]
	return [][]float64{{1 - 2*p.A*x + 3*p.Lambda*x*x}}
}

func (p CubicBarrier) DT(phi numeric.Vec, t float64) float64 { return 0 }

func (p CubicBarrier) Restrict(phi numeric.Vec) numeric.Vec { return phi }

func (p CubicBarrier) GlobalMin(t float64) (numeric.Vec, error) {
	// The true vacuum's closed form root of dV/dphi=0 besides phi=0:
	// Lambda phi^2 - A phi + 1 = 0.
	disc := p.A*p.A - 4*p.Lambda
	if disc < 0 {
		return nil, fmt.Errorf("fixtures: CubicBarrier has no second extremum for A=%g, Lambda=%g", p.A, p.Lambda)
	}
	root := (p.A + math.Sqrt(disc)) / (2 * p.Lambda)
	if p.V(numeric.Vec{root}, t) < p.V(numeric.Vec{0}, t) {
		return numeric.Vec{root}, nil
	}
	return numeric.Vec{0}, nil
}

func (p CubicBarrier) SymmetryElements() []potential.SymmetryOp {
	return []potential.SymmetryOp{potential.Identity(1)}
}

// TwoFieldZ2 (E3) is a two-field potential symmetric under phi1 ->
// -phi1, used to exercise path deformation in d=2: at high T the
// symmetric phase phi1=phi2=0 is the only minimum; below a critical
// temperature two degenerate true vacua appear at phi1 = +-v(T),
// phi2 = w(T) (spec section 8, E3).
type TwoFieldZ2 struct {
	M1_0, M2_0, CT1, CT2, Lambda, Coupling float64
}

func (p TwoFieldZ2) Dim() int { return 2 }

func (p TwoFieldZ2) mass1Sq(t float64) float64 { return p.M1_0 + p.CT1*t*t }
func (p TwoFieldZ2) mass2Sq(t float64) float64 { return p.M2_0 + p.CT2*t*t }

func (p TwoFieldZ2) V(phi numeric.Vec, t float64) float64 {
	x, y := phi[0], phi[1]
	return 0.5*p.mass1Sq(t)*x*x + 0.5*p.mass2Sq(t)*y*y +
		p.Lambda/4*x*x*x*x + p.Coupling*x*x*y
}

func (p TwoFieldZ2) Gradient(phi numeric.Vec, t float64) numeric.Vec {
	x, y := phi[0], phi[1]
	dx := p.mass1Sq(t)*x + p.Lambda*x*x*x + 2*p.Coupling*x*y
	dy := p.mass2Sq(t)*y + p.Coupling*x*x
	return numeric.Vec{dx, dy}
}

func (p TwoFieldZ2) Hessian(phi numeric.Vec, t float64) [][]float64 {
	x, y := phi[0], phi[1]
	hxx := p.mass1Sq(t) + 3*p.Lambda*x*x + 2*p.Coupling*y
	hxy := 2 * p.Coupling * x
	hyy := p.mass2Sq(t)
	return [][]float64{{hxx, hxy}, {hxy, hyy}}
}

func (p TwoFieldZ2) DT(phi numeric.Vec, t float64) float64 {
	x, y := phi[0], phi[1]
	return p.CT1*t*x*x + p.CT2*t*y*y
}

func (p TwoFieldZ2) Restrict(phi numeric.Vec) numeric.Vec {
	return numeric.Vec{math.Abs(phi[0]), phi[1]}
}

func (p TwoFieldZ2) GlobalMin(t float64) (numeric.Vec, error) {
	m1 := p.mass1Sq(t)
	if m1 >= 0 {
		return numeric.Vec{0, 0}, nil
	}
	// Minimize along y for fixed x via dV/dy=0 => y = -Coupling x^2 / mass2Sq(t),
	// substitute back and solve the quartic in x numerically via Newton
	// from a reasonable seed.
	x := math.Sqrt(-m1 / p.Lambda)
	for i := 0; i < 50; i++ {
		y := -p.Coupling * x * x / p.mass2Sq(t)
		grad := p.Gradient(numeric.Vec{x, y}, t)
		h := p.Hessian(numeric.Vec{x, y}, t)
		det := h[0][0]*h[1][1] - h[0][1]*h[1][0]
		if math.Abs(det) < 1e-300 {
			break
		}
		dx := (h[1][1]*grad[0] - h[0][1]*grad[1]) / det
		x -= dx
	}
	y := -p.Coupling * x * x / p.mass2Sq(t)
	cand := numeric.Vec{x, y}
	if p.V(cand, t) < p.V(numeric.Vec{0, 0}, t) {
		return cand, nil
	}
	return numeric.Vec{0, 0}, nil
}

func (p TwoFieldZ2) SymmetryElements() []potential.SymmetryOp {
	return []potential.SymmetryOp{
		potential.Identity(2),
		potential.NewSymmetryOp([][]float64{{-1, 0}, {0, 1}}),
	}
}
