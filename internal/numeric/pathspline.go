package numeric

import "fmt"

// PathSpline is a constant-velocity cubic spline Γ: [0,L] → ℝᵈ through
// a sequence of knots, parameterized by arclength l (spec section 9:
// "a constant-velocity cubic spline that parameterizes by arclength").
// It is rebuilt (never mutated in place) by Reparameterize after a
// path-deformation step so that knot density stays uniform in l.
type PathSpline struct {
	dim   int
	knotL []float64 // arclength at each knot, knotL[0]=0
	comp  []*NaturalSpline
}

// NewPathSpline fits a constant-velocity spline through knots, which
// must have at least two points and uniform dimension.
func NewPathSpline(knots []Vec) (*PathSpline, error) {
	n := len(knots)
	if n < 2 {
		return nil, fmt.Errorf("numeric: path spline needs at least 2 knots, got %d", n)
	}
	dim := len(knots[0])
	for _, k := range knots {
		if len(k) != dim {
			return nil, fmt.Errorf("numeric: inconsistent knot dimension")
		}
	}

	l := make([]float64, n)
	for i := 1; i < n; i++ {
		l[i] = l[i-1] + Distance(knots[i-1], knots[i])
	}
	if l[n-1] == 0 {
		return nil, fmt.Errorf("numeric: degenerate path, zero total length")
	}

	comp := make([]*NaturalSpline, dim)
	coord := make([]float64, n)
	for d := 0; d < dim; d++ {
		for i := 0; i < n; i++ {
			coord[i] = knots[i][d]
		}
		sp, err := FitNaturalSpline(l, coord)
		if err != nil {
			return nil, fmt.Errorf("numeric: fitting path component %d: %w", d, err)
		}
		comp[d] = sp
	}

	return &PathSpline{dim: dim, knotL: l, comp: comp}, nil
}

// Length returns the total arclength L of the path.
func (p *PathSpline) Length() float64 { return p.knotL[len(p.knotL)-1] }

// Dim returns the field-space dimension d.
func (p *PathSpline) Dim() int { return p.dim }

// Eval returns Γ(l).
func (p *PathSpline) Eval(l float64) Vec {
	out := make(Vec, p.dim)
	for d := range p.comp {
		out[d] = p.comp[d].Eval(l)
	}
	return out
}

// Tangent returns dΓ/dl at l (not guaranteed unit norm — the spline is
// only approximately constant-velocity between knots).
func (p *PathSpline) Tangent(l float64) Vec {
	out := make(Vec, p.dim)
	for d := range p.comp {
		out[d] = p.comp[d].Derivative(l)
	}
	return out
}

// UnitTangent returns the normalized tangent dΓ/dl / |dΓ/dl|.
func (p *PathSpline) UnitTangent(l float64) Vec {
	t := p.Tangent(l)
	n := Norm(t)
	if n == 0 {
		return t
	}
	return Scale(1/n, t)
}

// KnotArclengths returns the arclength parameter of each original knot.
func (p *PathSpline) KnotArclengths() []float64 {
	return append([]float64(nil), p.knotL...)
}

// Reparameterize resamples the path at nKnots arclength values spaced
// uniformly over [0, L] and refits, restoring uniform knot density in
// l after a deformation step has pushed knots together or apart.
func (p *PathSpline) Reparameterize(nKnots int) (*PathSpline, error) {
	if nKnots < 2 {
		return nil, fmt.Errorf("numeric: need at least 2 knots to reparameterize, got %d", nKnots)
	}
	L := p.Length()
	knots := make([]Vec, nKnots)
	for i := 0; i < nKnots; i++ {
		l := L * float64(i) / float64(nKnots-1)
		knots[i] = p.Eval(l)
	}
	return NewPathSpline(knots)
}
