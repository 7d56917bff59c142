// Package numeric holds the shared numerical building blocks of the
// transition engine: splines, the bounce-ODE stepper, special
// functions and the adaptive-quadrature wrapper. None of it knows
// about phases, bounces or temperatures — it is pure math, reused by
// every solver package above it.
package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vec is a point or vector in the field-space ℝᵈ. It intentionally
// stays a plain slice (not a fixed-size array) because the potential's
// dimension d is only known at runtime.
type Vec []float64

// CloneVec returns an independent copy.
func CloneVec(v Vec) Vec {
	out := make(Vec, len(v))
	copy(out, v)
	return out
}

// Add returns v+w.
func Add(v, w Vec) Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] + w[i]
	}
	return out
}

// Sub returns v-w.
func Sub(v, w Vec) Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] - w[i]
	}
	return out
}

// Scale returns c*v.
func Scale(c float64, v Vec) Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = c * v[i]
	}
	return out
}

// Dot returns the Euclidean inner product.
func Dot(v, w Vec) float64 {
	s := 0.0
	for i := range v {
		s += v[i] * w[i]
	}
	return s
}

// Norm returns the Euclidean norm.
func Norm(v Vec) float64 {
	return math.Sqrt(Dot(v, v))
}

// Distance returns the Euclidean distance between v and w.
func Distance(v, w Vec) float64 {
	return floats.Distance([]float64(v), []float64(w), 2)
}
