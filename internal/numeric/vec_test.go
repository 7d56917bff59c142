package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVecArithmetic(t *testing.T) {
	v := Vec{1, 2, 3}
	w := Vec{4, 5, 6}

	assert.Equal(t, Vec{5, 7, 9}, Add(v, w))
	assert.Equal(t, Vec{-3, -3, -3}, Sub(v, w))
	assert.Equal(t, Vec{2, 4, 6}, Scale(2, v))
	assert.Equal(t, 32.0, Dot(v, w))
	assert.InDelta(t, 3.7416573867739413, Norm(v), 1e-9)
	assert.InDelta(t, 5.196152422706632, Distance(v, w), 1e-9)
}

func TestCloneVecIndependence(t *testing.T) {
	v := Vec{1, 2, 3}
	c := CloneVec(v)
	c[0] = 99
	assert.Equal(t, 1.0, v[0])
	assert.Equal(t, 99.0, c[0])
}
