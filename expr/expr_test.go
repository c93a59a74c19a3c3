package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestCoordinates(t *testing.T) {
	p := r3.Vec{X: 1, Y: -2, Z: 3}
	assert.Equal(t, 1., X.At(p))
	assert.Equal(t, -2., Y.At(p))
	assert.Equal(t, 3., Z.At(p))
	assert.Equal(t, 7.5, Const(7.5).At(p))
}

func TestArithmetic(t *testing.T) {
	p := r3.Vec{X: 2, Y: 3, Z: 4}
	assert.Equal(t, 5., Add(X, Y).At(p))
	assert.Equal(t, -1., Sub(X, Y).At(p))
	assert.Equal(t, 12., Mul(Y, Z).At(p))
	assert.Equal(t, 0.5, Div(X, Z).At(p))
	assert.Equal(t, 6., Scale(3, X).At(p))
	assert.Equal(t, -4., Neg(Z).At(p))
	assert.Equal(t, 64., Pow(Z, 3).At(p))
	assert.Equal(t, 0.0625, Pow(Z, -2).At(p))
	assert.InDelta(t, math.Pow(2, 7), Pow(X, 7).At(p), 1.e-12)
	assert.Equal(t, 1., Pow(X, 0).At(p))
}

func TestElementwise(t *testing.T) {
	p := r3.Vec{X: 0, Y: 1, Z: 0.5}
	assert.InDelta(t, math.Pi/2, Atan2(Y, X).At(p), 1.e-15)
	assert.InDelta(t, math.Pi/6, Asin(Z).At(p), 1.e-15)
	assert.True(t, math.IsNaN(Asin(Const(2)).At(p)))
	assert.Equal(t, 1., Sqrt(Y).At(p))
	assert.Equal(t, 0., Min(X, Y).At(p))
}

func TestVector(t *testing.T) {
	p := r3.Vec{X: 1, Y: 2, Z: 3}
	v := AsVector(Neg(Y), X, Const(0))
	assert.Equal(t, r3.Vec{X: -2, Y: 1, Z: 0}, v.At(p))
	assert.Equal(t, -2., Component(v, 0).At(p))
	assert.Equal(t, 1., Component(v, 1).At(p))
	assert.Equal(t, 0., Component(v, 2).At(p))
	position := AsVector(X, Y, Z)
	assert.Equal(t, 0., Dot(v, position).At(p))
	assert.Equal(t, 14., Dot(position, position).At(p))
}
