// Package expr builds pointwise field expressions over Cartesian coordinates.
//
// A Scalar or Vector is a pure function of (x, y, z). Builders only close over
// their operands, so an expression can be handed to any evaluator that can
// sample a function at points: the fem package interpolates and projects
// them, tests call them directly.
package expr

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

type Scalar func(x, y, z float64) float64

type Vector func(x, y, z float64) r3.Vec

// Coordinate components, the equivalent of a mesh's spatial coordinate.
var (
	X Scalar = func(x, _, _ float64) float64 { return x }
	Y Scalar = func(_, y, _ float64) float64 { return y }
	Z Scalar = func(_, _, z float64) float64 { return z }
)

func (s Scalar) At(p r3.Vec) float64 { return s(p.X, p.Y, p.Z) }

func (v Vector) At(p r3.Vec) r3.Vec { return v(p.X, p.Y, p.Z) }

func Const(c float64) Scalar {
	return func(_, _, _ float64) float64 { return c }
}

func Add(a, b Scalar) Scalar {
	return func(x, y, z float64) float64 { return a(x, y, z) + b(x, y, z) }
}

func Sub(a, b Scalar) Scalar {
	return func(x, y, z float64) float64 { return a(x, y, z) - b(x, y, z) }
}

func Mul(a, b Scalar) Scalar {
	return func(x, y, z float64) float64 { return a(x, y, z) * b(x, y, z) }
}

func Div(a, b Scalar) Scalar {
	return func(x, y, z float64) float64 { return a(x, y, z) / b(x, y, z) }
}

func Scale(c float64, a Scalar) Scalar {
	return func(x, y, z float64) float64 { return c * a(x, y, z) }
}

func Neg(a Scalar) Scalar { return Scale(-1, a) }

// POW raises x to an integer power, multiplying out small powers.
func Pow(a Scalar, p int) Scalar {
	return func(x, y, z float64) float64 { return POW(a(x, y, z), p) }
}

func Atan2(a, b Scalar) Scalar {
	return func(x, y, z float64) float64 { return math.Atan2(a(x, y, z), b(x, y, z)) }
}

// Asin returns NaN outside [-1,1], there is no clamping.
func Asin(a Scalar) Scalar {
	return func(x, y, z float64) float64 { return math.Asin(a(x, y, z)) }
}

func Sqrt(a Scalar) Scalar {
	return func(x, y, z float64) float64 { return math.Sqrt(a(x, y, z)) }
}

func Min(a, b Scalar) Scalar {
	return func(x, y, z float64) float64 { return math.Min(a(x, y, z), b(x, y, z)) }
}

func AsVector(a, b, c Scalar) Vector {
	return func(x, y, z float64) r3.Vec {
		return r3.Vec{X: a(x, y, z), Y: b(x, y, z), Z: c(x, y, z)}
	}
}

// Component extracts one Cartesian component (0, 1, 2) of a Vector.
func Component(v Vector, i int) Scalar {
	return func(x, y, z float64) float64 {
		w := v(x, y, z)
		switch i {
		case 0:
			return w.X
		case 1:
			return w.Y
		default:
			return w.Z
		}
	}
}

func Dot(a, b Vector) Scalar {
	return func(x, y, z float64) float64 { return r3.Dot(a(x, y, z), b(x, y, z)) }
}

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 4 || pp < -4 {
		return math.Pow(x, float64(pp))
	}
	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	}
	if flipped {
		y = 1. / y
	}
	return
}
