// Package case2 is Williamson et al. (1992) test case 2, steady state
// nonlinear zonal geostrophic flow.
package case2

import (
	"math"

	"github.com/notargets/swbench/expr"
	"github.com/notargets/swbench/fem"
	"github.com/notargets/swbench/planets/earth"
	"github.com/notargets/swbench/units"
)

const (
	// Gravitational acceleration times reference depth
	GH0 = 2.94e4 * (units.Metre / units.Second) * (units.Metre / units.Second)

	H0 = GH0 / earth.Gravity

	// Days taken for the flow to travel once around the equator
	Period = 12.0

	U0 = 2 * math.Pi * earth.Radius / (Period * earth.Day)
)

// Case2 carries the planet and the tunable parameters of the solution. It is
// a value type, overrides are made on copies.
type Case2 struct {
	Planet earth.Planet
	HRef   float64 // Reference depth
	URef   float64 // Reference velocity
}

// New returns the published benchmark parameters on the default Earth
func New() Case2 {
	return Case2{
		Planet: earth.Default(),
		HRef:   H0,
		URef:   U0,
	}
}

// NewForPlanet derives the reference depth and velocity from p, keeping
// gh0 and the 12 day period fixed
func NewForPlanet(p earth.Planet, u units.System) Case2 {
	ms := u.Metre / u.Second
	return Case2{
		Planet: p,
		HRef:   2.94e4 * ms * ms / p.Gravity,
		URef:   2 * math.Pi * p.Radius / (Period * p.Day),
	}
}

func (c Case2) WithHRef(href float64) Case2 {
	c.HRef = href
	return c
}

func (c Case2) WithURef(uref float64) Case2 {
	c.URef = uref
	return c
}

// CoriolisExpression is f = 2*omega*z/R
func (c Case2) CoriolisExpression(x, y, z expr.Scalar) expr.Scalar {
	p := c.Planet
	return expr.Scale(2*p.Omega/p.Radius, z)
}

// VelocityExpression is solid body rotation about the polar axis
func (c Case2) VelocityExpression(x, y, z expr.Scalar) expr.Vector {
	var (
		R = c.Planet.Radius
		u = c.URef
	)
	return expr.AsVector(
		expr.Scale(-u/R, y),
		expr.Scale(u/R, x),
		expr.Const(0),
	)
}

// DepthExpression is h = href - (R*omega*uref + uref^2/2)*(z/R)^2/g
func (c Case2) DepthExpression(x, y, z expr.Scalar) expr.Scalar {
	var (
		p  = c.Planet
		u  = c.URef
		z0 = expr.Scale(1/p.Radius, z)
		k  = (p.Radius*p.Omega*u + 0.5*u*u) / p.Gravity
	)
	return expr.Sub(expr.Const(c.HRef), expr.Scale(k, expr.Pow(z0, 2)))
}

// CoriolisFunction interpolates the Coriolis parameter into Vf
func (c Case2) CoriolisFunction(x, y, z expr.Scalar, Vf *fem.FunctionSpace, nameO ...string) (*fem.Function, error) {
	return fem.NewFunction(Vf, name("coriolis", nameO)).Interpolate(c.CoriolisExpression(x, y, z))
}

// VelocityFunction projects the velocity into V1
func (c Case2) VelocityFunction(x, y, z expr.Scalar, V1 *fem.FunctionSpace, nameO ...string) (*fem.Function, error) {
	return fem.NewFunction(V1, name("velocity", nameO)).ProjectVector(c.VelocityExpression(x, y, z))
}

// DepthFunction interpolates the depth into V2
func (c Case2) DepthFunction(x, y, z expr.Scalar, V2 *fem.FunctionSpace, nameO ...string) (*fem.Function, error) {
	return fem.NewFunction(V2, name("depth", nameO)).Interpolate(c.DepthExpression(x, y, z))
}

func name(def string, nameO []string) string {
	if len(nameO) > 0 {
		return nameO[0]
	}
	return def
}
