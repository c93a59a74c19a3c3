// Package case5 is Williamson et al. (1992) test case 5, zonal flow over an
// isolated mountain. The flow field is that of case 2, only the orography
// differs.
package case5

import (
	"math"

	"github.com/notargets/swbench/expr"
	"github.com/notargets/swbench/fem"
	"github.com/notargets/swbench/model_problems/ShallowWater/williamson1992/case2"
	"github.com/notargets/swbench/planets/earth"
	"github.com/notargets/swbench/units"
)

const (
	// Reference depth
	H0 = 5960 * units.Metre

	// Reference velocity
	U0 = 20 * units.Metre / units.Second

	MountainHeight = 2000 * units.Metre

	// Angular radius of the mountain base
	MountainRadius = math.Pi / 9

	// Longitude of the mountain centre, -pi/2 rather than the published
	// 3pi/2 because longitudes come from atan2
	MountainCentreLambda = -math.Pi / 2

	MountainCentreTheta = math.Pi / 6
)

// Mountain is a cone described in longitude/latitude space
type Mountain struct {
	Radius  float64 // Base radius in radians
	Height  float64 // Peak height
	ThetaC  float64 // Latitude of the peak
	LambdaC float64 // Longitude of the peak
}

type Case5 struct {
	Planet   earth.Planet
	URef     float64
	H0       float64 // Flat reference depth, not applied by DepthExpression
	Mountain Mountain
}

func DefaultMountain() Mountain {
	return Mountain{
		Radius:  MountainRadius,
		Height:  MountainHeight,
		ThetaC:  MountainCentreTheta,
		LambdaC: MountainCentreLambda,
	}
}

func New() Case5 {
	return Case5{
		Planet:   earth.Default(),
		URef:     U0,
		H0:       H0,
		Mountain: DefaultMountain(),
	}
}

// NewForPlanet expresses the dimensional parameters in the unit system u
func NewForPlanet(p earth.Planet, u units.System) Case5 {
	m := DefaultMountain()
	m.Height = 2000 * u.Metre
	return Case5{
		Planet:   p,
		URef:     20 * u.Metre / u.Second,
		H0:       5960 * u.Metre,
		Mountain: m,
	}
}

func (c Case5) WithURef(uref float64) Case5 {
	c.URef = uref
	return c
}

func (c Case5) WithMountain(m Mountain) Case5 {
	c.Mountain = m
	return c
}

func (c Case5) flow() case2.Case2 {
	return case2.Case2{
		Planet: c.Planet,
		URef:   c.URef,
	}
}

func (c Case5) CoriolisExpression(x, y, z expr.Scalar) expr.Scalar {
	return c.flow().CoriolisExpression(x, y, z)
}

func (c Case5) VelocityExpression(x, y, z expr.Scalar) expr.Vector {
	return c.flow().VelocityExpression(x, y, z)
}

// DepthExpression returns the conical mountain height
//
//	height*(1 - sqrt(min(radius^2, (lambda-lambda_c)^2 + (theta-theta_c)^2))/radius)
//
// with lambda = atan2(y, x) and theta = asin(z/R). The result is the
// orography, not a fluid depth: no reference depth is added and the
// mountain is not subtracted from one.
func (c Case5) DepthExpression(x, y, z expr.Scalar) expr.Scalar {
	var (
		R       = c.Planet.Radius
		m       = c.Mountain
		lambdaX = expr.Atan2(expr.Scale(1/R, y), expr.Scale(1/R, x))
		thetaX  = expr.Asin(expr.Scale(1/R, z))
		radius2 = expr.Const(m.Radius * m.Radius)
		lambda2 = expr.Pow(expr.Sub(lambdaX, expr.Const(m.LambdaC)), 2)
		theta2  = expr.Pow(expr.Sub(thetaX, expr.Const(m.ThetaC)), 2)
		minArg  = expr.Min(radius2, expr.Add(theta2, lambda2))
	)
	return expr.Scale(m.Height, expr.Sub(expr.Const(1), expr.Div(expr.Sqrt(minArg), expr.Const(m.Radius))))
}

// OrographyExpression is the mountain height under its physical name
func (c Case5) OrographyExpression(x, y, z expr.Scalar) expr.Scalar {
	return c.DepthExpression(x, y, z)
}

func (c Case5) CoriolisFunction(x, y, z expr.Scalar, Vf *fem.FunctionSpace, nameO ...string) (*fem.Function, error) {
	return fem.NewFunction(Vf, name("coriolis", nameO)).Interpolate(c.CoriolisExpression(x, y, z))
}

func (c Case5) VelocityFunction(x, y, z expr.Scalar, V1 *fem.FunctionSpace, nameO ...string) (*fem.Function, error) {
	return fem.NewFunction(V1, name("velocity", nameO)).ProjectVector(c.VelocityExpression(x, y, z))
}

// DepthFunction interpolates DepthExpression, so it too holds the orography
func (c Case5) DepthFunction(x, y, z expr.Scalar, V2 *fem.FunctionSpace, nameO ...string) (*fem.Function, error) {
	return fem.NewFunction(V2, name("depth", nameO)).Interpolate(c.DepthExpression(x, y, z))
}

func (c Case5) OrographyFunction(x, y, z expr.Scalar, V2 *fem.FunctionSpace, nameO ...string) (*fem.Function, error) {
	return fem.NewFunction(V2, name("orography", nameO)).Interpolate(c.OrographyExpression(x, y, z))
}

func name(def string, nameO []string) string {
	if len(nameO) > 0 {
		return nameO[0]
	}
	return def
}
