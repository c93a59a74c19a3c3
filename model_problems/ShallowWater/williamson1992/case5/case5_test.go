package case5

import (
	"math"
	"testing"

	"github.com/notargets/swbench/expr"
	"github.com/notargets/swbench/fem"
	"github.com/notargets/swbench/model_problems/ShallowWater/williamson1992/case2"
	"github.com/notargets/swbench/planets/earth"
	"github.com/notargets/swbench/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// fromLonLat places a point on the Earth's surface
func fromLonLat(lambda, theta float64) r3.Vec {
	return r3.Vec{
		X: earth.Radius * math.Cos(theta) * math.Cos(lambda),
		Y: earth.Radius * math.Cos(theta) * math.Sin(lambda),
		Z: earth.Radius * math.Sin(theta),
	}
}

func TestConstants(t *testing.T) {
	c := New()
	assert.Equal(t, 5960., c.H0)
	assert.Equal(t, 20., c.URef)
	assert.Equal(t, Mountain{Radius: math.Pi / 9, Height: 2000, ThetaC: math.Pi / 6, LambdaC: -math.Pi / 2}, c.Mountain)
	assert.Equal(t, c, NewForPlanet(earth.Default(), units.SI()))
}

func TestFlowMatchesCase2(t *testing.T) {
	var (
		c       = New()
		flow    = case2.New().WithURef(U0)
		x, y, z = expr.X, expr.Y, expr.Z
	)
	for _, lon := range []float64{-3, -1.2, 0, 0.4, 2.9} {
		for _, lat := range []float64{-1.5, -0.3, 0, 0.7, 1.5} {
			p := fromLonLat(lon, lat)
			assert.Equal(t, flow.CoriolisExpression(x, y, z).At(p), c.CoriolisExpression(x, y, z).At(p))
			v := c.VelocityExpression(x, y, z).At(p)
			assert.Equal(t, flow.VelocityExpression(x, y, z).At(p), v)
			assert.InDelta(t, 0., r3.Dot(v, p)/earth.Radius, 1.e-9)
			f := c.CoriolisExpression(x, y, z)
			assert.Equal(t, f(p.X, p.Y, p.Z), -f(p.X, p.Y, -p.Z))
		}
	}
	// The velocity override reaches the delegated flow
	v := c.WithURef(0).VelocityExpression(x, y, z).At(fromLonLat(0.3, 0.2))
	assert.Equal(t, r3.Vec{}, v)
}

func TestMountain(t *testing.T) {
	var (
		c       = New()
		x, y, z = expr.X, expr.Y, expr.Z
		h       = c.DepthExpression(x, y, z)
	)
	{ // Peak height at the centre
		p := fromLonLat(MountainCentreLambda, MountainCentreTheta)
		assert.InDelta(t, MountainHeight, h.At(p), 1.e-9)
		// Centre placed exactly on the point's own coordinates
		m := c.Mountain
		m.LambdaC = math.Atan2(p.Y/earth.Radius, p.X/earth.Radius)
		m.ThetaC = math.Asin(p.Z / earth.Radius)
		assert.Equal(t, MountainHeight, c.WithMountain(m).DepthExpression(x, y, z).At(p))
	}
	{ // Nothing outside the base
		for _, ll := range [][2]float64{
			{MountainCentreLambda + 1.01*MountainRadius, MountainCentreTheta},
			{MountainCentreLambda, MountainCentreTheta - 1.01*MountainRadius},
			{MountainCentreLambda + math.Pi, -MountainCentreTheta},
			{0, 0}, {1, 1.5}, {-2, -1},
		} {
			assert.Equal(t, 0., h.At(fromLonLat(ll[0], ll[1])), "lon=%v lat=%v", ll[0], ll[1])
		}
	}
	{ // Exactly one base radius from the centre
		p := fromLonLat(MountainCentreLambda, MountainCentreTheta+MountainRadius)
		assert.InDelta(t, 0., h.At(p), 1.e-9)
		// Radius chosen as the point's own angular offset from the centre
		var (
			R      = earth.Radius
			lambda = math.Atan2((1/R)*p.Y, (1/R)*p.X)
			theta  = math.Asin((1 / R) * p.Z)
			m      = c.Mountain
		)
		m.LambdaC, m.ThetaC = lambda, theta-0.3
		m.Radius = theta - m.ThetaC
		assert.Equal(t, 0., c.WithMountain(m).DepthExpression(x, y, z).At(p))
		m.Radius *= 1.01
		assert.Greater(t, c.WithMountain(m).DepthExpression(x, y, z).At(p), 0.)
	}
	{ // Linear in angular distance
		for _, frac := range []float64{0.25, 0.5, 0.75} {
			p := fromLonLat(MountainCentreLambda, MountainCentreTheta+frac*MountainRadius)
			assert.InDelta(t, MountainHeight*(1-frac), h.At(p), 1.e-6)
			d := frac * MountainRadius / math.Sqrt2
			p = fromLonLat(MountainCentreLambda+d, MountainCentreTheta-d)
			assert.InDelta(t, MountainHeight*(1-frac), h.At(p), 1.e-6)
		}
	}
	// The depth is the orography itself, H0 is not applied
	p := fromLonLat(0.5, -0.5)
	assert.Equal(t, c.OrographyExpression(x, y, z).At(p), h.At(p))
	assert.Equal(t, 0., h.At(p))
}

func TestOverrides(t *testing.T) {
	var (
		base    = New()
		m       = Mountain{Radius: 0.5, Height: 300, ThetaC: 0.1, LambdaC: 1.0}
		c       = base.WithMountain(m)
		x, y, z = expr.X, expr.Y, expr.Z
	)
	assert.Equal(t, DefaultMountain(), base.Mountain)
	h := c.DepthExpression(x, y, z)
	for _, ll := range [][2]float64{{1, 0.1}, {1.2, 0.2}, {0.8, -0.1}, {3, 1}} {
		p := fromLonLat(ll[0], ll[1])
		lambda := math.Atan2(p.Y/earth.Radius, p.X/earth.Radius)
		theta := math.Asin(p.Z / earth.Radius)
		d2 := math.Min(m.Radius*m.Radius, (lambda-m.LambdaC)*(lambda-m.LambdaC)+(theta-m.ThetaC)*(theta-m.ThetaC))
		assert.InDelta(t, m.Height*(1-math.Sqrt(d2)/m.Radius), h.At(p), 1.e-9)
	}
	// Base case unaffected by the override
	assert.InDelta(t, MountainHeight,
		base.DepthExpression(x, y, z).At(fromLonLat(MountainCentreLambda, MountainCentreTheta)), 1.e-9)
}

func TestFunctions(t *testing.T) {
	c := New()
	globe, err := earth.IcosahedralMesh(3, 1, nil, nil, nil)
	require.NoError(t, err)
	x, y, z := globe.SpatialCoordinate()
	V, err := fem.NewFunctionSpace(globe, fem.CG, 1)
	require.NoError(t, err)
	V1, err := fem.NewVectorFunctionSpace(globe, fem.CG, 1)
	require.NoError(t, err)

	h, err := c.DepthFunction(x, y, z, V)
	require.NoError(t, err)
	assert.Equal(t, "depth", h.Name)
	b, err := c.OrographyFunction(x, y, z, V, "b")
	require.NoError(t, err)
	assert.Equal(t, "b", b.Name)
	assert.Equal(t, h.Data, b.Data)
	var peak float64
	for i := range V.Nodes {
		v := h.Value(i)
		assert.GreaterOrEqual(t, v, 0.)
		assert.LessOrEqual(t, v, MountainHeight)
		peak = math.Max(peak, v)
	}
	assert.Greater(t, peak, 0.)

	f, err := c.CoriolisFunction(x, y, z, V)
	require.NoError(t, err)
	assert.Equal(t, "coriolis", f.Name)
	u, err := c.VelocityFunction(x, y, z, V1, "u")
	require.NoError(t, err)
	assert.Equal(t, "u", u.Name)
	for i, p := range V1.Nodes {
		want := c.VelocityExpression(x, y, z).At(p)
		assert.InDelta(t, 0., r3.Norm(r3.Sub(want, u.VectorValue(i))), 1.e-8*U0)
	}
}
