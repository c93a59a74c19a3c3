// Package earth holds the planetary constants used by the Williamson test
// cases and builds icosahedral meshes of the Earth's surface.
package earth

import (
	"github.com/notargets/swbench/expr"
	"github.com/notargets/swbench/mesh"
	"github.com/notargets/swbench/units"
	"gonum.org/v1/gonum/unit"
)

const (
	// Length of a single Earth day
	Day = 24 * units.Hour

	Radius = 6371220 * units.Metre

	// Rotation rate
	Omega = 7.292e-5 / units.Second

	// Gravitational acceleration
	Gravity = 9.80616 * units.Metre / (units.Second * units.Second)
)

// Planet groups the constants of a rotating planet in one unit system
type Planet struct {
	Radius, Omega, Gravity, Day float64
}

func Default() Planet {
	return Planet{
		Radius:  Radius,
		Omega:   Omega,
		Gravity: Gravity,
		Day:     Day,
	}
}

// New expresses the Earth constants in the unit system u
func New(u units.System) Planet {
	return Planet{
		Radius:  6371220 * u.Metre,
		Omega:   7.292e-5 / u.Second,
		Gravity: 9.80616 * u.Metre / (u.Second * u.Second),
		Day:     u.Day(),
	}
}

// Dimensioned returns the constants with their physical dimensions attached,
// assuming the planet is expressed in SI base units
func (p Planet) Dimensioned() map[string]*unit.Unit {
	return map[string]*unit.Unit{
		"radius":  unit.New(p.Radius, unit.Dimensions{unit.LengthDim: 1}),
		"omega":   unit.New(p.Omega, unit.Dimensions{unit.TimeDim: -1}),
		"gravity": unit.New(p.Gravity, unit.Dimensions{unit.LengthDim: 1, unit.TimeDim: -2}),
		"day":     unit.New(p.Day, unit.Dimensions{unit.TimeDim: 1}),
	}
}

// IcosahedralMesh builds a mesh of the planet's surface and initialises the
// cell orientations to point outward. A nil reorder, dp or comm selects the
// mesh package defaults. Mesh construction errors are returned as is.
func (p Planet) IcosahedralMesh(refinementLevel, degree int, reorder *bool,
	dp *mesh.DistributionParameters, comm mesh.Comm) (globe *mesh.Mesh, err error) {
	if globe, err = mesh.NewIcosahedralSphereMesh(p.Radius, refinementLevel, degree,
		reorder, dp, comm); err != nil {
		return
	}
	globe.InitCellOrientations(expr.AsVector(globe.SpatialCoordinate()))
	return
}

// IcosahedralMesh builds a mesh of the Earth with the default constants
func IcosahedralMesh(refinementLevel, degree int, reorder *bool,
	dp *mesh.DistributionParameters, comm mesh.Comm) (*mesh.Mesh, error) {
	return Default().IcosahedralMesh(refinementLevel, degree, reorder, dp, comm)
}
