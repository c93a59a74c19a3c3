package mesh

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	phi = 0.5 * (1 + math.Sqrt(5))

	icosahedronVertices = []r3.Vec{
		{X: -1, Y: phi}, {X: 1, Y: phi}, {X: -1, Y: -phi}, {X: 1, Y: -phi},
		{Y: -1, Z: phi}, {Y: 1, Z: phi}, {Y: -1, Z: -phi}, {Y: 1, Z: -phi},
		{X: phi, Z: -1}, {X: phi, Z: 1}, {X: -phi, Z: -1}, {X: -phi, Z: 1},
	}
	icosahedronFaces = [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
)

// NewIcosahedralSphereMesh builds a sphere of the given radius by repeatedly
// splitting the faces of an icosahedron into four. A refinement level of n
// gives 20*4^n cells and 10*4^n+2 vertices.
//
// reorder, dp and comm may be nil, selecting reordering on, the default
// distribution parameters, and CommWorld.
func NewIcosahedralSphereMesh(radius float64, refinementLevel, degree int,
	reorder *bool, dp *DistributionParameters, comm Comm) (m *Mesh, err error) {
	var (
		doReorder = true
		dist      = DefaultDistributionParameters()
	)
	if !(radius > 0) {
		err = fmt.Errorf("sphere radius must be positive, have %v", radius)
		return
	}
	if refinementLevel < 0 {
		err = fmt.Errorf("refinement level must be non-negative, have %d", refinementLevel)
		return
	}
	if degree < 1 || degree > 2 {
		err = fmt.Errorf("coordinate degree %d not supported, must be 1 or 2", degree)
		return
	}
	if reorder != nil {
		doReorder = *reorder
	}
	if dp != nil {
		dist = *dp
	}
	if err = dist.Validate(); err != nil {
		return
	}
	if comm == nil {
		comm = CommWorld
	}

	m = &Mesh{
		Radius:       radius,
		Degree:       degree,
		Comm:         comm,
		Distribution: dist,
	}
	m.Vertices = make([]r3.Vec, len(icosahedronVertices))
	for i, v := range icosahedronVertices {
		m.Vertices[i] = onSphere(v, radius)
	}
	m.EToV = make([][3]int, len(icosahedronFaces))
	copy(m.EToV, icosahedronFaces)
	for level := 0; level < refinementLevel; level++ {
		m.refine()
	}
	if doReorder {
		m.reorderVertices()
	}
	m.buildEdges()
	m.buildCoordinateNodes()
	if err = m.distribute(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"radius":     radius,
		"refinement": refinementLevel,
		"degree":     degree,
		"vertices":   m.NumVertices(),
		"cells":      m.NumCells(),
		"reordered":  doReorder,
	}).Debug("built icosahedral sphere mesh")
	return
}

// refine splits every cell into four, new vertices sit on the sphere
func (m *Mesh) refine() {
	var (
		midpoints = make(map[[2]int]int, 3*len(m.EToV)/2)
		cells     = make([][3]int, 0, 4*len(m.EToV))
	)
	midpoint := func(a, b int) int {
		key := edgeKey(a, b)
		if id, ok := midpoints[key]; ok {
			return id
		}
		mid := r3.Scale(0.5, r3.Add(m.Vertices[a], m.Vertices[b]))
		m.Vertices = append(m.Vertices, onSphere(mid, m.Radius))
		id := len(m.Vertices) - 1
		midpoints[key] = id
		return id
	}
	for _, tri := range m.EToV {
		a, b, c := tri[0], tri[1], tri[2]
		ab, bc, ca := midpoint(a, b), midpoint(b, c), midpoint(c, a)
		cells = append(cells,
			[3]int{a, ab, ca},
			[3]int{b, bc, ab},
			[3]int{c, ca, bc},
			[3]int{ab, bc, ca},
		)
	}
	m.EToV = cells
}
