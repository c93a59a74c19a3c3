package mesh

import (
	"github.com/golang/geo/s2"
	"github.com/notargets/swbench/expr"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is a triangulated sphere surface embedded in 3D
type Mesh struct {
	Radius float64
	Degree int // Polynomial degree of the coordinate field, 1 or 2

	// Geometry
	Vertices []r3.Vec // Vertex coordinates, all at distance Radius from the origin

	// Connectivity
	EToV  [][3]int // Cell to vertex, counter-clockwise seen from outside
	Edges [][2]int // Unique edges, vertex pairs sorted ascending
	EToE  [][3]int // Cell to edge, local edge i is opposite local vertex i

	// Coordinate field. For Degree 1 these are the vertices, for Degree 2 the
	// edge midpoints (pushed to the sphere) follow the vertices.
	CoordinateNodes     []r3.Vec
	CellCoordinateNodes [][]int

	// Distribution
	Comm         Comm
	Distribution DistributionParameters
	EToP         []int // Cell to owning rank

	// CellOrientations is nil until InitCellOrientations has been called. 0
	// means the vertex order normal agrees with the orientation field.
	CellOrientations []int
}

func (m *Mesh) NumVertices() int { return len(m.Vertices) }
func (m *Mesh) NumCells() int    { return len(m.EToV) }
func (m *Mesh) NumEdges() int    { return len(m.Edges) }

// SpatialCoordinate returns the coordinate components as expressions
func (m *Mesh) SpatialCoordinate() (x, y, z expr.Scalar) {
	return expr.X, expr.Y, expr.Z
}

// CellVertices returns the three vertex coordinates of cell c
func (m *Mesh) CellVertices(c int) (v [3]r3.Vec) {
	for i, vid := range m.EToV[c] {
		v[i] = m.Vertices[vid]
	}
	return
}

// CellCentroid is the centroid of the flat triangle spanned by the vertices
func (m *Mesh) CellCentroid(c int) r3.Vec {
	v := m.CellVertices(c)
	return r3.Scale(1./3., r3.Add(r3.Add(v[0], v[1]), v[2]))
}

// SphericalArea sums the exact spherical triangle areas of all cells
func (m *Mesh) SphericalArea() (area float64) {
	for c := range m.EToV {
		v := m.CellVertices(c)
		area += s2.PointArea(toS2(v[0]), toS2(v[1]), toS2(v[2]))
	}
	return area * m.Radius * m.Radius
}

func toS2(v r3.Vec) s2.Point {
	return s2.PointFromCoords(v.X, v.Y, v.Z)
}

// buildEdges numbers the unique edges and fills EToE
func (m *Mesh) buildEdges() {
	var (
		edgeMap = make(map[[2]int]int, 3*len(m.EToV)/2)
	)
	m.Edges = m.Edges[:0]
	m.EToE = make([][3]int, len(m.EToV))
	for c, tri := range m.EToV {
		for i := 0; i < 3; i++ {
			key := edgeKey(tri[(i+1)%3], tri[(i+2)%3])
			id, ok := edgeMap[key]
			if !ok {
				id = len(m.Edges)
				edgeMap[key] = id
				m.Edges = append(m.Edges, key)
			}
			m.EToE[c][i] = id
		}
	}
}

// buildCoordinateNodes lays out the coordinate field for the mesh degree
func (m *Mesh) buildCoordinateNodes() {
	nv := len(m.Vertices)
	m.CoordinateNodes = make([]r3.Vec, nv, nv+len(m.Edges))
	copy(m.CoordinateNodes, m.Vertices)
	m.CellCoordinateNodes = make([][]int, len(m.EToV))
	if m.Degree == 2 {
		for _, e := range m.Edges {
			mid := r3.Scale(0.5, r3.Add(m.Vertices[e[0]], m.Vertices[e[1]]))
			m.CoordinateNodes = append(m.CoordinateNodes, onSphere(mid, m.Radius))
		}
	}
	for c, tri := range m.EToV {
		nodes := []int{tri[0], tri[1], tri[2]}
		if m.Degree == 2 {
			for i := 0; i < 3; i++ {
				nodes = append(nodes, nv+m.EToE[c][i])
			}
		}
		m.CellCoordinateNodes[c] = nodes
	}
}

// vertexAdjacency lists the vertex neighbours over the cell edges
func (m *Mesh) vertexAdjacency() (adj [][]int) {
	var (
		seen = make(map[[2]int]bool, 3*len(m.EToV)/2)
	)
	adj = make([][]int, len(m.Vertices))
	for _, tri := range m.EToV {
		for i := 0; i < 3; i++ {
			a, b := tri[i], tri[(i+1)%3]
			key := edgeKey(a, b)
			if seen[key] {
				continue
			}
			seen[key] = true
			adj[a] = append(adj[a], b)
			adj[b] = append(adj[b], a)
		}
	}
	return
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func onSphere(p r3.Vec, radius float64) r3.Vec {
	return r3.Scale(radius/r3.Norm(p), p)
}
