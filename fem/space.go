// Package fem provides named fields over Lagrange function spaces on a sphere
// mesh, filled by interpolation or L2 projection of expressions.
package fem

import (
	"fmt"
	"strings"

	"github.com/notargets/swbench/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

type Family uint8

const (
	CG Family = iota // Continuous Lagrange
	DG               // Discontinuous Lagrange
)

func (f Family) String() string {
	return [...]string{"CG", "DG"}[f]
}

var FamilyNameMap = map[string]Family{
	"cg":                     CG,
	"lagrange":               CG,
	"dg":                     DG,
	"discontinuous lagrange": DG,
}

func NewFamily(label string) (f Family, err error) {
	var ok bool
	if f, ok = FamilyNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown element family %q", label)
	}
	return
}

type FunctionSpace struct {
	Mesh      *mesh.Mesh
	Family    Family
	Degree    int
	ValueSize int      // 1 for scalar spaces, 3 for vector spaces
	Nodes     []r3.Vec // Node coordinates
	CellNodes [][]int  // Cell to node, in reference basis order
}

// NewFunctionSpace builds a scalar space. Supported are CG1, CG2, DG0, DG1.
func NewFunctionSpace(m *mesh.Mesh, family Family, degree int) (V *FunctionSpace, err error) {
	switch {
	case family == CG && (degree == 1 || degree == 2):
	case family == DG && (degree == 0 || degree == 1):
	default:
		err = fmt.Errorf("function space %s%d not supported", family, degree)
		return
	}
	V = &FunctionSpace{
		Mesh:      m,
		Family:    family,
		Degree:    degree,
		ValueSize: 1,
	}
	if family == CG {
		V.buildContinuousNodes()
	} else {
		V.buildDiscontinuousNodes()
	}
	return
}

// NewVectorFunctionSpace builds a space of 3-vectors. Vector fields on a
// surface need a consistent normal, so the mesh cell orientations must have
// been initialised.
func NewVectorFunctionSpace(m *mesh.Mesh, family Family, degree int) (V *FunctionSpace, err error) {
	if m.CellOrientations == nil {
		err = fmt.Errorf("cell orientations not initialised, call InitCellOrientations on the mesh first")
		return
	}
	if V, err = NewFunctionSpace(m, family, degree); err != nil {
		return
	}
	V.ValueSize = 3
	return
}

func (V *FunctionSpace) NumNodes() int { return len(V.Nodes) }

// Dim is the number of degrees of freedom
func (V *FunctionSpace) Dim() int { return V.ValueSize * len(V.Nodes) }

func (V *FunctionSpace) String() string {
	kind := "FunctionSpace"
	if V.ValueSize != 1 {
		kind = "VectorFunctionSpace"
	}
	return fmt.Sprintf("%s(%s%d, %d nodes)", kind, V.Family, V.Degree, V.NumNodes())
}

// cellCoords gathers the coordinate field nodes of cell c
func (V *FunctionSpace) cellCoords(c int) (coords []r3.Vec) {
	m := V.Mesh
	nodes := m.CellCoordinateNodes[c]
	coords = make([]r3.Vec, len(nodes))
	for i, n := range nodes {
		coords[i] = m.CoordinateNodes[n]
	}
	return
}

func (V *FunctionSpace) buildContinuousNodes() {
	var (
		m  = V.Mesh
		nv = m.NumVertices()
	)
	V.CellNodes = make([][]int, m.NumCells())
	if V.Degree == 1 {
		V.Nodes = append([]r3.Vec{}, m.Vertices...)
		for c, tri := range m.EToV {
			V.CellNodes[c] = []int{tri[0], tri[1], tri[2]}
		}
		return
	}
	V.Nodes = make([]r3.Vec, nv+m.NumEdges())
	copy(V.Nodes, m.Vertices)
	ref := referenceNodes[2]
	for c, tri := range m.EToV {
		coords := V.cellCoords(c)
		nodes := []int{tri[0], tri[1], tri[2]}
		for i := 0; i < 3; i++ {
			id := nv + m.EToE[c][i]
			V.Nodes[id], _ = cellMap(coords, m.Degree, ref[3+i][0], ref[3+i][1])
			nodes = append(nodes, id)
		}
		V.CellNodes[c] = nodes
	}
}

func (V *FunctionSpace) buildDiscontinuousNodes() {
	var (
		m   = V.Mesh
		ref = referenceNodes[V.Degree]
		np  = len(ref)
	)
	V.Nodes = make([]r3.Vec, np*m.NumCells())
	V.CellNodes = make([][]int, m.NumCells())
	for c := range m.EToV {
		coords := V.cellCoords(c)
		V.CellNodes[c] = make([]int, np)
		for i, rs := range ref {
			id := c*np + i
			V.Nodes[id], _ = cellMap(coords, m.Degree, rs[0], rs[1])
			V.CellNodes[c][i] = id
		}
	}
}
