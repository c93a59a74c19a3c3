package mesh

import (
	"github.com/notargets/swbench/expr"
	"gonum.org/v1/gonum/spatial/r3"
)

// InitCellOrientations compares each cell's vertex order normal with the
// orientation field evaluated at the cell centroid. For a sphere, passing the
// spatial coordinate selects the outward normal.
func (m *Mesh) InitCellOrientations(orientation expr.Vector) {
	m.CellOrientations = make([]int, m.NumCells())
	for c := range m.EToV {
		if r3.Dot(m.vertexOrderNormal(c), orientation.At(m.CellCentroid(c))) < 0 {
			m.CellOrientations[c] = 1
		}
	}
}

// CellNormal is the unit normal of cell c, flipped to agree with the cell
// orientations when they have been initialised
func (m *Mesh) CellNormal(c int) (n r3.Vec) {
	n = r3.Unit(m.vertexOrderNormal(c))
	if m.CellOrientations != nil && m.CellOrientations[c] == 1 {
		n = r3.Scale(-1, n)
	}
	return
}

func (m *Mesh) vertexOrderNormal(c int) r3.Vec {
	v := m.CellVertices(c)
	return r3.Cross(r3.Sub(v[1], v[0]), r3.Sub(v[2], v[0]))
}
