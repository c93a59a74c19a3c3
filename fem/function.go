package fem

import (
	"fmt"

	"github.com/notargets/swbench/expr"
	"gonum.org/v1/gonum/spatial/r3"
)

// Function is a named discrete field. Data is node major, ValueSize values
// per node.
type Function struct {
	Name  string
	Space *FunctionSpace
	Data  []float64
}

func NewFunction(V *FunctionSpace, name string) *Function {
	return &Function{
		Name:  name,
		Space: V,
		Data:  make([]float64, V.Dim()),
	}
}

// Interpolate sets the field to the expression evaluated at the nodes
func (f *Function) Interpolate(e expr.Scalar) (*Function, error) {
	if err := f.checkValueSize(1); err != nil {
		return nil, err
	}
	for i, p := range f.Space.Nodes {
		f.Data[i] = e.At(p)
	}
	return f, nil
}

func (f *Function) InterpolateVector(e expr.Vector) (*Function, error) {
	if err := f.checkValueSize(3); err != nil {
		return nil, err
	}
	for i, p := range f.Space.Nodes {
		v := e.At(p)
		f.Data[3*i], f.Data[3*i+1], f.Data[3*i+2] = v.X, v.Y, v.Z
	}
	return f, nil
}

// Value is the scalar value at node i
func (f *Function) Value(i int) float64 { return f.Data[i] }

// VectorValue is the vector value at node i
func (f *Function) VectorValue(i int) r3.Vec {
	return r3.Vec{X: f.Data[3*i], Y: f.Data[3*i+1], Z: f.Data[3*i+2]}
}

// ComponentData copies out one component of the field, one value per node
func (f *Function) ComponentData(k int) (data []float64) {
	var (
		vs = f.Space.ValueSize
	)
	data = make([]float64, f.Space.NumNodes())
	for i := range data {
		data[i] = f.Data[vs*i+k]
	}
	return
}

// Integral integrates a scalar field over the mesh surface
func (f *Function) Integral() (sum float64) {
	var (
		V = f.Space
	)
	for c, nodes := range V.CellNodes {
		coords := V.cellCoords(c)
		for q, rs := range quadrature.Points {
			_, detJ := cellMap(coords, V.Mesh.Degree, rs[0], rs[1])
			phi, _ := lagrange(V.Degree, rs[0], rs[1])
			var u float64
			for i, n := range nodes {
				u += phi[i] * f.Data[V.ValueSize*n]
			}
			sum += 0.5 * quadrature.Weights[q] * detJ * u
		}
	}
	return
}

func (f *Function) checkValueSize(n int) error {
	if f.Space.ValueSize != n {
		return fmt.Errorf("function %q has value size %d, expression has value size %d",
			f.Name, f.Space.ValueSize, n)
	}
	return nil
}
