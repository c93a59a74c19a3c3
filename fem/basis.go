package fem

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Reference triangle (r,s) with vertices (0,0), (1,0), (0,1). Barycentrics
// are L0 = 1-r-s, L1 = r, L2 = s. Degree 2 edge nodes follow the vertices,
// edge node i is the midpoint of the edge opposite vertex i.
var referenceNodes = map[int][][2]float64{
	0: {{1. / 3., 1. / 3.}},
	1: {{0, 0}, {1, 0}, {0, 1}},
	2: {{0, 0}, {1, 0}, {0, 1}, {0.5, 0.5}, {0, 0.5}, {0.5, 0}},
}

// Dunavant degree 4 rule, weights sum to one
var quadrature = struct {
	Points  [][2]float64
	Weights []float64
}{
	Points: [][2]float64{
		{0.445948490915965, 0.445948490915965},
		{0.108103018168070, 0.445948490915965},
		{0.445948490915965, 0.108103018168070},
		{0.091576213509771, 0.091576213509771},
		{0.816847572980459, 0.091576213509771},
		{0.091576213509771, 0.816847572980459},
	},
	Weights: []float64{
		0.223381589678011, 0.223381589678011, 0.223381589678011,
		0.109951743655322, 0.109951743655322, 0.109951743655322,
	},
}

func nodesPerCell(degree int) int {
	return len(referenceNodes[degree])
}

// lagrange evaluates the degree 0, 1 or 2 Lagrange basis and its reference
// gradients at (r,s)
func lagrange(degree int, r, s float64) (phi []float64, dphi [][2]float64) {
	var (
		L  = [3]float64{1 - r - s, r, s}
		dL = [3][2]float64{{-1, -1}, {1, 0}, {0, 1}}
	)
	switch degree {
	case 0:
		phi = []float64{1}
		dphi = [][2]float64{{0, 0}}
	case 1:
		phi = L[:]
		dphi = dL[:]
	case 2:
		phi = make([]float64, 6)
		dphi = make([][2]float64, 6)
		for i := 0; i < 3; i++ {
			phi[i] = L[i] * (2*L[i] - 1)
			for d := 0; d < 2; d++ {
				dphi[i][d] = (4*L[i] - 1) * dL[i][d]
			}
			// Edge opposite vertex i joins vertices j and k
			j, k := (i+1)%3, (i+2)%3
			phi[3+i] = 4 * L[j] * L[k]
			for d := 0; d < 2; d++ {
				dphi[3+i][d] = 4 * (L[k]*dL[j][d] + L[j]*dL[k][d])
			}
		}
	default:
		panic(fmt.Errorf("no Lagrange basis of degree %d", degree))
	}
	return
}

// cellMap evaluates the coordinate field of a cell at (r,s), returning the
// point and the surface area scale |dx/dr x dx/ds|
func cellMap(coords []r3.Vec, degree int, r, s float64) (x r3.Vec, detJ float64) {
	var (
		J1, J2    r3.Vec
		phi, dphi = lagrange(degree, r, s)
	)
	for k, X := range coords {
		x = r3.Add(x, r3.Scale(phi[k], X))
		J1 = r3.Add(J1, r3.Scale(dphi[k][0], X))
		J2 = r3.Add(J2, r3.Scale(dphi[k][1], X))
	}
	detJ = r3.Norm(r3.Cross(J1, J2))
	return
}
