package fem

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/notargets/swbench/expr"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	cgTolerance = 1.e-12
)

// Project sets the field to the L2 projection of the expression, solving
// M u = b with the mass matrix of the space
func (f *Function) Project(e expr.Scalar) (*Function, error) {
	if err := f.checkValueSize(1); err != nil {
		return nil, err
	}
	return f, f.project([]expr.Scalar{e})
}

// ProjectVector projects each Cartesian component separately
func (f *Function) ProjectVector(e expr.Vector) (*Function, error) {
	if err := f.checkValueSize(3); err != nil {
		return nil, err
	}
	comps := []expr.Scalar{expr.Component(e, 0), expr.Component(e, 1), expr.Component(e, 2)}
	return f, f.project(comps)
}

func (f *Function) project(comps []expr.Scalar) (err error) {
	var (
		V     = f.Space
		nn    = V.NumNodes()
		vs    = V.ValueSize
		loads = make([][]float64, len(comps))
	)
	for k := range loads {
		loads[k] = make([]float64, nn)
	}
	M := sparse.NewDOK(nn, nn)
	for c, nodes := range V.CellNodes {
		coords := V.cellCoords(c)
		for q, rs := range quadrature.Points {
			x, detJ := cellMap(coords, V.Mesh.Degree, rs[0], rs[1])
			phi, _ := lagrange(V.Degree, rs[0], rs[1])
			w := 0.5 * quadrature.Weights[q] * detJ
			for i, ni := range nodes {
				for j, nj := range nodes {
					M.Set(ni, nj, M.At(ni, nj)+w*phi[i]*phi[j])
				}
				for k, e := range comps {
					loads[k][ni] += w * phi[i] * e.At(x)
				}
			}
		}
	}
	for k, b := range loads {
		var u []float64
		if V.Family == DG {
			u, err = solveBlockDiagonal(M, V.CellNodes, b)
		} else {
			u, err = solveCG(M.ToCSR(), b)
		}
		if err != nil {
			return fmt.Errorf("projecting %q: %w", f.Name, err)
		}
		for i, val := range u {
			f.Data[vs*i+k] = val
		}
	}
	return
}

// solveBlockDiagonal solves a discontinuous mass matrix cell by cell
func solveBlockDiagonal(M *sparse.DOK, cellNodes [][]int, b []float64) (u []float64, err error) {
	u = make([]float64, len(b))
	for c, nodes := range cellNodes {
		np := len(nodes)
		A := mat.NewSymDense(np, nil)
		rhs := mat.NewVecDense(np, nil)
		for i, ni := range nodes {
			for j := i; j < np; j++ {
				A.SetSym(i, j, M.At(ni, nodes[j]))
			}
			rhs.SetVec(i, b[ni])
		}
		var (
			chol mat.Cholesky
			x    mat.VecDense
		)
		if ok := chol.Factorize(A); !ok {
			return nil, fmt.Errorf("mass matrix of cell %d is not positive definite", c)
		}
		if err = chol.SolveVecTo(&x, rhs); err != nil {
			return nil, err
		}
		for i, ni := range nodes {
			u[ni] = x.AtVec(i)
		}
	}
	return
}

// solveCG is a Jacobi preconditioned conjugate gradient solve of the SPD
// system A u = b
func solveCG(A *sparse.CSR, b []float64) (u []float64, err error) {
	var (
		raw   = A.RawMatrix()
		n     = len(b)
		r     = make([]float64, n)
		z     = make([]float64, n)
		p     = make([]float64, n)
		Ap    = make([]float64, n)
		dinv  = make([]float64, n)
		bnorm = floats.Norm(b, 2)
	)
	u = make([]float64, n)
	if bnorm == 0 {
		return
	}
	matVec := func(dst, x []float64) {
		for i := 0; i < raw.I; i++ {
			var sum float64
			for k := raw.Indptr[i]; k < raw.Indptr[i+1]; k++ {
				sum += raw.Data[k] * x[raw.Ind[k]]
			}
			dst[i] = sum
		}
	}
	for i := range dinv {
		dinv[i] = 1. / A.At(i, i)
	}
	copy(r, b)
	floats.MulTo(z, dinv, r)
	copy(p, z)
	rz := floats.Dot(r, z)
	for iter := 0; iter < 10*n; iter++ {
		matVec(Ap, p)
		alpha := rz / floats.Dot(p, Ap)
		floats.AddScaled(u, alpha, p)
		floats.AddScaled(r, -alpha, Ap)
		if res := floats.Norm(r, 2); res <= cgTolerance*bnorm {
			logrus.WithFields(logrus.Fields{
				"iterations": iter + 1,
				"residual":   res / bnorm,
			}).Debug("mass matrix solve converged")
			return
		}
		floats.MulTo(z, dinv, r)
		rzNew := floats.Dot(r, z)
		floats.AddScaledTo(p, z, rzNew/rz, p)
		rz = rzNew
	}
	err = fmt.Errorf("conjugate gradient did not converge in %d iterations", 10*n)
	return
}
