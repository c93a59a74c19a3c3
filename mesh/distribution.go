package mesh

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r3"
)

type OverlapType uint8

const (
	OverlapNone   OverlapType = iota
	OverlapFacet              // Halo grows across shared edges
	OverlapVertex             // Halo grows across shared vertices
)

func (o OverlapType) String() string {
	return [...]string{"none", "facet", "vertex"}[o]
}

var OverlapNameMap = map[string]OverlapType{
	"none":   OverlapNone,
	"facet":  OverlapFacet,
	"vertex": OverlapVertex,
}

// DistributionParameters controls how cells are split across the ranks of the
// mesh communicator and how deep each rank's halo is
type DistributionParameters struct {
	Partition    bool
	OverlapType  OverlapType
	OverlapDepth int
}

func DefaultDistributionParameters() DistributionParameters {
	return DistributionParameters{
		Partition:    true,
		OverlapType:  OverlapFacet,
		OverlapDepth: 1,
	}
}

func (dp DistributionParameters) Validate() error {
	if dp.OverlapType > OverlapVertex {
		return fmt.Errorf("unknown overlap type %d", dp.OverlapType)
	}
	if dp.OverlapDepth < 0 {
		return fmt.Errorf("overlap depth must be non-negative, have %d", dp.OverlapDepth)
	}
	return nil
}

// Comm is the communicator handle a mesh is distributed over
type Comm interface {
	Rank() int
	Size() int
}

type localComm struct {
	rank, size int
}

func (c localComm) Rank() int { return c.rank }
func (c localComm) Size() int { return c.size }

// CommWorld is the single process communicator
var CommWorld Comm = localComm{rank: 0, size: 1}

// NewLocalComm describes one rank of an in-process communicator of the given
// size. All ranks see the whole mesh, partitioning only assigns ownership.
func NewLocalComm(rank, size int) (Comm, error) {
	if size < 1 {
		return nil, fmt.Errorf("communicator size must be at least 1, have %d", size)
	}
	if rank < 0 || rank >= size {
		return nil, fmt.Errorf("rank %d out of range for communicator of size %d", rank, size)
	}
	return localComm{rank: rank, size: size}, nil
}

// distribute assigns every cell an owning rank
func (m *Mesh) distribute() (err error) {
	var (
		nparts = m.Comm.Size()
		cells  = make([]int, m.NumCells())
	)
	m.EToP = make([]int, m.NumCells())
	if nparts == 1 || !m.Distribution.Partition {
		return
	}
	if nparts > m.NumCells() {
		return fmt.Errorf("cannot partition %d cells over %d ranks", m.NumCells(), nparts)
	}
	centroids := make([]r3.Vec, m.NumCells())
	for c := range cells {
		cells[c] = c
		centroids[c] = m.CellCentroid(c)
	}
	bisect(cells, centroids, 0, nparts, m.EToP)

	counts := make([]int, nparts)
	for _, p := range m.EToP {
		counts[p]++
	}
	logrus.WithFields(logrus.Fields{
		"parts":        nparts,
		"cellsPerRank": counts,
		"overlap":      m.Distribution.OverlapType.String(),
		"depth":        m.Distribution.OverlapDepth,
	}).Debug("partitioned mesh")
	return
}

// bisect recursively splits cells along the widest coordinate extent, giving
// each side a share of cells proportional to its share of the parts
func bisect(cells []int, centroids []r3.Vec, firstPart, nparts int, owner []int) {
	if len(cells) == 0 {
		return
	}
	if nparts == 1 {
		for _, c := range cells {
			owner[c] = firstPart
		}
		return
	}
	var (
		lo, hi = centroids[cells[0]], centroids[cells[0]]
	)
	for _, c := range cells {
		p := centroids[c]
		lo = r3.Vec{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
		hi = r3.Vec{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
	}
	ext := r3.Sub(hi, lo)
	coord := func(p r3.Vec) float64 { return p.X }
	switch {
	case ext.Y >= ext.X && ext.Y >= ext.Z:
		coord = func(p r3.Vec) float64 { return p.Y }
	case ext.Z >= ext.X && ext.Z >= ext.Y:
		coord = func(p r3.Vec) float64 { return p.Z }
	}
	sort.SliceStable(cells, func(i, j int) bool {
		return coord(centroids[cells[i]]) < coord(centroids[cells[j]])
	})
	leftParts := nparts / 2
	split := len(cells) * leftParts / nparts
	bisect(cells[:split], centroids, firstPart, leftParts, owner)
	bisect(cells[split:], centroids, firstPart+leftParts, nparts-leftParts, owner)
}

// OwnedCells lists the cells owned by rank
func (m *Mesh) OwnedCells(rank int) (cells []int) {
	for c, p := range m.EToP {
		if p == rank {
			cells = append(cells, c)
		}
	}
	return
}

// HaloCells lists the cells not owned by rank that lie within the overlap
// depth of its owned cells
func (m *Mesh) HaloCells(rank int) (cells []int) {
	var (
		dp      = m.Distribution
		inSet   = make(map[int]bool)
		front   = m.OwnedCells(rank)
		touches = m.cellNeighbours(dp.OverlapType)
	)
	if dp.OverlapType == OverlapNone || dp.OverlapDepth == 0 {
		return
	}
	for _, c := range front {
		inSet[c] = true
	}
	for depth := 0; depth < dp.OverlapDepth; depth++ {
		var next []int
		for _, c := range front {
			for _, nb := range touches[c] {
				if !inSet[nb] {
					inSet[nb] = true
					next = append(next, nb)
					cells = append(cells, nb)
				}
			}
		}
		front = next
	}
	sort.Ints(cells)
	return
}

// cellNeighbours lists the cells sharing an edge, or a vertex, with each cell
func (m *Mesh) cellNeighbours(ot OverlapType) (nbrs [][]int) {
	var (
		shared = make(map[int][]int)
	)
	nbrs = make([][]int, m.NumCells())
	if ot == OverlapNone {
		return
	}
	for c := range m.EToV {
		if ot == OverlapFacet {
			for _, e := range m.EToE[c] {
				shared[e] = append(shared[e], c)
			}
		} else {
			for _, v := range m.EToV[c] {
				shared[v] = append(shared[v], c)
			}
		}
	}
	for c := range m.EToV {
		seen := map[int]bool{c: true}
		keys := m.EToE[c][:]
		if ot == OverlapVertex {
			keys = m.EToV[c][:]
		}
		for _, k := range keys {
			for _, nb := range shared[k] {
				if !seen[nb] {
					seen[nb] = true
					nbrs[c] = append(nbrs[c], nb)
				}
			}
		}
	}
	return
}
