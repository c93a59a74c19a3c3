package mesh

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// reorderVertices renumbers the vertices with reverse Cuthill-McKee to reduce
// the bandwidth of vertex-coupled operators
func (m *Mesh) reorderVertices() {
	perm := reverseCuthillMcKee(m.vertexAdjacency())
	newID := make([]int, len(perm))
	verts := make([]r3.Vec, len(perm))
	for newI, oldI := range perm {
		newID[oldI] = newI
		verts[newI] = m.Vertices[oldI]
	}
	m.Vertices = verts
	for c, tri := range m.EToV {
		m.EToV[c] = [3]int{newID[tri[0]], newID[tri[1]], newID[tri[2]]}
	}
}

// reverseCuthillMcKee returns perm with perm[new] = old
func reverseCuthillMcKee(adj [][]int) (perm []int) {
	var (
		n       = len(adj)
		visited = make([]bool, n)
		byDeg   = make([]int, n)
	)
	for i := range byDeg {
		byDeg[i] = i
	}
	lessDeg := func(a, b int) bool {
		if len(adj[a]) != len(adj[b]) {
			return len(adj[a]) < len(adj[b])
		}
		return a < b
	}
	sort.Slice(byDeg, func(i, j int) bool { return lessDeg(byDeg[i], byDeg[j]) })

	perm = make([]int, 0, n)
	for _, start := range byDeg { // One pass per connected component
		if visited[start] {
			continue
		}
		visited[start] = true
		queue := []int{start}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			perm = append(perm, v)
			var next []int
			for _, w := range adj[v] {
				if !visited[w] {
					visited[w] = true
					next = append(next, w)
				}
			}
			sort.Slice(next, func(i, j int) bool { return lessDeg(next[i], next[j]) })
			queue = append(queue, next...)
		}
	}
	for i, j := 0, len(perm)-1; i < j; i, j = i+1, j-1 {
		perm[i], perm[j] = perm[j], perm[i]
	}
	return
}

// Bandwidth is the largest vertex index distance across an edge
func (m *Mesh) Bandwidth() (bw int) {
	for _, tri := range m.EToV {
		for i := 0; i < 3; i++ {
			d := tri[i] - tri[(i+1)%3]
			if d < 0 {
				d = -d
			}
			if d > bw {
				bw = d
			}
		}
	}
	return
}
