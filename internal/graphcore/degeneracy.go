package graphcore

import (
	"github.com/pkg/errors"
	"github.com/soniakeys/bits"
)

// Degeneracy computes the smallest-last degeneracy ordering only: D,
// Ordering, Position, RightDegree, and the bounds, without touching any
// Subgraph. This is the cheap path used by the "-d" CLI mode, which never
// needs the per-vertex complement subgraphs.
func (g *Graph) Degeneracy() error {
	return g.degeneracyOrdering(nil)
}

// DegeneracyOrdering computes the same ordering as Degeneracy but also
// populates, in the same single pass, each subgraphs[v].Vertices with v in
// slot 0 followed by its right-neighbors in ascending global-label order
// (mirroring the order they appear in v's already-sorted G adjacency list).
// v itself is not placed by label, so slot 0 may exceed slot 1. This is the path
// used by the "-m" CLI mode, since the clique driver needs Sᵥ.Vertices for
// every candidate root.
func (g *Graph) DegeneracyOrdering(subgraphs []*Subgraph) error {
	if len(subgraphs) != g.N {
		return errors.Errorf("graphcore: got %d subgraphs, want %d", len(subgraphs), g.N)
	}
	return g.degeneracyOrdering(subgraphs)
}

// degeneracyOrdering is the Matula-Beck bucket-array technique: buckets
// indexed by current residual degree hold the vertices at that degree;
// removing the minimum-degree vertex and relocating its neighbors one
// bucket down is O(1) amortized per edge. The same pass also populates
// the right-neighbor vertex sets and the clique bounds.
func (g *Graph) degeneracyOrdering(subgraphs []*Subgraph) error {
	n := g.N
	buckets := make([]int, g.DegMax+1)

	g.CliqueLB = 0
	g.D = 0

	for v := 0; v < n; v++ {
		g.RightDegree[v] = g.Degree[v]
		buckets[g.RightDegree[v]]++
	}

	count := 0
	for k := 0; k <= g.DegMax; k++ {
		temp := buckets[k]
		buckets[k] = count
		count += temp
	}
	for v := 0; v < n; v++ {
		g.Position[v] = buckets[g.RightDegree[v]]
		g.Ordering[g.Position[v]] = v
		buckets[g.RightDegree[v]]++
	}
	for k := g.DegMax; k > 0; k-- {
		buckets[k] = buckets[k-1]
	}
	buckets[0] = 0

	dRegular := -1

	for i := 0; i < n; i++ {
		minV := g.Ordering[i]

		if subgraphs != nil {
			sg := subgraphs[minV]
			sg.N = g.RightDegree[minV] + 1
			sg.M = 0
			sg.Vertices = make([]Vertex, 1, sg.N)
			sg.Vertices[0] = Vertex{V: minV, Degree: 0, Pos: 0}
		}

		buckets[g.RightDegree[minV]]++

		if g.RightDegree[minV] > g.D {
			g.D = g.RightDegree[minV]
			if g.RightDegree[g.Ordering[n-1]] == g.D {
				dRegular = i
			}
		}

		if g.CliqueLB == 0 && g.RightDegree[g.Ordering[i]] == n-i-1 {
			g.CliqueLB = g.RightDegree[g.Ordering[i]] + 1
		}

		for _, neighbor := range g.Neighbors(minV) {
			if g.Position[neighbor] <= g.Position[minV] {
				continue
			}

			if subgraphs != nil {
				sg := subgraphs[minV]
				sg.Vertices = append(sg.Vertices, Vertex{V: neighbor, Pos: len(sg.Vertices)})
			}

			rdV := g.RightDegree[minV]
			rdN := g.RightDegree[neighbor]
			if rdN == rdV {
				if neighbor != g.Ordering[buckets[rdV]] {
					pu := buckets[rdV]
					u := g.Ordering[pu]
					g.Ordering[pu] = neighbor
					g.Ordering[g.Position[neighbor]] = u
					g.Position[u] = g.Position[neighbor]
					g.Position[neighbor] = pu
				}
				buckets[rdV-1] = g.Position[minV] + 1
				buckets[rdN]++
				g.RightDegree[neighbor]--
			} else {
				pu := buckets[rdN]
				u := g.Ordering[pu]
				if neighbor != u {
					g.Ordering[pu] = neighbor
					g.Ordering[g.Position[neighbor]] = u
					g.Position[u] = g.Position[neighbor]
					g.Position[neighbor] = pu
				}
				buckets[rdN]++
				g.RightDegree[neighbor]--
			}
		}
	}

	g.CliqueUB = g.D + 1
	if dRegular >= 0 && g.CliqueLB < g.CliqueUB {
		g.refineRegularUB(dRegular)
	}
	return nil
}

// refineRegularUB tightens the upper bound when the d-core is d-regular:
// cliqueUB can then only be achieved by a (d+1)-clique, which must be a
// connected component of size exactly d+1 within the d-core. If no such
// component exists, UB drops to d.
func (g *Graph) refineRegularUB(dRegular int) {
	n := g.N
	discovered := bits.New(n)
	queue := make([]int, n)

	foundClique := false
	for start := dRegular; start < n && !foundClique; start++ {
		root := g.Ordering[start]
		if discovered.Bit(root) == 1 {
			continue
		}
		head, tail := 0, 0
		queue[tail] = root
		tail++
		discovered.SetBit(root, 1)
		count := 1

		for head < tail {
			v := queue[head]
			head++
			for _, nb := range g.Neighbors(v) {
				if g.Position[nb] > dRegular && discovered.Bit(nb) == 0 {
					discovered.SetBit(nb, 1)
					queue[tail] = nb
					tail++
					count++
				}
			}
		}
		if count == g.D+1 {
			foundClique = true
		}
	}
	if !foundClique {
		g.CliqueUB = g.D
	}
}
