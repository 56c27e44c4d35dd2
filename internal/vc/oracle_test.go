package vc

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteros-labs/maxclique/internal/graphcore"
)

// buildSubgraph wraps a plain adjacency list (symmetric, sorted, no
// self-loops) into an already-built graphcore.Subgraph, as the clique
// driver would hand to Decide after a successful BuildSubgraph call.
func buildSubgraph(adj [][]int) *graphcore.Subgraph {
	n := len(adj)
	sg := &graphcore.Subgraph{N: n}
	sg.Vertices = make([]graphcore.Vertex, n)
	sg.AdjLists = make([][]int, n)
	m := 0
	for i, row := range adj {
		sg.Vertices[i] = graphcore.Vertex{V: i, Pos: i, Degree: len(row)}
		sg.AdjLists[i] = row
		m += len(row)
	}
	sg.M = m / 2
	sg.MarkCreated()
	return sg
}

func TestDecideTriangle(t *testing.T) {
	sg := buildSubgraph([][]int{{1, 2}, {0, 2}, {0, 1}})
	assert.False(t, Decide(sg, 1))
	assert.True(t, Decide(sg, 2))
}

func TestDecidePathOfThree(t *testing.T) {
	// 0-1-2: the middle vertex alone covers both edges.
	sg := buildSubgraph([][]int{{1}, {0, 2}, {1}})
	assert.False(t, Decide(sg, 0))
	assert.True(t, Decide(sg, 1))
}

func TestDecideTwoDisjointEdges(t *testing.T) {
	sg := buildSubgraph([][]int{{1}, {0}, {3}, {2}})
	assert.False(t, Decide(sg, 1))
	assert.True(t, Decide(sg, 2))
}

func TestDecideStarGraph(t *testing.T) {
	// center 0 connected to leaves 1..5: a single vertex covers every edge.
	sg := buildSubgraph([][]int{
		{1, 2, 3, 4, 5},
		{0}, {0}, {0}, {0}, {0},
	})
	assert.False(t, Decide(sg, 0))
	assert.True(t, Decide(sg, 1))
}

func TestDecideEmptyGraphNeedsNoCover(t *testing.T) {
	sg := buildSubgraph([][]int{{}, {}, {}})
	assert.True(t, Decide(sg, 0))
}

func TestDecideNegativeKIsAlwaysNo(t *testing.T) {
	sg := buildSubgraph([][]int{{1}, {0}})
	assert.False(t, Decide(sg, -1))
}

// TestDecideC5 exercises vertex folding: a 5-cycle has VC number 3, and no
// degree-2 reduction alone resolves it (every vertex has degree 2 and its
// two neighbors are never adjacent to each other), so it must fall through
// to folding; the folded graph is a triangle, which the remaining degree
// reductions settle.
func TestDecideC5(t *testing.T) {
	sg := buildSubgraph([][]int{
		{1, 4}, {0, 2}, {1, 3}, {2, 4}, {0, 3},
	})
	assert.False(t, Decide(sg, 2))
	assert.True(t, Decide(sg, 3))
}

// TestDecideDoubleStarForcesTwoHighDegreeVertices exercises the Buss kernel
// removing more than one vertex in a single call: two hubs (0 and 6), each
// with five otherwise-independent leaves, bridged by a 0-6 edge. Covering
// every edge needs exactly the two hubs.
func TestDecideDoubleStarForcesTwoHighDegreeVertices(t *testing.T) {
	sg := buildSubgraph([][]int{
		{1, 2, 3, 4, 5, 6},
		{0}, {0}, {0}, {0}, {0},
		{0, 7, 8, 9, 10, 11},
		{6}, {6}, {6}, {6}, {6},
	})
	assert.False(t, Decide(sg, 1))
	assert.True(t, Decide(sg, 2))
}

// bruteForceVC reports whether the graph given by symmetric adjacency
// lists has a vertex cover of size ≤ k, by trying every vertex subset.
func bruteForceVC(adj [][]int, k int) bool {
	n := len(adj)
	for mask := 0; mask < 1<<uint(n); mask++ {
		if bits.OnesCount(uint(mask)) > k {
			continue
		}
		covered := true
		for u := 0; u < n && covered; u++ {
			for _, v := range adj[u] {
				if mask&(1<<uint(u)) == 0 && mask&(1<<uint(v)) == 0 {
					covered = false
					break
				}
			}
		}
		if covered {
			return true
		}
	}
	return false
}

// TestDecideMatchesBruteForce cross-checks the full kernelization and
// branch-and-bound pipeline against exhaustive search on small random
// graphs, over every k from 0 to n.
func TestDecideMatchesBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	for trial := 0; trial < 80; trial++ {
		n := 2 + rnd.Intn(6)
		adj := make([][]int, n)
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if rnd.Float64() < 0.4 {
					adj[u] = append(adj[u], v)
					adj[v] = append(adj[v], u)
				}
			}
		}

		for k := 0; k <= n; k++ {
			got := Decide(buildSubgraph(adj), k)
			want := bruteForceVC(adj, k)
			require.Equal(t, want, got, "trial %d: n=%d k=%d adj=%v", trial, n, k, adj)
		}
	}
}
