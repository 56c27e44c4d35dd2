package scc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteros-labs/maxclique/internal/vc/match"
)

// tarjanFromGraph is the same construction ntKernel uses: run Hopcroft-Karp
// over the bipartite double cover of adj, then Tarjan over the resulting
// residual digraph.
func tarjanFromGraph(n int, adj [][]int) Result {
	m := match.HopcroftKarp(n, adj)
	return Tarjan(n, adj, m.MatchR)
}

func assertPartitionsAllNodes(t *testing.T, n int, res Result) {
	t.Helper()
	require.Equal(t, 2*n, len(res.ComponentMap))

	seen := make([]bool, 2*n)
	total := 0
	for _, comp := range res.Components {
		for _, node := range comp {
			require.False(t, seen[node], "node %d appears in more than one component", node)
			seen[node] = true
			total++
		}
	}
	assert.Equal(t, 2*n, total)
	for node, ok := range seen {
		assert.True(t, ok, "node %d missing from any component", node)
	}
	assert.Equal(t, len(res.Components), res.NumComponents)
	assert.Equal(t, len(res.ToBeRemoved), res.NumComponents)
}

func TestTarjanTriangle(t *testing.T) {
	adj := [][]int{{1, 2}, {0, 2}, {0, 1}}
	res := tarjanFromGraph(3, adj)
	assertPartitionsAllNodes(t, 3, res)
}

func TestTarjanIndependentSetHasNoEdges(t *testing.T) {
	adj := [][]int{{}, {}, {}}
	res := tarjanFromGraph(3, adj)
	assertPartitionsAllNodes(t, 3, res)
	// Every node is isolated in the residual digraph, so each is its own
	// singleton, removable component.
	assert.Equal(t, 6, res.NumComponents)
	for _, removable := range res.ToBeRemoved {
		assert.True(t, removable)
	}
}

func TestTarjanPath(t *testing.T) {
	adj := [][]int{{1}, {0, 2}, {1}}
	res := tarjanFromGraph(3, adj)
	assertPartitionsAllNodes(t, 3, res)
}
