// Package clique implements the binary-search clique driver: it narrows
// cliqueLB/cliqueUB by dispatching, for each candidate target size, a
// striped pool of workers that ask the vertex-cover oracle whether some
// vertex's complement-subgraph admits a small enough cover.
package clique

import (
	"sync"
	"sync/atomic"

	"github.com/walteros-labs/maxclique/internal/graphcore"
	"github.com/walteros-labs/maxclique/internal/vc"
)

// FindMaxClique returns ω(G), given a Graph that has already been through
// DegeneracyOrdering (so CliqueLB/CliqueUB and every subgraphs[v].Vertices
// are populated) and the matching per-vertex Subgraph slice. numThreads is
// clamped to at least 1.
//
// One level of worker parallelism per binary-search round, a shared atomic
// "found" flag, lazy per-vertex subgraph construction.
func FindMaxClique(g *graphcore.Graph, subgraphs []*graphcore.Subgraph, numThreads int) int {
	if numThreads < 1 {
		numThreads = 1
	}

	cliqueLB, cliqueUB := g.CliqueLB, g.CliqueUB
	if cliqueLB >= cliqueUB {
		return cliqueUB
	}

	sortedList := sortByDescendingRightDegree(g)

	target := cliqueUB
	for cliqueLB < cliqueUB {
		if dispatchRound(g, subgraphs, sortedList, numThreads, target) {
			cliqueLB = target
		} else {
			cliqueUB = target - 1
		}
		target = ceilAvg(cliqueLB, cliqueUB)
	}
	return cliqueUB
}

// sortByDescendingRightDegree bucket-sorts vertex indices by descending
// rightDegree, ties broken by ascending vertex index: candidates more
// likely to host the clique (larger right-neighborhoods) are tried first.
func sortByDescendingRightDegree(g *graphcore.Graph) []int {
	n := g.N
	sortedList := make([]int, n)
	buckets := make([]int, g.D+1)

	for v := 0; v < n; v++ {
		buckets[g.RightDegree[v]]++
	}
	count := 0
	for k := g.D; k >= 0; k-- {
		temp := buckets[k]
		buckets[k] = count
		count += temp
	}
	for v := 0; v < n; v++ {
		sortedList[buckets[g.RightDegree[v]]] = v
		buckets[g.RightDegree[v]]++
	}
	return sortedList
}

// dispatchRound spawns numThreads workers striping over sortedList,
// coordinated through a single atomic "found" flag with relaxed-load /
// release-store semantics: any worker observing or producing a "yes" short
// circuits the rest of the round.
func dispatchRound(g *graphcore.Graph, subgraphs []*graphcore.Subgraph, sortedList []int, numThreads, target int) bool {
	var found atomic.Bool
	var wg sync.WaitGroup
	wg.Add(numThreads)

	for t := 0; t < numThreads; t++ {
		go func(start int) {
			defer wg.Done()
			for i := start; i < g.N; i += numThreads {
				if found.Load() {
					return
				}
				v := sortedList[i]
				k := g.RightDegree[v] + 1 - target
				if k < 0 {
					// Roots are sorted by descending rightDegree; nothing
					// further on this worker's stripe can satisfy target.
					return
				}

				sg := subgraphs[v]
				if !sg.Created() {
					g.BuildSubgraph(sg)
				}
				if vc.Decide(sg, k) {
					found.Store(true)
					return
				}
			}
		}(t)
	}

	wg.Wait()
	return found.Load()
}

func ceilAvg(a, b int) int {
	return (a + b + 1) / 2
}
