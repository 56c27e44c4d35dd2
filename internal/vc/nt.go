package vc

import (
	"github.com/walteros-labs/maxclique/internal/graphcore"
	"github.com/walteros-labs/maxclique/internal/vc/match"
	"github.com/walteros-labs/maxclique/internal/vc/scc"
)

// ntKernel implements the Nemhauser-Trotter LP-kernelization: build the
// bipartite double cover of sg, find a maximum matching (Hopcroft-Karp),
// decompose the induced residual digraph into strongly connected
// components (Tarjan), and peel sink components that are "removable"
// (neither copy of any vertex straddles the component) in reverse
// topological order. The R-side members of a peeled component join the
// cover; its L-side members are simply dropped.
func ntKernel(sg *graphcore.Subgraph, k int) (kernel *graphcore.Subgraph, numRemoved, numInVC int, result int) {
	n := sg.N
	m := match.HopcroftKarp(n, sg.AdjLists)
	comp := scc.Tarjan(n, sg.AdjLists, m.MatchR)

	adjListsComp := make([][]int, comp.NumComponents)
	compOutDegree := make([]int, comp.NumComponents)
	connected := make([]int, comp.NumComponents)
	for i := range connected {
		connected[i] = -1
	}

	for t := 0; t < comp.NumComponents; t++ {
		for _, v := range comp.Components[t] {
			if v < n {
				for _, u := range sg.AdjLists[v] {
					dest := comp.ComponentMap[v]
					src := comp.ComponentMap[u+n]
					if src == dest {
						continue
					}
					if connected[src] != dest {
						adjListsComp[src] = append(adjListsComp[src], dest)
						compOutDegree[dest]++
						connected[src] = dest
					}
				}
			} else {
				if u := m.MatchR[v-n]; u >= 0 {
					dest := comp.ComponentMap[v]
					src := comp.ComponentMap[u]
					if src == dest {
						continue
					}
					if connected[src] != dest {
						adjListsComp[src] = append(adjListsComp[src], dest)
						compOutDegree[dest]++
						connected[src] = dest
					}
				}
			}
		}
	}

	removed := make([]bool, n)
	compRemoved := make([]bool, comp.NumComponents)

	update := true
	for update {
		update = false
		for p := 0; p < comp.NumComponents; p++ {
			if compRemoved[p] || compOutDegree[p] != 0 || !comp.ToBeRemoved[p] {
				continue
			}
			compRemoved[p] = true

			members := comp.Components[p]
			if len(members) == 1 && !removed[members[0]%n] {
				base := members[0] % n
				removed[base] = true
				numRemoved++
			} else {
				for _, v := range members {
					base := v % n
					if removed[base] {
						continue
					}
					removed[base] = true
					numRemoved++
					if v >= n {
						numInVC++
					}
				}
			}

			for _, affected := range adjListsComp[p] {
				compOutDegree[affected]--
			}
			update = true
		}
	}

	if numInVC > k {
		return nil, numRemoved, numInVC, -1
	}
	if numRemoved == 0 {
		return sg, numRemoved, numInVC, 0
	}
	if n-numRemoved <= k-numInVC {
		return nil, numRemoved, numInVC, 1
	}

	kernel = subgraphUpdate(sg, removed, numRemoved)
	if kernel.M > k*(k-numInVC) {
		return kernel, numRemoved, numInVC, -1
	}
	return kernel, numRemoved, numInVC, 0
}
