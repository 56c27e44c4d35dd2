// Package match implements Hopcroft-Karp maximum bipartite matching, used
// by the Nemhauser-Trotter kernel to find a maximum matching of the
// bipartite double cover of a vertex-cover candidate graph.
package match

const unmatched = -1

const inf = int(^uint(0) >> 1)

// Result holds a maximum matching: MatchL[u] is the right-side partner of
// left vertex u (or unmatched), MatchR[v] is the left-side partner of right
// vertex v (or unmatched).
type Result struct {
	MatchL []int
	MatchR []int
}

// HopcroftKarp computes a maximum matching of a bipartite graph with n
// vertices on each side. adj[u] lists the right-side neighbors of left
// vertex u. Runs in O(E·√V): each phase BFS-layers the graph by
// alternating-path distance, then augments along a maximal set of
// vertex-disjoint shortest paths.
func HopcroftKarp(n int, adj [][]int) Result {
	matchL := make([]int, n)
	matchR := make([]int, n)
	for i := range matchL {
		matchL[i] = unmatched
		matchR[i] = unmatched
	}

	dist := make([]int, n)
	queue := make([]int, 0, n)

	// bfs layers the left vertices by alternating-path distance from the
	// free ones and reports dMax, the length of the shortest augmenting
	// path this phase (inf when none exists).
	bfs := func() int {
		queue = queue[:0]
		for u := 0; u < n; u++ {
			if matchL[u] == unmatched {
				dist[u] = 0
				queue = append(queue, u)
			} else {
				dist[u] = inf
			}
		}
		dMax := inf
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			if dist[u] >= dMax {
				continue
			}
			for _, v := range adj[u] {
				if matchR[v] == unmatched {
					if dMax == inf {
						dMax = dist[u] + 1
					}
				} else if dist[matchR[v]] == inf {
					dist[matchR[v]] = dist[u] + 1
					queue = append(queue, matchR[v])
				}
			}
		}
		return dMax
	}

	// dfs augments along a shortest path. A free right vertex acts as if
	// at distance dMax, so it is only accepted at the exact frontier layer.
	dMax := inf
	var dfs func(u int) bool
	dfs = func(u int) bool {
		if u == unmatched {
			return true
		}
		for _, v := range adj[u] {
			distK := dMax
			if k := matchR[v]; k != unmatched {
				distK = dist[k]
			}
			if distK == dist[u]+1 && dfs(matchR[v]) {
				matchR[v] = u
				matchL[u] = v
				return true
			}
		}
		dist[u] = inf
		return false
	}

	for dMax = bfs(); dMax != inf; dMax = bfs() {
		for u := 0; u < n; u++ {
			if matchL[u] == unmatched {
				dfs(u)
			}
		}
	}

	return Result{MatchL: matchL, MatchR: matchR}
}
