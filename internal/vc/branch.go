package vc

import "github.com/walteros-labs/maxclique/internal/graphcore"

// kVertexCover decides vertex cover of size k over the n-vertex kernel
// (vertices/adjLists). Each loop iteration first applies the degree
// reductions of degreePreprocessing; on the residual kernel it then
// branches on the largest-degree vertex a:
//
//	Branch 1 — a ∈ VC: recurse with a removed, k-1.
//	Branch 2 — N(a) ⊆ VC: recurse with {a} ∪ N(a) removed, k-deg(a).
//
// Branch 1 is genuine recursion; its depth is bounded by O(k) because k
// strictly decreases at every level. Branch 2 is in tail position and is
// implemented as a loop rather than a second recursive call, keeping the
// stack O(k)-deep instead of O(n)-deep.
func kVertexCover(n, k int, vertices []graphcore.Vertex, adjLists [][]int) bool {
	for {
		newK, kernel, result := degreePreprocessing(n, k, vertices, adjLists)
		switch result {
		case -1:
			return false
		case 1:
			return true
		}

		a := kernel.LargestDegreeVertex

		upVertices, upAdj := excludeVertex(kernel, a)
		if kVertexCover(kernel.N-1, newK-1, upVertices, upAdj) {
			return true
		}

		downVertices, downAdj := excludeClosedNeighborhood(kernel, a)
		aDegree := kernel.Vertices[a].Degree

		n = kernel.N - 1 - aDegree
		k = newK - aDegree
		vertices = downVertices
		adjLists = downAdj
	}
}

// excludeVertex builds the kernel with vertex a (and its incident edges)
// removed, renumbering local indices above a down by one.
func excludeVertex(kernel *graphcore.Subgraph, a int) ([]graphcore.Vertex, [][]int) {
	n := kernel.N
	vertices := make([]graphcore.Vertex, n-1)
	adjLists := make([][]int, n-1)

	count := 0
	for i := 0; i < n; i++ {
		if i == a {
			continue
		}
		v := kernel.Vertices[i]
		adj := make([]int, 0, v.Degree)
		degree := 0
		for _, u := range kernel.AdjLists[i] {
			switch {
			case u < a:
				adj = append(adj, u)
				degree++
			case u > a:
				adj = append(adj, u-1)
				degree++
			}
		}
		vertices[count] = graphcore.Vertex{V: v.V, Pos: count, Degree: degree}
		adjLists[count] = adj
		count++
	}
	return vertices, adjLists
}

// excludeClosedNeighborhood builds the kernel with a and all of a's
// neighbors removed.
func excludeClosedNeighborhood(kernel *graphcore.Subgraph, a int) ([]graphcore.Vertex, [][]int) {
	n := kernel.N
	removed := make([]bool, n)
	removed[a] = true
	for _, u := range kernel.AdjLists[a] {
		removed[u] = true
	}

	mask := make([]int, n)
	count := 0
	for i := 0; i < n; i++ {
		if removed[i] {
			continue
		}
		mask[i] = count
		count++
	}

	vertices := make([]graphcore.Vertex, count)
	adjLists := make([][]int, count)
	for i := 0; i < n; i++ {
		if removed[i] {
			continue
		}
		v := kernel.Vertices[i]
		dst := mask[i]
		adj := make([]int, 0, v.Degree)
		degree := 0
		for _, u := range kernel.AdjLists[i] {
			if removed[u] {
				continue
			}
			adj = append(adj, mask[u])
			degree++
		}
		vertices[dst] = graphcore.Vertex{V: v.V, Pos: dst, Degree: degree}
		adjLists[dst] = adj
	}
	return vertices, adjLists
}
