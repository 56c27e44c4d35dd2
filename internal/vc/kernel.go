package vc

import "github.com/walteros-labs/maxclique/internal/graphcore"

// subgraphUpdate rebuilds a kernel over the vertices of sg not marked
// removed, renumbering local indices densely. Shared by the Buss kernel and
// the NT kernel, which both need to collapse a removed-vertex mask into a
// fresh, compact adjacency representation.
func subgraphUpdate(sg *graphcore.Subgraph, removed []bool, numRemoved int) *graphcore.Subgraph {
	n := sg.N
	kernel := &graphcore.Subgraph{N: n - numRemoved}
	kernel.Vertices = make([]graphcore.Vertex, kernel.N)
	kernel.AdjLists = make([][]int, kernel.N)

	mask := make([]int, n)
	count := 0
	for i := 0; i < n; i++ {
		v := sg.Vertices[i]
		if removed[v.Pos] {
			continue
		}
		kernel.Vertices[count] = graphcore.Vertex{V: v.V, Degree: 0, Pos: count}
		kernel.AdjLists[count] = make([]int, 0, v.Degree)
		mask[v.Pos] = count
		count++
	}

	largestDegree := 0
	for i := 0; i < n; i++ {
		v := sg.Vertices[i]
		if removed[v.Pos] {
			continue
		}
		dst := mask[v.Pos]
		for _, nb := range sg.AdjLists[v.Pos] {
			if removed[nb] {
				continue
			}
			kernel.AdjLists[dst] = append(kernel.AdjLists[dst], mask[nb])
			kernel.Vertices[dst].Degree++
		}
		kernel.M += kernel.Vertices[dst].Degree
		if kernel.Vertices[dst].Degree > largestDegree {
			largestDegree = kernel.Vertices[dst].Degree
			kernel.LargestDegreeVertex = dst
		}
	}
	kernel.M /= 2
	kernel.MarkCreated()
	return kernel
}
