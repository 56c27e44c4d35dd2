package vc

import (
	"sort"

	"github.com/walteros-labs/maxclique/internal/graphcore"
)

// degreePreprocessing applies degree-based reductions to a fixed point
// over the first n vertices of vertices/adjLists: degree > newK forces
// membership in the cover; degree 0 removes the vertex for free; degree 1
// removes the vertex and puts its one neighbor in the cover (newK - 1);
// degree == 2 either removes a triangle
// outright or performs vertex folding. degDecrease tracks degree erosion
// without rewriting adjacency lists on every step.
//
// vertices and adjLists are mutated in place (folding splices neighbor
// lists); both are owned exclusively by this VC oracle invocation.
func degreePreprocessing(n, k int, vertices []graphcore.Vertex, adjLists [][]int) (newK int, kernel *graphcore.Subgraph, result int) {
	numRemoved := 0
	removed := make([]bool, n)
	degDecrease := make([]int, n)
	newK = k

	change := true
	for change && n-numRemoved > newK && newK >= 0 {
		change = false

		for idx := 0; idx < n && newK >= 0; idx++ {
			v := vertices[idx]
			if removed[v.Pos] {
				continue
			}
			residual := v.Degree - degDecrease[v.Pos]

			if residual > newK {
				removed[v.Pos] = true
				numRemoved++
				newK--
				change = true
				decrementNeighbors(adjLists[v.Pos], removed, degDecrease)
				continue
			}

			if residual <= 1 {
				removed[v.Pos] = true
				numRemoved++
				if residual == 1 {
					newK--
					change = true
					neighbor := firstLive(adjLists[v.Pos], removed)
					removed[neighbor] = true
					numRemoved++
					decrementNeighbors(adjLists[neighbor], removed, degDecrease)
				}
				continue
			}

			if residual == 2 {
				change = true
				i1 := firstLiveIndexFrom(adjLists[v.Pos], removed, 0)
				i2 := firstLiveIndexFrom(adjLists[v.Pos], removed, i1+1)
				n1, n2 := adjLists[v.Pos][i1], adjLists[v.Pos][i2]

				var adjacent bool
				d1 := vertices[n1].Degree - degDecrease[n1]
				d2 := vertices[n2].Degree - degDecrease[n2]
				if d1 <= d2 {
					adjacent = containsSorted(adjLists[n1], n2)
				} else {
					adjacent = containsSorted(adjLists[n2], n1)
				}

				removed[n1] = true
				removed[n2] = true

				if adjacent {
					removed[v.Pos] = true
					newK -= 2
					numRemoved += 3
					decrementNeighbors(adjLists[n1], removed, degDecrease)
					decrementNeighbors(adjLists[n2], removed, degDecrease)
				} else {
					foldVertex(v.Pos, n1, n2, vertices, adjLists, removed, degDecrease)
					newK--
					numRemoved += 2
				}
			}
		}
	}

	if n-numRemoved <= newK {
		return newK, nil, 1
	}
	if newK <= 0 {
		return newK, nil, -1
	}

	kernel = subgraphUpdateRaw(n, vertices, adjLists, removed, degDecrease)
	if kernel.M > k*newK {
		return newK, kernel, -1
	}
	return newK, kernel, 0
}

func decrementNeighbors(adj []int, removed []bool, degDecrease []int) {
	for _, u := range adj {
		if !removed[u] {
			degDecrease[u]++
		}
	}
}

func firstLive(adj []int, removed []bool) int {
	for _, u := range adj {
		if !removed[u] {
			return u
		}
	}
	panic("vc: degree accounting invariant violated: no live neighbor found")
}

func firstLiveIndexFrom(adj []int, removed []bool, from int) int {
	for i := from; i < len(adj); i++ {
		if !removed[adj[i]] {
			return i
		}
	}
	panic("vc: degree accounting invariant violated: no live neighbor found")
}

func containsSorted(adj []int, want int) bool {
	i := sort.SearchInts(adj, want)
	return i < len(adj) && adj[i] == want
}

// foldVertex implements vertex folding: v (degree 2, neighbors a and b, a
// and b not adjacent) is reused as the folded vertex v'; its neighbor list
// becomes N(a) ∪ N(b) \ {v}, merge-walked since both lists are sorted, with
// v' spliced back into each such neighbor's own sorted list.
func foldVertex(v, a, b int, vertices []graphcore.Vertex, adjLists [][]int, removed []bool, degDecrease []int) {
	degDecrease[v] += 2
	merged := make([]int, 0, vertices[a].Degree+vertices[b].Degree)

	i, j := 0, 0
	listA, listB := adjLists[a], adjLists[b]
	splice := func(u int) {
		pos := sort.SearchInts(adjLists[u], v)
		adjLists[u] = insertAt(adjLists[u], pos, v)
		merged = append(merged, u)
		degDecrease[v]--
	}

	for i < len(listA) && j < len(listB) {
		ca, cb := listA[i], listB[j]
		liveA := !removed[ca] && vertices[ca].V != vertices[v].V
		liveB := !removed[cb] && vertices[cb].V != vertices[v].V
		switch {
		case !liveA:
			i++
		case !liveB:
			j++
		case ca < cb:
			splice(ca)
			i++
		case cb < ca:
			splice(cb)
			j++
		default:
			splice(ca)
			degDecrease[ca]++
			i++
			j++
		}
	}
	for ; i < len(listA); i++ {
		ca := listA[i]
		if !removed[ca] && vertices[ca].V != vertices[v].V {
			splice(ca)
		}
	}
	for ; j < len(listB); j++ {
		cb := listB[j]
		if !removed[cb] && vertices[cb].V != vertices[v].V {
			splice(cb)
		}
	}

	adjLists[v] = merged
}

func insertAt(s []int, pos, x int) []int {
	s = append(s, 0)
	copy(s[pos+1:], s[pos:])
	s[pos] = x
	return s
}

// subgraphUpdateRaw is subgraphUpdate's counterpart for the raw
// vertices/adjLists form used mid-reduction, before a graphcore.Subgraph
// wrapper exists.
func subgraphUpdateRaw(n int, vertices []graphcore.Vertex, adjLists [][]int, removed []bool, degDecrease []int) *graphcore.Subgraph {
	mask := make([]int, n)
	kernel := &graphcore.Subgraph{}
	for i := 0; i < n; i++ {
		v := vertices[i]
		if removed[v.Pos] {
			continue
		}
		mask[v.Pos] = kernel.N
		kernel.Vertices = append(kernel.Vertices, graphcore.Vertex{
			V:      v.V,
			Degree: 0,
			Pos:    kernel.N,
		})
		kernel.AdjLists = append(kernel.AdjLists, make([]int, 0, v.Degree-degDecrease[i]))
		kernel.N++
	}

	largestDegree := 0
	for i := 0; i < n; i++ {
		v := vertices[i]
		if removed[v.Pos] {
			continue
		}
		dst := mask[v.Pos]
		for _, u := range adjLists[v.Pos] {
			if removed[u] {
				continue
			}
			kernel.AdjLists[dst] = append(kernel.AdjLists[dst], mask[u])
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
