package graphcore

// BuildSubgraph materializes sg.AdjLists for the Subgraph rooted at global
// vertex v by pairwise adjacency testing: for every unordered pair of
// right-neighbors, consult G via HasEdge, and record a complement edge
// exactly where G has none. Idempotent: a repeated call resets sg.M and the
// vertex degrees and rebuilds the same output. It is not safe to run
// concurrently on the same Subgraph, since those counters are reset and
// incremented in place; the clique driver hands each Sᵥ to one worker per
// round.
func (g *Graph) BuildSubgraph(sg *Subgraph) {
	n := sg.N
	adj := make([][]int, n)
	sg.M = 0
	for i := range sg.Vertices {
		sg.Vertices[i].Degree = 0
	}

	// Pairs are visited with i < j and both loops ascending, so every row
	// receives its local indices in increasing order and stays sorted.
	for i := 1; i < n; i++ {
		for j := i + 1; j < n; j++ {
			x, y := sg.Vertices[i].V, sg.Vertices[j].V
			if !g.HasEdge(x, y) {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
				sg.Vertices[i].Degree++
				sg.Vertices[j].Degree++
				sg.M++
			}
		}
	}

	largest := 0
	largestDegree := 0
	for i := 1; i < n; i++ {
		if sg.Vertices[i].Degree > largestDegree {
			largestDegree = sg.Vertices[i].Degree
			largest = i
		}
	}

	sg.AdjLists = adj
	sg.LargestDegreeVertex = largest
	sg.MarkCreated()
}
