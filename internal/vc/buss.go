package vc

import "github.com/walteros-labs/maxclique/internal/graphcore"

// bussKernel implements the Buss kernelization: repeatedly remove vertices
// whose residual degree exceeds k minus the number already forced into the
// cover (such a vertex must be in any cover of the remaining size), then
// remove any vertex left isolated by that removal.
//
// Returns result -1 (no VC), 1 (yes, VC ≤ k), or 0 (kernel built, continue),
// plus the kernel itself and the count of vertices forced into the cover.
func bussKernel(sg *graphcore.Subgraph, k int) (kernel *graphcore.Subgraph, highDeg int, result int) {
	n := sg.N
	removed := make([]bool, n)
	degDecrease := make([]int, n)
	numRemoved := 0

	change := true
	for change && highDeg <= k {
		change = false
		for _, v := range sg.Vertices {
			if highDeg > k {
				break
			}
			if removed[v.Pos] {
				continue
			}
			residual := v.Degree - degDecrease[v.Pos]
			if residual > k-highDeg {
				removed[v.Pos] = true
				highDeg++
				numRemoved++
				change = true
				decrementNeighbors(sg.AdjLists[v.Pos], removed, degDecrease)
			}
		}
	}

	if highDeg > k {
		return nil, highDeg, -1
	}
	if highDeg == 0 {
		return sg, highDeg, 0
	}

	for _, v := range sg.Vertices {
		if removed[v.Pos] {
			continue
		}
		if v.Degree-degDecrease[v.Pos] == 0 {
			removed[v.Pos] = true
			numRemoved++
		}
	}

	kernel = subgraphUpdate(sg, removed, numRemoved)

	if kernel.N <= k-highDeg {
		return kernel, highDeg, 1
	}
	if kernel.M > k*(k-highDeg) {
		return kernel, highDeg, -1
	}
	return kernel, highDeg, 0
}
