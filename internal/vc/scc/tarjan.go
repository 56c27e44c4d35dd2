// Package scc computes strongly connected components of the residual
// bipartite double-cover graph built by the Nemhauser-Trotter kernel.
package scc

import "github.com/soniakeys/bits"

// Result holds a Tarjan SCC decomposition of the 2n-node double cover:
// nodes 0..n-1 are left (G') copies, n..2n-1 are right copies.
type Result struct {
	ComponentMap  []int   // component index per node
	Components    [][]int // member node ids per component, in finish order
	VertexMap     []int   // last component id to claim each base vertex (either copy)
	ToBeRemoved   []bool  // true unless both copies of some vertex share the component
	NumComponents int
}

type frame struct {
	v    int
	next int
}

// Tarjan computes SCCs of D: a forward arc L_u → R_v for every arc (u, v)
// in adj (adj[u] lists u's neighbors within the VC candidate graph),
// and a backward arc R_v → L_{matchR[v]} when v is matched.
//
// The double cover has 2n nodes, too many to trust to goroutine stack
// growth on large inputs, so the usual recursive strongConnect is replaced
// by an explicit stack of (node, next-neighbor-index) frames.
func Tarjan(n int, adj [][]int, matchR []int) Result {
	size := 2 * n
	indices := make([]int, size)
	lowLink := make([]int, size)
	onStack := bits.New(size)
	for i := range indices {
		indices[i] = -1
	}
	componentMap := make([]int, size)
	vertexMap := make([]int, n)
	for i := range vertexMap {
		vertexMap[i] = -1
	}
	var components [][]int
	var toBeRemoved []bool
	var stack []int
	index := 0
	numComponents := 0

	neighbors := func(v int) []int {
		if v < n {
			return adj[v]
		}
		if u := matchR[v-n]; u >= 0 {
			return []int{u}
		}
		return nil
	}
	target := func(v, nb int) int {
		if v < n {
			return nb + n
		}
		return nb
	}

	var callStack []frame
	for start := 0; start < size; start++ {
		if indices[start] != -1 {
			continue
		}

		push := func(v int) {
			indices[v] = index
			lowLink[v] = index
			index++
			stack = append(stack, v)
			onStack.SetBit(v, 1)
			callStack = append(callStack, frame{v: v, next: 0})
		}
		push(start)

		for len(callStack) > 0 {
			top := &callStack[len(callStack)-1]
			nbs := neighbors(top.v)
			if top.next < len(nbs) {
				w := target(top.v, nbs[top.next])
				top.next++
				if indices[w] == -1 {
					push(w)
				} else if onStack.Bit(w) == 1 && lowLink[w] < lowLink[top.v] {
					lowLink[top.v] = lowLink[w]
				}
				continue
			}

			v := top.v
			callStack = callStack[:len(callStack)-1]
			if len(callStack) > 0 {
				parent := &callStack[len(callStack)-1]
				if lowLink[v] < lowLink[parent.v] {
					lowLink[parent.v] = lowLink[v]
				}
			}

			if lowLink[v] == indices[v] {
				var comp []int
				removable := true
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack.SetBit(w, 0)
					componentMap[w] = numComponents
					comp = append(comp, w)

					base := w
					if base >= n {
						base -= n
					}
					if vertexMap[base] == numComponents {
						removable = false
					}
					vertexMap[base] = numComponents

					if w == v {
						break
					}
				}
				components = append(components, comp)
				toBeRemoved = append(toBeRemoved, removable)
				numComponents++
			}
		}
	}

	return Result{
		ComponentMap:  componentMap,
		Components:    components,
		VertexMap:     vertexMap,
		ToBeRemoved:   toBeRemoved,
		NumComponents: numComponents,
	}
}
