package graphcore

import "sync/atomic"

// Vertex names a local slot in a Subgraph: its global label in G, its
// residual degree within the subgraph, and its own position in the
// subgraph's vertex slice. Entries never carry back-pointers into Graph, so
// a Subgraph remains independently readable from any goroutine once built.
type Vertex struct {
	V      int // global vertex label
	Degree int // degree within this subgraph
	Pos    int // local index (== index into the owning Subgraph.Vertices)
}

// Subgraph is Sᵥ: the complement of the graph induced on {v} ∪ N⁺(v), the
// closed right-neighborhood of v under the degeneracy ordering. Vertex 0 is
// always v itself. It doubles as the shape of a VC kernel once AdjLists has
// been rebuilt over a reduced local index space.
type Subgraph struct {
	N                   int
	M                   int
	Vertices            []Vertex
	AdjLists            [][]int
	LargestDegreeVertex int

	// created is published with release-store semantics: workers must only
	// read AdjLists after observing Created() == true.
	created atomic.Bool
}

// Created reports whether AdjLists has been fully populated.
func (s *Subgraph) Created() bool { return s.created.Load() }

// MarkCreated publishes AdjLists. Callers must finish every write to
// AdjLists before calling this.
func (s *Subgraph) MarkCreated() { s.created.Store(true) }

// NewSubgraphs allocates one empty Subgraph per vertex of g, to be
// populated by DegeneracyOrdering and later filled in lazily by the
// subgraph builder.
func NewSubgraphs(n int) []*Subgraph {
	out := make([]*Subgraph, n)
	for i := range out {
		out[i] = &Subgraph{}
	}
	return out
}

// Clone deep-copies a Subgraph's vertex and adjacency data. Used by the VC
// oracle to hand branch-and-bound a private kernel it can mutate in place.
func (s *Subgraph) Clone() *Subgraph {
	c := &Subgraph{N: s.N, M: s.M, LargestDegreeVertex: s.LargestDegreeVertex}
	c.Vertices = make([]Vertex, len(s.Vertices))
	copy(c.Vertices, s.Vertices)
	c.AdjLists = make([][]int, len(s.AdjLists))
	for i, nb := range s.AdjLists {
		cp := make([]int, len(nb))
		copy(cp, nb)
		c.AdjLists[i] = cp
	}
	if s.Created() {
		c.MarkCreated()
	}
	return c
}
