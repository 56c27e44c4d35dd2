// Package vc implements the vertex-cover decision oracle: Buss
// kernelization, Nemhauser-Trotter LP-kernelization (Hopcroft-Karp matching
// + Tarjan SCC peeling), degree-based reductions and vertex folding, and
// branch-and-bound over the largest-residual-degree vertex.
package vc

import "github.com/walteros-labs/maxclique/internal/graphcore"

// Decide answers whether sg — already built, i.e. sg.AdjLists populated —
// admits a vertex cover of size ≤ k. It is sound and complete.
//
// Per-call state (matching arrays, SCC component bookkeeping, the
// degree-reduction scratch arrays) is allocated fresh on every call and
// never shared, so Decide may run concurrently from multiple clique-driver
// workers against different subgraphs.
//
// The Buss kernel runs exactly once, then the NT kernel exactly once over
// Buss's output. Only the branch-and-bound stage (kVertexCover, via
// degreePreprocessing) recurses, and it never re-invokes Buss or NT.
func Decide(sg *graphcore.Subgraph, k int) bool {
	if k < 0 {
		return false
	}

	kernel, highDeg, result := bussKernel(sg, k)
	switch result {
	case -1:
		return false
	case 1:
		return true
	}
	k -= highDeg

	kernel2, _, numInVC, result := ntKernel(kernel, k)
	switch result {
	case -1:
		return false
	case 1:
		return true
	}
	k -= numInVC

	// Both kernels can pass sg through untouched; branch-and-bound mutates
	// its input in place (folding splices adjacency lists), so it must
	// never run directly on the shared, reusable subgraph.
	if kernel2 == sg {
		kernel2 = sg.Clone()
	}
	return kVertexCover(kernel2.N, k, kernel2.Vertices, kernel2.AdjLists)
}
