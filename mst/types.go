// Package mst builds minimum spanning trees of undirected weighted graphs
// with Kruskal's algorithm over a union-find (disjoint-set) arena.
//
// Edges are sorted ascending by weight with a deterministic secondary key
// (the canonical endpoint index pair), so the output is reproducible for a
// fixed input. On a disconnected graph the result is a minimum spanning
// forest: Kruskal still returns it, with Result.Connected == false so it is
// never mistaken for a full tree.
//
// Complexity: O(E log E) for the sort plus near-constant amortized
// union-find operations; memory O(V + E).
package mst

import (
	"errors"

	"github.com/pathwise/gt/core"
)

// Sentinel errors returned by Kruskal.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrDirectedGraph indicates that a directed graph was passed; spanning
	// trees are defined over undirected graphs only.
	ErrDirectedGraph = errors.New("mst: minimum spanning tree requires an undirected graph")
)

// AlgorithmKruskal names the algorithm recorded in Result.Algorithm.
const AlgorithmKruskal = "kruskal"

// Result describes a minimum spanning tree (or forest) of a graph.
type Result[N comparable] struct {
	// Algorithm identifies how the result was produced.
	Algorithm string

	// Edges are the selected edges in acceptance order.
	Edges []core.Edge[N]

	// TotalWeight is the sum of the selected edge weights.
	TotalWeight float64

	// Connected is true when the edges span all nodes as a single tree
	// (len(Edges) == Order-1). False means the graph was disconnected and
	// the result is a minimum spanning forest.
	Connected bool
}
