// Package dijkstra computes single-pair shortest paths on weighted graphs
// and identifies the bottleneck edge of the resulting path.
//
// The implementation is Dijkstra's algorithm with a min-heap priority queue
// under the "lazy decrease-key" strategy: improved distances push duplicate
// heap entries, and stale entries are discarded when popped. Ties among
// equal tentative distances are broken by insertion order, so for a fixed
// edge iteration order the returned path is deterministic.
//
// Non-negative weights are a construction invariant of core.Graph, so no
// negative-weight scan is repeated here.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) for distance/predecessor arrays and the heap.
//
// Errors (sentinel):
//
//   - ErrNilGraph      if the provided graph pointer is nil.
//   - ErrNodeNotFound  if the source or target node does not exist.
//   - ErrNoPath        if the target is unreachable from the source. This is
//     a normal, expected outcome for disconnected pairs, not a defect; use
//     errors.Is to distinguish it from the input errors above.
package dijkstra

import (
	"errors"

	"github.com/pathwise/gt/core"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the source or target node does not
	// exist in the provided graph.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNoPath indicates that no path exists from source to target.
	ErrNoPath = errors.New("dijkstra: no path between nodes")
)

// PathResult describes a shortest path from From to To.
type PathResult[N comparable] struct {
	// From is the source node of the query.
	From N

	// To is the target node of the query.
	To N

	// Path is the node sequence from From to To, inclusive. A query with
	// From == To yields the single-node path [From].
	Path []N

	// TotalWeight is the sum of the weights of the path's edges.
	TotalWeight float64

	// Bottleneck is the maximum-weight edge along the path, ties broken by
	// first occurrence walking from From. Nil for a single-node path.
	Bottleneck *core.Edge[N]
}
