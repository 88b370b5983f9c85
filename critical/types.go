// Package critical detects the critical components of an undirected graph:
// bridges (edges whose removal increases the number of connected components)
// and articulation points (nodes whose removal does the same).
//
// A single depth-first pass assigns each node a discovery index and a
// low-link value — the smallest discovery index reachable from the node's
// subtree using at most one back edge. A tree edge (parent, child) is a
// bridge iff low[child] > disc[parent]. A non-root node u is an articulation
// point iff some DFS child v has low[v] >= disc[u]; the root of a DFS tree
// is one iff it has more than one DFS child. Disconnected graphs are
// handled by running the pass as a forest over every component.
//
// The traversal uses an explicit frame stack rather than call recursion, so
// path-shaped graphs of any size cannot overflow the goroutine stack, and it
// distinguishes parallel edges by edge index: only the specific edge used to
// enter a node is excluded from back-edge consideration, so a duplicated
// edge to the parent correctly cancels a would-be bridge.
//
// Complexity: O(V + E) time, O(V) space.
package critical

import (
	"errors"

	"github.com/pathwise/gt/core"
)

// Sentinel errors returned by FindCritical.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("critical: graph is nil")

	// ErrDirectedGraph indicates that a directed graph was passed; bridge
	// and articulation analysis is defined over undirected graphs only.
	ErrDirectedGraph = errors.New("critical: analysis requires an undirected graph")
)

// Result lists the critical components of a graph in deterministic order.
type Result[N comparable] struct {
	// Bridges are the critical edges, in edge input order.
	Bridges []core.Edge[N]

	// ArticulationPoints are the critical nodes, in node input order.
	ArticulationPoints []N
}
