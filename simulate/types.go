// Package simulate answers "what if" questions about a topology: it derives
// a modified graph snapshot from edge drops and weight overrides, re-runs
// the shortest-path engine on both the original and the derived graph, and
// reports the latency delta.
//
// Semantics:
//
//   - Drops remove every edge matching an endpoint pair (ordered for
//     directed graphs, unordered for undirected ones).
//   - Overrides replace the weight of every existing edge matching a pair;
//     an override naming a pair with no edge is a no-op — overrides never
//     insert edges.
//   - Drop takes precedence: a pair that is both dropped and overridden is
//     absent from the derived graph regardless of argument order.
//   - The caller's graph is never mutated; the derived graph is a fresh
//     core.Graph value.
//
// The original path must resolve (its absence is dijkstra.ErrNoPath). The
// modified path vanishing is a valid, reportable outcome — Result.Modified
// is nil — distinct from an error.
package simulate

import (
	"errors"

	"github.com/pathwise/gt/dijkstra"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to Simulate.
var ErrNilGraph = errors.New("simulate: graph is nil")

// Override replaces the weight of the existing edge(s) between From and To.
type Override[N comparable] struct {
	From   N
	To     N
	Weight float64
}

// Drop removes the edge(s) between From and To.
type Drop[N comparable] struct {
	From N
	To   N
}

// Result reports the effect of a simulation on a source→target route.
type Result[N comparable] struct {
	// Original is the shortest path on the unmodified graph.
	Original dijkstra.PathResult[N]

	// Modified is the shortest path on the derived graph, or nil when the
	// route no longer exists after the modifications.
	Modified *dijkstra.PathResult[N]

	// LatencyChange is Modified.TotalWeight - Original.TotalWeight.
	// Meaningful only when Modified is non-nil; zero otherwise.
	LatencyChange float64
}
