// Package slo evaluates a shortest path against a service-level objective:
// a maximum acceptable total path cost. It is a thin wrapper over the
// dijkstra engine; the comparison is boundary-inclusive, so a path costing
// exactly the objective passes.
//
// The package produces verdicts, never exit codes: callers map Met == false
// and the distinguishable dijkstra.ErrNoPath outcome onto their own
// user-visible semantics.
package slo

import (
	"github.com/pathwise/gt/core"
	"github.com/pathwise/gt/dijkstra"
)

// Result carries the SLO verdict together with the evidence path.
type Result[N comparable] struct {
	// Met is true iff TotalWeight <= MaxLatency.
	Met bool

	// TotalWeight is the measured cost of the shortest path.
	TotalWeight float64

	// MaxLatency is the objective the measurement was compared against.
	MaxLatency float64

	// Path is the shortest path backing the verdict, for display.
	Path dijkstra.PathResult[N]
}

// Check computes the shortest path from source to target and compares its
// total weight against maxLatency (inclusive).
//
// Errors are those of dijkstra.ShortestPath; in particular ErrNoPath is
// propagated untouched so callers can tell "no route" apart from "route too
// slow".
//
// Complexity: O((V + E) log V), dominated by the path search.
func Check[N comparable](g *core.Graph[N], source, target N, maxLatency float64) (Result[N], error) {
	path, err := dijkstra.ShortestPath(g, source, target)
	if err != nil {
		return Result[N]{}, err
	}

	return Result[N]{
		Met:         path.TotalWeight <= maxLatency,
		TotalWeight: path.TotalWeight,
		MaxLatency:  maxLatency,
		Path:        path,
	}, nil
}
