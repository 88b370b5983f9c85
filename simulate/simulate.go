package simulate

import (
	"errors"
	"fmt"

	"github.com/pathwise/gt/core"
	"github.com/pathwise/gt/dijkstra"
)

// Simulate derives a modified snapshot of g (drops first, then overrides)
// and compares the source→target shortest path before and after.
//
// Every node referenced by a drop or override must exist in g
// (core.ErrUnknownNode otherwise); referencing a missing edge between known
// nodes is a silent no-op for overrides and drops alike. Errors from the
// original-graph search propagate unchanged, including dijkstra.ErrNoPath;
// a vanished modified path is reported via Result.Modified == nil.
//
// Complexity: O(E·(D+O)) to derive the snapshot for D drops and O overrides,
// plus two O((V + E) log V) path searches.
func Simulate[N comparable](g *core.Graph[N], source, target N, overrides []Override[N], drops []Drop[N]) (Result[N], error) {
	var zero Result[N]

	if g == nil {
		return zero, ErrNilGraph
	}

	// 1) Reject specs naming nodes outside the graph before touching edges.
	for _, d := range drops {
		if err := checkEndpoints(g, d.From, d.To); err != nil {
			return zero, err
		}
	}
	for _, o := range overrides {
		if err := checkEndpoints(g, o.From, o.To); err != nil {
			return zero, err
		}
	}

	// 2) Build the derived snapshot; g itself is left untouched.
	derived, err := derive(g, overrides, drops)
	if err != nil {
		return zero, err
	}

	// 3) The baseline route must exist.
	original, err := dijkstra.ShortestPath(g, source, target)
	if err != nil {
		return zero, err
	}

	// 4) On the derived graph, absence of the route is an answer, not an error.
	modified, err := dijkstra.ShortestPath(derived, source, target)
	if err != nil {
		if errors.Is(err, dijkstra.ErrNoPath) {
			return Result[N]{Original: original}, nil
		}

		return zero, err
	}

	return Result[N]{
		Original:      original,
		Modified:      &modified,
		LatencyChange: modified.TotalWeight - original.TotalWeight,
	}, nil
}

func checkEndpoints[N comparable](g *core.Graph[N], from, to N) error {
	if !g.HasNode(from) {
		return fmt.Errorf("%w: %v", core.ErrUnknownNode, from)
	}
	if !g.HasNode(to) {
		return fmt.Errorf("%w: %v", core.ErrUnknownNode, to)
	}

	return nil
}

// derive builds a new graph from g's node set and its edge list with drops
// removed and overrides applied, in that order. Applying drops first is what
// gives drop its precedence over an override of the same pair: the edge is
// gone before overrides are consulted.
func derive[N comparable](g *core.Graph[N], overrides []Override[N], drops []Drop[N]) (*core.Graph[N], error) {
	kind := g.Kind()
	edges := make([]core.Edge[N], 0, g.Size())

	for _, e := range g.Edges() {
		dropped := false
		for _, d := range drops {
			if samePair(kind, e, d.From, d.To) {
				dropped = true
				break
			}
		}
		if dropped {
			continue
		}

		for _, o := range overrides {
			if samePair(kind, e, o.From, o.To) {
				e.Weight = o.Weight
			}
		}
		edges = append(edges, e)
	}

	return core.NewGraph(kind, g.Nodes(), edges)
}

// samePair reports whether edge e connects the pair (from, to): orientation
// matters for directed graphs, not for undirected ones.
func samePair[N comparable](kind core.Kind, e core.Edge[N], from, to N) bool {
	if e.From == from && e.To == to {
		return true
	}

	return kind == core.Undirected && e.From == to && e.To == from
}
