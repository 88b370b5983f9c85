package mst

import (
	"sort"

	"github.com/pathwise/gt/core"
)

// Kruskal computes the minimum spanning tree of an undirected weighted
// graph, or the minimum spanning forest when the graph is disconnected.
//
// Steps:
//  1. Validate: graph non-nil and undirected.
//  2. Index every edge by its canonical endpoint pair (min,max of the dense
//     indices) for the tie-break key.
//  3. Sort ascending by weight, then by canonical pair, so equal-weight
//     edges are taken in a reproducible order.
//  4. Sweep the sorted edges over a union-find arena, accepting an edge iff
//     its endpoints lie in different components; stop once Order-1 edges are
//     accepted or input is exhausted.
//
// Fewer than Order-1 accepted edges means the graph was disconnected; the
// forest is returned with Connected == false rather than as an error, since
// callers decide whether a forest is acceptable.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) space.
func Kruskal[N comparable](g *core.Graph[N]) (Result[N], error) {
	// 1) Validate.
	if g == nil {
		return Result[N]{}, ErrNilGraph
	}
	if g.Directed() {
		return Result[N]{}, ErrDirectedGraph
	}

	n := g.Order()
	res := Result[N]{Algorithm: AlgorithmKruskal, Connected: true}

	// A graph with fewer than two nodes has a trivial (empty) tree.
	if n <= 1 {
		return res, nil
	}

	// 2) Attach the canonical index pair to each edge.
	type keyed struct {
		e    core.Edge[N]
		u, v int // canonical: u < v
	}
	edges := make([]keyed, 0, g.Size())
	for _, e := range g.Edges() {
		u, _ := g.IndexOf(e.From)
		v, _ := g.IndexOf(e.To)
		if u > v {
			u, v = v, u
		}
		edges = append(edges, keyed{e: e, u: u, v: v})
	}

	// 3) Sort by (weight, u, v); stable so parallel edges keep input order.
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].e.Weight != edges[j].e.Weight {
			return edges[i].e.Weight < edges[j].e.Weight
		}
		if edges[i].u != edges[j].u {
			return edges[i].u < edges[j].u
		}

		return edges[i].v < edges[j].v
	})

	// 4) Sweep with union-find; a successful union admits the edge.
	ds := newDisjointSet(n)
	for _, k := range edges {
		if !ds.union(k.u, k.v) {
			continue
		}
		res.Edges = append(res.Edges, k.e)
		res.TotalWeight += k.e.Weight
		if len(res.Edges) == n-1 {
			break
		}
	}

	// 5) A short count marks the result as a forest, not a tree.
	if len(res.Edges) < n-1 {
		res.Connected = false
	}

	return res, nil
}
