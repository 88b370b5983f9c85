// This file implements NewGraph (single-pass construction with exhaustive
// validation) and the read-only accessors algorithms rely on.

package core

import (
	"errors"
	"fmt"
	"math"
)

// Graph is an immutable weighted graph over node type N.
//
// Nodes are held in an arena indexed densely in input order; edges are held
// in input order; adjacency is precomputed as Arc slices per node. All
// accessors are read-only and safe for concurrent use.
type Graph[N comparable] struct {
	kind  Kind
	nodes []N       // dense index → node
	index map[N]int // node → dense index
	edges []Edge[N] // input order
	adj   [][]Arc   // dense index → outgoing (and, if undirected, incident) arcs
}

// NewGraph constructs a Graph from a node list and an edge list in a single
// pass over each, validating structure before any adjacency is built.
//
// Validation, per edge and in order: endpoints must exist in the node set
// (ErrUnknownNode), self-loops are rejected (ErrSelfLoop), weights must be
// finite and non-negative (ErrInvalidWeight), and — with WithoutMultiEdges —
// duplicate pairs are rejected (ErrDuplicateEdge). Validation is exhaustive:
// every offending edge is inspected and all violations are joined into the
// returned error, each carrying the edge that caused it. errors.Is matches
// the individual sentinels against the joined error.
//
// Complexity: O(V + E) time, O(V + E) space.
func NewGraph[N comparable](kind Kind, nodes []N, edges []Edge[N], opts ...Option) (*Graph[N], error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph[N]{
		kind:  kind,
		nodes: make([]N, 0, len(nodes)),
		index: make(map[N]int, len(nodes)),
		edges: make([]Edge[N], 0, len(edges)),
		adj:   make([][]Arc, len(nodes)),
	}

	var violations []error

	// 1) Register nodes, assigning dense indices in input order.
	for _, n := range nodes {
		if _, dup := g.index[n]; dup {
			violations = append(violations, fmt.Errorf("%w: %v", ErrDuplicateNode, n))
			continue
		}
		g.index[n] = len(g.nodes)
		g.nodes = append(g.nodes, n)
	}

	// 2) Validate every edge; do not stop at the first violation.
	seen := make(map[[2]int]struct{}, len(edges))
	for _, e := range edges {
		u, okFrom := g.index[e.From]
		if !okFrom {
			violations = append(violations, fmt.Errorf("%w: edge %v→%v references %v", ErrUnknownNode, e.From, e.To, e.From))
			continue
		}
		v, okTo := g.index[e.To]
		if !okTo {
			violations = append(violations, fmt.Errorf("%w: edge %v→%v references %v", ErrUnknownNode, e.From, e.To, e.To))
			continue
		}
		if u == v {
			violations = append(violations, fmt.Errorf("%w: node %v", ErrSelfLoop, e.From))
			continue
		}
		if e.Weight < 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			violations = append(violations, fmt.Errorf("%w: edge %v→%v weight=%v", ErrInvalidWeight, e.From, e.To, e.Weight))
			continue
		}
		if cfg.rejectMulti {
			key := pairKey(kind, u, v)
			if _, dup := seen[key]; dup {
				violations = append(violations, fmt.Errorf("%w: %v↔%v", ErrDuplicateEdge, e.From, e.To))
				continue
			}
			seen[key] = struct{}{}
		}

		// 3) Record the edge and its adjacency arcs.
		idx := len(g.edges)
		g.edges = append(g.edges, e)
		g.adj[u] = append(g.adj[u], Arc{To: v, Weight: e.Weight, EdgeIndex: idx})
		if kind == Undirected {
			g.adj[v] = append(g.adj[v], Arc{To: u, Weight: e.Weight, EdgeIndex: idx})
		}
	}

	if len(violations) > 0 {
		return nil, errors.Join(violations...)
	}

	return g, nil
}

// pairKey canonicalizes an endpoint index pair: ordered for directed graphs,
// unordered (min,max) for undirected ones.
func pairKey(kind Kind, u, v int) [2]int {
	if kind == Undirected && u > v {
		return [2]int{v, u}
	}

	return [2]int{u, v}
}

// Kind reports whether the graph was built Directed or Undirected.
// Complexity: O(1)
func (g *Graph[N]) Kind() Kind { return g.kind }

// Directed reports Kind() == Directed.
// Complexity: O(1)
func (g *Graph[N]) Directed() bool { return g.kind == Directed }

// Order returns the number of nodes.
// Complexity: O(1)
func (g *Graph[N]) Order() int { return len(g.nodes) }

// Size returns the number of stored edges. Undirected edges count once.
// Complexity: O(1)
func (g *Graph[N]) Size() int { return len(g.edges) }

// HasNode reports whether n exists in the node set.
// Complexity: O(1)
func (g *Graph[N]) HasNode(n N) bool {
	_, ok := g.index[n]

	return ok
}

// IndexOf returns the dense index assigned to n at construction time.
// Complexity: O(1)
func (g *Graph[N]) IndexOf(n N) (int, bool) {
	i, ok := g.index[n]

	return i, ok
}

// NodeAt returns the node holding dense index i. i must be in [0, Order()).
// Complexity: O(1)
func (g *Graph[N]) NodeAt(i int) N { return g.nodes[i] }

// Nodes returns a copy of the node list in input (dense-index) order.
// Complexity: O(V)
func (g *Graph[N]) Nodes() []N {
	out := make([]N, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a copy of the edge list in input order.
// Complexity: O(E)
func (g *Graph[N]) Edges() []Edge[N] {
	out := make([]Edge[N], len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeAt returns the edge holding index i in Edges() order.
// Complexity: O(1)
func (g *Graph[N]) EdgeAt(i int) Edge[N] { return g.edges[i] }

// Arcs returns the adjacency arcs out of the node with dense index i, in
// edge input order. The returned slice is the graph's internal storage and
// must be treated as read-only.
// Complexity: O(1)
func (g *Graph[N]) Arcs(i int) []Arc { return g.adj[i] }

// Neighbors returns the edges traversable out of n, each re-oriented so
// From == n. Returns ErrNodeNotFound if n is absent.
// Complexity: O(deg(n))
func (g *Graph[N]) Neighbors(n N) ([]Edge[N], error) {
	i, ok := g.index[n]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, n)
	}

	out := make([]Edge[N], 0, len(g.adj[i]))
	for _, a := range g.adj[i] {
		out = append(out, Edge[N]{From: n, To: g.nodes[a.To], Weight: a.Weight})
	}

	return out, nil
}
