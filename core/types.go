// This file declares Kind, Edge, Arc, sentinel errors, and the construction
// options understood by NewGraph.

package core

import "errors"

// Sentinel errors for graph construction and lookup.
var (
	// ErrDuplicateNode indicates a node identifier occurs twice in the node list.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrUnknownNode indicates an edge endpoint absent from the node set.
	ErrUnknownNode = errors.New("core: edge endpoint not in node set")

	// ErrSelfLoop indicates an edge whose source equals its destination.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrInvalidWeight indicates a negative, NaN, or infinite edge weight.
	ErrInvalidWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrDuplicateEdge indicates a parallel edge between the same endpoint
	// pair when the graph was built with WithoutMultiEdges.
	ErrDuplicateEdge = errors.New("core: duplicate edge between endpoints")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Kind selects the interpretation of edge endpoint order for a whole Graph.
type Kind int

const (
	// Undirected treats every edge as an unordered pair, traversable from
	// either endpoint. The edge is stored once.
	Undirected Kind = iota

	// Directed treats every edge as an ordered pair From→To.
	Directed
)

// String returns "undirected" or "directed".
func (k Kind) String() string {
	if k == Directed {
		return "directed"
	}

	return "undirected"
}

// Edge is a weighted connection between two nodes.
//
// For a Directed graph the pair is ordered From→To; for an Undirected graph
// the orientation is storage order only and carries no meaning.
type Edge[N comparable] struct {
	// From is the source endpoint (first endpoint for undirected graphs).
	From N

	// To is the destination endpoint (second endpoint for undirected graphs).
	To N

	// Weight is the non-negative, finite cost of traversing the edge.
	Weight float64
}

// Arc is one adjacency entry: a traversal step out of a node, expressed in
// dense indices. Undirected edges produce an Arc at both endpoints that
// reference the same underlying edge via EdgeIndex, which is how algorithms
// distinguish "the edge I arrived by" from a parallel edge between the same
// endpoints.
type Arc struct {
	// To is the dense index of the neighboring node.
	To int

	// Weight is the weight of the underlying edge.
	Weight float64

	// EdgeIndex is the position of the underlying edge in Edges().
	EdgeIndex int
}

// Option configures validation behavior of NewGraph.
type Option func(*config)

type config struct {
	rejectMulti bool
}

// WithoutMultiEdges rejects parallel edges between the same endpoint pair
// (unordered pair for undirected graphs) with ErrDuplicateEdge. By default
// parallel edges are permitted; shortest-path relaxation implicitly prefers
// the cheapest of them.
func WithoutMultiEdges() Option {
	return func(c *config) { c.rejectMulti = true }
}
