// Package core defines the canonical in-memory graph model shared by every
// algorithm in gt: a weighted graph over an opaque, comparable node type,
// tagged directed or undirected at construction and immutable afterwards.
//
// A Graph is built exactly once with NewGraph from a node list and an edge
// list. Construction performs exhaustive structural validation (unknown
// endpoints, self-loops, negative or non-finite weights, and — when multi
// edges are disabled — duplicate pairs) and assigns every node a dense
// integer index in input order. Algorithms address nodes through those
// indices and read adjacency as Arc values, so working state can live in
// plain slices instead of maps.
//
// Because a Graph never mutates after NewGraph returns, algorithm calls are
// pure functions of their inputs: independent queries over the same Graph
// are safe to run from any number of goroutines without locking.
//
// Errors:
//
//	ErrDuplicateNode - a node appears more than once in the node list.
//	ErrUnknownNode   - an edge endpoint is absent from the node set.
//	ErrSelfLoop      - an edge connects a node to itself.
//	ErrInvalidWeight - an edge weight is negative, NaN, or infinite.
//	ErrDuplicateEdge - a parallel edge when multi-edges are disabled.
//	ErrNodeNotFound  - a queried node does not exist in the graph.
package core
