// Package mst_test validates Kruskal's sweep: optimality against a
// brute-force enumeration, forest handling, deterministic tie-breaking, and
// the sentinel error contract.
package mst_test

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwise/gt/core"
	"github.com/pathwise/gt/mst"
)

func buildUndirected(t *testing.T, n int, edges []core.Edge[int]) *core.Graph[int] {
	t.Helper()
	nodes := make([]int, n)
	for i := range nodes {
		nodes[i] = i
	}
	g, err := core.NewGraph(core.Undirected, nodes, edges)
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation and trivial inputs.
// ------------------------------------------------------------------------

func TestKruskal_NilGraph(t *testing.T) {
	_, err := mst.Kruskal[int](nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)
}

func TestKruskal_DirectedGraphRejected(t *testing.T) {
	g, err := core.NewGraph(core.Directed, []int{0, 1},
		[]core.Edge[int]{{From: 0, To: 1, Weight: 1}})
	require.NoError(t, err)

	_, err = mst.Kruskal(g)
	assert.ErrorIs(t, err, mst.ErrDirectedGraph)
}

func TestKruskal_EmptyAndSingleNode(t *testing.T) {
	for _, n := range []int{0, 1} {
		res, err := mst.Kruskal(buildUndirected(t, n, nil))
		require.NoError(t, err)
		assert.True(t, res.Connected)
		assert.Empty(t, res.Edges)
		assert.Zero(t, res.TotalWeight)
		assert.Equal(t, mst.AlgorithmKruskal, res.Algorithm)
	}
}

// ------------------------------------------------------------------------
// 2. Tree correctness.
// ------------------------------------------------------------------------

func TestKruskal_Triangle(t *testing.T) {
	// 0—1 (1), 1—2 (2), 0—2 (3): the tree drops the heaviest edge.
	g := buildUndirected(t, 3, []core.Edge[int]{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 0, To: 2, Weight: 3},
	})

	res, err := mst.Kruskal(g)
	require.NoError(t, err)

	assert.True(t, res.Connected)
	assert.Equal(t, 3.0, res.TotalWeight)
	require.Len(t, res.Edges, 2)
	assert.Equal(t, core.Edge[int]{From: 0, To: 1, Weight: 1}, res.Edges[0])
	assert.Equal(t, core.Edge[int]{From: 1, To: 2, Weight: 2}, res.Edges[1])
}

func TestKruskal_SquareWithDiagonal(t *testing.T) {
	g := buildUndirected(t, 4, []core.Edge[int]{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 3},
		{From: 3, To: 0, Weight: 4},
		{From: 0, To: 2, Weight: 5},
	})

	res, err := mst.Kruskal(g)
	require.NoError(t, err)

	assert.True(t, res.Connected)
	assert.Equal(t, 6.0, res.TotalWeight)
	assert.Len(t, res.Edges, 3)
}

func TestKruskal_DisconnectedGraphYieldsForest(t *testing.T) {
	// Components {0,1} and {2,3}: two edges, Connected == false.
	g := buildUndirected(t, 4, []core.Edge[int]{
		{From: 0, To: 1, Weight: 1},
		{From: 2, To: 3, Weight: 2},
	})

	res, err := mst.Kruskal(g)
	require.NoError(t, err)

	assert.False(t, res.Connected)
	assert.Len(t, res.Edges, 2)
	assert.Equal(t, 3.0, res.TotalWeight)
}

func TestKruskal_ParallelEdgesPickCheapest(t *testing.T) {
	g := buildUndirected(t, 2, []core.Edge[int]{
		{From: 0, To: 1, Weight: 9},
		{From: 0, To: 1, Weight: 2},
	})

	res, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Len(t, res.Edges, 1)
	assert.Equal(t, 2.0, res.Edges[0].Weight)
}

func TestKruskal_EqualWeightTieIsDeterministic(t *testing.T) {
	// All edges weigh 1; the canonical-pair tie-break fixes the selection.
	g := buildUndirected(t, 3, []core.Edge[int]{
		{From: 0, To: 2, Weight: 1},
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
	})

	for i := 0; i < 10; i++ {
		res, err := mst.Kruskal(g)
		require.NoError(t, err)
		require.Len(t, res.Edges, 2)
		assert.Equal(t, core.Edge[int]{From: 0, To: 1, Weight: 1}, res.Edges[0])
		assert.Equal(t, core.Edge[int]{From: 0, To: 2, Weight: 1}, res.Edges[1])
	}
}

// ------------------------------------------------------------------------
// 3. Optimality, brute-force cross-checked.
// ------------------------------------------------------------------------

// bruteForceMSTWeight enumerates every edge subset of size n-1 and returns
// the minimum total weight over those forming a spanning tree.
func bruteForceMSTWeight(n int, edges []core.Edge[int]) (float64, bool) {
	best := -1.0
	for mask := 0; mask < 1<<len(edges); mask++ {
		if bits.OnesCount(uint(mask)) != n-1 {
			continue
		}

		// Merge components over the selected edges.
		comp := make([]int, n)
		for i := range comp {
			comp[i] = i
		}
		find := func(v int) int {
			for comp[v] != v {
				v = comp[v]
			}
			return v
		}

		total := 0.0
		acyclic := true
		for i, e := range edges {
			if mask&(1<<i) == 0 {
				continue
			}
			ru, rv := find(e.From), find(e.To)
			if ru == rv {
				acyclic = false
				break
			}
			comp[ru] = rv
			total += e.Weight
		}
		if !acyclic {
			continue
		}

		if best < 0 || total < best {
			best = total
		}
	}

	return best, best >= 0
}

func TestKruskal_OptimalAgainstBruteForce(t *testing.T) {
	// A 6-node graph with redundant cycles and a heavy decoy diagonal.
	edges := []core.Edge[int]{
		{From: 0, To: 1, Weight: 4},
		{From: 0, To: 2, Weight: 3},
		{From: 1, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: 2},
		{From: 2, To: 3, Weight: 4},
		{From: 3, To: 4, Weight: 2},
		{From: 4, To: 5, Weight: 6},
		{From: 3, To: 5, Weight: 7},
		{From: 0, To: 5, Weight: 10},
	}
	g := buildUndirected(t, 6, edges)

	want, ok := bruteForceMSTWeight(6, edges)
	require.True(t, ok)

	res, err := mst.Kruskal(g)
	require.NoError(t, err)

	assert.True(t, res.Connected)
	assert.Equal(t, want, res.TotalWeight)
	assert.Len(t, res.Edges, 5)

	// The reported total matches the sum of the reported edges.
	var sum float64
	for _, e := range res.Edges {
		sum += e.Weight
	}
	assert.Equal(t, res.TotalWeight, sum)
}
