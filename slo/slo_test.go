// Package slo_test validates the SLO verdict: boundary-inclusive comparison
// and propagation of the distinguishable no-path outcome.
package slo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwise/gt/core"
	"github.com/pathwise/gt/dijkstra"
	"github.com/pathwise/gt/slo"
)

// buildChain constructs a → b → c with weights 5 and 3 (total 8).
func buildChain(t *testing.T) *core.Graph[string] {
	t.Helper()
	g, err := core.NewGraph(core.Directed, []string{"a", "b", "c"},
		[]core.Edge[string]{
			{From: "a", To: "b", Weight: 5},
			{From: "b", To: "c", Weight: 3},
		})
	require.NoError(t, err)

	return g
}

func TestCheck_Met(t *testing.T) {
	res, err := slo.Check(buildChain(t), "a", "c", 10)
	require.NoError(t, err)

	assert.True(t, res.Met)
	assert.Equal(t, 8.0, res.TotalWeight)
	assert.Equal(t, 10.0, res.MaxLatency)
	assert.Equal(t, []string{"a", "b", "c"}, res.Path.Path)
}

func TestCheck_Violated(t *testing.T) {
	res, err := slo.Check(buildChain(t), "a", "c", 7.5)
	require.NoError(t, err)

	assert.False(t, res.Met)
	assert.Equal(t, 8.0, res.TotalWeight)
}

func TestCheck_BoundaryIsInclusive(t *testing.T) {
	// A path costing exactly the objective passes.
	res, err := slo.Check(buildChain(t), "a", "c", 8)
	require.NoError(t, err)
	assert.True(t, res.Met)
}

func TestCheck_NoPathPropagates(t *testing.T) {
	_, err := slo.Check(buildChain(t), "c", "a", 100)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestCheck_UnknownNodePropagates(t *testing.T) {
	_, err := slo.Check(buildChain(t), "a", "ghost", 100)
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
}
