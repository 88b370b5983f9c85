package graphio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwise/gt/core"
	"github.com/pathwise/gt/graphio"
)

const serviceJSON = `{
  "nodes": ["api", "auth", "db", "cache"],
  "edges": [
    {"from": "api", "to": "auth", "latency_ms": 5},
    {"from": "auth", "to": "db", "latency_ms": 3},
    {"from": "api", "to": "cache", "latency_ms": 7},
    {"from": "cache", "to": "db", "latency_ms": 2}
  ]
}`

func TestReadJSON_ServiceGraph(t *testing.T) {
	g, err := graphio.ReadJSON(strings.NewReader(serviceJSON))
	require.NoError(t, err)

	assert.True(t, g.Directed())
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 4, g.Size())
	assert.Equal(t, []string{"api", "auth", "db", "cache"}, g.Nodes())
	assert.Equal(t, core.Edge[string]{From: "api", To: "auth", Weight: 5}, g.Edges()[0])
}

func TestReadJSON_FractionalLatency(t *testing.T) {
	in := `{"nodes":["a","b"],"edges":[{"from":"a","to":"b","latency_ms":5.25}]}`
	g, err := graphio.ReadJSON(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 5.25, g.Edges()[0].Weight)
}

func TestReadJSON_MalformedDocument(t *testing.T) {
	_, err := graphio.ReadJSON(strings.NewReader(`{"nodes": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse graph JSON")
}

func TestReadJSON_ValidationErrorsSurface(t *testing.T) {
	in := `{"nodes":["a"],"edges":[{"from":"a","to":"ghost","latency_ms":1}]}`
	_, err := graphio.ReadJSON(strings.NewReader(in))
	assert.ErrorIs(t, err, core.ErrUnknownNode)

	in = `{"nodes":["a","b"],"edges":[{"from":"a","to":"b","latency_ms":-1}]}`
	_, err = graphio.ReadJSON(strings.NewReader(in))
	assert.ErrorIs(t, err, core.ErrInvalidWeight)
}

func TestReadJSON_EmptyDocument(t *testing.T) {
	g, err := graphio.ReadJSON(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Zero(t, g.Order())
	assert.Zero(t, g.Size())
}

func TestLoadJSON_RoundTripThroughFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte(serviceJSON), 0o644))

	g, err := graphio.LoadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order())
}

func TestLoadJSON_MissingFile(t *testing.T) {
	_, err := graphio.LoadJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read graph file")
}
