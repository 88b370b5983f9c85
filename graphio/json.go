package graphio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/pathwise/gt/core"
)

// jsonGraph is the JSON wire format:
//
//	{
//	  "nodes": ["api", "auth", "db"],
//	  "edges": [ { "from": "api", "to": "auth", "latency_ms": 5.2 } ]
//	}
type jsonGraph struct {
	Nodes []string   `json:"nodes"`
	Edges []jsonEdge `json:"edges"`
}

type jsonEdge struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	LatencyMS float64 `json:"latency_ms"`
}

// ReadJSON decodes a directed, string-labeled graph from r and validates it
// through core.NewGraph.
func ReadJSON(r io.Reader) (*core.Graph[string], error) {
	var in jsonGraph
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, errors.Wrap(err, "parse graph JSON")
	}

	edges := make([]core.Edge[string], 0, len(in.Edges))
	for _, e := range in.Edges {
		edges = append(edges, core.Edge[string]{From: e.From, To: e.To, Weight: e.LatencyMS})
	}

	g, err := core.NewGraph(core.Directed, in.Nodes, edges)
	if err != nil {
		return nil, errors.Wrap(err, "build graph from input")
	}

	return g, nil
}

// LoadJSON reads and decodes the graph JSON file at path.
func LoadJSON(path string) (*core.Graph[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read graph file %s", path)
	}
	defer f.Close()

	return ReadJSON(f)
}
