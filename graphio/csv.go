package graphio

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/pathwise/gt/core"
)

// ReadCSV decodes an undirected, integer-labeled graph from rows of
// "u,v,weight". A header row is skipped when its first field is one of
// "u", "from", or "source" (case-insensitive). The resulting node set is
// 0..max(id) inclusive, so every id below the maximum exists even when no
// edge references it.
func ReadCSV(r io.Reader) (*core.Graph[int], error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	type row struct {
		u, v   int
		weight float64
	}
	var (
		rows    []row
		maxNode = -1
		first   = true
	)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "parse graph CSV")
		}
		if len(record) < 3 {
			return nil, errors.Errorf("invalid edge record %v: expected u,v,weight", record)
		}

		// Header sniffing, first row only.
		if first {
			first = false
			switch strings.ToLower(strings.TrimSpace(record[0])) {
			case "u", "from", "source":
				continue
			}
		}

		u, err := parseNodeID(record[0])
		if err != nil {
			return nil, err
		}
		v, err := parseNodeID(record[1])
		if err != nil {
			return nil, err
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, errors.Errorf("invalid weight: %s", strings.TrimSpace(record[2]))
		}

		if u > maxNode {
			maxNode = u
		}
		if v > maxNode {
			maxNode = v
		}
		rows = append(rows, row{u: u, v: v, weight: w})
	}

	nodes := make([]int, maxNode+1)
	for i := range nodes {
		nodes[i] = i
	}
	edges := make([]core.Edge[int], 0, len(rows))
	for _, r := range rows {
		edges = append(edges, core.Edge[int]{From: r.u, To: r.v, Weight: r.weight})
	}

	g, err := core.NewGraph(core.Undirected, nodes, edges, core.WithoutMultiEdges())
	if err != nil {
		return nil, errors.Wrap(err, "build graph from input")
	}

	return g, nil
}

// LoadCSV reads and decodes the graph CSV file at path.
func LoadCSV(path string) (*core.Graph[int], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read graph file %s", path)
	}
	defer f.Close()

	return ReadCSV(f)
}

func parseNodeID(field string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil || id < 0 {
		return 0, errors.Errorf("invalid node ID: %s", strings.TrimSpace(field))
	}

	return id, nil
}
