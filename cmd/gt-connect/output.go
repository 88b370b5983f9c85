// Result rendering for gt-connect: text layouts and the JSON wire format
// (algorithm, total_weight, num_edges, edges, connected / num_bridges,
// num_articulation_points, bridges, articulation_points).
package main

import (
	"encoding/json"
	"fmt"

	"github.com/pathwise/gt/critical"
	"github.com/pathwise/gt/mst"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func checkFormat(format string) error {
	if format != formatText && format != formatJSON {
		return fmt.Errorf("invalid format %q: expected text or json", format)
	}

	return nil
}

type mstOutput struct {
	Algorithm   string       `json:"algorithm"`
	TotalWeight float64      `json:"total_weight"`
	NumEdges    int          `json:"num_edges"`
	Connected   bool         `json:"connected"`
	Edges       []edgeOutput `json:"edges"`
}

type edgeOutput struct {
	U      int     `json:"u"`
	V      int     `json:"v"`
	Weight float64 `json:"weight"`
}

type criticalOutput struct {
	NumBridges            int      `json:"num_bridges"`
	NumArticulationPoints int      `json:"num_articulation_points"`
	Bridges               [][2]int `json:"bridges"`
	ArticulationPoints    []int    `json:"articulation_points"`
}

type analysisOutput struct {
	MST      mstOutput      `json:"mst"`
	Critical criticalOutput `json:"critical"`
}

func newMSTOutput(r mst.Result[int]) mstOutput {
	out := mstOutput{
		Algorithm:   r.Algorithm,
		TotalWeight: r.TotalWeight,
		NumEdges:    len(r.Edges),
		Connected:   r.Connected,
		Edges:       make([]edgeOutput, 0, len(r.Edges)),
	}
	for _, e := range r.Edges {
		out.Edges = append(out.Edges, edgeOutput{U: e.From, V: e.To, Weight: e.Weight})
	}

	return out
}

func newCriticalOutput(r critical.Result[int]) criticalOutput {
	out := criticalOutput{
		NumBridges:            len(r.Bridges),
		NumArticulationPoints: len(r.ArticulationPoints),
		Bridges:               make([][2]int, 0, len(r.Bridges)),
		ArticulationPoints:    make([]int, 0, len(r.ArticulationPoints)),
	}
	for _, b := range r.Bridges {
		out.Bridges = append(out.Bridges, [2]int{b.From, b.To})
	}
	out.ArticulationPoints = append(out.ArticulationPoints, r.ArticulationPoints...)

	return out
}

func printMSTText(out mstOutput) {
	fmt.Printf("Minimum Spanning Tree (%s)\n", out.Algorithm)
	fmt.Printf("  Total Weight: %.2f\n", out.TotalWeight)
	fmt.Printf("  Edges: %d\n", out.NumEdges)
	if !out.Connected {
		fmt.Println("  Note: graph is disconnected; result is a minimum spanning forest")
	}
	fmt.Println("\nEdges:")
	for _, e := range out.Edges {
		fmt.Printf("  %d -- %d (weight: %.2f)\n", e.U, e.V, e.Weight)
	}
}

func printCriticalText(out criticalOutput) {
	fmt.Println("Critical Components Analysis")
	fmt.Printf("  Bridges: %d\n", out.NumBridges)
	fmt.Printf("  Articulation Points: %d\n", out.NumArticulationPoints)

	if len(out.Bridges) > 0 {
		fmt.Println("\nBridges (critical edges):")
		for _, b := range out.Bridges {
			fmt.Printf("  %d -- %d\n", b[0], b[1])
		}
	}

	if len(out.ArticulationPoints) > 0 {
		fmt.Println("\nArticulation Points (critical nodes):")
		for _, node := range out.ArticulationPoints {
			fmt.Printf("  %d\n", node)
		}
	}
}

func printAnalysisText(out analysisOutput) {
	fmt.Println("=== Full Connectivity Analysis ===")
	fmt.Println()
	printMSTText(out.MST)
	fmt.Println()
	printCriticalText(out.Critical)
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	return nil
}
