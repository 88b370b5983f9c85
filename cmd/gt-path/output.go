// Result rendering for gt-path: text layouts and the JSON wire format
// (from, to, path, total_latency_ms, bottleneck / slo_met, max_latency_ms,
// actual_latency_ms / original, modified, latency_change_ms).
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pathwise/gt/dijkstra"
	"github.com/pathwise/gt/simulate"
	"github.com/pathwise/gt/slo"
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

type pathOutput struct {
	From           string      `json:"from"`
	To             string      `json:"to"`
	Path           []string    `json:"path"`
	TotalLatencyMS float64     `json:"total_latency_ms"`
	Bottleneck     *edgeOutput `json:"bottleneck"`
}

type edgeOutput struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	LatencyMS float64 `json:"latency_ms"`
}

type sloOutput struct {
	SLOMet          bool       `json:"slo_met"`
	MaxLatencyMS    float64    `json:"max_latency_ms"`
	ActualLatencyMS float64    `json:"actual_latency_ms"`
	Path            pathOutput `json:"path"`
}

type simulateOutput struct {
	Original        pathOutput  `json:"original"`
	Modified        *pathOutput `json:"modified"`
	LatencyChangeMS *float64    `json:"latency_change_ms"`
}

func newPathOutput(p dijkstra.PathResult[string]) pathOutput {
	out := pathOutput{
		From:           p.From,
		To:             p.To,
		Path:           append([]string{}, p.Path...),
		TotalLatencyMS: p.TotalWeight,
	}
	if p.Bottleneck != nil {
		out.Bottleneck = &edgeOutput{
			From:      p.Bottleneck.From,
			To:        p.Bottleneck.To,
			LatencyMS: p.Bottleneck.Weight,
		}
	}

	return out
}

func newSLOOutput(r slo.Result[string]) sloOutput {
	return sloOutput{
		SLOMet:          r.Met,
		MaxLatencyMS:    r.MaxLatency,
		ActualLatencyMS: r.TotalWeight,
		Path:            newPathOutput(r.Path),
	}
}

func newSimulateOutput(r simulate.Result[string]) simulateOutput {
	out := simulateOutput{Original: newPathOutput(r.Original)}
	if r.Modified != nil {
		mod := newPathOutput(*r.Modified)
		out.Modified = &mod
		change := r.LatencyChange
		out.LatencyChangeMS = &change
	}

	return out
}

// formatRoute joins a node sequence with arrows: "api → auth → db".
func formatRoute(path []string) string {
	return strings.Join(path, " → ")
}

// ms renders a latency value without trailing zeros: 8 → "8ms", 5.2 → "5.2ms".
func ms(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "ms"
}

func printPathText(p dijkstra.PathResult[string]) {
	fmt.Println("Shortest Path:")
	fmt.Printf("  Route: %s\n", formatRoute(p.Path))
	fmt.Printf("  Total Cost: %s\n", ms(p.TotalWeight))
	printBottleneck(p)
}

func printBottleneck(p dijkstra.PathResult[string]) {
	if p.Bottleneck == nil {
		return
	}
	fmt.Printf("  Bottleneck: %s → %s (%s)\n", p.Bottleneck.From, p.Bottleneck.To, ms(p.Bottleneck.Weight))
}

func printSLOText(r slo.Result[string]) {
	status := "✗ FAIL"
	if r.Met {
		status = "✓ PASS"
	}
	fmt.Println("SLO Check:")
	fmt.Printf("  Route: %s\n", formatRoute(r.Path.Path))
	fmt.Printf("  Actual Latency: %s\n", ms(r.TotalWeight))
	fmt.Printf("  Max Allowed: %s\n", ms(r.MaxLatency))
	fmt.Printf("  Status: %s\n", status)
	printBottleneck(r.Path)
}

func printSimulateText(r simulate.Result[string]) {
	fmt.Println("Simulation Results:")
	fmt.Println()
	fmt.Println("Original Path:")
	fmt.Printf("  Route: %s\n", formatRoute(r.Original.Path))
	fmt.Printf("  Latency: %s\n", ms(r.Original.TotalWeight))
	printBottleneck(r.Original)

	fmt.Println()
	fmt.Println("Modified Path:")
	if r.Modified == nil {
		fmt.Println("  (route no longer exists)")
		fmt.Println()
		fmt.Println("Impact: path no longer exists")

		return
	}
	fmt.Printf("  Route: %s\n", formatRoute(r.Modified.Path))
	fmt.Printf("  Latency: %s\n", ms(r.Modified.TotalWeight))
	printBottleneck(*r.Modified)

	fmt.Println()
	fmt.Printf("Impact: %s\n", formatImpact(r.LatencyChange))
}

// formatImpact renders the latency delta: "+5ms (slower)", "-3ms (faster)",
// or "no change".
func formatImpact(diff float64) string {
	switch {
	case diff > 0:
		return "+" + ms(diff) + " (slower)"
	case diff < 0:
		return ms(diff) + " (faster)"
	default:
		return "no change"
	}
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	return nil
}
