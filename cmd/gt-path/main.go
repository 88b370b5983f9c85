// Command gt-path analyzes shortest paths and bottlenecks in directed
// network graphs described as JSON (named nodes, latency_ms edge weights).
//
// Subcommands:
//
//	path      - find the shortest path between two nodes
//	slo       - check whether the path meets a latency objective
//	simulate  - re-run the path query with edge overrides and drops
//
// Exit codes: 0 success, 2 no path exists, 3 SLO violated, 4 invalid input.
package main

import (
	"errors"
	"fmt"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pathwise/gt/dijkstra"
	"github.com/pathwise/gt/graphio"
	"github.com/pathwise/gt/simulate"
	"github.com/pathwise/gt/slo"
)

// Exit codes of the path analyzer; the engine only supplies the result and
// error values this mapping is driven by.
const (
	exitSuccess      = 0
	exitNoPath       = 2
	exitSLOViolated  = 3
	exitInvalidInput = 4
)

var log = zap.NewNop()

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	code := exitSuccess
	root := newRootCmd(&code)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, dijkstra.ErrNoPath) {
			return exitNoPath
		}

		return exitInvalidInput
	}

	return code
}

func newRootCmd(code *int) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "gt-path",
		Short:         "Graph path analysis and simulation tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = newLogger(verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newPathCmd(), newSLOCmd(code), newSimulateCmd())

	return root
}

// newLogger builds a zap logger writing to stderr; debug level when verbose.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return l
}

func newPathCmd() *cobra.Command {
	var graphFile, from, to, format string

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Find shortest path between two nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			g, err := graphio.LoadJSON(graphFile)
			if err != nil {
				return pkgerrors.Wrapf(err, "failed to load graph from %s", graphFile)
			}
			log.Debug("graph loaded", zap.Int("nodes", g.Order()), zap.Int("edges", g.Size()))

			path, err := dijkstra.ShortestPath(g, from, to)
			if err != nil {
				return pkgerrors.Wrapf(err, "failed to find path from %s to %s", from, to)
			}

			if format == formatJSON {
				return printJSON(newPathOutput(path))
			}
			printPathText(path)

			return nil
		},
	}
	addCommonFlags(cmd, &graphFile, &from, &to, &format)

	return cmd
}

func newSLOCmd(code *int) *cobra.Command {
	var (
		graphFile, from, to, format string
		maxLatency                  float64
	)

	cmd := &cobra.Command{
		Use:   "slo",
		Short: "Check if path meets SLO (Service Level Objective)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			g, err := graphio.LoadJSON(graphFile)
			if err != nil {
				return pkgerrors.Wrapf(err, "failed to load graph from %s", graphFile)
			}
			log.Debug("graph loaded", zap.Int("nodes", g.Order()), zap.Int("edges", g.Size()))

			res, err := slo.Check(g, from, to, maxLatency)
			if err != nil {
				return pkgerrors.Wrapf(err, "failed to find path from %s to %s", from, to)
			}
			if !res.Met {
				*code = exitSLOViolated
			}

			if format == formatJSON {
				return printJSON(newSLOOutput(res))
			}
			printSLOText(res)

			return nil
		},
	}
	addCommonFlags(cmd, &graphFile, &from, &to, &format)
	cmd.Flags().Float64VarP(&maxLatency, "max-latency", "m", 0, "maximum allowed latency in milliseconds")
	_ = cmd.MarkFlagRequired("max-latency")

	return cmd
}

func newSimulateCmd() *cobra.Command {
	var (
		graphFile, from, to, format string
		overrideSpecs, dropSpecs    []string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate path changes with modified edge weights",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			overrides, err := graphio.ParseOverrides(overrideSpecs)
			if err != nil {
				return err
			}
			drops, err := graphio.ParseDrops(dropSpecs)
			if err != nil {
				return err
			}

			g, err := graphio.LoadJSON(graphFile)
			if err != nil {
				return pkgerrors.Wrapf(err, "failed to load graph from %s", graphFile)
			}
			log.Debug("graph loaded",
				zap.Int("nodes", g.Order()),
				zap.Int("edges", g.Size()),
				zap.Int("overrides", len(overrides)),
				zap.Int("drops", len(drops)))

			res, err := simulate.Simulate(g, from, to, overrides, drops)
			if err != nil {
				return pkgerrors.Wrapf(err, "failed to simulate path from %s to %s", from, to)
			}

			if format == formatJSON {
				return printJSON(newSimulateOutput(res))
			}
			printSimulateText(res)

			return nil
		},
	}
	addCommonFlags(cmd, &graphFile, &from, &to, &format)
	cmd.Flags().StringSliceVar(&overrideSpecs, "override", nil, "override edge weights: from:to:weight")
	cmd.Flags().StringSliceVar(&dropSpecs, "drop", nil, "drop edges: from:to")

	return cmd
}

func addCommonFlags(cmd *cobra.Command, graphFile, from, to, format *string) {
	cmd.Flags().StringVarP(graphFile, "graph", "g", "", "path to graph JSON file")
	cmd.Flags().StringVarP(from, "from", "f", "", "source node name")
	cmd.Flags().StringVarP(to, "to", "t", "", "destination node name")
	cmd.Flags().StringVar(format, "format", formatText, "output format (text|json)")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}
