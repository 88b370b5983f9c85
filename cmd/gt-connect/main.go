// Command gt-connect analyzes the connectivity structure of undirected
// weighted graphs described as CSV rows of "u,v,weight".
//
// Subcommands:
//
//	mst       - compute the minimum spanning tree (or forest)
//	critical  - find bridges and articulation points
//	analyze   - both of the above in one report
//
// Exit codes: 0 success, 1 failure.
package main

import (
	"fmt"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pathwise/gt/core"
	"github.com/pathwise/gt/critical"
	"github.com/pathwise/gt/graphio"
	"github.com/pathwise/gt/mst"
)

var log = zap.NewNop()

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return 1
	}

	return 0
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "gt-connect",
		Short:         "Graph connectivity and MST analysis tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = newLogger(verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newMSTCmd(), newCriticalCmd(), newAnalyzeCmd())

	return root
}

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

func loadGraph(graphFile string) (*core.Graph[int], error) {
	g, err := graphio.LoadCSV(graphFile)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to load graph")
	}
	log.Debug("graph loaded", zap.Int("nodes", g.Order()), zap.Int("edges", g.Size()))

	return g, nil
}

func newMSTCmd() *cobra.Command {
	var graphFile, algo, format string

	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Compute minimum spanning tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			if algo != mst.AlgorithmKruskal {
				return fmt.Errorf("unknown algorithm %q: expected kruskal", algo)
			}
			g, err := loadGraph(graphFile)
			if err != nil {
				return err
			}

			res, err := mst.Kruskal(g)
			if err != nil {
				return err
			}

			if format == formatJSON {
				return printJSON(newMSTOutput(res))
			}
			printMSTText(newMSTOutput(res))

			return nil
		},
	}
	addCommonFlags(cmd, &graphFile, &format)
	cmd.Flags().StringVar(&algo, "algo", mst.AlgorithmKruskal, "algorithm to use")

	return cmd
}

func newCriticalCmd() *cobra.Command {
	var graphFile, format string

	cmd := &cobra.Command{
		Use:   "critical",
		Short: "Find critical components (bridges and articulation points)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			g, err := loadGraph(graphFile)
			if err != nil {
				return err
			}

			res, err := critical.FindCritical(g)
			if err != nil {
				return err
			}

			if format == formatJSON {
				return printJSON(newCriticalOutput(res))
			}
			printCriticalText(newCriticalOutput(res))

			return nil
		},
	}
	addCommonFlags(cmd, &graphFile, &format)

	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	var graphFile, format string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Full connectivity analysis (MST + critical components)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			g, err := loadGraph(graphFile)
			if err != nil {
				return err
			}

			spanning, err := mst.Kruskal(g)
			if err != nil {
				return err
			}
			crit, err := critical.FindCritical(g)
			if err != nil {
				return err
			}

			out := analysisOutput{
				MST:      newMSTOutput(spanning),
				Critical: newCriticalOutput(crit),
			}
			if format == formatJSON {
				return printJSON(out)
			}
			printAnalysisText(out)

			return nil
		},
	}
	addCommonFlags(cmd, &graphFile, &format)

	return cmd
}

func addCommonFlags(cmd *cobra.Command, graphFile, format *string) {
	cmd.Flags().StringVarP(graphFile, "graph", "g", "", "path to graph CSV file (format: u,v,weight)")
	cmd.Flags().StringVar(format, "format", formatText, "output format (text|json)")
	_ = cmd.MarkFlagRequired("graph")
}
