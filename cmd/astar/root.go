package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath/astar"
	"github.com/katalvlaran/lvlath/astar/metrics"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	verbose   bool
	logFormat string
	maxNodes  int
	quiet     bool
	metrics   bool

	logger   *slog.Logger
	registry *prometheus.Registry
	recorder *metrics.Recorder
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}

	root := &cobra.Command{
		Use:          "astar",
		Short:        "Step through A* searches",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if g.maxNodes < 0 {
				return fmt.Errorf("--max-nodes %d: %w", g.maxNodes, astar.ErrBadMaxNodes)
			}
			logger, err := newLogger(cmd.ErrOrStderr(), g.logFormat, g.verbose)
			if err != nil {
				return err
			}
			g.logger = logger
			if g.metrics {
				g.registry = prometheus.NewRegistry()
				g.recorder = metrics.NewRecorder(g.registry)
			}

			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&g.verbose, "verbose", "v", false, "log engine activity at debug level")
	flags.StringVar(&g.logFormat, "log-format", "auto", "log format: auto, text or json")
	flags.IntVar(&g.maxNodes, "max-nodes", 0, "fail a search once this many nodes are live (0 = unlimited)")
	flags.BoolVarP(&g.quiet, "quiet", "q", false, "print only the outcome, not every step")
	flags.BoolVar(&g.metrics, "metrics", false, "write search metrics in Prometheus text format to stderr")

	root.AddCommand(newRoadmapCmd(g), newGridCmd(g))
	for _, sub := range root.Commands() {
		g.dumpAfter(sub)
	}

	return root
}

// engineOptions translates the global flags into engine options.
func (g *globalOptions) engineOptions(extra ...astar.Option) []astar.Option {
	opts := []astar.Option{astar.WithLogger(g.logger)}
	if g.maxNodes > 0 {
		opts = append(opts, astar.WithMaxNodes(g.maxNodes))
	}
	if g.recorder != nil {
		opts = append(opts, astar.WithHooks(g.recorder.Hooks()))
	}

	return append(opts, extra...)
}

// dumpAfter wraps cmd's RunE so the metrics dump also happens when the
// search fails. A failing dump is reported only if the command succeeded.
func (g *globalOptions) dumpAfter(cmd *cobra.Command) {
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if dumpErr := g.dumpMetrics(cmd.ErrOrStderr()); err == nil {
			err = dumpErr
		}

		return err
	}
}

func (g *globalOptions) dumpMetrics(w io.Writer) error {
	if g.registry == nil {
		return nil
	}
	families, err := g.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

// newLogger builds the CLI logger on w. The auto format picks text for a
// terminal and JSON otherwise.
func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if format == "auto" {
		format = "json"
		if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			format = "text"
		}
	}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
