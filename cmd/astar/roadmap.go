package main

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlath/astar"
	"github.com/katalvlaran/lvlath/roadmap"
)

type roadmapOptions struct {
	mapFile string
	from    string
	to      string
	all     bool
}

func newRoadmapCmd(g *globalOptions) *cobra.Command {
	o := &roadmapOptions{}

	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Search a road table between two cities",
		Long: `Search a directed, weighted road table.

Without --map the embedded Romania table is used; its target is Bucharest.
With --all every city is solved against the target concurrently and a
summary table is printed instead of a trace.

Examples:
  astar roadmap --from Arad
  astar roadmap --map roads.yaml --from A --to B
  astar roadmap --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl, err := o.table()
			if err != nil {
				return err
			}
			if err := tbl.CheckHeuristic(); err != nil {
				g.logger.Warn("routes may not be optimal", "err", err)
			}
			if o.all {
				return solveAll(cmd, g, tbl)
			}

			start, err := tbl.City(o.from)
			if err != nil {
				return err
			}
			goal := tbl.Target()
			if o.to != "" {
				if goal, err = tbl.City(o.to); err != nil {
					return err
				}
			}

			return runSearch[roadmap.City, int](cmd, g, start, goal)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.mapFile, "map", "m", "", "YAML road table (default: embedded Romania)")
	flags.StringVar(&o.from, "from", "Arad", "start city")
	flags.StringVar(&o.to, "to", "", "goal city (default: the table's target)")
	flags.BoolVar(&o.all, "all", false, "solve every city against the target")

	return cmd
}

func (o *roadmapOptions) table() (*roadmap.Table, error) {
	if o.mapFile == "" {
		return roadmap.Romania(), nil
	}

	return roadmap.LoadFile(o.mapFile)
}

type tourResult struct {
	cost  float64
	steps int
	err   error
}

// solveAll runs one independent search per city toward the table's target.
// Engines are not shared; the table and the metrics recorder are.
func solveAll(cmd *cobra.Command, g *globalOptions, tbl *roadmap.Table) error {
	goal := tbl.Target()
	results := make([]tourResult, tbl.Len())

	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for id := range tbl.Len() {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start, err := tbl.City(tbl.Name(id))
			if err != nil {
				return err
			}
			res, err := astar.Solve[roadmap.City, int](start, goal, g.engineOptions()...)
			results[id] = tourResult{cost: res.Cost, steps: res.Steps, err: err}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("City", "Cost", "Steps")
	failed := 0
	for id, r := range results {
		cost := strconv.FormatFloat(r.cost, 'g', -1, 64)
		if r.err != nil {
			cost = "unreachable"
			failed++
		}
		t.Row(tbl.Name(id), cost, strconv.Itoa(r.steps))
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render()); err != nil {
		return err
	}
	g.logger.Info("tour finished", "cities", len(results), "unreachable", failed)

	return nil
}
