package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath/astar"
	"github.com/katalvlaran/lvlath/trace"
)

// runSearch steps one search from start to goal, tracing each step unless
// --quiet is set, and prints the outcome. An interrupted command cancels the
// search between steps.
func runSearch[S astar.State[S, K], K comparable](cmd *cobra.Command, g *globalOptions, start, goal S) error {
	e := astar.New[S, K](g.engineOptions()...)
	if err := e.Initialize(start, goal); err != nil {
		return err
	}
	defer e.Cancel()

	p := trace.New[S, K](cmd.OutOrStdout())
	ctx := cmd.Context()
	for e.State() == astar.Searching {
		if ctx.Err() != nil {
			e.Cancel()
			break
		}
		e.Step()
		if g.quiet || e.State() != astar.Searching {
			continue
		}
		if err := p.Step(e); err != nil {
			return err
		}
	}
	if err := p.Outcome(e); err != nil {
		return err
	}

	g.logger.Info("search finished",
		"state", e.State().String(),
		"steps", e.StepCount(),
		"expanded", e.Expanded(),
		"peak", e.Stats().Peak)
	if e.State() != astar.Succeeded {
		return fmt.Errorf("search failed: %w", e.Err())
	}

	return nil
}
