// Command astar runs A* searches over a road table or a weighted grid and
// prints every step of the search.
//
// Usage:
//
//	astar roadmap --from Arad                 # embedded Romania map
//	astar roadmap --map roads.yaml --from A --to B
//	astar roadmap --all                       # every city to the target
//	astar grid --file maze.yaml --from 0,0 --to 9,9 --diagonal
//
// Global flags control logging (--verbose, --log-format), a node budget
// (--max-nodes), trace output (--quiet) and a Prometheus text dump of the
// search metrics on stderr (--metrics).
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
