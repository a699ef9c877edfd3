package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlath/astar"
	"github.com/katalvlaran/lvlath/gridgraph"
)

// gridFile is the YAML layout accepted by the grid subcommand.
//
//	threshold: 1
//	cells:
//	  - [1, 1, 0]
//	  - [1, 3, 1]
type gridFile struct {
	Threshold *int    `yaml:"threshold"`
	Cells     [][]int `yaml:"cells" validate:"required,min=1,dive,min=1"`
}

type gridOptions struct {
	file     string
	from     string
	to       string
	diagonal bool
}

func newGridCmd(g *globalOptions) *cobra.Command {
	o := &gridOptions{}

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Search a weighted grid between two cells",
		Long: `Search a grid of integer cells loaded from YAML.

Cells below the threshold (default 1) are walls; any other value is the cost
of entering the cell. Coordinates are given as x,y with 0,0 at the top left.
Searches between disconnected regions are rejected without stepping.

Examples:
  astar grid --file maze.yaml --from 0,0 --to 4,3
  astar grid --file maze.yaml --from 0,0 --to 4,3 --diagonal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gg, err := o.load()
			if err != nil {
				return err
			}
			start, err := cellFlag(gg, "from", o.from)
			if err != nil {
				return err
			}
			goal, err := cellFlag(gg, "to", o.to)
			if err != nil {
				return err
			}
			if !gg.Connected(start, goal) {
				return fmt.Errorf("search failed: %w: %v and %v lie in different regions", astar.ErrNoPath, start, goal)
			}

			return runSearch[gridgraph.Cell, int](cmd, g, start, goal)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.file, "file", "f", "", "YAML grid file")
	flags.StringVar(&o.from, "from", "0,0", "start cell as x,y")
	flags.StringVar(&o.to, "to", "", "goal cell as x,y")
	flags.BoolVar(&o.diagonal, "diagonal", false, "allow diagonal moves")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (o *gridOptions) load() (*gridgraph.GridGraph, error) {
	f, err := os.Open(o.file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc gridFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("grid %s: %w", o.file, err)
	}
	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("grid %s: %w", o.file, err)
	}

	opts := gridgraph.DefaultGridOptions()
	if doc.Threshold != nil {
		opts.LandThreshold = *doc.Threshold
	}
	if o.diagonal {
		opts.Conn = gridgraph.Conn8
	}

	return gridgraph.NewGridGraph(doc.Cells, opts)
}

var errCoordinate = errors.New("coordinates must be given as x,y")

func cellFlag(gg *gridgraph.GridGraph, name, value string) (gridgraph.Cell, error) {
	var x, y int
	if n, err := fmt.Sscanf(value, "%d,%d", &x, &y); err != nil || n != 2 {
		return gridgraph.Cell{}, fmt.Errorf("--%s %q: %w", name, value, errCoordinate)
	}
	c, err := gg.Cell(x, y)
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("--%s: %w", name, err)
	}

	return c, nil
}
