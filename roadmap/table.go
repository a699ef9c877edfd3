// Package roadmap provides an immutable, directed, weighted road table with a
// city-name lookup, and a City state that plugs it into the astar engine.
//
// A Table is built once from a Config (or a YAML document) and never changes
// afterwards, so it may be shared freely between searches.
package roadmap

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Table is a dense adjacency table over a fixed set of cities.
//
// dist[from][to] holds the road length or +Inf when there is no road.
// neighbors[from] lists every to with a road, ascending.
type Table struct {
	names     []string
	byName    map[string]int
	heuristic []float64
	dist      [][]float64
	neighbors [][]int
	target    int
}

// NewTable validates cfg and builds a Table from it.
//
// Validation (in order):
//  1. Schema (required fields, non-negative numbers) → ErrInvalidConfig.
//  2. Unique city names → ErrDuplicateCity.
//  3. Target and every road endpoint exist → ErrUnknownCity.
//  4. No road from a city to itself → ErrLoop.
//
// Complexity: O(C² + R) time and memory for C cities and R roads.
func NewTable(cfg Config) (*Table, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	n := len(cfg.Cities)
	t := &Table{
		names:     make([]string, n),
		byName:    make(map[string]int, n),
		heuristic: make([]float64, n),
		dist:      make([][]float64, n),
		neighbors: make([][]int, n),
	}
	for i, c := range cfg.Cities {
		if _, dup := t.byName[c.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCity, c.Name)
		}
		t.names[i] = c.Name
		t.byName[c.Name] = i
		t.heuristic[i] = c.Heuristic

		row := make([]float64, n)
		for j := range row {
			row[j] = math.Inf(1)
		}
		t.dist[i] = row
	}

	target, ok := t.byName[cfg.Target]
	if !ok {
		return nil, fmt.Errorf("%w: target %q", ErrUnknownCity, cfg.Target)
	}
	t.target = target

	for _, r := range cfg.Roads {
		from, ok := t.byName[r.From]
		if !ok {
			return nil, fmt.Errorf("%w: road %s→%s: %q", ErrUnknownCity, r.From, r.To, r.From)
		}
		to, ok := t.byName[r.To]
		if !ok {
			return nil, fmt.Errorf("%w: road %s→%s: %q", ErrUnknownCity, r.From, r.To, r.To)
		}
		if from == to {
			return nil, fmt.Errorf("%w: %q", ErrLoop, r.From)
		}
		t.dist[from][to] = r.Distance
	}

	for from, row := range t.dist {
		for to, d := range row {
			if !math.IsInf(d, 1) {
				t.neighbors[from] = append(t.neighbors[from], to)
			}
		}
		sort.Ints(t.neighbors[from])
	}

	return t, nil
}

// Load decodes a YAML Config from r and builds a Table. Unknown keys are
// rejected.
func Load(r io.Reader) (*Table, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidConfig)
		}
		return nil, fmt.Errorf("roadmap: decode: %w", err)
	}

	return NewTable(cfg)
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roadmap: open: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Len returns the number of cities.
func (t *Table) Len() int { return len(t.names) }

// Name returns the name of city id, or "" if id is out of range.
func (t *Table) Name(id int) string {
	if id < 0 || id >= len(t.names) {
		return ""
	}

	return t.names[id]
}

// Names returns all city names in id order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)

	return out
}

// Lookup returns the id of the named city.
func (t *Table) Lookup(name string) (int, bool) {
	id, ok := t.byName[name]
	return id, ok
}

// Weight returns the length of the road from→to and whether it exists.
func (t *Table) Weight(from, to int) (float64, bool) {
	if !t.valid(from) || !t.valid(to) {
		return 0, false
	}
	d := t.dist[from][to]

	return d, !math.IsInf(d, 1)
}

// Neighbors returns the ids reachable by one road from id, ascending.
// The returned slice must not be modified.
func (t *Table) Neighbors(id int) []int {
	if !t.valid(id) {
		return nil
	}

	return t.neighbors[id]
}

// Heuristic returns the stored estimate from id to the table's target.
func (t *Table) Heuristic(id int) float64 {
	if !t.valid(id) {
		return 0
	}

	return t.heuristic[id]
}

// City returns the state for the named city.
func (t *Table) City(name string) (City, error) {
	id, ok := t.byName[name]
	if !ok {
		return City{}, fmt.Errorf("%w: %q", ErrUnknownCity, name)
	}

	return City{id: id, table: t}, nil
}

// Target returns the city the heuristic values point to.
func (t *Table) Target() City {
	return City{id: t.target, table: t}
}

func (t *Table) valid(id int) bool { return id >= 0 && id < len(t.names) }
