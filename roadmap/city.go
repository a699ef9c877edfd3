package roadmap

import "math"

// City is a search state: one city of a Table. It is a small value and is
// copied freely by the engine.
type City struct {
	id    int
	table *Table
}

// ID returns the city's index in its table.
func (c City) ID() int { return c.id }

// Name returns the city's name.
func (c City) Name() string {
	if c.table == nil {
		return ""
	}

	return c.table.Name(c.id)
}

// String implements fmt.Stringer.
func (c City) String() string { return c.Name() }

// EstimateRemainingCost returns the table's heuristic for c when goal is the
// table's target. Toward any other goal it returns 0, which is always
// admissible.
func (c City) EstimateRemainingCost(goal City) float64 {
	if c.table == nil || goal.id != c.table.target {
		return 0
	}

	return c.table.Heuristic(c.id)
}

// IsGoal reports whether c is goal.
func (c City) IsGoal(goal City) bool { return c.SameState(goal) }

// SameState reports whether both values denote the same city of the same table.
func (c City) SameState(other City) bool {
	return c.id == other.id && c.table == other.table
}

// StepCost returns the road length to successor, or +Inf without a road.
func (c City) StepCost(successor City) float64 {
	if c.table == nil {
		return math.Inf(1)
	}
	d, ok := c.table.Weight(c.id, successor.id)
	if !ok {
		return math.Inf(1)
	}

	return d
}

// Successors returns every city reachable by one road, ascending by id. The
// parent is not filtered out; the engine discards it as a worse duplicate.
func (c City) Successors(_ *City) ([]City, error) {
	if c.table == nil {
		return nil, nil
	}
	ids := c.table.Neighbors(c.id)
	out := make([]City, len(ids))
	for i, id := range ids {
		out[i] = City{id: id, table: c.table}
	}

	return out, nil
}

// Key returns the city id.
func (c City) Key() int { return c.id }
