package gridgraph

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// under the same movement rules the search uses (see canStep).
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in ascending order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for the output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	comps := make([][]int, 0)
	for idx, label := range gg.region {
		if label < 0 {
			continue
		}
		for len(comps) <= label {
			comps = append(comps, nil)
		}
		comps[label] = append(comps[label], idx)
	}

	return comps
}

// Connected reports whether b can be reached from a. Both cells must belong
// to this grid. It is an O(1) pre-check that lets callers skip a search that
// would only fail after exhausting a's whole region.
func (gg *GridGraph) Connected(a, b Cell) bool {
	if a.grid != gg || b.grid != gg {
		return false
	}
	ra := gg.region[gg.index(a.X, a.Y)]

	return ra >= 0 && ra == gg.region[gg.index(b.X, b.Y)]
}

// label assigns a region number to every land cell by BFS. Labels are dense
// and ordered by the row-major position of each region's first cell.
func (gg *GridGraph) label() []int {
	total := gg.Width * gg.Height
	region := make([]int, total)
	for i := range region {
		region[i] = -1
	}
	next := 0
	offsets := gg.NeighborOffsets()

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if !gg.IsLand(x, y) || region[i0] >= 0 {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			region[i0] = next
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range offsets {
					if !gg.canStep(ux, uy, d[0], d[1]) {
						continue
					}
					vi := gg.index(ux+d[0], uy+d[1])
					if region[vi] < 0 {
						region[vi] = next
						queue = append(queue, vi)
					}
				}
			}
			next++
		}
	}

	return region
}
