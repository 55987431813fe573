package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells
// (anything but Wall and DynamicObstacle), using the same adjacency as
// Neighbors, diagonal-squeeze rule included.
// Returns a slice of components; each component lists its cells in BFS
// discovery order, components ordered by their first row-major cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Cell {
	seen := make([]bool, gg.Size())
	var comps [][]Cell

	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			root := Cell{Row: r, Col: c}
			if gg.Blocked(root) || seen[gg.Index(root)] {
				continue
			}
			// BFS to collect component
			seen[gg.Index(root)] = true
			queue := []Cell{root}
			for qi := 0; qi < len(queue); qi++ {
				for _, next := range gg.Neighbors(queue[qi]) {
					if i := gg.Index(next); !seen[i] {
						seen[i] = true
						queue = append(queue, next)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// Connected reports whether a and b are both passable and lie in the same
// component. Unlike ConnectedComponents it stops as soon as b is reached.
func (gg *GridGraph) Connected(a, b Cell) bool {
	if gg.Blocked(a) || gg.Blocked(b) {
		return false
	}
	seen := make([]bool, gg.Size())
	seen[gg.Index(a)] = true
	queue := []Cell{a}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == b {
			return true
		}
		for _, next := range gg.Neighbors(u) {
			if i := gg.Index(next); !seen[i] {
				seen[i] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}
