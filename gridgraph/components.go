package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells,
// according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS order, components ordered by their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Size())
	var comps [][]int

	for i0 := 0; i0 < gg.Size(); i0++ {
		if seen[i0] || !gg.Passable(i0) {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := gg.Coordinate(queue[qi])
			for _, d := range gg.NeighborOffsets() {
				vx, vy := ux+d[0], uy+d[1]
				if !gg.InBounds(vx, vy) {
					continue
				}
				vi := gg.Index(vx, vy)
				if !seen[vi] && gg.Passable(vi) {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// ComponentOf labels every cell with the index of its component in
// ConnectedComponents, or -1 for walls.
func (gg *GridGraph) ComponentOf() []int {
	label := make([]int, gg.Size())
	for i := range label {
		label[i] = -1
	}
	for c, comp := range gg.ConnectedComponents() {
		for _, idx := range comp {
			label[idx] = c
		}
	}

	return label
}
