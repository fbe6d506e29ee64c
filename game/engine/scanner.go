package engine

// carGroup is one connected component of same-marker cells found by the scan.
type carGroup struct {
	marker Marker
	parts  []Position
}

// scanGroups walks the grid in row-major order and collects each unvisited
// occupied cell's connected component via a stack-based flood fill over
// 4-connected neighbors carrying the same marker type.
func scanGroups(g Grid) []carGroup {
	n := g.Size()
	visited := make([][]bool, n)
	for i := range visited {
		visited[i] = make([]bool, n)
	}

	var groups []carGroup
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if g[r][c] == Empty || visited[r][c] {
				continue
			}

			marker := g[r][c]
			var parts []Position
			stack := []Position{{Row: r, Col: c}}

			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				if !g.InBounds(p) {
					continue
				}
				if visited[p.Row][p.Col] || g.At(p) != marker {
					continue
				}

				visited[p.Row][p.Col] = true
				parts = append(parts, p)

				stack = append(stack,
					Position{Row: p.Row - 1, Col: p.Col},
					Position{Row: p.Row + 1, Col: p.Col},
					Position{Row: p.Row, Col: p.Col - 1},
					Position{Row: p.Row, Col: p.Col + 1},
				)
			}

			groups = append(groups, carGroup{marker: marker, parts: parts})
		}
	}

	return groups
}

// bounds returns the group's bounding box: (min row, min col) and
// (max row, max col) over all collected cells.
func (cg carGroup) bounds() (start, end Position) {
	start, end = cg.parts[0], cg.parts[0]
	for _, p := range cg.parts[1:] {
		if p.Row < start.Row {
			start.Row = p.Row
		}
		if p.Col < start.Col {
			start.Col = p.Col
		}
		if p.Row > end.Row {
			end.Row = p.Row
		}
		if p.Col > end.Col {
			end.Col = p.Col
		}
	}
	return start, end
}

// orientation derives the group's orientation from its marker type.
func (cg carGroup) orientation() Orientation {
	if cg.marker == VerticalMarker {
		return Vertical
	}
	return Horizontal
}

// ScanCars reconstructs the ordered car list from raw grid markers. Cars are
// emitted in discovery order of the row-major scan; every occupied cell
// belongs to exactly one emitted car.
//
// ScanCars is best-effort: it does not verify that groups are straight
// contiguous spans. A bent or gapped group silently yields a bounding box
// that does not match its footprint; use ValidateGrid to reject such boards.
func ScanCars(g Grid) []Car {
	groups := scanGroups(g)
	cars := make([]Car, 0, len(groups))
	for _, cg := range groups {
		start, end := cg.bounds()
		cars = append(cars, NewCar(start, end, cg.orientation()))
	}
	return cars
}

// ValidateGrid checks the straight-contiguous-span invariant: every connected
// same-marker group must be a single row (horizontal marker) or single column
// (vertical marker) with no gaps, exactly filling its bounding box. It also
// rejects ragged, non-square grids. Returns ErrMalformedGrid on violation.
func ValidateGrid(g Grid) error {
	n := g.Size()
	for _, row := range g {
		if len(row) != n {
			return ErrMalformedGrid
		}
	}

	for _, cg := range scanGroups(g) {
		start, end := cg.bounds()
		switch cg.orientation() {
		case Horizontal:
			if start.Row != end.Row {
				return ErrMalformedGrid
			}
			if len(cg.parts) != end.Col-start.Col+1 {
				return ErrMalformedGrid
			}
		case Vertical:
			if start.Col != end.Col {
				return ErrMalformedGrid
			}
			if len(cg.parts) != end.Row-start.Row+1 {
				return ErrMalformedGrid
			}
		}
	}

	return nil
}
