package engine

// CountMarker counts the cells carrying a specific marker.
func CountMarker(grid Grid, m Marker) int {
	count := 0
	for _, row := range grid {
		for _, cell := range row {
			if cell == m {
				count++
			}
		}
	}
	return count
}

// CountOccupied counts the non-empty cells of the grid.
func CountOccupied(grid Grid) int {
	count := 0
	for _, row := range grid {
		for _, cell := range row {
			if cell != Empty {
				count++
			}
		}
	}
	return count
}

// CarAt finds the car covering the position in the collection. Returns the
// car's index and true, or -1 and false for an empty or uncovered cell.
func CarAt(cars []Car, p Position) (int, bool) {
	for idx, car := range cars {
		if car.Covers(p) {
			return idx, true
		}
	}
	return -1, false
}

// OccupiedCells returns every cell covered by the car collection.
func OccupiedCells(cars []Car) []Position {
	var cells []Position
	for _, car := range cars {
		cells = append(cells, car.Footprint()...)
	}
	return cells
}
