package render

import (
	"strconv"
	"strings"

	"github.com/bastianibanez/parking/game/engine"
)

// Board formats the grid substituting each car's 1-based index for its
// markers, one row per line with space-separated tokens. Empty cells print
// as 0. The car list must be fresh for the tokens to be meaningful.
func Board(grid engine.Grid, cars []engine.Car) string {
	var b strings.Builder
	n := grid.Size()

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(token(cars, engine.Position{Row: r, Col: c}))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Markers formats the raw grid markers without car identity, one row per
// line. Useful for debugging the occupancy layer itself.
func Markers(grid engine.Grid) string {
	var b strings.Builder
	for _, row := range grid {
		for c, m := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(string(m))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Cars formats the car inventory, one line per car with its 1-based index.
func Cars(cars []engine.Car) string {
	var b strings.Builder
	for i, car := range cars {
		b.WriteString("Car ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(": start=(")
		b.WriteString(strconv.Itoa(car.Start.Row))
		b.WriteString(",")
		b.WriteString(strconv.Itoa(car.Start.Col))
		b.WriteString(") end=(")
		b.WriteString(strconv.Itoa(car.End.Row))
		b.WriteString(",")
		b.WriteString(strconv.Itoa(car.End.Col))
		b.WriteString(") ")
		b.WriteString(string(car.Orientation))
		b.WriteString(" length=")
		b.WriteString(strconv.Itoa(car.Length))
		b.WriteByte('\n')
	}
	return b.String()
}

func token(cars []engine.Car, p engine.Position) string {
	if idx, ok := engine.CarAt(cars, p); ok {
		return strconv.Itoa(idx + 1)
	}
	return "0"
}
