package engine

// Marker identifies what occupies a single grid cell. The marker encodes the
// orientation of the car covering the cell; per-car identity is positional
// (the index in the scanned car list), not stored in the grid.
type Marker string

const (
	Empty            Marker = "."
	HorizontalMarker Marker = "h"
	VerticalMarker   Marker = "v"

	// Validation constants
	MinGridSize     = 2
	MaxGridSize     = 50
	DefaultGridSize = 5
	MaxBulkMoves    = 50
)

// Orientation is the single axis a car's cells are contiguous along and the
// only axis it may slide on.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// Direction is a slide direction requested by a caller.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Directions lists all slide directions in a stable order.
var Directions = []Direction{Up, Down, Left, Right}

// Delta returns the per-cell row/column shift for one step in the direction.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// AlignedWith reports whether the direction slides along the given orientation.
// Horizontal cars only accept left/right, vertical cars only up/down.
func (d Direction) AlignedWith(o Orientation) bool {
	switch d {
	case Up, Down:
		return o == Vertical
	case Left, Right:
		return o == Horizontal
	}
	return false
}

// Position is a row/column coordinate on the grid, 0-based.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Car is a rigid, single-axis-aligned group of contiguous occupied cells.
// Start is the topmost/leftmost cell, End the bottommost/rightmost one.
// Cars are value objects; their identity is the index in the scanned list.
type Car struct {
	Start       Position    `json:"start"`
	End         Position    `json:"end"`
	Orientation Orientation `json:"orientation"`
	Length      int         `json:"length"`
}

// NewCar builds a car from its extreme cells, deriving the length.
func NewCar(start, end Position, orientation Orientation) Car {
	length := end.Col - start.Col + 1
	if orientation == Vertical {
		length = end.Row - start.Row + 1
	}
	return Car{Start: start, End: end, Orientation: orientation, Length: length}
}

// Marker returns the grid marker cells of this car carry.
func (c Car) Marker() Marker {
	if c.Orientation == Vertical {
		return VerticalMarker
	}
	return HorizontalMarker
}

// Footprint returns the cells currently occupied by the car.
func (c Car) Footprint() []Position {
	cells := make([]Position, 0, c.Length)
	if c.Orientation == Horizontal {
		for col := c.Start.Col; col <= c.End.Col; col++ {
			cells = append(cells, Position{Row: c.Start.Row, Col: col})
		}
		return cells
	}
	for row := c.Start.Row; row <= c.End.Row; row++ {
		cells = append(cells, Position{Row: row, Col: c.Start.Col})
	}
	return cells
}

// Covers reports whether the car's footprint includes the position.
func (c Car) Covers(p Position) bool {
	if c.Orientation == Horizontal {
		return p.Row == c.Start.Row && p.Col >= c.Start.Col && p.Col <= c.End.Col
	}
	return p.Col == c.Start.Col && p.Row >= c.Start.Row && p.Row <= c.End.Row
}

// Grid is a square matrix of markers. It is the single source of truth for
// occupancy; the scanned car list is a derived, cached view.
type Grid [][]Marker

// NewGrid allocates an empty n×n grid.
func NewGrid(n int) Grid {
	g := make(Grid, n)
	for i := range g {
		g[i] = make([]Marker, n)
		for j := range g[i] {
			g[i][j] = Empty
		}
	}
	return g
}

// Size returns the grid dimension N.
func (g Grid) Size() int {
	return len(g)
}

// InBounds reports whether the position lies on the grid.
func (g Grid) InBounds(p Position) bool {
	n := len(g)
	return p.Row >= 0 && p.Row < n && p.Col >= 0 && p.Col < n
}

// At returns the marker at the position. The caller must ensure bounds.
func (g Grid) At(p Position) Marker {
	return g[p.Row][p.Col]
}

// Set writes the marker at the position. The caller must ensure bounds.
func (g Grid) Set(p Position, m Marker) {
	g[p.Row][p.Col] = m
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = make([]Marker, len(row))
		copy(out[i], row)
	}
	return out
}

// Equal reports whether two grids hold identical markers cell by cell.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for i, row := range g {
		if len(row) != len(other[i]) {
			return false
		}
		for j, m := range row {
			if m != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Target is the footprint the designated car must cover for the puzzle to be
// solved: a straight span of cells that must all carry Marker.
type Target struct {
	Start  Position `json:"start"`
	End    Position `json:"end"`
	Marker Marker   `json:"marker"`
}

// Cells returns the target span's cells.
func (t Target) Cells() []Position {
	var cells []Position
	for row := t.Start.Row; row <= t.End.Row; row++ {
		for col := t.Start.Col; col <= t.End.Col; col++ {
			cells = append(cells, Position{Row: row, Col: col})
		}
	}
	return cells
}

// PuzzleConfig describes a puzzle instance loaded from JSON: the initial
// occupancy layout and the target footprint. Initial and goal boards are
// configuration, not embedded constants, so one engine serves many puzzles.
type PuzzleConfig struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	GridSize    int               `json:"grid_size"`
	Layout      []string          `json:"layout"`
	Legend      map[string]string `json:"legend"`
	Target      Target            `json:"target"`
}

// PuzzleState is the complete mutable state of one puzzle: the grid, the
// cached car list derived from it, and the move history.
//
// Fresh tracks whether Cars matches Grid. A successful move mutates Grid
// directly and flips Fresh to false; Refresh rescans and flips it back.
type PuzzleState struct {
	Grid        Grid               `json:"grid"`
	Cars        []Car              `json:"cars"`
	Fresh       bool               `json:"fresh"`
	Target      Target             `json:"target"`
	Solved      bool               `json:"solved"`
	ConfigName  string             `json:"config_name"`
	Message     string             `json:"message"`
	MoveHistory []MoveHistoryEntry `json:"move_history"`
	TotalMoves  int                `json:"total_moves"`
}

// MoveHistoryEntry records a single attempted slide, successful or not.
type MoveHistoryEntry struct {
	Car        int       `json:"car"`
	Direction  Direction `json:"direction"`
	Distance   int       `json:"distance"`
	From       Position  `json:"from"`
	To         Position  `json:"to"`
	Success    bool      `json:"success"`
	Reason     string    `json:"reason,omitempty"`
	Timestamp  int64     `json:"timestamp"`
	MoveNumber int       `json:"move_number"`
}

// MoveRequest identifies one slide for bulk execution.
type MoveRequest struct {
	Car       int       `json:"car"`
	Direction Direction `json:"direction"`
	Distance  int       `json:"distance"`
}

// PossibleMove is a single-cell slide that is currently legal.
type PossibleMove struct {
	Car       int       `json:"car"`
	Direction Direction `json:"direction"`
}
