package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidatePuzzleConfig validates a puzzle configuration for correctness:
// required fields, grid dimensions, layout characters, the straight-span
// invariant on the initial board, and a well-formed in-bounds target.
func ValidatePuzzleConfig(config *PuzzleConfig) error {
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if config.GridSize < MinGridSize || config.GridSize > MaxGridSize {
		return fmt.Errorf("config validation: grid_size must be between %d and %d, got %d",
			MinGridSize, MaxGridSize, config.GridSize)
	}

	if len(config.Layout) != config.GridSize {
		return fmt.Errorf("config validation: layout must have %d rows to match grid_size, got %d",
			config.GridSize, len(config.Layout))
	}

	carCells := 0
	for i, row := range config.Layout {
		if len(row) != config.GridSize {
			return fmt.Errorf("config validation: row %d must have %d characters to match grid_size, got %d",
				i+1, config.GridSize, len(row))
		}

		for j, char := range row {
			switch Marker(char) {
			case Empty:
			case HorizontalMarker, VerticalMarker:
				carCells++
			default:
				return fmt.Errorf("config validation: invalid character '%c' at row %d, col %d", char, i+1, j+1)
			}
		}
	}

	if carCells == 0 {
		return fmt.Errorf("config validation: layout must contain at least one car cell (h or v)")
	}

	requiredLegend := map[string]string{
		string(HorizontalMarker): "horizontal",
		string(VerticalMarker):   "vertical",
		string(Empty):            "empty",
	}
	for key, expectedValue := range requiredLegend {
		if value, ok := config.Legend[key]; !ok || value != expectedValue {
			return fmt.Errorf("config validation: legend['%s'] must be '%s', got '%s'", key, expectedValue, value)
		}
	}

	grid := GridFromLayout(config.Layout)
	if err := ValidateGrid(grid); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	return validateTarget(config, grid)
}

// validateTarget checks the target footprint: known marker, in bounds,
// straight along the marker's axis, and achievable by at least one car of
// matching orientation and length.
func validateTarget(config *PuzzleConfig, grid Grid) error {
	t := config.Target

	if t.Marker != HorizontalMarker && t.Marker != VerticalMarker {
		return fmt.Errorf("config validation: target.marker must be '%s' or '%s', got '%s'",
			HorizontalMarker, VerticalMarker, t.Marker)
	}

	if !grid.InBounds(t.Start) || !grid.InBounds(t.End) {
		return fmt.Errorf("config validation: target span (%d,%d)-(%d,%d) leaves the %dx%d grid",
			t.Start.Row, t.Start.Col, t.End.Row, t.End.Col, config.GridSize, config.GridSize)
	}
	if t.Start.Row > t.End.Row || t.Start.Col > t.End.Col {
		return fmt.Errorf("config validation: target start must not exceed target end")
	}

	targetLength := 0
	switch t.Marker {
	case HorizontalMarker:
		if t.Start.Row != t.End.Row {
			return fmt.Errorf("config validation: horizontal target must stay on one row")
		}
		targetLength = t.End.Col - t.Start.Col + 1
	case VerticalMarker:
		if t.Start.Col != t.End.Col {
			return fmt.Errorf("config validation: vertical target must stay on one column")
		}
		targetLength = t.End.Row - t.Start.Row + 1
	}

	wantOrientation := Horizontal
	if t.Marker == VerticalMarker {
		wantOrientation = Vertical
	}
	for _, car := range ScanCars(grid) {
		if car.Orientation == wantOrientation && car.Length == targetLength {
			return nil
		}
	}
	return fmt.Errorf("config validation: no %s car of length %d exists to cover the target span",
		wantOrientation, targetLength)
}

// GridFromLayout builds a grid from layout strings. The layout is assumed
// validated; unknown characters become empty cells.
func GridFromLayout(layout []string) Grid {
	n := len(layout)
	grid := NewGrid(n)
	for r, row := range layout {
		for c, char := range row {
			if c >= n {
				break
			}
			switch Marker(char) {
			case HorizontalMarker:
				grid[r][c] = HorizontalMarker
			case VerticalMarker:
				grid[r][c] = VerticalMarker
			default:
				grid[r][c] = Empty
			}
		}
	}
	return grid
}

// LoadPuzzleConfig loads and validates a puzzle configuration from a JSON file.
func LoadPuzzleConfig(filename string) (*PuzzleConfig, error) {
	configPath := filename
	if configDir := os.Getenv("CONFIG_DIR"); configDir != "" {
		if strings.HasPrefix(filename, "configs/") {
			configPath = filepath.Join(configDir, strings.TrimPrefix(filename, "configs/"))
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config PuzzleConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := ValidatePuzzleConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadConfigByName loads a puzzle configuration by name from the configs directory.
func LoadConfigByName(configName string) (*PuzzleConfig, error) {
	if !strings.HasSuffix(configName, ".json") {
		configName = configName + ".json"
	}

	configPath := filepath.Join("configs", configName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file '%s' not found", configName)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %v", configName, err)
	}

	var config PuzzleConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %v", configName, err)
	}

	if err := ValidatePuzzleConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config '%s': %v", configName, err)
	}

	return &config, nil
}

// DefaultConfig returns the built-in 5x5 puzzle: a vertical car at (1,2)-(2,2),
// a horizontal pair at (4,3)-(4,4), and a goal span on row 2, cols 3-4.
func DefaultConfig() *PuzzleConfig {
	return &PuzzleConfig{
		Name:        "classic",
		Description: "The built-in 5x5 parking lot",
		GridSize:    DefaultGridSize,
		Layout: []string{
			".....",
			"..v..",
			"..v..",
			".....",
			"...hh",
		},
		Legend: map[string]string{
			string(HorizontalMarker): "horizontal",
			string(VerticalMarker):   "vertical",
			string(Empty):            "empty",
		},
		Target: Target{
			Start:  Position{Row: 2, Col: 3},
			End:    Position{Row: 2, Col: 4},
			Marker: HorizontalMarker,
		},
	}
}

// InitStateFromConfig creates a fresh puzzle state from the configuration.
// A nil config falls back to the built-in default puzzle.
func InitStateFromConfig(config *PuzzleConfig) *PuzzleState {
	if config == nil {
		config = DefaultConfig()
	}

	grid := GridFromLayout(config.Layout)
	state := &PuzzleState{
		Grid:        grid,
		Cars:        ScanCars(grid),
		Fresh:       true,
		Target:      config.Target,
		ConfigName:  config.Name,
		MoveHistory: []MoveHistoryEntry{},
		TotalMoves:  0,
	}
	state.Message = fmt.Sprintf("Puzzle '%s' ready: %d cars on a %dx%d board",
		config.Name, len(state.Cars), config.GridSize, config.GridSize)
	state.Solved = state.TargetReached()
	return state
}
