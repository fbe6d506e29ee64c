// Command validate provides a small CLI that validates puzzle configuration
// JSON files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Grid consistency and allowed characters (., h, v)
//   - Grid size bounds and square layouts
//   - Car shape: every same-marker connected group must be a straight line on
//     the axis its marker names (single-cell cars are legal)
//   - Target: a straight in-bounds span with a car marker
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config mirrors the JSON schema for a puzzle configuration.
type Config struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	GridSize    int               `json:"grid_size"`
	Layout      []string          `json:"layout"`
	Legend      map[string]string `json:"legend"`
	Target      TargetSpec        `json:"target"`
}

// TargetSpec mirrors the target block of a configuration.
type TargetSpec struct {
	Start  Point  `json:"start"`
	End    Point  `json:"end"`
	Marker string `json:"marker"`
}

// Point is a row/column coordinate.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid size bounds accepted by the engine.
const (
	minGridSize = 2
	maxGridSize = 50
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single configuration JSON file.
// It performs structural checks, grid/legend validation, car shape analysis,
// and target validation.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	// Validate grid size
	if config.GridSize < minGridSize || config.GridSize > maxGridSize {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("grid_size must be between %d and %d, got %d", minGridSize, maxGridSize, config.GridSize))
	}

	// Validate layout shape
	if len(config.Layout) == 0 {
		result.Valid = false
		result.Errors = append(result.Errors, "Layout is empty")
		return result
	}

	if len(config.Layout) != config.GridSize {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Layout has %d rows, expected %d", len(config.Layout), config.GridSize))
	}

	validChars := map[rune]bool{
		'.': true, // empty
		'h': true, // horizontal car cell
		'v': true, // vertical car cell
	}

	for i, row := range config.Layout {
		if len(row) != config.GridSize {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Inconsistent row width at row %d: expected %d, got %d", i+1, config.GridSize, len(row)))
		}

		for j, char := range row {
			if !validChars[char] {
				result.Valid = false
				result.Errors = append(result.Errors, fmt.Sprintf("Invalid character '%c' at position [%d,%d]", char, i+1, j+1))
			}
		}
	}

	// Car shape validation - every connected marker group must be a straight
	// line on its own axis
	carCount := 0
	horizontalCount := 0
	verticalCount := 0
	if result.Valid {
		shapeResult, h, v := validateCarShapes(config.Layout)
		carCount = h + v
		horizontalCount = h
		verticalCount = v
		if !shapeResult.Valid {
			result.Valid = false
			result.Errors = append(result.Errors, shapeResult.Errors...)
		}
	}

	// Target validation
	if result.Valid {
		targetResult := validateTargetSpec(config)
		if !targetResult.Valid {
			result.Valid = false
			result.Errors = append(result.Errors, targetResult.Errors...)
		}
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Grid: %dx%d", config.GridSize, config.GridSize))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Cars: %d (%d horizontal, %d vertical)", carCount, horizontalCount, verticalCount))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Target: (%d,%d)-(%d,%d) marker=%s",
			config.Target.Start.Row, config.Target.Start.Col,
			config.Target.End.Row, config.Target.End.Col,
			config.Target.Marker))
	}

	return result
}

// validateCarShapes flood-fills same-marker connected groups and checks each
// one is a straight line aligned with its marker. A single-cell group passes:
// the engine accepts length-1 cars. It returns the counts of horizontal and
// vertical cars found.
func validateCarShapes(layout []string) (ValidationResult, int, int) {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	height := len(layout)
	visited := make(map[string]bool)
	horizontal := 0
	vertical := 0

	inBounds := func(row, col int) bool {
		return row >= 0 && row < height && col >= 0 && col < len(layout[row])
	}

	for row := 0; row < height; row++ {
		for col := 0; col < len(layout[row]); col++ {
			marker := layout[row][col]
			if marker == '.' {
				continue
			}
			key := fmt.Sprintf("%d,%d", row, col)
			if visited[key] {
				continue
			}

			// Flood fill this same-marker group (4-connected)
			var cells [][2]int
			queue := [][2]int{{row, col}}
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]

				r, c := cur[0], cur[1]
				k := fmt.Sprintf("%d,%d", r, c)
				if visited[k] {
					continue
				}
				visited[k] = true
				cells = append(cells, cur)

				directions := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
				for _, dir := range directions {
					nr, nc := r+dir[0], c+dir[1]
					nk := fmt.Sprintf("%d,%d", nr, nc)
					if !visited[nk] && inBounds(nr, nc) && layout[nr][nc] == marker {
						queue = append(queue, [2]int{nr, nc})
					}
				}
			}

			sameRow := true
			sameCol := true
			for _, cell := range cells {
				if cell[0] != row {
					sameRow = false
				}
				if cell[1] != col {
					sameCol = false
				}
			}

			switch marker {
			case 'h':
				if !sameRow {
					result.Valid = false
					result.Errors = append(result.Errors, fmt.Sprintf("Horizontal car at (%d,%d) is not a straight row (%d cells)", row, col, len(cells)))
					continue
				}
				horizontal++
			case 'v':
				if !sameCol {
					result.Valid = false
					result.Errors = append(result.Errors, fmt.Sprintf("Vertical car at (%d,%d) is not a straight column (%d cells)", row, col, len(cells)))
					continue
				}
				vertical++
			}
		}
	}

	return result, horizontal, vertical
}

// validateTargetSpec checks the target span is in bounds, straight, at least
// two cells, and names a car marker.
func validateTargetSpec(config Config) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	t := config.Target
	n := config.GridSize

	if t.Marker != "h" && t.Marker != "v" {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Target marker must be 'h' or 'v', got '%s'", t.Marker))
	}

	for _, p := range []Point{t.Start, t.End} {
		if p.Row < 0 || p.Row >= n || p.Col < 0 || p.Col >= n {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Target cell (%d,%d) is out of bounds for a %dx%d grid", p.Row, p.Col, n, n))
		}
	}

	sameRow := t.Start.Row == t.End.Row
	sameCol := t.Start.Col == t.End.Col
	if !sameRow && !sameCol {
		result.Valid = false
		result.Errors = append(result.Errors, "Target span must be a straight row or column")
	}

	if t.Start.Row > t.End.Row || t.Start.Col > t.End.Col {
		result.Valid = false
		result.Errors = append(result.Errors, "Target start must not come after target end")
	}

	if t.Marker == "h" && !sameRow {
		result.Valid = false
		result.Errors = append(result.Errors, "Target marker 'h' requires a horizontal span")
	}
	if t.Marker == "v" && !sameCol {
		result.Valid = false
		result.Errors = append(result.Errors, "Target marker 'v' requires a vertical span")
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
