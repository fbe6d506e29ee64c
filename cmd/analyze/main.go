// Command analyze prints quick, human-readable heuristics about configuration
// files in the project's configs directory. It summarizes dimensions, the car
// inventory by orientation and length, the target span, and runs the solver to
// report whether each puzzle is solvable and in how many slides.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bastianibanez/parking/game/engine"
	"github.com/bastianibanez/parking/game/solver"
)

func main() {
	configDir := "configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No config files found in %s\n", configDir)
		os.Exit(1)
	}

	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		analyzeConfig(file)
	}
}

func analyzeConfig(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var config engine.PuzzleConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Grid Size: %d x %d\n", config.GridSize, len(config.Layout))

	if err := engine.ValidatePuzzleConfig(&config); err != nil {
		fmt.Printf("⚠️  INVALID: %v\n", err)
		return
	}

	grid := engine.GridFromLayout(config.Layout)
	cars := engine.ScanCars(grid)

	horizontal := 0
	vertical := 0
	occupied := 0
	maxLength := 0
	for _, car := range cars {
		if car.Orientation == engine.Horizontal {
			horizontal++
		} else {
			vertical++
		}
		occupied += car.Length
		if car.Length > maxLength {
			maxLength = car.Length
		}
	}

	total := config.GridSize * config.GridSize
	fmt.Printf("Cars: %d (%d horizontal, %d vertical)\n", len(cars), horizontal, vertical)
	fmt.Printf("Longest Car: %d cells\n", maxLength)
	fmt.Printf("Occupancy: %d/%d cells (%.0f%%)\n", occupied, total, 100*float64(occupied)/float64(total))
	fmt.Printf("Target: (%d,%d)-(%d,%d) marker=%s\n",
		config.Target.Start.Row, config.Target.Start.Col,
		config.Target.End.Row, config.Target.End.Col,
		config.Target.Marker)

	// Solver pass: report the shortest slide count or that no solution exists
	result, err := solver.Solve(&config, solver.DefaultMaxStates)
	if err != nil {
		fmt.Printf("⚠️  Solver stopped early: %v (states explored: %d)\n", err, result.StatesExplored)
		return
	}

	if !result.Found {
		fmt.Printf("❌ UNSOLVABLE: no slide sequence reaches the target (states explored: %d)\n", result.StatesExplored)
		return
	}

	if len(result.Steps) == 0 {
		fmt.Printf("✅ Already solved in the initial layout\n")
		return
	}

	fmt.Printf("✅ Solvable in %d slides (states explored: %d)\n", len(result.Steps), result.StatesExplored)
	for i, step := range result.Steps {
		if i >= 5 {
			fmt.Printf("   ... and %d more slides\n", len(result.Steps)-5)
			break
		}
		fmt.Printf("   %d. car=%d %s\n", i+1, step.Car, step.Direction)
	}
}
