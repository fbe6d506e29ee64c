// Package engine provides the core logic for the sliding-block parking puzzle.
//
// The engine package implements the puzzle mechanics including:
//   - Reconstructing car entities from raw grid markers (flood-fill scan)
//   - Slide validation with boundary and collision checking
//   - Slide application with snapshot-based grid mutation
//   - Goal detection against a configured target footprint
//   - Configuration loading and validation
//
// Core Types:
//
// The Engine interface defines the main contract for puzzle operations,
// implemented by PuzzleEngine. PuzzleState holds the grid and the cached car
// collection, while PuzzleConfig defines the initial layout and the target
// footprint loaded from JSON files.
//
// Usage:
//
//	config, err := engine.LoadConfigByName("classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	puzzle, err := engine.NewEngine(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Slide the first car one cell up
//	if err := puzzle.Move(0, engine.Up, 1); err != nil {
//		log.Printf("rejected: %v", err)
//	}
//	_ = puzzle.Refresh()
//
// Consistency Model:
//
// The grid is the single source of truth for occupancy; the car collection is
// a derived cache. A successful Move mutates the grid and marks the cache
// stale; Refresh rescans. Reads such as IsSolved and CanMove are legal in
// either state, but callers relying on car indices must refresh first.
package engine
