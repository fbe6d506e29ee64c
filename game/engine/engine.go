package engine

import "fmt"

// Engine provides the main interface for puzzle operations
type Engine interface {
	// Puzzle state management
	GetState() *PuzzleState
	SetState(state *PuzzleState) error
	Reset() *PuzzleState
	IsSolved() bool
	Fresh() bool

	// Car collection
	Refresh() error
	Cars() []Car
	Grid() Grid

	// Movement operations
	Move(carIdx int, direction Direction, distance int) error
	CanMove(carIdx int, direction Direction, distance int) error
	PossibleMoves() []PossibleMove

	// Configuration
	GetConfig() *PuzzleConfig
	SetConfig(config *PuzzleConfig) error

	// History
	GetMoveHistory() []MoveHistoryEntry
	GetLastMove() *MoveHistoryEntry
}

// PuzzleEngine implements the Engine interface. It exclusively owns the grid
// and the cached car collection and keeps them consistent through the
// Fresh/Stale protocol: a successful Move marks the collection stale, Refresh
// rescans. All methods assume a single caller goroutine; concurrent callers
// must serialize access externally (the session layer does).
type PuzzleEngine struct {
	state  *PuzzleState
	config *PuzzleConfig
}

// NewEngine creates a new puzzle engine with the provided configuration.
func NewEngine(config *PuzzleConfig) (*PuzzleEngine, error) {
	if err := ValidatePuzzleConfig(config); err != nil {
		return nil, err
	}

	engine := &PuzzleEngine{
		config: config,
		state:  InitStateFromConfig(config),
	}

	return engine, nil
}

// NewEngineWithDefaults creates a new puzzle engine with the built-in puzzle.
func NewEngineWithDefaults() *PuzzleEngine {
	return &PuzzleEngine{
		config: DefaultConfig(),
		state:  InitStateFromConfig(nil),
	}
}

// GetState returns the current puzzle state.
func (e *PuzzleEngine) GetState() *PuzzleState {
	return e.state
}

// SetState sets the puzzle state (used for persistence loading). The grid is
// re-validated and the car collection rebuilt so the restored state is Fresh.
func (e *PuzzleEngine) SetState(state *PuzzleState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	if err := state.RefreshCars(); err != nil {
		return err
	}
	e.state = state
	return nil
}

// Reset restores the initial board. Cumulative move history survives the
// reset, matching how sessions report totals across retries.
func (e *PuzzleEngine) Reset() *PuzzleState {
	prevHistory := e.state.MoveHistory
	prevTotal := e.state.TotalMoves

	e.state = InitStateFromConfig(e.config)
	e.state.MoveHistory = prevHistory
	e.state.TotalMoves = prevTotal

	return e.state
}

// IsSolved reports whether every target cell carries the designated marker.
// Legal in both Fresh and Stale states; it reads the grid only.
func (e *PuzzleEngine) IsSolved() bool {
	return e.state.TargetReached()
}

// Fresh reports whether the cached car collection matches the grid.
func (e *PuzzleEngine) Fresh() bool {
	return e.state.Fresh
}

// Refresh rescans the grid and replaces the car collection. Idempotent:
// two consecutive calls with no intervening move yield identical collections.
func (e *PuzzleEngine) Refresh() error {
	return e.state.RefreshCars()
}

// Cars returns the current (possibly stale) car collection.
func (e *PuzzleEngine) Cars() []Car {
	return e.state.Cars
}

// Grid returns the current grid for read-only use such as rendering.
func (e *PuzzleEngine) Grid() Grid {
	return e.state.Grid
}

// CanMove checks a slide without applying it.
func (e *PuzzleEngine) CanMove(carIdx int, direction Direction, distance int) error {
	return e.state.CanMoveCar(carIdx, direction, distance)
}

// Move validates and applies a slide, recording it in the history either way.
// A rejected move leaves the grid unchanged; a successful one mutates the
// grid and leaves the car collection stale until Refresh.
func (e *PuzzleEngine) Move(carIdx int, direction Direction, distance int) error {
	var from, to Position
	if carIdx >= 0 && carIdx < len(e.state.Cars) {
		from = e.state.Cars[carIdx].Start
		dr, dc := direction.Delta()
		to = Position{Row: from.Row + dr*distance, Col: from.Col + dc*distance}
	}

	err := e.state.MoveCar(carIdx, direction, distance)
	e.state.AddMoveToHistory(carIdx, direction, distance, from, to, err)
	if err == nil {
		if e.state.Solved {
			e.state.Message = fmt.Sprintf("Solved in %d moves", e.state.TotalMoves)
		} else {
			e.state.Message = fmt.Sprintf("Moved car %d %s by %d", carIdx+1, direction, distance)
		}
	} else {
		e.state.Message = fmt.Sprintf("Move rejected: %v", err)
	}
	return err
}

// PossibleMoves returns every legal single-cell slide for the cached car
// collection. Callers wanting answers for the current grid must Refresh first.
func (e *PuzzleEngine) PossibleMoves() []PossibleMove {
	var possible []PossibleMove
	for idx := range e.state.Cars {
		for _, dir := range Directions {
			if e.state.CanMoveCar(idx, dir, 1) == nil {
				possible = append(possible, PossibleMove{Car: idx, Direction: dir})
			}
		}
	}
	return possible
}

// GetConfig returns the current puzzle configuration.
func (e *PuzzleEngine) GetConfig() *PuzzleConfig {
	return e.config
}

// SetConfig sets a new puzzle configuration and resets the board.
func (e *PuzzleEngine) SetConfig(config *PuzzleConfig) error {
	if err := ValidatePuzzleConfig(config); err != nil {
		return err
	}

	e.config = config
	e.state = InitStateFromConfig(config)
	return nil
}

// GetMoveHistory returns the complete move history.
func (e *PuzzleEngine) GetMoveHistory() []MoveHistoryEntry {
	return e.state.MoveHistory
}

// GetLastMove returns the last attempted move, or nil if none.
func (e *PuzzleEngine) GetLastMove() *MoveHistoryEntry {
	if len(e.state.MoveHistory) == 0 {
		return nil
	}
	return &e.state.MoveHistory[len(e.state.MoveHistory)-1]
}

// BulkMove executes moves in sequence, refreshing the car collection between
// slides so each request addresses current indices. Execution stops at the
// first rejection or once the puzzle is solved.
func (e *PuzzleEngine) BulkMove(moves []MoveRequest) []error {
	results := make([]error, 0, len(moves))

	for _, req := range moves {
		if !e.state.Fresh {
			if err := e.Refresh(); err != nil {
				results = append(results, err)
				break
			}
		}

		err := e.Move(req.Car, req.Direction, req.Distance)
		results = append(results, err)
		if err != nil || e.state.Solved {
			break
		}
	}

	return results
}
