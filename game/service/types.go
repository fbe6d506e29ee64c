package service

import (
	"time"

	"github.com/bastianibanez/parking/game/engine"
	"github.com/bastianibanez/parking/game/solver"
)

// SessionInfo provides information about a puzzle session
type SessionInfo struct {
	ID             string               `json:"id"`
	ConfigName     string               `json:"config_name"`
	CreatedAt      time.Time            `json:"created_at"`
	LastAccessedAt time.Time            `json:"last_accessed_at"`
	PuzzleState    *engine.PuzzleState  `json:"puzzle_state"`
	PuzzleConfig   *engine.PuzzleConfig `json:"puzzle_config"`
}

// MoveResult contains the result of a move or can-move operation
type MoveResult struct {
	Success     bool                `json:"success"`
	Reason      string              `json:"reason,omitempty"`
	Solved      bool                `json:"solved"`
	PuzzleState *engine.PuzzleState `json:"puzzle_state,omitempty"`
	Board       string              `json:"board,omitempty"`
	Message     string              `json:"message,omitempty"`
}

// SolveResult contains the outcome of running the solver on a session's board
type SolveResult struct {
	Found          bool          `json:"found"`
	Steps          []solver.Step `json:"steps,omitempty"`
	StatesExplored int           `json:"states_explored"`
	Message        string        `json:"message,omitempty"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a puzzle configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	GridSize    int    `json:"grid_size"`
	CarCount    int    `json:"car_count"`
}
