package service

import (
	"context"
	"time"

	"github.com/bastianibanez/parking/game/engine"
)

// PuzzleService defines all puzzle-related operations
type PuzzleService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Puzzle Operations
	Move(ctx context.Context, sessionID string, car int, direction engine.Direction, distance int) (*MoveResult, error)
	CanMove(ctx context.Context, sessionID string, car int, direction engine.Direction, distance int) (*MoveResult, error)
	Reset(ctx context.Context, sessionID string) (*engine.PuzzleState, error)
	Solve(ctx context.Context, sessionID string) (*SolveResult, error)

	// Puzzle State
	GetPuzzleState(ctx context.Context, sessionID string) (*engine.PuzzleState, error)
	GetBoard(ctx context.Context, sessionID string) (string, error)
	GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.PuzzleConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.PuzzleConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.PuzzleConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, config *engine.PuzzleConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// ConfigManager handles puzzle configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.PuzzleConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.PuzzleConfig
	SaveConfig(name string, config *engine.PuzzleConfig) error
}

// Session represents an active puzzle session
type Session struct {
	ID             string
	Engine         *engine.PuzzleEngine
	Config         *engine.PuzzleConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
