package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bastianibanez/parking/game/engine"
	"github.com/bastianibanez/parking/game/render"
	"github.com/bastianibanez/parking/game/solver"
)

// puzzleServiceImpl implements the PuzzleService interface
type puzzleServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewPuzzleService creates a new puzzle service instance
func NewPuzzleService(sessions SessionManager, configs ConfigManager) PuzzleService {
	return &puzzleServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *puzzleServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new puzzle session
func (s *puzzleServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.PuzzleConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		PuzzleState:    session.Engine.GetState(),
		PuzzleConfig:   session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *puzzleServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Config.Name),
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		PuzzleState:    session.Engine.GetState(),
		PuzzleConfig:   session.Config,
	}, nil
}

// ListSessions returns all active sessions
func (s *puzzleServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name),
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			PuzzleState:    sess.Engine.GetState(),
			PuzzleConfig:   sess.Config,
		})
	}

	return result, nil
}

// DeleteSession removes a session
func (s *puzzleServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Move executes a single slide for a session. The engine is refreshed before
// validation so the car index addresses the current scan, and again after a
// successful slide so the returned state carries a fresh car collection.
func (s *puzzleServiceImpl) Move(ctx context.Context, sessionID string, car int, direction engine.Direction, distance int) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if !sess.Engine.Fresh() {
		if err := sess.Engine.Refresh(); err != nil {
			return nil, fmt.Errorf("failed to refresh car collection: %w", err)
		}
	}

	moveErr := sess.Engine.Move(car, direction, distance)
	if moveErr == nil {
		if err := sess.Engine.Refresh(); err != nil {
			return nil, fmt.Errorf("failed to refresh car collection: %w", err)
		}
	}

	state := sess.Engine.GetState()
	result := &MoveResult{
		Success:     moveErr == nil,
		Reason:      engine.RejectionReason(moveErr),
		Solved:      sess.Engine.IsSolved(),
		PuzzleState: state,
		Board:       render.Board(state.Grid, state.Cars),
		Message:     state.Message,
	}

	// Persist after successful moves so a restart resumes mid-puzzle. Best
	// effort: a persistence failure must not reject an applied move.
	if moveErr == nil {
		_ = s.sessions.Save(sessionID)
	}

	return result, nil
}

// CanMove checks a slide without applying it. It takes the write lock because
// the check may refresh a stale car collection first.
func (s *puzzleServiceImpl) CanMove(ctx context.Context, sessionID string, car int, direction engine.Direction, distance int) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if !sess.Engine.Fresh() {
		if err := sess.Engine.Refresh(); err != nil {
			return nil, fmt.Errorf("failed to refresh car collection: %w", err)
		}
	}

	checkErr := sess.Engine.CanMove(car, direction, distance)
	return &MoveResult{
		Success: checkErr == nil,
		Reason:  engine.RejectionReason(checkErr),
		Solved:  sess.Engine.IsSolved(),
	}, nil
}

// Reset restores a session's board to its initial layout
func (s *puzzleServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.PuzzleState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	state := sess.Engine.Reset()
	_ = s.sessions.Save(sessionID)
	return state, nil
}

// Solve runs the breadth-first solver against the session's current board
func (s *puzzleServiceImpl) Solve(ctx context.Context, sessionID string) (*SolveResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	// Solve from the current grid, not the initial layout.
	state := sess.Engine.GetState()
	config := snapshotConfig(sess.Config, state.Grid)

	result, err := solver.Solve(config, 0)
	if err != nil {
		return nil, fmt.Errorf("solver failed: %w", err)
	}

	message := fmt.Sprintf("No solution exists (%d states explored)", result.StatesExplored)
	if result.Found {
		message = fmt.Sprintf("Solved in %d moves (%d states explored)", len(result.Steps), result.StatesExplored)
	}

	return &SolveResult{
		Found:          result.Found,
		Steps:          result.Steps,
		StatesExplored: result.StatesExplored,
		Message:        message,
	}, nil
}

// GetPuzzleState returns the current state for a session
func (s *puzzleServiceImpl) GetPuzzleState(ctx context.Context, sessionID string) (*engine.PuzzleState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	return sess.Engine.GetState(), nil
}

// GetBoard returns the rendered board for a session, refreshing the car
// collection first so the tokens reflect the current grid.
func (s *puzzleServiceImpl) GetBoard(ctx context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return "", fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if !sess.Engine.Fresh() {
		if err := sess.Engine.Refresh(); err != nil {
			return "", fmt.Errorf("failed to refresh car collection: %w", err)
		}
	}

	return render.Board(sess.Engine.Grid(), sess.Engine.Cars()), nil
}

// GetMoveHistory returns paginated move history for a session
func (s *puzzleServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	moves := sess.Engine.GetMoveHistory()
	total := len(moves)

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = 20
	}
	if opts.Order == "" {
		opts.Order = "asc"
	}

	ordered := make([]engine.MoveHistoryEntry, total)
	copy(ordered, moves)
	if opts.Order == "desc" {
		for i, j := 0, total-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}

	return &HistoryResponse{
		Moves:       ordered[start:end],
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns information about all available configurations
func (s *puzzleServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a configuration by name
func (s *puzzleServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.PuzzleConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a configuration
func (s *puzzleServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.PuzzleConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// snapshotConfig rebuilds a config whose layout matches the given grid so the
// solver starts from the board as it currently stands.
func snapshotConfig(config *engine.PuzzleConfig, grid engine.Grid) *engine.PuzzleConfig {
	layout := make([]string, grid.Size())
	for r, row := range grid {
		var b strings.Builder
		for _, m := range row {
			b.WriteString(string(m))
		}
		layout[r] = b.String()
	}

	snapshot := *config
	snapshot.Layout = layout
	return &snapshot
}
