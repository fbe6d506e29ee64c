package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/bastianibanez/parking/game/engine"
	"github.com/bastianibanez/parking/game/service"
	"github.com/bastianibanez/parking/transport/websocket"
)

// MockPuzzleService implements service.PuzzleService for testing
type MockPuzzleService struct {
	// Session Management
	CreateSessionFunc func(ctx context.Context, configName string) (*service.SessionInfo, error)
	GetSessionFunc    func(ctx context.Context, sessionID string) (*service.SessionInfo, error)
	ListSessionsFunc  func(ctx context.Context) ([]*service.SessionInfo, error)
	DeleteSessionFunc func(ctx context.Context, sessionID string) error

	// Puzzle Operations
	MoveFunc    func(ctx context.Context, sessionID string, car int, direction engine.Direction, distance int) (*service.MoveResult, error)
	CanMoveFunc func(ctx context.Context, sessionID string, car int, direction engine.Direction, distance int) (*service.MoveResult, error)
	ResetFunc   func(ctx context.Context, sessionID string) (*engine.PuzzleState, error)
	SolveFunc   func(ctx context.Context, sessionID string) (*service.SolveResult, error)

	// Puzzle State
	GetPuzzleStateFunc func(ctx context.Context, sessionID string) (*engine.PuzzleState, error)
	GetBoardFunc       func(ctx context.Context, sessionID string) (string, error)
	GetMoveHistoryFunc func(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error)

	// Configuration
	ListConfigsFunc func(ctx context.Context) ([]*service.ConfigInfo, error)
	LoadConfigFunc  func(ctx context.Context, configName string) (*engine.PuzzleConfig, error)
	SaveConfigFunc  func(ctx context.Context, configName string, config *engine.PuzzleConfig) error
}

func (m *MockPuzzleService) CreateSession(ctx context.Context, configName string) (*service.SessionInfo, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, configName)
	}
	return &service.SessionInfo{
		ID:         "test-session",
		ConfigName: configName,
		CreatedAt:  time.Now(),
	}, nil
}

func (m *MockPuzzleService) GetSession(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, sessionID)
	}
	return &service.SessionInfo{
		ID:         sessionID,
		ConfigName: "test-config",
		CreatedAt:  time.Now(),
	}, nil
}

func (m *MockPuzzleService) ListSessions(ctx context.Context) ([]*service.SessionInfo, error) {
	if m.ListSessionsFunc != nil {
		return m.ListSessionsFunc(ctx)
	}
	return []*service.SessionInfo{}, nil
}

func (m *MockPuzzleService) DeleteSession(ctx context.Context, sessionID string) error {
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(ctx, sessionID)
	}
	return nil
}

func (m *MockPuzzleService) Move(ctx context.Context, sessionID string, car int, direction engine.Direction, distance int) (*service.MoveResult, error) {
	if m.MoveFunc != nil {
		return m.MoveFunc(ctx, sessionID, car, direction, distance)
	}
	return &service.MoveResult{
		Success:     true,
		PuzzleState: &engine.PuzzleState{},
	}, nil
}

func (m *MockPuzzleService) CanMove(ctx context.Context, sessionID string, car int, direction engine.Direction, distance int) (*service.MoveResult, error) {
	if m.CanMoveFunc != nil {
		return m.CanMoveFunc(ctx, sessionID, car, direction, distance)
	}
	return &service.MoveResult{Success: true}, nil
}

func (m *MockPuzzleService) Reset(ctx context.Context, sessionID string) (*engine.PuzzleState, error) {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, sessionID)
	}
	return &engine.PuzzleState{}, nil
}

func (m *MockPuzzleService) Solve(ctx context.Context, sessionID string) (*service.SolveResult, error) {
	if m.SolveFunc != nil {
		return m.SolveFunc(ctx, sessionID)
	}
	return &service.SolveResult{Found: false}, nil
}

func (m *MockPuzzleService) GetPuzzleState(ctx context.Context, sessionID string) (*engine.PuzzleState, error) {
	if m.GetPuzzleStateFunc != nil {
		return m.GetPuzzleStateFunc(ctx, sessionID)
	}
	return &engine.PuzzleState{}, nil
}

func (m *MockPuzzleService) GetBoard(ctx context.Context, sessionID string) (string, error) {
	if m.GetBoardFunc != nil {
		return m.GetBoardFunc(ctx, sessionID)
	}
	return "", nil
}

func (m *MockPuzzleService) GetMoveHistory(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error) {
	if m.GetMoveHistoryFunc != nil {
		return m.GetMoveHistoryFunc(ctx, sessionID, opts)
	}
	return &service.HistoryResponse{
		Moves:      []engine.MoveHistoryEntry{},
		TotalMoves: 0,
		Page:       opts.Page,
		PageSize:   opts.Limit,
		TotalPages: 1,
	}, nil
}

func (m *MockPuzzleService) ListConfigs(ctx context.Context) ([]*service.ConfigInfo, error) {
	if m.ListConfigsFunc != nil {
		return m.ListConfigsFunc(ctx)
	}
	return []*service.ConfigInfo{}, nil
}

func (m *MockPuzzleService) LoadConfig(ctx context.Context, configName string) (*engine.PuzzleConfig, error) {
	if m.LoadConfigFunc != nil {
		return m.LoadConfigFunc(ctx, configName)
	}
	return &engine.PuzzleConfig{
		Name:        configName,
		Description: "Test config",
	}, nil
}

func (m *MockPuzzleService) SaveConfig(ctx context.Context, configName string, config *engine.PuzzleConfig) error {
	if m.SaveConfigFunc != nil {
		return m.SaveConfigFunc(ctx, configName, config)
	}
	return nil
}

// Test helpers
func setupTestServer(mockService *MockPuzzleService) *Server {
	hub := websocket.NewHub()
	go hub.Run()
	return NewServer(mockService, hub)
}

func makeRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	if err := json.Unmarshal(w.Body.Bytes(), target); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
}

// Session Management Tests

func TestCreateSession(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]string
		setupMock      func(*MockPuzzleService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "Create session with default config",
			requestBody: nil,
			setupMock: func(m *MockPuzzleService) {
				m.CreateSessionFunc = func(ctx context.Context, configName string) (*service.SessionInfo, error) {
					return &service.SessionInfo{
						ID:             "sess-123",
						ConfigName:     "classic",
						CreatedAt:      time.Now(),
						LastAccessedAt: time.Now(),
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.SessionInfo
				parseResponse(t, w, &resp)
				if resp.ID != "sess-123" {
					t.Errorf("Expected session ID sess-123, got %s", resp.ID)
				}
			},
		},
		{
			name:        "Create session with specific config",
			requestBody: map[string]string{"config_id": "corridor"},
			setupMock: func(m *MockPuzzleService) {
				m.CreateSessionFunc = func(ctx context.Context, configName string) (*service.SessionInfo, error) {
					if configName != "corridor" {
						t.Errorf("Expected config name 'corridor', got %s", configName)
					}
					return &service.SessionInfo{
						ID:         "sess-456",
						ConfigName: configName,
						CreatedAt:  time.Now(),
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.SessionInfo
				parseResponse(t, w, &resp)
				if resp.ConfigName != "corridor" {
					t.Errorf("Expected config name 'corridor', got %s", resp.ConfigName)
				}
			},
		},
		{
			name:        "Handle service error",
			requestBody: nil,
			setupMock: func(m *MockPuzzleService) {
				m.CreateSessionFunc = func(ctx context.Context, configName string) (*service.SessionInfo, error) {
					return nil, fmt.Errorf("service error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]string
				parseResponse(t, w, &resp)
				if resp["error"] != "service error" {
					t.Errorf("Expected error message 'service error', got %s", resp["error"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockPuzzleService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("POST", "/api/sessions", tt.requestBody)

			server.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestListSessions(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*MockPuzzleService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "List multiple sessions",
			setupMock: func(m *MockPuzzleService) {
				m.ListSessionsFunc = func(ctx context.Context) ([]*service.SessionInfo, error) {
					return []*service.SessionInfo{
						{ID: "sess-1", ConfigName: "classic"},
						{ID: "sess-2", ConfigName: "corridor"},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				parseResponse(t, w, &resp)
				if resp["count"].(float64) != 2 {
					t.Errorf("Expected count 2, got %v", resp["count"])
				}
				sessions := resp["sessions"].([]interface{})
				if len(sessions) != 2 {
					t.Errorf("Expected 2 sessions, got %d", len(sessions))
				}
			},
		},
		{
			name: "Handle empty session list",
			setupMock: func(m *MockPuzzleService) {
				m.ListSessionsFunc = func(ctx context.Context) ([]*service.SessionInfo, error) {
					return []*service.SessionInfo{}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				parseResponse(t, w, &resp)
				if resp["count"].(float64) != 0 {
					t.Errorf("Expected count 0, got %v", resp["count"])
				}
			},
		},
		{
			name: "Handle service error",
			setupMock: func(m *MockPuzzleService) {
				m.ListSessionsFunc = func(ctx context.Context) ([]*service.SessionInfo, error) {
					return nil, fmt.Errorf("storage error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]string
				parseResponse(t, w, &resp)
				if resp["error"] != "storage error" {
					t.Errorf("Expected error 'storage error', got %s", resp["error"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockPuzzleService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("GET", "/api/sessions", nil)

			server.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestGetSession(t *testing.T) {
	tests := []struct {
		name           string
		sessionID      string
		setupMock      func(*MockPuzzleService)
		expectedStatus int
	}{
		{
			name:      "Get existing session",
			sessionID: "sess-123",
			setupMock: func(m *MockPuzzleService) {
				m.GetSessionFunc = func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
					if sessionID != "sess-123" {
						return nil, fmt.Errorf("session not found")
					}
					return &service.SessionInfo{
						ID:         sessionID,
						ConfigName: "test-config",
						CreatedAt:  time.Now(),
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "Session not found",
			sessionID: "nonexistent",
			setupMock: func(m *MockPuzzleService) {
				m.GetSessionFunc = func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
					return nil, fmt.Errorf("session not found")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockPuzzleService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("GET", "/api/sessions/"+tt.sessionID, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.sessionID})

			server.handleGetSession(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestDeleteSession(t *testing.T) {
	mockService := &MockPuzzleService{
		DeleteSessionFunc: func(ctx context.Context, sessionID string) error {
			if sessionID != "sess-123" {
				return fmt.Errorf("session not found")
			}
			return nil
		},
	}
	server := setupTestServer(mockService)

	t.Run("Delete existing session", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := makeRequest("DELETE", "/api/sessions/sess-123", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "sess-123"})

		server.handleDeleteSession(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		var resp map[string]string
		parseResponse(t, w, &resp)
		if resp["message"] != "Session sess-123 deleted" {
			t.Errorf("Unexpected message: %s", resp["message"])
		}
	})

	t.Run("Delete non-existent session", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := makeRequest("DELETE", "/api/sessions/nonexistent", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "nonexistent"})

		server.handleDeleteSession(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

// Puzzle Operations Tests

func TestMove(t *testing.T) {
	tests := []struct {
		name           string
		sessionID      string
		requestBody    map[string]interface{}
		setupMock      func(*MockPuzzleService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "Valid move up",
			sessionID:   "sess-123",
			requestBody: map[string]interface{}{"car": 0, "direction": "up"},
			setupMock: func(m *MockPuzzleService) {
				m.MoveFunc = func(ctx context.Context, sessionID string, car int, direction engine.Direction, distance int) (*service.MoveResult, error) {
					if direction != engine.Up {
						t.Errorf("Expected direction 'up', got %s", direction)
					}
					if distance != 1 {
						t.Errorf("Expected default distance 1, got %d", distance)
					}
					return &service.MoveResult{
						Success:     true,
						PuzzleState: &engine.PuzzleState{TotalMoves: 1},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.MoveResult
				parseResponse(t, w, &resp)
				if !resp.Success {
					t.Error("Expected success to be true")
				}
			},
		},
		{
			name:        "Move with explicit distance",
			sessionID:   "sess-123",
			requestBody: map[string]interface{}{"car": 1, "direction": "left", "distance": 3},
			setupMock: func(m *MockPuzzleService) {
				m.MoveFunc = func(ctx context.Context, sessionID string, car int, direction engine.Direction, distance int) (*service.MoveResult, error) {
					if car != 1 || direction != engine.Left || distance != 3 {
						t.Errorf("Unexpected call: car=%d direction=%s distance=%d", car, direction, distance)
					}
					return &service.MoveResult{
						Success:     true,
						PuzzleState: &engine.PuzzleState{},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "Rejected move is still HTTP 200",
			sessionID:   "sess-123",
			requestBody: map[string]interface{}{"car": 0, "direction": "left"},
			setupMock: func(m *MockPuzzleService) {
				m.MoveFunc = func(ctx context.Context, sessionID string, car int, direction engine.Direction, distance int) (*service.MoveResult, error) {
					return &service.MoveResult{
						Success:     false,
						Reason:      "misaligned-orientation",
						PuzzleState: &engine.PuzzleState{},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.MoveResult
				parseResponse(t, w, &resp)
				if resp.Success {
					t.Error("Expected success to be false")
				}
				if resp.Reason != "misaligned-orientation" {
					t.Errorf("Expected reason 'misaligned-orientation', got %s", resp.Reason)
				}
			},
		},
		{
			name:           "Invalid direction",
			sessionID:      "sess-123",
			requestBody:    map[string]interface{}{"car": 0, "direction": "diagonal"},
			setupMock:      nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Session not found",
			sessionID:   "nonexistent",
			requestBody: map[string]interface{}{"car": 0, "direction": "up"},
			setupMock: func(m *MockPuzzleService) {
				m.MoveFunc = func(ctx context.Context, sessionID string, car int, direction engine.Direction, distance int) (*service.MoveResult, error) {
					return nil, fmt.Errorf("session not found")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockPuzzleService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("POST", "/api/sessions/"+tt.sessionID+"/move", tt.requestBody)
			req = mux.SetURLVars(req, map[string]string{"id": tt.sessionID})

			server.handleMove(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestCanMove(t *testing.T) {
	mockService := &MockPuzzleService{
		CanMoveFunc: func(ctx context.Context, sessionID string, car int, direction engine.Direction, distance int) (*service.MoveResult, error) {
			if direction == engine.Right {
				return &service.MoveResult{Success: false, Reason: "blocked-by-car"}, nil
			}
			return &service.MoveResult{Success: true}, nil
		},
	}
	server := setupTestServer(mockService)

	t.Run("Allowed slide", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := makeRequest("POST", "/api/sessions/sess-123/can-move", map[string]interface{}{"car": 0, "direction": "up"})
		req = mux.SetURLVars(req, map[string]string{"id": "sess-123"})

		server.handleCanMove(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		var resp service.MoveResult
		parseResponse(t, w, &resp)
		if !resp.Success {
			t.Error("Expected success to be true")
		}
	})

	t.Run("Blocked slide", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := makeRequest("POST", "/api/sessions/sess-123/can-move", map[string]interface{}{"car": 0, "direction": "right"})
		req = mux.SetURLVars(req, map[string]string{"id": "sess-123"})

		server.handleCanMove(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		var resp service.MoveResult
		parseResponse(t, w, &resp)
		if resp.Success || resp.Reason != "blocked-by-car" {
			t.Errorf("Expected blocked-by-car rejection, got success=%v reason=%s", resp.Success, resp.Reason)
		}
	})
}

func TestReset(t *testing.T) {
	tests := []struct {
		name           string
		sessionID      string
		setupMock      func(*MockPuzzleService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:      "Reset existing session",
			sessionID: "sess-123",
			setupMock: func(m *MockPuzzleService) {
				m.ResetFunc = func(ctx context.Context, sessionID string) (*engine.PuzzleState, error) {
					return &engine.PuzzleState{
						Fresh:      true,
						TotalMoves: 4,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				parseResponse(t, w, &resp)
				if resp["message"] != "Puzzle reset successfully" {
					t.Errorf("Expected success message, got %s", resp["message"])
				}
				state := resp["state"].(map[string]interface{})
				if state["fresh"].(bool) != true {
					t.Error("Expected a fresh state after reset")
				}
			},
		},
		{
			name:      "Reset non-existent session",
			sessionID: "nonexistent",
			setupMock: func(m *MockPuzzleService) {
				m.ResetFunc = func(ctx context.Context, sessionID string) (*engine.PuzzleState, error) {
					return nil, fmt.Errorf("session not found")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockPuzzleService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("POST", "/api/sessions/"+tt.sessionID+"/reset", nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.sessionID})

			server.handleReset(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestSolve(t *testing.T) {
	mockService := &MockPuzzleService{
		SolveFunc: func(ctx context.Context, sessionID string) (*service.SolveResult, error) {
			return &service.SolveResult{
				Found:          true,
				StatesExplored: 42,
			}, nil
		},
	}
	server := setupTestServer(mockService)

	w := httptest.NewRecorder()
	req := makeRequest("POST", "/api/sessions/sess-123/solve", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "sess-123"})

	server.handleSolve(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp service.SolveResult
	parseResponse(t, w, &resp)
	if !resp.Found || resp.StatesExplored != 42 {
		t.Errorf("Unexpected solve result: %+v", resp)
	}
}

func TestGetHistory(t *testing.T) {
	tests := []struct {
		name           string
		sessionID      string
		queryParams    string
		setupMock      func(*MockPuzzleService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "Default pagination",
			sessionID:   "sess-123",
			queryParams: "",
			setupMock: func(m *MockPuzzleService) {
				m.GetMoveHistoryFunc = func(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error) {
					if opts.Page != 1 || opts.Limit != 20 {
						t.Errorf("Expected default page=1, limit=20, got page=%d, limit=%d", opts.Page, opts.Limit)
					}
					return &service.HistoryResponse{
						Moves: []engine.MoveHistoryEntry{
							{Car: 0, Direction: engine.Up},
							{Car: 1, Direction: engine.Left},
						},
						TotalMoves: 5,
						Page:       1,
						PageSize:   20,
						TotalPages: 1,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.HistoryResponse
				parseResponse(t, w, &resp)
				if resp.PageSize != 20 {
					t.Errorf("Expected page size 20, got %d", resp.PageSize)
				}
			},
		},
		{
			name:        "Custom pagination parameters",
			sessionID:   "sess-123",
			queryParams: "?page=2&limit=10&order=asc",
			setupMock: func(m *MockPuzzleService) {
				m.GetMoveHistoryFunc = func(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error) {
					if opts.Page != 2 || opts.Limit != 10 || opts.Order != "asc" {
						t.Errorf("Expected page=2, limit=10, order=asc, got page=%d, limit=%d, order=%s",
							opts.Page, opts.Limit, opts.Order)
					}
					return &service.HistoryResponse{
						Page:     2,
						PageSize: 10,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.HistoryResponse
				parseResponse(t, w, &resp)
				if resp.Page != 2 || resp.PageSize != 10 {
					t.Errorf("Expected page 2 with size 10, got page %d with size %d",
						resp.Page, resp.PageSize)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockPuzzleService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/sessions/"+tt.sessionID+"/history"+tt.queryParams, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.sessionID})

			server.handleGetHistory(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestGetPuzzleState(t *testing.T) {
	tests := []struct {
		name           string
		sessionID      string
		setupMock      func(*MockPuzzleService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:      "Get existing puzzle state",
			sessionID: "sess-123",
			setupMock: func(m *MockPuzzleService) {
				m.GetPuzzleStateFunc = func(ctx context.Context, sessionID string) (*engine.PuzzleState, error) {
					return &engine.PuzzleState{
						Fresh:      true,
						Solved:     false,
						TotalMoves: 25,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp engine.PuzzleState
				parseResponse(t, w, &resp)
				if resp.TotalMoves != 25 {
					t.Errorf("Expected 25 total moves, got %d", resp.TotalMoves)
				}
			},
		},
		{
			name:      "Session not found",
			sessionID: "nonexistent",
			setupMock: func(m *MockPuzzleService) {
				m.GetPuzzleStateFunc = func(ctx context.Context, sessionID string) (*engine.PuzzleState, error) {
					return nil, fmt.Errorf("session not found")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockPuzzleService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("GET", "/api/sessions/"+tt.sessionID+"/state", nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.sessionID})

			server.handleGetPuzzleState(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestGetBoard(t *testing.T) {
	mockService := &MockPuzzleService{
		GetBoardFunc: func(ctx context.Context, sessionID string) (string, error) {
			return "0 0 0\n0 1 0\n0 1 0", nil
		},
	}
	server := setupTestServer(mockService)

	w := httptest.NewRecorder()
	req := makeRequest("GET", "/api/sessions/sess-123/board", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "sess-123"})

	server.handleGetBoard(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp map[string]string
	parseResponse(t, w, &resp)
	if resp["board"] != "0 0 0\n0 1 0\n0 1 0" {
		t.Errorf("Unexpected board rendering: %q", resp["board"])
	}
}

func TestListConfigs(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*MockPuzzleService)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "List available configs",
			setupMock: func(m *MockPuzzleService) {
				m.ListConfigsFunc = func(ctx context.Context) ([]*service.ConfigInfo, error) {
					return []*service.ConfigInfo{
						{Name: "Classic", ConfigID: "classic"},
						{Name: "Corridor", ConfigID: "corridor"},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp []*service.ConfigInfo
				parseResponse(t, w, &resp)
				if len(resp) != 2 {
					t.Errorf("Expected 2 configs, got %d", len(resp))
				}
			},
		},
		{
			name: "Handle service error",
			setupMock: func(m *MockPuzzleService) {
				m.ListConfigsFunc = func(ctx context.Context) ([]*service.ConfigInfo, error) {
					return nil, fmt.Errorf("config error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockPuzzleService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("GET", "/api/configs", nil)

			server.handleListConfigs(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.validateResp != nil {
				tt.validateResp(t, w)
			}
		})
	}
}

func TestGetConfig(t *testing.T) {
	tests := []struct {
		name           string
		configName     string
		setupMock      func(*MockPuzzleService)
		expectedStatus int
	}{
		{
			name:       "Get existing config",
			configName: "classic",
			setupMock: func(m *MockPuzzleService) {
				m.LoadConfigFunc = func(ctx context.Context, configName string) (*engine.PuzzleConfig, error) {
					if configName != "classic" {
						return nil, fmt.Errorf("config not found")
					}
					return &engine.PuzzleConfig{
						Name:        "Classic",
						Description: "The original two-car board",
						GridSize:    5,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:       "Strip .json extension",
			configName: "corridor.json",
			setupMock: func(m *MockPuzzleService) {
				m.LoadConfigFunc = func(ctx context.Context, configName string) (*engine.PuzzleConfig, error) {
					if configName != "corridor" {
						t.Errorf("Expected config name 'corridor' (without .json), got %s", configName)
					}
					return &engine.PuzzleConfig{Name: "Corridor"}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:       "Config not found",
			configName: "nonexistent",
			setupMock: func(m *MockPuzzleService) {
				m.LoadConfigFunc = func(ctx context.Context, configName string) (*engine.PuzzleConfig, error) {
					return nil, fmt.Errorf("config not found")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockPuzzleService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := makeRequest("GET", "/api/configs/"+tt.configName, nil)
			req = mux.SetURLVars(req, map[string]string{"name": tt.configName})

			server.handleGetConfig(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestCreateConfig(t *testing.T) {
	t.Run("Valid config", func(t *testing.T) {
		saved := false
		mockService := &MockPuzzleService{
			SaveConfigFunc: func(ctx context.Context, configName string, config *engine.PuzzleConfig) error {
				saved = true
				if configName != "Custom" {
					t.Errorf("Expected config name 'Custom', got %s", configName)
				}
				return nil
			},
		}
		server := setupTestServer(mockService)

		w := httptest.NewRecorder()
		req := makeRequest("POST", "/api/configs", map[string]interface{}{
			"name":      "Custom",
			"grid_size": 5,
			"layout":    []string{".....", "..v..", "..v..", ".....", "...hh"},
		})

		server.handleCreateConfig(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("Expected status 201, got %d", w.Code)
		}
		if !saved {
			t.Error("Expected SaveConfig to be called")
		}
	})

	t.Run("Missing name", func(t *testing.T) {
		server := setupTestServer(&MockPuzzleService{})

		w := httptest.NewRecorder()
		req := makeRequest("POST", "/api/configs", map[string]interface{}{"grid_size": 5})

		server.handleCreateConfig(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestWebSocketEndpoint(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    string
		setupMock      func(*MockPuzzleService)
		expectedStatus int
	}{
		{
			name:           "Missing session parameter",
			queryParams:    "",
			setupMock:      nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Invalid session",
			queryParams: "?session=invalid",
			setupMock: func(m *MockPuzzleService) {
				m.GetSessionFunc = func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
					return nil, fmt.Errorf("session not found")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockPuzzleService{}
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			server := setupTestServer(mockService)
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/ws"+tt.queryParams, nil)

			server.handleWebSocket(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	server := setupTestServer(&MockPuzzleService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/health", nil)

	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp map[string]string
	parseResponse(t, w, &resp)
	if resp["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %s", resp["status"])
	}
}
