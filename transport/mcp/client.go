package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bastianibanez/parking/game/engine"
	"github.com/bastianibanez/parking/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Parking Puzzle",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Parking Puzzle - MCP Interface

This is a thin client that proxies all requests to the REST API server.

PUZZLE OBJECTIVE:
Slide cars along their axis until the designated car covers the target span.

AVAILABLE TOOLS:
- puzzle_state: Get current puzzle state with the rendered board
- move: Slide one car (car index + direction + optional distance)
- bulk_move: Execute a sequence of slides, stopping at the first rejection
- can_move: Check whether a slide would succeed without applying it
- reset_puzzle: Restore the initial layout
- solve_puzzle: Run the solver on the current board
- move_history: View past slides (accepted and rejected)
- create_session: Create new puzzle session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available configurations
- puzzle_instructions: Get comprehensive rules and strategy notes

Cars are addressed by their index in the scanned car list (0-based, scan
order is top-to-bottom, left-to-right by the car's first cell). Horizontal
cars only accept left/right; vertical cars only accept up/down.`),
	)

	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new puzzle session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Identifier of the config to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active puzzle sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Puzzle operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "puzzle_state",
		Description: "Get the current puzzle state with the rendered board and car list",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handlePuzzleState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Slide a car along its axis",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"car": map[string]interface{}{
					"type":        "integer",
					"description": "Index of the car in the scanned car list (0-based)",
				},
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"up", "down", "left", "right"},
					"description": "Direction to slide; must match the car's orientation",
				},
				"distance": map[string]interface{}{
					"type":        "integer",
					"description": "Number of cells to slide (defaults to 1)",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this slide (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "car", "direction"},
		},
	}, c.handleMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "bulk_move",
		Description: "Execute multiple slides in sequence, stopping at the first rejection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"moves": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"car": map[string]interface{}{
								"type":        "integer",
								"description": "Car index",
							},
							"direction": map[string]interface{}{
								"type": "string",
								"enum": []string{"up", "down", "left", "right"},
							},
							"distance": map[string]interface{}{
								"type":        "integer",
								"description": "Cells to slide (defaults to 1)",
							},
						},
						"required": []string{"car", "direction"},
					},
					"description": "Sequence of slides to apply in order",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this sequence of slides (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "moves"},
		},
	}, c.handleBulkMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "can_move",
		Description: "Check whether a slide would succeed without applying it",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"car": map[string]interface{}{
					"type":        "integer",
					"description": "Index of the car in the scanned car list (0-based)",
				},
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"up", "down", "left", "right"},
					"description": "Direction to check",
				},
				"distance": map[string]interface{}{
					"type":        "integer",
					"description": "Number of cells (defaults to 1)",
				},
			},
			Required: []string{"session_id", "car", "direction"},
		},
	}, c.handleCanMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_puzzle",
		Description: "Reset the puzzle to its initial layout",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "solve_puzzle",
		Description: "Run the breadth-first solver on the session's current board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleSolve)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get move history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available puzzle configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "puzzle_instructions",
		Description: "Get comprehensive puzzle rules and strategy notes",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handlePuzzleInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n", session.ID, session.ConfigName)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Config: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePuzzleState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.PuzzleState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatPuzzleState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	car := intArg(args, "car", 0)
	direction, _ := args["direction"].(string)
	distance := intArg(args, "distance", 1)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"car":       car,
		"direction": direction,
		"distance":  distance,
	}

	var result service.MoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatMoveResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleBulkMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	movesRaw, _ := args["moves"].([]interface{})
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	if len(movesRaw) == 0 {
		return mcp.NewToolResultError("moves must be a non-empty array"), nil
	}
	if len(movesRaw) > engine.MaxBulkMoves {
		return mcp.NewToolResultError(fmt.Sprintf("too many moves: %d (max %d)", len(movesRaw), engine.MaxBulkMoves)), nil
	}

	// The API applies one slide per request; issue them in order and stop
	// at the first rejection, matching the engine's bulk semantics.
	var b strings.Builder
	var last *service.MoveResult
	executed := 0

	for i, raw := range movesRaw {
		m, ok := raw.(map[string]interface{})
		if !ok {
			b.WriteString(fmt.Sprintf("Stopped: move %d is malformed\n", i+1))
			break
		}
		car := intArg(m, "car", 0)
		direction, _ := m["direction"].(string)
		distance := intArg(m, "distance", 1)

		body := map[string]interface{}{
			"car":       car,
			"direction": direction,
			"distance":  distance,
		}

		var result service.MoveResult
		if err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/move", sessionID), body, &result); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		last = &result

		status := "✓"
		if !result.Success {
			status = "✗"
		}
		b.WriteString(fmt.Sprintf("%d. car=%d %s x%d %s", i+1, car, direction, distance, status))
		if result.Reason != "" {
			b.WriteString(" (" + result.Reason + ")")
		}
		b.WriteString("\n")

		if !result.Success {
			b.WriteString(fmt.Sprintf("Stopped: %s\n", result.Reason))
			break
		}
		executed++

		if result.Solved {
			b.WriteString("Puzzle solved!\n")
			break
		}
	}

	header := fmt.Sprintf("Executed %d/%d moves\n\n", executed, len(movesRaw))
	response := header + b.String()
	if last != nil && last.PuzzleState != nil {
		response += "\n" + formatPuzzleState(last.PuzzleState)
	}
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleCanMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	car := intArg(args, "car", 0)
	direction, _ := args["direction"].(string)
	distance := intArg(args, "distance", 1)

	body := map[string]interface{}{
		"car":       car,
		"direction": direction,
		"distance":  distance,
	}

	var result service.MoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/can-move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if result.Success {
		return mcp.NewToolResultText(fmt.Sprintf("✓ car %d can slide %s by %d", car, direction, distance)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("✗ car %d cannot slide %s by %d: %s", car, direction, distance, result.Reason)), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string              `json:"message"`
		State   *engine.PuzzleState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatPuzzleState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleSolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var result service.SolveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/solve", sessionID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSolveResult(&result)), nil
}

func (c *Client) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatHistory(&history)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s (id: %s)\n  %s\n  Grid: %dx%d, Cars: %d\n\n",
			config.Name, config.ConfigID, config.Description, config.GridSize, config.GridSize, config.CarCount)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePuzzleInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🚗 Parking Puzzle - Complete Instructions

PUZZLE OBJECTIVE:
Slide cars around the lot until the designated car covers the target span.

PUZZLE MECHANICS:
• The board is an NxN grid; every cell is empty (.) or part of a car
• Cars are straight, rigid groups of contiguous cells on a single axis
• Horizontal cars (h) slide only left/right; vertical cars (v) slide only up/down
• A slide of distance D requires every swept cell to be inside the board and empty
• Slides are atomic: a blocked slide changes nothing
• The puzzle is solved when the target span is fully covered by matching markers

GRID LEGEND:
• . - Empty cell
• h - Cell of a horizontal car
• v - Cell of a vertical car

CAR ADDRESSING:
Cars carry no IDs on the board. They are addressed by index in the scanned
car list, ordered by each car's topmost/leftmost cell (top-to-bottom, then
left-to-right). After a successful slide the list is rescanned, so indices
can shift when cars pass each other - always re-read the car list from
puzzle_state before planning the next slide.

REJECTION REASONS:
• invalid-car-index       - index outside the scanned car list
• misaligned-orientation  - direction does not match the car's axis
• out-of-bounds           - the slide would leave the board
• blocked-by-car          - another car occupies a swept cell
• invalid-distance        - distance below 1 (a slide past the edge is out-of-bounds)

🤖 AI AGENTS - STRATEGY NOTES:

1. **Read the car list first**: puzzle_state returns cars with their index,
   orientation, length, and start/end cells. Plan with indices, not markers.

2. **Use can_move before committing**: a rejected slide still lands in the
   move history; can_move answers the same question without the noise.

3. **Indices shift**: scan order follows board position. If car 0 slides
   past car 1, their indices can swap on the next scan.

4. **Work backwards from the target**: identify which cars block the target
   span and which cars block those blockers.

5. **Use solve_puzzle when stuck**: the solver returns the shortest slide
   sequence from the current board, or reports that none exists.

MOVEMENT COMMANDS:
- move: single slide (car index, direction, optional distance)
- bulk_move: sequence of slides, stops at the first rejection
- reset_puzzle: restore the initial layout (move counter keeps counting)

SESSION MANAGEMENT:
- Multiple puzzle sessions can run simultaneously
- Each session has a unique 8-character ID
- Sessions maintain independent state and configuration

Good luck getting that car parked! 🚗`

	return mcp.NewToolResultText(instructions), nil
}

// intArg reads an integer tool argument, tolerating JSON's float64 decoding.
func intArg(args map[string]interface{}, key string, def int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatPuzzleState(session.PuzzleState))
}

func formatPuzzleState(state *engine.PuzzleState) string {
	if state == nil {
		return "No puzzle state available"
	}

	var result strings.Builder

	result.WriteString(fmt.Sprintf("Config: %s | Moves: %d | Solved: %v\n\n",
		state.ConfigName, state.TotalMoves, state.Solved))

	// Board
	for _, row := range state.Grid {
		for _, m := range row {
			result.WriteString(string(m))
		}
		result.WriteString("\n")
	}

	// Target span
	result.WriteString(fmt.Sprintf("\nTarget: (%d,%d)-(%d,%d) marker=%s\n",
		state.Target.Start.Row, state.Target.Start.Col,
		state.Target.End.Row, state.Target.End.Col,
		state.Target.Marker))

	// Car list with indices - the handle agents need for move commands
	result.WriteString(fmt.Sprintf("Cars (%d):\n", len(state.Cars)))
	for i, car := range state.Cars {
		result.WriteString(fmt.Sprintf("  %d: %s length=%d (%d,%d)-(%d,%d)\n",
			i, car.Orientation, car.Length,
			car.Start.Row, car.Start.Col, car.End.Row, car.End.Col))
	}

	if state.Solved {
		result.WriteString("\n🎉 SOLVED!")
	}

	if state.Message != "" {
		result.WriteString(fmt.Sprintf("\nMessage: %s", state.Message))
	}

	return result.String()
}

func formatMoveResult(result *service.MoveResult) string {
	response := ""
	if result.Success {
		response = "✓ Slide applied\n"
	} else {
		response = fmt.Sprintf("✗ Slide rejected: %s\n", result.Reason)
	}

	if result.Solved {
		response += "🎉 Puzzle solved!\n"
	}

	response += "\n" + formatPuzzleState(result.PuzzleState)
	return response
}

func formatSolveResult(result *service.SolveResult) string {
	if !result.Found {
		msg := result.Message
		if msg == "" {
			msg = "no solution exists from the current board"
		}
		return fmt.Sprintf("✗ No solution found: %s (states explored: %d)", msg, result.StatesExplored)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("✓ Solution found: %d slides (states explored: %d)\n\n", len(result.Steps), result.StatesExplored))
	for i, step := range result.Steps {
		b.WriteString(fmt.Sprintf("%d. car=%d %s\n", i+1, step.Car, step.Direction))
	}
	b.WriteString("\nCar indices refer to the scan order at each step; rescan between slides.")
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	result := fmt.Sprintf("Move History (Page %d/%d) — Total (cumulative): %d\n\n",
		history.Page, history.TotalPages, history.TotalMoves)

	for i, move := range history.Moves {
		num := (history.Page-1)*history.PageSize + i + 1
		status := "✓"
		if !move.Success {
			status = "✗"
		}
		result += fmt.Sprintf("%d. car=%d %s x%d %s", num, move.Car, move.Direction, move.Distance, status)
		if move.Reason != "" {
			result += " (" + move.Reason + ")"
		}
		result += "\n"
	}

	return result
}
