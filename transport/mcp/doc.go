// Package mcp provides a Model Context Protocol interface for the parking puzzle.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for puzzle operations
//   - Session-aware command execution
//   - Thin-client proxying to the REST API
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - puzzle_state: Get current puzzle state with board and car list
//   - move: Execute a single slide
//   - bulk_move: Execute a sequence of slides, stopping at the first rejection
//   - can_move: Check a slide without applying it
//   - reset_puzzle: Restore the initial layout
//   - solve_puzzle: Run the solver on the current board
//   - move_history: Retrieve move history with pagination
//   - create_session: Create new puzzle session with config selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available puzzle configurations
//   - puzzle_instructions: Get comprehensive rules and strategy notes
//
// Architecture:
//
// The client does not embed the engine. Every tool call is translated into
// an HTTP request against the REST API, so the MCP process and the HTTP
// server share one set of sessions. bulk_move is assembled client-side from
// single-slide requests since a rejected slide is atomic on the server.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Autonomously solve puzzles
//   - Probe slides with can_move before committing
//   - Compare their plans against the built-in solver
//   - Manage multiple puzzle sessions
package mcp
