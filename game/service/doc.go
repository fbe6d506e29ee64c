// Package service provides the business logic layer for the parking puzzle.
//
// The service package implements:
//   - Multi-session puzzle management
//   - Configuration management and loading
//   - Move processing and rejection reporting
//   - Session lifecycle management
//   - Move history tracking
//   - Solver access for the current board
//
// Core Interfaces:
//
// PuzzleService is the main service interface providing high-level puzzle
// operations. SessionManager handles session creation, retrieval, and
// lifecycle. ConfigManager manages puzzle configuration loading and saving.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the puzzle engine, providing session isolation, configuration management,
// and business logic orchestration. Each session maintains its own engine
// instance with independent state.
//
// The engine never rescans the grid on its own; the service refreshes the car
// collection before validating a move and again after applying one, so
// transport callers always address cars by their current discovery order.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr := config.NewManager("configs")
//	puzzleService := service.NewPuzzleService(sessionMgr, configMgr)
//
//	// Create a new session
//	sessionInfo, err := puzzleService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Slide car 0 one cell up
//	result, err := puzzleService.Move(ctx, sessionInfo.ID, 0, engine.Up, 1)
//
// Session Management:
//
// Sessions are identified by unique IDs and maintain independent puzzle
// state. Multiple sessions can run concurrently with different
// configurations. Sessions track creation time, last access time, and move
// history for analytics and debugging.
package service
