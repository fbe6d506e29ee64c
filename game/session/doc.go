// Package session provides session management for the parking puzzle server.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session lifecycle management
//   - Concurrent access control
//   - Session cleanup and expiration
//   - Optional file-based persistence
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// Each session owns its own puzzle engine instance along with metadata like
// creation time and last access time. FilePersistence stores sessions as
// JSON files so boards survive a server restart.
//
// Session Identifiers:
//
// Sessions use the 8-character prefix of a random UUID for easy reference.
// Lookups are case-insensitive.
//
// Concurrency:
//
// The session manager is thread-safe and supports concurrent operations.
// Multiple goroutines can safely create, retrieve, and modify different
// sessions simultaneously. Internal locking ensures data consistency.
//
// Usage:
//
//	manager := session.NewManager()
//
//	// Create a new session
//	sess, err := manager.Create("", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Retrieve existing session
//	sess, err = manager.Get(sessionID)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// List all active sessions
//	sessions := manager.List()
//
// Cleanup:
//
// Sessions can be explicitly deleted or may expire based on inactivity.
// CleanupExpiredSessions removes stale sessions from memory; persisted
// copies remain on disk until deleted.
package session
