// Package websocket provides WebSocket transport for the parking puzzle server.
//
// The websocket package implements:
//   - Real-time state push to connected clients
//   - Session-aware WebSocket connections
//   - Automatic state broadcasting on changes
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine pair that manages reading, writing, and cleanup. All session map
// mutations happen in the hub's Run loop; broadcasts are routed through the
// hub's channel so no external locking is needed.
//
// Message Protocol:
//
// Outgoing messages are JSON-encoded:
//
//	{"session_id": "ab12cd34", "puzzle_state": {...}, "event": "state_update"}
//
// Incoming messages are not processed; connections exist to receive pushed
// state only.
//
// Session Integration:
//
// Clients specify their session ID via query parameter (?session=ab12cd34)
// when establishing the connection. State updates are broadcast only to
// clients connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// after a successful move:
//	hub.BroadcastToSession(sessionID, state)
package websocket
