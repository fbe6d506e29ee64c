// Package api provides HTTP REST handlers for the parking puzzle server.
//
// The api package implements:
//   - RESTful endpoints for puzzle operations
//   - Session management endpoints
//   - Configuration listing, retrieval, and creation
//   - WebSocket upgrade handling
//
// Endpoints:
//
// Session Management:
//   - POST   /api/sessions        - Create new session
//   - GET    /api/sessions        - List all sessions (sort, order, limit)
//   - GET    /api/sessions/{id}   - Get specific session
//   - DELETE /api/sessions/{id}   - Delete session
//
// Puzzle Operations:
//   - GET  /api/sessions/{id}/state    - Current puzzle state
//   - GET  /api/sessions/{id}/board    - Rendered board string
//   - POST /api/sessions/{id}/move     - Apply a slide
//   - POST /api/sessions/{id}/can-move - Check a slide without applying it
//   - POST /api/sessions/{id}/reset    - Restore the initial layout
//   - POST /api/sessions/{id}/solve    - Run the solver on the current board
//   - GET  /api/sessions/{id}/history  - Move history with pagination
//
// Configuration:
//   - GET  /api/configs        - List available configurations
//   - POST /api/configs        - Save a new configuration
//   - GET  /api/configs/{name} - Get a configuration
//
// Move requests are sent as POST with JSON body:
//
//	{
//	  "car": 0,              // index into the scanned car collection
//	  "direction": "up",     // up|down|left|right
//	  "distance": 1          // optional, defaults to 1
//	}
//
// A rejected slide is not an HTTP error: the response carries
// success=false and a machine-readable reason (e.g. "blocked-by-car",
// "out-of-bounds"). HTTP errors are reserved for unknown sessions and
// malformed requests.
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
