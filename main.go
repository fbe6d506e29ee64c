// Command parking starts the parking puzzle server.
//
// It supports two modes:
//  1. "serve" (default) – runs the HTTP server exposing REST API, WebSocket, and an /mcp HTTP endpoint
//  2. "mcp-stdio" – runs an MCP stdio server and spins up an internal HTTP API if none is available
//
// Flags control host/port, config directory, debug logging, version output,
// and optional ngrok tunneling for easy external access during development.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v3"
	"golang.ngrok.com/ngrok"
	ngrokConfig "golang.ngrok.com/ngrok/config"

	"github.com/bastianibanez/parking/api"
	"github.com/bastianibanez/parking/game/config"
	"github.com/bastianibanez/parking/game/service"
	"github.com/bastianibanez/parking/game/session"
	"github.com/bastianibanez/parking/transport/mcp"
	"github.com/bastianibanez/parking/transport/websocket"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Parking Puzzle Server"
)

// serverOptions carries the resolved flag values into the run functions.
type serverOptions struct {
	Port        int
	Host        string
	ConfigDir   string
	SessionsDir string
	Debug       bool
	Ngrok       bool
	NgrokAuth   string
	NgrokDomain string
}

func optionsFromCommand(cmd *cli.Command) serverOptions {
	return serverOptions{
		Port:        int(cmd.Int("port")),
		Host:        cmd.String("host"),
		ConfigDir:   cmd.String("config-dir"),
		SessionsDir: cmd.String("sessions-dir"),
		Debug:       cmd.Bool("debug"),
		Ngrok:       cmd.Bool("ngrok"),
		NgrokAuth:   cmd.String("ngrok-auth"),
		NgrokDomain: cmd.String("ngrok-domain"),
	}
}

// getConfigDirDefault returns the default configuration directory.
// It first honors the CONFIG_DIR environment variable, then falls back to "configs".
func getConfigDirDefault() string {
	if configDir := os.Getenv("CONFIG_DIR"); configDir != "" {
		return configDir
	}
	return "configs"
}

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file")
	}

	flags := []cli.Flag{
		&cli.IntFlag{Name: "port", Value: 8080, Usage: "HTTP server port"},
		&cli.StringFlag{Name: "host", Value: "localhost", Usage: "HTTP server host"},
		&cli.StringFlag{Name: "config-dir", Value: getConfigDirDefault(), Usage: "Directory containing puzzle configurations"},
		&cli.StringFlag{Name: "sessions-dir", Value: "sessions", Usage: "Directory for persisted session files"},
		&cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
		&cli.BoolFlag{Name: "ngrok", Usage: "Enable ngrok tunnel"},
		&cli.StringFlag{Name: "ngrok-auth", Usage: "Ngrok auth token (or use NGROK_AUTHTOKEN env var)"},
		&cli.StringFlag{Name: "ngrok-domain", Usage: "Custom ngrok domain (optional)"},
	}

	root := &cli.Command{
		Name:    "parking",
		Usage:   "sliding-block parking puzzle server",
		Version: Version,
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runServe(optionsFromCommand(cmd))
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run HTTP server with API, WebSocket, and MCP endpoint (default)",
				Flags: flags,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runServe(optionsFromCommand(cmd))
				},
			},
			{
				Name:    "mcp-stdio",
				Aliases: []string{"mcp", "stdio-mcp"},
				Usage:   "Run MCP stdio server with internal HTTP server",
				Flags:   flags,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runStdioMCP(optionsFromCommand(cmd))
				},
			},
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// runServe starts the HTTP server with REST API, WebSocket hub, and an /mcp proxy endpoint.
// If ngrok is enabled (via flag or environment), it also provisions a public tunnel.
func runServe(opts serverOptions) error {
	setupLogging(opts.Debug)
	log.Printf("Starting %s v%s (mode: serve)", AppName, Version)

	puzzleService, sessionManager, err := initializeServices(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	// Create WebSocket hub
	hub := websocket.NewHub()
	go hub.Run()

	// Create API server
	apiServer := api.NewServer(puzzleService, hub)

	addr := fmt.Sprintf("%s:%d", opts.Host, opts.Port)

	// Create MCP client for /mcp endpoint
	baseURL := fmt.Sprintf("http://%s", addr)
	mcpClient := mcp.NewClient(baseURL)

	// Create main router that combines API and MCP
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/", apiServer)
	mainRouter.HandleFunc("/mcp", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := mcpClient.GetMCPServer().HandleMessage(r.Context(), body)

		w.Header().Set("Content-Type", "application/json")
		responseData, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Write(responseData)
	})

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mainRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		log.Printf("HTTP server listening on %s", addr)
		log.Printf("REST API: http://%s/api", addr)
		log.Printf("WebSocket: ws://%s/ws?session=<session_id>", addr)
		log.Printf("MCP endpoint: http://%s/mcp", addr)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Check if ngrok should be enabled (from flag or environment)
	ngrokShouldRun := opts.Ngrok
	if !ngrokShouldRun {
		if envEnabled := os.Getenv("NGROK_ENABLED"); envEnabled == "true" || envEnabled == "1" {
			ngrokShouldRun = true
		}
	}

	if ngrokShouldRun {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runNgrokTunnel(ctx, opts, mainRouter)
		}()
	}

	// Wait for shutdown signal
	sig := <-stop
	log.Printf("Received signal: %v. Shutting down...", sig)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Flush in-memory sessions so restarts resume mid-puzzle
	if err := sessionManager.SaveAllSessions(); err != nil {
		log.Printf("Warning: Failed to persist sessions on shutdown: %v", err)
	}

	wg.Wait()
	log.Println("Server stopped")
	return nil
}

// runNgrokTunnel provisions a public tunnel and serves the router through it.
func runNgrokTunnel(ctx context.Context, opts serverOptions, handler http.Handler) {
	// Get auth token from flag or environment (support both naming conventions)
	authToken := opts.NgrokAuth
	if authToken == "" {
		authToken = os.Getenv("NGROK_AUTHTOKEN")
		if authToken == "" {
			authToken = os.Getenv("NGROK_AUTH_TOKEN")
		}
	}

	if authToken == "" {
		log.Println("WARNING: Ngrok enabled but no auth token provided (use --ngrok-auth, NGROK_AUTHTOKEN, or NGROK_AUTH_TOKEN env var)")
		return
	}

	log.Println("Starting ngrok tunnel...")

	domain := opts.NgrokDomain
	if domain == "" {
		domain = os.Getenv("NGROK_DOMAIN")
	}

	var tunnel ngrokConfig.Tunnel
	if domain != "" {
		tunnel = ngrokConfig.HTTPEndpoint(ngrokConfig.WithDomain(domain))
		log.Printf("Using custom ngrok domain: %s", domain)
	} else {
		tunnel = ngrokConfig.HTTPEndpoint()
	}

	tun, err := ngrok.Listen(ctx,
		tunnel,
		ngrok.WithAuthtoken(authToken),
	)
	if err != nil {
		log.Printf("Failed to start ngrok tunnel: %v", err)
		return
	}
	defer func() {
		if err := tun.Close(); err != nil {
			log.Printf("Failed to close ngrok tunnel: %v", err)
		}
	}()

	ngrokURL := tun.URL()
	log.Printf("🚀 Ngrok tunnel established: %s", ngrokURL)
	log.Printf("  REST API (ngrok): %s/api", ngrokURL)
	log.Printf("  WebSocket (ngrok): %s/ws?session=<session_id>", ngrokURL)
	log.Printf("  MCP endpoint (ngrok): %s/mcp", ngrokURL)

	if err := http.Serve(tun, handler); err != nil && err != http.ErrServerClosed {
		log.Printf("Ngrok server error: %v", err)
	}
	log.Println("Ngrok tunnel closed")
}

// setupLogging configures the standard logger flags.
func setupLogging(debug bool) {
	if debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}
}

// initializeServices wires session/config managers and the puzzle service.
// It also starts background routines to prune stale sessions and sync with
// the session files on disk.
func initializeServices(opts serverOptions) (service.PuzzleService, *session.Manager, error) {
	// Create config manager first (needed for persistence)
	configManager, err := config.NewManager(opts.ConfigDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	// Create session persistence
	persistence, err := session.NewFilePersistence(opts.SessionsDir, configManager)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session persistence: %w", err)
	}

	// Create session manager with persistence
	sessionManager := session.NewManagerWithPersistence(persistence)

	// Load persisted sessions on startup
	if err := sessionManager.LoadPersistedSessions(); err != nil {
		log.Printf("Warning: Failed to load persisted sessions: %v", err)
	}

	puzzleService := service.NewPuzzleService(sessionManager, configManager)

	go sessionCleanupRoutine(sessionManager)
	go filesystemSyncRoutine(sessionManager, persistence)

	return puzzleService, sessionManager, nil
}

// sessionCleanupRoutine periodically removes sessions that have not been accessed
// within the retention window.
func sessionCleanupRoutine(manager *session.Manager) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		removed := manager.CleanupExpiredSessions(24 * time.Hour)
		if removed > 0 {
			log.Printf("Cleaned up %d expired sessions", removed)
		}
	}
}

// filesystemSyncRoutine periodically syncs in-memory sessions with filesystem state.
// It removes sessions from memory when their corresponding files are deleted.
func filesystemSyncRoutine(manager *session.Manager, persistence session.SessionPersistence) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if persistence == nil {
			continue
		}

		memorySessions := manager.List()

		pruned := 0
		for _, sess := range memorySessions {
			if !persistence.Exists(sess.ID) {
				if err := manager.DeleteFromMemory(sess.ID); err == nil {
					pruned++
					log.Printf("Pruned session %s from memory (file deleted)", sess.ID)
				}
			}
		}

		if pruned > 0 {
			log.Printf("Filesystem sync: pruned %d orphaned sessions from memory", pruned)
		}
	}
}

// runStdioMCP runs an MCP stdio server.
// It tries to reuse an external API at http://localhost:8080; if unavailable, it
// starts a minimal internal HTTP API bound to a random loopback port and targets that.
func runStdioMCP(opts serverOptions) error {
	setupLogging(opts.Debug)
	log.Printf("Starting %s v%s (mode: mcp-stdio)", AppName, Version)

	var baseURL string

	// First, try to connect to an external API server
	externalURL := fmt.Sprintf("http://%s:%d", opts.Host, opts.Port)
	log.Printf("Checking for external API server at %s...", externalURL)

	testClient := &http.Client{Timeout: 2 * time.Second}
	resp, err := testClient.Get(externalURL + "/api/health")
	if err == nil && resp.StatusCode < 500 {
		resp.Body.Close()
		log.Printf("External API server found at %s, using it for MCP", externalURL)
		baseURL = externalURL
	} else {
		log.Printf("No external API server found, starting internal HTTP server")

		puzzleService, _, err := initializeServices(opts)
		if err != nil {
			return fmt.Errorf("failed to initialize services: %w", err)
		}

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return fmt.Errorf("failed to get available port: %w", err)
		}

		internalPort := listener.Addr().(*net.TCPAddr).Port
		internalAddr := fmt.Sprintf("127.0.0.1:%d", internalPort)

		log.Printf("Starting internal HTTP server on %s for MCP stdio", internalAddr)

		hub := websocket.NewHub()
		go hub.Run()

		apiServer := api.NewServer(puzzleService, hub)

		httpServer := &http.Server{
			Handler: apiServer,
		}

		go func() {
			if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
				log.Printf("Internal HTTP server error: %v", err)
			}
		}()

		// Wait a moment for the server to be ready
		time.Sleep(100 * time.Millisecond)

		baseURL = fmt.Sprintf("http://%s", internalAddr)
	}

	mcpClient := mcp.NewClient(baseURL)

	if baseURL == externalURL {
		log.Println("MCP stdio server ready (using external HTTP server)")
	} else {
		log.Println("MCP stdio server ready (using internal HTTP server)")
	}

	if err := server.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		return fmt.Errorf("MCP stdio server error: %w", err)
	}
	return nil
}
