// Package config provides configuration management for the parking puzzle.
//
// The config package handles:
//   - Loading puzzle configurations from JSON files
//   - Configuration validation and verification
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Puzzle configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - Grid layout using character mapping (h=horizontal, v=vertical, .=empty)
//   - A legend binding each marker to its orientation
//   - The target span a car must cover to solve the puzzle
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	puzzleConfig, err := manager.LoadConfig("classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Validation:
//
// All configurations are validated for:
//   - Proper grid dimensions and layout
//   - Valid markers and legend mappings
//   - Straight, gap-free car spans
//   - A target span that a car of matching orientation and length can reach
//
// Loaded configurations are cached; RefreshCache discards the cache and
// re-reads the directory.
package config
