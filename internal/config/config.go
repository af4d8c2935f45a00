package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort   string
	DBPath    string
	LogLevel  slog.Level
	LogFormat string
	// NotesDir, when set, is imported into the deck store at startup.
	NotesDir string

	DefaultSection     string
	LegacyHeadingReset bool
	PersistDecks       bool
	MaxContentBytes    int64
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and rejects malformed values.
// If a .env file exists in the current directory or a parent directory, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		APIPort:        getEnv("API_PORT", "9000"),
		DBPath:         getEnv("DB_PATH", "./data/studydeck.db"),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", "text")),
		NotesDir:       getEnv("NOTES_DIR", ""),
		DefaultSection: getEnv("DEFAULT_SECTION", "General"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	if cfg.LegacyHeadingReset, err = getBool("LEGACY_HEADING_RESET", false); err != nil {
		return nil, err
	}
	if cfg.PersistDecks, err = getBool("PERSIST_DECKS", true); err != nil {
		return nil, err
	}

	maxBytes, err := strconv.ParseInt(getEnv("MAX_CONTENT_BYTES", "1048576"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("MAX_CONTENT_BYTES must be a valid integer: %w", err)
	}
	if maxBytes <= 0 {
		return nil, fmt.Errorf("MAX_CONTENT_BYTES must be greater than 0")
	}
	cfg.MaxContentBytes = maxBytes

	if cfg.NotesDir != "" {
		info, err := os.Stat(cfg.NotesDir)
		if err != nil {
			return nil, fmt.Errorf("NOTES_DIR is not accessible: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("NOTES_DIR must be a directory: %s", cfg.NotesDir)
		}
	}

	if cfg.PersistDecks {
		// Create the data directory if it doesn't exist
		dataDir := filepath.Dir(cfg.DBPath)
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getBool parses a boolean environment variable, returning defaultValue when unset.
func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}
