// Package config handles loading and validating runtime configuration for the sheet data API.
// Values are read from environment variables (optionally seeded from a .env file) once at
// startup, and the resulting Config is passed explicitly to whatever needs it.
package config

import (
	"fmt"
	"os"
	"strings"

	// godotenv reads a .env file and loads its key=value pairs into the process environment.
	// In production real environment variables are used instead.
	"github.com/joho/godotenv"
	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"

	"github.com/trentd187/sheet-data-api/internal/spreadsheet"
)

// Defaults applied when the matching environment variable is unset.
const (
	DefaultPort     = "5000"
	DefaultRange    = "main_items"
	DefaultEnv      = "development"
	DefaultLogLevel = "info"
	DefaultOrigins  = "*"
)

// Config holds all runtime configuration values for the application.
type Config struct {
	Port          string    // TCP port the HTTP server listens on (e.g. "5000")
	Env           string    // "development", "staging", or "production"
	LogLevel      log.Level // Minimum level written by the application logger
	SpreadsheetID string    // ID of the Google Sheet to read
	Range         string    // Named range (or A1 range) read on every request
	Credentials   []byte    // Service account JSON with private_key newlines normalized
	AllowOrigins  string    // CORS Access-Control-Allow-Origin value(s)
	JWTSecret     string    // When set, /api routes require an HS256 bearer token signed with it
}

// Load reads configuration from the environment and returns a populated Config.
// It returns an error naming the offending variable when a required value is missing or
// malformed, so the server can refuse to start instead of failing on the first request.
func Load() (*Config, error) {
	// A missing .env is fine: the deployment platform sets real environment variables.
	_ = godotenv.Load()

	level, err := log.ParseLevel(getenv("LOG_LEVEL", DefaultLogLevel))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	rawID := os.Getenv("SPREADSHEET_ID")
	if rawID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID is required")
	}
	spreadsheetID, err := spreadsheet.ParseSpreadsheetID(rawID)
	if err != nil {
		return nil, fmt.Errorf("SPREADSHEET_ID: %w", err)
	}

	rawCreds := os.Getenv("GOOGLE_CREDENTIALS")
	if rawCreds == "" {
		return nil, fmt.Errorf("GOOGLE_CREDENTIALS is required")
	}
	creds, err := NormalizeCredentials([]byte(rawCreds))
	if err != nil {
		return nil, fmt.Errorf("GOOGLE_CREDENTIALS: %w", err)
	}

	return &Config{
		Port:          getenv("PORT", DefaultPort),
		Env:           getenv("ENV", DefaultEnv),
		LogLevel:      level,
		SpreadsheetID: spreadsheetID,
		Range:         getenv("SHEET_RANGE", DefaultRange),
		Credentials:   creds,
		AllowOrigins:  getenv("CORS_ALLOW_ORIGINS", DefaultOrigins),
		JWTSecret:     os.Getenv("API_JWT_SECRET"),
	}, nil
}

// NormalizeCredentials parses a service account JSON document and replaces literal "\n"
// sequences in its private_key with real newlines. Keys pasted into a single-line environment
// variable usually arrive double-escaped, and the PEM decoder rejects them in that form.
// All other fields are passed through unchanged.
func NormalizeCredentials(raw []byte) ([]byte, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing service account JSON: %w", err)
	}

	key, ok := doc["private_key"].(string)
	if !ok || key == "" {
		return nil, fmt.Errorf("service account JSON is missing private_key")
	}
	doc["private_key"] = strings.ReplaceAll(key, `\n`, "\n")

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding service account JSON: %w", err)
	}
	return out, nil
}

// IsDevelopment reports whether the server runs in the local development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == DefaultEnv
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
