// Package config loads launcher configuration from the environment,
// with an optional .env file for local setups.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the launcher's file paths and logging level.
type Config struct {
	// ReportPath is the turn report to load at startup. Empty means
	// start with an empty session.
	ReportPath string
	// OverlayPath is the persistent map overlay, loaded at startup and
	// saved at shutdown.
	OverlayPath string
	// ArchivePath is the SQLite turn archive database.
	ArchivePath string
	// LogLevel is one of debug, info, warn, error.
	LogLevel slog.Level
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present; real environment
// variables win over file entries.
func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{
		ReportPath:  os.Getenv("TURNMAP_REPORT"),
		OverlayPath: "persistent_map_data.json",
		ArchivePath: "data/turns.db",
		LogLevel:    parseLevel(os.Getenv("TURNMAP_LOG_LEVEL")),
	}
	if v := os.Getenv("TURNMAP_OVERLAY"); v != "" {
		cfg.OverlayPath = v
	}
	if v := os.Getenv("TURNMAP_ARCHIVE"); v != "" {
		cfg.ArchivePath = v
	}
	return cfg
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
