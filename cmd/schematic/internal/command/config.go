package command

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-logr/logr"
)

// Config holds the settings read from the environment. Flags override
// them.
type Config struct {
	Schema    string `env:"SCHEMATIC_SCHEMA"`
	LogLevel  string `env:"SCHEMATIC_LOG_LEVEL" envDefault:"warn"`
	OutputDir string `env:"SCHEMATIC_OUTPUT_DIR" envDefault:"."`
}

// ParseEnv loads the configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// parseLevel maps a level name to its slog level.
func parseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", name)
	}
}

// newLogger returns a logr.Logger writing slog text records to w. logr
// verbosity V(n) maps to slog level -n, so V(1) shows at debug only.
func newLogger(level string, w io.Writer) (logr.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return logr.Discard(), err
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})

	return logr.FromSlogHandler(handler), nil
}
