// Package logging builds the zerolog loggers used by the feedform command.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Environment variables read by NewFromEnv.
const (
	EnvLevel  = "FEEDFORM_LOG_LEVEL"
	EnvFormat = "FEEDFORM_LOG_FORMAT"
)

// Config holds logging configuration.
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig logs warnings and above to the console.
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.WarnLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a logger writing to w (stderr when nil).
func New(cfg Config, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	output := w
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: w, TimeFormat: cfg.TimeFormat, NoColor: true}
	}
	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// Apply overrides cfg with a textual level and format. Unknown values are
// ignored.
func (cfg Config) Apply(level, format string) Config {
	if level != "" {
		if l, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil && l != zerolog.NoLevel {
			cfg.Level = l
		}
	}
	switch format {
	case "json", "console":
		cfg.Format = format
	}
	return cfg
}

// NewFromEnv creates a logger configured by the environment:
// FEEDFORM_LOG_LEVEL: trace, debug, info, warn, error (default: warn)
// FEEDFORM_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return New(DefaultConfig().Apply(os.Getenv(EnvLevel), os.Getenv(EnvFormat)), nil)
}

// FromContext extracts the logger from ctx. A disabled logger is returned
// when none is attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context carrying logger.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent attaches a child logger tagged with component.
func WithComponent(ctx context.Context, component string) context.Context {
	child := FromContext(ctx).With().Str("component", component).Logger()
	return WithContext(ctx, child)
}
