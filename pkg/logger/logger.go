package logger

import (
	"io"
	"log/slog"
	"os"
)

// Option configures the logger factory.
type Option func(*config)

type config struct {
	writer io.Writer
	level  slog.Level
}

// WithLevel sets the minimum level written to the output.
// Default: slog.LevelInfo.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithWriter sets the log output destination.
// Default: os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.writer = w
		}
	}
}

// New creates a JSON-formatted slog logger.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		writer: os.Stdout,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return slog.New(slog.NewJSONHandler(cfg.writer, &slog.HandlerOptions{
		Level: cfg.level,
	}))
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
