package loggers

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Logger is a wrapper around zerolog.Logger for convenience.
type Logger = zerolog.Logger

type Options struct {
	Level string
	// Format is FormatJSON (default) or FormatConsole for human readable CLI output.
	Format string
	// Writer defaults to stdout. The batch CLI logs to stderr so stdout carries only the report.
	Writer io.Writer
}

// New creates a JSON logger on stdout at the given level.
// Returns an error if the log level string cannot be parsed.
func New(level string) (Logger, error) {
	return NewWithOptions(Options{Level: level})
}

// NewWithOptions creates a zerolog logger with UTC timestamps and caller information.
func NewWithOptions(opts Options) (Logger, error) {
	zerologLevel, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	if opts.Format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}

	logger := zerolog.New(w).
		Level(zerologLevel).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger, nil
}

// Ctx extracts a logger from the context.
// Returns a disabled logger if no logger is found in context.
var Ctx = func(ctx context.Context) *Logger {
	return zerolog.Ctx(ctx)
}
