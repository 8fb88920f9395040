// Package logging defines the structured-logging interface used across the
// client and its two implementations: log/slog and zerolog.
package logging

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Info(ctx, "session restored", "user_id", u.ID)
type Logger interface {
	// Debug logs diagnostics that are noisy in normal operation.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}

// Output formats accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatText    = "text"
)

// Options controls what New builds.
type Options struct {
	// Level is one of trace, debug, info, warn, error. Unknown means info.
	Level string
	// Format is console (zerolog console writer), json (zerolog JSON) or
	// text (slog text handler).
	Format string
	// Output defaults to os.Stderr so log lines do not mix with REPL output.
	Output io.Writer
}

// New builds a Logger from opts.
func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	lvl := parseLevel(opts.Level)

	switch strings.ToLower(opts.Format) {
	case FormatText:
		return newTextLogger(out, lvl)
	case FormatJSON:
		return NewZerologLogger(zerolog.New(out).Level(lvl).With().Timestamp().Logger())
	default:
		w := zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
		return NewZerologLogger(zerolog.New(w).Level(lvl).With().Timestamp().Logger())
	}
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
