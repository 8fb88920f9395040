package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/rs/zerolog"
)

// LevelTrace is the slog level used for zerolog's trace.
const LevelTrace = slog.LevelDebug - 4

// SlogLogger is the Logger behind the "text" log format. New picks it;
// Bootstrap then tags it once per run:
//
//	log = log.With("client_id", id)
type SlogLogger struct {
	l *slog.Logger
}

func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

// newTextLogger writes logfmt-style lines to out, filtered at lvl.
func newTextLogger(out io.Writer, lvl zerolog.Level) *SlogLogger {
	h := slog.NewTextHandler(out, &slog.HandlerOptions{Level: slogLevel(lvl)})
	return NewSlogLogger(slog.New(h))
}

// slogLevel maps the shared level setting onto slog.
func slogLevel(l zerolog.Level) slog.Level {
	switch l {
	case zerolog.TraceLevel:
		return LevelTrace
	case zerolog.DebugLevel:
		return slog.LevelDebug
	case zerolog.WarnLevel:
		return slog.LevelWarn
	case zerolog.ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}
