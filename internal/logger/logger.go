package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey struct{}

// InitLogger installs the default slog logger writing to stdout.
func InitLogger(cfg Config) {
	InitLoggerWithWriter(cfg, os.Stdout)
}

// InitLoggerWithWriter installs the default slog logger writing to w.
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	slog.SetDefault(slog.New(cfg.NewHandler(w)))
}

// sessionHandler adds session_id from the record's context, so
// slog.InfoContext(ctx, ...) is tagged without going through FromContext.
type sessionHandler struct {
	slog.Handler
}

func (h sessionHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := SessionIDFromContext(ctx); ok {
		r.AddAttrs(slog.String(AttrKeySessionID, id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h sessionHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return sessionHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h sessionHandler) WithGroup(name string) slog.Handler {
	return sessionHandler{Handler: h.Handler.WithGroup(name)}
}

// GenerateSessionID creates a new UUID for correlating one host session's logs.
func GenerateSessionID() string {
	return uuid.NewString()
}

// WithSessionID returns a new context containing the session ID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sessionID)
}

// SessionIDFromContext extracts the session ID from the context, if present.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// FromContext returns the default logger, tagged with session_id when ctx carries one.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := SessionIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeySessionID, id)
	}
	return slog.Default()
}

// Info logs on the default logger
func Info(msg string, args ...any) {
	slog.Default().Info(msg, args...)
}

// Warn logs on the default logger
func Warn(msg string, args ...any) {
	slog.Default().Warn(msg, args...)
}

// Error logs on the default logger
func Error(msg string, args ...any) {
	slog.Default().Error(msg, args...)
}
