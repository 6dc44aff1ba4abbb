package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// loggerKey is the key used to store the logger in a context.
// Using a custom type prevents collisions.
type contextKey string

const loggerKey = contextKey("logger")

// NewLogger builds the application logger. Production uses JSON output,
// everything else the human readable text handler.
func NewLogger(w io.Writer, level string, isProduction bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if isProduction {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps debug/info/warn/error to a slog level. Unknown values are info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithOperation returns a context whose logger is enriched with a fresh
// operation_id and the operation name.
func WithOperation(ctx context.Context, operation string) context.Context {
	logger := FromContext(ctx).With(
		slog.String("operation_id", uuid.NewString()),
		slog.String("operation", operation),
	)
	return WithLogger(ctx, logger)
}

// FromContext retrieves the logger stored in ctx.
// It returns the default logger if none is found.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}
