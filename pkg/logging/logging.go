// Package logging wires log/slog into context.Context via
// github.com/veqryn/slog-context, so every subsystem below the CLI
// entry point pulls its logger out of the context it was handed
// rather than threading a *slog.Logger parameter everywhere.
package logging

import (
	"context"
	"log/slog"
	"os"

	slogcontext "github.com/veqryn/slog-context"
)

// New builds a text-handler slog.Logger at the given level, writing to
// stderr so stdout stays free for script/REPL output.
func New(level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(slogcontext.NewHandler(handler, nil))
}

// WithLogger attaches logger to ctx for downstream FromContext calls.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return slogcontext.NewCtx(ctx, logger)
}

// FromContext returns the logger attached to ctx, or slog.Default() if
// none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	return slogcontext.FromCtx(ctx)
}

// With attaches args to the logger already in ctx and returns a
// context carrying the enriched logger, mirroring the request-ID
// attachment pattern the HTTP server uses per request.
func With(ctx context.Context, args ...any) context.Context {
	return slogcontext.With(ctx, args...)
}

// ParseLevel maps the config/CLI string level names to slog.Level,
// defaulting to Info for anything unrecognized.
func ParseLevel(name string) slog.Level {
	switch name {
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
