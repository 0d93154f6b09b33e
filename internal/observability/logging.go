// Package observability holds the logging, metrics and tracing plumbing
// shared by the HTTP server, the Lambda handler and the CLI.
package observability

import (
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// NewLogger builds a slog logger. format is "json" or "text"; anything else
// falls back to json. Unknown levels fall back to info.
func NewLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Tracer is the tracer for solve spans. Without a registered provider it is
// a no-op.
func Tracer() trace.Tracer {
	return otel.Tracer("algoviz.app")
}
