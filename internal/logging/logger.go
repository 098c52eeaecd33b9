// Package logging defines the structured-logging interface used across the
// client and two backends for it: log/slog and zerolog.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are key–value pairs:
//
//	log.Info(ctx, "chat poll", "emp_no", empNo, "messages", n)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// Format selects the backend and its output encoding.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// New builds a Logger writing to w. Unknown formats are rejected.
func New(w io.Writer, format Format, level string) (Logger, error) {
	switch f := Format(strings.ToLower(string(format))); f {
	case FormatText, "", FormatJSON:
		return newSlogWriter(w, f == FormatJSON, level), nil
	case FormatConsole:
		return NewConsoleLogger(w, level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return NewSlogLogger(slog.New(slog.DiscardHandler))
}
