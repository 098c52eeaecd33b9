package logging

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// ZerologLogger adapts zerolog to Logger. The console variant is meant for
// interactive sessions where human-readable lines on stderr are preferred
// over JSON.
type ZerologLogger struct {
	zl zerolog.Logger
}

// NewConsoleLogger returns a zerolog-backed Logger with a ConsoleWriter.
func NewConsoleLogger(w io.Writer, level string) *ZerologLogger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}
	zl := zerolog.New(cw).Level(zerologLevel(level)).With().Timestamp().Logger()
	return &ZerologLogger{zl: zl}
}

// NewZerologLogger wraps an existing zerolog.Logger.
func NewZerologLogger(zl zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{zl: zl}
}

func zerologLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (z *ZerologLogger) Debug(ctx context.Context, msg string, args ...any) {
	z.log(z.zl.Debug(), msg, args)
}

func (z *ZerologLogger) Info(ctx context.Context, msg string, args ...any) {
	z.log(z.zl.Info(), msg, args)
}

func (z *ZerologLogger) Warn(ctx context.Context, msg string, args ...any) {
	z.log(z.zl.Warn(), msg, args)
}

func (z *ZerologLogger) Error(ctx context.Context, msg string, args ...any) {
	z.log(z.zl.Error(), msg, args)
}

func (z *ZerologLogger) With(args ...any) Logger {
	c := z.zl.With()
	for k, v := range pairs(args) {
		c = c.Interface(k, v)
	}
	return &ZerologLogger{zl: c.Logger()}
}

func (z *ZerologLogger) log(e *zerolog.Event, msg string, args []any) {
	for k, v := range pairs(args) {
		if err, ok := v.(error); ok {
			e = e.AnErr(k, err)
			continue
		}
		e = e.Interface(k, v)
	}
	e.Msg(msg)
}

// pairs turns slog-style variadic args into key/value pairs. A dangling
// value gets the key "!BADKEY", the same convention slog uses.
func pairs(args []any) map[string]any {
	out := make(map[string]any, len(args)/2)
	for i := 0; i < len(args); i++ {
		key, ok := args[i].(string)
		if !ok || i+1 >= len(args) {
			out["!BADKEY"] = args[i]
			continue
		}
		out[key] = args[i+1]
		i++
	}
	return out
}

var _ Logger = (*ZerologLogger)(nil)
var _ Logger = (*SlogLogger)(nil)
