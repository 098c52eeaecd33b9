package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestZerologLogger_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLogger(zerolog.New(&buf))

	l.With("emp_no", "E1001").Warn(context.Background(), "fetch failed", "err", errors.New("timeout"), "attempt", 1)

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"message":"fetch failed"`)
	assert.Contains(t, out, `"emp_no":"E1001"`)
	assert.Contains(t, out, `"err":"timeout"`)
	assert.Contains(t, out, `"attempt":1`)
}

func TestZerologLogger_DanglingArgument(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLogger(zerolog.New(&buf))

	l.Info(context.Background(), "odd", "lonely")

	assert.Contains(t, buf.String(), `"!BADKEY":"lonely"`)
}

func TestConsoleLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf, "error")

	l.Info(context.Background(), "hidden")
	l.Error(context.Background(), "shown")

	out := buf.String()
	assert.False(t, strings.Contains(out, "hidden"))
	assert.True(t, strings.Contains(out, "shown"))
}
