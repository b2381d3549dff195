package log

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	Info("hello world")
	Info("hello %v", "world")
	CtxInfo(context.TODO(), "hello %v", "world")
}

func TestLogger_FormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, slog.LevelInfo)

	l.Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	l.Info("hello %v", "world")
	assert.Contains(t, buf.String(), `msg="hello world"`)
	assert.NotContains(t, buf.String(), "BADKEY")

	buf.Reset()
	l.SetLevel(slog.LevelDebug)
	l.CtxDebug(context.TODO(), "shown %d", 2)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), `msg="shown 2"`)
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	l := NewLogger(&first, slog.LevelInfo)

	l.SetOutput(&second)
	l.Warn("moved")
	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), "msg=moved")
}

func TestSetLogger(t *testing.T) {
	prev := DefaultLogger()
	defer SetLogger(prev)

	var buf bytes.Buffer
	SetLogger(NewLogger(&buf, slog.LevelError))
	Warn("dropped")
	Error("kept %s", "this")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `msg="kept this"`)
}

func TestParseLevel(t *testing.T) {
	lv, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lv)

	lv, err = ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lv)

	lv, err = ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lv)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
