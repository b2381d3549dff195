package log

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}

type CtxLogger interface {
	CtxDebug(ctx context.Context, format string, v ...any)
	CtxInfo(ctx context.Context, format string, v ...any)
	CtxWarn(ctx context.Context, format string, v ...any)
	CtxError(ctx context.Context, format string, v ...any)
}

type Control interface {
	SetLevel(slog.Level)
	SetOutput(io.Writer)
}

type ILogger interface {
	Logger
	CtxLogger
	Control
}

// ParseLevel accepts the slog level names (debug, info, warn, error),
// case-insensitive. An empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	var lv slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	err := lv.UnmarshalText([]byte(s))
	return lv, err
}
