package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/mbeoliero/iou/pkg/testx"
)

var logger ILogger = NewLogger(os.Stderr, defaultLevel())

// defaultLevel turns on debug output under `go test` so cell traces show up
// with -v.
func defaultLevel() slog.Level {
	if testx.RunningUnderTest() {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func SetLevel(lv slog.Level) {
	logger.SetLevel(lv)
}

func DefaultLogger() ILogger {
	return logger
}

func SetLogger(v ILogger) {
	logger = v
}

func Info(format string, v ...any) {
	logger.Info(format, v...)
}

func Error(format string, v ...any) {
	logger.Error(format, v...)
}

func Debug(format string, v ...any) {
	logger.Debug(format, v...)
}

func Warn(format string, v ...any) {
	logger.Warn(format, v...)
}

func CtxInfo(ctx context.Context, format string, v ...any) {
	logger.CtxInfo(ctx, format, v...)
}

func CtxDebug(ctx context.Context, format string, v ...any) {
	logger.CtxDebug(ctx, format, v...)
}

func CtxWarn(ctx context.Context, format string, v ...any) {
	logger.CtxWarn(ctx, format, v...)
}

func CtxError(ctx context.Context, format string, v ...any) {
	logger.CtxError(ctx, format, v...)
}

// NewLogger returns a text logger writing to w. Messages are printf
// formatted before they reach slog.
func NewLogger(w io.Writer, lv slog.Level) ILogger {
	d := &defaultLogger{level: new(slog.LevelVar)}
	d.level.Set(lv)
	d.SetOutput(w)
	return d
}

type defaultLogger struct {
	logger atomic.Pointer[slog.Logger]
	level  *slog.LevelVar
}

func (d *defaultLogger) SetLevel(lv slog.Level) {
	d.level.Set(lv)
}

func (d *defaultLogger) SetOutput(w io.Writer) {
	d.logger.Store(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: d.level})))
}

func (d *defaultLogger) log(ctx context.Context, lv slog.Level, format string, v ...any) {
	l := d.logger.Load()
	if !l.Enabled(ctx, lv) {
		return
	}
	msg := format
	if len(v) > 0 {
		msg = fmt.Sprintf(format, v...)
	}
	l.Log(ctx, lv, msg)
}

func (d *defaultLogger) Debug(format string, v ...any) {
	d.log(context.Background(), slog.LevelDebug, format, v...)
}

func (d *defaultLogger) Info(format string, v ...any) {
	d.log(context.Background(), slog.LevelInfo, format, v...)
}

func (d *defaultLogger) Warn(format string, v ...any) {
	d.log(context.Background(), slog.LevelWarn, format, v...)
}

func (d *defaultLogger) Error(format string, v ...any) {
	d.log(context.Background(), slog.LevelError, format, v...)
}

func (d *defaultLogger) CtxDebug(ctx context.Context, format string, v ...any) {
	d.log(ctx, slog.LevelDebug, format, v...)
}

func (d *defaultLogger) CtxInfo(ctx context.Context, format string, v ...any) {
	d.log(ctx, slog.LevelInfo, format, v...)
}

func (d *defaultLogger) CtxWarn(ctx context.Context, format string, v ...any) {
	d.log(ctx, slog.LevelWarn, format, v...)
}

func (d *defaultLogger) CtxError(ctx context.Context, format string, v ...any) {
	d.log(ctx, slog.LevelError, format, v...)
}
