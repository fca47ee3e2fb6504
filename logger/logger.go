// © 2026 Marslo. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

// Package logger provides a context-carried logger built on [slog].
package logger

import (
	"context"
	"io"
	"log/slog"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// Logger wraps an [slog.Logger] together with the [slog.LevelVar] that
// controls its verbosity at runtime.
type Logger struct {
	*slog.Logger
	Level *slog.LevelVar
}

// New creates a Logger writing through handler. The LevelVar is
// initialized to LevelInfo if level is nil; the handler should be
// constructed with the same LevelVar so that level changes take effect.
func New(level *slog.LevelVar, handler slog.Handler) *Logger {
	if level == nil {
		level = new(slog.LevelVar)
		level.Set(slog.LevelInfo)
	}
	return &Logger{
		Logger: slog.New(handler),
		Level:  level,
	}
}

var defaultLogger = newDefaultLogger()

func newDefaultLogger() *Logger {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	return New(level, slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level}))
}

// Put returns a new context carrying l.
func Put(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Get retrieves the [Logger] from the context. If the context has no
// Logger, it returns a default one that discards all messages.
func Get(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerKey).(*Logger); ok {
		return l
	}
	return defaultLogger
}

// Debug logs a debug message.
func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// Info logs an info message.
func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

// Warn logs a warning message.
func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
}

// Error logs an error message.
func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelError, msg, attrs...)
}
