package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger: минимальный интерфейс логирования, который используется во всех слоях приложения.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
}

type slogLogger struct {
	log *slog.Logger
}

// NewSlogLogger создаёт JSON-логгер поверх slog. Уровень берётся из LOG_LEVEL (debug, info, warn, error).
func NewSlogLogger() Logger {
	return NewSlogLoggerWithWriter(os.Stdout, parseLevel(os.Getenv("LOG_LEVEL")))
}

func NewSlogLoggerWithWriter(w io.Writer, level slog.Level) Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &slogLogger{log: slog.New(handler)}
}

// NewNopLogger возвращает логгер, который ничего не пишет. Используется в тестах.
func NewNopLogger() Logger {
	return &slogLogger{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func (l *slogLogger) Debugf(format string, args ...any) {
	l.logf(slog.LevelDebug, nil, format, args...)
}

func (l *slogLogger) Infof(format string, args ...any) {
	l.logf(slog.LevelInfo, nil, format, args...)
}

func (l *slogLogger) Warnf(format string, args ...any) {
	l.logf(slog.LevelWarn, nil, format, args...)
}

func (l *slogLogger) Errorf(err error, format string, args ...any) {
	l.logf(slog.LevelError, err, format, args...)
}

func (l *slogLogger) logf(level slog.Level, err error, format string, args ...any) {
	ctx := context.Background()
	if !l.log.Enabled(ctx, level) {
		return
	}

	msg := fmt.Sprintf(format, args...)
	if err != nil {
		l.log.Log(ctx, level, msg, slog.String("error", err.Error()))
		return
	}

	l.log.Log(ctx, level, msg)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
