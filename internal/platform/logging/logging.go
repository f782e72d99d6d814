// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package logging builds the two slog loggers used by wedplan.
//
//   - Console: human-readable text on stderr, filtered by the configured level.
//   - Errors: JSON lines appended to a persistent file, error level and above.
//     Every entry carries a timestamp and the full failure detail.
//
// The interactive user only ever sees short summaries; the error file is the
// place to look for SQL state, constraint names and driver messages.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/taibuivan/wedplan/internal/platform/config"
)

// Loggers bundles the console logger and the persistent error logger.
type Loggers struct {
	Console *slog.Logger
	Errors  *slog.Logger

	file io.Closer
}

// New opens (or creates) the error log file in append mode and returns the
// configured logger pair.
func New(cfg config.Log, console io.Writer) (*Loggers, error) {
	file, err := os.OpenFile(cfg.ErrorLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: failed to open error log %q: %w", cfg.ErrorLogPath, err)
	}

	loggers := NewWithWriters(ParseLevel(cfg.Level, cfg.Debug), console, file)
	loggers.file = file
	return loggers, nil
}

// NewWithWriters builds the logger pair on arbitrary writers.
func NewWithWriters(level slog.Level, console, errorLog io.Writer) *Loggers {
	consoleLog := slog.New(slog.NewTextHandler(console, &slog.HandlerOptions{
		Level: level,
	}))

	errorsLog := slog.New(slog.NewJSONHandler(errorLog, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	return &Loggers{
		Console: consoleLog.With(slog.String("app", "wedplan")),
		Errors:  errorsLog.With(slog.String("app", "wedplan")),
	}
}

// Discard returns loggers that drop everything. Used in tests.
func Discard() *Loggers {
	return NewWithWriters(slog.LevelError, io.Discard, io.Discard)
}

// Close flushes and closes the error log file, if one was opened.
func (l *Loggers) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// ParseLevel converts a string log level to slog.Level. debug forces
// [slog.LevelDebug] regardless of level.
func ParseLevel(level string, debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}

	switch strings.ToLower(level) {
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
