// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/wedplan/internal/platform/config"
	"github.com/taibuivan/wedplan/internal/platform/logging"
)

/*
TestParseLevel covers every accepted level and the debug override.
*/
func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		debug bool
		want  slog.Level
	}{
		{"debug", false, slog.LevelDebug},
		{"info", false, slog.LevelInfo},
		{"WARN", false, slog.LevelWarn},
		{"warning", false, slog.LevelWarn},
		{"error", false, slog.LevelError},
		{"", false, slog.LevelInfo},
		{"error", true, slog.LevelDebug},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, logging.ParseLevel(tt.level, tt.debug), "level=%q debug=%v", tt.level, tt.debug)
	}
}

/*
TestNewWithWriters checks level filtering and the JSON error log format.
*/
func TestNewWithWriters(t *testing.T) {
	console := &bytes.Buffer{}
	errorLog := &bytes.Buffer{}
	loggers := logging.NewWithWriters(slog.LevelWarn, console, errorLog)

	loggers.Console.Info("hidden")
	loggers.Console.Warn("shown")
	loggers.Errors.Warn("below_error_level")
	loggers.Errors.Error("statement_failed", slog.String("ref", "abc"))

	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), "msg=shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(errorLog.Bytes(), &entry))
	assert.Equal(t, "statement_failed", entry["msg"])
	assert.Equal(t, "abc", entry["ref"])
	assert.Equal(t, "wedplan", entry["app"])
	assert.Contains(t, entry, "time")
}

/*
TestNew_AppendsToFile checks that the error log survives reopening.
*/
func TestNew_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db_errors.log")
	cfg := config.Log{Level: "info", ErrorLogPath: path}

	for i := 0; i < 2; i++ {
		loggers, err := logging.New(cfg, &bytes.Buffer{})
		require.NoError(t, err)
		loggers.Errors.Error("statement_failed", slog.Int("run", i))
		require.NoError(t, loggers.Close())
		require.NoError(t, loggers.Close())
	}

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count(content, []byte("\n")))
}

/*
TestNew_UnwritablePath checks that an unusable log path is reported.
*/
func TestNew_UnwritablePath(t *testing.T) {
	cfg := config.Log{ErrorLogPath: filepath.Join(t.TempDir(), "missing", "db_errors.log")}

	_, err := logging.New(cfg, &bytes.Buffer{})
	assert.ErrorContains(t, err, "failed to open error log")
}
