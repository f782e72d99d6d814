// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pgtest wires an [postgres.Executor] to a pgxmock connection so that
// repositories can be tested statement by statement without a server.
package pgtest

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/wedplan/internal/platform/logging"
	"github.com/taibuivan/wedplan/internal/platform/postgres"
)

// Harness bundles a mocked connection with the buffers the executor writes to.
type Harness struct {
	Mock     pgxmock.PgxConnIface
	Executor *postgres.Executor
	Console  *bytes.Buffer
	ErrorLog *bytes.Buffer
}

// New returns a Harness whose expectations are verified at test cleanup.
func New(t *testing.T) *Harness {
	t.Helper()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)

	console := &bytes.Buffer{}
	errorLog := &bytes.Buffer{}
	loggers := logging.NewWithWriters(slog.LevelError, &bytes.Buffer{}, errorLog)

	connection := postgres.NewConnection(mock, loggers, console)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
	})

	return &Harness{
		Mock:     mock,
		Executor: postgres.NewExecutor(connection, loggers, console),
		Console:  console,
		ErrorLog: errorLog,
	}
}

// Degraded returns an executor without a live connection.
func Degraded() (*postgres.Executor, *bytes.Buffer) {
	console := &bytes.Buffer{}
	loggers := logging.Discard()
	return postgres.NewExecutor(postgres.NewConnection(nil, loggers, console), loggers, console), console
}
