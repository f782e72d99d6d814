// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/wedplan/internal/platform/apperr"
	"github.com/taibuivan/wedplan/internal/platform/dberr"
	"github.com/taibuivan/wedplan/internal/platform/logging"
	"github.com/taibuivan/wedplan/pkg/uuidv7"
)

// Statement is one parameterized SQL statement.
//
// Args are always bound positionally ($1..$n). Values are never spliced into
// SQL text.
type Statement struct {
	// Action names the statement in logs (e.g. "add_groom").
	Action string
	SQL    string
	Args   []any

	// Timed requests a wall-clock measurement around execution and fetch.
	Timed bool

	// Write marks a fetching statement that modifies data
	// (INSERT ... RETURNING). It is committed after its rows are read.
	Write bool
}

// Timing is the measured duration of a statement.
//
// A zero Timing (Measured false) means the measurement is unavailable because
// the statement failed. A skipped statement on a degraded connection reports
// a measured zero.
type Timing struct {
	Elapsed  time.Duration
	Measured bool
}

// Millis returns the elapsed time in milliseconds.
func (t Timing) Millis() float64 {
	return float64(t.Elapsed) / float64(time.Millisecond)
}

// String renders the timing for the console ("12.34 ms" or "n/a").
func (t Timing) String() string {
	if !t.Measured {
		return "n/a"
	}
	return fmt.Sprintf("%.2f ms", t.Millis())
}

// Executor is the single chokepoint for running SQL.
//
// Every statement runs in its own transaction. Writes commit immediately;
// read-only fetches never commit. On failure the transaction is rolled back,
// the full detail is written to the error log, a short message is printed on
// the console, and an [*apperr.AppError] is returned alongside an empty result.
type Executor struct {
	connection *Connection
	loggers    *logging.Loggers
	console    io.Writer
	hooks      []func(context.Context)
}

// NewExecutor creates an Executor bound to connection.
func NewExecutor(connection *Connection, loggers *logging.Loggers, console io.Writer) *Executor {
	return &Executor{
		connection: connection,
		loggers:    loggers,
		console:    console,
	}
}

// OnCommit registers a hook run after every successful commit.
func (e *Executor) OnCommit(hook func(ctx context.Context)) {
	e.hooks = append(e.hooks, hook)
}

// Live reports whether statements can reach the store.
func (e *Executor) Live() bool {
	return e.connection.Live()
}

// Console returns the writer used for short user-facing messages.
func (e *Executor) Console() io.Writer {
	return e.console
}

// Exec runs a statement that returns no rows and commits it.
func (e *Executor) Exec(ctx context.Context, stmt Statement) (int64, error) {
	var affected int64

	_, err := e.run(ctx, stmt, true, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, stmt.SQL, stmt.Args...)
		if err != nil {
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}

// Query runs a statement and collects every row through scan.
//
// The returned slice is never nil. Read-only statements are not committed;
// statements flagged [Statement.Write] are.
func Query[T any](ctx context.Context, e *Executor, stmt Statement, scan pgx.RowToFunc[T]) ([]T, Timing, error) {
	var rows []T

	timing, err := e.run(ctx, stmt, stmt.Write, func(ctx context.Context, tx pgx.Tx) error {
		result, err := tx.Query(ctx, stmt.SQL, stmt.Args...)
		if err != nil {
			return err
		}
		rows, err = pgx.CollectRows(result, scan)
		return err
	})
	if err != nil || rows == nil {
		return []T{}, timing, err
	}

	return rows, timing, nil
}

// QueryOne runs a statement expected to yield at most one row. found is false
// when the statement succeeded without rows.
func QueryOne[T any](ctx context.Context, e *Executor, stmt Statement, scan pgx.RowToFunc[T]) (value T, found bool, err error) {
	rows, _, err := Query(ctx, e, stmt, scan)
	if err != nil || len(rows) == 0 {
		return value, false, err
	}
	return rows[0], true, nil
}

// run owns the transaction lifecycle shared by [Executor.Exec] and [Query].
func (e *Executor) run(ctx context.Context, stmt Statement, commit bool, body func(context.Context, pgx.Tx) error) (Timing, error) {

	// Degraded mode: no I/O, measured zero duration.
	if !e.connection.Live() {
		fmt.Fprintln(e.console, "Error: Database connection is not established.")
		return Timing{Measured: true}, apperr.MarkReported(apperr.ConnectionUnavailable())
	}

	tx, err := e.connection.begin(ctx)
	if err != nil {
		return Timing{}, e.fail(ctx, stmt, nil, err)
	}
	defer e.connection.release()

	start := time.Now()

	if err := body(ctx, tx); err != nil {
		return Timing{}, e.fail(ctx, stmt, tx, err)
	}

	elapsed := time.Since(start)

	if commit {
		if err := tx.Commit(ctx); err != nil {
			return Timing{}, e.fail(ctx, stmt, tx, err)
		}
		for _, hook := range e.hooks {
			hook(ctx)
		}
	} else if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		// Ending a read-only transaction; the rows are already in hand.
		e.loggers.Console.Warn("read_transaction_release_failed",
			slog.String("action", stmt.Action),
			slog.Any("error", err),
		)
	}

	e.loggers.Console.Debug("statement_executed",
		slog.String("action", stmt.Action),
		slog.Duration("elapsed", elapsed),
		slog.Bool("committed", commit),
	)

	if !stmt.Timed {
		return Timing{}, nil
	}
	return Timing{Elapsed: elapsed, Measured: true}, nil
}

// fail classifies err, logs it, rolls tx back and returns the console-safe
// error. Checks run foreign key first, then unique, then generic.
func (e *Executor) fail(ctx context.Context, stmt Statement, tx pgx.Tx, err error) error {
	appErr := dberr.Wrap(err)
	detail := dberr.Classify(err)
	reference := uuidv7.New()
	appErr.Reference = reference
	appErr.Reported = true

	e.loggers.Errors.Error("statement_failed",
		slog.String("reference", reference),
		slog.String("action", stmt.Action),
		slog.String("kind", detail.Kind.String()),
		slog.String("code", appErr.Code),
		slog.String("sqlstate", detail.SQLState),
		slog.String("table", detail.Table),
		slog.String("constraint", detail.Constraint),
		slog.String("detail", detail.Detail),
		slog.String("sql", stmt.SQL),
		slog.Any("args", stmt.Args),
		slog.Any("error", err),
	)

	fmt.Fprintf(e.console, "Error: %s (details in error log, ref %s).\n", appErr.Message, reference)

	if tx != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			e.loggers.Errors.Error("rollback_failed",
				slog.String("reference", reference),
				slog.String("action", stmt.Action),
				slog.Any("error", rbErr),
			)
		}
	}

	return appErr
}
