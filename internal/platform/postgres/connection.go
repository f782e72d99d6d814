// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package postgres owns the single PostgreSQL connection used by wedplan and
// the Statement Executor that every repository query goes through.
//
// # Architecture
//
// This package is part of the Infrastructure layer. [Connection] manages the
// physical connection lifecycle (open at startup, close at shutdown) and
// [Executor] is the only place where SQL is run, timed, committed, rolled
// back and classified on failure.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/wedplan/internal/platform/apperr"
	"github.com/taibuivan/wedplan/internal/platform/config"
	"github.com/taibuivan/wedplan/internal/platform/logging"
)

// pingTimeout is the maximum duration for a health check ping.
const pingTimeout = 2 * time.Second

// Conn is the subset of [*pgx.Conn] the data-access layer drives.
type Conn interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Connection is the process-wide database handle.
//
// A Connection without a live [Conn] is degraded: every statement routed
// through an [Executor] returns an empty result and CONNECTION_UNAVAILABLE
// without attempting any I/O.
//
// # Concurrency
//
// Connection is not safe for concurrent use. The console drives it from a
// single goroutine.
type Connection struct {
	conn    Conn
	tx      pgx.Tx
	loggers *logging.Loggers
	console io.Writer
	closed  bool
}

// Connect dials PostgreSQL with the given settings and verifies the link.
//
// On failure the full diagnostic goes to the error log, a short message is
// printed on console, and a degraded Connection is returned together with
// the error. Callers are expected to keep running.
func Connect(ctx context.Context, cfg config.Database, loggers *logging.Loggers, console io.Writer) (*Connection, error) {
	connection := &Connection{loggers: loggers, console: console}

	connConfig, err := pgx.ParseConfig(DSN(cfg))
	if err != nil {
		return connection, connection.degrade(fmt.Errorf("postgres: invalid connection settings: %w", err), cfg)
	}
	connConfig.ConnectTimeout = cfg.ConnectTimeout

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	conn, err := pgx.ConnectConfig(connectCtx, connConfig)
	if err != nil {
		return connection, connection.degrade(fmt.Errorf("postgres: failed to connect: %w", err), cfg)
	}

	// Validate that we can actually reach the database.
	if err := conn.Ping(connectCtx); err != nil {
		_ = conn.Close(ctx)
		return connection, connection.degrade(fmt.Errorf("postgres: ping failed: %w", err), cfg)
	}

	connection.conn = conn
	fmt.Fprintln(console, "Connected to PostgreSQL successfully!")
	loggers.Console.Info("postgres_connected",
		slog.String("host", cfg.Host),
		slog.Int("port", cfg.Port),
		slog.String("database", cfg.Name),
	)

	return connection, nil
}

// NewConnection wraps an already established connection. A nil conn yields a
// degraded Connection.
func NewConnection(conn Conn, loggers *logging.Loggers, console io.Writer) *Connection {
	return &Connection{conn: conn, loggers: loggers, console: console}
}

// DSN builds a postgres:// URL from discrete settings.
//
// The password is escaped and IPv6 hosts are bracketed, so any value that is
// legal in the environment yields a valid URL.
func DSN(cfg config.Database) string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": []string{cfg.SSLMode}}.Encode(),
	}
	return dsn.String()
}

// Live reports whether a usable connection exists.
func (c *Connection) Live() bool {
	return c.conn != nil && !c.closed
}

// Ping verifies that the connection is healthy.
func (c *Connection) Ping(ctx context.Context) error {
	if !c.Live() {
		return apperr.ConnectionUnavailable()
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := c.conn.Ping(pingCtx); err != nil {
		return fmt.Errorf("postgres: ping failed: %w", err)
	}

	return nil
}

// Close releases the in-flight transaction, if any, and then the connection.
// Both steps are attempted regardless of earlier failures. Calling Close on a
// closed or degraded Connection is a no-op.
func (c *Connection) Close(ctx context.Context) error {
	if c.closed || c.conn == nil {
		c.closed = true
		return nil
	}

	var errs []error

	if c.tx != nil {
		if err := c.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			errs = append(errs, fmt.Errorf("postgres: release transaction: %w", err))
		}
		c.tx = nil
	}

	if err := c.conn.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("postgres: close connection: %w", err))
	}

	c.closed = true
	c.conn = nil

	if err := errors.Join(errs...); err != nil {
		c.loggers.Errors.Error("postgres_close_failed", slog.Any("error", err))
		return err
	}

	fmt.Fprintln(c.console, "Database connection closed.")
	c.loggers.Console.Info("postgres_closed")
	return nil
}

// begin opens the per-statement transaction and records it so that Close can
// release it.
func (c *Connection) begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := c.conn.Begin(ctx)
	if err != nil {
		return nil, err
	}
	c.tx = tx
	return tx, nil
}

// release forgets the finished transaction.
func (c *Connection) release() {
	c.tx = nil
}

// degrade records a startup failure and leaves the Connection without a conn.
func (c *Connection) degrade(err error, cfg config.Database) error {
	c.loggers.Errors.Error("postgres_connect_failed",
		slog.String("host", cfg.Host),
		slog.Int("port", cfg.Port),
		slog.String("database", cfg.Name),
		slog.String("user", cfg.User),
		slog.Any("error", err),
	)
	fmt.Fprintln(c.console, "Error: Failed to connect to database (details in error log).")
	return err
}
