// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"log/slog"
	"os"

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/wedplan/internal/console"
	"github.com/taibuivan/wedplan/internal/core/generator"
	"github.com/taibuivan/wedplan/internal/core/groom"
	"github.com/taibuivan/wedplan/internal/core/order"
	"github.com/taibuivan/wedplan/internal/core/organizer"
	"github.com/taibuivan/wedplan/internal/core/search"
	"github.com/taibuivan/wedplan/internal/platform/config"
	"github.com/taibuivan/wedplan/internal/platform/constants"
	"github.com/taibuivan/wedplan/internal/platform/logging"
	"github.com/taibuivan/wedplan/internal/platform/postgres"
	redisstore "github.com/taibuivan/wedplan/internal/platform/redis"
)

// application holds everything that must be released on exit.
type application struct {
	console    *console.Console
	connection *postgres.Connection
	redis      *goredis.Client
	loggers    *logging.Loggers
	log        *slog.Logger
}

// bootstrap wires the application.
//
// # Startup Sequence
//
//  1. Bootstrap logger on stderr.
//  2. Load configuration (the only fatal step).
//  3. Console and error-file loggers.
//  4. Connect to PostgreSQL. A failure leaves the connection degraded.
//  5. Connect to Redis when configured and start a fresh cache epoch. A
//     failure disables the cache.
//  6. Domain wiring.
func bootstrap(parent context.Context) *application {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := slog.New(slog.NewTextHandler(os.Stderr, nil)).With(slog.String("app", constants.AppName))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	// ── 3. Loggers ────────────────────────────────────────────────────────
	loggers, err := logging.New(cfg.Log, os.Stderr)
	must(log, err, "open error log")

	log = loggers.Console
	slog.SetDefault(log)
	log.Debug("configuration_loaded",
		slog.String("db_host", cfg.Database.Host),
		slog.String("db_name", cfg.Database.Name),
		slog.Bool("cache_enabled", cfg.CacheEnabled()),
	)

	// Startup deadline so a misconfigured host is caught quickly rather than
	// hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(parent, constants.StartupTimeout)
	defer startupCancel()

	app := &application{loggers: loggers, log: log}

	// ── 4. PostgreSQL ─────────────────────────────────────────────────────
	connection, err := postgres.Connect(startupCtx, cfg.Database, loggers, os.Stdout)
	if err != nil {
		log.Warn("postgres_unavailable", slog.Any("error", err))
	}
	app.connection = connection

	executor := postgres.NewExecutor(connection, loggers, os.Stdout)

	// ── 5. Redis ──────────────────────────────────────────────────────────
	var cache *search.Cache
	if cfg.CacheEnabled() {
		client, err := redisstore.NewClient(startupCtx, cfg.Cache.RedisURL, log)
		if err != nil {
			log.Warn("search_cache_disabled", slog.Any("error", err))
		} else {
			app.redis = client
			cache = search.NewCache(client, cfg.Cache.TTL, log)
			executor.OnCommit(cache.Invalidate)

			// Entries left by an earlier run may predate writes made
			// while no process was invalidating them.
			cache.Invalidate(startupCtx)
		}
	}

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	health := []console.HealthCheck{
		{Name: "postgres", Check: connection.Ping},
	}
	if app.redis != nil {
		client := app.redis
		health = append(health, console.HealthCheck{
			Name: "redis",
			Check: func(ctx context.Context) error {
				return redisstore.Ping(ctx, client)
			},
		})
	}

	services := console.Services{
		Grooms:     groom.NewService(groom.NewPostgresRepository(executor), log),
		Organizers: organizer.NewService(organizer.NewPostgresRepository(executor), log),
		Orders:     order.NewService(order.NewPostgresRepository(executor), log),
		Generator:  generator.NewService(generator.NewPostgresRepository(executor), os.Stdout, log),
		Search:     search.NewService(search.NewPostgresRepository(executor), cache, log),
		Health:     health,
	}

	app.console = console.New(services, os.Stdin, os.Stdout, log)
	return app
}

// shutdown releases the connection, the cache client and the error log.
func (app *application) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := app.connection.Close(ctx); err != nil {
		app.log.Error("postgres_close_failed", slog.Any("error", err))
	}

	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.log.Error("redis_close_failed", slog.Any("error", err))
		}
	}

	if err := app.loggers.Close(); err != nil {
		app.log.Error("error_log_close_failed", slog.Any("error", err))
	}
}
