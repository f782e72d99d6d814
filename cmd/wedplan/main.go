// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command wedplan is the entry point for the wedding events console.
//
// # Commands
//
//	wedplan                    interactive menu
//	wedplan generate --count N replace all data with N random rows per table
//	wedplan status             check PostgreSQL and the search cache
//
// No business logic lives here. All wiring is explicit constructor injection
// (see app.go).
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/wedplan/internal/platform/constants"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     constants.AppName,
		Short:   "Wedding events console backed by PostgreSQL",
		Version: constants.AppVersion,
		Args:    cobra.NoArgs,

		// Failures are already printed by the console.
		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, app *application) error {
				return app.console.Run(ctx)
			})
		},
	}

	var count int
	generate := &cobra.Command{
		Use:   "generate",
		Short: "Replace all data with random grooms, organizers and orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, app *application) error {
				return app.console.Generate(ctx, count)
			})
		},
	}
	generate.Flags().IntVarP(&count, "count", "n", 100, "rows to generate in each table")

	status := &cobra.Command{
		Use:   "status",
		Short: "Check the database connection and the search cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, app *application) error {
				return app.console.Status(ctx)
			})
		},
	}

	root.AddCommand(generate, status)
	return root
}

// withApp builds the application, runs fn and releases every resource.
//
// fn runs in its own goroutine so that SIGINT or SIGTERM can end the process
// while the console is blocked on input. A statement already running is given
// constants.ShutdownTimeout to finish before resources are released.
func withApp(parent context.Context, fn func(context.Context, *application) error) error {
	if parent == nil {
		parent = context.Background()
	}

	app := bootstrap(parent)
	defer app.shutdown()

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- fn(ctx, app)
	}()

	return awaitExit(ctx, app.log, done, constants.ShutdownTimeout)
}

// awaitExit returns the result of the running command. After a signal it
// waits up to grace for the command to return so that shutdown does not close
// the connection under an executing statement.
func awaitExit(ctx context.Context, log *slog.Logger, done <-chan error, grace time.Duration) error {
	select {
	case err := <-done:
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutdown_signal_received")
	}

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Debug("command_interrupted", slog.Any("error", err))
		}
	case <-time.After(grace):
		log.Warn("shutdown_grace_expired", slog.Duration("grace", grace))
	}
	return nil
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
