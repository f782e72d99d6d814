// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/taibuivan/wedplan/internal/platform/apperr"
	"github.com/taibuivan/wedplan/internal/platform/validate"
)

type Service struct {
	repo    Repository
	console io.Writer
	logger  *slog.Logger
}

func NewService(repo Repository, console io.Writer, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		console: console,
		logger:  logger,
	}
}

// Generate replaces the contents of all three tables with count synthetic
// rows each.
//
// The returned Report is filled in as far as the run got. A sequence that
// could not be resynchronized yields a SYNC_FAILED error after every step has
// run; the inserted data stays in place.
func (service *Service) Generate(ctx context.Context, count int) (Report, error) {
	report := Report{Requested: count}

	if err := (&validate.Validator{}).Min(FieldCount, count, 1).Err(); err != nil {
		return report, err
	}

	start := time.Now()

	fmt.Fprintln(service.console, "Clearing tables...")
	if err := service.repo.Truncate(ctx); err != nil {
		return service.abort(report, "truncate", err)
	}

	fmt.Fprintf(service.console, "Generating %d rows...\n", count)

	steps := []struct {
		name   string
		insert func(context.Context, int) (int64, error)
		rows   *int64
	}{
		{"grooms", service.repo.InsertGrooms, &report.Grooms},
		{"organizers", service.repo.InsertOrganizers, &report.Organizers},
		{"orders", service.repo.InsertOrders, &report.Orders},
	}

	for _, step := range steps {
		rows, err := step.insert(ctx, count)
		if err != nil {
			return service.abort(report, step.name, err)
		}
		*step.rows = rows
	}

	syncErr := service.syncSequences(ctx, &report)
	report.Elapsed = time.Since(start)

	service.logger.Info("data_generated",
		slog.Int("requested", count),
		slog.Int64("grooms", report.Grooms),
		slog.Int64("organizers", report.Organizers),
		slog.Int64("orders", report.Orders),
		slog.Duration("elapsed", report.Elapsed),
		slog.Bool("sequences_synced", syncErr == nil),
	)

	if syncErr != nil {
		return report, syncErr
	}

	fmt.Fprintln(service.console, "Data generation completed successfully.")
	return report, nil
}

// syncSequences resynchronizes every identity column, collecting failures
// instead of stopping at the first one.
func (service *Service) syncSequences(ctx context.Context, report *Report) error {
	var errs []error

	for _, target := range targets {
		outcome := SyncOutcome{Table: target.Table, Column: target.Column}

		sequence, err := service.repo.SerialSequence(ctx, target)
		if err == nil && sequence != "" {
			outcome.Sequence = sequence
			err = service.repo.ResetSequence(ctx, sequence, target)
		}

		switch {
		case err != nil:
			outcome.Status = SyncFailed
			errs = append(errs, apperr.MarkReported(apperr.SyncFailed(target.Table, err)))

			service.logger.Error("sequence_sync_failed",
				slog.String("table", target.Table),
				slog.String("column", target.Column),
				slog.Any("error", err),
			)
			fmt.Fprintln(service.console, "Warning: failed to automatically synchronize sequence (details in error log).")

		case sequence == "":
			outcome.Status = SyncSkipped

			service.logger.Warn("sequence_not_found",
				slog.String("table", target.Table),
				slog.String("column", target.Column),
			)
			fmt.Fprintf(service.console, "No serial sequence detected for %s.%s. Manual check recommended.\n", target.Table, target.Column)

		default:
			outcome.Status = SyncDone
			fmt.Fprintf(service.console, "Sequence for %s.%s synced to MAX+1.\n", target.Table, target.Column)
		}

		report.Sync = append(report.Sync, outcome)
	}

	return errors.Join(errs...)
}

// abort logs where generation stopped and returns the partial report.
func (service *Service) abort(report Report, step string, err error) (Report, error) {
	service.logger.Error("data_generation_aborted",
		slog.String("step", step),
		slog.Int64("grooms", report.Grooms),
		slog.Int64("organizers", report.Organizers),
		slog.Any("error", err),
	)
	return report, err
}
