// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/wedplan/internal/platform/postgres"
	"github.com/taibuivan/wedplan/internal/platform/validate"
)

// # Query Names (cache keys and logs)

const (
	queryPayment = "payment_groom_name"
	queryCredit  = "date_organizer_credit"
	queryTotals  = "groom_totals"
)

type Service struct {
	repo   Repository
	cache  *Cache
	logger *slog.Logger
}

// NewService creates a search Service. cache may be nil to disable caching.
func NewService(repo Repository, cache *Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (service *Service) ByPaymentAndGroomName(ctx context.Context, minPayment, maxPayment int, pattern string) (Result[PaymentMatch], error) {
	validator := &validate.Validator{}
	validator.NonNegative(FieldMinPayment, minPayment).NonNegative(FieldMaxPayment, maxPayment)
	validator.Custom(FieldMaxPayment, maxPayment < minPayment, "Must not be below the minimum payment")

	if err := validator.Err(); err != nil {
		return Result[PaymentMatch]{Rows: []PaymentMatch{}}, err
	}

	return run(ctx, service, queryPayment, []any{minPayment, maxPayment, pattern},
		func() ([]PaymentMatch, postgres.Timing, error) {
			return service.repo.ByPaymentAndGroomName(ctx, minPayment, maxPayment, pattern)
		})
}

func (service *Service) ByDateAndOrganizerCredit(ctx context.Context, from, to time.Time, minCredit int) (Result[CreditMatch], error) {
	validator := &validate.Validator{}
	validator.DateOrder(FieldDateRange, from, to).NonNegative(FieldMinCredit, minCredit)

	if err := validator.Err(); err != nil {
		return Result[CreditMatch]{Rows: []CreditMatch{}}, err
	}

	return run(ctx, service, queryCredit, []any{from, to, minCredit},
		func() ([]CreditMatch, postgres.Timing, error) {
			return service.repo.ByDateAndOrganizerCredit(ctx, from, to, minCredit)
		})
}

func (service *Service) GroomTotalsByGuestsAndLocation(ctx context.Context, minGuests int, pattern string) (Result[GroomTotal], error) {
	if err := (&validate.Validator{}).NonNegative(FieldMinGuests, minGuests).Err(); err != nil {
		return Result[GroomTotal]{Rows: []GroomTotal{}}, err
	}

	return run(ctx, service, queryTotals, []any{minGuests, pattern},
		func() ([]GroomTotal, postgres.Timing, error) {
			return service.repo.GroomTotalsByGuestsAndLocation(ctx, minGuests, pattern)
		})
}

// run serves a search from the cache when possible and fills the cache after
// a successful query. Without a live store the cache is bypassed, so the
// query reports the missing connection like every other operation.
func run[T any](ctx context.Context, service *Service, query string, params []any, execute func() ([]T, postgres.Timing, error)) (Result[T], error) {
	if service.cache != nil && service.repo.Live() {
		start := time.Now()
		if rows, ok := lookup[T](ctx, service.cache, query, params); ok {
			service.logger.Debug("search_cache_hit", slog.String("query", query), slog.Int("rows", len(rows)))
			return Result[T]{
				Rows:   rows,
				Timing: postgres.Timing{Elapsed: time.Since(start), Measured: true},
				Cached: true,
			}, nil
		}
	}

	rows, timing, err := execute()
	if err != nil {
		return Result[T]{Rows: rows, Timing: timing}, err
	}

	if service.cache != nil {
		store(ctx, service.cache, query, params, rows)
	}

	service.logger.Debug("search_executed",
		slog.String("query", query),
		slog.Int("rows", len(rows)),
		slog.Float64("elapsed_ms", timing.Millis()),
	)

	return Result[T]{Rows: rows, Timing: timing}, nil
}
