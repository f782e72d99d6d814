// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"time"

	"github.com/taibuivan/wedplan/internal/platform/postgres"
)

type Repository interface {
	// Live reports whether queries can reach the store. Cached results are
	// only served while it does.
	Live() bool

	ByPaymentAndGroomName(context context.Context, minPayment, maxPayment int, pattern string) ([]PaymentMatch, postgres.Timing, error)
	ByDateAndOrganizerCredit(context context.Context, from, to time.Time, minCredit int) ([]CreditMatch, postgres.Timing, error)
	GroomTotalsByGuestsAndLocation(context context.Context, minGuests int, pattern string) ([]GroomTotal, postgres.Timing, error)
}
