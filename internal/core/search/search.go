// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package search runs the three fixed analytical queries over orders and
// reports how long each took.
//
// Every query orders its rows completely (ties broken by primary key), so the
// same parameters against unchanged data always return the same rows in the
// same order. Results may be served from an optional Redis cache that is
// invalidated whenever a write commits.
package search

import (
	"time"

	"github.com/taibuivan/wedplan/internal/platform/postgres"
)

// Result is the outcome of one search.
type Result[T any] struct {
	Rows   []T
	Timing postgres.Timing
	// Cached is true when Rows came from the cache; Timing then measures the
	// cache lookup.
	Cached bool
}

// PaymentMatch is a row of the payment range and groom name search.
type PaymentMatch struct {
	OrderID     int       `json:"order_id"`
	WeddingDate time.Time `json:"wedding_date"`
	Payment     int       `json:"payment"`
	GroomName   string    `json:"groom_name"`
	GroomAge    int       `json:"groom_age"`
}

// CreditMatch is a row of the date range and organizer credit search.
type CreditMatch struct {
	OrderID       int       `json:"order_id"`
	WeddingDate   time.Time `json:"wedding_date"`
	Guests        int       `json:"guests"`
	OrganizerName string    `json:"organizer_name"`
	SocialCredit  int       `json:"social_credit"`
}

// GroomTotal is a row of the per-groom aggregate search.
type GroomTotal struct {
	GroomName    string `json:"groom_name"`
	GroomAge     int    `json:"groom_age"`
	TotalOrders  int64  `json:"total_orders"`
	TotalPayment int64  `json:"total_payment"`
}

// Global field names for validation
const (
	FieldMinPayment = "min_payment"
	FieldMaxPayment = "max_payment"
	FieldDateRange  = "wedding_date"
	FieldMinCredit  = "min_social_credit"
	FieldMinGuests  = "min_guests"
)
