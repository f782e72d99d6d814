// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import "time"

// Order links one groom and one organizer to a wedding.
type Order struct {
	ID          int
	GroomID     int
	WeddingDate time.Time
	Guests      int
	Payment     int
	Location    string
	OrganizerID int
}

// Global field names for validation
const (
	FieldID          = "id"
	FieldGroomID     = "groom_id"
	FieldWeddingDate = "wedding_date"
	FieldGuests      = "guests"
	FieldPayment     = "payment"
	FieldLocation    = "location"
	FieldOrganizerID = "organizer_id"
)

const maxLocationLength = 200
