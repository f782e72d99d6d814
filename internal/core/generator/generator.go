// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package generator clears the wedding tables and refills them with synthetic
rows drawn on the server.

Steps, each committed on its own:

 1. TRUNCATE all three tables, restarting identities.
 2. Insert count grooms and count organizers from fixed pools and ranges.
 3. Insert count orders pairing a random permutation of grooms with a random
    permutation of organizers, so each appears in exactly one order.
 4. Resynchronize every serial sequence to MAX(id) + 1.

A failure in steps 1-3 stops the run and leaves whatever was already
committed. A failure in step 4 is reported but never stops the remaining
sequences.
*/
package generator

import (
	"time"

	"github.com/taibuivan/wedplan/internal/platform/database/schema"
)

// FieldCount is the validation field name for the requested row count.
const FieldCount = "count"

// # Value Pools

var (
	groomNames     = []string{"Michael", "John", "Robert", "David", "William"}
	organizerNames = []string{"Golden Event", "LoveStory Agency", "WeddingPro", "Romance Studio"}
	locations      = []string{"New York Central Park", "Los Angeles Beach", "Paris City Hall", "Tokyo Garden"}

	// weddingWindowStart is the first day a generated wedding can fall on.
	weddingWindowStart = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// # Value Ranges (inclusive)

const (
	minAge, maxAge         = 22, 50
	minCredit, maxCredit   = 60, 99
	minGuests, maxGuests   = 20, 150
	minPayment, maxPayment = 50000, 200000

	// weddingWindowDays is the number of distinct wedding dates.
	weddingWindowDays = 365
)

// Target identifies one serial identity column.
type Target struct {
	Table    string
	Schema   string
	Relation string
	Column   string
}

// targets lists the identity columns resynchronized after generation.
var targets = []Target{
	{schema.PublicGroom.Table, schema.PublicGroom.Schema, schema.PublicGroom.Relation, schema.PublicGroom.ID},
	{schema.PublicOrganizer.Table, schema.PublicOrganizer.Schema, schema.PublicOrganizer.Relation, schema.PublicOrganizer.ID},
	{schema.PublicOrder.Table, schema.PublicOrder.Schema, schema.PublicOrder.Relation, schema.PublicOrder.ID},
}

// SyncStatus is the outcome of resynchronizing one sequence.
type SyncStatus string

const (
	SyncDone    SyncStatus = "synced"
	SyncSkipped SyncStatus = "no_sequence"
	SyncFailed  SyncStatus = "failed"
)

// SyncOutcome records what happened to one identity column.
type SyncOutcome struct {
	Table    string
	Column   string
	Sequence string
	Status   SyncStatus
}

// Report summarizes a generation run.
type Report struct {
	Requested  int
	Grooms     int64
	Organizers int64
	Orders     int64
	Sync       []SyncOutcome
	Elapsed    time.Duration
}
