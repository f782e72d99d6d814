// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// PublicOrderTable represents the 'public."order"' table.
// The relation name is a reserved word and stays quoted in SQL text.
type PublicOrderTable struct {
	Table       string
	Schema      string
	Relation    string
	ID          string
	GroomID     string
	WeddingDate string
	Guests      string
	Payment     string
	Location    string
	OrganizerID string
}

// PublicOrder is the schema definition for public."order"
var PublicOrder = PublicOrderTable{
	Table:       `public."order"`,
	Schema:      "public",
	Relation:    "order",
	ID:          "id",
	GroomID:     "groom_id",
	WeddingDate: "wedding_date",
	Guests:      "guests",
	Payment:     "payment",
	Location:    "location",
	OrganizerID: "organizer_id",
}

func (t PublicOrderTable) Columns() []string {
	return []string{t.ID, t.GroomID, t.WeddingDate, t.Guests, t.Payment, t.Location, t.OrganizerID}
}
