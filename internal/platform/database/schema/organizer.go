// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// PublicOrganizerTable represents the 'public.organizer' table
type PublicOrganizerTable struct {
	Table        string
	Schema       string
	Relation     string
	ID           string
	Name         string
	SocialCredit string
}

// PublicOrganizer is the schema definition for public.organizer
var PublicOrganizer = PublicOrganizerTable{
	Table:        "public.organizer",
	Schema:       "public",
	Relation:     "organizer",
	ID:           "organizer_id",
	Name:         "name",
	SocialCredit: "social_credit",
}

func (t PublicOrganizerTable) Columns() []string {
	return []string{t.ID, t.Name, t.SocialCredit}
}
