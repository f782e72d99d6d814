// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package organizer

// Organizer is the agency running a wedding. SocialCredit is its reputation
// score.
type Organizer struct {
	ID           int
	Name         string
	SocialCredit int
}

// Global field names for validation
const (
	FieldID           = "organizer_id"
	FieldName         = "name"
	FieldSocialCredit = "social_credit"
)

const maxNameLength = 100
