// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package groom

// Groom is the person a wedding order is placed for.
type Groom struct {
	ID   int
	Name string
	Age  int
}

// Global field names for validation
const (
	FieldID   = "groom_id"
	FieldName = "name"
	FieldAge  = "age"
)

const maxNameLength = 100
