// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// PublicGroomTable represents the 'public.groom' table
type PublicGroomTable struct {
	Table    string
	Schema   string
	Relation string
	ID       string
	Name     string
	Age      string
}

// PublicGroom is the schema definition for public.groom
var PublicGroom = PublicGroomTable{
	Table:    "public.groom",
	Schema:   "public",
	Relation: "groom",
	ID:       "groom_id",
	Name:     "name",
	Age:      "age",
}

func (t PublicGroomTable) Columns() []string {
	return []string{t.ID, t.Name, t.Age}
}
