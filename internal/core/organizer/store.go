// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package organizer

import "context"

type Repository interface {
	ListOrganizers(context context.Context) ([]*Organizer, error)
	GetOrganizer(context context.Context, id int) (*Organizer, error)
	AddOrganizer(context context.Context, o *Organizer) (int, error)
	EditOrganizer(context context.Context, o *Organizer) error
	DeleteOrganizer(context context.Context, id int) error
}
