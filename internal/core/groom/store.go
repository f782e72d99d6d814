// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package groom

import "context"

type Repository interface {
	ListGrooms(context context.Context) ([]*Groom, error)
	GetGroom(context context.Context, id int) (*Groom, error)
	AddGroom(context context.Context, g *Groom) (int, error)
	EditGroom(context context.Context, g *Groom) error
	DeleteGroom(context context.Context, id int) error
}
