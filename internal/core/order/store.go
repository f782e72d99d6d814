// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import "context"

// Repository persists orders. Orders have no dependents, so deletion is not
// guarded.
type Repository interface {
	ListOrders(context context.Context) ([]*Order, error)
	GetOrder(context context.Context, id int) (*Order, error)
	AddOrder(context context.Context, o *Order) (int, error)
	EditOrder(context context.Context, o *Order) error
	DeleteOrder(context context.Context, id int) error
}
