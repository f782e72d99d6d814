// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package generator

import "context"

type Repository interface {
	Truncate(context context.Context) error
	InsertGrooms(context context.Context, count int) (int64, error)
	InsertOrganizers(context context.Context, count int) (int64, error)
	InsertOrders(context context.Context, count int) (int64, error)

	// SerialSequence returns the sequence backing target, or "" if none.
	SerialSequence(context context.Context, target Target) (string, error)
	ResetSequence(context context.Context, sequence string, target Target) error
}
