// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/wedplan/internal/core/order"
	"github.com/taibuivan/wedplan/internal/platform/apperr"
)

type countingRepository struct {
	calls int
}

func (c *countingRepository) ListOrders(context.Context) ([]*order.Order, error) {
	c.calls++
	return []*order.Order{}, nil
}

func (c *countingRepository) GetOrder(context.Context, int) (*order.Order, error) {
	c.calls++
	return nil, apperr.NotFound("Order")
}

func (c *countingRepository) AddOrder(_ context.Context, o *order.Order) (int, error) {
	c.calls++
	o.ID = 1
	return 1, nil
}

func (c *countingRepository) EditOrder(context.Context, *order.Order) error {
	c.calls++
	return nil
}

func (c *countingRepository) DeleteOrder(context.Context, int) error {
	c.calls++
	return nil
}

/*
TestService_AddOrder_Validation lists the rejected inputs field by field.
*/
func TestService_AddOrder_Validation(t *testing.T) {
	valid := func() *order.Order { return sample() }

	tests := []struct {
		name   string
		mutate func(o *order.Order)
		field  string
	}{
		{"no_groom", func(o *order.Order) { o.GroomID = 0 }, order.FieldGroomID},
		{"no_organizer", func(o *order.Order) { o.OrganizerID = -1 }, order.FieldOrganizerID},
		{"no_date", func(o *order.Order) { o.WeddingDate = time.Time{} }, order.FieldWeddingDate},
		{"negative_guests", func(o *order.Order) { o.Guests = -5 }, order.FieldGuests},
		{"negative_payment", func(o *order.Order) { o.Payment = -1 }, order.FieldPayment},
		{"empty_location", func(o *order.Order) { o.Location = "" }, order.FieldLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &countingRepository{}
			service := order.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

			o := valid()
			tt.mutate(o)
			_, err := service.AddOrder(context.Background(), o)

			ae := apperr.As(err)
			if assert.NotNil(t, ae) {
				assert.Equal(t, apperr.CodeValidation, ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			}
			assert.Zero(t, repo.calls)
		})
	}
}

/*
TestService_AddOrder_Valid verifies that a valid order reaches the repository.
*/
func TestService_AddOrder_Valid(t *testing.T) {
	repo := &countingRepository{}
	service := order.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	id, err := service.AddOrder(context.Background(), sample())

	assert.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.Equal(t, 1, repo.calls)
}
