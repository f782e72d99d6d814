// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/wedplan/internal/core/order"
	"github.com/taibuivan/wedplan/internal/platform/apperr"
	"github.com/taibuivan/wedplan/internal/platform/postgres/pgtest"
)

var (
	insertSQL = regexp.QuoteMeta(`INSERT INTO public."order" (groom_id, wedding_date, guests, payment, location, organizer_id)`)
	columns   = []string{"id", "groom_id", "wedding_date", "guests", "payment", "location", "organizer_id"}
	june      = time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
)

func sample() *order.Order {
	return &order.Order{GroomID: 1, WeddingDate: june, Guests: 80, Payment: 120000, Location: "Paris City Hall", OrganizerID: 2}
}

/*
TestPostgresRepository_AddOrder verifies a committed insert returning the new
identity.
*/
func TestPostgresRepository_AddOrder(t *testing.T) {
	h := pgtest.New(t)
	repository := order.NewPostgresRepository(h.Executor)

	h.Mock.ExpectBegin()
	h.Mock.ExpectQuery(insertSQL).
		WithArgs(1, june, 80, 120000, "Paris City Hall", 2).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(31))
	h.Mock.ExpectCommit()

	o := sample()
	id, err := repository.AddOrder(context.Background(), o)

	require.NoError(t, err)
	assert.Equal(t, 31, id)
	assert.Equal(t, 31, o.ID)
	assert.Contains(t, h.Console.String(), "Added order id=31")
}

/*
TestPostgresRepository_AddOrder_MissingParent verifies that a dangling groom or
organizer reference is rolled back and reported as a referential violation
naming the missing entity.
*/
func TestPostgresRepository_AddOrder_MissingParent(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		entity     string
	}{
		{"missing_groom", "order_groom_id_fkey", "Groom"},
		{"missing_organizer", "order_organizer_id_fkey", "Organizer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := pgtest.New(t)
			repository := order.NewPostgresRepository(h.Executor)

			h.Mock.ExpectBegin()
			h.Mock.ExpectQuery(insertSQL).
				WillReturnError(&pgconn.PgError{Code: "23503", TableName: "order", ConstraintName: tt.constraint})
			h.Mock.ExpectRollback()

			id, err := repository.AddOrder(context.Background(), sample())

			assert.Zero(t, id)
			assert.True(t, apperr.HasCode(err, apperr.CodeReferentialViolation))
			assert.Contains(t, h.Console.String(), "referenced "+tt.entity+" does not exist")
			assert.NotContains(t, h.Console.String(), "Added order")
		})
	}
}

/*
TestPostgresRepository_ListOrders verifies the full row mapping.
*/
func TestPostgresRepository_ListOrders(t *testing.T) {
	h := pgtest.New(t)
	repository := order.NewPostgresRepository(h.Executor)

	h.Mock.ExpectBegin()
	h.Mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, groom_id, wedding_date, guests, payment, location, organizer_id FROM public."order" ORDER BY id ASC`)).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(1, 1, june, 80, 120000, "Paris City Hall", 2))
	h.Mock.ExpectRollback()

	orders, err := repository.ListOrders(context.Background())

	require.NoError(t, err)
	want := sample()
	want.ID = 1
	assert.Equal(t, []*order.Order{want}, orders)
}

/*
TestPostgresRepository_EditOrder verifies the full-field update keyed by id.
*/
func TestPostgresRepository_EditOrder(t *testing.T) {
	h := pgtest.New(t)
	repository := order.NewPostgresRepository(h.Executor)

	h.Mock.ExpectBegin()
	h.Mock.ExpectExec(regexp.QuoteMeta(`UPDATE public."order"`)).
		WithArgs(1, june, 80, 120000, "Paris City Hall", 2, 9).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	h.Mock.ExpectCommit()

	o := sample()
	o.ID = 9
	assert.NoError(t, repository.EditOrder(context.Background(), o))
}

/*
TestPostgresRepository_DeleteOrder verifies that order deletion has no
dependency pre-check.
*/
func TestPostgresRepository_DeleteOrder(t *testing.T) {
	h := pgtest.New(t)
	repository := order.NewPostgresRepository(h.Executor)

	h.Mock.ExpectBegin()
	h.Mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM public."order" WHERE id = $1`)).
		WithArgs(9).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	h.Mock.ExpectCommit()

	assert.NoError(t, repository.DeleteOrder(context.Background(), 9))
}
