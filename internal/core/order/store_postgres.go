// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/wedplan/internal/platform/apperr"
	"github.com/taibuivan/wedplan/internal/platform/database/schema"
	"github.com/taibuivan/wedplan/internal/platform/postgres"
)

type PostgresRepository struct {
	db *postgres.Executor
}

func NewPostgresRepository(db *postgres.Executor) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectColumns is the column list matching scanOrder.
var selectColumns = strings.Join(schema.PublicOrder.Columns(), ", ")

func (repository *PostgresRepository) ListOrders(context context.Context) ([]*Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		selectColumns, schema.PublicOrder.Table, schema.PublicOrder.ID,
	)

	orders, _, err := postgres.Query(context, repository.db, postgres.Statement{
		Action: "list_orders",
		SQL:    query,
	}, scanOrder)

	return orders, err
}

func (repository *PostgresRepository) GetOrder(context context.Context, id int) (*Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.PublicOrder.Table, schema.PublicOrder.ID,
	)

	o, found, err := postgres.QueryOne(context, repository.db, postgres.Statement{
		Action: "get_order",
		SQL:    query,
		Args:   []any{id},
	}, scanOrder)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.NotFound("Order")
	}

	return o, nil
}

// AddOrder inserts an order. A groom or organizer that does not exist is
// rejected by the store and surfaces as REFERENTIAL_VIOLATION.
func (repository *PostgresRepository) AddOrder(context context.Context, o *Order) (int, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`,
		schema.PublicOrder.Table, schema.PublicOrder.GroomID, schema.PublicOrder.WeddingDate,
		schema.PublicOrder.Guests, schema.PublicOrder.Payment, schema.PublicOrder.Location,
		schema.PublicOrder.OrganizerID, schema.PublicOrder.ID,
	)

	id, _, err := postgres.QueryOne(context, repository.db, postgres.Statement{
		Action: "add_order",
		SQL:    query,
		Args:   []any{o.GroomID, o.WeddingDate, o.Guests, o.Payment, o.Location, o.OrganizerID},
		Write:  true,
	}, pgx.RowTo[int])
	if err != nil {
		return 0, err
	}

	o.ID = id
	fmt.Fprintf(repository.db.Console(), "Added order id=%d\n", id)
	return id, nil
}

func (repository *PostgresRepository) EditOrder(context context.Context, o *Order) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $7
	`,
		schema.PublicOrder.Table, schema.PublicOrder.GroomID, schema.PublicOrder.WeddingDate,
		schema.PublicOrder.Guests, schema.PublicOrder.Payment, schema.PublicOrder.Location,
		schema.PublicOrder.OrganizerID, schema.PublicOrder.ID,
	)

	affected, err := repository.db.Exec(context, postgres.Statement{
		Action: "edit_order",
		SQL:    query,
		Args:   []any{o.GroomID, o.WeddingDate, o.Guests, o.Payment, o.Location, o.OrganizerID, o.ID},
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return apperr.NotFound("Order")
	}
	return nil
}

func (repository *PostgresRepository) DeleteOrder(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.PublicOrder.Table, schema.PublicOrder.ID)

	affected, err := repository.db.Exec(context, postgres.Statement{
		Action: "delete_order",
		SQL:    query,
		Args:   []any{id},
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return apperr.NotFound("Order")
	}
	return nil
}

func scanOrder(row pgx.CollectableRow) (*Order, error) {
	o := &Order{}
	err := row.Scan(&o.ID, &o.GroomID, &o.WeddingDate, &o.Guests, &o.Payment, &o.Location, &o.OrganizerID)
	return o, err
}
