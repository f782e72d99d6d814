// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package groom

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

// selectColumns is the column list matching scanGroom.
var selectColumns = strings.Join(schema.PublicGroom.Columns(), ", ")

func (repository *PostgresRepository) ListGrooms(context context.Context) ([]*Groom, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		selectColumns, schema.PublicGroom.Table, schema.PublicGroom.ID,
	)

	grooms, _, err := postgres.Query(context, repository.db, postgres.Statement{
		Action: "list_grooms",
		SQL:    query,
	}, scanGroom)

	return grooms, err
}

func (repository *PostgresRepository) GetGroom(context context.Context, id int) (*Groom, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.PublicGroom.Table, schema.PublicGroom.ID,
	)

	g, found, err := postgres.QueryOne(context, repository.db, postgres.Statement{
		Action: "get_groom",
		SQL:    query,
		Args:   []any{id},
	}, scanGroom)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.NotFound("Groom")
	}

	return g, nil
}

func (repository *PostgresRepository) AddGroom(context context.Context, g *Groom) (int, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s`,
		schema.PublicGroom.Table, schema.PublicGroom.Name, schema.PublicGroom.Age,
		schema.PublicGroom.ID,
	)

	id, _, err := postgres.QueryOne(context, repository.db, postgres.Statement{
		Action: "add_groom",
		SQL:    query,
		Args:   []any{g.Name, g.Age},
		Write:  true,
	}, pgx.RowTo[int])
	if err != nil {
		return 0, err
	}

	g.ID = id
	fmt.Fprintf(repository.db.Console(), "Added groom id=%d\n", id)
	return id, nil
}

func (repository *PostgresRepository) EditGroom(context context.Context, g *Groom) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2 WHERE %s = $3`,
		schema.PublicGroom.Table, schema.PublicGroom.Name, schema.PublicGroom.Age,
		schema.PublicGroom.ID,
	)

	affected, err := repository.db.Exec(context, postgres.Statement{
		Action: "edit_groom",
		SQL:    query,
		Args:   []any{g.Name, g.Age, g.ID},
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return apperr.NotFound("Groom")
	}
	return nil
}

// DeleteGroom refuses to delete a groom that still has orders. The dependent
// count is checked first so that the exact number can be reported.
func (repository *PostgresRepository) DeleteGroom(context context.Context, id int) error {
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`,
		schema.PublicOrder.Table, schema.PublicOrder.GroomID,
	)

	count, _, err := postgres.QueryOne(context, repository.db, postgres.Statement{
		Action: "count_groom_orders",
		SQL:    countQuery,
		Args:   []any{id},
	}, pgx.RowTo[int64])
	if err != nil {
		return err
	}

	if count > 0 {
		fmt.Fprintf(repository.db.Console(), "Error: Unable to delete groom (ID: %d). He has %d related orders.\n", id, count)
		return apperr.MarkReported(apperr.DependentRows("groom", id, count))
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.PublicGroom.Table, schema.PublicGroom.ID)

	affected, err := repository.db.Exec(context, postgres.Statement{
		Action: "delete_groom",
		SQL:    query,
		Args:   []any{id},
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return apperr.NotFound("Groom")
	}
	return nil
}

func scanGroom(row pgx.CollectableRow) (*Groom, error) {
	g := &Groom{}
	err := row.Scan(&g.ID, &g.Name, &g.Age)
	return g, err
}
