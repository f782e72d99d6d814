// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package organizer

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

// selectColumns is the column list matching scanOrganizer.
var selectColumns = strings.Join(schema.PublicOrganizer.Columns(), ", ")

func (repository *PostgresRepository) ListOrganizers(context context.Context) ([]*Organizer, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		selectColumns, schema.PublicOrganizer.Table, schema.PublicOrganizer.ID,
	)

	organizers, _, err := postgres.Query(context, repository.db, postgres.Statement{
		Action: "list_organizers",
		SQL:    query,
	}, scanOrganizer)

	return organizers, err
}

func (repository *PostgresRepository) GetOrganizer(context context.Context, id int) (*Organizer, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.PublicOrganizer.Table, schema.PublicOrganizer.ID,
	)

	o, found, err := postgres.QueryOne(context, repository.db, postgres.Statement{
		Action: "get_organizer",
		SQL:    query,
		Args:   []any{id},
	}, scanOrganizer)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.NotFound("Organizer")
	}

	return o, nil
}

func (repository *PostgresRepository) AddOrganizer(context context.Context, o *Organizer) (int, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s`,
		schema.PublicOrganizer.Table, schema.PublicOrganizer.Name, schema.PublicOrganizer.SocialCredit,
		schema.PublicOrganizer.ID,
	)

	id, _, err := postgres.QueryOne(context, repository.db, postgres.Statement{
		Action: "add_organizer",
		SQL:    query,
		Args:   []any{o.Name, o.SocialCredit},
		Write:  true,
	}, pgx.RowTo[int])
	if err != nil {
		return 0, err
	}

	o.ID = id
	fmt.Fprintf(repository.db.Console(), "Added organizer id=%d\n", id)
	return id, nil
}

func (repository *PostgresRepository) EditOrganizer(context context.Context, o *Organizer) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2 WHERE %s = $3`,
		schema.PublicOrganizer.Table, schema.PublicOrganizer.Name, schema.PublicOrganizer.SocialCredit,
		schema.PublicOrganizer.ID,
	)

	affected, err := repository.db.Exec(context, postgres.Statement{
		Action: "edit_organizer",
		SQL:    query,
		Args:   []any{o.Name, o.SocialCredit, o.ID},
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return apperr.NotFound("Organizer")
	}
	return nil
}

// DeleteOrganizer is guarded the same way as groom deletion: dependent orders
// are counted first and block the DELETE.
func (repository *PostgresRepository) DeleteOrganizer(context context.Context, id int) error {
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`,
		schema.PublicOrder.Table, schema.PublicOrder.OrganizerID,
	)

	count, _, err := postgres.QueryOne(context, repository.db, postgres.Statement{
		Action: "count_organizer_orders",
		SQL:    countQuery,
		Args:   []any{id},
	}, pgx.RowTo[int64])
	if err != nil {
		return err
	}

	if count > 0 {
		fmt.Fprintf(repository.db.Console(), "Error: Unable to delete organizer (ID: %d). It has %d related orders.\n", id, count)
		return apperr.MarkReported(apperr.DependentRows("organizer", id, count))
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.PublicOrganizer.Table, schema.PublicOrganizer.ID)

	affected, err := repository.db.Exec(context, postgres.Statement{
		Action: "delete_organizer",
		SQL:    query,
		Args:   []any{id},
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return apperr.NotFound("Organizer")
	}
	return nil
}

func scanOrganizer(row pgx.CollectableRow) (*Organizer, error) {
	o := &Organizer{}
	err := row.Scan(&o.ID, &o.Name, &o.SocialCredit)
	return o, err
}
