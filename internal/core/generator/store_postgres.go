// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package generator

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/wedplan/internal/platform/database/schema"
	"github.com/taibuivan/wedplan/internal/platform/postgres"
)

type PostgresRepository struct {
	db *postgres.Executor
}

func NewPostgresRepository(db *postgres.Executor) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Truncate(context context.Context) error {
	query := fmt.Sprintf(`TRUNCATE %s, %s, %s RESTART IDENTITY CASCADE`,
		schema.PublicOrder.Table, schema.PublicOrganizer.Table, schema.PublicGroom.Table,
	)

	_, err := repository.db.Exec(context, postgres.Statement{Action: "truncate_tables", SQL: query})
	return err
}

// pick draws one element of the text[] parameter at position n uniformly.
func pick(n int) string {
	return fmt.Sprintf("($%d::text[])[1 + floor(random() * cardinality($%d::text[]))::int]", n, n)
}

// between draws an integer uniformly from the inclusive range [$lo, $hi].
func between(lo, hi int) string {
	return fmt.Sprintf("$%d::int + floor(random() * ($%d::int - $%d::int + 1))::int", lo, hi, lo)
}

func (repository *PostgresRepository) InsertGrooms(context context.Context, count int) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		SELECT %s, %s
		FROM generate_series(1, $4::int)
	`,
		schema.PublicGroom.Table, schema.PublicGroom.Name, schema.PublicGroom.Age,
		pick(1), between(2, 3),
	)

	return repository.db.Exec(context, postgres.Statement{
		Action: "generate_grooms",
		SQL:    query,
		Args:   []any{groomNames, minAge, maxAge, count},
	})
}

func (repository *PostgresRepository) InsertOrganizers(context context.Context, count int) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		SELECT %s, %s
		FROM generate_series(1, $4::int)
	`,
		schema.PublicOrganizer.Table, schema.PublicOrganizer.Name, schema.PublicOrganizer.SocialCredit,
		pick(1), between(2, 3),
	)

	return repository.db.Exec(context, postgres.Statement{
		Action: "generate_organizers",
		SQL:    query,
		Args:   []any{organizerNames, minCredit, maxCredit, count},
	})
}

// InsertOrders pairs the i-th groom of one random permutation with the i-th
// organizer of another, so each groom and organizer is used exactly once.
func (repository *PostgresRepository) InsertOrders(context context.Context, count int) (int64, error) {
	g, o := schema.PublicGroom, schema.PublicOrganizer
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		SELECT
			g.%s,
			$1::date + floor(random() * $2::int)::int,
			%s,
			%s,
			%s,
			o.%s
		FROM generate_series(1, $8::int) AS s(i)
		JOIN (SELECT %s, ROW_NUMBER() OVER (ORDER BY random()) AS rn FROM %s) AS g ON g.rn = s.i
		JOIN (SELECT %s, ROW_NUMBER() OVER (ORDER BY random()) AS rn FROM %s) AS o ON o.rn = s.i
	`,
		schema.PublicOrder.Table, schema.PublicOrder.GroomID, schema.PublicOrder.WeddingDate,
		schema.PublicOrder.Guests, schema.PublicOrder.Payment, schema.PublicOrder.Location,
		schema.PublicOrder.OrganizerID,
		g.ID, between(3, 4), between(5, 6), pick(7), o.ID,
		g.ID, g.Table,
		o.ID, o.Table,
	)

	return repository.db.Exec(context, postgres.Statement{
		Action: "generate_orders",
		SQL:    query,
		Args: []any{
			weddingWindowStart, weddingWindowDays,
			minGuests, maxGuests,
			minPayment, maxPayment,
			locations, count,
		},
	})
}

func (repository *PostgresRepository) SerialSequence(context context.Context, target Target) (string, error) {
	sequence, _, err := postgres.QueryOne(context, repository.db, postgres.Statement{
		Action: "lookup_sequence",
		SQL:    `SELECT COALESCE(pg_get_serial_sequence($1, $2), '')`,
		Args:   []any{target.Table, target.Column},
	}, pgx.RowTo[string])

	return sequence, err
}

// ResetSequence moves sequence so that its next value is MAX(column) + 1, or 1
// on an empty table.
func (repository *PostgresRepository) ResetSequence(context context.Context, sequence string, target Target) error {
	query := fmt.Sprintf(`SELECT setval($1::text::regclass, COALESCE((SELECT MAX(%s) FROM %s), 0) + 1, false)`,
		pgx.Identifier{target.Column}.Sanitize(),
		pgx.Identifier{target.Schema, target.Relation}.Sanitize(),
	)

	_, err := repository.db.Exec(context, postgres.Statement{
		Action: "sync_sequence",
		SQL:    query,
		Args:   []any{sequence},
	})
	return err
}
