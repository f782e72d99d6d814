// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"fmt"
	"time"

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

func (repository *PostgresRepository) Live() bool {
	return repository.db.Live()
}

// ByPaymentAndGroomName matches payment in [minPayment, maxPayment] and a
// case-insensitive LIKE pattern on the groom name. Highest payment first.
func (repository *PostgresRepository) ByPaymentAndGroomName(context context.Context, minPayment, maxPayment int, pattern string) ([]PaymentMatch, postgres.Timing, error) {
	o, g := schema.PublicOrder, schema.PublicGroom
	query := fmt.Sprintf(`
		SELECT o.%s, o.%s, o.%s, g.%s, g.%s
		FROM %s o
		JOIN %s g ON o.%s = g.%s
		WHERE o.%s BETWEEN $1 AND $2
		  AND g.%s ILIKE $3
		ORDER BY o.%s DESC, o.%s ASC
	`,
		o.ID, o.WeddingDate, o.Payment, g.Name, g.Age,
		o.Table,
		g.Table, o.GroomID, g.ID,
		o.Payment,
		g.Name,
		o.Payment, o.ID,
	)

	return postgres.Query(context, repository.db, postgres.Statement{
		Action: "search_payment_groom_name",
		SQL:    query,
		Args:   []any{minPayment, maxPayment, pattern},
		Timed:  true,
	}, func(row pgx.CollectableRow) (PaymentMatch, error) {
		var m PaymentMatch
		err := row.Scan(&m.OrderID, &m.WeddingDate, &m.Payment, &m.GroomName, &m.GroomAge)
		return m, err
	})
}

// ByDateAndOrganizerCredit matches weddings in [from, to] whose organizer has
// at least minCredit. Earliest wedding first.
func (repository *PostgresRepository) ByDateAndOrganizerCredit(context context.Context, from, to time.Time, minCredit int) ([]CreditMatch, postgres.Timing, error) {
	o, org := schema.PublicOrder, schema.PublicOrganizer
	query := fmt.Sprintf(`
		SELECT o.%s, o.%s, o.%s, org.%s, org.%s
		FROM %s o
		JOIN %s org ON o.%s = org.%s
		WHERE o.%s BETWEEN $1 AND $2
		  AND org.%s >= $3
		ORDER BY o.%s ASC, o.%s ASC
	`,
		o.ID, o.WeddingDate, o.Guests, org.Name, org.SocialCredit,
		o.Table,
		org.Table, o.OrganizerID, org.ID,
		o.WeddingDate,
		org.SocialCredit,
		o.WeddingDate, o.ID,
	)

	return postgres.Query(context, repository.db, postgres.Statement{
		Action: "search_date_organizer_credit",
		SQL:    query,
		Args:   []any{from, to, minCredit},
		Timed:  true,
	}, func(row pgx.CollectableRow) (CreditMatch, error) {
		var m CreditMatch
		err := row.Scan(&m.OrderID, &m.WeddingDate, &m.Guests, &m.OrganizerName, &m.SocialCredit)
		return m, err
	})
}

// GroomTotalsByGuestsAndLocation aggregates orders with at least minGuests at
// a location matching pattern, per groom. Largest total payment first.
func (repository *PostgresRepository) GroomTotalsByGuestsAndLocation(context context.Context, minGuests int, pattern string) ([]GroomTotal, postgres.Timing, error) {
	o, g := schema.PublicOrder, schema.PublicGroom
	query := fmt.Sprintf(`
		SELECT g.%s, g.%s, COUNT(o.%s) AS total_orders, SUM(o.%s) AS total_payment
		FROM %s g
		JOIN %s o ON o.%s = g.%s
		WHERE o.%s >= $1
		  AND o.%s ILIKE $2
		GROUP BY g.%s, g.%s, g.%s
		ORDER BY total_payment DESC, g.%s ASC
	`,
		g.Name, g.Age, o.ID, o.Payment,
		g.Table,
		o.Table, o.GroomID, g.ID,
		o.Guests,
		o.Location,
		g.ID, g.Name, g.Age,
		g.ID,
	)

	return postgres.Query(context, repository.db, postgres.Statement{
		Action: "search_groom_totals",
		SQL:    query,
		Args:   []any{minGuests, pattern},
		Timed:  true,
	}, func(row pgx.CollectableRow) (GroomTotal, error) {
		var t GroomTotal
		err := row.Scan(&t.GroomName, &t.GroomAge, &t.TotalOrders, &t.TotalPayment)
		return t, err
	})
}
