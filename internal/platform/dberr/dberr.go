// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// It inspects the PostgreSQL SQLSTATE carried by [pgconn.PgError] and sorts
// every failure into exactly one [Kind]. Checks run in a fixed priority:
// foreign key, then unique, then everything else.
package dberr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/taibuivan/wedplan/internal/platform/apperr"
)

// Kind is the classification of a failed statement.
type Kind int

const (
	// KindGeneric is any failure that is not a constraint violation.
	KindGeneric Kind = iota
	// KindForeignKey is a referential integrity violation (SQLSTATE 23503).
	KindForeignKey
	// KindUnique is a uniqueness violation (SQLSTATE 23505).
	KindUnique
)

// String returns the log label for the kind.
func (k Kind) String() string {
	switch k {
	case KindForeignKey:
		return "foreign_key_violation"
	case KindUnique:
		return "unique_violation"
	default:
		return "execution_error"
	}
}

// Detail is the full diagnostic picture of a driver error, destined for the
// persistent error log.
type Detail struct {
	Kind       Kind
	SQLState   string
	Message    string
	Detail     string
	Table      string
	Column     string
	Constraint string
}

// Classify sorts err into a [Kind] and extracts the PostgreSQL diagnostics
// when the driver provides them.
func Classify(err error) Detail {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Detail{Kind: KindGeneric, Message: err.Error()}
	}

	detail := Detail{
		Kind:       KindGeneric,
		SQLState:   pgErr.Code,
		Message:    pgErr.Message,
		Detail:     pgErr.Detail,
		Table:      pgErr.TableName,
		Column:     pgErr.ColumnName,
		Constraint: pgErr.ConstraintName,
	}

	switch pgErr.Code {
	case pgerrcode.ForeignKeyViolation:
		detail.Kind = KindForeignKey
	case pgerrcode.UniqueViolation:
		detail.Kind = KindUnique
	}

	return detail
}

// Wrap converts err into the matching [apperr.AppError].
//
// The returned message is short and console-safe; err itself is kept as the
// cause for logging.
func Wrap(err error) *apperr.AppError {
	if err == nil {
		return nil
	}

	if ae := apperr.As(err); ae != nil {
		return ae
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Record")
	}

	detail := Classify(err)
	switch detail.Kind {
	case KindForeignKey:
		return apperr.ReferentialViolation(
			fmt.Sprintf("Related record missing: the referenced %s does not exist. Operation failed", entityName(detail)),
			err,
		)
	case KindUnique:
		return apperr.UniquenessViolation(
			fmt.Sprintf("Uniqueness violation: a %s with this key already exists (duplicate key)", entityName(detail)),
			err,
		)
	default:
		return apperr.ExecutionFailed("SQL execution failed: operation not performed", err)
	}
}

// entityName infers the human name of the row a constraint refers to.
//
// Priority:
//  1. A column ending in "_id" names the referenced entity ("groom_id" -> "Groom").
//  2. A constraint named "<table>_<column>_fkey" yields the column the same way.
//  3. The table name.
//  4. "record".
func entityName(d Detail) string {
	if name := strings.TrimSuffix(strings.ToLower(d.Column), "_id"); name != "" && name != strings.ToLower(d.Column) {
		return humanize(name)
	}

	if strings.HasSuffix(d.Constraint, "_id_fkey") {
		trimmed := strings.TrimSuffix(d.Constraint, "_id_fkey")
		if i := strings.LastIndex(trimmed, "_"); i >= 0 {
			return humanize(trimmed[i+1:])
		}
		return humanize(trimmed)
	}

	if d.Table != "" {
		return humanize(d.Table)
	}

	return "record"
}

// humanize converts snake_case identifiers into Title Case ("social_credit" -> "Social Credit").
func humanize(text string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}
