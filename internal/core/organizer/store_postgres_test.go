// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package organizer_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/wedplan/internal/core/organizer"
	"github.com/taibuivan/wedplan/internal/platform/apperr"
	"github.com/taibuivan/wedplan/internal/platform/postgres/pgtest"
)

var countOrdersSQL = regexp.QuoteMeta(`SELECT COUNT(*) FROM public."order" WHERE organizer_id = $1`)

/*
TestPostgresRepository_AddOrganizer verifies the returned identity and the
console notice.
*/
func TestPostgresRepository_AddOrganizer(t *testing.T) {
	h := pgtest.New(t)
	repository := organizer.NewPostgresRepository(h.Executor)

	h.Mock.ExpectBegin()
	h.Mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO public.organizer (name, social_credit) VALUES ($1, $2) RETURNING organizer_id")).
		WithArgs("WeddingPro", 88).
		WillReturnRows(pgxmock.NewRows([]string{"organizer_id"}).AddRow(12))
	h.Mock.ExpectCommit()

	id, err := repository.AddOrganizer(context.Background(), &organizer.Organizer{Name: "WeddingPro", SocialCredit: 88})

	require.NoError(t, err)
	assert.Equal(t, 12, id)
	assert.Contains(t, h.Console.String(), "Added organizer id=12")
}

/*
TestPostgresRepository_AddOrganizer_Duplicate verifies that a unique violation
is reported once and yields no identity.
*/
func TestPostgresRepository_AddOrganizer_Duplicate(t *testing.T) {
	h := pgtest.New(t)
	repository := organizer.NewPostgresRepository(h.Executor)

	h.Mock.ExpectBegin()
	h.Mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO public.organizer")).
		WithArgs("WeddingPro", 88).
		WillReturnError(&pgconn.PgError{Code: "23505", TableName: "organizer", ConstraintName: "organizer_pkey"})
	h.Mock.ExpectRollback()

	id, err := repository.AddOrganizer(context.Background(), &organizer.Organizer{Name: "WeddingPro", SocialCredit: 88})

	assert.Zero(t, id)
	assert.True(t, apperr.HasCode(err, apperr.CodeUniquenessViolation))
	assert.True(t, apperr.IsReported(err))
	assert.NotContains(t, h.Console.String(), "Added organizer")
}

/*
TestPostgresRepository_ListOrganizers verifies row mapping in identity order.
*/
func TestPostgresRepository_ListOrganizers(t *testing.T) {
	h := pgtest.New(t)
	repository := organizer.NewPostgresRepository(h.Executor)

	h.Mock.ExpectBegin()
	h.Mock.ExpectQuery(regexp.QuoteMeta("SELECT organizer_id, name, social_credit FROM public.organizer ORDER BY organizer_id ASC")).
		WillReturnRows(pgxmock.NewRows([]string{"organizer_id", "name", "social_credit"}).
			AddRow(1, "Golden Event", 71).
			AddRow(2, "Romance Studio", 95))
	h.Mock.ExpectRollback()

	organizers, err := repository.ListOrganizers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []*organizer.Organizer{
		{ID: 1, Name: "Golden Event", SocialCredit: 71},
		{ID: 2, Name: "Romance Studio", SocialCredit: 95},
	}, organizers)
}

/*
TestPostgresRepository_GetOrganizer covers a hit and a missing identity.
*/
func TestPostgresRepository_GetOrganizer(t *testing.T) {
	getSQL := regexp.QuoteMeta("SELECT organizer_id, name, social_credit FROM public.organizer WHERE organizer_id = $1")
	columns := []string{"organizer_id", "name", "social_credit"}

	h := pgtest.New(t)
	repository := organizer.NewPostgresRepository(h.Executor)

	h.Mock.ExpectBegin()
	h.Mock.ExpectQuery(getSQL).WithArgs(2).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(2, "WeddingPro", 88))
	h.Mock.ExpectRollback()
	h.Mock.ExpectBegin()
	h.Mock.ExpectQuery(getSQL).WithArgs(9).
		WillReturnRows(pgxmock.NewRows(columns))
	h.Mock.ExpectRollback()

	o, err := repository.GetOrganizer(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, &organizer.Organizer{ID: 2, Name: "WeddingPro", SocialCredit: 88}, o)

	_, err = repository.GetOrganizer(context.Background(), 9)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestPostgresRepository_DeleteOrganizer covers the blocked and the free path.
*/
func TestPostgresRepository_DeleteOrganizer(t *testing.T) {
	t.Run("blocked", func(t *testing.T) {
		h := pgtest.New(t)
		repository := organizer.NewPostgresRepository(h.Executor)

		h.Mock.ExpectBegin()
		h.Mock.ExpectQuery(countOrdersSQL).
			WithArgs(4).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(5)))
		h.Mock.ExpectRollback()

		err := repository.DeleteOrganizer(context.Background(), 4)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, apperr.CodeReferentialViolation, ae.Code)
		assert.Equal(t, int64(5), ae.Dependents)
		assert.Contains(t, h.Console.String(), "Unable to delete organizer (ID: 4). It has 5 related orders.")
	})

	t.Run("free", func(t *testing.T) {
		h := pgtest.New(t)
		repository := organizer.NewPostgresRepository(h.Executor)

		h.Mock.ExpectBegin()
		h.Mock.ExpectQuery(countOrdersSQL).
			WithArgs(4).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
		h.Mock.ExpectRollback()
		h.Mock.ExpectBegin()
		h.Mock.ExpectExec(regexp.QuoteMeta("DELETE FROM public.organizer WHERE organizer_id = $1")).
			WithArgs(4).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		h.Mock.ExpectCommit()

		assert.NoError(t, repository.DeleteOrganizer(context.Background(), 4))
	})
}
