// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package clientsrp_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/momeni/car-rental/internal/test/gormmock"
	"github.com/momeni/car-rental/pkg/adapter/db/postgres/clientsrp"
	"github.com/momeni/car-rental/pkg/core/cerr"
	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "first_name", "last_name", "email", "active"}

func TestGet(t *testing.T) {
	_, c, mock := gormmock.New(t)
	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "clients" WHERE id = $1`,
	)).WithArgs(id).WillReturnRows(sqlmock.NewRows(columns).AddRow(
		id.String(), "Sara", "Ahmadi", "sara@example.com", true,
	))

	cl, err := clientsrp.Get(context.Background(), c, id)
	require.NoError(t, err)
	assert.Equal(t, id, cl.ID)
	assert.Equal(t, "Sara", cl.FirstName)
	assert.Equal(t, "Ahmadi", cl.LastName)
	assert.Equal(t, "sara@example.com", cl.Email)
	assert.True(t, cl.Active)
}

func TestLock(t *testing.T) {
	tx, _, mock := gormmock.New(t)
	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "clients" WHERE id = $1 FOR UPDATE`,
	)).WithArgs(id).WillReturnRows(sqlmock.NewRows(columns).AddRow(
		id.String(), "Sara", "Ahmadi", "sara@example.com", false,
	))

	cl, err := clientsrp.Lock(context.Background(), tx, id)
	require.NoError(t, err)
	assert.Equal(t, id, cl.ID)
	assert.False(t, cl.Active)
}

func TestLockMissingClient(t *testing.T) {
	tx, _, mock := gormmock.New(t)
	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "clients" WHERE id = $1 FOR UPDATE`,
	)).WithArgs(id).WillReturnRows(sqlmock.NewRows(columns))

	_, err := clientsrp.Lock(context.Background(), tx, id)
	assert.Equal(t, cerr.KindNotFound, cerr.KindOf(err))
	assert.ErrorIs(t, err, model.ErrClientNotFound)
}

func TestEmailExists(t *testing.T) {
	tx, _, mock := gormmock.New(t)
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT count(*) FROM "clients" WHERE email = $1`,
	)).WithArgs("sara@example.com").WillReturnRows(
		sqlmock.NewRows([]string{"count"}).AddRow(0),
	)

	exists, err := clientsrp.EmailExists(
		context.Background(), tx, "sara@example.com",
	)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateTranslatesUniqueViolation(t *testing.T) {
	tx, _, mock := gormmock.New(t)
	cl := &model.Client{
		ID:        uuid.New(),
		FirstName: "Sara",
		LastName:  "Ahmadi",
		Email:     "sara@example.com",
		Active:    true,
	}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "clients"`)).WillReturnResult(
		sqlmock.NewResult(0, 1),
	)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "clients"`)).WillReturnError(
		&pgconn.PgError{Code: "23505", ConstraintName: "clients_email_key"},
	)

	ctx := context.Background()
	require.NoError(t, clientsrp.Create(ctx, tx, cl))
	err := clientsrp.Create(ctx, tx, cl)
	assert.Equal(t, cerr.KindAlreadyExists, cerr.KindOf(err))
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestDeactivate(t *testing.T) {
	tx, _, mock := gormmock.New(t)
	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE "clients" SET "active"=$1 WHERE id = $2`,
	)).WithArgs(false, id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE "clients" SET "active"=$1 WHERE id = $2`,
	)).WithArgs(false, id).WillReturnResult(sqlmock.NewResult(0, 0))

	ctx := context.Background()
	require.NoError(t, clientsrp.Deactivate(ctx, tx, id))
	err := clientsrp.Deactivate(ctx, tx, id)
	assert.Equal(t, cerr.KindNotFound, cerr.KindOf(err))
	assert.ErrorIs(t, err, model.ErrClientNotFound)
}
