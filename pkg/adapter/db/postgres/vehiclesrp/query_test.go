// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package vehiclesrp_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/momeni/car-rental/internal/test/gormmock"
	"github.com/momeni/car-rental/pkg/adapter/db/postgres/vehiclesrp"
	"github.com/momeni/car-rental/pkg/core/cerr"
	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{
	"id", "chassis_number", "make", "model", "daily_rate", "active",
}

func TestGet(t *testing.T) {
	_, c, mock := gormmock.New(t)
	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "vehicles" WHERE id = $1`,
	)).WithArgs(id).WillReturnRows(sqlmock.NewRows(columns).AddRow(
		id.String(), "VIN123", "Toyota", "Corolla", "40.00", true,
	))

	v, err := vehiclesrp.Get(context.Background(), c, id)
	require.NoError(t, err)
	assert.Equal(t, id, v.ID)
	assert.Equal(t, "VIN123", v.ChassisNumber)
	assert.True(t, decimal.NewFromInt(40).Equal(v.DailyRate))
	assert.True(t, v.Active)
}

func TestLockMissingVehicle(t *testing.T) {
	tx, _, mock := gormmock.New(t)
	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "vehicles" WHERE id = $1 FOR UPDATE`,
	)).WithArgs(id).WillReturnRows(sqlmock.NewRows(columns))

	_, err := vehiclesrp.Lock(context.Background(), tx, id)
	assert.Equal(t, cerr.KindNotFound, cerr.KindOf(err))
	assert.ErrorIs(t, err, model.ErrVehicleNotFound)
}

func TestChassisNumberExists(t *testing.T) {
	tx, _, mock := gormmock.New(t)
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT count(*) FROM "vehicles" WHERE chassis_number = $1`,
	)).WithArgs("VIN123").WillReturnRows(
		sqlmock.NewRows([]string{"count"}).AddRow(1),
	)

	exists, err := vehiclesrp.ChassisNumberExists(context.Background(), tx, "VIN123")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCreateTranslatesUniqueViolation(t *testing.T) {
	tx, _, mock := gormmock.New(t)
	v := &model.Vehicle{
		ID:            uuid.New(),
		ChassisNumber: "VIN123",
		Make:          "Toyota",
		Model:         "Corolla",
		DailyRate:     decimal.NewFromInt(40),
		Active:        true,
	}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "vehicles"`)).WillReturnResult(
		sqlmock.NewResult(0, 1),
	)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "vehicles"`)).WillReturnError(
		&pgconn.PgError{Code: "23505", ConstraintName: "vehicles_chassis_number_key"},
	)

	ctx := context.Background()
	require.NoError(t, vehiclesrp.Create(ctx, tx, v))
	err := vehiclesrp.Create(ctx, tx, v)
	assert.Equal(t, cerr.KindAlreadyExists, cerr.KindOf(err))
	assert.ErrorIs(t, err, model.ErrChassisNumberTaken)
}

func TestDeactivate(t *testing.T) {
	tx, _, mock := gormmock.New(t)
	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE "vehicles" SET "active"=$1 WHERE id = $2`,
	)).WithArgs(false, id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE "vehicles" SET "active"=$1 WHERE id = $2`,
	)).WithArgs(false, id).WillReturnResult(sqlmock.NewResult(0, 0))

	ctx := context.Background()
	require.NoError(t, vehiclesrp.Deactivate(ctx, tx, id))
	err := vehiclesrp.Deactivate(ctx, tx, id)
	assert.Equal(t, cerr.KindNotFound, cerr.KindOf(err))
}
