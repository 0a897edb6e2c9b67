// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schemarp_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/momeni/car-rental/internal/test/gormmock"
	"github.com/momeni/car-rental/pkg/adapter/db/postgres/schemarp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecreateDropsInReverseOrder(t *testing.T) {
	tx, _, mock := gormmock.New(t)
	for _, table := range []string{"rentals", "clients", "vehicles"} {
		mock.ExpectExec(regexp.QuoteMeta(
			"DROP TABLE IF EXISTS " + table,
		)).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec(regexp.QuoteMeta(
		"CREATE EXTENSION IF NOT EXISTS btree_gist",
	)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE vehicles").WillReturnError(
		errors.New("permission denied"),
	)

	err := schemarp.Recreate(context.Background(), tx)
	assert.ErrorContains(t, err, "permission denied")
}

func TestInitialized(t *testing.T) {
	_, c, mock := gormmock.New(t)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM information_schema.tables").
		WithArgs("vehicles", "clients", "rentals").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	ok, err := schemarp.Initialized(context.Background(), c)
	require.NoError(t, err)
	assert.True(t, ok)
}
