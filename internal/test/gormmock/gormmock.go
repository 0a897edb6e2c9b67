// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gormmock helps the repository tests to run GORM queries
// against a sqlmock database, so the generated SQL statements and
// the handling of their results may be verified without a DBMS.
package gormmock

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/momeni/car-rental/pkg/adapter/db/postgres"
	"github.com/stretchr/testify/require"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New creates a sqlmock database and wraps it by a GORM instance which
// uses the PostgreSQL dialect. The returned Tx and Conn share the same
// mocked database, so expectations apply to both of them. All
// expectations are verified when the t test finishes.
func New(t *testing.T) (*postgres.Tx, *postgres.Conn, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "creating sqlmock")
	gdb, err := gorm.Open(gpostgres.New(gpostgres.Config{
		Conn: db,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err, "opening gorm on sqlmock")
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return &postgres.Tx{DB: gdb}, &postgres.Conn{DB: gdb}, mock
}
