// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"

	"github.com/momeni/car-rental/pkg/core/repo"
	"gorm.io/gorm"
)

// Tx is an ongoing READ-COMMITTED transaction which is created by the
// Conn.Tx method and is valid until its handler returns. It may not
// be used concurrently.
//
// Booking operations lock the client and vehicle rows of a Tx using
// SELECT ... FOR UPDATE, so other transactions which try to book or
// deactivate the same rows wait for this Tx to commit or roll back.
// The exclusion constraint of the rentals table rejects overlapping
// rentals which could slip through otherwise.
type Tx struct {
	*gorm.DB
}

// Exec runs sql with args in this transaction and returns the number
// of affected rows.
func (tx *Tx) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	return execRaw(ctx, tx.DB, sql, args...)
}

// Query runs sql with args in this transaction and returns its rows.
func (tx *Tx) Query(ctx context.Context, sql string, args ...any) (repo.Rows, error) {
	return queryRaw(ctx, tx.DB, sql, args...)
}

// IsTx prevents a Conn from implementing the repo.Tx interface.
func (tx *Tx) IsTx() {
}

// GORM returns the transaction *gorm.DB in a session which uses ctx.
func (tx *Tx) GORM(ctx context.Context) *gorm.DB {
	return tx.DB.WithContext(ctx)
}
