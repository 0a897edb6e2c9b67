// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"
	"fmt"

	"github.com/momeni/car-rental/pkg/core/repo"
	"gorm.io/gorm"
)

// Conn represents a dedicated database connection. Each statement
// which is executed directly on a Conn runs in its own auto-committed
// transaction. Conn embeds the *gorm.DB, hence, may be used like GORM
// from within the repository packages.
type Conn struct {
	*gorm.DB
}

type TxHandler = repo.TxHandler

// Tx begins a transaction on c and passes it to the f handler.
// The transaction is committed if f returns nil. It is rolled back
// if f returns an error or panics. A panic is converted to an error.
func (c *Conn) Tx(ctx context.Context, f TxHandler) (err error) {
	gtx := c.DB.WithContext(ctx).Begin()
	if err = gtx.Error; err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			err = rollback(gtx, fmt.Errorf("panicked: %v", r))
			return
		}
		if err != nil {
			err = rollback(gtx, fmt.Errorf("handler: %w", err))
			return
		}
		if err = gtx.Commit().Error; err != nil {
			err = fmt.Errorf("commit: %w", err)
		}
	}()
	return f(ctx, &Tx{DB: gtx})
}

// rollback aborts gtx and returns cause, joined with the rollback
// error (if any).
func rollback(gtx *gorm.DB, cause error) error {
	if err := gtx.Rollback().Error; err != nil {
		return fmt.Errorf("%w, rollback: %w", cause, err)
	}
	return cause
}

// Exec runs sql with args in an auto-committed transaction and returns
// the number of affected rows.
func (c *Conn) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	return execRaw(ctx, c.DB, sql, args...)
}

// Query runs sql with args and returns its result set.
func (c *Conn) Query(ctx context.Context, sql string, args ...any) (repo.Rows, error) {
	return queryRaw(ctx, c.DB, sql, args...)
}

func (c *Conn) IsConn() {
}

// GORM returns the embedded *gorm.DB instance, configuring it
// to operate on the given ctx context (in a gorm.Session).
func (c *Conn) GORM(ctx context.Context) *gorm.DB {
	return c.DB.WithContext(ctx)
}
