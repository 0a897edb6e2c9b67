// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/momeni/car-rental/pkg/core/repo"
	"gorm.io/gorm"
)

// Queryer is the type constraint of the generic query functions in
// the repository packages. They may run on a *Conn or a *Tx alike.
type Queryer interface {
	*Conn | *Tx
	repo.Queryer
	GORM(ctx context.Context) *gorm.DB
}

// execRaw runs the sql statement(s) on db and returns the number of
// affected rows. Placeholders may be written as $1, ?, or @name.
// Multiple semi-colon separated statements are only accepted when
// args is empty.
func execRaw(
	ctx context.Context, db *gorm.DB, sql string, args ...any,
) (int64, error) {
	res := db.WithContext(ctx).Exec(sql, args...)
	if err := res.Error; err != nil {
		return 0, err
	}
	return res.RowsAffected, nil
}

// queryRaw runs one sql statement on db and returns its result set.
// No other statement may run on the same connection before the
// returned rows are closed.
func queryRaw(
	ctx context.Context, db *gorm.DB, sql string, args ...any,
) (repo.Rows, error) {
	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	if rows == nil {
		return nil, fmt.Errorf("no result set for %q", sql)
	}
	return rowsAdapter{rows}, nil
}

// rowsAdapter adapts *sql.Rows to the repo.Rows interface.
type rowsAdapter struct {
	*sql.Rows
}

func (ra rowsAdapter) Close() {
	// the Err method reports the iteration errors
	_ = ra.Rows.Close()
}

// Values scans the current row into a slice with one item per column.
func (ra rowsAdapter) Values() ([]any, error) {
	cols, err := ra.Columns()
	if err != nil {
		return nil, fmt.Errorf("listing columns: %w", err)
	}
	vals := make([]any, len(cols))
	dst := make([]any, len(cols))
	for i := range vals {
		dst[i] = &vals[i]
	}
	if err = ra.Scan(dst...); err != nil {
		return nil, fmt.Errorf("scanning %d columns: %w", len(cols), err)
	}
	return vals, nil
}
