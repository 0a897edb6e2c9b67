// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schemarp

import (
	"context"
	"fmt"

	"github.com/momeni/car-rental/pkg/adapter/db/postgres"
)

// Tables lists the tables which are managed by this package, in their
// creation order. They are dropped in the reverse order.
var Tables = []string{"vehicles", "clients", "rentals"}

// createStatements creates the Tables. The rentals table carries an
// exclusion constraint which prevents two active rentals of the same
// vehicle from sharing any calendar date. Periods are closed, hence,
// the '[]' bounds of the daterange.
var createStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,
	`CREATE TABLE vehicles (
		id uuid PRIMARY KEY,
		chassis_number text NOT NULL UNIQUE,
		make text NOT NULL,
		model text NOT NULL,
		daily_rate numeric NOT NULL CHECK (daily_rate > 0),
		active boolean NOT NULL DEFAULT true
	)`,
	`CREATE TABLE clients (
		id uuid PRIMARY KEY,
		first_name text NOT NULL,
		last_name text NOT NULL,
		email text NOT NULL UNIQUE,
		active boolean NOT NULL DEFAULT true
	)`,
	`CREATE TABLE rentals (
		id uuid PRIMARY KEY,
		vehicle_id uuid NOT NULL REFERENCES vehicles (id),
		client_id uuid NOT NULL REFERENCES clients (id),
		start_date date NOT NULL,
		end_date date NOT NULL,
		charge numeric NOT NULL,
		active boolean NOT NULL DEFAULT true,
		CHECK (start_date < end_date),
		EXCLUDE USING gist (
			vehicle_id WITH =,
			daterange(start_date, end_date, '[]') WITH &&
		) WHERE (active)
	)`,
	`CREATE INDEX rentals_client_id_idx ON rentals (client_id, start_date)`,
}

// Recreate drops the Tables (if they exist) and creates them again
// in the tx transaction.
func Recreate(ctx context.Context, tx *postgres.Tx) error {
	for i := len(Tables) - 1; i >= 0; i-- {
		sql := fmt.Sprintf("DROP TABLE IF EXISTS %s", Tables[i])
		if _, err := tx.Exec(ctx, sql); err != nil {
			return fmt.Errorf("dropping %q table: %w", Tables[i], err)
		}
	}
	for i, sql := range createStatements {
		if _, err := tx.Exec(ctx, sql); err != nil {
			return fmt.Errorf("create statement #%d: %w", i, err)
		}
	}
	return nil
}

// Initialized reports whether all Tables exist in the current schema.
func Initialized[Q postgres.Queryer](ctx context.Context, q Q) (bool, error) {
	var n int64
	err := q.GORM(ctx).Raw(
		`SELECT count(*) FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_name IN ?`,
		Tables,
	).Scan(&n).Error
	if err != nil {
		return false, fmt.Errorf("query: %w", err)
	}
	return n == int64(len(Tables)), nil
}
