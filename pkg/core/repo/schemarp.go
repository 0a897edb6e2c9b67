// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// Schema interface presents expectations from a repository which
// manages the storage structure itself, i.e., creation of the tables
// which are used by other repositories.
type Schema interface {
	Conn(Conn) SchemaConnQueryer
	Tx(Tx) SchemaTxQueryer
}

// SchemaConnQueryer lists the schema operations which may be run in
// auto-committed transactions.
type SchemaConnQueryer interface {
	// Initialized reports whether all expected tables exist.
	Initialized(ctx context.Context) (bool, error)
}

// SchemaTxQueryer lists the schema operations which must be run in
// a transaction, so a failure leaves the previous schema intact.
type SchemaTxQueryer interface {
	// Recreate drops the existing tables (and their data) if any and
	// creates empty tables for vehicles, clients, and rentals.
	Recreate(ctx context.Context) error
}
