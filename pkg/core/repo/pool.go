// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repo specifies the repository interfaces which are consumed
// by the use cases. Each repository is implemented by the adapter layer
// for one storage technology (e.g., a PostgreSQL database or the
// process memory) and is guided by a Conn or Tx instance which is
// acquired from a Pool.
//
// Repositories expose two views. The Conn view runs each statement
// in its own auto-committed transaction and is suitable for read-only
// queries. The Tx view runs all statements in a caller managed
// transaction and additionally provides the row locking and mutation
// operations, so a use case may read, decide, and write atomically.
package repo

import "context"

// ConnHandler is a function which uses a Conn during a use case.
// The Conn is released as soon as the handler returns.
type ConnHandler func(context.Context, Conn) error

// Pool represents a pool of connections. A Pool is safe to be used
// concurrently by multiple goroutines.
type Pool interface {
	// Conn acquires a connection, passes it to the handler, and
	// releases it after the handler returns. The handler error is
	// returned (after possible wrapping).
	Conn(ctx context.Context, handler ConnHandler) error

	// Close releases all resources of the pool. The pool may not be
	// used after being closed.
	Close() error
}

// Repos bundles all repositories of one storage technology, so they
// may be instantiated together with their matching Pool.
type Repos struct {
	Vehicles Vehicles
	Clients  Clients
	Rentals  Rentals
	Schema   Schema
}
