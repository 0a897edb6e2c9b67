// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// TxHandler is a function which uses a Tx during a use case.
// The Tx is committed if the handler returns nil and is rolled back
// otherwise.
type TxHandler func(context.Context, Tx) error

// Conn represents a database connection. It is unsafe to be used
// concurrently. Each statement which is executed on a Conn runs in
// its own auto-committed transaction.
type Conn interface {
	Queryer

	// Tx begins a transaction, passes it to the handler, and commits
	// or rolls it back based on the handler result.
	Tx(ctx context.Context, handler TxHandler) error

	// IsConn method prevents a non-Conn object (such as a Tx) to
	// mistakenly implement the Conn interface.
	IsConn()
}
