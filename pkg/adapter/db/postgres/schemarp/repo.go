// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package schemarp provides a reification of the repo.Schema interface
// making it possible to create the tables which are used by the
// vehiclesrp, clientsrp, and rentalsrp repositories.
package schemarp

import (
	"context"

	"github.com/momeni/car-rental/pkg/adapter/db/postgres"
	"github.com/momeni/car-rental/pkg/core/repo"
)

// Repo represents a schema management repository.
type Repo struct {
}

// New instantiates a schema management Repo struct. Although this New
// function does not perform complex operations, and users may use
// a &schemarp.Repo{} directly too, but this method improves the code
// readability as schemarp.New() makes the package to look alike a
// data type.
func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

// Conn unwraps the given repo.Conn instance, expecting to find an
// instance of *postgres.Conn as created by this adapter layer.
// Otherwise, it will panic.
func (schema *Repo) Conn(c repo.Conn) repo.SchemaConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Initialized(ctx context.Context) (bool, error) {
	return Initialized(ctx, cq.Conn)
}

type txQueryer struct {
	*postgres.Tx
}

// Tx unwraps the given repo.Tx instance, expecting to find an instance
// of *postgres.Tx as created by this adapter layer.
// Since PostgreSQL supports transactional DDL statements, a failed
// Recreate call leaves the previous tables untouched.
func (schema *Repo) Tx(tx repo.Tx) repo.SchemaTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Recreate(ctx context.Context) error {
	return Recreate(ctx, tq.Tx)
}
