// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package clientsrp provides a reification of the repo.Clients
// interface, storing clients in the clients table of a PostgreSQL
// database.
package clientsrp

import (
	"context"

	"github.com/google/uuid"
	"github.com/momeni/car-rental/pkg/adapter/db/postgres"
	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/momeni/car-rental/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

func (clients *Repo) Conn(c repo.Conn) repo.ClientsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Get(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	return Get(ctx, cq.Conn, id)
}

func (cq connQueryer) EmailExists(ctx context.Context, email string) (bool, error) {
	return EmailExists(ctx, cq.Conn, email)
}

type txQueryer struct {
	*postgres.Tx
}

func (clients *Repo) Tx(tx repo.Tx) repo.ClientsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Get(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	return Get(ctx, tq.Tx, id)
}

func (tq txQueryer) EmailExists(ctx context.Context, email string) (bool, error) {
	return EmailExists(ctx, tq.Tx, email)
}

func (tq txQueryer) Lock(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	return Lock(ctx, tq.Tx, id)
}

func (tq txQueryer) Create(ctx context.Context, c *model.Client) error {
	return Create(ctx, tq.Tx, c)
}

func (tq txQueryer) Deactivate(ctx context.Context, id uuid.UUID) error {
	return Deactivate(ctx, tq.Tx, id)
}
