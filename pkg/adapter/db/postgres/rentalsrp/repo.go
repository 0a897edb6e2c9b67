// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package rentalsrp provides a reification of the repo.Rentals
// interface, storing rentals in the rentals table of a PostgreSQL
// database. Rentals refer to their vehicles and clients by foreign
// keys.
package rentalsrp

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

func (rentals *Repo) Conn(c repo.Conn) repo.RentalsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Get(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	return Get(ctx, cq.Conn, id)
}

func (cq connQueryer) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.Rental, error) {
	return ListByVehicle(ctx, cq.Conn, vehicleID)
}

func (cq connQueryer) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Rental, error) {
	return ListByClient(ctx, cq.Conn, clientID)
}

type txQueryer struct {
	*postgres.Tx
}

func (rentals *Repo) Tx(tx repo.Tx) repo.RentalsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Get(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	return Get(ctx, tq.Tx, id)
}

func (tq txQueryer) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.Rental, error) {
	return ListByVehicle(ctx, tq.Tx, vehicleID)
}

func (tq txQueryer) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Rental, error) {
	return ListByClient(ctx, tq.Tx, clientID)
}

func (tq txQueryer) Lock(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	return Lock(ctx, tq.Tx, id)
}

func (tq txQueryer) Create(ctx context.Context, r *model.Rental) error {
	return Create(ctx, tq.Tx, r)
}

func (tq txQueryer) Cancel(ctx context.Context, id uuid.UUID) error {
	return Cancel(ctx, tq.Tx, id)
}
