// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vehiclesrp provides a reification of the repo.Vehicles
// interface, storing vehicles in the vehicles table of a PostgreSQL
// database.
package vehiclesrp

import (
	"context"

	"github.com/google/uuid"
	"github.com/momeni/car-rental/pkg/adapter/db/postgres"
	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/momeni/car-rental/pkg/core/repo"
)

// Repo represents the vehicles repository.
type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

// Conn unwraps the given repo.Conn instance, expecting to find an
// instance of *postgres.Conn as created by this adapter layer.
// Otherwise, it will panic.
func (vehicles *Repo) Conn(c repo.Conn) repo.VehiclesConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Get(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	return Get(ctx, cq.Conn, id)
}

func (cq connQueryer) ChassisNumberExists(ctx context.Context, chassisNumber string) (bool, error) {
	return ChassisNumberExists(ctx, cq.Conn, chassisNumber)
}

type txQueryer struct {
	*postgres.Tx
}

// Tx unwraps the given repo.Tx instance, expecting to find an instance
// of *postgres.Tx as created by this adapter layer.
func (vehicles *Repo) Tx(tx repo.Tx) repo.VehiclesTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Get(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	return Get(ctx, tq.Tx, id)
}

func (tq txQueryer) ChassisNumberExists(ctx context.Context, chassisNumber string) (bool, error) {
	return ChassisNumberExists(ctx, tq.Tx, chassisNumber)
}

func (tq txQueryer) Lock(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	return Lock(ctx, tq.Tx, id)
}

func (tq txQueryer) Create(ctx context.Context, v *model.Vehicle) error {
	return Create(ctx, tq.Tx, v)
}

func (tq txQueryer) Deactivate(ctx context.Context, id uuid.UUID) error {
	return Deactivate(ctx, tq.Tx, id)
}
