// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/momeni/car-rental/pkg/core/model"
)

// Vehicles is the vehicles repository interface. Its Conn and Tx
// methods unwrap the given connection or transaction as required by
// the implementation and return a queryer which is bound to them.
type Vehicles interface {
	Conn(Conn) VehiclesConnQueryer
	Tx(Tx) VehiclesTxQueryer
}

// VehiclesConnQueryer lists the vehicles operations which may be run
// in auto-committed transactions.
type VehiclesConnQueryer interface {
	VehiclesQueryer
}

// VehiclesTxQueryer lists the vehicles operations which may be run
// in an ongoing transaction, including the locking and mutating ones.
type VehiclesTxQueryer interface {
	VehiclesQueryer

	// Lock finds the id vehicle and locks its row until the end of the
	// current transaction, so concurrent bookings and deactivations of
	// the same vehicle are serialized. It fails with a NotFound kind
	// error if no such vehicle exists.
	Lock(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)

	// Create persists v as a new vehicle. Its ID must be filled by
	// the caller. An AlreadyExists kind error is returned if another
	// vehicle has the same chassis number.
	Create(ctx context.Context, v *model.Vehicle) error

	// Deactivate flags the id vehicle as inactive.
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// VehiclesQueryer lists the common vehicles operations.
type VehiclesQueryer interface {
	// Get finds the id vehicle. It fails with a NotFound kind error
	// if no such vehicle exists.
	Get(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)

	// ChassisNumberExists reports whether any vehicle (active or not)
	// is registered with the given chassis number.
	ChassisNumberExists(ctx context.Context, chassisNumber string) (bool, error)
}
