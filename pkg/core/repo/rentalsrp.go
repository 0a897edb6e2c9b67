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

// Rentals is the rentals repository interface. Rentals are kept apart
// from their vehicles and clients and are looked up by the foreign
// keys on demand.
type Rentals interface {
	Conn(Conn) RentalsConnQueryer
	Tx(Tx) RentalsTxQueryer
}

type RentalsConnQueryer interface {
	RentalsQueryer
}

type RentalsTxQueryer interface {
	RentalsQueryer

	// Lock finds the id rental and locks its row until the end of the
	// current transaction.
	Lock(ctx context.Context, id uuid.UUID) (*model.Rental, error)

	// Create persists r as a new rental with a caller provided ID.
	// Implementations which can detect an overlapping active rental
	// of the same vehicle at this point shall report it with the
	// RangeUnavailable kind.
	Create(ctx context.Context, r *model.Rental) error

	// Cancel flags the id rental as inactive.
	Cancel(ctx context.Context, id uuid.UUID) error
}

// RentalsQueryer lists the common rentals operations. The listing
// methods return rentals (active or not) ordered by their start dates.
type RentalsQueryer interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Rental, error)
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.Rental, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Rental, error)
}
