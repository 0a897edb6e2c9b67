// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package bookinguc contains the booking UseCase which supports all
// vehicles, clients, and rentals related use cases:
//  1. Registering and deactivating vehicles,
//  2. Registering and deactivating clients,
//  3. Booking and cancelling rentals,
//  4. Querying the registered entities and their rentals.
//
// Each mutating use case runs in one transaction. The rows which are
// consulted for a decision are locked beforehand (the client row and
// then the vehicle row), so concurrent requests observe each other
// effects and no vehicle may be booked twice for a shared day.
package bookinguc

import (
	"context"
	"fmt"
	"time"

	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/momeni/car-rental/pkg/core/repo"
)

// UseCase represents the booking use case. It holds a database
// connection pool, the vehicles, clients, and rentals repositories
// (to be guided with the DB pool), and the booking specific settings.
type UseCase struct {
	pool       repo.Pool
	vehiclesrp repo.Vehicles
	clientsrp  repo.Clients
	rentalsrp  repo.Rentals

	now func() time.Time
	loc *time.Location
}

// New instantiates a booking use case.
// Required parameters are passed individually, so caller has to
// provision them and whenever they change, caller will notice and fix
// them due to a compilation error.
// Optional parameters are passed as a series of functional options
// in order to facilitate their validation and flexibility.
func New(
	p repo.Pool,
	v repo.Vehicles,
	c repo.Clients,
	r repo.Rentals,
	opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{pool: p, vehiclesrp: v, clientsrp: c, rentalsrp: r}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.now == nil {
		uc.now = time.Now
	}
	if uc.loc == nil {
		uc.loc = time.UTC
	}
	return uc, nil
}

// Today returns the current calendar date, as observed in the
// configured time zone.
func (uc *UseCase) Today() model.Date {
	return model.DateOf(uc.now().In(uc.loc))
}

// tx runs the handler in a new transaction, acquiring a connection
// from the pool for its lifetime.
func (uc *UseCase) tx(ctx context.Context, handler repo.TxHandler) error {
	return uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, handler)
	})
}
