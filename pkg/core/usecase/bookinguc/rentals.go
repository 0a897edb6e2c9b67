// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package bookinguc

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/momeni/car-rental/pkg/core/cerr"
	"github.com/momeni/car-rental/pkg/core/log"
	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/momeni/car-rental/pkg/core/repo"
)

// CreateRental use case books the rs.VehicleID vehicle for the
// rs.ClientID client during the rs.Period closed interval.
// Checks are performed in this order and the first failing one is
// reported:
//  1. rs must be valid and must not start before today,
//  2. the client must exist and be active,
//  3. the vehicle must exist and be active,
//  4. no active rental of the vehicle may overlap with rs.Period.
//
// The created rental is active and its charge is computed from the
// current daily rate of the vehicle.
func (uc *UseCase) CreateRental(
	ctx context.Context, rs model.RentalSpec,
) (r *model.Rental, err error) {
	log.Debug(
		ctx, "creating rental",
		log.UUID("vehicle_id", rs.VehicleID),
		log.UUID("client_id", rs.ClientID),
		log.Date("start_date", rs.Start),
		log.Date("end_date", rs.End),
	)
	if err = rs.Validate(uc.Today()); err != nil {
		log.Warn(ctx, "invalid rental", log.Err("err", err))
		return nil, cerr.InvalidInput(err)
	}
	err = uc.tx(ctx, func(ctx context.Context, tx repo.Tx) error {
		c, err := uc.clientsrp.Tx(tx).Lock(ctx, rs.ClientID)
		if err != nil {
			return fmt.Errorf("locking client: %w", err)
		}
		if !c.Active {
			return cerr.EntityInactive(model.ErrClientInactive)
		}
		v, err := uc.vehiclesrp.Tx(tx).Lock(ctx, rs.VehicleID)
		if err != nil {
			return fmt.Errorf("locking vehicle: %w", err)
		}
		if !v.Active {
			return cerr.EntityInactive(model.ErrVehicleInactive)
		}
		q := uc.rentalsrp.Tx(tx)
		rentals, err := q.ListByVehicle(ctx, v.ID)
		if err != nil {
			return fmt.Errorf("listing vehicle rentals: %w", err)
		}
		if !model.IsAvailable(rentals, rs.Period) {
			return cerr.RangeUnavailable(model.ErrVehicleUnavailable)
		}
		r = &model.Rental{
			ID:        uuid.New(),
			VehicleID: v.ID,
			ClientID:  c.ID,
			Period:    rs.Period,
			Charge:    model.Charge(v, rs.Period),
			Active:    true,
		}
		if err = q.Create(ctx, r); err != nil {
			return fmt.Errorf("creating rental: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Warn(
			ctx, "rental creation failed",
			log.UUID("vehicle_id", rs.VehicleID),
			log.UUID("client_id", rs.ClientID),
			log.Err("err", err),
		)
		return nil, err
	}
	log.Info(
		ctx, "rental created",
		log.UUID("rental_id", r.ID),
		log.UUID("vehicle_id", r.VehicleID),
		log.UUID("client_id", r.ClientID),
		log.Decimal("charge", r.Charge),
	)
	return r, nil
}

// CancelRental use case flags the id rental as inactive, releasing its
// period for other bookings. Cancelling an inactive rental has no
// effect. The rental is returned in both cases.
func (uc *UseCase) CancelRental(
	ctx context.Context, id uuid.UUID,
) (r *model.Rental, err error) {
	ctx = log.With(ctx, log.UUID("rental_id", id))
	log.Debug(ctx, "cancelling rental")
	err = uc.tx(ctx, func(ctx context.Context, tx repo.Tx) error {
		q := uc.rentalsrp.Tx(tx)
		r, err = q.Lock(ctx, id)
		if err != nil {
			return fmt.Errorf("locking rental: %w", err)
		}
		if !r.Active {
			return nil
		}
		if err = q.Cancel(ctx, id); err != nil {
			return fmt.Errorf("cancelling rental: %w", err)
		}
		r.Active = false
		return nil
	})
	if err != nil {
		log.Warn(ctx, "rental cancellation failed", log.Err("err", err))
		return nil, err
	}
	log.Info(ctx, "rental cancelled")
	return r, nil
}

// Rental use case finds the id rental, active or not.
func (uc *UseCase) Rental(ctx context.Context, id uuid.UUID) (r *model.Rental, err error) {
	err = uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		r, err = uc.rentalsrp.Conn(c).Get(ctx, id)
		return err
	})
	if err != nil {
		r = nil
	}
	return
}
