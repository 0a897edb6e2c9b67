// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package bookinguc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/momeni/car-rental/pkg/core/cerr"
	"github.com/momeni/car-rental/pkg/core/log"
	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/momeni/car-rental/pkg/core/repo"
)

// RegisterVehicle use case validates the vs vehicle attributes and
// creates an active vehicle with a new ID for it. The chassis number
// must not be registered before, even for a deactivated vehicle.
func (uc *UseCase) RegisterVehicle(
	ctx context.Context, vs model.VehicleSpec,
) (v *model.Vehicle, err error) {
	log.Debug(
		ctx, "registering vehicle",
		slog.String("chassis_number", vs.ChassisNumber),
	)
	if err = vs.Validate(); err != nil {
		log.Warn(ctx, "invalid vehicle", log.Err("err", err))
		return nil, cerr.InvalidInput(err)
	}
	err = uc.tx(ctx, func(ctx context.Context, tx repo.Tx) error {
		q := uc.vehiclesrp.Tx(tx)
		exists, err := q.ChassisNumberExists(ctx, vs.ChassisNumber)
		if err != nil {
			return fmt.Errorf("checking chassis number: %w", err)
		}
		if exists {
			return cerr.AlreadyExists(model.ErrChassisNumberTaken)
		}
		v = &model.Vehicle{
			ID:            uuid.New(),
			ChassisNumber: vs.ChassisNumber,
			Make:          vs.Make,
			Model:         vs.Model,
			DailyRate:     vs.DailyRate,
			Active:        true,
		}
		if err = q.Create(ctx, v); err != nil {
			return fmt.Errorf("creating vehicle: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Warn(
			ctx, "vehicle registration failed",
			slog.String("chassis_number", vs.ChassisNumber),
			log.Err("err", err),
		)
		return nil, err
	}
	log.Info(
		ctx, "vehicle registered",
		log.UUID("vehicle_id", v.ID),
		slog.String("chassis_number", v.ChassisNumber),
		log.Decimal("daily_rate", v.DailyRate),
	)
	return v, nil
}

// DeactivateVehicle use case flags the id vehicle as inactive, so it
// may not be rented anymore. Deactivation of an inactive vehicle has
// no effect. A vehicle which has an ongoing or upcoming active rental
// may not be deactivated. Such rentals must be cancelled first.
func (uc *UseCase) DeactivateVehicle(ctx context.Context, id uuid.UUID) error {
	ctx = log.With(ctx, log.UUID("vehicle_id", id))
	log.Debug(ctx, "deactivating vehicle")
	today := uc.Today()
	err := uc.tx(ctx, func(ctx context.Context, tx repo.Tx) error {
		q := uc.vehiclesrp.Tx(tx)
		v, err := q.Lock(ctx, id)
		if err != nil {
			return fmt.Errorf("locking vehicle: %w", err)
		}
		if !v.Active {
			log.Debug(ctx, "vehicle is already inactive")
			return nil
		}
		rentals, err := uc.rentalsrp.Tx(tx).ListByVehicle(ctx, id)
		if err != nil {
			return fmt.Errorf("listing vehicle rentals: %w", err)
		}
		if model.HasActiveObligation(rentals, today) {
			return cerr.HasActiveObligation(model.ErrVehicleInUse)
		}
		if err = q.Deactivate(ctx, id); err != nil {
			return fmt.Errorf("deactivating vehicle: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Warn(ctx, "vehicle deactivation failed", log.Err("err", err))
		return err
	}
	log.Info(ctx, "vehicle deactivated")
	return nil
}

// Vehicle use case finds the id vehicle, active or not.
func (uc *UseCase) Vehicle(ctx context.Context, id uuid.UUID) (v *model.Vehicle, err error) {
	err = uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		v, err = uc.vehiclesrp.Conn(c).Get(ctx, id)
		return err
	})
	if err != nil {
		v = nil
	}
	return
}

// VehicleRentals use case lists all rentals of the id vehicle,
// including the cancelled ones, ordered by their start dates.
func (uc *UseCase) VehicleRentals(
	ctx context.Context, id uuid.UUID,
) (rentals []model.Rental, err error) {
	err = uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		if _, err := uc.vehiclesrp.Conn(c).Get(ctx, id); err != nil {
			return err
		}
		rentals, err = uc.rentalsrp.Conn(c).ListByVehicle(ctx, id)
		return err
	})
	if err != nil {
		rentals = nil
	}
	return
}
