// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rental reserves the VehicleID vehicle for the ClientID client during
// the Period closed interval. The Charge is computed once at creation
// time, based on the vehicle daily rate at that time, and is never
// recomputed. A cancelled rental has Active == false and does not
// block the vehicle anymore.
type Rental struct {
	ID        uuid.UUID `json:"id"`
	VehicleID uuid.UUID `json:"vehicle_id"`
	ClientID  uuid.UUID `json:"client_id"`
	Period
	Charge decimal.Decimal `json:"charge"`
	Active bool            `json:"active"`
}

// RentalSpec contains the caller provided fields which are required
// for booking a new rental.
type RentalSpec struct {
	VehicleID uuid.UUID
	ClientID  uuid.UUID
	Period
}

// ErrRentalNotFound indicates that no rental has the queried ID.
var ErrRentalNotFound = errors.New("rental not found")

// ErrVehicleUnavailable indicates that the requested period overlaps
// with an active rental of the same vehicle.
var ErrVehicleUnavailable = errors.New(
	"vehicle is not available in the requested period",
)

// StartInPastError indicates that a rental was requested to start
// before the current date.
type StartInPastError struct {
	Start, Today Date
}

// Error implements the error interface.
func (e StartInPastError) Error() string {
	return fmt.Sprintf(
		"start date (%s) is before today (%s)", e.Start, e.Today,
	)
}

// Validate checks the rs.Period invariant and ensures that it does not
// start before the today date. Both of the VehicleID and ClientID must
// be non-nil UUIDs too.
func (rs RentalSpec) Validate(today Date) error {
	var errs []error
	if rs.VehicleID == uuid.Nil {
		errs = append(errs, errors.New("vehicle id is missing"))
	}
	if rs.ClientID == uuid.Nil {
		errs = append(errs, errors.New("client id is missing"))
	}
	if err := rs.Period.Validate(); err != nil {
		errs = append(errs, err)
	}
	if rs.Start.Before(today) {
		errs = append(errs, StartInPastError{Start: rs.Start, Today: today})
	}
	return errors.Join(errs...)
}
