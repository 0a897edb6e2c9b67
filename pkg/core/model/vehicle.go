// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Vehicle models a rentable car. Its ChassisNumber is unique among all
// vehicles, including the deactivated ones, and is never reused.
// A deactivated vehicle (Active == false) cannot be rented anymore,
// but its rentals are kept for the history. There is no way to
// reactivate a vehicle.
type Vehicle struct {
	ID            uuid.UUID       `json:"id"`
	ChassisNumber string          `json:"chassis_number"`
	Make          string          `json:"make"`
	Model         string          `json:"model"`
	DailyRate     decimal.Decimal `json:"daily_rate"` // price per day
	Active        bool            `json:"active"`
}

// VehicleSpec contains the caller provided fields which are required
// for registration of a new vehicle.
type VehicleSpec struct {
	ChassisNumber string
	Make          string
	Model         string
	DailyRate     decimal.Decimal
}

// These errors describe why a VehicleSpec is invalid.
var (
	ErrEmptyChassisNumber = errors.New("chassis number is empty")
	ErrEmptyMake          = errors.New("make is empty")
	ErrEmptyModel         = errors.New("model is empty")
	ErrNonPositiveRate    = errors.New("daily rate is not positive")
)

// ErrVehicleNotFound indicates that no vehicle has the queried ID.
var ErrVehicleNotFound = errors.New("vehicle not found")

// ErrVehicleInactive indicates that a deactivated vehicle was asked
// to take part in a new rental.
var ErrVehicleInactive = errors.New("vehicle is inactive")

// ErrChassisNumberTaken indicates that another vehicle (active or not)
// is already registered with the same chassis number.
var ErrChassisNumberTaken = errors.New("chassis number is already registered")

// ErrVehicleInUse indicates that a vehicle may not be deactivated
// because it has an active rental which has not ended yet.
var ErrVehicleInUse = errors.New("vehicle has ongoing or upcoming rentals")

// Validate checks that all fields of vs are filled and its daily rate
// is positive. All violations are joined in the returned error.
func (vs VehicleSpec) Validate() error {
	var errs []error
	if strings.TrimSpace(vs.ChassisNumber) == "" {
		errs = append(errs, ErrEmptyChassisNumber)
	}
	if strings.TrimSpace(vs.Make) == "" {
		errs = append(errs, ErrEmptyMake)
	}
	if strings.TrimSpace(vs.Model) == "" {
		errs = append(errs, ErrEmptyModel)
	}
	if !vs.DailyRate.IsPositive() {
		errs = append(errs, ErrNonPositiveRate)
	}
	return errors.Join(errs...)
}
