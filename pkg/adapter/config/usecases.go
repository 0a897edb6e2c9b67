// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"fmt"
	"time"

	"github.com/momeni/car-rental/pkg/core/repo"
	"github.com/momeni/car-rental/pkg/core/usecase/bookinguc"
	"github.com/momeni/car-rental/pkg/core/usecase/migrationuc"
)

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	Rentals Rentals // booking use cases related settings
}

func (u *Usecases) ValidateAndNormalize() error {
	if err := u.Rentals.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("rentals: %w", err)
	}
	return nil
}

// Rentals contains the configuration settings for the booking use
// cases.
type Rentals struct {
	// Timezone is the IANA name of the time zone which determines the
	// current date, so rentals which start before it are rejected.
	// A missing value is treated as UTC.
	Timezone string

	loc *time.Location
}

func (r *Rentals) ValidateAndNormalize() error {
	if r.Timezone == "" {
		r.Timezone = "UTC"
	}
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return fmt.Errorf("loading %q timezone: %w", r.Timezone, err)
	}
	r.loc = loc
	return nil
}

// Location returns the loaded Timezone. It is UTC before a successful
// call of the ValidateAndNormalize method.
func (r Rentals) Location() *time.Location {
	if r.loc == nil {
		return time.UTC
	}
	return r.loc
}

// NewBookingUseCase instantiates a new booking use case based on the
// settings in the c struct.
func (c *Config) NewBookingUseCase(
	p repo.Pool, r *repo.Repos,
) (*bookinguc.UseCase, error) {
	return bookinguc.New(
		p, r.Vehicles, r.Clients, r.Rentals,
		bookinguc.WithLocation(c.Usecases.Rentals.Location()),
	)
}

// NewInitDBUseCase instantiates a new database initialization use case.
func (c *Config) NewInitDBUseCase(
	p repo.Pool, r *repo.Repos,
) *migrationuc.InitDBUseCase {
	return migrationuc.NewInitDB(p, r)
}
