// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package bookinguc

import (
	"errors"
	"time"
)

// Option is a functional option for the booking use case.
type Option func(uc *UseCase) error

// WithClock option configures a booking UseCase instance in order to
// read the current time from the now function. The current date is
// used for rejecting rentals which start in the past and for deciding
// if a rental is still ongoing. By default, time.Now is used.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) error {
		if now == nil {
			return errors.New("clock is nil")
		}
		if uc.now != nil {
			return errors.New("clock is already configured")
		}
		uc.now = now
		return nil
	}
}

// WithLocation option configures the time zone which is used in order
// to convert the current time to a calendar date. By default, UTC is
// used.
func WithLocation(loc *time.Location) Option {
	return func(uc *UseCase) error {
		if loc == nil {
			return errors.New("location is nil")
		}
		if uc.loc != nil {
			return errors.New("location is already configured")
		}
		uc.loc = loc
		return nil
	}
}
