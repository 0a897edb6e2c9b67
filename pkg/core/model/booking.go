// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "github.com/shopspring/decimal"

// IsAvailable reports whether a vehicle with the given rentals may be
// booked for the p period. It is unavailable if and only if one of its
// active rentals overlaps with p. Cancelled rentals are ignored.
func IsAvailable(rentals []Rental, p Period) bool {
	for _, r := range rentals {
		if r.Active && r.Period.Overlaps(p) {
			return false
		}
	}
	return true
}

// HasActiveObligation reports whether an entity with the given rentals
// is still obliged to one of them, so it may not be deactivated.
// A rental creates an obligation while it is active and its end date
// is not before today. An active rental which has already ended does
// not block the deactivation.
func HasActiveObligation(rentals []Rental, today Date) bool {
	for _, r := range rentals {
		if r.Active && !r.End.Before(today) {
			return true
		}
	}
	return false
}

// Charge computes the price of renting v vehicle during the p period.
// Each whole day between p.Start and p.End is billed by the v.DailyRate
// amount. The p period must be validated beforehand.
func Charge(v *Vehicle, p Period) decimal.Decimal {
	return v.DailyRate.Mul(decimal.NewFromInt(int64(p.Days())))
}
