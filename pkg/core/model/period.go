// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "fmt"

// Period is a closed interval of calendar dates. Both of the Start and
// End dates belong to the period. A valid period has Start < End, so
// it contains at least two calendar dates and is billed for at least
// one day.
type Period struct {
	Start Date `json:"start_date"`
	End   Date `json:"end_date"`
}

// PeriodError indicates that a period does not satisfy the Start < End
// invariant. It keeps both dates, so the caller may report them.
type PeriodError struct {
	Start, End Date
}

// Error implements the error interface.
func (e PeriodError) Error() string {
	return fmt.Sprintf(
		"end date (%s) must be after the start date (%s)", e.End, e.Start,
	)
}

// Validate returns a PeriodError if p.Start is not strictly before
// the p.End date.
func (p Period) Validate() error {
	if !p.Start.Before(p.End) {
		return PeriodError{Start: p.Start, End: p.End}
	}
	return nil
}

// Overlaps reports whether p and other share at least one calendar
// date. Since both periods are closed, a period which ends on some day
// overlaps with another period which starts on the same day.
func (p Period) Overlaps(other Period) bool {
	return !p.Start.After(other.End) && !other.Start.After(p.End)
}

// Days returns the number of whole days between p.Start and p.End.
// For a valid period, it is a positive number.
func (p Period) Days() int {
	return p.Start.DaysUntil(p.End)
}
