// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"time"
)

// DateLayout is the textual representation of a Date, as accepted by
// the ParseDate function and produced by the Date.String method.
const DateLayout = "2006-01-02"

// Date represents a calendar date without any time-of-day component.
// It is kept as a UTC midnight time.Time internally, so two Date
// instances which refer to the same day are equal using the == operator
// and their difference is always a whole number of days.
// The zero value is the January 1 of year 1.
type Date struct {
	t time.Time
}

// NewDate returns the Date which is identified by the given year,
// month, and day. Out of range values are normalized like time.Date,
// so NewDate(2024, 1, 32) is the same as NewDate(2024, 2, 1).
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf strips the time-of-day of t and returns its calendar date
// as observed in the t location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses s using the DateLayout layout.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing %q as a date: %w", s, err)
	}
	return DateOf(t), nil
}

// Time returns the UTC midnight of d date.
func (d Date) Time() time.Time {
	return d.t
}

// AddDays returns the date which is n days after d. Negative n values
// move backward.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns the number of whole days from d to other. It is
// negative if other is before d. Both dates are UTC midnights, so the
// difference of their Unix seconds is an exact multiple of a day and
// does not saturate like time.Duration for far apart dates.
func (d Date) DaysUntil(other Date) int {
	return int((other.t.Unix() - d.t.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal reports whether d and other represent the same calendar date.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Compare returns -1 if d is before other, +1 if d is after other,
// and 0 if they are the same date.
func (d Date) Compare(other Date) int {
	return d.t.Compare(other.t)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// String formats d using the DateLayout layout.
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// MarshalText implements the encoding.TextMarshaler interface, so
// a Date is serialized as "YYYY-MM-DD" in JSON and YAML documents.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// In case of errors, d will be left unchanged.
func (d *Date) UnmarshalText(text []byte) error {
	v, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
