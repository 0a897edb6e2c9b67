// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = model.NewDate(2024, time.June, 15)

func period(start, end int) model.Period {
	return model.Period{Start: today.AddDays(start), End: today.AddDays(end)}
}

func rental(start, end int, active bool) model.Rental {
	return model.Rental{
		ID:     uuid.New(),
		Period: period(start, end),
		Active: active,
	}
}

func TestPeriodValidate(t *testing.T) {
	assert.NoError(t, period(1, 2).Validate())
	err := period(0, 0).Validate()
	var pe model.PeriodError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, today, pe.Start)
	assert.Error(t, period(3, 2).Validate())
}

func TestPeriodOverlapsInclusively(t *testing.T) {
	cases := []struct {
		name     string
		a, b     model.Period
		overlaps bool
	}{
		{"disjoint", period(1, 3), period(5, 7), false},
		{"touching end to start", period(1, 3), period(3, 7), true},
		{"touching start to end", period(5, 7), period(1, 5), true},
		{"contained", period(1, 10), period(4, 6), true},
		{"identical", period(2, 4), period(2, 4), true},
		{"adjacent days", period(1, 3), period(4, 6), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, c.a.Overlaps(c.b))
			assert.Equal(t, c.overlaps, c.b.Overlaps(c.a))
		})
	}
}

func TestIsAvailable(t *testing.T) {
	booked := []model.Rental{rental(3, 7, true), rental(10, 12, false)}
	assert.False(t, model.IsAvailable(booked, period(4, 6)))
	assert.False(t, model.IsAvailable(booked, period(7, 9)))
	assert.True(t, model.IsAvailable(booked, period(8, 9)))
	assert.True(t, model.IsAvailable(booked, period(10, 12)), "cancelled")
	assert.True(t, model.IsAvailable(nil, period(0, 1)))

	booked[0].Active = false
	assert.True(t, model.IsAvailable(booked, period(4, 6)))
}

func TestHasActiveObligation(t *testing.T) {
	assert.False(t, model.HasActiveObligation(nil, today))
	assert.False(t, model.HasActiveObligation(
		[]model.Rental{rental(-9, -2, true)}, today,
	), "elapsed rentals do not block")
	assert.True(t, model.HasActiveObligation(
		[]model.Rental{rental(-9, 0, true)}, today,
	), "a rental which ends today is ongoing")
	assert.True(t, model.HasActiveObligation(
		[]model.Rental{rental(-9, -2, true), rental(5, 8, true)}, today,
	))
	assert.False(t, model.HasActiveObligation(
		[]model.Rental{rental(5, 8, false)}, today,
	), "cancelled rentals do not block")
}

func TestCharge(t *testing.T) {
	v := &model.Vehicle{DailyRate: decimal.NewFromInt(10)}
	assert.True(t, decimal.NewFromInt(100).Equal(model.Charge(v, period(1, 11))))

	v.DailyRate = decimal.RequireFromString("49.99")
	got := model.Charge(v, period(0, 3))
	assert.Equal(t, "149.97", got.StringFixed(2))
}

func TestVehicleSpecValidate(t *testing.T) {
	vs := model.VehicleSpec{
		ChassisNumber: "VIN123",
		Make:          "Toyota",
		Model:         "Corolla",
		DailyRate:     decimal.NewFromInt(40),
	}
	assert.NoError(t, vs.Validate())

	bad := vs
	bad.Make = "  "
	bad.DailyRate = decimal.Zero
	err := bad.Validate()
	assert.ErrorIs(t, err, model.ErrEmptyMake)
	assert.ErrorIs(t, err, model.ErrNonPositiveRate)
	assert.False(t, errors.Is(err, model.ErrEmptyModel))

	bad = vs
	bad.DailyRate = decimal.NewFromInt(-1)
	assert.ErrorIs(t, bad.Validate(), model.ErrNonPositiveRate)
}

func TestClientSpecValidate(t *testing.T) {
	cs := model.ClientSpec{
		FirstName: "Jane",
		LastName:  "Smith",
		Email:     "janesmith@example.com",
	}
	assert.NoError(t, cs.Validate())

	for _, email := range []string{
		"janesmith", "jane smith@example.com", "Jane <jane@example.com>",
	} {
		bad := cs
		bad.Email = email
		assert.Error(t, bad.Validate(), "email: %q", email)
	}

	bad := cs
	bad.FirstName, bad.Email = "", ""
	err := bad.Validate()
	assert.ErrorIs(t, err, model.ErrEmptyFirstName)
	assert.ErrorIs(t, err, model.ErrEmptyEmail)
}

func TestRentalSpecValidate(t *testing.T) {
	rs := model.RentalSpec{
		VehicleID: uuid.New(),
		ClientID:  uuid.New(),
		Period:    period(0, 1),
	}
	assert.NoError(t, rs.Validate(today))

	rs.Period = period(0, 0)
	var pe model.PeriodError
	assert.ErrorAs(t, rs.Validate(today), &pe)

	rs.Period = period(-1, 3)
	var spe model.StartInPastError
	require.ErrorAs(t, rs.Validate(today), &spe)
	assert.Equal(t, today, spe.Today)

	rs.Period = period(1, 3)
	rs.ClientID = uuid.Nil
	assert.Error(t, rs.Validate(today))
}
