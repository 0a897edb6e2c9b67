// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"
	"time"

	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOfStripsTimeOfDay(t *testing.T) {
	tehran := time.FixedZone("IRST", 3*3600+1800)
	late := time.Date(2024, time.May, 10, 23, 59, 59, 0, tehran)
	d := model.DateOf(late)
	assert.Equal(t, model.NewDate(2024, time.May, 10), d)
	assert.True(t, d.Equal(model.DateOf(late.Add(-23*time.Hour))))
	assert.Equal(t, "2024-05-10", d.String())
}

func TestDateArithmetic(t *testing.T) {
	d := model.NewDate(2024, time.December, 30)
	assert.Equal(t, model.NewDate(2025, time.January, 2), d.AddDays(3))
	assert.Equal(t, 3, d.DaysUntil(d.AddDays(3)))
	assert.Equal(t, -10, d.DaysUntil(d.AddDays(-10)))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.After(d.AddDays(-1)))
	assert.False(t, d.Before(d))
	assert.False(t, d.After(d))
}

func TestDaysUntilFarApartDates(t *testing.T) {
	start := model.NewDate(2024, time.June, 15)
	end := model.NewDate(2500, time.January, 1)
	assert.Equal(t, 173690, start.DaysUntil(end))
	assert.Equal(t, -173690, end.DaysUntil(start))
	assert.Equal(t, 1, model.NewDate(1, time.January, 1).DaysUntil(
		model.NewDate(1, time.January, 2),
	))
}

func TestParseDate(t *testing.T) {
	d, err := model.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, model.NewDate(2024, time.February, 29), d)

	for _, s := range []string{"", "2023-02-29", "2024/01/01", "2024-1-1"} {
		_, err = model.ParseDate(s)
		assert.Error(t, err, "parsing %q", s)
	}

	var u model.Date
	require.NoError(t, u.UnmarshalText([]byte("2030-07-01")))
	assert.Equal(t, model.NewDate(2030, time.July, 1), u)
	assert.Error(t, u.UnmarshalText([]byte("tomorrow")))
	assert.Equal(t, model.NewDate(2030, time.July, 1), u, "must be unchanged")
}
