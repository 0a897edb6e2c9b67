// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ExamplePeriod_json() {
	p := model.Period{
		Start: model.NewDate(2024, time.February, 28),
		End:   model.NewDate(2024, time.March, 2),
	}
	b, err := json.Marshal(p)
	fmt.Println(err)
	fmt.Println(string(b))
	fmt.Println(p.Days())
	// Output:
	// <nil>
	// {"start_date":"2024-02-28","end_date":"2024-03-02"}
	// 3
}

func TestChargeOverCenturies(t *testing.T) {
	p := model.Period{
		Start: model.NewDate(2024, time.June, 15),
		End:   model.NewDate(2500, time.January, 1),
	}
	assert.Equal(t, 173690, p.Days())
	v := &model.Vehicle{DailyRate: decimal.NewFromInt(10)}
	got := model.Charge(v, p)
	assert.True(t, decimal.NewFromInt(1736900).Equal(got), "got %s", got)
}
