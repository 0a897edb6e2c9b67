// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package migrationuc provides the database initialization use case.
// The InitDBUseCase recreates the storage schema (dropping all existing
// vehicles, clients, and rentals) and optionally fills it with sample
// rows which are suitable for a development environment.
package migrationuc

import (
	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/shopspring/decimal"
)

// devVehicles and devClients are paired by index. The i-th client
// rents the i-th vehicle during the i-th devPeriods entry, relative to
// the initialization date.
var (
	devVehicles = []model.VehicleSpec{
		{ChassisNumber: "VIN123", Make: "Toyota", Model: "Corolla", DailyRate: decimal.NewFromInt(40)},
		{ChassisNumber: "VIN456", Make: "Honda", Model: "Accord", DailyRate: decimal.NewFromInt(50)},
		{ChassisNumber: "VIN789", Make: "Ford", Model: "Mustang", DailyRate: decimal.NewFromInt(80)},
		{ChassisNumber: "VINABC", Make: "Chevrolet", Model: "Camaro", DailyRate: decimal.NewFromInt(75)},
		{ChassisNumber: "VINDEF", Make: "Tesla", Model: "Model 3", DailyRate: decimal.NewFromInt(100)},
	}
	devClients = []model.ClientSpec{
		{FirstName: "John", LastName: "Doe", Email: "johndoe@example.com"},
		{FirstName: "Jane", LastName: "Smith", Email: "janesmith@example.com"},
		{FirstName: "Bob", LastName: "Jones", Email: "bobjones@example.com"},
		{FirstName: "Alice", LastName: "Lee", Email: "alicelee@example.com"},
		{FirstName: "David", LastName: "Kim", Email: "davidkim@example.com"},
	}
	devPeriods = [][2]int{{1, 7}, {3, 10}, {5, 12}, {7, 14}, {9, 16}}
)
