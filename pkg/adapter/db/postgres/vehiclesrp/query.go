// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package vehiclesrp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/momeni/car-rental/pkg/adapter/db/postgres"
	"github.com/momeni/car-rental/pkg/core/cerr"
	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"
)

// gVehicle is the GORM representation of a row of the vehicles table.
type gVehicle struct {
	ID            uuid.UUID `gorm:"primaryKey;type:uuid"`
	ChassisNumber string
	Make          string
	Model         string
	DailyRate     decimal.Decimal `gorm:"type:numeric"`
	Active        bool
}

func (gv *gVehicle) TableName() string {
	return "vehicles"
}

func (gv *gVehicle) toModel() *model.Vehicle {
	return &model.Vehicle{
		ID:            gv.ID,
		ChassisNumber: gv.ChassisNumber,
		Make:          gv.Make,
		Model:         gv.Model,
		DailyRate:     gv.DailyRate,
		Active:        gv.Active,
	}
}

func fromModel(v *model.Vehicle) *gVehicle {
	return &gVehicle{
		ID:            v.ID,
		ChassisNumber: v.ChassisNumber,
		Make:          v.Make,
		Model:         v.Model,
		DailyRate:     v.DailyRate,
		Active:        v.Active,
	}
}

func Get[Q postgres.Queryer](ctx context.Context, q Q, id uuid.UUID) (*model.Vehicle, error) {
	var gv []gVehicle
	err := q.GORM(ctx).Where("id = ?", id).Find(&gv).Error
	return single(gv, err)
}

// Lock finds the id vehicle like Get, but also locks its row for
// update until the end of the current transaction.
func Lock(ctx context.Context, tx *postgres.Tx, id uuid.UUID) (*model.Vehicle, error) {
	var gv []gVehicle
	err := tx.GORM(ctx).Clauses(
		clause.Locking{Strength: "UPDATE"},
	).Where("id = ?", id).Find(&gv).Error
	return single(gv, err)
}

func single(gv []gVehicle, err error) (*model.Vehicle, error) {
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	switch n := len(gv); n {
	case 0:
		return nil, cerr.NotFound(model.ErrVehicleNotFound)
	case 1:
		return gv[0].toModel(), nil
	default:
		return nil, fmt.Errorf("expected one row, but got %d", n)
	}
}

func ChassisNumberExists[Q postgres.Queryer](ctx context.Context, q Q, chassisNumber string) (bool, error) {
	var n int64
	err := q.GORM(ctx).Model(&gVehicle{}).Where(
		"chassis_number = ?", chassisNumber,
	).Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("query: %w", err)
	}
	return n > 0, nil
}

func Create(ctx context.Context, tx *postgres.Tx, v *model.Vehicle) error {
	err := tx.GORM(ctx).Create(fromModel(v)).Error
	if err != nil {
		return postgres.TranslateError(err, model.ErrChassisNumberTaken, nil)
	}
	return nil
}

func Deactivate(ctx context.Context, tx *postgres.Tx, id uuid.UUID) error {
	gdb := tx.GORM(ctx).Model(&gVehicle{}).Where(
		"id = ?", id,
	).Update("active", false)
	if err := gdb.Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	if gdb.RowsAffected == 0 {
		return cerr.NotFound(model.ErrVehicleNotFound)
	}
	return nil
}
