// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package rentalsrp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/car-rental/pkg/adapter/db/postgres"
	"github.com/momeni/car-rental/pkg/core/cerr"
	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// gRental is the GORM representation of a row of the rentals table.
// The start_date and end_date columns have the date type, so their
// time-of-day components are always zero.
type gRental struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	VehicleID uuid.UUID `gorm:"type:uuid"`
	ClientID  uuid.UUID `gorm:"type:uuid"`
	StartDate datatypes.Date
	EndDate   datatypes.Date
	Charge    decimal.Decimal `gorm:"type:numeric"`
	Active    bool
}

func (gr *gRental) TableName() string {
	return "rentals"
}

func (gr *gRental) toModel() model.Rental {
	return model.Rental{
		ID:        gr.ID,
		VehicleID: gr.VehicleID,
		ClientID:  gr.ClientID,
		Period: model.Period{
			Start: model.DateOf(time.Time(gr.StartDate)),
			End:   model.DateOf(time.Time(gr.EndDate)),
		},
		Charge: gr.Charge,
		Active: gr.Active,
	}
}

func fromModel(r *model.Rental) *gRental {
	return &gRental{
		ID:        r.ID,
		VehicleID: r.VehicleID,
		ClientID:  r.ClientID,
		StartDate: datatypes.Date(r.Start.Time()),
		EndDate:   datatypes.Date(r.End.Time()),
		Charge:    r.Charge,
		Active:    r.Active,
	}
}

func Get[Q postgres.Queryer](ctx context.Context, q Q, id uuid.UUID) (*model.Rental, error) {
	var gr []gRental
	err := q.GORM(ctx).Where("id = ?", id).Find(&gr).Error
	return single(gr, err)
}

func Lock(ctx context.Context, tx *postgres.Tx, id uuid.UUID) (*model.Rental, error) {
	var gr []gRental
	err := tx.GORM(ctx).Clauses(
		clause.Locking{Strength: "UPDATE"},
	).Where("id = ?", id).Find(&gr).Error
	return single(gr, err)
}

func single(gr []gRental, err error) (*model.Rental, error) {
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	switch n := len(gr); n {
	case 0:
		return nil, cerr.NotFound(model.ErrRentalNotFound)
	case 1:
		r := gr[0].toModel()
		return &r, nil
	default:
		return nil, fmt.Errorf("expected one row, but got %d", n)
	}
}

// ListByVehicle returns all rentals of the vehicleID vehicle, active
// or not, ordered by their start dates.
func ListByVehicle[Q postgres.Queryer](ctx context.Context, q Q, vehicleID uuid.UUID) ([]model.Rental, error) {
	return list(ctx, q, "vehicle_id = ?", vehicleID)
}

// ListByClient returns all rentals of the clientID client, active
// or not, ordered by their start dates.
func ListByClient[Q postgres.Queryer](ctx context.Context, q Q, clientID uuid.UUID) ([]model.Rental, error) {
	return list(ctx, q, "client_id = ?", clientID)
}

func list[Q postgres.Queryer](ctx context.Context, q Q, cond string, id uuid.UUID) ([]model.Rental, error) {
	var gr []gRental
	err := q.GORM(ctx).Where(cond, id).Order(
		"start_date, end_date",
	).Find(&gr).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	rentals := make([]model.Rental, 0, len(gr))
	for i := range gr {
		rentals = append(rentals, gr[i].toModel())
	}
	return rentals, nil
}

// Create inserts r into the rentals table. The exclusion constraint of
// the rentals table rejects r if it is active and overlaps with another
// active rental of the same vehicle.
func Create(ctx context.Context, tx *postgres.Tx, r *model.Rental) error {
	err := tx.GORM(ctx).Create(fromModel(r)).Error
	if err != nil {
		return postgres.TranslateError(
			err, nil, model.ErrVehicleUnavailable,
		)
	}
	return nil
}

func Cancel(ctx context.Context, tx *postgres.Tx, id uuid.UUID) error {
	gdb := tx.GORM(ctx).Model(&gRental{}).Where(
		"id = ?", id,
	).Update("active", false)
	if err := gdb.Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	if gdb.RowsAffected == 0 {
		return cerr.NotFound(model.ErrRentalNotFound)
	}
	return nil
}
