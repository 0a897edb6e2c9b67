// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migrationuc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/momeni/car-rental/pkg/core/log"
	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/momeni/car-rental/pkg/core/repo"
)

// InitDBUseCase represents the database initialization use case. It may
// be used to initialize database with development or production
// suitable data as asked by the InitDev and InitProd methods.
type InitDBUseCase struct {
	pool  repo.Pool
	repos *repo.Repos
}

// NewInitDB creates an InitDBUseCase instance which uses the p pool
// in order to guide the given repositories.
func NewInitDB(p repo.Pool, r *repo.Repos) *InitDBUseCase {
	return &InitDBUseCase{pool: p, repos: r}
}

// InitProd drops all tables (if they exist) and creates them again
// in a single transaction. No rows are inserted, so a production
// deployment starts with an empty fleet.
func (iduc *InitDBUseCase) InitProd(ctx context.Context) error {
	return iduc.initDB(ctx, func(context.Context, repo.Tx) error {
		return nil
	})
}

// InitDev drops all tables (if they exist) and creates them again,
// filling them with a few sample vehicles, clients, and rentals.
// Rentals are placed in the days after the today date, so they
// are all upcoming.
func (iduc *InitDBUseCase) InitDev(ctx context.Context, today model.Date) error {
	return iduc.initDB(ctx, func(ctx context.Context, tx repo.Tx) error {
		return iduc.fillDevData(ctx, tx, today)
	})
}

// Initialized reports whether the schema has been initialized before,
// so other use cases may run.
func (iduc *InitDBUseCase) Initialized(ctx context.Context) (ok bool, err error) {
	err = iduc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		ok, err = iduc.repos.Schema.Conn(c).Initialized(ctx)
		return err
	})
	return
}

func (iduc *InitDBUseCase) initDB(
	ctx context.Context,
	fill func(ctx context.Context, tx repo.Tx) error,
) error {
	err := iduc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			if err := iduc.repos.Schema.Tx(tx).Recreate(ctx); err != nil {
				return fmt.Errorf("recreating schema: %w", err)
			}
			if err := fill(ctx, tx); err != nil {
				return fmt.Errorf("filling tables: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	return nil
}

func (iduc *InitDBUseCase) fillDevData(
	ctx context.Context, tx repo.Tx, today model.Date,
) error {
	vq := iduc.repos.Vehicles.Tx(tx)
	cq := iduc.repos.Clients.Tx(tx)
	rq := iduc.repos.Rentals.Tx(tx)
	for i, vs := range devVehicles {
		v := &model.Vehicle{
			ID:            uuid.New(),
			ChassisNumber: vs.ChassisNumber,
			Make:          vs.Make,
			Model:         vs.Model,
			DailyRate:     vs.DailyRate,
			Active:        true,
		}
		if err := vq.Create(ctx, v); err != nil {
			return fmt.Errorf("creating vehicle %q: %w", vs.ChassisNumber, err)
		}
		cs := devClients[i]
		c := &model.Client{
			ID:        uuid.New(),
			FirstName: cs.FirstName,
			LastName:  cs.LastName,
			Email:     cs.Email,
			Active:    true,
		}
		if err := cq.Create(ctx, c); err != nil {
			return fmt.Errorf("creating client %q: %w", cs.Email, err)
		}
		p := model.Period{
			Start: today.AddDays(devPeriods[i][0]),
			End:   today.AddDays(devPeriods[i][1]),
		}
		r := &model.Rental{
			ID:        uuid.New(),
			VehicleID: v.ID,
			ClientID:  c.ID,
			Period:    p,
			Charge:    model.Charge(v, p),
			Active:    true,
		}
		if err := rq.Create(ctx, r); err != nil {
			return fmt.Errorf("creating rental #%d: %w", i, err)
		}
	}
	log.Info(
		ctx, "development data are inserted",
		slog.Int("vehicles", len(devVehicles)),
		slog.Int("clients", len(devClients)),
		slog.Int("rentals", len(devPeriods)),
	)
	return nil
}
