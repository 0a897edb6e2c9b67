// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package bookinguc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/momeni/car-rental/pkg/core/cerr"
	"github.com/momeni/car-rental/pkg/core/log"
	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/momeni/car-rental/pkg/core/repo"
)

// RegisterClient use case validates the cs client attributes and
// creates an active client with a new ID for it. The email must not
// be registered before, even for a deactivated client.
func (uc *UseCase) RegisterClient(
	ctx context.Context, cs model.ClientSpec,
) (c *model.Client, err error) {
	log.Debug(ctx, "registering client", slog.String("email", cs.Email))
	if err = cs.Validate(); err != nil {
		log.Warn(ctx, "invalid client", log.Err("err", err))
		return nil, cerr.InvalidInput(err)
	}
	err = uc.tx(ctx, func(ctx context.Context, tx repo.Tx) error {
		q := uc.clientsrp.Tx(tx)
		exists, err := q.EmailExists(ctx, cs.Email)
		if err != nil {
			return fmt.Errorf("checking email: %w", err)
		}
		if exists {
			return cerr.AlreadyExists(model.ErrEmailTaken)
		}
		c = &model.Client{
			ID:        uuid.New(),
			FirstName: cs.FirstName,
			LastName:  cs.LastName,
			Email:     cs.Email,
			Active:    true,
		}
		if err = q.Create(ctx, c); err != nil {
			return fmt.Errorf("creating client: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Warn(
			ctx, "client registration failed",
			slog.String("email", cs.Email), log.Err("err", err),
		)
		return nil, err
	}
	log.Info(ctx, "client registered", log.UUID("client_id", c.ID))
	return c, nil
}

// DeactivateClient use case flags the id client as inactive, so they
// may not rent vehicles anymore. Deactivation of an inactive client
// has no effect. A client who has an ongoing or upcoming active rental
// may not be deactivated.
func (uc *UseCase) DeactivateClient(ctx context.Context, id uuid.UUID) error {
	ctx = log.With(ctx, log.UUID("client_id", id))
	log.Debug(ctx, "deactivating client")
	today := uc.Today()
	err := uc.tx(ctx, func(ctx context.Context, tx repo.Tx) error {
		q := uc.clientsrp.Tx(tx)
		c, err := q.Lock(ctx, id)
		if err != nil {
			return fmt.Errorf("locking client: %w", err)
		}
		if !c.Active {
			return nil
		}
		rentals, err := uc.rentalsrp.Tx(tx).ListByClient(ctx, id)
		if err != nil {
			return fmt.Errorf("listing client rentals: %w", err)
		}
		if model.HasActiveObligation(rentals, today) {
			return cerr.HasActiveObligation(model.ErrClientHasActiveRental)
		}
		if err = q.Deactivate(ctx, id); err != nil {
			return fmt.Errorf("deactivating client: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Warn(ctx, "client deactivation failed", log.Err("err", err))
		return err
	}
	log.Info(ctx, "client deactivated")
	return nil
}

// Client use case finds the id client, active or not.
func (uc *UseCase) Client(ctx context.Context, id uuid.UUID) (c *model.Client, err error) {
	err = uc.pool.Conn(ctx, func(ctx context.Context, cn repo.Conn) error {
		c, err = uc.clientsrp.Conn(cn).Get(ctx, id)
		return err
	})
	if err != nil {
		c = nil
	}
	return
}

// ClientRentals use case lists all rentals of the id client,
// including the cancelled ones, ordered by their start dates.
func (uc *UseCase) ClientRentals(
	ctx context.Context, id uuid.UUID,
) (rentals []model.Rental, err error) {
	err = uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		if _, err := uc.clientsrp.Conn(c).Get(ctx, id); err != nil {
			return err
		}
		rentals, err = uc.rentalsrp.Conn(c).ListByClient(ctx, id)
		return err
	})
	if err != nil {
		rentals = nil
	}
	return
}
