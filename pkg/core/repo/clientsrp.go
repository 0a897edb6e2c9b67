// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/momeni/car-rental/pkg/core/model"
)

// Clients is the clients repository interface.
type Clients interface {
	Conn(Conn) ClientsConnQueryer
	Tx(Tx) ClientsTxQueryer
}

type ClientsConnQueryer interface {
	ClientsQueryer
}

type ClientsTxQueryer interface {
	ClientsQueryer

	// Lock finds the id client and locks its row until the end of the
	// current transaction.
	Lock(ctx context.Context, id uuid.UUID) (*model.Client, error)

	// Create persists c as a new client with a caller provided ID.
	Create(ctx context.Context, c *model.Client) error

	// Deactivate flags the id client as inactive.
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type ClientsQueryer interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Client, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
