// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/momeni/car-rental/pkg/adapter/db/memory"
	"github.com/momeni/car-rental/pkg/core/cerr"
	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/momeni/car-rental/pkg/core/repo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVehicle(chassisNumber string) *model.Vehicle {
	return &model.Vehicle{
		ID:            uuid.New(),
		ChassisNumber: chassisNumber,
		Make:          "Toyota",
		Model:         "Corolla",
		DailyRate:     decimal.NewFromInt(40),
		Active:        true,
	}
}

func TestFailedTxIsRolledBack(t *testing.T) {
	ctx := context.Background()
	p := memory.NewPool()
	repos := memory.NewRepos()
	v := newVehicle("VIN123")
	boom := errors.New("boom")
	err := p.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			require.NoError(t, repos.Vehicles.Tx(tx).Create(ctx, v))
			return boom
		})
	})
	require.ErrorIs(t, err, boom)

	err = p.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		_, err := repos.Vehicles.Conn(c).Get(ctx, v.ID)
		return err
	})
	assert.Equal(t, cerr.KindNotFound, cerr.KindOf(err))
}

func TestCommittedTxIsVisible(t *testing.T) {
	ctx := context.Background()
	p := memory.NewPool()
	repos := memory.NewRepos()
	v := newVehicle("VIN123")
	err := p.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			return repos.Vehicles.Tx(tx).Create(ctx, v)
		})
	})
	require.NoError(t, err)

	err = p.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := repos.Vehicles.Conn(c)
		got, err := q.Get(ctx, v.ID)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		exists, err := q.ChassisNumberExists(ctx, "VIN123")
		require.NoError(t, err)
		assert.True(t, exists)
		_, err = c.Exec(ctx, "SELECT 1")
		assert.ErrorIs(t, err, errors.ErrUnsupported)
		return nil
	})
	require.NoError(t, err)
}

func TestRentalsRejectOverlapAndSortByStart(t *testing.T) {
	ctx := context.Background()
	p := memory.NewPool()
	repos := memory.NewRepos()
	v := newVehicle("VIN123")
	c := &model.Client{
		ID: uuid.New(), FirstName: "John", LastName: "Doe",
		Email: "johndoe@example.com", Active: true,
	}
	d := model.NewDate(2024, 6, 1)
	mk := func(start, end int) *model.Rental {
		return &model.Rental{
			ID: uuid.New(), VehicleID: v.ID, ClientID: c.ID,
			Period: model.Period{Start: d.AddDays(start), End: d.AddDays(end)},
			Active: true,
		}
	}
	late, early := mk(10, 12), mk(1, 3)
	err := p.Conn(ctx, func(ctx context.Context, cn repo.Conn) error {
		return cn.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			require.NoError(t, repos.Vehicles.Tx(tx).Create(ctx, v))
			require.NoError(t, repos.Clients.Tx(tx).Create(ctx, c))
			q := repos.Rentals.Tx(tx)
			require.NoError(t, q.Create(ctx, late))
			require.NoError(t, q.Create(ctx, early))
			err := q.Create(ctx, mk(3, 5))
			assert.Equal(t, cerr.KindRangeUnavailable, cerr.KindOf(err))
			require.NoError(t, q.Cancel(ctx, early.ID))
			return q.Create(ctx, mk(3, 5))
		})
	})
	require.NoError(t, err)

	err = p.Conn(ctx, func(ctx context.Context, cn repo.Conn) error {
		rentals, err := repos.Rentals.Conn(cn).ListByClient(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, rentals, 3)
		assert.Equal(t, early.ID, rentals[0].ID)
		assert.False(t, rentals[0].Active)
		assert.Equal(t, late.ID, rentals[2].ID)
		return nil
	})
	require.NoError(t, err)
}

func TestClosedPool(t *testing.T) {
	p := memory.NewPool()
	require.NoError(t, p.Close())
	err := p.Conn(context.Background(), func(context.Context, repo.Conn) error {
		return nil
	})
	assert.ErrorIs(t, err, memory.ErrClosed)
}
