// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migrationuc_test

import (
	"context"
	"testing"
	"time"

	"github.com/momeni/car-rental/pkg/adapter/db/memory"
	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/momeni/car-rental/pkg/core/repo"
	"github.com/momeni/car-rental/pkg/core/usecase/migrationuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDevThenInitProd(t *testing.T) {
	ctx := context.Background()
	p := memory.NewPool()
	repos := memory.NewRepos()
	iduc := migrationuc.NewInitDB(p, repos)
	today := model.NewDate(2024, time.March, 1)

	ok, err := iduc.Initialized(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, iduc.InitDev(ctx, today))
	err = p.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		exists, err := repos.Vehicles.Conn(c).ChassisNumberExists(ctx, "VINDEF")
		require.NoError(t, err)
		assert.True(t, exists)
		exists, err = repos.Clients.Conn(c).EmailExists(ctx, "alicelee@example.com")
		require.NoError(t, err)
		assert.True(t, exists)
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, iduc.InitDev(ctx, today), "InitDev is repeatable")
	require.NoError(t, iduc.InitProd(ctx))
	err = p.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		exists, err := repos.Vehicles.Conn(c).ChassisNumberExists(ctx, "VIN123")
		require.NoError(t, err)
		assert.False(t, exists)
		return nil
	})
	require.NoError(t, err)
}
