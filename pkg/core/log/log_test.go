// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/momeni/car-rental/pkg/core/log"
	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, nil)))
	defer slog.SetDefault(prev)

	id := uuid.MustParse("5b0c1f7e-7a4e-4d53-9a57-1f3c2f9d2b11")
	ctx := log.With(context.Background(), log.UUID("rental_id", id))
	ctx = log.With(ctx, log.Date("start_date", model.NewDate(2024, 6, 15)))
	log.Info(ctx, "rental cancelled", log.Decimal("charge", decimal.RequireFromString("100.50")))
	log.Debug(ctx, "filtered out")

	rec := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "rental cancelled", rec["msg"])
	assert.Equal(t, id.String(), rec["rental_id"])
	assert.Equal(t, "2024-06-15", rec["start_date"])
	assert.Equal(t, "100.5", rec["charge"])
}
