// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package clientsrp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/momeni/car-rental/pkg/adapter/db/postgres"
	"github.com/momeni/car-rental/pkg/core/cerr"
	"github.com/momeni/car-rental/pkg/core/model"
	"gorm.io/gorm/clause"
)

type gClient struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	FirstName string
	LastName  string
	Email     string
	Active    bool
}

func (gc *gClient) TableName() string {
	return "clients"
}

func (gc *gClient) toModel() *model.Client {
	return &model.Client{
		ID:        gc.ID,
		FirstName: gc.FirstName,
		LastName:  gc.LastName,
		Email:     gc.Email,
		Active:    gc.Active,
	}
}

func Get[Q postgres.Queryer](ctx context.Context, q Q, id uuid.UUID) (*model.Client, error) {
	var gc []gClient
	err := q.GORM(ctx).Where("id = ?", id).Find(&gc).Error
	return single(gc, err)
}

func Lock(ctx context.Context, tx *postgres.Tx, id uuid.UUID) (*model.Client, error) {
	var gc []gClient
	err := tx.GORM(ctx).Clauses(
		clause.Locking{Strength: "UPDATE"},
	).Where("id = ?", id).Find(&gc).Error
	return single(gc, err)
}

func single(gc []gClient, err error) (*model.Client, error) {
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	switch n := len(gc); n {
	case 0:
		return nil, cerr.NotFound(model.ErrClientNotFound)
	case 1:
		return gc[0].toModel(), nil
	default:
		return nil, fmt.Errorf("expected one row, but got %d", n)
	}
}

func EmailExists[Q postgres.Queryer](ctx context.Context, q Q, email string) (bool, error) {
	var n int64
	err := q.GORM(ctx).Model(&gClient{}).Where(
		"email = ?", email,
	).Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("query: %w", err)
	}
	return n > 0, nil
}

func Create(ctx context.Context, tx *postgres.Tx, c *model.Client) error {
	err := tx.GORM(ctx).Create(&gClient{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Active:    c.Active,
	}).Error
	if err != nil {
		return postgres.TranslateError(err, model.ErrEmailTaken, nil)
	}
	return nil
}

func Deactivate(ctx context.Context, tx *postgres.Tx, id uuid.UUID) error {
	gdb := tx.GORM(ctx).Model(&gClient{}).Where(
		"id = ?", id,
	).Update("active", false)
	if err := gdb.Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	if gdb.RowsAffected == 0 {
		return cerr.NotFound(model.ErrClientNotFound)
	}
	return nil
}
