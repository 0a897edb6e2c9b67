// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/momeni/car-rental/pkg/core/repo"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pool represents a PostgreSQL connections pool. It embeds a *gorm.DB
// which manages a *sql.DB pool internally.
type Pool struct {
	*gorm.DB
}

// NewPool opens a connections pool for the url database and tests it
// by acquiring one connection. The GORM logs are written through the
// default slog logger at the warning level.
func NewPool(ctx context.Context, url string) (*Pool, error) {
	gdb, err := gorm.Open(postgres.Open(url), &gorm.Config{
		Logger: NewLogger(slog.Default()),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open: %w", err)
	}
	pool := &Pool{DB: gdb}
	err = pool.Conn(ctx, NoOpConnHandler)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("testing connection: %w", err)
	}
	return pool, nil
}

// NewLogger creates a GORM logger which writes slow queries and errors
// using the l structured logger.
func NewLogger(l *slog.Logger) logger.Interface {
	return logger.New(
		slog.NewLogLogger(l.Handler(), slog.LevelWarn), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
			// Set to false in order to log with replaced vars
			ParameterizedQueries: true,
		},
	)
}

type ConnHandler = repo.ConnHandler

// NoOpConnHandler is a ConnHandler which does nothing. It may be
// used for testing the connectivity.
func NoOpConnHandler(context.Context, repo.Conn) error {
	return nil
}

// Conn acquires a dedicated connection from the pool and passes it to
// the f handler, releasing it after f returns.
func (p *Pool) Conn(ctx context.Context, f ConnHandler) error {
	return p.DB.WithContext(ctx).Connection(func(c *gorm.DB) error {
		cc := &Conn{DB: c}
		return f(ctx, cc)
	})
}

// Close closes the underlying *sql.DB pool.
func (p *Pool) Close() error {
	db, err := p.DB.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
