// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package memory implements the repo interfaces by keeping all rows
// in the process memory. It is useful for tests and for running the
// web server without a database. Nothing is persisted after exit.
//
// Transactions are serialized by one mutex and run on a private copy
// of the stored rows. The copy replaces the shared state only if the
// transaction handler succeeds, so a failed use case has no effect.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/momeni/car-rental/pkg/core/repo"
)

// ErrClosed is returned when a closed Pool is used.
var ErrClosed = errors.New("memory pool is closed")

// ErrRawSQL is returned by Exec and Query methods since there is no
// SQL engine behind this package.
var ErrRawSQL = fmt.Errorf("raw sql statements: %w", errors.ErrUnsupported)

type state struct {
	vehicles map[uuid.UUID]model.Vehicle
	clients  map[uuid.UUID]model.Client
	rentals  map[uuid.UUID]model.Rental
}

func newState() *state {
	return &state{
		vehicles: make(map[uuid.UUID]model.Vehicle),
		clients:  make(map[uuid.UUID]model.Client),
		rentals:  make(map[uuid.UUID]model.Rental),
	}
}

func (s *state) clone() *state {
	c := &state{
		vehicles: make(map[uuid.UUID]model.Vehicle, len(s.vehicles)),
		clients:  make(map[uuid.UUID]model.Client, len(s.clients)),
		rentals:  make(map[uuid.UUID]model.Rental, len(s.rentals)),
	}
	for k, v := range s.vehicles {
		c.vehicles[k] = v
	}
	for k, v := range s.clients {
		c.clients[k] = v
	}
	for k, v := range s.rentals {
		c.rentals[k] = v
	}
	return c
}

// Pool keeps the committed state and implements the repo.Pool
// interface. It is safe to be used concurrently.
type Pool struct {
	mu     sync.Mutex
	state  *state
	closed bool
}

// NewPool instantiates an empty Pool.
func NewPool() *Pool {
	return &Pool{state: newState()}
}

// NewRepos instantiates all repositories which may be guided by
// a memory Pool.
func NewRepos() *repo.Repos {
	return &repo.Repos{
		Vehicles: Vehicles{},
		Clients:  Clients{},
		Rentals:  Rentals{},
		Schema:   Schema{},
	}
}

// Conn passes a new Conn to the f handler.
func (p *Pool) Conn(ctx context.Context, f repo.ConnHandler) error {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return f(ctx, &Conn{pool: p})
}

// Close marks p as closed. The stored rows are dropped.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.state = newState()
	return nil
}

// storage gives the queryers a uniform access to the rows, whether
// they are bound to a Conn or a Tx.
type storage interface {
	do(f func(s *state) error) error
}

// Conn implements the repo.Conn interface. Each operation which is
// run on a Conn observes and changes the committed state atomically.
type Conn struct {
	pool *Pool
}

func (c *Conn) do(f func(s *state) error) error {
	c.pool.mu.Lock()
	defer c.pool.mu.Unlock()
	return f(c.pool.state)
}

// Tx runs the f handler in a new transaction. Other transactions are
// blocked until this one commits or rolls back.
func (c *Conn) Tx(ctx context.Context, f repo.TxHandler) (err error) {
	c.pool.mu.Lock()
	defer c.pool.mu.Unlock()
	if c.pool.closed {
		return ErrClosed
	}
	tx := &Tx{state: c.pool.state.clone()}
	defer func() {
		tx.state = nil
		if r := recover(); r != nil {
			err = fmt.Errorf("panicked: %v", r)
		}
	}()
	if err = f(ctx, tx); err != nil {
		return fmt.Errorf("handler: %w", err)
	}
	if err = ctx.Err(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	c.pool.state = tx.state
	return nil
}

func (c *Conn) Exec(context.Context, string, ...any) (int64, error) {
	return 0, ErrRawSQL
}

func (c *Conn) Query(context.Context, string, ...any) (repo.Rows, error) {
	return nil, ErrRawSQL
}

func (c *Conn) IsConn() {
}

// Tx implements the repo.Tx interface. It may not be used after its
// handler returns.
type Tx struct {
	state *state
}

func (tx *Tx) do(f func(s *state) error) error {
	if tx.state == nil {
		return errors.New("transaction is already finished")
	}
	return f(tx.state)
}

func (tx *Tx) Exec(context.Context, string, ...any) (int64, error) {
	return 0, ErrRawSQL
}

func (tx *Tx) Query(context.Context, string, ...any) (repo.Rows, error) {
	return nil, ErrRawSQL
}

func (tx *Tx) IsTx() {
}
