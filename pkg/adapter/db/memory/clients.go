// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/momeni/car-rental/pkg/core/cerr"
	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/momeni/car-rental/pkg/core/repo"
)

// Clients is the memory clients repository.
type Clients struct{}

func (Clients) Conn(c repo.Conn) repo.ClientsConnQueryer {
	return clientsQueryer{c.(*Conn)}
}

func (Clients) Tx(tx repo.Tx) repo.ClientsTxQueryer {
	return clientsQueryer{tx.(*Tx)}
}

type clientsQueryer struct {
	storage
}

func (q clientsQueryer) Get(_ context.Context, id uuid.UUID) (c *model.Client, err error) {
	err = q.do(func(s *state) error {
		cc, ok := s.clients[id]
		if !ok {
			return cerr.NotFound(model.ErrClientNotFound)
		}
		c = &cc
		return nil
	})
	return
}

func (q clientsQueryer) Lock(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	return q.Get(ctx, id)
}

func (q clientsQueryer) EmailExists(_ context.Context, email string) (exists bool, err error) {
	err = q.do(func(s *state) error {
		for _, c := range s.clients {
			if c.Email == email {
				exists = true
				break
			}
		}
		return nil
	})
	return
}

func (q clientsQueryer) Create(_ context.Context, c *model.Client) error {
	return q.do(func(s *state) error {
		if _, ok := s.clients[c.ID]; ok {
			return cerr.AlreadyExists(errDuplicateID)
		}
		for _, cc := range s.clients {
			if cc.Email == c.Email {
				return cerr.AlreadyExists(model.ErrEmailTaken)
			}
		}
		s.clients[c.ID] = *c
		return nil
	})
}

func (q clientsQueryer) Deactivate(_ context.Context, id uuid.UUID) error {
	return q.do(func(s *state) error {
		c, ok := s.clients[id]
		if !ok {
			return cerr.NotFound(model.ErrClientNotFound)
		}
		c.Active = false
		s.clients[id] = c
		return nil
	})
}
