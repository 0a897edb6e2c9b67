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

// Vehicles is the memory vehicles repository.
type Vehicles struct{}

func (Vehicles) Conn(c repo.Conn) repo.VehiclesConnQueryer {
	return vehiclesQueryer{c.(*Conn)}
}

func (Vehicles) Tx(tx repo.Tx) repo.VehiclesTxQueryer {
	return vehiclesQueryer{tx.(*Tx)}
}

type vehiclesQueryer struct {
	storage
}

func (q vehiclesQueryer) Get(_ context.Context, id uuid.UUID) (v *model.Vehicle, err error) {
	err = q.do(func(s *state) error {
		vv, ok := s.vehicles[id]
		if !ok {
			return cerr.NotFound(model.ErrVehicleNotFound)
		}
		v = &vv
		return nil
	})
	return
}

func (q vehiclesQueryer) Lock(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	return q.Get(ctx, id)
}

func (q vehiclesQueryer) ChassisNumberExists(_ context.Context, chassisNumber string) (exists bool, err error) {
	err = q.do(func(s *state) error {
		for _, v := range s.vehicles {
			if v.ChassisNumber == chassisNumber {
				exists = true
				break
			}
		}
		return nil
	})
	return
}

func (q vehiclesQueryer) Create(_ context.Context, v *model.Vehicle) error {
	return q.do(func(s *state) error {
		if _, ok := s.vehicles[v.ID]; ok {
			return cerr.AlreadyExists(errDuplicateID)
		}
		for _, vv := range s.vehicles {
			if vv.ChassisNumber == v.ChassisNumber {
				return cerr.AlreadyExists(model.ErrChassisNumberTaken)
			}
		}
		s.vehicles[v.ID] = *v
		return nil
	})
}

func (q vehiclesQueryer) Deactivate(_ context.Context, id uuid.UUID) error {
	return q.do(func(s *state) error {
		v, ok := s.vehicles[id]
		if !ok {
			return cerr.NotFound(model.ErrVehicleNotFound)
		}
		v.Active = false
		s.vehicles[id] = v
		return nil
	})
}
