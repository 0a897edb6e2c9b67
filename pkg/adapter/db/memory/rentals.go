// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/momeni/car-rental/pkg/core/cerr"
	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/momeni/car-rental/pkg/core/repo"
)

var errDuplicateID = errors.New("id is already taken")

// Rentals is the memory rentals repository. Like the PostgreSQL
// exclusion constraint, its Create method rejects a rental which
// overlaps with another active rental of the same vehicle.
type Rentals struct{}

func (Rentals) Conn(c repo.Conn) repo.RentalsConnQueryer {
	return rentalsQueryer{c.(*Conn)}
}

func (Rentals) Tx(tx repo.Tx) repo.RentalsTxQueryer {
	return rentalsQueryer{tx.(*Tx)}
}

type rentalsQueryer struct {
	storage
}

func (q rentalsQueryer) Get(_ context.Context, id uuid.UUID) (r *model.Rental, err error) {
	err = q.do(func(s *state) error {
		rr, ok := s.rentals[id]
		if !ok {
			return cerr.NotFound(model.ErrRentalNotFound)
		}
		r = &rr
		return nil
	})
	return
}

func (q rentalsQueryer) Lock(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	return q.Get(ctx, id)
}

func (q rentalsQueryer) ListByVehicle(_ context.Context, vehicleID uuid.UUID) (rentals []model.Rental, err error) {
	err = q.do(func(s *state) error {
		rentals = filterRentals(s, func(r *model.Rental) bool {
			return r.VehicleID == vehicleID
		})
		return nil
	})
	return
}

func (q rentalsQueryer) ListByClient(_ context.Context, clientID uuid.UUID) (rentals []model.Rental, err error) {
	err = q.do(func(s *state) error {
		rentals = filterRentals(s, func(r *model.Rental) bool {
			return r.ClientID == clientID
		})
		return nil
	})
	return
}

func filterRentals(s *state, keep func(r *model.Rental) bool) []model.Rental {
	rentals := make([]model.Rental, 0)
	for _, r := range s.rentals {
		if keep(&r) {
			rentals = append(rentals, r)
		}
	}
	slices.SortFunc(rentals, func(a, b model.Rental) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		return a.End.Compare(b.End)
	})
	return rentals
}

func (q rentalsQueryer) Create(_ context.Context, r *model.Rental) error {
	return q.do(func(s *state) error {
		if _, ok := s.rentals[r.ID]; ok {
			return cerr.AlreadyExists(errDuplicateID)
		}
		if _, ok := s.vehicles[r.VehicleID]; !ok {
			return fmt.Errorf("vehicle foreign key: %w", model.ErrVehicleNotFound)
		}
		if _, ok := s.clients[r.ClientID]; !ok {
			return fmt.Errorf("client foreign key: %w", model.ErrClientNotFound)
		}
		if r.Active {
			for _, other := range s.rentals {
				if other.VehicleID == r.VehicleID && other.Active &&
					other.Period.Overlaps(r.Period) {
					return cerr.RangeUnavailable(model.ErrVehicleUnavailable)
				}
			}
		}
		s.rentals[r.ID] = *r
		return nil
	})
}

func (q rentalsQueryer) Cancel(_ context.Context, id uuid.UUID) error {
	return q.do(func(s *state) error {
		r, ok := s.rentals[id]
		if !ok {
			return cerr.NotFound(model.ErrRentalNotFound)
		}
		r.Active = false
		s.rentals[id] = r
		return nil
	})
}
