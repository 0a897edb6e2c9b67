// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

// Client models a person who may rent vehicles. The Email is unique
// among all clients, including the deactivated ones.
type Client struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
}

// ClientSpec contains the caller provided fields which are required
// for registration of a new client.
type ClientSpec struct {
	FirstName string
	LastName  string
	Email     string
}

// These errors describe why a ClientSpec is invalid.
var (
	ErrEmptyFirstName = errors.New("first name is empty")
	ErrEmptyLastName  = errors.New("last name is empty")
	ErrEmptyEmail     = errors.New("email is empty")
)

// ErrClientNotFound indicates that no client has the queried ID.
var ErrClientNotFound = errors.New("client not found")

// ErrClientInactive indicates that a deactivated client tried to
// rent a vehicle.
var ErrClientInactive = errors.New("client is inactive")

// ErrEmailTaken indicates that another client (active or not) is
// already registered with the same email address.
var ErrEmailTaken = errors.New("email is already registered")

// ErrClientHasActiveRental indicates that a client may not be
// deactivated because they have an active rental which has not
// ended yet.
var ErrClientHasActiveRental = errors.New(
	"client has ongoing or upcoming rentals",
)

// Validate checks that all fields of cs are filled and its Email is
// a bare address like "someone@example.com". Display names such as
// "Someone <someone@example.com>" are rejected.
func (cs ClientSpec) Validate() error {
	var errs []error
	if strings.TrimSpace(cs.FirstName) == "" {
		errs = append(errs, ErrEmptyFirstName)
	}
	if strings.TrimSpace(cs.LastName) == "" {
		errs = append(errs, ErrEmptyLastName)
	}
	if strings.TrimSpace(cs.Email) == "" {
		errs = append(errs, ErrEmptyEmail)
	} else if err := validateEmail(cs.Email); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("malformed email %q: %w", email, err)
	}
	if addr.Address != email || addr.Name != "" {
		return fmt.Errorf("malformed email %q: not a bare address", email)
	}
	return nil
}
