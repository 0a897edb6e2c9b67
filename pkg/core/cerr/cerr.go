// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cerr contains the core errors. Each use case failure is
// classified by a Kind, so the adapter layer may translate it to its
// own protocol (e.g., an HTTP status code) without knowing about the
// individual sentinel errors of the model package.
package cerr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure of a use case operation.
type Kind int

// Known failure kinds. The zero value is reserved for unclassified
// (internal) errors.
const (
	KindUnknown Kind = iota

	KindInvalidInput        // malformed or inconsistent caller input
	KindAlreadyExists       // a unique attribute is already registered
	KindNotFound            // no entity with the given identifier
	KindEntityInactive      // entity is deactivated and may not be used
	KindRangeUnavailable    // vehicle is booked in the requested period
	KindHasActiveObligation // entity has an ongoing or upcoming rental
)

var kindNames = [...]string{
	KindUnknown:             "unknown",
	KindInvalidInput:        "invalid-input",
	KindAlreadyExists:       "already-exists",
	KindNotFound:            "not-found",
	KindEntityInactive:      "entity-inactive",
	KindRangeUnavailable:    "range-unavailable",
	KindHasActiveObligation: "has-active-obligation",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Err.Error())
}

// KindOf returns the Kind of the first *Error in the err chain.
// It returns KindUnknown if err is nil or carries no *Error.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

func InvalidInput(err error) *Error {
	return &Error{Err: err, Kind: KindInvalidInput}
}

func AlreadyExists(err error) *Error {
	return &Error{Err: err, Kind: KindAlreadyExists}
}

func NotFound(err error) *Error {
	return &Error{Err: err, Kind: KindNotFound}
}

func EntityInactive(err error) *Error {
	return &Error{Err: err, Kind: KindEntityInactive}
}

func RangeUnavailable(err error) *Error {
	return &Error{Err: err, Kind: KindRangeUnavailable}
}

func HasActiveObligation(err error) *Error {
	return &Error{Err: err, Kind: KindHasActiveObligation}
}
