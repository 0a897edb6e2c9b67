// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres realizes the repo.Pool, repo.Conn, and repo.Tx
// interfaces on top of a PostgreSQL database using the GORM framework
// and the pgx driver. Its sub-packages (vehiclesrp, clientsrp,
// rentalsrp, and schemarp) implement the repositories which may be
// guided by these connections and transactions.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/momeni/car-rental/pkg/core/cerr"
)

// PostgreSQL error codes which are translated to core errors.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	UniqueViolation    = "23505"
	ExclusionViolation = "23P01"
)

// TranslateError converts the constraint violations which are reported
// by the DBMS to the core errors, so use cases may report them to the
// end users. A unique constraint violation is reported as an
// AlreadyExists kind error wrapping the taken error. An exclusion
// constraint violation (i.e., an overlapping active rental) is
// reported as a RangeUnavailable kind error wrapping the overlap error.
// Other errors are returned unchanged.
func TranslateError(err error, taken, overlap error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case UniqueViolation:
		if taken != nil {
			return cerr.AlreadyExists(taken)
		}
	case ExclusionViolation:
		if overlap != nil {
			return cerr.RangeUnavailable(overlap)
		}
	}
	return err
}
