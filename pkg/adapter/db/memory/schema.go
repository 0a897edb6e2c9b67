// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package memory

import (
	"context"

	"github.com/momeni/car-rental/pkg/core/repo"
)

// Schema is the memory schema repository. The memory "tables" always
// exist, so recreating them only drops their rows.
type Schema struct{}

func (Schema) Conn(c repo.Conn) repo.SchemaConnQueryer {
	return schemaQueryer{c.(*Conn)}
}

func (Schema) Tx(tx repo.Tx) repo.SchemaTxQueryer {
	return schemaQueryer{tx.(*Tx)}
}

type schemaQueryer struct {
	storage
}

func (q schemaQueryer) Initialized(context.Context) (bool, error) {
	return true, nil
}

func (q schemaQueryer) Recreate(context.Context) error {
	return q.do(func(s *state) error {
		*s = *newState()
		return nil
	})
}
