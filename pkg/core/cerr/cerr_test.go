// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/momeni/car-rental/pkg/core/cerr"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	base := errors.New("vehicle not found")
	err := fmt.Errorf("deactivating: %w", cerr.NotFound(base))
	assert.Equal(t, cerr.KindNotFound, cerr.KindOf(err))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, cerr.KindUnknown, cerr.KindOf(base))
	assert.Equal(t, cerr.KindUnknown, cerr.KindOf(nil))
	assert.Equal(t, "deactivating: [not-found] vehicle not found", err.Error())
	assert.Equal(t, "kind(42)", cerr.Kind(42).String())
}
