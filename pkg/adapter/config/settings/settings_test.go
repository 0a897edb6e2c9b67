// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings_test

import (
	"testing"
	"time"

	"github.com/momeni/car-rental/pkg/adapter/config/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDurationYAML(t *testing.T) {
	s := &struct {
		Timeout *settings.Duration `yaml:"timeout"`
	}{}
	require.NoError(t, yaml.Unmarshal([]byte("timeout: 1h30m\n"), s))
	require.NotNil(t, s.Timeout)
	assert.Equal(t, 90*time.Minute, s.Timeout.Std())

	for _, tc := range []struct {
		d    time.Duration
		text string
	}{
		{2 * time.Minute, "2m"},
		{time.Hour, "1h"},
		{90 * time.Minute, "1h30m"},
		{1500 * time.Millisecond, "1.5s"},
	} {
		d := settings.Duration(tc.d)
		b, err := d.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, tc.text, string(b))
	}
	assert.Error(t, yaml.Unmarshal([]byte("timeout: soon\n"), s))
}

func TestVerifyRange(t *testing.T) {
	minb, maxb := 2, 10
	v := new(int)
	*v = 12
	err := settings.VerifyRange(&v, &minb, &maxb)
	require.NotNil(t, err)
	assert.False(t, err.LessThanMin)
	assert.Equal(t, 12, *err.Value)
	assert.Equal(t, 10, *v)
	assert.Equal(t, 10, maxb, "boundary must not be aliased")
	*v = 11
	assert.Equal(t, 10, maxb, "boundary must not be aliased")

	*v = 1
	err = settings.VerifyRange(&v, &minb, nil)
	require.NotNil(t, err)
	assert.True(t, err.LessThanMin)
	assert.Equal(t, 2, *v)

	*v = 5
	assert.Nil(t, settings.VerifyRange(&v, &minb, &maxb))
	assert.Equal(t, 5, *v)

	var missing *int
	assert.Nil(t, settings.VerifyRange(&missing, &minb, &maxb))
	assert.Nil(t, missing)

	err = settings.VerifyRange(&v, &maxb, &minb)
	require.NotNil(t, err)
	assert.True(t, err.InvalidRange)
}

func TestNil2ZeroAndDefault(t *testing.T) {
	var b *bool
	settings.Nil2Zero(&b)
	require.NotNil(t, b)
	assert.False(t, *b)

	var s *string
	settings.Default(&s, "UTC")
	require.NotNil(t, s)
	assert.Equal(t, "UTC", *s)
	settings.Default(&s, "Asia/Tehran")
	assert.Equal(t, "UTC", *s)
}
