// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

import (
	"errors"
	"log/slog"
	"strings"
	"time"
)

// Duration is a time.Duration which is written like "2m" or "1h30m"
// in the yaml files.
type Duration time.Duration

// UnmarshalText parses the data using time.ParseDuration.
func (d *Duration) UnmarshalText(data []byte) error {
	dd, err := time.ParseDuration(string(data))
	if err != nil {
		return err
	}
	*d = Duration(dd)
	return nil
}

// MarshalText formats d without its trailing zero units, so 2m is
// written instead of 2m0s.
func (d *Duration) MarshalText() ([]byte, error) {
	if d == nil {
		return nil, errors.New("nil duration")
	}
	s := time.Duration(*d).String()
	if strings.HasSuffix(s, "m0s") {
		s = s[:len(s)-2]
	}
	if strings.HasSuffix(s, "h0m") {
		s = s[:len(s)-2]
	}
	return []byte(s), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d *Duration) LogValue() slog.Value {
	if d == nil {
		return slog.StringValue("nil-duration")
	}
	return slog.DurationValue(time.Duration(*d))
}
