// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"fmt"
	"io"
	"log/slog"
)

// Logging contains the settings of the default structured logger.
type Logging struct {
	Level  string // debug, info, warn, or error; defaults to info
	Format string // text or json; defaults to text

	level slog.Level
}

func (l *Logging) ValidateAndNormalize() error {
	if l.Level == "" {
		l.Level = "info"
	}
	if err := l.level.UnmarshalText([]byte(l.Level)); err != nil {
		return fmt.Errorf("parsing level: %w", err)
	}
	switch l.Format {
	case "":
		l.Format = "text"
	case "text", "json":
	default:
		return fmt.Errorf("unsupported format: %q", l.Format)
	}
	return nil
}

// NewLogger creates a structured logger which writes records with the
// configured level (or higher) into w, using the configured format.
func (l Logging) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
