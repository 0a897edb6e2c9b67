// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/momeni/car-rental/pkg/adapter/config/settings"
	"github.com/momeni/car-rental/pkg/adapter/restful/gin"
)

// DefaultAddress is the listening address when address is missing.
const DefaultAddress = "127.0.0.1:8080"

// Gin contains the gin-gonic related configuration settings.
// Fields are defined as pointers, so it is possible to detect if they
// are or are not initialized.
type Gin struct {
	Logger   *bool // Whether to register the request logger middleware
	Recovery *bool // Whether to register the recovery middleware

	// CORSOrigins lists the origins which may send cross-origin
	// requests. The CORS middleware is not registered if it is empty.
	CORSOrigins []string `yaml:"cors-origins"`

	Address string // host:port for the HTTP server to listen on
}

func (g *Gin) ValidateAndNormalize() error {
	settings.Nil2Zero(&g.Logger)
	settings.Nil2Zero(&g.Recovery)
	if g.Address == "" {
		g.Address = DefaultAddress
	}
	for _, o := range g.CORSOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") &&
			!strings.HasPrefix(o, "https://") {
			return fmt.Errorf("invalid cors origin: %q", o)
		}
	}
	return nil
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `g` settings. The l logger is used by the logger and recovery
// middlewares.
func (g Gin) NewEngine(l *slog.Logger) *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 3)
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger(l))
	}
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery(l))
	}
	if len(g.CORSOrigins) > 0 {
		middlewares = append(middlewares, gin.CORS(g.CORSOrigins))
	}
	return gin.New(middlewares...)
}
