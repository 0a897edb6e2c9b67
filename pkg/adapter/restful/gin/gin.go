// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gin adapts the booking use cases to REST APIs using the
// gin-gonic framework. This package contains the engine construction
// and its middlewares, while the resource packages (vehiclesrs,
// clientsrs, and rentalsrs) register the request handlers.
package gin

import (
	"log/slog"
	"time"

	"github.com/FabienMht/ginslog/logger"
	"github.com/FabienMht/ginslog/recovery"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine

// New instantiates a gin Engine without any default middleware and
// installs the given middlewares on it.
func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.Use(middlewares...)
	return e
}

// Logger returns a middleware which logs each request using the l
// structured logger.
func Logger(l *slog.Logger) HandlerFunc {
	return logger.New(l)
}

// Recovery returns a middleware which recovers from panics, logs them
// using the l structured logger, and responds with the 500 status code.
func Recovery(l *slog.Logger) HandlerFunc {
	return recovery.New(l)
}

// CORS returns a middleware which allows the given origins to send
// cross-origin requests to all registered APIs. Passing "*" allows
// all origins, but disables the credentials.
func CORS(origins []string) HandlerFunc {
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	})
}
