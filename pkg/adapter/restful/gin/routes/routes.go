// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// registration of all of them with a gin-gonic engine, so they can
// delegate the REST API requests to the booking use cases.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/momeni/car-rental/pkg/adapter/restful/gin/clientsrs"
	"github.com/momeni/car-rental/pkg/adapter/restful/gin/rentalsrs"
	"github.com/momeni/car-rental/pkg/adapter/restful/gin/vehiclesrs"
	"github.com/momeni/car-rental/pkg/core/usecase/bookinguc"
)

// BasePath is the common prefix of all REST APIs.
const BasePath = "/api/rentweb/v1"

// Register instantiates the vehicles, clients, and rentals resources
// (from packages which are named like vehiclesrs) in order to adapt
// the booking use case interface with the REST APIs. These resources
// are registered as request handlers using the e gin-gonic engine.
// The booking use case acquires connections and transactions from its
// pool on demand, so Register needs no database access itself.
func Register(e *gin.Engine, booking *bookinguc.UseCase) {
	r := e.Group(BasePath)
	vehiclesrs.Register(r, booking)
	clientsrs.Register(r, booking)
	rentalsrs.Register(r, booking)
}
