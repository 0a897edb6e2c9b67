// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package clientsrs realizes the clients resource, allowing the
// clients registration, query, and deactivation REST APIs to be
// accepted and delegated to the booking use cases respectively.
package clientsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/car-rental/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/car-rental/pkg/core/usecase/bookinguc"
)

type resource struct {
	booking *bookinguc.UseCase
}

// Register instantiates a resource adapting the booking use case
// instance with the clients REST APIs including:
//  1. POST request to /api/rentweb/v1/clients
//     in order to register a new client,
//  2. GET request to /api/rentweb/v1/clients/:id
//     in order to fetch one client,
//  3. GET request to /api/rentweb/v1/clients/:id/rentals
//     in order to list rentals of one client,
//  4. DELETE request to /api/rentweb/v1/clients/:id
//     in order to deactivate (soft-delete) one client.
func Register(r *gin.RouterGroup, booking *bookinguc.UseCase) {
	rs := &resource{booking: booking}
	r.POST("clients", rs.RegisterClient)
	r.GET("clients/:id", rs.Client)
	r.GET("clients/:id/rentals", rs.ClientRentals)
	r.DELETE("clients/:id", rs.DeactivateClient)
}

func (rs *resource) RegisterClient(c *gin.Context) {
	cs := DserRegisterClientReq(c)
	if cs == nil {
		return
	}
	cl, err := rs.booking.RegisterClient(c, *cs)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, cl)
}

func (rs *resource) Client(c *gin.Context) {
	id, ok := serdser.DserID(c)
	if !ok {
		return
	}
	cl, err := rs.booking.Client(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (rs *resource) ClientRentals(c *gin.Context) {
	id, ok := serdser.DserID(c)
	if !ok {
		return
	}
	rentals, err := rs.booking.ClientRentals(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serdser.Items(rentals))
}

func (rs *resource) DeactivateClient(c *gin.Context) {
	id, ok := serdser.DserID(c)
	if !ok {
		return
	}
	if err := rs.booking.DeactivateClient(c, id); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
