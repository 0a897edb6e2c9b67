// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package rentalsrs realizes the rentals resource, allowing the
// rentals booking, query, and cancellation REST APIs to be accepted
// and delegated to the booking use cases respectively.
package rentalsrs

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
// instance with the rentals REST APIs including:
//  1. POST request to /api/rentweb/v1/rentals
//     in order to book a vehicle for a client,
//  2. GET request to /api/rentweb/v1/rentals/:id
//     in order to fetch one rental,
//  3. PUT request to /api/rentweb/v1/rentals/:id/cancellation
//     in order to cancel one rental.
func Register(r *gin.RouterGroup, booking *bookinguc.UseCase) {
	rs := &resource{booking: booking}
	r.POST("rentals", rs.CreateRental)
	r.GET("rentals/:id", rs.Rental)
	r.PUT("rentals/:id/cancellation", rs.CancelRental)
}

func (rs *resource) CreateRental(c *gin.Context) {
	spec := DserCreateRentalReq(c)
	if spec == nil {
		return
	}
	r, err := rs.booking.CreateRental(c, *spec)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (rs *resource) Rental(c *gin.Context) {
	id, ok := serdser.DserID(c)
	if !ok {
		return
	}
	r, err := rs.booking.Rental(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (rs *resource) CancelRental(c *gin.Context) {
	id, ok := serdser.DserID(c)
	if !ok {
		return
	}
	r, err := rs.booking.CancelRental(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}
