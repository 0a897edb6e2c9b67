// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vehiclesrs realizes the vehicles resource, allowing the
// vehicles registration, query, and deactivation REST APIs to be
// accepted and delegated to the booking use cases respectively.
package vehiclesrs

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
// instance with the vehicles REST APIs including:
//  1. POST request to /api/rentweb/v1/vehicles
//     in order to register a new vehicle,
//  2. GET request to /api/rentweb/v1/vehicles/:id
//     in order to fetch one vehicle,
//  3. GET request to /api/rentweb/v1/vehicles/:id/rentals
//     in order to list rentals of one vehicle,
//  4. DELETE request to /api/rentweb/v1/vehicles/:id
//     in order to deactivate (soft-delete) one vehicle.
func Register(r *gin.RouterGroup, booking *bookinguc.UseCase) {
	rs := &resource{booking: booking}
	r.POST("vehicles", rs.RegisterVehicle)
	r.GET("vehicles/:id", rs.Vehicle)
	r.GET("vehicles/:id/rentals", rs.VehicleRentals)
	r.DELETE("vehicles/:id", rs.DeactivateVehicle)
}

func (rs *resource) RegisterVehicle(c *gin.Context) {
	vs := DserRegisterVehicleReq(c)
	if vs == nil {
		return
	}
	v, err := rs.booking.RegisterVehicle(c, *vs)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (rs *resource) Vehicle(c *gin.Context) {
	id, ok := serdser.DserID(c)
	if !ok {
		return
	}
	v, err := rs.booking.Vehicle(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (rs *resource) VehicleRentals(c *gin.Context) {
	id, ok := serdser.DserID(c)
	if !ok {
		return
	}
	rentals, err := rs.booking.VehicleRentals(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serdser.Items(rentals))
}

func (rs *resource) DeactivateVehicle(c *gin.Context) {
	id, ok := serdser.DserID(c)
	if !ok {
		return
	}
	if err := rs.booking.DeactivateVehicle(c, id); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
