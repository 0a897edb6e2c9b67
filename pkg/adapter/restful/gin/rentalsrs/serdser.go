// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package rentalsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/momeni/car-rental/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/car-rental/pkg/core/model"
)

type createRentalReq struct {
	VehicleID string `json:"vehicle_id" binding:"required,uuid"`
	ClientID  string `json:"client_id" binding:"required,uuid"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
}

// DserCreateRentalReq deserializes the rental booking request body.
// Field formats are checked here, while the period ordering and the
// start date freshness are verified by the use case layer.
func DserCreateRentalReq(c *gin.Context) *model.RentalSpec {
	req := &createRentalReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	var errs map[string][]string
	defer func() {
		if errs != nil {
			c.JSON(http.StatusBadRequest, errs)
		}
	}()
	val := &model.RentalSpec{}
	var err error
	val.VehicleID, err = uuid.Parse(req.VehicleID)
	serdser.Assert(&errs, err == nil, "vehicle_id", "The vehicle_id is not UUID.")
	val.ClientID, err = uuid.Parse(req.ClientID)
	serdser.Assert(&errs, err == nil, "client_id", "The client_id is not UUID.")
	val.Start, err = model.ParseDate(req.StartDate)
	serdser.Assert(&errs, err == nil, "start_date", "The start_date is not YYYY-MM-DD.")
	val.End, err = model.ParseDate(req.EndDate)
	serdser.Assert(&errs, err == nil, "end_date", "The end_date is not YYYY-MM-DD.")
	if errs == nil {
		return val
	}
	return nil
}
