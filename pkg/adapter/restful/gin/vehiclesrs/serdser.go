// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package vehiclesrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/car-rental/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/car-rental/pkg/core/model"
	"github.com/shopspring/decimal"
)

type registerVehicleReq struct {
	ChassisNumber string           `json:"chassis_number" binding:"required,max=64"`
	Make          string           `json:"make" binding:"required,max=64"`
	Model         string           `json:"model" binding:"required,max=64"`
	DailyRate     *decimal.Decimal `json:"daily_rate" binding:"required"`
}

// DserRegisterVehicleReq deserializes the vehicle registration request
// body. The semantic checks, such as the daily rate positivity, are
// left to the use case layer.
func DserRegisterVehicleReq(c *gin.Context) *model.VehicleSpec {
	req := &registerVehicleReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &model.VehicleSpec{
		ChassisNumber: req.ChassisNumber,
		Make:          req.Make,
		Model:         req.Model,
		DailyRate:     *req.DailyRate,
	}
}
