// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package clientsrs

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/car-rental/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/car-rental/pkg/core/model"
)

type registerClientReq struct {
	FirstName string `json:"first_name" binding:"required,max=64"`
	LastName  string `json:"last_name" binding:"required,max=64"`
	Email     string `json:"email" binding:"required,email,max=254"`
}

func DserRegisterClientReq(c *gin.Context) *model.ClientSpec {
	req := &registerClientReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &model.ClientSpec{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
	}
}
