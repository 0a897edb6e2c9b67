// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package serdser contains the serialization and deserialization
// helpers which are shared by the resource packages. Request binding
// errors are reported with the 400 status code as a JSON object which
// maps each invalid field name to a list of messages. Use case errors
// are reported as a JSON object with a detail field and a status code
// which is chosen based on their cerr.Kind.
package serdser

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/momeni/car-rental/pkg/core/cerr"
	"github.com/momeni/car-rental/pkg/core/log"
)

func init() {
	// report the json (or uri) names of fields in validation errors
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(fieldName)
	}
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "uri"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return ""
}

// Bind deserializes the request body into req using the b binding
// and validates it. In case of errors, a 400 (or 500 for an invalid
// req type) response is written and false is returned.
func Bind(c *gin.Context, req any, b binding.Binding) bool {
	return handleBindErr(c, c.ShouldBindWith(req, b))
}

// BindURI deserializes and validates the path parameters into req.
func BindURI(c *gin.Context, req any) bool {
	return handleBindErr(c, c.ShouldBindUri(req))
}

func handleBindErr(c *gin.Context, err error) bool {
	switch err := err.(type) {
	case *validator.InvalidValidationError:
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": err.Error(),
		})
	case validator.ValidationErrors:
		var nameToErrs map[string][]string
		for _, ferr := range err {
			AddErr(&nameToErrs, ferr.Field(), ferr.Error())
		}
		c.JSON(http.StatusBadRequest, nameToErrs)
	default:
		if err == nil {
			return true
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
	}
	return false
}

// IDReq is the path parameters of APIs which target one entity.
type IDReq struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// DserID deserializes the :id path parameter as a UUID. In case of
// errors, a 400 response is written and false is returned.
func DserID(c *gin.Context) (uuid.UUID, bool) {
	req := &IDReq{}
	if ok := BindURI(c, req); !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, map[string][]string{
			"id": {"Path param id is not UUID."},
		})
		return uuid.Nil, false
	}
	return id, true
}

func AddErr(errs *map[string][]string, name string, msgs ...string) {
	if (*errs) == nil {
		*errs = make(map[string][]string)
	}
	if elist, ok := (*errs)[name]; !ok {
		(*errs)[name] = msgs
	} else {
		(*errs)[name] = append(elist, msgs...)
	}
}

func Assert(errs *map[string][]string, ok bool, name string, msgs ...string) bool {
	if ok {
		return true
	}
	AddErr(errs, name, msgs...)
	return false
}

// StatusCode returns the HTTP status code which represents the k kind.
func StatusCode(k cerr.Kind) int {
	switch k {
	case cerr.KindInvalidInput:
		return http.StatusBadRequest
	case cerr.KindNotFound:
		return http.StatusNotFound
	case cerr.KindAlreadyExists, cerr.KindRangeUnavailable,
		cerr.KindHasActiveObligation:
		return http.StatusConflict
	case cerr.KindEntityInactive:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// SerErr writes err as the response. Classified errors are described
// in the detail field, while other errors are logged and hidden from
// the client.
func SerErr(c *gin.Context, err error) {
	var ce *cerr.Error
	if errors.As(err, &ce) && ce.Kind != cerr.KindUnknown {
		c.JSON(StatusCode(ce.Kind), gin.H{
			"kind":   ce.Kind.String(),
			"detail": ce.Err.Error(),
		})
		return
	}
	log.Error(c, "request failed", log.Err("err", err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"detail": "internal server error",
	})
}

// Items wraps a list of entities as the items field of a JSON object,
// so an empty list is rendered as [] instead of null.
func Items[T any](items []T) gin.H {
	if items == nil {
		items = []T{}
	}
	return gin.H{"items": items}
}
