// Copyright 2025 Fieldset Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-fieldset/fieldset/internal/engine/logic"
	"github.com/go-fieldset/fieldset/internal/engine/model"
	httpx "github.com/go-fieldset/fieldset/pkg/http"
	"github.com/go-fieldset/fieldset/pkg/http/interceptor"
)

// registerFieldRoutes mounts the field-definition admin CRUD.
func registerFieldRoutes(api *gin.RouterGroup, logics *logic.Logics) {
	fields := api.Group("/fields")
	{
		fields.GET("", listFields(logics))
		fields.POST("", createField(logics))
		fields.GET("/:fieldId", getField(logics))
		fields.PUT("/:fieldId", updateField(logics))
		fields.DELETE("/:fieldId", deleteField(logics))
	}
}

func listFields(logics *logic.Logics) gin.HandlerFunc {
	return func(c *gin.Context) {
		appliesTo := model.EntityType(c.DefaultQuery("appliesTo", string(model.EntityTypeCustomer)))
		defs, err := logics.Definition.List(appliesTo)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.Set(interceptor.DETAIL, defs)
	}
}

func getField(logics *logic.Logics) gin.HandlerFunc {
	return func(c *gin.Context) {
		def, err := logics.Definition.Get(c.Param("fieldId"))
		if err != nil {
			respondErr(c, err)
			return
		}
		c.Set(interceptor.DETAIL, def)
	}
}

func createField(logics *logic.Logics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var def model.FieldDefinition
		if err := c.ShouldBindJSON(&def); err != nil {
			httpx.WithRepErrStatus(c, http.StatusBadRequest, httpx.BadRequest.Code, httpx.BadRequest.Msg, c.Request.URL.Path)
			return
		}
		created, err := logics.Definition.Create(&def)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.Set(interceptor.DETAIL, created)
	}
}

func updateField(logics *logic.Logics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var def model.FieldDefinition
		if err := c.ShouldBindJSON(&def); err != nil {
			httpx.WithRepErrStatus(c, http.StatusBadRequest, httpx.BadRequest.Code, httpx.BadRequest.Msg, c.Request.URL.Path)
			return
		}
		updated, err := logics.Definition.Update(c.Param("fieldId"), &def)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.Set(interceptor.DETAIL, updated)
	}
}

func deleteField(logics *logic.Logics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := logics.Definition.Delete(c.Param("fieldId")); err != nil {
			respondErr(c, err)
			return
		}
		c.Set(interceptor.OPERATION, "delete field")
	}
}
