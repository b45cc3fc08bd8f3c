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
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-fieldset/fieldset/internal/engine/logic"
	httpx "github.com/go-fieldset/fieldset/pkg/http"
	"github.com/go-fieldset/fieldset/pkg/http/interceptor"
)

// registerSchemaRoutes mounts the config-driven global schema endpoints.
func registerSchemaRoutes(api *gin.RouterGroup, logics *logic.Logics) {
	config := api.Group("/config")
	{
		config.GET("", getSchema(logics))
		config.POST("", setSchema(logics))
	}
}

func getSchema(logics *logic.Logics) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields, err := logics.Schema.Get()
		if err != nil {
			respondErr(c, err)
			return
		}
		c.Set(interceptor.DETAIL, fields)
	}
}

func setSchema(logics *logic.Logics) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			httpx.WithRepErrStatus(c, http.StatusBadRequest, httpx.BadRequest.Code, httpx.BadRequest.Msg, c.Request.URL.Path)
			return
		}
		fields, err := logics.Schema.Set(raw)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.Set(interceptor.DETAIL, fields)
	}
}
