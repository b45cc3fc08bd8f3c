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
	"github.com/gin-gonic/gin"
	"github.com/go-fieldset/fieldset/internal/engine/logic"
	"github.com/go-fieldset/fieldset/internal/engine/model"
	"github.com/go-fieldset/fieldset/pkg/http/interceptor"
)

// registerFormRoutes mounts the form descriptor endpoint consumed by the
// generic form renderer.
func registerFormRoutes(api *gin.RouterGroup, logics *logic.Logics) {
	api.GET("/forms/:appliesTo", getFormTabs(logics))
}

// getFormTabs returns the dynamic tabs to append to the host entity form.
// Customers get the definition-backed tab plus the config-driven tab, users
// get the definition-backed tab only. An optional entityId query fills in the
// entity's stored values.
func getFormTabs(logics *logic.Logics) gin.HandlerFunc {
	return func(c *gin.Context) {
		appliesTo := model.EntityType(c.Param("appliesTo"))
		entityId := c.Query("entityId")

		tabs := []model.FormTab{}
		tabs, err := logics.Form.BuildProfileTabs(tabs, appliesTo, entityId)
		if err != nil {
			respondErr(c, err)
			return
		}
		if appliesTo == model.EntityTypeCustomer {
			tabs, err = logics.Form.BuildConfigTabs(tabs, entityId, appliesTo)
			if err != nil {
				respondErr(c, err)
				return
			}
		}
		c.Set(interceptor.DETAIL, tabs)
	}
}
