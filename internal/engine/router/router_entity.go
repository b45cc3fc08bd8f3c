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

// registerEntityRoutes mounts the per-entity document endpoints.
func registerEntityRoutes(api *gin.RouterGroup, logics *logic.Logics) {
	customers := api.Group("/customers")
	{
		customers.GET("/search-by-custom-field", searchCustomers(logics))
		customers.GET("/:customerId/custom-fields", getCustomerFields(logics))
		customers.PUT("/:customerId/custom-fields", mergeCustomerFields(logics))
		customers.POST("/:customerId/custom-fields", mergeCustomerFields(logics))
	}
}

func getCustomerFields(logics *logic.Logics) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := logics.Submission.GetDocument(c.Param("customerId"), model.EntityTypeCustomer)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.Set(interceptor.DETAIL, doc)
	}
}

// mergeCustomerFields merges the submitted values into the customer's
// document and returns the merged result. Submitted keys the schema does not
// declare are ignored, keys left out of the submission keep their stored
// value.
func mergeCustomerFields(logics *logic.Logics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form map[string]interface{}
		if err := c.ShouldBindJSON(&form); err != nil {
			httpx.WithRepErrStatus(c, http.StatusBadRequest, httpx.BadRequest.Code, httpx.BadRequest.Msg, c.Request.URL.Path)
			return
		}
		doc, err := logics.Submission.ReconcileDocument(c.Param("customerId"), model.EntityTypeCustomer, form)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.Set(interceptor.DETAIL, doc)
	}
}

func searchCustomers(logics *logic.Logics) gin.HandlerFunc {
	return func(c *gin.Context) {
		field := c.Query("field")
		value := c.Query("value")
		attrs, err := logics.Submission.Search(field, value, model.EntityTypeCustomer)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.Set(interceptor.DETAIL, attrs)
	}
}
