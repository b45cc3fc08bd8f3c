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

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ResponseErr struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Path string `json:"path,omitempty"`
}

// WithRepErrMsg returns an error envelope with the request path.
func WithRepErrMsg(c *gin.Context, code int, msg string, path string) {
	c.JSON(http.StatusOK, ResponseErr{
		Code: code,
		Msg:  msg,
		Path: path,
	})
}

// WithRepErrStatus returns an error envelope carrying a real http status,
// used where the contract requires one (401 unauthenticated, 400 malformed body).
func WithRepErrStatus(c *gin.Context, status int, code int, msg string, path string) {
	c.JSON(status, ResponseErr{
		Code: code,
		Msg:  msg,
		Path: path,
	})
}
