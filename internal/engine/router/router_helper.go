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
	"github.com/go-fieldset/fieldset/internal/engine/errs"
	httpx "github.com/go-fieldset/fieldset/pkg/http"
	"github.com/go-fieldset/fieldset/pkg/log"
	"github.com/pkg/errors"
)

// respondErr maps domain error kinds to envelope codes. Uniqueness and
// validation messages surface verbatim, everything unrecognized is logged and
// collapsed into the internal error envelope.
func respondErr(c *gin.Context, err error) {
	var (
		ve *errs.ValidationError
		cf *errs.ConfigFormatError
		uv *errs.UniquenessViolation
		nf *errs.NotFoundError
	)
	switch {
	case errors.As(err, &uv):
		httpx.WithRepErrMsg(c, httpx.UniquenessConflict.Code, uv.Error(), c.Request.URL.Path)
	case errors.As(err, &ve):
		httpx.WithRepErrMsg(c, httpx.ValidationFailed.Code, ve.Error(), c.Request.URL.Path)
	case errors.As(err, &cf):
		httpx.WithRepErrStatus(c, http.StatusBadRequest, httpx.SchemaFormatInvalid.Code, cf.Error(), c.Request.URL.Path)
	case errors.As(err, &nf):
		httpx.WithRepErrMsg(c, httpx.NotFound.Code, nf.Error(), c.Request.URL.Path)
	case errors.Is(err, errs.ErrUnauthenticated):
		httpx.WithRepErrStatus(c, http.StatusUnauthorized, httpx.AuthenticationFailed.Code, httpx.AuthenticationFailed.Msg, c.Request.URL.Path)
	default:
		log.Errorw("request failed", "path", c.Request.URL.Path, "err", err)
		httpx.WithRepErrMsg(c, httpx.InternalError.Code, httpx.InternalError.Msg, c.Request.URL.Path)
	}
	c.Abort()
}
