package interceptor

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/go-fieldset/fieldset/pkg/http"
	"github.com/go-fieldset/fieldset/pkg/log"
)

/**
 * @file: exception_interceptor.go
 * @description: panic recovery interceptor
 */

// ExceptionInterceptor recovers panics and turns them into an internal error envelope.
func ExceptionInterceptor(c *gin.Context) {
	defer func() {
		if err := recover(); err != nil {
			log.Errorf("panic: %v\n%s", err, debug.Stack())
			http.WithRepErrMsg(c, http.InternalError.Code, http.InternalError.Msg, c.Request.URL.Path)
			c.Abort()
		}
	}()
	c.Next()
}
