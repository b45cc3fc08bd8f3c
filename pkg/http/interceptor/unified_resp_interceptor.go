package interceptor

import (
	"github.com/gin-gonic/gin"
	httpx "github.com/go-fieldset/fieldset/pkg/http"
)

/**
 * @file: unified_resp_interceptor.go
 * @description: unified response interceptor
 */

const (
	// DETAIL is set by handlers that return data, e.g. c.Set(DETAIL, value)
	DETAIL = "detail"

	// OPERATION is set by handlers that only report an operation result,
	// e.g. c.Set(OPERATION, "create field")
	OPERATION = "operation"
)

// UnifiedResponseInterceptor wraps handler output into the response envelope.
// Handlers that already wrote a response (errors, raw payloads) are left alone.
func UnifiedResponseInterceptor() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		if detail, exists := c.Get(DETAIL); exists {
			httpx.WithRepJSON(c, detail)
			return
		}

		if _, exists := c.Get(OPERATION); exists {
			httpx.WithRepNotDetail(c)
			return
		}
	}
}
