package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

/**
 * @file: http_access_log.go
 * @description: access log format
 */

// AccessLogFormat is the gin access-log line formatter.
func AccessLogFormat(param gin.LogFormatterParams) string {
	return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
		param.ClientIP,
		param.TimeStamp.Format("2006/01/02 15:04:05"),
		param.Method,
		param.Path,
		param.Request.Proto,
		param.StatusCode,
		param.Latency,
		param.Request.UserAgent(),
		param.ErrorMessage,
	)
}
