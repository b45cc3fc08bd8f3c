package interceptor

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	httpx "github.com/go-fieldset/fieldset/pkg/http"
	"github.com/go-fieldset/fieldset/pkg/http/auth/jwt"
	"github.com/redis/go-redis/v9"
)

/**
 * @file: authorization_interceptor.go
 * @description: authorization interceptor
 */

// ClaimsKey is the context key under which validated claims are stored.
const ClaimsKey = "claims"

// AuthorizationInterceptor rejects requests without a valid bearer token.
// When a redis client is supplied, the token must also still be registered
// under keyPrefix+userId (logout revokes it there).
func AuthorizationInterceptor(secretKey string, keyPrefix string, rds *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			httpx.WithRepErrStatus(c, http.StatusUnauthorized, httpx.AuthorizationEmpty.Code, httpx.AuthorizationEmpty.Msg, c.Request.URL.Path)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			httpx.WithRepErrStatus(c, http.StatusUnauthorized, httpx.TokenFormatIncorrect.Code, httpx.TokenFormatIncorrect.Msg, c.Request.URL.Path)
			c.Abort()
			return
		}

		claims, err := jwt.ParseToken(parts[1], []byte(secretKey))
		if err != nil {
			httpx.WithRepErrStatus(c, http.StatusUnauthorized, httpx.InvalidToken.Code, httpx.InvalidToken.Msg, c.Request.URL.Path)
			c.Abort()
			return
		}

		if rds != nil {
			stored, err := rds.Get(c.Request.Context(), keyPrefix+claims.UserId).Result()
			if err != nil || stored != parts[1] {
				httpx.WithRepErrStatus(c, http.StatusUnauthorized, httpx.Unauthorized.Code, httpx.Unauthorized.Msg, c.Request.URL.Path)
				c.Abort()
				return
			}
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
