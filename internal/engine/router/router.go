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
	httpx "github.com/go-fieldset/fieldset/pkg/http"
	"github.com/go-fieldset/fieldset/pkg/http/interceptor"
	"github.com/go-fieldset/fieldset/pkg/version"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

// NewRouter builds the gin engine: middlewares, observability endpoints and
// the authenticated API surface.
func NewRouter(cfg httpx.Http, logics *logic.Logics, rds *redis.Client) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	engine := gin.New()
	engine.Use(interceptor.CorsInterceptor())
	engine.Use(interceptor.ExceptionInterceptor)
	engine.Use(interceptor.UnifiedResponseInterceptor())
	if cfg.AccessLog {
		engine.Use(gin.LoggerWithFormatter(httpx.AccessLogFormat))
	}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
	engine.GET("/version", func(c *gin.Context) {
		c.JSON(200, version.GetVersion())
	})
	if cfg.ExposeMetrics {
		engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := engine.Group(cfg.ContextPath)
	api.Use(interceptor.AuthorizationInterceptor(cfg.Auth.SecretKey, cfg.Auth.RedisKeyPrefix, rds))

	registerFieldRoutes(api, logics)
	registerSchemaRoutes(api, logics)
	registerEntityRoutes(api, logics)
	registerFormRoutes(api, logics)

	return engine
}
