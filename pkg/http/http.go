package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

/**
 * @file: http.go
 * @description: http server
 */

type Http struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Mode            string `mapstructure:"mode"`
	ContextPath     string `mapstructure:"contextPath"`
	AccessLog       bool   `mapstructure:"accessLog"`
	ExposeMetrics   bool   `mapstructure:"exposeMetrics"`
	ReadTimeout     int    `mapstructure:"readTimeout"`
	WriteTimeout    int    `mapstructure:"writeTimeout"`
	IdleTimeout     int    `mapstructure:"idleTimeout"`
	ShutdownTimeout int    `mapstructure:"shutdownTimeout"`
	TLS             TLS    `mapstructure:"tls"`
	Auth            Auth   `mapstructure:"auth"`
}

type TLS struct {
	CertFile string `mapstructure:"certFile"`
	KeyFile  string `mapstructure:"keyFile"`
}

type Auth struct {
	SecretKey      string        `mapstructure:"secretKey"`
	AccessExpire   time.Duration `mapstructure:"accessExpire"`
	RefreshExpire  time.Duration `mapstructure:"refreshExpire"`
	RedisKeyPrefix string        `mapstructure:"redisKeyPrefix"`
}

// NewHttp starts the http server and returns a blocking shutdown hook.
func NewHttp(cfg Http, engine *gin.Engine) func() {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
	}

	go func() {
		fmt.Printf("[Init] http server start at: %s\n", srv.Addr)
		var err error
		if cfg.TLS.CertFile != "" && cfg.TLS.KeyFile != "" {
			err = srv.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Printf("[Error] http server error: %v\n", err)
			os.Exit(1)
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	return createShutdownHook(srv, cfg.ShutdownTimeout, sc)
}

func createShutdownHook(server *http.Server, shutdownTimeout int, signalChan chan os.Signal) func() {
	return func() {
		<-signalChan
		fmt.Println("[Shutdown] http server shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownTimeout)*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			fmt.Printf("[Error] server shutdown error: %v\n", err)
		} else {
			fmt.Println("[Shutdown] http server shut down gracefully.")
		}
	}
}
