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

// Package bootstrap wires configuration, storage, logic and transport into a
// running engine.
package bootstrap

import (
	"fmt"

	"github.com/go-fieldset/fieldset/internal/engine/conf"
	"github.com/go-fieldset/fieldset/internal/engine/listener"
	"github.com/go-fieldset/fieldset/internal/engine/logic"
	"github.com/go-fieldset/fieldset/internal/engine/model"
	"github.com/go-fieldset/fieldset/internal/engine/repo"
	"github.com/go-fieldset/fieldset/internal/engine/router"
	"github.com/go-fieldset/fieldset/pkg/cache"
	"github.com/go-fieldset/fieldset/pkg/database"
	"github.com/go-fieldset/fieldset/pkg/event"
	httpx "github.com/go-fieldset/fieldset/pkg/http"
	"github.com/go-fieldset/fieldset/pkg/log"
	"github.com/go-fieldset/fieldset/pkg/version"
)

// App holds the wired application.
type App struct {
	Config *conf.AppConfig
	Logics *logic.Logics
	Bus    *event.EventBus

	shutdown func()
}

// NewApp loads configuration and wires every layer. It returns the app ready
// to Run.
func NewApp(confFile string) (*App, error) {
	cfg, err := conf.NewConf(confFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log.MustInit(&cfg.Log)
	log.Infof("fieldset %s starting", version.Version)

	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := db.AutoMigrate(
		&model.FieldDefinition{},
		&model.FieldValue{},
		&model.EntityAttribute{},
		&model.Option{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	rds, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	repos := repo.NewRepositories(database.NewGormDB(db), cache.NewRedisCache(rds))
	logics := logic.NewLogics(repos)

	bus := event.NewEventBus()
	listener.NewEntityListener(logics.Submission).Register(bus)

	engine := router.NewRouter(cfg.Http, logics, rds)
	shutdown := httpx.NewHttp(cfg.Http, engine)

	return &App{
		Config:   cfg,
		Logics:   logics,
		Bus:      bus,
		shutdown: shutdown,
	}, nil
}

// Run blocks until the server is told to shut down.
func (a *App) Run() {
	a.shutdown()
}
