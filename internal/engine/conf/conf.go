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

package conf

import (
	"github.com/go-fieldset/fieldset/pkg/cache"
	"github.com/go-fieldset/fieldset/pkg/conf"
	"github.com/go-fieldset/fieldset/pkg/database"
	httpx "github.com/go-fieldset/fieldset/pkg/http"
	"github.com/go-fieldset/fieldset/pkg/log"
)

// AppConfig is the root configuration of the engine.
type AppConfig struct {
	Log      log.Conf          `mapstructure:"log"`
	Http     httpx.Http        `mapstructure:"http"`
	Database database.Database `mapstructure:"database"`
	Redis    cache.Redis       `mapstructure:"redis"`
}

// NewConf loads the configuration file.
func NewConf(confFile string) (*AppConfig, error) {
	var cfg AppConfig
	if _, err := conf.LoadConfigFile(confFile, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
