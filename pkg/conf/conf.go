package conf

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-fieldset/fieldset/pkg/log"
	"github.com/spf13/viper"
)

/**
 * @file: conf.go
 * @description: configuration file loading
 */

func init() {
	viper.AutomaticEnv()
}

// LoadConfigFile reads a TOML configuration file into cfg and re-parses it
// whenever the file changes on disk.
func LoadConfigFile(confFile string, cfg interface{}) (interface{}, error) {
	cfgValue := reflect.ValueOf(cfg)
	if cfgValue.Kind() != reflect.Ptr || cfgValue.IsNil() {
		return nil, errors.New("cfg must be a non-nil pointer")
	}

	vCfg := viper.New()
	vCfg.SetConfigFile(confFile)
	vCfg.SetConfigType("toml")

	if err := vCfg.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %v", err)
	}

	vCfg.WatchConfig()
	vCfg.OnConfigChange(func(e fsnotify.Event) {
		log.Infof("configuration changed, re-parsing: %s", e.Name)
		if err := vCfg.Unmarshal(cfg); err != nil {
			log.Errorf("failed to unmarshal configuration file: %v", err)
		}
	})
	if err := vCfg.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration file: %v", err)
	}

	return cfgValue.Interface(), nil
}

func GetString(key string) string {
	return viper.GetString(key)
}

func GetInt(key string) int {
	return viper.GetInt(key)
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
