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

package repo

import (
	"context"
	"errors"
	"time"

	"github.com/go-fieldset/fieldset/internal/engine/model"
	"github.com/go-fieldset/fieldset/pkg/cache"
	"github.com/go-fieldset/fieldset/pkg/database"
	"github.com/go-fieldset/fieldset/pkg/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	optionCacheKeyPrefix = "fieldset:option:"
	optionCacheTTL       = 5 * time.Minute
)

type IOptionRepository interface {
	Get(key string) (datatypes.JSON, error)
	Set(key string, value datatypes.JSON) error
}

type OptionRepo struct {
	database.IDatabase
	cache cache.ICache
}

func NewOptionRepo(db database.IDatabase, c cache.ICache) IOptionRepository {
	return &OptionRepo{
		IDatabase: db,
		cache:     c,
	}
}

// Get returns the stored value for key, nil when the key was never written.
// Reads go through the cache; a cache miss or cache error falls back to the
// database.
func (or *OptionRepo) Get(key string) (datatypes.JSON, error) {
	if or.cache != nil {
		cached, err := or.cache.Get(context.Background(), optionCacheKeyPrefix+key)
		if err != nil {
			log.Warnf("option cache get %s: %v", key, err)
		} else if cached != "" {
			return datatypes.JSON(cached), nil
		}
	}

	var opt model.Option
	err := or.Database().Table(opt.TableName()).
		Where("option_key = ?", key).
		First(&opt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if or.cache != nil && len(opt.Value) > 0 {
		if err := or.cache.Set(context.Background(), optionCacheKeyPrefix+key, string(opt.Value), optionCacheTTL); err != nil {
			log.Warnf("option cache set %s: %v", key, err)
		}
	}
	return opt.Value, nil
}

// Set writes the value for key, replacing any previous value, and invalidates
// the cache entry.
func (or *OptionRepo) Set(key string, value datatypes.JSON) error {
	opt := model.Option{
		Key:   key,
		Value: value,
	}
	err := or.Database().Table(opt.TableName()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "option_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"option_value", "updated_at"}),
		}).
		Create(&opt).Error
	if err != nil {
		return err
	}

	if or.cache != nil {
		if err := or.cache.Del(context.Background(), optionCacheKeyPrefix+key); err != nil {
			log.Warnf("option cache del %s: %v", key, err)
		}
	}
	return nil
}
