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
	"encoding/json"
	"errors"

	"github.com/go-fieldset/fieldset/internal/engine/model"
	"github.com/go-fieldset/fieldset/pkg/database"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IEntityAttributeRepository interface {
	GetData(entityId string, entityType model.EntityType) (map[string]string, error)
	MergeData(entityId string, entityType model.EntityType, partial map[string]string) error
	FindConflict(fieldName, value string, entityType model.EntityType, excludeEntityId string) (string, bool, error)
	SearchByField(fieldName, value string, entityType model.EntityType) ([]*model.EntityAttribute, error)
}

type EntityAttributeRepo struct {
	database.IDatabase
}

func NewEntityAttributeRepo(db database.IDatabase) IEntityAttributeRepository {
	return &EntityAttributeRepo{
		IDatabase: db,
	}
}

// GetData returns the stored document of one entity as a mapping.
// An entity without a document yields an empty mapping.
func (ear *EntityAttributeRepo) GetData(entityId string, entityType model.EntityType) (map[string]string, error) {
	var attr model.EntityAttribute
	err := ear.Database().Table(attr.TableName()).
		Where("entity_id = ? AND entity_type = ?", entityId, entityType).
		First(&attr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return attr.Data()
}

// MergeData merges partial into the entity's document and persists the result.
// Keys absent from partial keep their stored value; present keys overwrite,
// empty strings included. The merge runs as one INSERT ... ON DUPLICATE KEY
// UPDATE with JSON_MERGE_PATCH so concurrent merges are not lost between a
// read and a write.
func (ear *EntityAttributeRepo) MergeData(entityId string, entityType model.EntityType, partial map[string]string) error {
	doc, err := json.Marshal(partial)
	if err != nil {
		return err
	}

	attr := model.EntityAttribute{
		EntityId:     entityId,
		EntityType:   entityType,
		CustomFields: datatypes.JSON(doc),
	}
	return ear.Database().Table(attr.TableName()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "entity_id"}, {Name: "entity_type"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"custom_fields": gorm.Expr("JSON_MERGE_PATCH(COALESCE(custom_fields, '{}'), ?)", string(doc)),
			}),
		}).
		Create(&attr).Error
}

// FindConflict looks for another entity of the same class whose document holds
// the same value under fieldName. It returns the conflicting entity id.
func (ear *EntityAttributeRepo) FindConflict(fieldName, value string, entityType model.EntityType, excludeEntityId string) (string, bool, error) {
	var attr model.EntityAttribute
	err := ear.Database().Table(attr.TableName()).
		Where("entity_type = ? AND entity_id <> ?", entityType, excludeEntityId).
		Where(datatypes.JSONQuery("custom_fields").Equals(value, fieldName)).
		First(&attr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return attr.EntityId, true, nil
}

// SearchByField returns all entities of one class whose document holds the
// given value under fieldName.
func (ear *EntityAttributeRepo) SearchByField(fieldName, value string, entityType model.EntityType) ([]*model.EntityAttribute, error) {
	var attrs []*model.EntityAttribute
	err := ear.Database().Table(model.EntityAttribute{}.TableName()).
		Where("entity_type = ?", entityType).
		Where(datatypes.JSONQuery("custom_fields").Equals(value, fieldName)).
		Order("entity_id ASC").
		Find(&attrs).Error
	return attrs, err
}
