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
	"github.com/go-fieldset/fieldset/internal/engine/model"
	"github.com/go-fieldset/fieldset/pkg/database"
	"gorm.io/gorm"
)

type IFieldDefinitionRepository interface {
	Create(def *model.FieldDefinition) error
	Update(fieldId string, def *model.FieldDefinition) error
	Delete(fieldId string) error
	GetByFieldId(fieldId string) (*model.FieldDefinition, error)
	ListActive(appliesTo model.EntityType) ([]*model.FieldDefinition, error)
	List(appliesTo model.EntityType) ([]*model.FieldDefinition, error)
	ExistsName(name string, appliesTo model.EntityType, excludeFieldId string) (bool, error)
}

type FieldDefinitionRepo struct {
	database.IDatabase
}

func NewFieldDefinitionRepo(db database.IDatabase) IFieldDefinitionRepository {
	return &FieldDefinitionRepo{
		IDatabase: db,
	}
}

// Create inserts a field definition.
func (fdr *FieldDefinitionRepo) Create(def *model.FieldDefinition) error {
	return fdr.Database().Table(def.TableName()).Create(def).Error
}

// Update updates a field definition by field ID.
func (fdr *FieldDefinitionRepo) Update(fieldId string, def *model.FieldDefinition) error {
	return fdr.Database().Table(def.TableName()).
		Where("field_id = ?", fieldId).
		Omit("id", "field_id", "created_at").
		Select("name", "label", "type", "applies_to", "description", "options", "validation", "display_order", "active").
		Updates(def).Error
}

// Delete removes a field definition and cascades to its value rows.
func (fdr *FieldDefinitionRepo) Delete(fieldId string) error {
	return fdr.Database().Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(model.FieldValue{}.TableName()).
			Where("field_id = ?", fieldId).
			Delete(&model.FieldValue{}).Error; err != nil {
			return err
		}
		return tx.Table(model.FieldDefinition{}.TableName()).
			Where("field_id = ?", fieldId).
			Delete(&model.FieldDefinition{}).Error
	})
}

// GetByFieldId gets a field definition by field ID.
func (fdr *FieldDefinitionRepo) GetByFieldId(fieldId string) (*model.FieldDefinition, error) {
	var def model.FieldDefinition
	err := fdr.Database().Table(def.TableName()).
		Where("field_id = ?", fieldId).
		First(&def).Error
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// ListActive returns active definitions for one scope, ordered by display
// order ascending with insertion order breaking ties.
func (fdr *FieldDefinitionRepo) ListActive(appliesTo model.EntityType) ([]*model.FieldDefinition, error) {
	var defs []*model.FieldDefinition
	err := fdr.Database().Table(model.FieldDefinition{}.TableName()).
		Where("applies_to = ? AND active = ?", appliesTo, true).
		Order("display_order ASC, id ASC").
		Find(&defs).Error
	return defs, err
}

// List returns all definitions for one scope, active or not.
func (fdr *FieldDefinitionRepo) List(appliesTo model.EntityType) ([]*model.FieldDefinition, error) {
	var defs []*model.FieldDefinition
	err := fdr.Database().Table(model.FieldDefinition{}.TableName()).
		Where("applies_to = ?", appliesTo).
		Order("display_order ASC, id ASC").
		Find(&defs).Error
	return defs, err
}

// ExistsName checks whether another definition already uses (name, appliesTo).
func (fdr *FieldDefinitionRepo) ExistsName(name string, appliesTo model.EntityType, excludeFieldId string) (bool, error) {
	var count int64
	tx := fdr.Database().Table(model.FieldDefinition{}.TableName()).
		Where("name = ? AND applies_to = ?", name, appliesTo)
	if excludeFieldId != "" {
		tx = tx.Where("field_id <> ?", excludeFieldId)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
