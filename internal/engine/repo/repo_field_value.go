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
	"gorm.io/gorm/clause"
)

type IFieldValueRepository interface {
	GetEntityValues(entityId string, entityType model.EntityType) (map[string]string, error)
	Upsert(fieldId, entityId string, entityType model.EntityType, value string) error
}

type FieldValueRepo struct {
	database.IDatabase
}

func NewFieldValueRepo(db database.IDatabase) IFieldValueRepository {
	return &FieldValueRepo{
		IDatabase: db,
	}
}

// GetEntityValues returns a fieldName → value mapping for one entity,
// joining against the definition table to translate field ids to names.
func (fvr *FieldValueRepo) GetEntityValues(entityId string, entityType model.EntityType) (map[string]string, error) {
	type row struct {
		Name  string
		Value string
	}
	var rows []row
	err := fvr.Database().Table(model.FieldValue{}.TableName()+" AS v").
		Select("d.name AS name, v.value AS value").
		Joins("JOIN "+model.FieldDefinition{}.TableName()+" AS d ON d.field_id = v.field_id").
		Where("v.entity_id = ? AND v.entity_type = ?", entityId, entityType).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(rows))
	for _, r := range rows {
		values[r.Name] = r.Value
	}
	return values, nil
}

// Upsert writes the value of one (field, entity, entityType) triple. The
// write is a single INSERT ... ON DUPLICATE KEY UPDATE statement, so
// concurrent writers resolve to last-write-wins without duplicating rows.
func (fvr *FieldValueRepo) Upsert(fieldId, entityId string, entityType model.EntityType, value string) error {
	fv := model.FieldValue{
		FieldId:    fieldId,
		EntityId:   entityId,
		EntityType: entityType,
		Value:      value,
	}
	return fvr.Database().Table(fv.TableName()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "field_id"}, {Name: "entity_id"}, {Name: "entity_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&fv).Error
}
