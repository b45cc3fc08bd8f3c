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

package model

// FieldValue is one stored value of a field definition against one entity
// instance. The payload is always text; type semantics are presentational.
type FieldValue struct {
	BaseModel
	FieldId    string     `gorm:"column:field_id;uniqueIndex:uk_field_entity" json:"fieldId"`
	EntityId   string     `gorm:"column:entity_id;uniqueIndex:uk_field_entity;index:idx_entity" json:"entityId"`
	EntityType EntityType `gorm:"column:entity_type;uniqueIndex:uk_field_entity;index:idx_entity" json:"entityType"`
	Value      string     `gorm:"column:value;type:text" json:"value"`
}

func (FieldValue) TableName() string {
	return "t_custom_field_value"
}
