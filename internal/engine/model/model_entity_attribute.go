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

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// EntityAttribute holds one JSON document of custom-field values per entity
// instance. Keys not present in the current field schema may linger after a
// field is removed; they are not purged.
type EntityAttribute struct {
	BaseModel
	EntityId     string         `gorm:"column:entity_id;uniqueIndex:uk_entity" json:"entityId"`
	EntityType   EntityType     `gorm:"column:entity_type;uniqueIndex:uk_entity" json:"entityType"`
	CustomFields datatypes.JSON `gorm:"column:custom_fields" json:"customFields"`
}

func (EntityAttribute) TableName() string {
	return "t_entity_attribute"
}

// Data decodes the stored document into a field-name → value mapping.
// A missing or empty document decodes to an empty mapping.
func (a *EntityAttribute) Data() (map[string]string, error) {
	data := map[string]string{}
	if len(a.CustomFields) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(a.CustomFields, &data); err != nil {
		return nil, err
	}
	return data, nil
}
