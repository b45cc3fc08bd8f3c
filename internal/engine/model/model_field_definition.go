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

// EntityType identifies which entity class a field decorates or a value belongs to.
type EntityType string

const (
	EntityTypeUser     EntityType = "user"
	EntityTypeCustomer EntityType = "customer"
)

// Valid reports whether the entity type is one of the known classes.
func (t EntityType) Valid() bool {
	return t == EntityTypeUser || t == EntityTypeCustomer
}

// FieldType is the closed set of renderable input types. Unknown types are an
// error everywhere they are consumed, never silently dropped.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeNumber   FieldType = "number"
	FieldTypeEmail    FieldType = "email"
	FieldTypeSelect   FieldType = "select"
	FieldTypeDatetime FieldType = "datetime"
	FieldTypeSwitch   FieldType = "switch"
	FieldTypeMedia    FieldType = "media"
	FieldTypeDate     FieldType = "date"
)

// Valid reports whether the field type belongs to the definition-store set.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeNumber, FieldTypeEmail,
		FieldTypeSelect, FieldTypeDatetime, FieldTypeSwitch, FieldTypeMedia:
		return true
	}
	return false
}

// ValidForSchema reports whether the field type belongs to the narrower set
// allowed in the config-driven schema document.
func (t FieldType) ValidForSchema() bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeNumber, FieldTypeEmail, FieldTypeDate:
		return true
	}
	return false
}

// FieldOption is one selectable option of a select field, ordered.
type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldDefinition is the stored schema of one dynamic field.
type FieldDefinition struct {
	BaseModel
	FieldId     string         `gorm:"column:field_id;uniqueIndex" json:"fieldId"`
	Name        string         `gorm:"column:name;uniqueIndex:uk_name_applies_to" json:"name"`
	Label       string         `gorm:"column:label" json:"label"`
	Type        FieldType      `gorm:"column:type;default:'text'" json:"type"`
	AppliesTo   EntityType     `gorm:"column:applies_to;uniqueIndex:uk_name_applies_to" json:"appliesTo"`
	Description string         `gorm:"column:description;type:text" json:"description"`
	Options     datatypes.JSON `gorm:"column:options" json:"options,omitempty"` // ordered [{value,label}] list, select fields only
	Validation  string         `gorm:"column:validation" json:"validation"`
	Order       int            `gorm:"column:display_order;default:0" json:"order"`
	Active      bool           `gorm:"column:active;default:true" json:"active"`
}

func (FieldDefinition) TableName() string {
	return "t_custom_field_definition"
}

// OptionList decodes the stored options column.
func (d *FieldDefinition) OptionList() ([]FieldOption, error) {
	if len(d.Options) == 0 {
		return nil, nil
	}
	var opts []FieldOption
	if err := json.Unmarshal(d.Options, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}
