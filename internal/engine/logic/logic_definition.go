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

package logic

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-fieldset/fieldset/internal/engine/errs"
	"github.com/go-fieldset/fieldset/internal/engine/model"
	"github.com/go-fieldset/fieldset/internal/engine/repo"
	"github.com/go-fieldset/fieldset/pkg/id"
	"github.com/go-fieldset/fieldset/pkg/log"
	"gorm.io/gorm"
)

var fieldNamePattern = regexp.MustCompile(`[^a-z0-9_]`)

// SanitizeFieldName normalizes a display label into a storage key. The input
// is lowercased and every character outside [a-z0-9_] becomes an underscore,
// one for one, so "Loyalty #1" yields "loyalty__1".
func SanitizeFieldName(raw string) string {
	return fieldNamePattern.ReplaceAllString(strings.ToLower(raw), "_")
}

// DefinitionLogic manages the normalized field-definition store.
type DefinitionLogic struct {
	definitions repo.IFieldDefinitionRepository
}

func NewDefinitionLogic(definitions repo.IFieldDefinitionRepository) *DefinitionLogic {
	return &DefinitionLogic{
		definitions: definitions,
	}
}

// Create validates and stores a new field definition, assigning its field id.
// The storage name is always derived on the server, from the given name when
// present and from the label otherwise. New definitions start active.
func (dl *DefinitionLogic) Create(def *model.FieldDefinition) (*model.FieldDefinition, error) {
	if err := dl.normalize(def); err != nil {
		return nil, err
	}

	exists, err := dl.definitions.ExistsName(def.Name, def.AppliesTo, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &errs.ValidationError{Field: def.Name, Reason: "a field with this name already exists for this scope"}
	}

	def.FieldId = id.GetUUID()
	def.Active = true
	if err := dl.definitions.Create(def); err != nil {
		return nil, err
	}
	log.Infow("field definition created", "fieldId", def.FieldId, "name", def.Name, "appliesTo", def.AppliesTo)
	return def, nil
}

// Update validates and rewrites an existing definition in place. The field id
// is immutable.
func (dl *DefinitionLogic) Update(fieldId string, def *model.FieldDefinition) (*model.FieldDefinition, error) {
	if _, err := dl.Get(fieldId); err != nil {
		return nil, err
	}

	if err := dl.normalize(def); err != nil {
		return nil, err
	}

	exists, err := dl.definitions.ExistsName(def.Name, def.AppliesTo, fieldId)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &errs.ValidationError{Field: def.Name, Reason: "a field with this name already exists for this scope"}
	}

	if err := dl.definitions.Update(fieldId, def); err != nil {
		return nil, err
	}
	return dl.Get(fieldId)
}

// Delete removes a definition together with all values stored under it.
func (dl *DefinitionLogic) Delete(fieldId string) error {
	if _, err := dl.Get(fieldId); err != nil {
		return err
	}
	if err := dl.definitions.Delete(fieldId); err != nil {
		return err
	}
	log.Infow("field definition deleted", "fieldId", fieldId)
	return nil
}

// Get returns one definition by field id.
func (dl *DefinitionLogic) Get(fieldId string) (*model.FieldDefinition, error) {
	def, err := dl.definitions.GetByFieldId(fieldId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &errs.NotFoundError{Resource: "field definition", Id: fieldId}
	}
	if err != nil {
		return nil, err
	}
	return def, nil
}

// List returns all definitions of one scope in display order.
func (dl *DefinitionLogic) List(appliesTo model.EntityType) ([]*model.FieldDefinition, error) {
	if !appliesTo.Valid() {
		return nil, &errs.ValidationError{Field: "appliesTo", Reason: "unknown entity type " + string(appliesTo)}
	}
	return dl.definitions.List(appliesTo)
}

func (dl *DefinitionLogic) normalize(def *model.FieldDefinition) error {
	if strings.TrimSpace(def.Label) == "" {
		return &errs.ValidationError{Field: "label", Reason: "label must not be empty"}
	}
	if !def.AppliesTo.Valid() {
		return &errs.ValidationError{Field: "appliesTo", Reason: "unknown entity type " + string(def.AppliesTo)}
	}
	if !def.Type.Valid() {
		return &errs.ValidationError{Field: "type", Reason: "unknown field type " + string(def.Type)}
	}

	source := def.Name
	if source == "" {
		source = def.Label
	}
	def.Name = SanitizeFieldName(source)
	if def.Name == "" {
		return &errs.ValidationError{Field: "name", Reason: "name is empty after sanitation"}
	}

	if def.Type == model.FieldTypeSelect {
		opts, err := def.OptionList()
		if err != nil {
			return &errs.ValidationError{Field: "options", Reason: "options must be a list of {value,label} records"}
		}
		if len(opts) == 0 {
			return &errs.ValidationError{Field: "options", Reason: "select fields need at least one option"}
		}
	} else {
		def.Options = nil
	}
	return nil
}
