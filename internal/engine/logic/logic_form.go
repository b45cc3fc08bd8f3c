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
	"github.com/go-fieldset/fieldset/internal/engine/errs"
	"github.com/go-fieldset/fieldset/internal/engine/model"
	"github.com/go-fieldset/fieldset/internal/engine/repo"
)

// TabLabelCustomFields is the display label of the injected tab.
const TabLabelCustomFields = "Custom Fields"

// FormLogic turns stored field declarations into render-ready form
// descriptors and appends them to a host form's tab list.
type FormLogic struct {
	definitions repo.IFieldDefinitionRepository
	values      repo.IFieldValueRepository
	attributes  repo.IEntityAttributeRepository
	schema      *SchemaLogic
}

func NewFormLogic(definitions repo.IFieldDefinitionRepository, values repo.IFieldValueRepository,
	attributes repo.IEntityAttributeRepository, schema *SchemaLogic) *FormLogic {
	return &FormLogic{
		definitions: definitions,
		values:      values,
		attributes:  attributes,
		schema:      schema,
	}
}

// BuildProfileTabs appends a tab built from the active definitions of one
// scope. When entityId is non-empty the fields carry that entity's stored
// values. With no active definitions the tab list is returned unchanged, no
// empty tab is appended.
func (fl *FormLogic) BuildProfileTabs(tabs []model.FormTab, appliesTo model.EntityType, entityId string) ([]model.FormTab, error) {
	if !appliesTo.Valid() {
		return nil, &errs.ValidationError{Field: "appliesTo", Reason: "unknown entity type " + string(appliesTo)}
	}

	defs, err := fl.definitions.ListActive(appliesTo)
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return tabs, nil
	}

	values := map[string]string{}
	if entityId != "" {
		values, err = fl.values.GetEntityValues(entityId, appliesTo)
		if err != nil {
			return nil, err
		}
	}

	fields := make([]model.FormField, 0, len(defs))
	for _, def := range defs {
		if !def.Type.Valid() {
			return nil, &errs.ValidationError{Field: def.Name, Reason: "unknown field type " + string(def.Type)}
		}
		opts, err := def.OptionList()
		if err != nil {
			return nil, &errs.ValidationError{Field: def.Name, Reason: "stored options are malformed"}
		}
		fields = append(fields, model.FormField{
			Label:       def.Label,
			Name:        def.Name,
			Value:       values[def.Name],
			Type:        def.Type,
			Description: def.Description,
			Validation:  def.Validation,
			Options:     opts,
		})
	}

	return append(tabs, model.FormTab{
		Identifier: model.TabIdentifierCustomFields,
		Label:      TabLabelCustomFields,
		Fields:     fields,
	}), nil
}

// BuildConfigTabs appends a tab built from the config-driven global schema.
// When entityId is non-empty the fields carry the values of that entity's
// document. An empty schema leaves the tab list unchanged.
func (fl *FormLogic) BuildConfigTabs(tabs []model.FormTab, entityId string, entityType model.EntityType) ([]model.FormTab, error) {
	schema, err := fl.schema.Get()
	if err != nil {
		return nil, err
	}
	if len(schema) == 0 {
		return tabs, nil
	}

	values := map[string]string{}
	if entityId != "" {
		values, err = fl.attributes.GetData(entityId, entityType)
		if err != nil {
			return nil, err
		}
	}

	fields := make([]model.FormField, 0, len(schema))
	for _, sf := range schema {
		if !sf.Type.ValidForSchema() {
			return nil, &errs.ValidationError{Field: sf.Name, Reason: "unknown field type " + string(sf.Type)}
		}
		fields = append(fields, model.FormField{
			Label:       sf.Label,
			Name:        sf.Name,
			Value:       values[sf.Name],
			Type:        sf.Type,
			Description: sf.Description,
		})
	}

	return append(tabs, model.FormTab{
		Identifier: model.TabIdentifierCustomFields,
		Label:      TabLabelCustomFields,
		Fields:     fields,
	}), nil
}
