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
	"encoding/json"
	"strings"

	"github.com/go-fieldset/fieldset/internal/engine/errs"
	"github.com/go-fieldset/fieldset/internal/engine/model"
	"github.com/go-fieldset/fieldset/internal/engine/repo"
	"github.com/go-fieldset/fieldset/pkg/log"
	"gorm.io/datatypes"
)

// OptionKeyCustomFieldsConfig is the option-table key holding the global
// config-driven field schema.
const OptionKeyCustomFieldsConfig = "custom_fields_config"

// SchemaLogic manages the config-driven global field schema, a single ordered
// JSON array stored in the option table.
type SchemaLogic struct {
	options repo.IOptionRepository
}

func NewSchemaLogic(options repo.IOptionRepository) *SchemaLogic {
	return &SchemaLogic{
		options: options,
	}
}

// Get returns the stored schema in declaration order. A missing option yields
// an empty schema; a stored document that no longer parses is a format error,
// never silently treated as empty.
func (sl *SchemaLogic) Get() ([]model.SchemaField, error) {
	raw, err := sl.options.Get(OptionKeyCustomFieldsConfig)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []model.SchemaField{}, nil
	}

	var fields []model.SchemaField
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, &errs.ConfigFormatError{Cause: err}
	}
	return fields, nil
}

// Set validates raw as a schema document and replaces the stored schema
// wholesale. Field names are sanitized server side, derived from the label
// when absent. The whole document is rejected on the first invalid record.
func (sl *SchemaLogic) Set(raw []byte) ([]model.SchemaField, error) {
	var fields []model.SchemaField
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, &errs.ConfigFormatError{Cause: err}
	}

	seen := make(map[string]struct{}, len(fields))
	for i := range fields {
		f := &fields[i]
		if strings.TrimSpace(f.Label) == "" {
			return nil, &errs.ValidationError{Field: f.Name, Reason: "label must not be empty"}
		}

		source := f.Name
		if source == "" {
			source = f.Label
		}
		f.Name = SanitizeFieldName(source)
		if f.Name == "" {
			return nil, &errs.ValidationError{Field: f.Label, Reason: "name is empty after sanitation"}
		}

		if !f.Type.ValidForSchema() {
			return nil, &errs.ValidationError{Field: f.Name, Reason: "unknown field type " + string(f.Type)}
		}
		if _, dup := seen[f.Name]; dup {
			return nil, &errs.ValidationError{Field: f.Name, Reason: "duplicate field name in schema"}
		}
		seen[f.Name] = struct{}{}
	}

	doc, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	if err := sl.options.Set(OptionKeyCustomFieldsConfig, datatypes.JSON(doc)); err != nil {
		return nil, err
	}
	log.Infow("field schema replaced", "fields", len(fields))
	return fields, nil
}

// FieldNames returns the storage keys of the current schema in order.
func (sl *SchemaLogic) FieldNames() ([]string, error) {
	fields, err := sl.Get()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	return names, nil
}
