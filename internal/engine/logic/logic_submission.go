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
	"github.com/go-fieldset/fieldset/pkg/log"
	"github.com/spf13/cast"
)

// WrapperKeyCustomFields is the submission key under which front ends may nest
// dynamic values. Submissions without the wrapper are read flat.
const WrapperKeyCustomFields = "custom_fields"

// SubmissionLogic reconciles submitted form payloads against the stored
// declarations and persists the recognized values.
type SubmissionLogic struct {
	definitions repo.IFieldDefinitionRepository
	values      repo.IFieldValueRepository
	attributes  repo.IEntityAttributeRepository
	schema      *SchemaLogic
}

func NewSubmissionLogic(definitions repo.IFieldDefinitionRepository, values repo.IFieldValueRepository,
	attributes repo.IEntityAttributeRepository, schema *SchemaLogic) *SubmissionLogic {
	return &SubmissionLogic{
		definitions: definitions,
		values:      values,
		attributes:  attributes,
		schema:      schema,
	}
}

// extractPayload returns the mapping to read dynamic values from: the nested
// wrapper object when the submission carries one, otherwise the submission
// itself.
func extractPayload(form map[string]interface{}) map[string]interface{} {
	if nested, ok := form[WrapperKeyCustomFields].(map[string]interface{}); ok {
		return nested
	}
	return form
}

// ReconcileProfile persists the definition-backed values found in a submitted
// form. Only keys matching an active definition of the scope are considered;
// a present key is written even when its value is empty, an absent key leaves
// the stored value untouched.
func (sl *SubmissionLogic) ReconcileProfile(entityId string, entityType model.EntityType, form map[string]interface{}) error {
	if !entityType.Valid() {
		return &errs.ValidationError{Field: "entityType", Reason: "unknown entity type " + string(entityType)}
	}

	defs, err := sl.definitions.ListActive(entityType)
	if err != nil {
		return err
	}
	payload := extractPayload(form)

	for _, def := range defs {
		raw, present := payload[def.Name]
		if !present {
			continue
		}
		value := ""
		if raw != nil {
			value = cast.ToString(raw)
		}
		if err := sl.values.Upsert(def.FieldId, entityId, entityType, value); err != nil {
			return err
		}
	}
	return nil
}

// ReconcileDocument persists the schema-backed values found in a submitted
// form into the entity's document and returns the merged result. Keys absent
// from the submission survive the write. A submission carrying no recognized
// key writes nothing. Uniqueness is checked for every marked field before the
// first write so a rejected submission leaves the document untouched.
func (sl *SubmissionLogic) ReconcileDocument(entityId string, entityType model.EntityType, form map[string]interface{}) (map[string]string, error) {
	if !entityType.Valid() {
		return nil, &errs.ValidationError{Field: "entityType", Reason: "unknown entity type " + string(entityType)}
	}

	schema, err := sl.schema.Get()
	if err != nil {
		return nil, err
	}
	payload := extractPayload(form)

	partial := make(map[string]string)
	for _, sf := range schema {
		raw, present := payload[sf.Name]
		if !present {
			continue
		}
		value := ""
		if raw != nil {
			value = cast.ToString(raw)
		}
		partial[sf.Name] = value
	}
	if len(partial) == 0 {
		return sl.attributes.GetData(entityId, entityType)
	}

	for _, sf := range schema {
		if !sf.Unique {
			continue
		}
		value, present := partial[sf.Name]
		if !present || value == "" {
			continue
		}
		conflictId, found, err := sl.attributes.FindConflict(sf.Name, value, entityType, entityId)
		if err != nil {
			return nil, err
		}
		if found {
			return nil, &errs.UniquenessViolation{
				FieldName:        sf.Name,
				FieldLabel:       sf.Label,
				ConflictEntityId: conflictId,
			}
		}
	}

	if err := sl.attributes.MergeData(entityId, entityType, partial); err != nil {
		return nil, err
	}
	log.Debugw("entity document merged", "entityId", entityId, "entityType", entityType, "keys", len(partial))
	return sl.attributes.GetData(entityId, entityType)
}

// GetDocument returns the stored document of one entity, empty when the
// entity was never written.
func (sl *SubmissionLogic) GetDocument(entityId string, entityType model.EntityType) (map[string]string, error) {
	if !entityType.Valid() {
		return nil, &errs.ValidationError{Field: "entityType", Reason: "unknown entity type " + string(entityType)}
	}
	return sl.attributes.GetData(entityId, entityType)
}

// Search returns the entities of one class whose document holds value under
// the named field.
func (sl *SubmissionLogic) Search(fieldName, value string, entityType model.EntityType) ([]*model.EntityAttribute, error) {
	if !entityType.Valid() {
		return nil, &errs.ValidationError{Field: "entityType", Reason: "unknown entity type " + string(entityType)}
	}
	if fieldName == "" {
		return nil, &errs.ValidationError{Field: "field", Reason: "field name must not be empty"}
	}
	return sl.attributes.SearchByField(fieldName, value, entityType)
}

// AttachCustomFields returns a copy of payload with the entity's stored
// document added under the wrapper key, used to decorate host API responses.
func (sl *SubmissionLogic) AttachCustomFields(entityId string, entityType model.EntityType, payload map[string]interface{}) (map[string]interface{}, error) {
	doc, err := sl.GetDocument(entityId, entityType)
	if err != nil {
		return nil, err
	}
	out := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		out[k] = v
	}
	out[WrapperKeyCustomFields] = doc
	return out, nil
}

// StripDynamicKeys returns a copy of form without the given dynamic keys,
// removing them both at the top level and inside the wrapper object. The
// input mapping is not modified.
func StripDynamicKeys(form map[string]interface{}, names []string) map[string]interface{} {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}

	out := make(map[string]interface{}, len(form))
	for k, v := range form {
		if _, hit := drop[k]; hit {
			continue
		}
		if k == WrapperKeyCustomFields {
			if nested, ok := v.(map[string]interface{}); ok {
				kept := make(map[string]interface{}, len(nested))
				for nk, nv := range nested {
					if _, hit := drop[nk]; !hit {
						kept[nk] = nv
					}
				}
				out[k] = kept
				continue
			}
		}
		out[k] = v
	}
	return out
}

// StripProfileKeys removes the active definition names of one scope from a
// submitted form, leaving only the host entity's own columns.
func (sl *SubmissionLogic) StripProfileKeys(form map[string]interface{}, entityType model.EntityType) (map[string]interface{}, error) {
	defs, err := sl.definitions.ListActive(entityType)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	return StripDynamicKeys(form, names), nil
}
