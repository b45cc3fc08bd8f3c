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
	"fmt"
	"sort"

	"github.com/go-fieldset/fieldset/internal/engine/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// In-memory repository fakes backing the logic tests.

type fakeDefinitionRepo struct {
	defs   []*model.FieldDefinition
	nextId uint64
}

func newFakeDefinitionRepo() *fakeDefinitionRepo {
	return &fakeDefinitionRepo{}
}

func (f *fakeDefinitionRepo) Create(def *model.FieldDefinition) error {
	f.nextId++
	def.ID = f.nextId
	cp := *def
	f.defs = append(f.defs, &cp)
	return nil
}

func (f *fakeDefinitionRepo) Update(fieldId string, def *model.FieldDefinition) error {
	for i, d := range f.defs {
		if d.FieldId == fieldId {
			cp := *def
			cp.ID = d.ID
			cp.FieldId = d.FieldId
			f.defs[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeDefinitionRepo) Delete(fieldId string) error {
	kept := f.defs[:0]
	for _, d := range f.defs {
		if d.FieldId != fieldId {
			kept = append(kept, d)
		}
	}
	f.defs = kept
	return nil
}

func (f *fakeDefinitionRepo) GetByFieldId(fieldId string) (*model.FieldDefinition, error) {
	for _, d := range f.defs {
		if d.FieldId == fieldId {
			cp := *d
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDefinitionRepo) sorted(appliesTo model.EntityType, activeOnly bool) []*model.FieldDefinition {
	var out []*model.FieldDefinition
	for _, d := range f.defs {
		if d.AppliesTo != appliesTo {
			continue
		}
		if activeOnly && !d.Active {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (f *fakeDefinitionRepo) ListActive(appliesTo model.EntityType) ([]*model.FieldDefinition, error) {
	return f.sorted(appliesTo, true), nil
}

func (f *fakeDefinitionRepo) List(appliesTo model.EntityType) ([]*model.FieldDefinition, error) {
	return f.sorted(appliesTo, false), nil
}

func (f *fakeDefinitionRepo) ExistsName(name string, appliesTo model.EntityType, excludeFieldId string) (bool, error) {
	for _, d := range f.defs {
		if d.Name == name && d.AppliesTo == appliesTo && d.FieldId != excludeFieldId {
			return true, nil
		}
	}
	return false, nil
}

type fakeValueRepo struct {
	defs *fakeDefinitionRepo
	rows map[string]string // fieldId|entityId|entityType -> value
}

func newFakeValueRepo(defs *fakeDefinitionRepo) *fakeValueRepo {
	return &fakeValueRepo{
		defs: defs,
		rows: make(map[string]string),
	}
}

func valueKey(fieldId, entityId string, entityType model.EntityType) string {
	return fmt.Sprintf("%s|%s|%s", fieldId, entityId, entityType)
}

func (f *fakeValueRepo) GetEntityValues(entityId string, entityType model.EntityType) (map[string]string, error) {
	out := make(map[string]string)
	for _, d := range f.defs.defs {
		if v, ok := f.rows[valueKey(d.FieldId, entityId, entityType)]; ok {
			out[d.Name] = v
		}
	}
	return out, nil
}

func (f *fakeValueRepo) Upsert(fieldId, entityId string, entityType model.EntityType, value string) error {
	f.rows[valueKey(fieldId, entityId, entityType)] = value
	return nil
}

type fakeAttributeRepo struct {
	docs map[string]map[string]string // entityType|entityId -> document
}

func newFakeAttributeRepo() *fakeAttributeRepo {
	return &fakeAttributeRepo{
		docs: make(map[string]map[string]string),
	}
}

func docKey(entityId string, entityType model.EntityType) string {
	return fmt.Sprintf("%s|%s", entityType, entityId)
}

func (f *fakeAttributeRepo) GetData(entityId string, entityType model.EntityType) (map[string]string, error) {
	out := make(map[string]string)
	for k, v := range f.docs[docKey(entityId, entityType)] {
		out[k] = v
	}
	return out, nil
}

func (f *fakeAttributeRepo) MergeData(entityId string, entityType model.EntityType, partial map[string]string) error {
	key := docKey(entityId, entityType)
	doc := f.docs[key]
	if doc == nil {
		doc = make(map[string]string)
		f.docs[key] = doc
	}
	for k, v := range partial {
		doc[k] = v
	}
	return nil
}

func (f *fakeAttributeRepo) FindConflict(fieldName, value string, entityType model.EntityType, excludeEntityId string) (string, bool, error) {
	for k, doc := range f.docs {
		et, id, ok := splitDocKey(k)
		if !ok || et != entityType || id == excludeEntityId {
			continue
		}
		if doc[fieldName] == value {
			return id, true, nil
		}
	}
	return "", false, nil
}

func splitDocKey(key string) (model.EntityType, string, bool) {
	for i := 0; i < len(key); i++ {
		if key[i] == '|' {
			return model.EntityType(key[:i]), key[i+1:], true
		}
	}
	return "", "", false
}

func (f *fakeAttributeRepo) SearchByField(fieldName, value string, entityType model.EntityType) ([]*model.EntityAttribute, error) {
	var out []*model.EntityAttribute
	for k, doc := range f.docs {
		et, id, ok := splitDocKey(k)
		if !ok || et != entityType {
			continue
		}
		if doc[fieldName] != value {
			continue
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, &model.EntityAttribute{
			EntityId:     id,
			EntityType:   et,
			CustomFields: datatypes.JSON(raw),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntityId < out[j].EntityId })
	return out, nil
}

type fakeOptionRepo struct {
	values map[string]datatypes.JSON
}

func newFakeOptionRepo() *fakeOptionRepo {
	return &fakeOptionRepo{
		values: make(map[string]datatypes.JSON),
	}
}

func (f *fakeOptionRepo) Get(key string) (datatypes.JSON, error) {
	return f.values[key], nil
}

func (f *fakeOptionRepo) Set(key string, value datatypes.JSON) error {
	f.values[key] = value
	return nil
}
