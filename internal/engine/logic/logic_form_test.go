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
	"testing"

	"github.com/go-fieldset/fieldset/internal/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type formFixture struct {
	form       *FormLogic
	defs       *fakeDefinitionRepo
	values     *fakeValueRepo
	attributes *fakeAttributeRepo
	schema     *SchemaLogic
}

func newFormFixture() *formFixture {
	defs := newFakeDefinitionRepo()
	values := newFakeValueRepo(defs)
	attributes := newFakeAttributeRepo()
	schema := NewSchemaLogic(newFakeOptionRepo())
	return &formFixture{
		form:       NewFormLogic(defs, values, attributes, schema),
		defs:       defs,
		values:     values,
		attributes: attributes,
		schema:     schema,
	}
}

func (fx *formFixture) addDefinition(t *testing.T, def model.FieldDefinition) *model.FieldDefinition {
	t.Helper()
	dl := NewDefinitionLogic(fx.defs)
	created, err := dl.Create(&def)
	require.NoError(t, err)
	return created
}

func TestBuildProfileTabsNoDefinitionsLeavesTabsUnchanged(t *testing.T) {
	fx := newFormFixture()

	host := []model.FormTab{{Identifier: "general", Label: "General"}}
	tabs, err := fx.form.BuildProfileTabs(host, model.EntityTypeCustomer, "")
	require.NoError(t, err)
	require.Len(t, tabs, 1)
	assert.Equal(t, "general", tabs[0].Identifier)
}

func TestBuildProfileTabsAppendsOrderedFields(t *testing.T) {
	fx := newFormFixture()
	fx.addDefinition(t, model.FieldDefinition{
		Label: "Second", Type: model.FieldTypeText, AppliesTo: model.EntityTypeCustomer, Order: 2,
	})
	fx.addDefinition(t, model.FieldDefinition{
		Label: "First", Type: model.FieldTypeText, AppliesTo: model.EntityTypeCustomer, Order: 1,
	})

	tabs, err := fx.form.BuildProfileTabs(nil, model.EntityTypeCustomer, "")
	require.NoError(t, err)
	require.Len(t, tabs, 1)
	assert.Equal(t, model.TabIdentifierCustomFields, tabs[0].Identifier)
	require.Len(t, tabs[0].Fields, 2)
	assert.Equal(t, "first", tabs[0].Fields[0].Name)
	assert.Equal(t, "second", tabs[0].Fields[1].Name)
}

func TestBuildProfileTabsTieBreaksOnInsertionOrder(t *testing.T) {
	fx := newFormFixture()
	fx.addDefinition(t, model.FieldDefinition{
		Label: "Alpha", Type: model.FieldTypeText, AppliesTo: model.EntityTypeCustomer,
	})
	fx.addDefinition(t, model.FieldDefinition{
		Label: "Beta", Type: model.FieldTypeText, AppliesTo: model.EntityTypeCustomer,
	})

	tabs, err := fx.form.BuildProfileTabs(nil, model.EntityTypeCustomer, "")
	require.NoError(t, err)
	require.Len(t, tabs[0].Fields, 2)
	assert.Equal(t, "alpha", tabs[0].Fields[0].Name)
	assert.Equal(t, "beta", tabs[0].Fields[1].Name)
}

func TestBuildProfileTabsFillsEntityValues(t *testing.T) {
	fx := newFormFixture()
	def := fx.addDefinition(t, model.FieldDefinition{
		Label: "Tax ID", Type: model.FieldTypeText, AppliesTo: model.EntityTypeCustomer,
	})
	require.NoError(t, fx.values.Upsert(def.FieldId, "42", model.EntityTypeCustomer, "FR-123"))

	tabs, err := fx.form.BuildProfileTabs(nil, model.EntityTypeCustomer, "42")
	require.NoError(t, err)
	assert.Equal(t, "FR-123", tabs[0].Fields[0].Value)

	tabs, err = fx.form.BuildProfileTabs(nil, model.EntityTypeCustomer, "")
	require.NoError(t, err)
	assert.Equal(t, "", tabs[0].Fields[0].Value)
}

func TestBuildProfileTabsSkipsInactiveDefinitions(t *testing.T) {
	fx := newFormFixture()
	dl := NewDefinitionLogic(fx.defs)
	created, err := dl.Create(&model.FieldDefinition{
		Label: "Hidden", Type: model.FieldTypeText, AppliesTo: model.EntityTypeCustomer, Active: true,
	})
	require.NoError(t, err)
	created.Active = false
	_, err = dl.Update(created.FieldId, created)
	require.NoError(t, err)

	tabs, err := fx.form.BuildProfileTabs(nil, model.EntityTypeCustomer, "")
	require.NoError(t, err)
	assert.Empty(t, tabs)
}

func TestBuildProfileTabsDecodesSelectOptions(t *testing.T) {
	fx := newFormFixture()
	fx.addDefinition(t, model.FieldDefinition{
		Label:     "Plan",
		Type:      model.FieldTypeSelect,
		AppliesTo: model.EntityTypeCustomer,
		Options:   datatypes.JSON(`[{"value":"basic","label":"Basic"},{"value":"pro","label":"Pro"}]`),
	})

	tabs, err := fx.form.BuildProfileTabs(nil, model.EntityTypeCustomer, "")
	require.NoError(t, err)
	require.Len(t, tabs[0].Fields, 1)
	opts := tabs[0].Fields[0].Options
	require.Len(t, opts, 2)
	assert.Equal(t, "basic", opts[0].Value)
	assert.Equal(t, "pro", opts[1].Value)
}

func TestBuildConfigTabsEmptySchemaLeavesTabsUnchanged(t *testing.T) {
	fx := newFormFixture()

	host := []model.FormTab{{Identifier: "general", Label: "General"}}
	tabs, err := fx.form.BuildConfigTabs(host, "", model.EntityTypeCustomer)
	require.NoError(t, err)
	require.Len(t, tabs, 1)
	assert.Equal(t, "general", tabs[0].Identifier)
}

func TestBuildConfigTabsFillsDocumentValues(t *testing.T) {
	fx := newFormFixture()
	_, err := fx.schema.Set([]byte(`[
		{"label":"Tax ID","type":"text"},
		{"label":"Plan","type":"text"}
	]`))
	require.NoError(t, err)
	require.NoError(t, fx.attributes.MergeData("42", model.EntityTypeCustomer, map[string]string{"tax_id": "FR-123"}))

	tabs, err := fx.form.BuildConfigTabs(nil, "42", model.EntityTypeCustomer)
	require.NoError(t, err)
	require.Len(t, tabs, 1)
	require.Len(t, tabs[0].Fields, 2)
	assert.Equal(t, "FR-123", tabs[0].Fields[0].Value)
	assert.Equal(t, "", tabs[0].Fields[1].Value)
}
