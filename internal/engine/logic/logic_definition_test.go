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

	"github.com/go-fieldset/fieldset/internal/engine/errs"
	"github.com/go-fieldset/fieldset/internal/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestSanitizeFieldName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Loyalty #1", "loyalty__1"},
		{"Tax ID", "tax_id"},
		{"already_clean", "already_clean"},
		{"UPPER", "upper"},
		{"dots.and-dashes", "dots_and_dashes"},
		{"émail", "_mail"},
		{"a  b", "a__b"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SanitizeFieldName(c.in), "input %q", c.in)
	}
}

func newDefinitionLogic() (*DefinitionLogic, *fakeDefinitionRepo) {
	repo := newFakeDefinitionRepo()
	return NewDefinitionLogic(repo), repo
}

func TestDefinitionCreateDerivesNameFromLabel(t *testing.T) {
	dl, _ := newDefinitionLogic()

	created, err := dl.Create(&model.FieldDefinition{
		Label:     "Loyalty #1",
		Type:      model.FieldTypeText,
		AppliesTo: model.EntityTypeCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, "loyalty__1", created.Name)
	assert.NotEmpty(t, created.FieldId)
}

func TestDefinitionCreateSanitizesExplicitName(t *testing.T) {
	dl, _ := newDefinitionLogic()

	created, err := dl.Create(&model.FieldDefinition{
		Label:     "Tax",
		Name:      "Tax ID",
		Type:      model.FieldTypeText,
		AppliesTo: model.EntityTypeCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, "tax_id", created.Name)
}

func TestDefinitionCreateRejectsDuplicateName(t *testing.T) {
	dl, _ := newDefinitionLogic()

	_, err := dl.Create(&model.FieldDefinition{
		Label: "Tax ID", Type: model.FieldTypeText, AppliesTo: model.EntityTypeCustomer,
	})
	require.NoError(t, err)

	_, err = dl.Create(&model.FieldDefinition{
		Label: "tax id", Type: model.FieldTypeText, AppliesTo: model.EntityTypeCustomer,
	})
	assert.True(t, errs.IsValidation(err))
}

func TestDefinitionCreateAllowsSameNameAcrossScopes(t *testing.T) {
	dl, _ := newDefinitionLogic()

	_, err := dl.Create(&model.FieldDefinition{
		Label: "Tax ID", Type: model.FieldTypeText, AppliesTo: model.EntityTypeCustomer,
	})
	require.NoError(t, err)

	_, err = dl.Create(&model.FieldDefinition{
		Label: "Tax ID", Type: model.FieldTypeText, AppliesTo: model.EntityTypeUser,
	})
	assert.NoError(t, err)
}

func TestDefinitionCreateRejectsUnknownType(t *testing.T) {
	dl, _ := newDefinitionLogic()

	_, err := dl.Create(&model.FieldDefinition{
		Label: "Broken", Type: "color", AppliesTo: model.EntityTypeCustomer,
	})
	assert.True(t, errs.IsValidation(err))
}

func TestDefinitionCreateSelectNeedsOptions(t *testing.T) {
	dl, _ := newDefinitionLogic()

	_, err := dl.Create(&model.FieldDefinition{
		Label: "Plan", Type: model.FieldTypeSelect, AppliesTo: model.EntityTypeCustomer,
	})
	assert.True(t, errs.IsValidation(err))

	created, err := dl.Create(&model.FieldDefinition{
		Label:     "Plan",
		Type:      model.FieldTypeSelect,
		AppliesTo: model.EntityTypeCustomer,
		Options:   datatypes.JSON(`[{"value":"basic","label":"Basic"}]`),
	})
	require.NoError(t, err)
	opts, err := created.OptionList()
	require.NoError(t, err)
	assert.Len(t, opts, 1)
}

func TestDefinitionCreateClearsOptionsOnNonSelect(t *testing.T) {
	dl, _ := newDefinitionLogic()

	created, err := dl.Create(&model.FieldDefinition{
		Label:     "Notes",
		Type:      model.FieldTypeTextarea,
		AppliesTo: model.EntityTypeCustomer,
		Options:   datatypes.JSON(`[{"value":"x","label":"X"}]`),
	})
	require.NoError(t, err)
	assert.Empty(t, created.Options)
}

func TestDefinitionUpdateNotFound(t *testing.T) {
	dl, _ := newDefinitionLogic()

	_, err := dl.Update("missing", &model.FieldDefinition{
		Label: "Tax ID", Type: model.FieldTypeText, AppliesTo: model.EntityTypeCustomer,
	})
	assert.True(t, errs.IsNotFound(err))
}

func TestDefinitionUpdateKeepsOwnName(t *testing.T) {
	dl, _ := newDefinitionLogic()

	created, err := dl.Create(&model.FieldDefinition{
		Label: "Tax ID", Type: model.FieldTypeText, AppliesTo: model.EntityTypeCustomer,
	})
	require.NoError(t, err)

	updated, err := dl.Update(created.FieldId, &model.FieldDefinition{
		Label: "Tax ID", Type: model.FieldTypeText, AppliesTo: model.EntityTypeCustomer, Order: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, created.FieldId, updated.FieldId)
	assert.Equal(t, 5, updated.Order)
}

func TestDefinitionDelete(t *testing.T) {
	dl, repo := newDefinitionLogic()

	created, err := dl.Create(&model.FieldDefinition{
		Label: "Tax ID", Type: model.FieldTypeText, AppliesTo: model.EntityTypeCustomer,
	})
	require.NoError(t, err)

	require.NoError(t, dl.Delete(created.FieldId))
	assert.Empty(t, repo.defs)

	err = dl.Delete(created.FieldId)
	assert.True(t, errs.IsNotFound(err))
}

func TestDefinitionListIsDeterministic(t *testing.T) {
	dl, _ := newDefinitionLogic()

	for _, label := range []string{"Gamma", "Alpha", "Beta"} {
		_, err := dl.Create(&model.FieldDefinition{
			Label: label, Type: model.FieldTypeText, AppliesTo: model.EntityTypeUser, Order: 1,
		})
		require.NoError(t, err)
	}

	first, err := dl.List(model.EntityTypeUser)
	require.NoError(t, err)
	second, err := dl.List(model.EntityTypeUser)
	require.NoError(t, err)

	require.Len(t, first, 3)
	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
	}
	// equal order keys fall back to insertion order
	assert.Equal(t, "gamma", first[0].Name)
	assert.Equal(t, "alpha", first[1].Name)
	assert.Equal(t, "beta", first[2].Name)
}

func TestDefinitionListRejectsUnknownScope(t *testing.T) {
	dl, _ := newDefinitionLogic()

	_, err := dl.List("vendor")
	assert.True(t, errs.IsValidation(err))
}
