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
	"github.com/go-fieldset/fieldset/internal/engine/repo"
)

// Logics bundles all business logic services.
type Logics struct {
	Definition *DefinitionLogic
	Schema     *SchemaLogic
	Form       *FormLogic
	Submission *SubmissionLogic
}

// NewLogics initializes all logic services on top of the repositories.
func NewLogics(repos *repo.Repositories) *Logics {
	schema := NewSchemaLogic(repos.Option)
	return &Logics{
		Definition: NewDefinitionLogic(repos.FieldDefinition),
		Schema:     schema,
		Form:       NewFormLogic(repos.FieldDefinition, repos.FieldValue, repos.EntityAttribute, schema),
		Submission: NewSubmissionLogic(repos.FieldDefinition, repos.FieldValue, repos.EntityAttribute, schema),
	}
}
