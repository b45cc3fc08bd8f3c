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

package repo

import (
	"github.com/go-fieldset/fieldset/pkg/cache"
	"github.com/go-fieldset/fieldset/pkg/database"
)

// Repositories bundles all repositories.
type Repositories struct {
	FieldDefinition IFieldDefinitionRepository
	FieldValue      IFieldValueRepository
	EntityAttribute IEntityAttributeRepository
	Option          IOptionRepository
}

// NewRepositories initializes all repositories.
func NewRepositories(db database.IDatabase, cache cache.ICache) *Repositories {
	return &Repositories{
		FieldDefinition: NewFieldDefinitionRepo(db),
		FieldValue:      NewFieldValueRepo(db),
		EntityAttribute: NewEntityAttributeRepo(db),
		Option:          NewOptionRepo(db, cache),
	}
}
