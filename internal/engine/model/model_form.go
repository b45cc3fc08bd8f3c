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

// SchemaField is one descriptor record of the config-driven global field
// schema, stored as an ordered JSON array in the option table and replaced
// wholesale by the admin editor.
type SchemaField struct {
	Label       string    `json:"label"`
	Name        string    `json:"name"`
	Type        FieldType `json:"type"`
	Description string    `json:"description,omitempty"`
	Unique      bool      `json:"unique,omitempty"`
}

// FormField is a render-ready descriptor of one form input, consumed by the
// generic form-rendering front end.
type FormField struct {
	Label       string        `json:"label"`
	Name        string        `json:"name"`
	Value       string        `json:"value"`
	Type        FieldType     `json:"type"`
	Description string        `json:"description"`
	Validation  string        `json:"validation,omitempty"`
	Options     []FieldOption `json:"options,omitempty"`
}

// FormTab is a named group of form fields appended to a host form.
type FormTab struct {
	Identifier string      `json:"identifier"`
	Label      string      `json:"label"`
	Fields     []FormField `json:"fields"`
}

// TabIdentifierCustomFields is the identifier of the injected tab.
const TabIdentifierCustomFields = "custom_fields"
