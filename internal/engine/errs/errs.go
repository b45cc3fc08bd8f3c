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

// Package errs defines the error kinds of the custom-field engine. Handlers
// map them to response codes; everything else propagates as an opaque
// infrastructure error.
package errs

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated reports a missing caller identity.
var ErrUnauthenticated = errors.New("unauthenticated")

// ValidationError reports a malformed field name or definition. Definition and
// schema mutations validate eagerly and reject the whole operation on the
// first violation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Reason)
}

// ConfigFormatError reports a schema document that is not valid structured data.
type ConfigFormatError struct {
	Cause error
}

func (e *ConfigFormatError) Error() string {
	return fmt.Sprintf("field schema is not a valid JSON array: %v", e.Cause)
}

func (e *ConfigFormatError) Unwrap() error {
	return e.Cause
}

// UniquenessViolation reports a duplicate value on a field marked unique.
// It carries the conflicting entity identifier and the field label so the
// message can surface verbatim to the end user.
type UniquenessViolation struct {
	FieldName        string
	FieldLabel       string
	ConflictEntityId string
}

func (e *UniquenessViolation) Error() string {
	label := e.FieldLabel
	if label == "" {
		label = e.FieldName
	}
	return fmt.Sprintf("the value of %q is already used by entity %s", label, e.ConflictEntityId)
}

// NotFoundError reports an operation referencing an entity or definition id
// that does not exist.
type NotFoundError struct {
	Resource string
	Id       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.Id)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsUniqueness reports whether err is a UniquenessViolation.
func IsUniqueness(err error) bool {
	var uv *UniquenessViolation
	return errors.As(err, &uv)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
