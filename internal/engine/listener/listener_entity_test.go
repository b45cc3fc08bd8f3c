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

package listener

import (
	"testing"

	"github.com/go-fieldset/fieldset/internal/engine/model"
	"github.com/go-fieldset/fieldset/pkg/event"
	"github.com/stretchr/testify/assert"
)

type otherEvent struct{}

func (otherEvent) EventName() string { return "other" }
func (otherEvent) EventType() string { return "other" }

func TestEntityEventImplementsEvent(t *testing.T) {
	var e event.Event = &EntityEvent{
		Name:       EventCustomerUpdated,
		EntityId:   "42",
		EntityType: model.EntityTypeCustomer,
	}
	assert.Equal(t, EventCustomerUpdated, e.EventName())
	assert.Equal(t, "customer", e.EventType())
}

func TestListenerIgnoresForeignEventTypes(t *testing.T) {
	l := NewEntityListener(nil)

	// must not panic or touch the submission logic
	assert.NotPanics(t, func() {
		l.Handle(otherEvent{})
	})
}
