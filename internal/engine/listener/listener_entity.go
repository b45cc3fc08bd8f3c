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

// Package listener reacts to entity lifecycle events by reconciling the
// dynamic values carried in the triggering submission.
package listener

import (
	"github.com/go-fieldset/fieldset/internal/engine/logic"
	"github.com/go-fieldset/fieldset/internal/engine/model"
	"github.com/go-fieldset/fieldset/pkg/event"
	"github.com/go-fieldset/fieldset/pkg/log"
)

const (
	EventCustomerCreated = "customer.created"
	EventCustomerUpdated = "customer.updated"
	EventUserUpdated     = "user.updated"
)

// EntityEvent is published after a host entity was created or updated,
// carrying the raw submission the mutation came from.
type EntityEvent struct {
	Name       string
	EntityId   string
	EntityType model.EntityType
	Payload    map[string]interface{}
}

func (e *EntityEvent) EventName() string {
	return e.Name
}

func (e *EntityEvent) EventType() string {
	return string(e.EntityType)
}

// EntityListener persists the dynamic values of an entity mutation after the
// host entity itself was saved. Reconciliation failures are logged, never
// propagated back into the host save.
type EntityListener struct {
	submission *logic.SubmissionLogic
}

func NewEntityListener(submission *logic.SubmissionLogic) *EntityListener {
	return &EntityListener{
		submission: submission,
	}
}

// Register subscribes the listener to the lifecycle events it handles.
func (el *EntityListener) Register(bus *event.EventBus) {
	bus.RegisterHandler(EventCustomerCreated, el)
	bus.RegisterHandler(EventCustomerUpdated, el)
	bus.RegisterHandler(EventUserUpdated, el)
}

func (el *EntityListener) Handle(evt event.Event) {
	ee, ok := evt.(*EntityEvent)
	if !ok {
		log.Warnf("entity listener received unexpected event %T", evt)
		return
	}

	switch ee.Name {
	case EventCustomerCreated, EventCustomerUpdated:
		if err := el.submission.ReconcileProfile(ee.EntityId, ee.EntityType, ee.Payload); err != nil {
			log.Errorw("profile reconcile failed", "event", ee.Name, "entityId", ee.EntityId, "err", err)
		}
		if _, err := el.submission.ReconcileDocument(ee.EntityId, ee.EntityType, ee.Payload); err != nil {
			log.Errorw("document reconcile failed", "event", ee.Name, "entityId", ee.EntityId, "err", err)
		}
	case EventUserUpdated:
		if err := el.submission.ReconcileProfile(ee.EntityId, ee.EntityType, ee.Payload); err != nil {
			log.Errorw("profile reconcile failed", "event", ee.Name, "entityId", ee.EntityId, "err", err)
		}
	default:
		log.Warnf("entity listener received unhandled event %s", ee.Name)
	}
}
