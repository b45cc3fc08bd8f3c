package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testEvent struct {
	name string
}

func (e *testEvent) EventName() string { return e.name }
func (e *testEvent) EventType() string { return "test" }

type countingHandler struct {
	seen []Event
}

func (h *countingHandler) Handle(e Event) {
	h.seen = append(h.seen, e)
}

func TestEventBusDeliversToRegisteredHandlers(t *testing.T) {
	bus := NewEventBus()
	h1 := &countingHandler{}
	h2 := &countingHandler{}
	bus.RegisterHandler("thing.updated", h1)
	bus.RegisterHandler("thing.updated", h2)

	bus.Publish(&testEvent{name: "thing.updated"})

	assert.Len(t, h1.seen, 1)
	assert.Len(t, h2.seen, 1)
}

func TestEventBusIgnoresUnregisteredEvents(t *testing.T) {
	bus := NewEventBus()
	h := &countingHandler{}
	bus.RegisterHandler("thing.updated", h)

	bus.Publish(&testEvent{name: "thing.created"})

	assert.Empty(t, h.seen)
}

func TestEventBusRoutesByName(t *testing.T) {
	bus := NewEventBus()
	created := &countingHandler{}
	updated := &countingHandler{}
	bus.RegisterHandler("thing.created", created)
	bus.RegisterHandler("thing.updated", updated)

	bus.Publish(&testEvent{name: "thing.created"})
	bus.Publish(&testEvent{name: "thing.created"})
	bus.Publish(&testEvent{name: "thing.updated"})

	assert.Len(t, created.seen, 2)
	assert.Len(t, updated.seen, 1)
}
