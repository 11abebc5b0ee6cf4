// Package ecs provides ECS adapters for tdc.
package ecs

import (
	"github.com/phanxgames/tdc"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for recognized gestures.
// Subscribe to this in your ECS systems to receive tap, hold, swipe and
// pinch transitions.
var GestureEventType = events.NewEventType[tdc.GestureEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Gesture events are published to GestureEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) tdc.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event tdc.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
