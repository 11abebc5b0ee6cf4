package tdc

// EventStore is the interface for optional ECS integration.
// When set on an Input, every gesture event is forwarded to it.
type EventStore interface {
	EmitEvent(event GestureEvent)
}

// GestureEvent carries one recognized gesture transition.
type GestureEvent struct {
	Key   GestureKey
	Event KeyEvent
	// Position is the primary contact. Position2 is only meaningful for
	// SwipeTwoPoints and Pinch.
	Position  Vec2
	Position2 Vec2
	DownTime  float64
}
