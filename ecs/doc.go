// Package ecs provides ECS adapters for tdc's gesture events.
//
// The primary adapter is [NewDonburiStore], which bridges recognized
// gestures (tap, hold, swipe, two-point swipe, pinch) into a [Donburi]
// world as typed events. Subscribe to [GestureEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	input.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
