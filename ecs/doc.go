// Package ecs bridges bramble sprite lifecycle events into an ECS world.
//
// The adapter is [NewDonburiStore], which publishes every
// [bramble.SpriteEvent] (created, released, flash ended) into a [Donburi]
// world as a typed event. Subscribe to [SpriteEventType] in your systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
