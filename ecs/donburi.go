package ecs

import (
	"github.com/phanxgames/bramble"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SpriteEventType is the Donburi event type for bramble sprite lifecycle
// events. Subscribe to it in your ECS systems to learn when sprites are
// created, released, or finish flashing.
var SpriteEventType = events.NewEventType[bramble.SpriteEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Sprite events are published to SpriteEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) bramble.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event bramble.SpriteEvent) {
	SpriteEventType.Publish(s.world, event)
}
