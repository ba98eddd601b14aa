package ecs

import (
	"testing"

	"github.com/phanxgames/bramble"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []bramble.SpriteEvent
	SpriteEventType.Subscribe(world, func(w donburi.World, e bramble.SpriteEvent) {
		received = append(received, e)
	})

	store.EmitEvent(bramble.SpriteEvent{Type: bramble.EventSpriteCreated, SpriteID: 42})
	store.EmitEvent(bramble.SpriteEvent{Type: bramble.EventFlashEnded, SpriteID: 7})

	// Events are queued until processed.
	SpriteEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != bramble.EventSpriteCreated || received[0].SpriteID != 42 {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Type != bramble.EventFlashEnded || received[1].SpriteID != 7 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiStore_SceneLifecycle(t *testing.T) {
	world := donburi.NewWorld()
	scene := bramble.NewScene(bramble.WithEntityStore(NewDonburiStore(world)))

	var got []bramble.SpriteEventType
	SpriteEventType.Subscribe(world, func(w donburi.World, e bramble.SpriteEvent) {
		got = append(got, e.Type)
	})

	sp := scene.NewSprite()
	if err := scene.Remove(sp); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	events.ProcessAllEvents(world)

	if len(got) != 2 || got[0] != bramble.EventSpriteCreated || got[1] != bramble.EventSpriteReleased {
		t.Errorf("events = %v, want [created released]", got)
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	SpriteEventType.Subscribe(world, func(w donburi.World, e bramble.SpriteEvent) {
		count1++
	})
	SpriteEventType.Subscribe(world, func(w donburi.World, e bramble.SpriteEvent) {
		count2++
	})

	store.EmitEvent(bramble.SpriteEvent{Type: bramble.EventSpriteReleased})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
