package ecs

import (
	"github.com/phanxgames/animate"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CompletionEventType is the Donburi event type for finished animation tokens.
// Events are queued; call ProcessEvents (or events.ProcessAllEvents) once per
// frame to deliver them.
var CompletionEventType = events.NewEventType[animate.CompletionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
func NewDonburiSink(world donburi.World) animate.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event animate.CompletionEvent) {
	CompletionEventType.Publish(s.world, event)
}
