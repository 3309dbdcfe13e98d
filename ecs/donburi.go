// Package ecs provides ECS adapters for yuletide.
package ecs

import (
	"github.com/phanxgames/yuletide"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ShellEventType is the Donburi event type for yuletide shell transitions.
var ShellEventType = events.NewEventType[yuletide.ShellEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to ShellEventType and can be consumed with events.Subscribe and
// ProcessEvents.
func NewDonburiSink(world donburi.World) yuletide.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event yuletide.ShellEvent) {
	ShellEventType.Publish(s.world, event)
}
