package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/yuletide"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []yuletide.ShellEvent
	ShellEventType.Subscribe(world, func(w donburi.World, e yuletide.ShellEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(yuletide.ShellEvent{
		Type:      yuletide.EventPhaseChanged,
		Phase:     yuletide.PhaseIntroLocked,
		PrevPhase: yuletide.PhaseLoading,
		At:        2 * time.Second,
	})
	sink.EmitEvent(yuletide.ShellEvent{
		Type:  yuletide.EventCardOpened,
		Phase: yuletide.PhaseInteractive,
		Card:  yuletide.CardOpen,
	})

	// Events are queued; process them.
	ShellEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != yuletide.EventPhaseChanged || e0.Phase != yuletide.PhaseIntroLocked {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.At != 2*time.Second {
		t.Errorf("event 0 time: %v", e0.At)
	}
	if received[1].Card != yuletide.CardOpen {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_FromShell(t *testing.T) {
	world := donburi.NewWorld()
	sched := yuletide.NewScheduler()
	shell := yuletide.NewShell(yuletide.DefaultShellConfig(), sched, nil)
	shell.SetEventSink(NewDonburiSink(world))

	var phases []yuletide.Phase
	ShellEventType.Subscribe(world, func(w donburi.World, e yuletide.ShellEvent) {
		if e.Type == yuletide.EventPhaseChanged {
			phases = append(phases, e.Phase)
		}
	})

	shell.Mount()
	sched.Advance(4 * time.Second)
	events.ProcessAllEvents(world)

	if len(phases) != 2 || phases[0] != yuletide.PhaseIntroLocked || phases[1] != yuletide.PhaseInteractive {
		t.Errorf("phases = %v", phases)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	ShellEventType.Subscribe(world, func(w donburi.World, e yuletide.ShellEvent) {
		count1++
	})
	ShellEventType.Subscribe(world, func(w donburi.World, e yuletide.ShellEvent) {
		count2++
	})

	sink.EmitEvent(yuletide.ShellEvent{Type: yuletide.EventAudioStarted})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
