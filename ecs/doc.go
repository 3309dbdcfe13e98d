// Package ecs provides ECS adapters for yuletide's shell events.
//
// The primary adapter is [NewDonburiSink], which bridges shell transitions
// (phase changes, card open/close, audio start/pause/reject) into a
// [Donburi] world as typed events. Subscribe to [ShellEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
