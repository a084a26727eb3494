// Package ecs provides ECS adapters for animate's completion events.
//
// The primary adapter is [NewDonburiSink], which publishes a typed event into
// a [Donburi] world every time an animation token finishes. Subscribe to
// [CompletionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.Animator().SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
