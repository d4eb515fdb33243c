// Package ecs provides ECS adapters for hologram's interaction events.
//
// The primary adapter is [NewDonburiStore], which bridges hologram
// interaction events (hover, click, drag, engagement) into a [Donburi]
// world as typed events. Subscribe to [InteractionEventType] in your ECS
// systems to receive them. The store also keeps one entity per user
// carrying an [Interaction] component with the latest hover and
// engagement state.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	ctx.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
