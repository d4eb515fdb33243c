// Package hologram renders interactive control panels anchored at fixed
// points in a 3D world and lets a user aim a view ray at them to hover,
// click and drag controls, as with a 2D interface but entirely through ray
// casting.
//
// # Quick start
//
// Create one [Context] per local user and tick it from the game loop:
//
//	ctx := hologram.New(hologram.Options{Input: hologram.EbitenInput{}})
//	ctx.Registry().Create("settings", func(p *hologram.Panel) {
//		p.SetAnchor(hologram.Vec3{X: 0, Y: 1.6, Z: 3})
//		p.SetYaw(180)
//		p.SetHeight(-1) // auto height
//		p.AddControl(hologram.NewText("title", "Settings"))
//		p.AddControl(hologram.NewSlider("volume").OnChange(setVolume))
//		p.AddControl(hologram.NewButton("close", "Close").OnPress(closeMenu))
//	})
//
//	// every tick:
//	ctx.Tick(camera.Ray())
//
// Registry changes may be requested from any goroutine; they are applied
// at the start of the next tick. Everything else runs on the tick thread.
//
// # Panels and controls
//
// A [Panel] is a flat rectangle rotated about the vertical axis by its yaw.
// It stacks [Control] values top to bottom inside its padding. Built-in
// kinds are [Button], [Text], [Slider], [Separator], [ProgressBar], [Image]
// and [Container]. Custom controls implement [Control], and [Draggable]
// when they capture the pointer.
//
// # Hit testing
//
// [Intersect] casts the view ray against every visible panel, maps the hit
// into the panel's 2D layout and returns the nearest [Hit]. When two hits
// are exactly as far, the panel registered first wins.
//
// # Animation
//
// A [Scheduler] interpolates one numeric property per (control, property)
// channel with [Clip] values built by [Animate] or the presets such as
// [FadeIn] and [HoverGrow]. Easings come from gween (see [EasingByName]).
//
// # Engagement
//
// While the ray rests on any panel, or a drag is in progress, the
// [Tracker] reports the user as engaged and [Tracker.ShouldSuppress] tells
// world-action hooks which actions to block. Engagement changes are queued
// as [Notification] values for a host [Notifier]; [PeerTable] records the
// state of remote users.
//
// # ECS integration
//
// Set an [EntityStore] with [Context.SetEntityStore] to forward
// [InteractionEvent] values into an ECS. The hologram/ecs module provides
// a Donburi adapter.
package hologram
