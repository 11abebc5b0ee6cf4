// Package tdc is a top-down strategy camera and gesture recognizer for
// [Ebitengine].
//
// It turns raw mouse and touch samples into five gestures (tap, hold,
// swipe, two-point swipe and pinch) and drives a spectator pawn carrying a
// zoomable, edge-scrolling, drag-to-pan camera that looks down on the map
// at a fixed angle.
//
// # Quick start
//
// A [PlayerController] wires everything together. Build a pawn from a
// [Config], give the controller a sampler and a projector, and call it
// once per frame:
//
//	pawn := tdc.NewSpectatorPawn(tdc.DefaultConfig())
//	pc := tdc.NewPlayerController(pawn)
//	sampler := tdc.NewEbitenSampler(true)
//	pc.Pointer, pc.Mouse, pc.Axes = sampler, sampler, sampler
//	pc.Projector = &tdc.PerspectiveProjector{...}
//
//	func (g *Game) Update() error {
//		g.pc.ProcessPlayerInput(1.0/60, false)
//		g.pc.PlayerTick(1.0 / 60)
//		return nil
//	}
//
// [PlayerController.View] returns the camera location, rotation and field
// of view to render the frame with.
//
// # Gestures
//
// [Input] classifies up to two contacts per frame. Every gesture is
// reported as a [KeyEvent] transition: Pressed, Repeat or Released. Bind
// actions with [Input.BindOnePoint] and [Input.BindTwoPoint]:
//
//	in := tdc.NewInput()
//	h := in.BindOnePoint(tdc.Tap, tdc.Pressed, func(pos tdc.Vec2, downTime float64) {
//		fmt.Println("tap at", pos)
//	})
//	defer h.Remove()
//
// A press released within 0.3s is a tap. A press held longer without
// moving is a hold. Any movement of a single contact is a swipe. Two
// contacts open both a two-point swipe (only when they start close
// together) and a pinch; whichever loses its hypothesis is released early.
//
// # Camera
//
// [Camera] zooms between its configured offsets, scrolls when the cursor
// nears the screen border, pans with swipe drags, and stays inside the
// bounds set with [Camera.SetWorldBounds]. [Camera.ScrollTo] and
// [Camera.ZoomTo] animate with [gween] tweens.
//
// # Configuration
//
// [LoadConfig] reads YAML over [DefaultConfig]. [ConfigWatcher] reloads the
// file as it changes so the camera can be tuned while the game runs.
//
// # Testing
//
// [ScriptedSampler] replaces the device sampler with queued frames, and
// [LoadTestScript] plays JSON gesture scripts through it.
//
// ECS integration is available in the tdc/ecs subpackage via a [Donburi]
// adapter.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package tdc
