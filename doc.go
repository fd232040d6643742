// Package wisp provides interruption-safe show/hide and press/release
// animation behaviors for interactive UI elements, built on [gween] tweens.
//
// Wisp is the behavior layer between raw input and a renderer: it decides
// what animates, when, and what happens when a transition is interrupted
// mid-flight. It guarantees at most one active animation per controller
// slot, resolves the old animation before starting a new one, and keeps
// user-visible side effects (activation, events) correctly ordered no matter
// how rapidly transitions are toggled.
//
// # Quick start
//
// Create a [Node] for the element, describe its transition with a
// [Definition], and drive it with a controller:
//
//	panel := wisp.NewNode("panel")
//	def := &wisp.ScaleDefinition{
//		Shown:  wisp.Vec2{X: 1, Y: 1},
//		Timing: wisp.Timing{Duration: 0.25, Ease: ease.OutBack},
//	}
//	vis, err := wisp.NewVisibilityController(panel, def)
//	if err != nil {
//		log.Fatal(err)
//	}
//	vis.OnShowComplete = func() { log.Println("shown") }
//
//	vis.Show() // returns immediately
//
// Controllers are pumped from the host loop; in an Ebitengine game that is
// one call per Update:
//
//	func (g *Game) Update() error {
//		g.vis.Update(1.0 / float32(ebiten.TPS()))
//		return nil
//	}
//
// # Definitions
//
// A [Definition] is read-only, bidirectional configuration: a forward
// animation (appear, release) and a reverse (disappear, press), which share
// timing unless a separate reverse is configured. Concrete variants cover
// the common capabilities: [ScaleDefinition], [FadeDefinition],
// [SlideDefinition], [RectDefinition], and staged composites via
// [SequenceDefinition] and [PopExpand]. Definitions can also be authored in
// YAML and loaded with [LoadDefinitions].
//
// Both directions always start from the target's current values, so
// reversing a half-finished transition continues from where it was
// interrupted instead of snapping.
//
// # Controllers
//
// [VisibilityController] manages Show/Hide with a debounce window that
// coalesces near-simultaneous calls, force-completing any in-flight
// animation before starting the next. [PressController] manages press and
// release feedback with short-press deferral, cancel-on-new-press
// semantics, and an independent enable/disable cross-fade ([StateFade]).
//
// Wisp is single-threaded and callback-driven: all state transitions happen
// on the caller's timeline, and completion callbacks fire from Update (or
// synchronously when a transition is force-resolved).
//
// [gween]: https://github.com/tanema/gween
package wisp
