package wisp

import (
	"math"
)

// DefaultInterruptionDelay is the default debounce window, in seconds,
// between accepted Show/Hide transitions.
const DefaultInterruptionDelay = 0.05

// VisibilityController is an interruption-safe show/hide state machine for
// one node. It owns at most one playback at a time: starting a new transition
// always force-completes the previous one first, so no two animations ever
// drive the same node concurrently and every transition begins from a
// well-defined end-state.
//
// Near-simultaneous calls (a double-fired UI event issuing Show and Hide in
// the same tick) are coalesced by the InterruptionDelay window: the first
// accepted transition wins and the second is dropped silently.
//
// The controller is pumped from the host loop:
//
//	ctrl.Update(dt) // each frame
//
// Show, Hide, and Toggle return immediately; completion side effects
// (deactivation, OnShowComplete/OnHideComplete) fire later from Update, or
// synchronously when a transition is force-resolved.
type VisibilityController struct {
	node *Node
	def  Definition

	// InterruptionDelay is the debounce window in seconds. Transition calls
	// within this window of the last accepted transition are dropped.
	InterruptionDelay float64

	// OnShowComplete fires when a show transition finishes (animated or
	// immediate).
	OnShowComplete func()

	// OnHideComplete fires after the node has been deactivated at the end
	// of a hide transition (animated or immediate).
	OnHideComplete func()

	visible        bool
	animating      bool
	lastTransition float64
	now            float64
	handle         *Playback
}

// NewVisibilityController creates a controller for node driven by def.
// The initial visibility state mirrors the node's Visible flag.
// Panics if node or def is nil; returns a ConfigurationError if def fails
// validation.
func NewVisibilityController(node *Node, def Definition) (*VisibilityController, error) {
	if node == nil {
		panic("wisp: nil node")
	}
	if def == nil {
		panic("wisp: nil definition")
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &VisibilityController{
		node:              node,
		def:               def,
		InterruptionDelay: DefaultInterruptionDelay,
		visible:           node.Visible,
		lastTransition:    math.Inf(-1),
	}, nil
}

// IsVisible reports the controller's logical visibility. It flips at
// transition start, not completion: a node mid-hide already reports false.
func (c *VisibilityController) IsVisible() bool {
	return c.visible
}

// IsAnimating reports whether a show or hide animation is in flight.
func (c *VisibilityController) IsAnimating() bool {
	return c.animating
}

// Update advances the controller's clock and any in-flight animation by dt
// seconds. Completion callbacks fire synchronously from here.
func (c *VisibilityController) Update(dt float32) {
	c.now += float64(dt)
	if c.handle != nil {
		c.handle.Update(dt)
	}
}

// debounced reports whether a transition at the current clock falls inside
// the interruption window of the last accepted one.
func (c *VisibilityController) debounced() bool {
	return c.now-c.lastTransition < c.InterruptionDelay
}

// Show activates the node and starts the forward animation. No-op if the
// node is disposed, already visible (shown or showing), or inside the
// debounce window. Any in-flight hide is force-completed first, running its
// completion synchronously.
func (c *VisibilityController) Show() {
	if c.node.IsDisposed() || c.visible {
		return
	}
	if c.debounced() {
		debugf("Show on %q dropped: within interruption delay", c.node.Name)
		return
	}

	c.resolveHandle()
	c.node.Visible = true
	c.visible = true
	c.lastTransition = c.now

	pb, err := c.def.Forward(c.node)
	if err != nil {
		// Target vanished between the guard and here; finish immediately.
		c.fire(c.OnShowComplete)
		return
	}
	c.attach(pb, c.OnShowComplete, false)
}

// Hide starts the reverse animation and deactivates the node once it
// completes. No-op if the node is disposed, already hidden (or hiding), or
// inside the debounce window. If the node is already inactive, Hide only
// updates the visibility flag.
func (c *VisibilityController) Hide() {
	if c.node.IsDisposed() || !c.visible {
		return
	}
	if !c.node.Visible {
		c.visible = false
		return
	}
	if c.debounced() {
		debugf("Hide on %q dropped: within interruption delay", c.node.Name)
		return
	}

	c.resolveHandle()
	c.visible = false
	c.lastTransition = c.now

	pb, err := c.def.Reverse(c.node)
	if err != nil {
		c.node.Visible = false
		c.fire(c.OnHideComplete)
		return
	}
	c.attach(pb, c.OnHideComplete, true)
}

// Toggle dispatches to Show or Hide based on the current visibility.
func (c *VisibilityController) Toggle() {
	if c.visible {
		c.Hide()
	} else {
		c.Show()
	}
}

// ShowImmediate resolves any in-flight animation, snaps the node to the
// shown end-state, activates it, and fires OnShowComplete. Never debounced.
func (c *VisibilityController) ShowImmediate() {
	if c.node.IsDisposed() {
		return
	}
	c.resolveHandle()
	c.node.Visible = true
	c.visible = true
	c.lastTransition = c.now
	if pb, err := c.def.Forward(c.node); err == nil {
		pb.ForceComplete()
	}
	c.fire(c.OnShowComplete)
}

// HideImmediate resolves any in-flight animation, snaps the node to the
// hidden end-state, deactivates it, and fires OnHideComplete. Never
// debounced.
func (c *VisibilityController) HideImmediate() {
	if c.node.IsDisposed() {
		return
	}
	c.resolveHandle()
	c.visible = false
	c.lastTransition = c.now
	if pb, err := c.def.Reverse(c.node); err == nil {
		pb.ForceComplete()
	}
	c.node.Visible = false
	c.fire(c.OnHideComplete)
}

// Teardown force-resolves any in-flight animation without firing events.
// Call when the controller's owner is being disabled or destroyed so no
// callback can run afterwards.
func (c *VisibilityController) Teardown() {
	if c.handle == nil {
		return
	}
	// Detach first so the handle's callbacks see themselves superseded.
	h := c.handle
	c.handle = nil
	c.animating = false
	h.ForceComplete()
}

// attach installs pb as the tracked handle and wires its terminal callbacks.
// Every callback re-checks that pb is still the tracked handle before
// mutating controller state: a late callback from a superseded handle must
// never corrupt state set by a newer one.
func (c *VisibilityController) attach(pb *Playback, onDone func(), deactivate bool) {
	c.handle = pb
	c.animating = true
	pb.OnComplete = func() {
		if c.handle != pb {
			debugf("stale completion on %q ignored", c.node.Name)
			return
		}
		c.handle = nil
		c.animating = false
		if deactivate {
			c.node.Visible = false
		}
		c.fire(onDone)
	}
	pb.OnCancelled = func() {
		if c.handle != pb {
			debugf("stale cancellation on %q ignored", c.node.Name)
			return
		}
		c.handle = nil
		c.animating = false
	}
}

// resolveHandle force-completes the tracked handle, if any, running its
// completion synchronously so the node is in a well-defined end-state before
// the next transition starts. The handle's own completion callback clears
// the slot.
func (c *VisibilityController) resolveHandle() {
	if c.handle != nil {
		c.handle.ForceComplete()
	}
}

func (c *VisibilityController) fire(fn func()) {
	if fn != nil {
		fn()
	}
}
