package wisp

import (
	"github.com/tanema/gween/ease"
)

// Defaults for the press timing windows, in seconds.
const (
	// DefaultPressThreshold is the elapsed-press time under which a release
	// counts as a tap and gets its release visual deferred.
	DefaultPressThreshold = 0.1

	// DefaultReleaseAnimationDelay is the minimum visible duration of the
	// pressed visual before a deferred release reverses it.
	DefaultReleaseAnimationDelay = 0.1
)

// Built-in press feedback used when no definition is configured: a quick
// scale-down to this fraction of the rest scale.
const (
	fallbackPressScale    = 0.9
	fallbackPressDuration = 0.1
)

// Clickable is the optional external enablement collaborator (e.g. a generic
// clickable widget) kept in lockstep by SetInteractable.
type Clickable interface {
	SetInteractable(bool)
	IsInteractable() bool
}

// PressController is an interruption-safe press/release feedback state
// machine for one node, structurally parallel to VisibilityController but
// with a different interruption policy: a new press always cancels the prior
// animation at its current position instead of completing it, because fresh
// press intent should win immediately rather than wait for a clean finish.
//
// The pressed visual is the reverse direction of the configured definition
// (press "undoes" the shown state toward its pressed/hidden pose) and the
// release visual is the forward direction back to rest. With no definition
// configured, a built-in scale-down fallback is used.
//
// A release quicker than PressThreshold defers its release visual so the
// pressed state stays visible for at least ReleaseAnimationDelay after the
// press began; otherwise a fast tap would look like the control never
// responded. The deferral is keyed on a single pending flag: a new press
// clears it, so a deferred release can never double-fire.
//
// Pump from the host loop with Update(dt).
type PressController struct {
	node *Node
	def  Definition

	// PressThreshold is the tap window in seconds.
	PressThreshold float64

	// ReleaseAnimationDelay is the minimum pressed-visual duration in
	// seconds for deferred releases.
	ReleaseAnimationDelay float64

	// State is the enable/disable cross-fade sub-behavior. Its animation
	// runs on its own handle slot, independent of press feedback.
	State StateFade

	// OnPressDown fires when a press is accepted.
	OnPressDown func()

	// OnPressUp fires on release, before any deferral decision.
	OnPressUp func()

	// OnClick fires on Click while interactable. Click is a pure
	// pass-through signal, never gated on animation timing.
	OnClick func()

	// OnInteractableChanged fires after SetInteractable has issued the
	// visual update (it does not wait for the cross-fade to finish).
	OnInteractableChanged func(bool)

	external Clickable

	interactable   bool
	pressed        bool
	pressStart     float64
	pendingRelease bool
	releaseAt      float64

	// Simulated press bookkeeping.
	simActive  bool
	simEndAt   float64
	simAnimate bool
	simEvents  bool

	now    float64
	handle *Playback

	// Rest pose captured at construction; ForceReset restores it.
	restX, restY, restScaleX, restScaleY float64
}

// NewPressController creates a controller for node. def is optional: nil
// selects the built-in scale-down feedback. The initial interactable state
// mirrors the node's Interactable flag. Panics if node is nil; returns a
// ConfigurationError if def fails validation. State cross-fade fields on
// State have valid defaults; re-validate with State.Validate after changing
// them.
func NewPressController(node *Node, def Definition) (*PressController, error) {
	if node == nil {
		panic("wisp: nil node")
	}
	if def == nil {
		def = &ScaleDefinition{
			Hidden: Vec2{X: node.ScaleX * fallbackPressScale, Y: node.ScaleY * fallbackPressScale},
			Shown:  Vec2{X: node.ScaleX, Y: node.ScaleY},
			Timing: Timing{Duration: fallbackPressDuration, Ease: ease.OutQuad},
		}
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	c := &PressController{
		node:                  node,
		def:                   def,
		PressThreshold:        DefaultPressThreshold,
		ReleaseAnimationDelay: DefaultReleaseAnimationDelay,
		interactable:          node.Interactable,
		restX:                 node.X,
		restY:                 node.Y,
		restScaleX:            node.ScaleX,
		restScaleY:            node.ScaleY,
	}
	c.State = newStateFade(node)
	return c, nil
}

// SetExternal configures the external enablement collaborator synchronized
// by SetInteractable. Pass nil to detach.
func (c *PressController) SetExternal(ext Clickable) {
	c.external = ext
}

// IsInteractable reports whether the controller accepts presses and clicks.
func (c *PressController) IsInteractable() bool {
	return c.interactable
}

// IsPressed reports whether a press is currently held.
func (c *PressController) IsPressed() bool {
	return c.pressed
}

// Update advances the clock, the press/release animation, the state
// cross-fade, and any deferred or simulated work by dt seconds.
func (c *PressController) Update(dt float32) {
	c.now += float64(dt)
	if c.handle != nil {
		c.handle.Update(dt)
	}
	c.State.update(dt)
	if c.pendingRelease && c.now >= c.releaseAt {
		c.ExecutePendingReleaseAnimation()
	}
	if c.simActive && c.now >= c.simEndAt {
		c.endSimulated()
	}
}

// PressStart begins a press cycle: cancels any running feedback at its
// current position, plays the pressed visual, and fires OnPressDown.
// Ignored while not interactable or when the node is disposed.
func (c *PressController) PressStart() {
	if !c.interactable || c.node.IsDisposed() {
		debugf("press on %q ignored", c.node.Name)
		return
	}
	// A new press always clears any deferred release and wins immediately.
	c.pendingRelease = false
	c.simActive = false
	c.cancelHandle()

	c.pressed = true
	c.pressStart = c.now
	c.playPressVisual()
	c.fire(c.OnPressDown)
}

// PressEnd ends the press cycle and fires OnPressUp. A release quicker than
// PressThreshold defers the release visual (see ExecutePendingReleaseAnimation);
// otherwise it plays immediately. Ignored when not currently pressed.
func (c *PressController) PressEnd() {
	if !c.pressed {
		return
	}
	c.pressed = false
	c.fire(c.OnPressUp)

	elapsed := c.now - c.pressStart
	if elapsed < c.PressThreshold {
		c.pendingRelease = true
		delay := c.ReleaseAnimationDelay - elapsed
		if delay < 0 {
			delay = 0
		}
		c.releaseAt = c.now + delay
		return
	}
	c.playReleaseVisual()
}

// ExecutePendingReleaseAnimation runs the deferred release visual. No-op if
// the pending flag was already cleared by an intervening press. Update calls
// this automatically when the deferral expires; it is exported for hosts
// that drive the schedule themselves.
func (c *PressController) ExecutePendingReleaseAnimation() {
	if !c.pendingRelease {
		return
	}
	c.pendingRelease = false
	c.playReleaseVisual()
}

// Click fires OnClick if interactable. Independent of the press/release
// visual timeline.
func (c *PressController) Click() {
	if !c.interactable {
		return
	}
	c.fire(c.OnClick)
}

// SimulatePress runs a full programmatic press cycle through the same state
// machine and guards as the pointer path, firing the press events. The
// release happens after delay seconds; when animateRelease is false the node
// snaps straight back to its rest pose instead of animating.
func (c *PressController) SimulatePress(animateRelease bool, delay float64) {
	if !c.interactable || c.node.IsDisposed() {
		return
	}
	c.PressStart()
	c.scheduleSimEnd(animateRelease, delay, true)
}

// PlayPressAnimationOnly plays the pressed visual and its release without
// firing any press events — feedback only, for scripted highlights.
func (c *PressController) PlayPressAnimationOnly(animateRelease bool, delay float64) {
	if !c.interactable || c.node.IsDisposed() {
		return
	}
	c.pendingRelease = false
	c.cancelHandle()
	c.playPressVisual()
	c.scheduleSimEnd(animateRelease, delay, false)
}

// SetInteractable updates the enabled state, keeping the node flag and the
// external collaborator in lockstep, cross-fading the state visual, and
// firing OnInteractableChanged once the visual update has been issued.
// Becoming non-interactable force-resets press state immediately: a disabled
// control must not remain visually pressed. No-op when the value is
// unchanged.
func (c *PressController) SetInteractable(value bool) {
	if value == c.interactable {
		return
	}
	c.interactable = value
	c.node.Interactable = value
	if c.external != nil {
		c.external.SetInteractable(value)
	}
	if !value {
		c.ForceReset()
	}
	c.State.apply(value)
	if c.OnInteractableChanged != nil {
		c.OnInteractableChanged(value)
	}
}

// ForceReset synchronously cancels any press feedback, clears pressed and
// pending state, and restores the rest pose. Used on disable/destroy and
// whenever interactability is revoked.
func (c *PressController) ForceReset() {
	c.cancelHandle()
	c.pressed = false
	c.pendingRelease = false
	c.simActive = false
	if !c.node.IsDisposed() {
		c.node.X = c.restX
		c.node.Y = c.restY
		c.node.ScaleX = c.restScaleX
		c.node.ScaleY = c.restScaleY
	}
}

// ShowImmediate resets press state and activates the node.
func (c *PressController) ShowImmediate() {
	c.ForceReset()
	if !c.node.IsDisposed() {
		c.node.Visible = true
	}
}

// HideImmediate resets press state and deactivates the node.
func (c *PressController) HideImmediate() {
	c.ForceReset()
	if !c.node.IsDisposed() {
		c.node.Visible = false
	}
}

// --- internals ---

// playPressVisual starts the pressed animation: the definition's reverse
// direction, from wherever the node currently is.
func (c *PressController) playPressVisual() {
	pb, err := c.def.Reverse(c.node)
	if err != nil {
		return
	}
	c.attach(pb)
}

// playReleaseVisual cancels the pressed visual at its current position and
// plays the forward direction back toward rest.
func (c *PressController) playReleaseVisual() {
	c.cancelHandle()
	pb, err := c.def.Forward(c.node)
	if err != nil {
		return
	}
	c.attach(pb)
}

// attach installs pb as the tracked press handle. Terminal callbacks only
// clear the slot if pb is still the tracked handle.
func (c *PressController) attach(pb *Playback) {
	c.handle = pb
	clear := func() {
		if c.handle != pb {
			debugf("stale press callback on %q ignored", c.node.Name)
			return
		}
		c.handle = nil
	}
	pb.OnComplete = clear
	pb.OnCancelled = clear
}

// cancelHandle abandons the tracked handle at its current interpolated
// values. Press feedback is fire-and-forget: it is cancelled, never
// force-completed.
func (c *PressController) cancelHandle() {
	if c.handle != nil {
		c.handle.Cancel()
	}
}

func (c *PressController) scheduleSimEnd(animateRelease bool, delay float64, fireEvents bool) {
	if delay <= 0 {
		c.simAnimate = animateRelease
		c.simEvents = fireEvents
		c.simActive = true
		c.endSimulated()
		return
	}
	c.simActive = true
	c.simEndAt = c.now + delay
	c.simAnimate = animateRelease
	c.simEvents = fireEvents
}

// endSimulated finishes a simulated press. With events enabled it goes
// through PressEnd so the tap-deferral guards apply; without animation it
// snaps the rest pose directly.
func (c *PressController) endSimulated() {
	c.simActive = false
	if c.simEvents {
		if c.simAnimate {
			c.PressEnd()
			return
		}
		c.pressed = false
		c.fire(c.OnPressUp)
		c.ForceReset()
		return
	}
	if c.simAnimate {
		c.playReleaseVisual()
		return
	}
	c.cancelHandle()
	if !c.node.IsDisposed() {
		c.node.X = c.restX
		c.node.Y = c.restY
		c.node.ScaleX = c.restScaleX
		c.node.ScaleY = c.restScaleY
	}
}

func (c *PressController) fire(fn func()) {
	if fn != nil {
		fn()
	}
}
