package wisp

import (
	"github.com/tanema/gween/ease"
)

// Timing is the shared timing block of every animation definition: a forward
// duration and easing curve, plus an optional separate reverse. When no
// separate reverse is configured, the reverse direction mirrors the forward
// values at read time — they are never stored divergently, so a definition
// edited after authoring cannot drift out of sync with itself.
type Timing struct {
	// Duration is the forward duration in seconds. Must be > 0.
	Duration float64

	// Ease is the forward easing curve. Defaults to ease.Linear.
	Ease ease.TweenFunc

	// ReverseDuration, when > 0, gives the reverse direction its own
	// duration. Zero means "mirror the forward duration".
	ReverseDuration float64

	// ReverseEase, when non-nil, gives the reverse direction its own curve.
	// Nil means "mirror the forward curve".
	ReverseEase ease.TweenFunc
}

// HasSeparateReverse reports whether the reverse direction has its own
// timing or easing rather than mirroring forward.
func (t Timing) HasSeparateReverse() bool {
	return t.ReverseDuration > 0 || t.ReverseEase != nil
}

func (t Timing) validate() error {
	if t.Duration <= 0 {
		return &ConfigurationError{Field: "duration", Detail: "must be > 0"}
	}
	if t.ReverseDuration < 0 {
		return &ConfigurationError{Field: "reverseDuration", Detail: "must be > 0 when set"}
	}
	return nil
}

func (t Timing) forwardEase() ease.TweenFunc {
	if t.Ease != nil {
		return t.Ease
	}
	return ease.Linear
}

func (t Timing) reverseDuration() float64 {
	if t.ReverseDuration > 0 {
		return t.ReverseDuration
	}
	return t.Duration
}

func (t Timing) reverseEase() ease.TweenFunc {
	if t.ReverseEase != nil {
		return t.ReverseEase
	}
	return t.forwardEase()
}

// forwardTrack builds a track toward `to` using forward timing. The track's
// start value is sampled from the field when playback begins, not now.
func (t Timing) forwardTrack(field *float64, to float64) track {
	return track{field: field, to: to, duration: float32(t.Duration), easeFn: t.forwardEase()}
}

// reverseTrack builds a track toward `to` using reverse timing (which mirrors
// forward when no separate reverse is configured).
func (t Timing) reverseTrack(field *float64, to float64) track {
	return track{field: field, to: to, duration: float32(t.reverseDuration()), easeFn: t.reverseEase()}
}

// Definition is the declarative, bidirectional description of one animation
// on one target capability. Definitions are read-only configuration:
// controllers never mutate them, and one definition may safely serve many
// controllers.
//
// Both directions start from the target's current field values, so a reverse
// issued mid-forward resumes from the interrupted position rather than the
// forward start value.
type Definition interface {
	// Validate reports configuration problems (non-positive durations,
	// out-of-range values, missing required fields). Controllers and the
	// config loader call this once up front; playback assumes validity.
	Validate() error

	// Forward starts the forward animation on n, returning its handle.
	// Returns InvalidTargetError for a nil or disposed node.
	Forward(n *Node) (*Playback, error)

	// Reverse starts the reverse animation on n toward the definition's
	// hidden/rest end-state.
	Reverse(n *Node) (*Playback, error)
}

// --- Scale (transform-like) ---

// ScaleDefinition animates the node's ScaleX/ScaleY between a hidden and a
// shown scale. The common pop-in is Hidden {0,0} → Shown {1,1}.
type ScaleDefinition struct {
	Hidden Vec2
	Shown  Vec2
	Timing
}

func (d *ScaleDefinition) Validate() error {
	return d.Timing.validate()
}

func (d *ScaleDefinition) Forward(n *Node) (*Playback, error) {
	if err := checkTarget("Forward", n); err != nil {
		return nil, err
	}
	return newPlayback(n, []track{
		d.forwardTrack(&n.ScaleX, d.Shown.X),
		d.forwardTrack(&n.ScaleY, d.Shown.Y),
	}), nil
}

func (d *ScaleDefinition) Reverse(n *Node) (*Playback, error) {
	if err := checkTarget("Reverse", n); err != nil {
		return nil, err
	}
	return newPlayback(n, []track{
		d.reverseTrack(&n.ScaleX, d.Hidden.X),
		d.reverseTrack(&n.ScaleY, d.Hidden.Y),
	}), nil
}

// --- Fade (color/alpha-like) ---

// FadeDefinition animates the node's Alpha between a hidden and a shown
// opacity.
type FadeDefinition struct {
	HiddenAlpha float64
	ShownAlpha  float64
	Timing
}

func (d *FadeDefinition) Validate() error {
	if err := d.Timing.validate(); err != nil {
		return err
	}
	if d.HiddenAlpha < 0 || d.HiddenAlpha > 1 {
		return &ConfigurationError{Field: "hiddenAlpha", Detail: "must be in [0, 1]"}
	}
	if d.ShownAlpha < 0 || d.ShownAlpha > 1 {
		return &ConfigurationError{Field: "shownAlpha", Detail: "must be in [0, 1]"}
	}
	return nil
}

func (d *FadeDefinition) Forward(n *Node) (*Playback, error) {
	if err := checkTarget("Forward", n); err != nil {
		return nil, err
	}
	return newPlayback(n, []track{d.forwardTrack(&n.Alpha, d.ShownAlpha)}), nil
}

func (d *FadeDefinition) Reverse(n *Node) (*Playback, error) {
	if err := checkTarget("Reverse", n); err != nil {
		return nil, err
	}
	return newPlayback(n, []track{d.reverseTrack(&n.Alpha, d.HiddenAlpha)}), nil
}

// --- Slide (transform-like) ---

// SlideDefinition animates the node's position between a hidden and a shown
// point, e.g. an off-screen drawer sliding in.
type SlideDefinition struct {
	Hidden Vec2
	Shown  Vec2
	Timing
}

func (d *SlideDefinition) Validate() error {
	return d.Timing.validate()
}

func (d *SlideDefinition) Forward(n *Node) (*Playback, error) {
	if err := checkTarget("Forward", n); err != nil {
		return nil, err
	}
	return newPlayback(n, []track{
		d.forwardTrack(&n.X, d.Shown.X),
		d.forwardTrack(&n.Y, d.Shown.Y),
	}), nil
}

func (d *SlideDefinition) Reverse(n *Node) (*Playback, error) {
	if err := checkTarget("Reverse", n); err != nil {
		return nil, err
	}
	return newPlayback(n, []track{
		d.reverseTrack(&n.X, d.Hidden.X),
		d.reverseTrack(&n.Y, d.Hidden.Y),
	}), nil
}

// --- Rect (layout-like) ---

// RectDefinition animates the node's position and size together between a
// hidden and a shown rectangle (four tracks on a single playback).
type RectDefinition struct {
	Hidden Rect
	Shown  Rect
	Timing
}

func (d *RectDefinition) Validate() error {
	if err := d.Timing.validate(); err != nil {
		return err
	}
	if d.Shown.Width < 0 || d.Shown.Height < 0 || d.Hidden.Width < 0 || d.Hidden.Height < 0 {
		return &ConfigurationError{Field: "rect", Detail: "width/height must be >= 0"}
	}
	return nil
}

func (d *RectDefinition) Forward(n *Node) (*Playback, error) {
	if err := checkTarget("Forward", n); err != nil {
		return nil, err
	}
	return newPlayback(n, []track{
		d.forwardTrack(&n.X, d.Shown.X),
		d.forwardTrack(&n.Y, d.Shown.Y),
		d.forwardTrack(&n.Width, d.Shown.Width),
		d.forwardTrack(&n.Height, d.Shown.Height),
	}), nil
}

func (d *RectDefinition) Reverse(n *Node) (*Playback, error) {
	if err := checkTarget("Reverse", n); err != nil {
		return nil, err
	}
	return newPlayback(n, []track{
		d.reverseTrack(&n.X, d.Hidden.X),
		d.reverseTrack(&n.Y, d.Hidden.Y),
		d.reverseTrack(&n.Width, d.Hidden.Width),
		d.reverseTrack(&n.Height, d.Hidden.Height),
	}), nil
}
