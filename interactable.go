package wisp

import (
	"github.com/tanema/gween/ease"
)

// Defaults for the enable/disable cross-fade.
const (
	DefaultDisabledOpacity         = 0.4
	DefaultStateTransitionDuration = 0.15
)

// StateFade is the interactable-state sub-behavior of PressController: when
// enabled/disabled state changes, it cross-fades the node's alpha between
// full opacity and DisabledOpacity on its own handle slot. Tracking the
// state handle separately from the press handle means a state change
// mid-press cannot clobber press feedback, and vice versa.
type StateFade struct {
	// AnimateChange enables the cross-fade. When false, state changes have
	// no visual effect.
	AnimateChange bool

	// DisabledOpacity is the alpha shown while non-interactable, in (0, 1].
	DisabledOpacity float64

	// TransitionDuration is the cross-fade duration in seconds. Must be > 0.
	TransitionDuration float64

	node   *Node
	handle *Playback
}

func newStateFade(node *Node) StateFade {
	return StateFade{
		DisabledOpacity:    DefaultDisabledOpacity,
		TransitionDuration: DefaultStateTransitionDuration,
		node:               node,
	}
}

// Validate checks the cross-fade configuration.
func (f *StateFade) Validate() error {
	if f.DisabledOpacity <= 0 || f.DisabledOpacity > 1 {
		return &ConfigurationError{Field: "disabledOpacity", Detail: "must be in (0, 1]"}
	}
	if f.TransitionDuration <= 0 {
		return &ConfigurationError{Field: "stateTransitionDuration", Detail: "must be > 0"}
	}
	return nil
}

// apply starts the cross-fade toward the enabled or disabled opacity. The
// previous fade, if still running, is cancelled at its current value so the
// new fade continues from there.
func (f *StateFade) apply(enabled bool) {
	if !f.AnimateChange || f.node.IsDisposed() {
		return
	}
	if f.handle != nil {
		f.handle.Cancel()
	}

	def := &FadeDefinition{
		HiddenAlpha: f.DisabledOpacity,
		ShownAlpha:  1,
		Timing:      Timing{Duration: f.TransitionDuration, Ease: ease.OutQuad},
	}
	var pb *Playback
	var err error
	if enabled {
		pb, err = def.Forward(f.node)
	} else {
		pb, err = def.Reverse(f.node)
	}
	if err != nil {
		return
	}

	f.handle = pb
	clear := func() {
		if f.handle != pb {
			debugf("stale state-fade callback on %q ignored", f.node.Name)
			return
		}
		f.handle = nil
	}
	pb.OnComplete = clear
	pb.OnCancelled = clear
}

// update pumps the cross-fade.
func (f *StateFade) update(dt float32) {
	if f.handle != nil {
		f.handle.Update(dt)
	}
}
