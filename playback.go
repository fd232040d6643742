package wisp

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// track animates one float64 field of the target node. The gween tween is
// created lazily when the track's start delay expires, so it begins from
// whatever value the field holds at that instant — this is what makes
// interrupted transitions resume from their current position instead of
// snapping back to a defined start value.
type track struct {
	field    *float64
	to       float64
	duration float32
	easeFn   ease.TweenFunc
	delay    float32
	tween    *gween.Tween
	finished bool
}

// Playback is the live handle to one in-flight animation on a node. It is
// created by a Definition, owned by exactly one controller slot, and pumped
// with Update until it resolves.
//
// A playback resolves exactly once: either OnComplete fires (natural finish
// or ForceComplete) or OnCancelled fires (Cancel, or the target was disposed
// mid-flight). A handle discarded before its first Update resolves to
// neither if it is never force-resolved.
type Playback struct {
	target *Node
	tracks []track

	// OnComplete fires when every track reaches its end value, or on
	// ForceComplete. At most once, mutually exclusive with OnCancelled.
	OnComplete func()

	// OnCancelled fires on Cancel. At most once, mutually exclusive with
	// OnComplete.
	OnCancelled func()

	resolved bool
}

// newPlayback wraps tracks for a validated target. Definitions call this
// after checkTarget has passed.
func newPlayback(target *Node, tracks []track) *Playback {
	return &Playback{target: target, tracks: tracks}
}

// Target returns the node this playback animates.
func (p *Playback) Target() *Node {
	return p.target
}

// Active reports whether the playback is still unresolved (running or not
// yet started).
func (p *Playback) Active() bool {
	return !p.resolved
}

// Update advances the playback by dt seconds, writing interpolated values to
// the target's fields. If the target has been disposed, the playback cancels
// without touching it. Completion fires synchronously from the Update call
// that finishes the last track.
func (p *Playback) Update(dt float32) {
	if p.resolved {
		return
	}
	if p.target.IsDisposed() {
		p.Cancel()
		return
	}

	allDone := true
	for i := range p.tracks {
		tr := &p.tracks[i]
		if tr.finished {
			continue
		}
		step := dt
		if tr.tween == nil {
			tr.delay -= dt
			if tr.delay > 0 {
				allDone = false
				continue
			}
			// Spend the delay remainder of this frame on the fresh tween.
			step = -tr.delay
			tr.tween = gween.New(float32(*tr.field), float32(tr.to), tr.duration, tr.easeFn)
		}
		val, fin := tr.tween.Update(step)
		*tr.field = float64(val)
		if fin {
			tr.finished = true
		} else {
			allDone = false
		}
	}

	if allDone {
		p.resolve(p.OnComplete)
	}
}

// ForceComplete synchronously snaps every track to its end value and fires
// OnComplete. No-op if the playback is already resolved.
func (p *Playback) ForceComplete() {
	if p.resolved {
		return
	}
	if !p.target.IsDisposed() {
		for i := range p.tracks {
			*p.tracks[i].field = p.tracks[i].to
		}
	}
	p.resolve(p.OnComplete)
}

// Cancel abandons the playback at whatever interpolated values the target
// currently holds and fires OnCancelled. No-op if already resolved.
func (p *Playback) Cancel() {
	if p.resolved {
		return
	}
	p.resolve(p.OnCancelled)
}

// resolve marks the playback finished and fires fn. The flag is set before
// the callback runs so a reentrant ForceComplete/Cancel from inside the
// callback is a no-op.
func (p *Playback) resolve(fn func()) {
	p.resolved = true
	if fn != nil {
		fn()
	}
}
