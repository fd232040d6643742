package wisp

// Stage is one step of a SequenceDefinition: a sub-definition plus a fixed
// delay, in seconds, relative to the start of the previous stage (relative to
// playback start for the first stage).
type Stage struct {
	Def   Definition
	Delay float64
}

// SequenceDefinition joins several sub-definitions into one composite
// animation, each stage starting a fixed delay after the previous one.
//
// The reverse of a composite is never derived automatically: ReverseStages
// must be authored explicitly, and each listed stage plays its definition's
// reverse direction. This keeps state-aware teardown (e.g. shrinking back to
// an explicitly configured collapsed size) an authoring decision instead of
// a guessed inversion.
type SequenceDefinition struct {
	ForwardStages []Stage
	ReverseStages []Stage
}

func (d *SequenceDefinition) Validate() error {
	if len(d.ForwardStages) == 0 {
		return &ConfigurationError{Field: "forwardStages", Detail: "must not be empty"}
	}
	if len(d.ReverseStages) == 0 {
		return &ConfigurationError{Field: "reverseStages", Detail: "must not be empty; composite reverses are always explicit"}
	}
	for _, s := range append(append([]Stage{}, d.ForwardStages...), d.ReverseStages...) {
		if s.Def == nil {
			return &ConfigurationError{Field: "stage", Detail: "nil definition"}
		}
		if s.Delay < 0 {
			return &ConfigurationError{Field: "stage", Detail: "delay must be >= 0"}
		}
		if err := s.Def.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (d *SequenceDefinition) Forward(n *Node) (*Playback, error) {
	return d.build(n, d.ForwardStages, func(def Definition) (*Playback, error) { return def.Forward(n) })
}

func (d *SequenceDefinition) Reverse(n *Node) (*Playback, error) {
	return d.build(n, d.ReverseStages, func(def Definition) (*Playback, error) { return def.Reverse(n) })
}

// build merges the stages' tracks into one playback, offsetting each stage's
// tracks by its cumulative start time. Sub-playbacks are only used as track
// factories; their tweens are created lazily so constructing and discarding
// them has no side effects on the node.
func (d *SequenceDefinition) build(n *Node, stages []Stage, direction func(Definition) (*Playback, error)) (*Playback, error) {
	if err := checkTarget("Sequence", n); err != nil {
		return nil, err
	}
	var tracks []track
	offset := 0.0
	for _, s := range stages {
		offset += s.Delay
		sub, err := direction(s.Def)
		if err != nil {
			return nil, err
		}
		for _, tr := range sub.tracks {
			tr.delay += float32(offset)
			tracks = append(tracks, tr)
		}
	}
	return newPlayback(n, tracks), nil
}

// PopExpand builds the common two-stage "scale in, then expand" composite:
// the node pops from zero scale to full scale, then its rectangle grows from
// collapsed to expanded. The reverse is the explicit mirror composite —
// shrink the rectangle back to collapsed, then scale out.
//
// The collapsed rectangle is required: it is the size the reverse falls back
// to, and there is no implicit default for it.
func PopExpand(collapsed, expanded Rect, pop, expand Timing) (*SequenceDefinition, error) {
	if collapsed.Width <= 0 || collapsed.Height <= 0 {
		return nil, &ConfigurationError{Field: "collapsed", Detail: "collapsed size is required and must be positive"}
	}
	if expanded.Width <= 0 || expanded.Height <= 0 {
		return nil, &ConfigurationError{Field: "expanded", Detail: "expanded size must be positive"}
	}

	scale := &ScaleDefinition{Hidden: Vec2{}, Shown: Vec2{X: 1, Y: 1}, Timing: pop}
	rect := &RectDefinition{Hidden: collapsed, Shown: expanded, Timing: expand}

	seq := &SequenceDefinition{
		ForwardStages: []Stage{
			{Def: scale},
			{Def: rect, Delay: pop.Duration},
		},
		ReverseStages: []Stage{
			{Def: rect},
			{Def: scale, Delay: expand.reverseDuration()},
		},
	}
	if err := seq.Validate(); err != nil {
		return nil, err
	}
	return seq, nil
}
