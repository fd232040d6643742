package wisp

import (
	"fmt"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Authored definition catalogues are plain YAML:
//
//	definitions:
//	  panel:
//	    kind: scale
//	    hidden: {x: 0, y: 0}
//	    shown: {x: 1, y: 1}
//	    duration: 0.25
//	    ease: outBack
//	    reverse:
//	      duration: 0.15
//	      ease: inQuad
//	  toast:
//	    kind: fade
//	    shownAlpha: 1
//	    duration: 0.2
//	    curve: [[0, 0], [0.3, 0.8], [1, 1]]
//	  tooltip:
//	    kind: popExpand
//	    collapsed: {width: 24, height: 24}
//	    expanded: {x: 10, y: 10, width: 200, height: 80}
//	    pop: {duration: 0.15, ease: outBack}
//	    expand: {duration: 0.2, ease: outCubic}
//
// Kinds: scale, fade, slide, rect, popExpand. Easing is either a named curve
// ("ease") or explicit samples ("curve"); "reverse" overrides timing for the
// reverse direction. All validation problems surface here as
// ConfigurationError — never later during playback.

type vecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type rectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (r rectSpec) rect() Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// easeSpec is one timing block: a duration plus a named ease or sample curve.
type easeSpec struct {
	Duration float64     `yaml:"duration"`
	Ease     string      `yaml:"ease"`
	Curve    [][]float64 `yaml:"curve"`
}

type defSpec struct {
	Kind string `yaml:"kind"`

	// Forward timing, plus an optional separate reverse block.
	Duration float64     `yaml:"duration"`
	Ease     string      `yaml:"ease"`
	Curve    [][]float64 `yaml:"curve"`
	Reverse  *easeSpec   `yaml:"reverse"`

	// scale / slide
	Hidden vecSpec `yaml:"hidden"`
	Shown  vecSpec `yaml:"shown"`

	// fade
	HiddenAlpha float64 `yaml:"hiddenAlpha"`
	ShownAlpha  float64 `yaml:"shownAlpha"`

	// rect
	HiddenRect rectSpec `yaml:"hiddenRect"`
	ShownRect  rectSpec `yaml:"shownRect"`

	// popExpand
	Collapsed rectSpec  `yaml:"collapsed"`
	Expanded  rectSpec  `yaml:"expanded"`
	Pop       *easeSpec `yaml:"pop"`
	Expand    *easeSpec `yaml:"expand"`
}

type catalogueSpec struct {
	Definitions map[string]defSpec `yaml:"definitions"`
}

// LoadDefinitions parses a YAML definition catalogue and returns validated,
// ready-to-use definitions keyed by name.
func LoadDefinitions(data []byte) (map[string]Definition, error) {
	var spec catalogueSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("wisp: failed to parse definition catalogue: %w", err)
	}
	if len(spec.Definitions) == 0 {
		return nil, fmt.Errorf("wisp: definition catalogue has no definitions")
	}

	out := make(map[string]Definition, len(spec.Definitions))
	for name, ds := range spec.Definitions {
		def, err := buildDefinition(ds)
		if err != nil {
			return nil, fmt.Errorf("wisp: definition %q: %w", name, err)
		}
		out[name] = def
	}
	return out, nil
}

func buildDefinition(ds defSpec) (Definition, error) {
	switch ds.Kind {
	case "scale":
		timing, err := ds.timing()
		if err != nil {
			return nil, err
		}
		def := &ScaleDefinition{
			Hidden: Vec2{X: ds.Hidden.X, Y: ds.Hidden.Y},
			Shown:  Vec2{X: ds.Shown.X, Y: ds.Shown.Y},
			Timing: timing,
		}
		return def, def.Validate()

	case "fade":
		timing, err := ds.timing()
		if err != nil {
			return nil, err
		}
		def := &FadeDefinition{
			HiddenAlpha: ds.HiddenAlpha,
			ShownAlpha:  ds.ShownAlpha,
			Timing:      timing,
		}
		return def, def.Validate()

	case "slide":
		timing, err := ds.timing()
		if err != nil {
			return nil, err
		}
		def := &SlideDefinition{
			Hidden: Vec2{X: ds.Hidden.X, Y: ds.Hidden.Y},
			Shown:  Vec2{X: ds.Shown.X, Y: ds.Shown.Y},
			Timing: timing,
		}
		return def, def.Validate()

	case "rect":
		timing, err := ds.timing()
		if err != nil {
			return nil, err
		}
		def := &RectDefinition{
			Hidden: ds.HiddenRect.rect(),
			Shown:  ds.ShownRect.rect(),
			Timing: timing,
		}
		return def, def.Validate()

	case "popExpand":
		if ds.Pop == nil || ds.Expand == nil {
			return nil, &ConfigurationError{Field: "pop/expand", Detail: "popExpand requires pop and expand timing blocks"}
		}
		pop, err := blockTiming(*ds.Pop)
		if err != nil {
			return nil, err
		}
		expand, err := blockTiming(*ds.Expand)
		if err != nil {
			return nil, err
		}
		return PopExpand(ds.Collapsed.rect(), ds.Expanded.rect(), pop, expand)

	case "":
		return nil, &ConfigurationError{Field: "kind", Detail: "missing"}
	default:
		return nil, &ConfigurationError{Field: "kind", Detail: "unknown kind " + ds.Kind}
	}
}

// timing assembles the forward timing and optional reverse override of an
// elementary definition.
func (ds defSpec) timing() (Timing, error) {
	t, err := blockTiming(easeSpec{Duration: ds.Duration, Ease: ds.Ease, Curve: ds.Curve})
	if err != nil {
		return Timing{}, err
	}
	if ds.Reverse != nil {
		t.ReverseDuration = ds.Reverse.Duration
		rfn, err := buildCurve(*ds.Reverse)
		if err != nil {
			return Timing{}, err
		}
		t.ReverseEase = rfn
	}
	return t, nil
}

func blockTiming(es easeSpec) (Timing, error) {
	fn, err := buildCurve(es)
	if err != nil {
		return Timing{}, err
	}
	return Timing{Duration: es.Duration, Ease: fn}, nil
}

// buildCurve resolves a named ease or explicit sample curve; nil means
// "inherit the default" (linear for forward, mirror for reverse).
func buildCurve(es easeSpec) (ease.TweenFunc, error) {
	if es.Ease != "" && len(es.Curve) > 0 {
		return nil, &ConfigurationError{Field: "ease", Detail: "ease and curve are mutually exclusive"}
	}
	if es.Ease != "" {
		return CurveByName(es.Ease)
	}
	if len(es.Curve) > 0 {
		points := make([]Vec2, len(es.Curve))
		for i, p := range es.Curve {
			if len(p) != 2 {
				return nil, &ConfigurationError{Field: "curve", Detail: "each sample must be [time, value]"}
			}
			points[i] = Vec2{X: p[0], Y: p[1]}
		}
		return SampleCurve(points)
	}
	return nil, nil
}
