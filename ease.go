package wisp

import (
	"github.com/tanema/gween/ease"
)

// namedCurves maps authoring names to gween easing functions. Names are
// lower-case; CurveByName is case-sensitive on purpose so config typos fail
// loudly instead of silently falling back.
var namedCurves = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"inQuart":      ease.InQuart,
	"outQuart":     ease.OutQuart,
	"inOutQuart":   ease.InOutQuart,
	"inQuint":      ease.InQuint,
	"outQuint":     ease.OutQuint,
	"inOutQuint":   ease.InOutQuint,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"inExpo":       ease.InExpo,
	"outExpo":      ease.OutExpo,
	"inOutExpo":    ease.InOutExpo,
	"inCirc":       ease.InCirc,
	"outCirc":      ease.OutCirc,
	"inOutCirc":    ease.InOutCirc,
	"inBack":       ease.InBack,
	"outBack":      ease.OutBack,
	"inOutBack":    ease.InOutBack,
	"inElastic":    ease.InElastic,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
	"inBounce":     ease.InBounce,
	"outBounce":    ease.OutBounce,
	"inOutBounce":  ease.InOutBounce,
}

// CurveByName resolves an authoring curve name ("linear", "outBack", ...) to
// its easing function. Returns a ConfigurationError for unknown names.
func CurveByName(name string) (ease.TweenFunc, error) {
	fn, ok := namedCurves[name]
	if !ok {
		return nil, &ConfigurationError{Field: "ease", Detail: "unknown curve name " + name}
	}
	return fn, nil
}

// SampleCurve builds an easing function from explicit curve samples. Each
// point is (time, value) with time in [0, 1]; values between samples are
// linearly interpolated. The sample list must start at time 0, end at time 1,
// and have strictly increasing times. Values are unconstrained so overshoot
// curves (back/elastic style) can be authored.
func SampleCurve(points []Vec2) (ease.TweenFunc, error) {
	if len(points) < 2 {
		return nil, &ConfigurationError{Field: "curve", Detail: "needs at least 2 samples"}
	}
	if points[0].X != 0 {
		return nil, &ConfigurationError{Field: "curve", Detail: "first sample time must be 0"}
	}
	if points[len(points)-1].X != 1 {
		return nil, &ConfigurationError{Field: "curve", Detail: "last sample time must be 1"}
	}
	for i := 1; i < len(points); i++ {
		if points[i].X <= points[i-1].X {
			return nil, &ConfigurationError{Field: "curve", Detail: "sample times must be strictly increasing"}
		}
	}

	// Copy so later mutation of the caller's slice cannot change the curve.
	samples := make([]Vec2, len(points))
	copy(samples, points)

	return func(t, b, c, d float32) float32 {
		p := clamp(float64(t)/float64(d), 0, 1)
		v := samples[len(samples)-1].Y
		for i := 1; i < len(samples); i++ {
			if p <= samples[i].X {
				lo, hi := samples[i-1], samples[i]
				frac := (p - lo.X) / (hi.X - lo.X)
				v = lo.Y + (hi.Y-lo.Y)*frac
				break
			}
		}
		return b + c*float32(v)
	}, nil
}
