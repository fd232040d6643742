package wisp

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTimingValidate(t *testing.T) {
	tests := []struct {
		name   string
		timing Timing
		ok     bool
	}{
		{"valid", Timing{Duration: 0.3}, true},
		{"valid with reverse", Timing{Duration: 0.3, ReverseDuration: 0.1}, true},
		{"zero duration", Timing{}, false},
		{"negative duration", Timing{Duration: -1}, false},
		{"negative reverse", Timing{Duration: 0.3, ReverseDuration: -0.1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.timing.validate()
			if (err == nil) != tt.ok {
				t.Errorf("validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestTimingReverseMirrorsForwardAtReadTime(t *testing.T) {
	timing := Timing{Duration: 0.4, Ease: ease.OutCubic}

	if timing.HasSeparateReverse() {
		t.Fatal("no separate reverse configured")
	}
	if got := timing.reverseDuration(); got != 0.4 {
		t.Errorf("reverseDuration() = %f, want mirrored 0.4", got)
	}

	// Changing the forward values changes what the reverse reads — the mirror
	// is never stored.
	timing.Duration = 0.8
	if got := timing.reverseDuration(); got != 0.8 {
		t.Errorf("reverseDuration() = %f after edit, want 0.8", got)
	}
}

func TestTimingSeparateReverse(t *testing.T) {
	timing := Timing{Duration: 0.4, ReverseDuration: 0.1, ReverseEase: ease.InQuad}
	if !timing.HasSeparateReverse() {
		t.Fatal("expected separate reverse")
	}
	if got := timing.reverseDuration(); got != 0.1 {
		t.Errorf("reverseDuration() = %f, want 0.1", got)
	}
}

func TestSeparateReverseDurationDrivesPlayback(t *testing.T) {
	node := NewNode("revdur")
	node.Alpha = 1

	def := &FadeDefinition{
		HiddenAlpha: 0,
		ShownAlpha:  1,
		Timing:      Timing{Duration: 1.0, ReverseDuration: 0.2},
	}
	pb, err := def.Reverse(node)
	if err != nil {
		t.Fatalf("Reverse: %v", err)
	}

	pb.Update(0.1)
	pb.Update(0.1)
	if pb.Active() {
		t.Error("reverse should finish after its separate 0.2s duration")
	}
	if math.Abs(node.Alpha) > 0.01 {
		t.Errorf("Alpha = %f, want ~0", node.Alpha)
	}
}

func TestFadeDefinitionValidate(t *testing.T) {
	tests := []struct {
		name string
		def  FadeDefinition
		ok   bool
	}{
		{"valid", FadeDefinition{ShownAlpha: 1, Timing: Timing{Duration: 0.2}}, true},
		{"alpha above range", FadeDefinition{ShownAlpha: 1.5, Timing: Timing{Duration: 0.2}}, false},
		{"alpha below range", FadeDefinition{HiddenAlpha: -0.1, ShownAlpha: 1, Timing: Timing{Duration: 0.2}}, false},
		{"bad duration", FadeDefinition{ShownAlpha: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestSlideDefinitionAnimatesPosition(t *testing.T) {
	node := NewNode("slide")
	node.X, node.Y = -200, 100

	def := &SlideDefinition{
		Hidden: Vec2{X: -200, Y: 100},
		Shown:  Vec2{X: 40, Y: 100},
		Timing: Timing{Duration: 0.5, Ease: ease.Linear},
	}
	pb, _ := def.Forward(node)
	pb.Update(0.25)
	pb.Update(0.25)

	if math.Abs(node.X-40) > 0.5 || math.Abs(node.Y-100) > 0.5 {
		t.Errorf("position = (%f, %f), want ~(40, 100)", node.X, node.Y)
	}
}

func TestRectDefinitionAnimatesAllFourFields(t *testing.T) {
	node := NewNode("rect")
	node.X, node.Y, node.Width, node.Height = 50, 50, 20, 20

	def := &RectDefinition{
		Hidden: Rect{X: 50, Y: 50, Width: 20, Height: 20},
		Shown:  Rect{X: 10, Y: 10, Width: 200, Height: 100},
		Timing: Timing{Duration: 1.0, Ease: ease.Linear},
	}
	pb, _ := def.Forward(node)
	pb.Update(0.5)
	pb.Update(0.5)

	for _, check := range []struct {
		name string
		got  float64
		want float64
	}{
		{"X", node.X, 10}, {"Y", node.Y, 10},
		{"Width", node.Width, 200}, {"Height", node.Height, 100},
	} {
		if math.Abs(check.got-check.want) > 0.5 {
			t.Errorf("%s = %f, want ~%f", check.name, check.got, check.want)
		}
	}
}

// --- Composite ---

func TestSequenceDefinitionRequiresExplicitReverse(t *testing.T) {
	seq := &SequenceDefinition{
		ForwardStages: []Stage{{Def: scaleDef(0.2)}},
	}
	if err := seq.Validate(); err == nil {
		t.Fatal("expected validation error for missing reverse stages")
	}
}

func TestSequenceStagesRunWithRelativeDelays(t *testing.T) {
	node := NewNode("seq")
	node.ScaleX, node.ScaleY = 0, 0
	node.Alpha = 0

	seq := &SequenceDefinition{
		ForwardStages: []Stage{
			{Def: scaleDef(0.2)},
			{Def: &FadeDefinition{ShownAlpha: 1, Timing: Timing{Duration: 0.2, Ease: ease.Linear}}, Delay: 0.2},
		},
		ReverseStages: []Stage{
			{Def: &FadeDefinition{ShownAlpha: 1, Timing: Timing{Duration: 0.2, Ease: ease.Linear}}},
			{Def: scaleDef(0.2), Delay: 0.2},
		},
	}
	if err := seq.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	pb, err := seq.Forward(node)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}

	// Stage one only: scale moves, alpha still waiting on its delay.
	pb.Update(0.1)
	if node.ScaleX <= 0 {
		t.Error("stage one should have started")
	}
	if node.Alpha != 0 {
		t.Errorf("Alpha = %f, stage two should not have started yet", node.Alpha)
	}

	// Cross the stage boundary and finish.
	pb.Update(0.1)
	pb.Update(0.1)
	pb.Update(0.1)
	if pb.Active() {
		t.Fatal("sequence should be resolved after both stages")
	}
	if math.Abs(node.ScaleX-1) > 0.01 || math.Abs(node.Alpha-1) > 0.01 {
		t.Errorf("scale=%f alpha=%f, want both ~1", node.ScaleX, node.Alpha)
	}
}

func TestPopExpandRequiresCollapsedSize(t *testing.T) {
	timing := Timing{Duration: 0.2}
	if _, err := PopExpand(Rect{}, Rect{Width: 100, Height: 50}, timing, timing); err == nil {
		t.Fatal("expected error for missing collapsed size")
	}
	if _, err := PopExpand(Rect{Width: 20, Height: 20}, Rect{}, timing, timing); err == nil {
		t.Fatal("expected error for missing expanded size")
	}
	if _, err := PopExpand(Rect{Width: 20, Height: 20}, Rect{Width: 100, Height: 50}, timing, timing); err != nil {
		t.Fatalf("valid PopExpand rejected: %v", err)
	}
}

func TestPopExpandForwardScalesThenExpands(t *testing.T) {
	node := NewNode("pop")
	node.ScaleX, node.ScaleY = 0, 0
	node.Width, node.Height = 20, 20

	seq, err := PopExpand(
		Rect{Width: 20, Height: 20},
		Rect{Width: 200, Height: 100},
		Timing{Duration: 0.2, Ease: ease.Linear},
		Timing{Duration: 0.2, Ease: ease.Linear},
	)
	if err != nil {
		t.Fatalf("PopExpand: %v", err)
	}

	pb, _ := seq.Forward(node)

	// During the pop stage the rectangle must not grow yet.
	pb.Update(0.1)
	if node.Width != 20 {
		t.Errorf("Width = %f during pop stage, want 20", node.Width)
	}

	pb.Update(0.1)
	pb.Update(0.1)
	pb.Update(0.1)
	if pb.Active() {
		t.Fatal("expected resolved")
	}
	if math.Abs(node.Width-200) > 0.5 || math.Abs(node.ScaleX-1) > 0.01 {
		t.Errorf("width=%f scale=%f, want ~200 / ~1", node.Width, node.ScaleX)
	}
}
