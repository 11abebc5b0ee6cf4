package tdc

import (
	"strings"
	"testing"
)

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"malformed", `{"steps": [`, "parse test script"},
		{"empty", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "tap"}, {"action": "fling"}]}`, `step 1: unknown action "fling"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestTestRunnerWaitOnly(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 2}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s := NewScriptedSampler()

	frames := 0
	for !r.Done() && frames < 10 {
		r.Step(s)
		frames++
	}
	if frames != 3 {
		t.Errorf("frames = %d, want 3", frames)
	}
	r.Step(s)
	if s.Pending() != 0 {
		t.Error("Step after Done queued frames")
	}
}

func TestTestRunnerDrivesInput(t *testing.T) {
	script := `{"steps": [
		{"action": "tap", "x": 100, "y": 100},
		{"action": "wait", "frames": 3},
		{"action": "drag", "fromX": 0, "fromY": 0, "toX": 60, "toY": 0, "frames": 4},
		{"action": "pinch", "fromX": 100, "fromY": 100, "from2X": 300, "from2Y": 100,
		 "toX": 50, "toY": 100, "to2X": 350, "to2Y": 100, "frames": 4},
		{"action": "hold", "x": 10, "y": 10, "frames": 5}
	]}`
	r, err := LoadTestScript([]byte(script))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}

	in, log := newLoggedInput()
	s := NewScriptedSampler()
	for i := 0; i < 100 && !r.Done(); i++ {
		r.Step(s)
		in.Update(0.125, s.Sample())
	}
	if !r.Done() {
		t.Fatal("script did not finish")
	}

	tests := []struct {
		key  GestureKey
		ev   KeyEvent
		want int
	}{
		{Tap, Pressed, 1},
		{Swipe, Pressed, 1},
		{Swipe, Released, 1},
		{Pinch, Pressed, 1},
		{Pinch, Released, 1},
		{SwipeTwoPoints, Pressed, 0},
		{Hold, Pressed, 1},
		{Hold, Released, 1},
	}
	for _, tt := range tests {
		if got := log.count(tt.key, tt.ev); got != tt.want {
			t.Errorf("%s %s = %d, want %d", tt.key, tt.ev, got, tt.want)
		}
	}

	if e, ok := log.first(Swipe, Pressed); !ok || e.Position != (Vec2{0, 0}) {
		t.Errorf("Swipe Pressed at %v, want drag start (0,0)", e.Position)
	}
}
