package tdc

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a gesture script.
type testStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	From2X float64 `json:"from2X,omitempty"`
	From2Y float64 `json:"from2Y,omitempty"`
	To2X   float64 `json:"to2X,omitempty"`
	To2Y   float64 `json:"to2Y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a gesture script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences scripted gestures across frames. Call Step once per
// frame before the sampler is read.
//
// Supported actions: "tap" (x, y), "hold" (x, y, frames), "drag" (fromX,
// fromY, toX, toY, frames), "pinch" (fromX, fromY, from2X, from2Y, toX,
// toY, to2X, to2Y, frames) and "wait" (frames).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON gesture script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("tdc: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("tdc: parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "tap", "hold", "drag", "pinch", "wait":
		default:
			return nil, fmt.Errorf("tdc: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed and their frames
// sampled.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame, queueing the next step's frames
// on s once the previous ones have been consumed.
func (r *TestRunner) Step(s *ScriptedSampler) {
	if r.done {
		return
	}
	// Wait for pending frames to drain before advancing.
	if s.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "tap":
		s.InjectTap(st.X, st.Y)
	case "hold":
		s.InjectHold(st.X, st.Y, st.Frames)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "pinch":
		s.InjectTwoPoint(
			Vec2{st.FromX, st.FromY}, Vec2{st.From2X, st.From2Y},
			Vec2{st.ToX, st.ToY}, Vec2{st.To2X, st.To2Y},
			st.Frames,
		)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && s.Pending() == 0 {
		r.done = true
	}
}
