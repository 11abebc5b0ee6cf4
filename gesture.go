package tdc

import "math"

// --- Constants ---

const (
	holdTime               = 0.3   // seconds before a press becomes a hold
	maxSwipeDistance       = 150.0 // two-point swipe only if the initial spread is lower
	pinchDistanceThreshold = 150.0 // spread change that abandons a two-point swipe
	pinchMoveThreshold     = 50.0  // midpoint travel that abandons a pinch
)

// Contact is the raw state of one pointer for one frame.
type Contact struct {
	Active   bool
	Position Vec2
}

// KeyState is the per-gesture state kept by Input.
//
// Events count this frame's transitions and are cleared after dispatch.
// Down is the state before this frame's transition is committed, so a
// handler sees Events[Pressed] > 0 with Down == false on the frame a
// gesture begins.
type KeyState struct {
	Events    [numKeyEvents]uint8
	Down      bool
	Position  Vec2
	Position2 Vec2
	DownTime  float64
}

// Fired reports whether e occurred this frame.
func (ks KeyState) Fired(e KeyEvent) bool {
	return e < numKeyEvents && ks.Events[e] > 0
}

// Input classifies raw pointer samples into gestures once per frame and
// dispatches them to bound actions.
type Input struct {
	states  [numGestureKeys]KeyState
	created [numGestureKeys]bool

	// anchors[0] doubles as the one-point anchor, as a two-point gesture
	// always starts from contact 0.
	anchors [2]Vec2

	touch0DownTime     float64
	twoPointsDownTime  float64
	maxPinchDistanceSq float64

	prevTouch0    bool
	prevPos0      Vec2
	prevTwoPoints bool
	twoPoints     bool
	suspended     bool // one-point detection was skipped for a two-point gesture

	bindings bindingRegistry
	store    EventStore
	debug    bool
}

// NewInput creates a gesture recognizer with no bindings.
func NewInput() *Input {
	return &Input{}
}

// Update runs one frame of detection over the given contacts, invokes the
// bound actions for every gesture event raised this frame, then commits
// the transitions and clears the event counters.
// Contact 0 is the mouse or first finger; contact 1 the second finger.
func (in *Input) Update(dt float64, contacts [2]Contact) {
	touch0 := contacts[0].Active
	twoPoints := touch0 && contacts[1].Active

	// One-point detection stays off for the frame both contacts come down
	// and the frame they lift.
	suppressed := twoPoints || in.twoPoints
	in.detectOnePoint(suppressed, touch0, in.prevTouch0, dt, contacts[0].Position)
	in.detectTwoPoints(twoPoints, in.prevTwoPoints, dt, contacts[0].Position, contacts[1].Position)

	in.prevTouch0 = touch0
	in.prevPos0 = contacts[0].Position
	in.prevTwoPoints = twoPoints

	in.dispatch()
	in.commit()
}

// KeyState returns a copy of the state for key. The second result is false
// when the gesture has never been referenced; the zero state is returned.
func (in *Input) KeyState(key GestureKey) (KeyState, bool) {
	if key >= numGestureKeys || !in.created[key] {
		return KeyState{}, false
	}
	return in.states[key], true
}

// TouchAnchor returns the screen position where contact i began its
// current gesture. Out-of-range indices return the zero vector.
func (in *Input) TouchAnchor(i int) Vec2 {
	if i < 0 || i >= len(in.anchors) {
		return Vec2{}
	}
	return in.anchors[i]
}

// TwoPointsActive reports whether both contacts were down on the last frame.
func (in *Input) TwoPointsActive() bool {
	return in.twoPoints
}

// SetEventStore sets the optional event sink. Every event raised in a frame
// is forwarded to it after the bound actions run.
func (in *Input) SetEventStore(store EventStore) {
	in.store = store
}

// state returns the state for key, creating it on first reference.
func (in *Input) state(key GestureKey) *KeyState {
	in.created[key] = true
	return &in.states[key]
}

func (in *Input) emit(key GestureKey, ev KeyEvent, pos Vec2, downTime float64) {
	ks := in.state(key)
	ks.Events[ev]++
	ks.Position = pos
	ks.DownTime = downTime
}

func (in *Input) emit2(key GestureKey, ev KeyEvent, pos1, pos2 Vec2, downTime float64) {
	ks := in.state(key)
	ks.Events[ev]++
	ks.Position = pos1
	ks.Position2 = pos2
	ks.DownTime = downTime
}

// --- One-point detection ---

func (in *Input) detectOnePoint(suppressed, active, prevActive bool, dt float64, pos Vec2) {
	if suppressed {
		in.suspended = true
		return
	}

	if in.suspended {
		// Contact 0 took part in a two-point gesture: push it past the hold
		// threshold so it can neither tap nor start a hold, and re-anchor so
		// the jump back to one-point mode is not read as motion.
		in.suspended = false
		in.touch0DownTime = math.Nextafter(math.Max(in.touch0DownTime, holdTime), math.Inf(1))
		if active {
			if !prevActive {
				// Contact 0 lifted with the other one and this is a new
				// press: close what the old press left open.
				in.closeOnePoint()
			}
			in.anchors[0] = pos
		} else {
			prevActive = true
		}
	}

	if active {
		if !prevActive {
			in.touch0DownTime = 0
			in.anchors[0] = pos
		}
		downTime := in.touch0DownTime
		anchor := in.anchors[0]

		swipe := in.state(Swipe)
		swipeOpen := swipe.Down && swipe.Events[Released] == 0
		if swipeOpen {
			in.emit(Swipe, Repeat, pos, downTime)
		} else if anchor.Sub(pos).LenSq() > 0 {
			// The swipe starts where the contact started, not where motion
			// was first seen.
			in.emit(Swipe, Pressed, anchor, downTime)
		}

		if downTime+dt > holdTime && downTime <= holdTime && !swipeOpen {
			in.emit(Hold, Pressed, anchor, downTime)
		}

		in.touch0DownTime += dt
		return
	}

	if !prevActive {
		return
	}

	// Just released. Tap and the Hold/Swipe releases are checked
	// independently, so one release may raise several events.
	downTime := in.touch0DownTime
	anchor := in.anchors[0]
	if downTime < holdTime {
		in.emit(Tap, Pressed, anchor, downTime)
	} else if in.state(Hold).Down {
		in.emit(Hold, Released, anchor, downTime)
	}

	if in.state(Swipe).Down {
		in.emit(Swipe, Released, pos, downTime)
	}
}

// closeOnePoint releases a Hold or Swipe still down at the position where
// contact 0 was last seen.
func (in *Input) closeOnePoint() {
	downTime := in.touch0DownTime
	if in.state(Hold).Down {
		in.emit(Hold, Released, in.anchors[0], downTime)
	}
	if in.state(Swipe).Down {
		in.emit(Swipe, Released, in.prevPos0, downTime)
	}
}

// --- Two-point detection ---

func (in *Input) detectTwoPoints(active, prevActive bool, dt float64, pos1, pos2 Vec2) {
	in.twoPoints = active

	if active {
		if !prevActive {
			in.anchors[0] = pos1
			in.anchors[1] = pos2
			in.twoPointsDownTime = 0
			in.maxPinchDistanceSq = 0

			// Open both hypotheses; the following frames decide between them.
			if pos1.Sub(pos2).LenSq() < maxSwipeDistance*maxSwipeDistance {
				in.emit2(SwipeTwoPoints, Pressed, pos1, pos2, in.twoPointsDownTime)
			}
			in.emit2(Pinch, Pressed, pos1, pos2, in.twoPointsDownTime)
		}

		anchorMid := in.anchors[0].Add(in.anchors[1]).Scale(0.5)
		mid := pos1.Add(pos2).Scale(0.5)
		movementSq := mid.Sub(anchorMid).LenSq()
		pinchSq := math.Abs(pos2.Sub(pos1).LenSq() - in.anchors[1].Sub(in.anchors[0]).LenSq())
		in.maxPinchDistanceSq = math.Max(pinchSq, in.maxPinchDistanceSq)

		// Swipe loses once the spread changed while the midpoint stayed put.
		if in.state(SwipeTwoPoints).Down {
			ev := Repeat
			if movementSq < pinchMoveThreshold*pinchMoveThreshold &&
				in.maxPinchDistanceSq > pinchDistanceThreshold*pinchDistanceThreshold {
				ev = Released
			}
			in.emit2(SwipeTwoPoints, ev, pos1, pos2, in.twoPointsDownTime)
		}

		// Pinch loses once the midpoint travelled while the spread held.
		if in.state(Pinch).Down {
			ev := Repeat
			if movementSq > pinchMoveThreshold*pinchMoveThreshold &&
				in.maxPinchDistanceSq < pinchDistanceThreshold*pinchDistanceThreshold {
				ev = Released
			}
			in.emit2(Pinch, ev, pos1, pos2, in.twoPointsDownTime)
		}

		in.twoPointsDownTime += dt
		return
	}

	if !prevActive {
		return
	}

	if in.state(SwipeTwoPoints).Down {
		in.emit2(SwipeTwoPoints, Released, pos1, pos2, in.twoPointsDownTime)
	}
	if in.state(Pinch).Down {
		in.emit2(Pinch, Released, pos1, pos2, in.twoPointsDownTime)
	}
}

// --- Commit ---

// commit applies this frame's transitions to Down and clears the counters.
// Must run after dispatch.
func (in *Input) commit() {
	for k := range in.states {
		ks := &in.states[k]
		if in.debug {
			in.debugLogKeyState(GestureKey(k), ks)
		}
		if ks.Events[Pressed] > 0 {
			ks.Down = true
		} else if ks.Events[Released] > 0 {
			ks.Down = false
		}
		ks.Events = [numKeyEvents]uint8{}
	}
}
