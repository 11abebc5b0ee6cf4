package tdc

// ScriptedSampler is a PointerSampler and MouseSampler fed from a queue of
// synthetic frames. Each Sample call consumes one frame; once the queue is
// empty the last frame is repeated, so a pointer left down stays down.
type ScriptedSampler struct {
	queue [][2]Contact
	last  [2]Contact
	wheel []float64

	// HasCursor makes CursorPosition report contact 0's position.
	HasCursor bool
}

// NewScriptedSampler creates an empty sampler with a cursor.
func NewScriptedSampler() *ScriptedSampler {
	return &ScriptedSampler{HasCursor: true}
}

// Sample implements PointerSampler.
func (s *ScriptedSampler) Sample() [2]Contact {
	if len(s.queue) == 0 {
		return s.last
	}
	s.last = s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue = s.queue[:len(s.queue)-1]
	return s.last
}

// Pending returns the number of queued frames not yet sampled.
func (s *ScriptedSampler) Pending() int {
	return len(s.queue)
}

// CursorPosition implements MouseSampler.
func (s *ScriptedSampler) CursorPosition() (Vec2, bool) {
	return s.last[0].Position, s.HasCursor
}

// Wheel implements MouseSampler. Each InjectWheel value is returned once.
func (s *ScriptedSampler) Wheel() float64 {
	if len(s.wheel) == 0 {
		return 0
	}
	dy := s.wheel[0]
	s.wheel = s.wheel[1:]
	return dy
}

// InjectWheel queues a wheel movement for the next Wheel call.
func (s *ScriptedSampler) InjectWheel(dy float64) {
	s.wheel = append(s.wheel, dy)
}

func (s *ScriptedSampler) push(c0, c1 Contact) {
	s.queue = append(s.queue, [2]Contact{c0, c1})
}

// InjectPress queues a frame with contact 0 down at (x, y).
func (s *ScriptedSampler) InjectPress(x, y float64) {
	s.push(Contact{Active: true, Position: Vec2{x, y}}, Contact{})
}

// InjectMove queues a frame with contact 0 held down at (x, y). Use this
// between InjectPress and InjectRelease to simulate a drag.
func (s *ScriptedSampler) InjectMove(x, y float64) {
	s.InjectPress(x, y)
}

// InjectRelease queues a frame with contact 0 up at (x, y).
func (s *ScriptedSampler) InjectRelease(x, y float64) {
	s.push(Contact{Position: Vec2{x, y}}, Contact{})
}

// InjectTap queues a press followed by a release at the same position.
// Consumes two frames.
func (s *ScriptedSampler) InjectTap(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectHold queues a stationary press held for frames-1 frames, then a
// release. Minimum frames is 2.
func (s *ScriptedSampler) InjectHold(x, y float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames-1; i++ {
		s.InjectPress(x, y)
	}
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes frames frames.
// Minimum frames is 2 (press + release).
func (s *ScriptedSampler) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// InjectTwoPoint queues a two-contact gesture: both contacts go down at
// from1/from2, move linearly to to1/to2 over frames-1 frames, and lift
// together on the last frame. Minimum frames is 3.
func (s *ScriptedSampler) InjectTwoPoint(from1, from2, to1, to2 Vec2, frames int) {
	if frames < 3 {
		frames = 3
	}
	held := frames - 1
	for i := 0; i < held; i++ {
		t := float64(i) / float64(held-1)
		p1 := from1.Add(to1.Sub(from1).Scale(t))
		p2 := from2.Add(to2.Sub(from2).Scale(t))
		s.push(Contact{Active: true, Position: p1}, Contact{Active: true, Position: p2})
	}
	s.push(Contact{Position: to1}, Contact{Position: to2})
}
