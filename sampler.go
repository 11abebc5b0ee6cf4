package tdc

import "github.com/hajimehoshi/ebiten/v2"

// PointerSampler supplies the raw state of up to two contacts per frame.
// Contact 0 is the mouse or first finger; contact 1 the second finger.
type PointerSampler interface {
	Sample() [2]Contact
}

// MouseSampler supplies cursor and wheel state. ok is false when no
// cursor exists, e.g. on touch-only devices.
type MouseSampler interface {
	CursorPosition() (pos Vec2, ok bool)
	// Wheel returns the vertical wheel movement this frame. Positive is up.
	Wheel() float64
}

// AxisSampler supplies keyboard or gamepad movement axes in [-1, 1].
type AxisSampler interface {
	Axes() (forward, right float64)
}

// EbitenSampler reads contacts, cursor, wheel and WASD/arrow axes from
// ebiten. Touches take precedence over the mouse: while any finger is down
// the first two fingers become contacts 0 and 1, otherwise the left mouse
// button drives contact 0.
type EbitenSampler struct {
	touchIDs  []ebiten.TouchID
	slots     [2]ebiten.TouchID
	slotUsed  [2]bool
	last      [2]Contact
	hadTouch  bool
	HasCursor bool
}

// NewEbitenSampler creates a sampler. Cursor-based behaviour (edge scroll,
// mouse contact) is enabled when hasCursor is true.
func NewEbitenSampler(hasCursor bool) *EbitenSampler {
	return &EbitenSampler{HasCursor: hasCursor}
}

// Sample implements PointerSampler.
func (s *EbitenSampler) Sample() [2]Contact {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])

	if len(s.touchIDs) > 0 || s.hadTouch {
		s.sampleTouches()
		return s.last
	}

	s.last[1] = Contact{Position: s.last[1].Position}
	if !s.HasCursor {
		s.last[0] = Contact{Position: s.last[0].Position}
		return s.last
	}
	mx, my := ebiten.CursorPosition()
	s.last[0] = Contact{
		Active:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Position: Vec2{float64(mx), float64(my)},
	}
	return s.last
}

func (s *EbitenSampler) sampleTouches() {
	var active [2]bool
	for _, tid := range s.touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s.last[slot] = Contact{Active: true, Position: Vec2{float64(tx), float64(ty)}}
	}

	// Released fingers keep their last position so release events report
	// where the finger lifted.
	for i := range s.slots {
		if s.slotUsed[i] && !active[i] {
			s.slotUsed[i] = false
			s.slots[i] = 0
			s.last[i].Active = false
		}
	}
	s.hadTouch = s.slotUsed[0] || s.slotUsed[1]
}

// touchSlot maps an ebiten.TouchID to contact 0 or 1. Returns the existing
// slot or allocates a new one. Returns -1 if both are taken.
func (s *EbitenSampler) touchSlot(tid ebiten.TouchID) int {
	for i := range s.slots {
		if s.slotUsed[i] && s.slots[i] == tid {
			return i
		}
	}
	for i := range s.slots {
		if !s.slotUsed[i] {
			s.slotUsed[i] = true
			s.slots[i] = tid
			return i
		}
	}
	return -1
}

// CursorPosition implements MouseSampler.
func (s *EbitenSampler) CursorPosition() (Vec2, bool) {
	if !s.HasCursor {
		return Vec2{}, false
	}
	mx, my := ebiten.CursorPosition()
	return Vec2{float64(mx), float64(my)}, true
}

// Wheel implements MouseSampler.
func (s *EbitenSampler) Wheel() float64 {
	_, dy := ebiten.Wheel()
	return dy
}

// Axes implements AxisSampler.
func (s *EbitenSampler) Axes() (forward, right float64) {
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		forward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		forward--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		right++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		right--
	}
	return forward, right
}
