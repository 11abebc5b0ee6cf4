package tdc

import "sort"

// OnePointAction handles a single-contact gesture event.
type OnePointAction func(pos Vec2, downTime float64)

// TwoPointAction handles a two-contact gesture event.
type TwoPointAction func(pos1, pos2 Vec2, downTime float64)

// --- Binding registry ---

type onePointBinding struct {
	id    uint32
	key   GestureKey
	event KeyEvent
	fn    OnePointAction
}

type twoPointBinding struct {
	id    uint32
	key   GestureKey
	event KeyEvent
	fn    TwoPointAction
}

// bindingRegistry keeps each list ordered by id.
type bindingRegistry struct {
	onePoint []onePointBinding
	twoPoint []twoPointBinding
	nextID   uint32
}

// CallbackHandle allows removing a registered binding.
type CallbackHandle struct {
	id       uint32
	reg      *bindingRegistry
	twoPoint bool
}

// Remove unregisters the binding so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	if h.twoPoint {
		h.reg.twoPoint = removeTwoPointBinding(h.reg.twoPoint, h.id)
	} else {
		h.reg.onePoint = removeOnePointBinding(h.reg.onePoint, h.id)
	}
}

func removeOnePointBinding(s []onePointBinding, id uint32) []onePointBinding {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = onePointBinding{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeTwoPointBinding(s []twoPointBinding, id uint32) []twoPointBinding {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = twoPointBinding{}
			return s[:len(s)-1]
		}
	}
	return s
}

// BindOnePoint registers fn to run when key raises event. The action
// receives the gesture's primary position and down time.
// Bindings run in registration order.
func (in *Input) BindOnePoint(key GestureKey, event KeyEvent, fn OnePointAction) CallbackHandle {
	in.bindings.nextID++
	id := in.bindings.nextID
	in.bindings.onePoint = append(in.bindings.onePoint, onePointBinding{id: id, key: key, event: event, fn: fn})
	return CallbackHandle{id: id, reg: &in.bindings}
}

// BindTwoPoint registers fn to run when key raises event. The action
// receives both contact positions and the gesture's down time.
func (in *Input) BindTwoPoint(key GestureKey, event KeyEvent, fn TwoPointAction) CallbackHandle {
	in.bindings.nextID++
	id := in.bindings.nextID
	in.bindings.twoPoint = append(in.bindings.twoPoint, twoPointBinding{id: id, key: key, event: event, fn: fn})
	return CallbackHandle{id: id, reg: &in.bindings, twoPoint: true}
}

// --- Dispatch ---

// dispatch invokes each binding at most once if its (key, event) fired
// this frame, then forwards the frame's events to the event store.
//
// Actions may add or remove bindings. Bindings are walked by id, so a
// removal neither skips nor repeats the ones after it, a removed binding
// does not run, and one added during dispatch first runs next frame.
func (in *Input) dispatch() {
	last := in.bindings.nextID

	for i := 0; i < len(in.bindings.onePoint); {
		b := in.bindings.onePoint[i]
		if b.id > last {
			break
		}
		ks, ok := in.KeyState(b.key)
		if ok && ks.Fired(b.event) && b.fn != nil {
			b.fn(ks.Position, ks.DownTime)
		}
		s := in.bindings.onePoint
		i = sort.Search(len(s), func(j int) bool { return s[j].id > b.id })
	}

	for i := 0; i < len(in.bindings.twoPoint); {
		b := in.bindings.twoPoint[i]
		if b.id > last {
			break
		}
		ks, ok := in.KeyState(b.key)
		if ok && ks.Fired(b.event) && b.fn != nil {
			b.fn(ks.Position, ks.Position2, ks.DownTime)
		}
		s := in.bindings.twoPoint
		i = sort.Search(len(s), func(j int) bool { return s[j].id > b.id })
	}

	if in.store == nil {
		return
	}
	for k := GestureKey(0); k < numGestureKeys; k++ {
		if !in.created[k] {
			continue
		}
		ks := &in.states[k]
		for e := KeyEvent(0); e < numKeyEvents; e++ {
			if ks.Events[e] == 0 {
				continue
			}
			in.store.EmitEvent(GestureEvent{
				Key:       k,
				Event:     e,
				Position:  ks.Position,
				Position2: ks.Position2,
				DownTime:  ks.DownTime,
			})
		}
	}
}
