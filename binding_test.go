package tdc

import "testing"

func TestBindingInvokedOncePerFrame(t *testing.T) {
	in := NewInput()
	calls := 0
	in.BindOnePoint(Swipe, Repeat, func(pos Vec2, downTime float64) { calls++ })

	// Several occurrences in one frame still invoke the binding once.
	in.emit(Swipe, Repeat, Vec2{1, 1}, 0)
	in.emit(Swipe, Repeat, Vec2{2, 2}, 0)
	in.emit(Swipe, Repeat, Vec2{3, 3}, 0)
	in.dispatch()
	in.commit()

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestBindingReceivesPositionAndDownTime(t *testing.T) {
	in := NewInput()
	var gotPos Vec2
	var gotTime float64
	in.BindOnePoint(Tap, Pressed, func(pos Vec2, downTime float64) {
		gotPos = pos
		gotTime = downTime
	})

	in.Update(0.125, one(down(30, 40)))
	in.Update(0.125, one(up(30, 40)))

	if gotPos != (Vec2{30, 40}) {
		t.Errorf("pos = %v, want (30,40)", gotPos)
	}
	if gotTime != 0.125 {
		t.Errorf("downTime = %v, want 0.125", gotTime)
	}
}

func TestTwoPointBindingReceivesBothPositions(t *testing.T) {
	in := NewInput()
	var p1, p2 Vec2
	in.BindTwoPoint(Pinch, Pressed, func(a, b Vec2, downTime float64) {
		p1, p2 = a, b
	})
	in.Update(0.016, [2]Contact{down(10, 20), down(300, 400)})

	if p1 != (Vec2{10, 20}) || p2 != (Vec2{300, 400}) {
		t.Errorf("positions = %v, %v", p1, p2)
	}
}

func TestBindingOrder(t *testing.T) {
	in := NewInput()
	var order []int
	for i := 0; i < 3; i++ {
		in.BindOnePoint(Tap, Pressed, func(Vec2, float64) { order = append(order, i) })
	}
	in.Update(0.016, one(down(0, 0)))
	in.Update(0.016, one(up(0, 0)))

	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("order = %v, want [0 1 2]", order)
	}
}

func TestBindingOnlyMatchingEvent(t *testing.T) {
	in := NewInput()
	var pressed, released int
	in.BindOnePoint(Hold, Pressed, func(Vec2, float64) { pressed++ })
	in.BindOnePoint(Hold, Released, func(Vec2, float64) { released++ })

	for i := 0; i < 4; i++ {
		in.Update(0.125, one(down(0, 0)))
	}
	if pressed != 1 || released != 0 {
		t.Fatalf("while held: pressed=%d released=%d", pressed, released)
	}
	in.Update(0.125, one(up(0, 0)))
	if pressed != 1 || released != 1 {
		t.Errorf("after release: pressed=%d released=%d", pressed, released)
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	in := NewInput()
	var a, b int
	ha := in.BindOnePoint(Tap, Pressed, func(Vec2, float64) { a++ })
	in.BindOnePoint(Tap, Pressed, func(Vec2, float64) { b++ })
	h2 := in.BindTwoPoint(Pinch, Pressed, func(Vec2, Vec2, float64) { a++ })

	ha.Remove()
	h2.Remove()
	ha.Remove() // removing twice is harmless

	in.Update(0.016, one(down(0, 0)))
	in.Update(0.016, one(up(0, 0)))
	in.Update(0.016, [2]Contact{down(0, 0), down(400, 0)})

	if a != 0 {
		t.Errorf("removed bindings ran %d times", a)
	}
	if b != 1 {
		t.Errorf("remaining binding ran %d times, want 1", b)
	}
}

func TestRemoveDuringDispatch(t *testing.T) {
	tap := func(in *Input) {
		in.Update(0.016, one(down(0, 0)))
		in.Update(0.016, one(up(0, 0)))
	}

	t.Run("self", func(t *testing.T) {
		in := NewInput()
		var order []string
		var h CallbackHandle
		h = in.BindOnePoint(Tap, Pressed, func(Vec2, float64) {
			order = append(order, "a")
			h.Remove()
		})
		in.BindOnePoint(Tap, Pressed, func(Vec2, float64) { order = append(order, "b") })
		in.BindOnePoint(Tap, Pressed, func(Vec2, float64) { order = append(order, "c") })

		tap(in)
		tap(in)

		want := []string{"a", "b", "c", "b", "c"}
		if len(order) != len(want) {
			t.Fatalf("order = %v, want %v", order, want)
		}
		for i := range want {
			if order[i] != want[i] {
				t.Fatalf("order = %v, want %v", order, want)
			}
		}
	})

	t.Run("later binding", func(t *testing.T) {
		in := NewInput()
		var b, c int
		var hb CallbackHandle
		in.BindOnePoint(Tap, Pressed, func(Vec2, float64) { hb.Remove() })
		hb = in.BindOnePoint(Tap, Pressed, func(Vec2, float64) { b++ })
		in.BindOnePoint(Tap, Pressed, func(Vec2, float64) { c++ })

		tap(in)

		if b != 0 {
			t.Errorf("removed binding ran %d times", b)
		}
		if c != 1 {
			t.Errorf("following binding ran %d times, want 1", c)
		}
	})

	t.Run("two-point", func(t *testing.T) {
		in := NewInput()
		var second int
		var h CallbackHandle
		h = in.BindTwoPoint(Pinch, Pressed, func(Vec2, Vec2, float64) { h.Remove() })
		in.BindTwoPoint(Pinch, Pressed, func(Vec2, Vec2, float64) { second++ })

		in.Update(0.016, [2]Contact{down(0, 0), down(400, 0)})

		if second != 1 {
			t.Errorf("following binding ran %d times, want 1", second)
		}
	})
}

func TestBindDuringDispatchRunsNextFrame(t *testing.T) {
	in := NewInput()
	added := 0
	bound := false
	in.BindOnePoint(Swipe, Repeat, func(Vec2, float64) {
		if !bound {
			bound = true
			in.BindOnePoint(Swipe, Repeat, func(Vec2, float64) { added++ })
		}
	})

	in.Update(0.016, one(down(0, 0)))
	in.Update(0.016, one(down(10, 0)))
	in.Update(0.016, one(down(20, 0)))
	if added != 0 {
		t.Fatalf("binding added during dispatch ran in the same frame")
	}
	in.Update(0.016, one(down(30, 0)))
	if added != 1 {
		t.Errorf("added binding ran %d times, want 1", added)
	}
}

func TestZeroCallbackHandleRemove(t *testing.T) {
	var h CallbackHandle
	h.Remove()
}

func TestDispatchBeforeCommit(t *testing.T) {
	in := NewInput()
	fired := false
	in.BindOnePoint(Tap, Pressed, func(Vec2, float64) {
		ks, _ := in.KeyState(Tap)
		fired = ks.Fired(Pressed)
	})
	in.Update(0.016, one(down(0, 0)))
	in.Update(0.016, one(up(0, 0)))
	if !fired {
		t.Error("handler did not observe the Pressed counter")
	}
}
