package tdc

import (
	"math"
	"testing"
)

func TestIntersectRayWithPlane(t *testing.T) {
	tests := []struct {
		name      string
		origin    Vec3
		dir       Vec3
		plane     Plane
		want      Vec3
		wantFound bool
	}{
		{"straight down", Vec3{10, 20, 100}, Vec3{0, 0, -1}, GroundPlane(0), Vec3{10, 20, 0}, true},
		{"raised plane", Vec3{0, 0, 100}, Vec3{0, 0, -1}, GroundPlane(40), Vec3{0, 0, 40}, true},
		{"slanted", Vec3{0, 0, 100}, Vec3{1, 0, -1}, GroundPlane(0), Vec3{100, 0, 0}, true},
		{"parallel", Vec3{0, 0, 100}, Vec3{1, 0, 0}, GroundPlane(0), Vec3{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := IntersectRayWithPlane(tt.origin, tt.dir, tt.plane)
			if ok != tt.wantFound {
				t.Fatalf("ok = %v, want %v", ok, tt.wantFound)
			}
			if !vec3ApproxEqual(got, tt.want, 1e-9) {
				t.Errorf("hit = %v, want %v", got, tt.want)
			}
		})
	}
}

func newTestProjector(v View) *PerspectiveProjector {
	return &PerspectiveProjector{
		Viewport: Rect{Width: 800, Height: 600},
		ViewFunc: func() (View, bool) { return v, true },
	}
}

func TestDeprojectCentreLooksForward(t *testing.T) {
	v := View{FOV: 30, Location: Vec3{0, 0, 1000}, Rotation: Rotator{Pitch: -60}}
	p := newTestProjector(v)
	origin, dir, ok := p.DeprojectScreenToWorld(Vec2{400, 300})
	if !ok {
		t.Fatal("deproject failed")
	}
	if origin != v.Location {
		t.Errorf("origin = %v, want %v", origin, v.Location)
	}
	if !vec3ApproxEqual(dir, v.Rotation.Vector(), 1e-9) {
		t.Errorf("dir = %v, want %v", dir, v.Rotation.Vector())
	}
}

func TestDeprojectEdgesSpanFOV(t *testing.T) {
	v := View{FOV: 90, Rotation: Rotator{}}
	p := newTestProjector(v)
	_, dir, _ := p.DeprojectScreenToWorld(Vec2{800, 300})
	// Right edge of a 90 degree view is 45 degrees to the right.
	want := Vec3{1, 1, 0}.SafeNormal()
	if !vec3ApproxEqual(dir, want, 1e-9) {
		t.Errorf("dir = %v, want %v", dir, want)
	}
	_, dir, _ = p.DeprojectScreenToWorld(Vec2{400, 0})
	if dir.Z <= 0 {
		t.Errorf("top of screen should look up, dir = %v", dir)
	}
}

func TestProjectRoundTrip(t *testing.T) {
	v := View{FOV: 30, Location: Vec3{-4000, 0, 6928}, Rotation: Rotator{Pitch: -60, Yaw: 20}}
	p := newTestProjector(v)
	for _, screen := range []Vec2{{400, 300}, {10, 20}, {790, 580}, {123, 456}} {
		origin, dir, ok := p.DeprojectScreenToWorld(screen)
		if !ok {
			t.Fatalf("deproject %v failed", screen)
		}
		hit, ok := IntersectRayWithPlane(origin, dir, GroundPlane(0))
		if !ok {
			t.Fatalf("ray through %v missed the ground", screen)
		}
		back, ok := p.ProjectWorldToScreen(hit)
		if !ok {
			t.Fatalf("project %v failed", hit)
		}
		if math.Abs(back.X-screen.X) > 1e-6 || math.Abs(back.Y-screen.Y) > 1e-6 {
			t.Errorf("round trip %v -> %v -> %v", screen, hit, back)
		}
	}
}

func TestProjectBehindView(t *testing.T) {
	p := newTestProjector(View{FOV: 60})
	if _, ok := p.ProjectWorldToScreen(Vec3{-10, 0, 0}); ok {
		t.Error("projected a point behind the view")
	}
}

func TestProjectorWithoutView(t *testing.T) {
	p := &PerspectiveProjector{Viewport: Rect{Width: 800, Height: 600}}
	if _, _, ok := p.DeprojectScreenToWorld(Vec2{}); ok {
		t.Error("deprojected without a view func")
	}
	p.ViewFunc = func() (View, bool) { return View{}, false }
	if _, ok := p.ProjectWorldToScreen(Vec3{1, 0, 0}); ok {
		t.Error("projected with a failing view func")
	}
	p = newTestProjector(View{FOV: 30})
	p.Viewport = Rect{}
	if _, _, ok := p.DeprojectScreenToWorld(Vec2{}); ok {
		t.Error("deprojected into an empty viewport")
	}
}
