package tdc

import "math"

// Deprojector turns a screen position into a world-space ray.
type Deprojector interface {
	DeprojectScreenToWorld(screen Vec2) (origin, dir Vec3, ok bool)
}

// IntersectRayWithPlane returns the point where the ray meets the plane.
// ok is false when the ray runs parallel to the plane.
func IntersectRayWithPlane(origin, dir Vec3, plane Plane) (Vec3, bool) {
	denom := dir.Dot(plane.Normal)
	if math.Abs(denom) < 1e-8 {
		return Vec3{}, false
	}
	planeOrigin := plane.Normal.Scale(plane.W)
	dist := planeOrigin.Sub(origin).Dot(plane.Normal) / denom
	return origin.Add(dir.Scale(dist)), true
}

// View is what a camera presents to the renderer each frame.
type View struct {
	FOV      float64 // horizontal field of view in degrees
	Location Vec3
	Rotation Rotator
}

// PerspectiveProjector maps between screen and world space for a
// perspective view filling Viewport.
type PerspectiveProjector struct {
	Viewport Rect
	// ViewFunc supplies the current view. A nil func or a false result
	// makes every projection fail.
	ViewFunc func() (View, bool)
}

// basis returns the view's forward/right/up vectors and the tangent of
// the horizontal and vertical half-angles.
func (p *PerspectiveProjector) basis() (v View, fwd, right, up Vec3, tanX, tanY float64, ok bool) {
	if p.ViewFunc == nil || p.Viewport.Width <= 0 || p.Viewport.Height <= 0 {
		return
	}
	v, ok = p.ViewFunc()
	if !ok {
		return
	}
	fwd = v.Rotation.Axis(AxisX)
	right = v.Rotation.Axis(AxisY)
	up = v.Rotation.Axis(AxisZ)
	tanX = math.Tan(v.FOV * math.Pi / 360)
	tanY = tanX * p.Viewport.Height / p.Viewport.Width
	return
}

// DeprojectScreenToWorld returns the ray from the view location through
// the given screen position.
func (p *PerspectiveProjector) DeprojectScreenToWorld(screen Vec2) (origin, dir Vec3, ok bool) {
	v, fwd, right, up, tanX, tanY, ok := p.basis()
	if !ok {
		return Vec3{}, Vec3{}, false
	}
	nx := 2*(screen.X-p.Viewport.X)/p.Viewport.Width - 1
	ny := 1 - 2*(screen.Y-p.Viewport.Y)/p.Viewport.Height
	dir = fwd.Add(right.Scale(nx * tanX)).Add(up.Scale(ny * tanY)).SafeNormal()
	return v.Location, dir, true
}

// ProjectWorldToScreen returns the screen position of a world point.
// ok is false for points behind the view.
func (p *PerspectiveProjector) ProjectWorldToScreen(world Vec3) (Vec2, bool) {
	v, fwd, right, up, tanX, tanY, ok := p.basis()
	if !ok {
		return Vec2{}, false
	}
	rel := world.Sub(v.Location)
	depth := rel.Dot(fwd)
	if depth <= 1e-6 {
		return Vec2{}, false
	}
	nx := rel.Dot(right) / (depth * tanX)
	ny := rel.Dot(up) / (depth * tanY)
	return Vec2{
		X: p.Viewport.X + (nx+1)*p.Viewport.Width/2,
		Y: p.Viewport.Y + (1-ny)*p.Viewport.Height/2,
	}, true
}
