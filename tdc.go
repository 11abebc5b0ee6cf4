package tdc

import "math"

// Vec2 is a 2D vector used for screen positions and deltas.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Len returns the length of v.
func (v Vec2) Len() float64 { return math.Sqrt(v.LenSq()) }

// Vec3 is a world-space vector. Z is up.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// LenSq returns the squared length of v.
func (v Vec3) LenSq() float64 { return v.Dot(v) }

// Len returns the length of v.
func (v Vec3) Len() float64 { return math.Sqrt(v.LenSq()) }

// Dist returns the distance between v and o.
func (v Vec3) Dist(o Vec3) float64 { return v.Sub(o).Len() }

// nearlyZeroTolerance matches the per-component tolerance used for
// "did anything move" checks.
const nearlyZeroTolerance = 1e-4

// IsNearlyZero reports whether every component is within 1e-4 of zero.
func (v Vec3) IsNearlyZero() bool {
	return math.Abs(v.X) <= nearlyZeroTolerance &&
		math.Abs(v.Y) <= nearlyZeroTolerance &&
		math.Abs(v.Z) <= nearlyZeroTolerance
}

// SafeNormal returns v scaled to unit length, or the zero vector when v is
// too short to normalize.
func (v Vec3) SafeNormal() Vec3 {
	l := v.LenSq()
	if l < 1e-8 {
		return Vec3{}
	}
	return v.Scale(1 / math.Sqrt(l))
}

// Rotator is an orientation in degrees. Pitch rotates about the right
// axis (negative looks down), Yaw about the up axis, Roll about forward.
type Rotator struct {
	Pitch float64 `yaml:"pitch"`
	Yaw   float64 `yaml:"yaw"`
	Roll  float64 `yaml:"roll"`
}

// Add returns the component-wise sum of r and o.
func (r Rotator) Add(o Rotator) Rotator {
	return Rotator{r.Pitch + o.Pitch, r.Yaw + o.Yaw, r.Roll + o.Roll}
}

func (r Rotator) sincos() (sp, cp, sy, cy, sr, cr float64) {
	sp, cp = math.Sincos(r.Pitch * math.Pi / 180)
	sy, cy = math.Sincos(r.Yaw * math.Pi / 180)
	sr, cr = math.Sincos(r.Roll * math.Pi / 180)
	return
}

// Vector returns the unit forward direction of r.
func (r Rotator) Vector() Vec3 {
	sp, cp, sy, cy, _, _ := r.sincos()
	return Vec3{cp * cy, cp * sy, sp}
}

// Axis identifies one axis of a rotation's basis.
type Axis uint8

const (
	AxisX Axis = iota // forward
	AxisY             // right
	AxisZ             // up
)

// Axis returns the given basis axis of the rotation matrix built from r.
func (r Rotator) Axis(a Axis) Vec3 {
	sp, cp, sy, cy, sr, cr := r.sincos()
	switch a {
	case AxisX:
		return Vec3{cp * cy, cp * sy, sp}
	case AxisY:
		return Vec3{sr*sp*cy - cr*sy, sr*sp*sy + cr*cy, -sr * cp}
	default:
		return Vec3{-(cr*sp*cy + sr*sy), cy*sr - cr*sp*sy, cr * cp}
	}
}

// TransformVector rotates v from r's local space into world space.
func (r Rotator) TransformVector(v Vec3) Vec3 {
	x := r.Axis(AxisX)
	y := r.Axis(AxisY)
	z := r.Axis(AxisZ)
	return x.Scale(v.X).Add(y.Scale(v.Y)).Add(z.Scale(v.Z))
}

// Rect is an axis-aligned screen-space rectangle. The origin is at the
// top-left with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Box is an axis-aligned world-space box.
type Box struct {
	Min, Max Vec3
}

// Size returns the extent of the box on each axis.
func (b Box) Size() Vec3 { return b.Max.Sub(b.Min) }

// Center returns the midpoint of the box.
func (b Box) Center() Vec3 { return b.Min.Add(b.Max).Scale(0.5) }

// ClosestPoint returns the point inside the box nearest to p.
func (b Box) ClosestPoint(p Vec3) Vec3 {
	return Vec3{
		clamp(p.X, b.Min.X, b.Max.X),
		clamp(p.Y, b.Min.Y, b.Max.Y),
		clamp(p.Z, b.Min.Z, b.Max.Z),
	}
}

// Plane is the set of points p with Normal·p == W. Normal must be unit length.
type Plane struct {
	Normal Vec3
	W      float64
}

// GroundPlane returns a horizontal plane at height z facing up.
func GroundPlane(z float64) Plane {
	return Plane{Normal: Vec3{0, 0, 1}, W: z}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// GestureKey identifies a recognized gesture.
type GestureKey uint8

const (
	Tap            GestureKey = iota // short press released before the hold threshold
	Hold                             // press held past the hold threshold
	Swipe                            // single contact moved away from its anchor
	SwipeTwoPoints                   // two close contacts moving together
	Pinch                            // two contacts changing their spread

	numGestureKeys
)

var gestureKeyNames = [numGestureKeys]string{"Tap", "Hold", "Swipe", "SwipeTwoPoints", "Pinch"}

func (k GestureKey) String() string {
	if k < numGestureKeys {
		return gestureKeyNames[k]
	}
	return "GestureKey(?)"
}

// KeyEvent identifies a transition of a gesture within a frame.
type KeyEvent uint8

const (
	Pressed  KeyEvent = iota // gesture began this frame
	Released                 // gesture ended this frame
	Repeat                   // gesture continued this frame

	numKeyEvents
)

var keyEventNames = [numKeyEvents]string{"Pressed", "Released", "Repeat"}

func (e KeyEvent) String() string {
	if e < numKeyEvents {
		return keyEventNames[e]
	}
	return "KeyEvent(?)"
}
