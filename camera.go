package tdc

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	cameraFOV        = 30.0 // degrees
	zoomStep         = 0.1
	edgeScrollSpeed  = 60.0
	moveAxisScale    = 100.0
	followHeight     = 800.0 // pawn Z while following; the camera offset decides the real height
	defaultPinchZoom = 0.002
)

// ViewController is the player-side collaborator a Camera needs: where to
// look, how the camera is rotated, and what world point lies under a
// screen position on the panning plane.
type ViewController interface {
	FocalLocation() Vec3
	CameraRotation() Rotator
	TraceScreen(pos Vec2) (Vec3, bool)
}

// AnchorSource provides the screen anchors of the current two-point gesture.
type AnchorSource interface {
	TouchAnchor(i int) Vec2
}

// scrollAnim holds active scroll-to tweens for the pawn's X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is the top-down camera controller. It owns the zoom level, the
// edge-scroll no-scroll zones, and the swipe-drag state, and moves the
// spectator pawn that carries it.
//
// Operations that lack a collaborator (no owning pawn, no controller, a
// failed screen trace) do nothing and report false; the next frame retries.
type Camera struct {
	Config

	// MovementBounds limits the pawn location when ShouldClampCamera is
	// set. The zero Box disables clamping.
	MovementBounds Box

	owner *SpectatorPawn

	noScrollZones     []Rect
	zoomAlpha         float64
	initialPinchAlpha float64

	swipeOrigin Vec3
	swiping     bool

	scrollTween *scrollAnim
	zoomTween   *gween.Tween

	debug bool
}

// NewCamera creates a camera with the given settings, zoomed to
// DefaultZoomLevel.
func NewCamera(cfg Config) *Camera {
	c := &Camera{Config: cfg}
	if c.PinchScale == 0 {
		c.PinchScale = defaultPinchZoom
	}
	c.SetZoomLevel(cfg.DefaultZoomLevel)
	return c
}

// ApplyConfig replaces the camera settings and re-clamps the zoom level
// into the new range.
func (c *Camera) ApplyConfig(cfg Config) {
	c.Config = cfg
	if c.PinchScale == 0 {
		c.PinchScale = defaultPinchZoom
	}
	c.SetZoomLevel(c.zoomAlpha)
}

// Owner returns the pawn carrying the camera, or nil.
func (c *Camera) Owner() *SpectatorPawn {
	return c.owner
}

// controller returns the owning pawn's controller, or nil.
func (c *Camera) controller() ViewController {
	if c.owner == nil {
		return nil
	}
	return c.owner.controller
}

// --- Zoom ---

// ZoomLevel returns the current zoom alpha.
func (c *Camera) ZoomLevel() float64 {
	return c.zoomAlpha
}

// SetZoomLevel stores level clamped to [MinZoomLevel, MaxZoomLevel].
func (c *Camera) SetZoomLevel(level float64) {
	c.zoomAlpha = clamp(level, c.MinZoomLevel, c.MaxZoomLevel)
}

// ZoomIn moves the camera one step closer to the map.
func (c *Camera) ZoomIn() {
	c.SetZoomLevel(c.zoomAlpha - zoomStep)
}

// ZoomOut moves the camera one step away from the map.
func (c *Camera) ZoomOut() {
	c.SetZoomLevel(c.zoomAlpha + zoomStep)
}

// ZoomTo animates the zoom level to level over duration seconds.
func (c *Camera) ZoomTo(level float64, duration float32, easeFn ease.TweenFunc) {
	target := clamp(level, c.MinZoomLevel, c.MaxZoomLevel)
	c.zoomTween = gween.New(float32(c.zoomAlpha), float32(target), duration, easeFn)
}

// OnPinchStarted captures the zoom level the pinch is relative to.
func (c *Camera) OnPinchStarted(anchor1, anchor2 Vec2, downTime float64) {
	c.initialPinchAlpha = c.zoomAlpha
	c.zoomTween = nil
}

// OnPinchUpdate zooms by the change in spread between the gesture anchors
// and the current contacts. Spreading the fingers zooms in.
func (c *Camera) OnPinchUpdate(anchors AnchorSource, pos1, pos2 Vec2, downTime float64) {
	if anchors == nil {
		return
	}
	anchorDist := anchors.TouchAnchor(0).Sub(anchors.TouchAnchor(1)).Len()
	currentDist := pos1.Sub(pos2).Len()
	c.SetZoomLevel(c.initialPinchAlpha + (anchorDist-currentDist)*c.PinchScale)
}

// --- View ---

// View returns the camera view for this frame: the focal point pulled back
// along FixedCameraAngle by an offset interpolated from the zoom level.
// ok is false when there is no controller to supply a focal point.
func (c *Camera) View(dt float64) (View, bool) {
	pc := c.controller()
	if pc == nil {
		return View{}, false
	}
	offset := c.MinCameraOffset + c.zoomAlpha*(c.MaxCameraOffset-c.MinCameraOffset)
	return View{
		FOV:      cameraFOV,
		Location: pc.FocalLocation().Sub(c.FixedCameraAngle.Vector().Scale(offset)),
		Rotation: c.FixedCameraAngle,
	}, true
}

// --- Movement ---

// MoveForward adds movement input along the camera's forward axis.
func (c *Camera) MoveForward(val float64) { c.moveAxis(AxisX, val) }

// MoveRight adds movement input along the camera's right axis.
func (c *Camera) MoveRight(val float64) { c.moveAxis(AxisY, val) }

func (c *Camera) moveAxis(axis Axis, val float64) {
	pc := c.controller()
	if c.owner == nil || pc == nil || val == 0 {
		return
	}
	dir := pc.CameraRotation().Axis(axis).Scale(moveAxisScale)
	c.owner.AddMovementInput(dir, val)
}

// SetCameraTarget places the owning pawn at target.
func (c *Camera) SetCameraTarget(target Vec3) {
	if c.owner == nil {
		return
	}
	c.owner.SetLocation(target)
}

// ScrollTo animates the owning pawn to the given world X/Y over duration
// seconds. Z is left unchanged.
func (c *Camera) ScrollTo(target Vec3, duration float32, easeFn ease.TweenFunc) {
	if c.owner == nil {
		return
	}
	loc := c.owner.Location()
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(loc.X), float32(target.X), duration, easeFn),
		tweenY: gween.New(float32(loc.Y), float32(target.Y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is running.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// Update advances ScrollTo and ZoomTo animations.
func (c *Camera) Update(dt float32) {
	if c.zoomTween != nil {
		val, done := c.zoomTween.Update(dt)
		c.SetZoomLevel(float64(val))
		if done {
			c.zoomTween = nil
		}
	}

	if c.scrollTween == nil {
		return
	}
	if c.owner == nil {
		c.scrollTween = nil
		return
	}
	loc := c.owner.Location()
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		loc.X = float64(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(dt)
		loc.Y = float64(val)
		c.scrollTween.doneY = done
	}
	c.owner.SetLocation(loc)
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
}

// --- Bounds ---

// SetWorldBounds derives MovementBounds from the playable world box: the
// box shrunk about its centre to MiniMapBoundsLimit of its X/Y extent.
// Z is left unbounded.
func (c *Camera) SetWorldBounds(world Box) {
	limit := c.MiniMapBoundsLimit
	if limit <= 0 {
		limit = 1
	}
	center := world.Center()
	half := world.Size().Scale(0.5 * limit)
	c.MovementBounds = Box{
		Min: Vec3{center.X - half.X, center.Y - half.Y, -math.MaxFloat64},
		Max: Vec3{center.X + half.X, center.Y + half.Y, math.MaxFloat64},
	}
}

// ClampCameraLocation returns loc limited to MovementBounds when
// ShouldClampCamera is set and bounds are defined.
func (c *Camera) ClampCameraLocation(loc Vec3) Vec3 {
	if !c.ShouldClampCamera || c.MovementBounds.Size() == (Vec3{}) {
		return loc
	}
	return c.MovementBounds.ClosestPoint(loc)
}

// --- Edge scroll ---

// AddNoScrollZone excludes a screen area from edge scrolling and swipe
// starts until the end of the next UpdateCameraMovement call. Zones must
// be added again every frame they should apply.
func (c *Camera) AddNoScrollZone(zone Rect) {
	for _, z := range c.noScrollZones {
		if z == zone {
			return
		}
	}
	c.noScrollZones = append(c.noScrollZones, zone)
}

// AreCoordsInNoScrollZone reports whether pos lies in any registered zone.
func (c *Camera) AreCoordsInNoScrollZone(pos Vec2) bool {
	for _, z := range c.noScrollZones {
		if z.Contains(pos) {
			return true
		}
	}
	return false
}

// UpdateCameraMovement scrolls the pawn when the mouse sits within
// CameraActiveBorder pixels of a viewport edge. Speed falls off linearly
// from the edge inward and grows with the zoom level. hasMouse is false
// when no cursor position is available, e.g. on touch-only devices.
// No-scroll zones are cleared on return.
func (c *Camera) UpdateCameraMovement(viewport Rect, mouse Vec2, hasMouse bool) {
	defer func() { c.noScrollZones = c.noScrollZones[:0] }()

	if !hasMouse || c.CameraActiveBorder == 0 {
		return
	}

	border := float64(c.CameraActiveBorder)
	left := math.Trunc(viewport.X)
	right := left + math.Trunc(viewport.Width)
	top := math.Trunc(viewport.Y)
	bottom := top + math.Trunc(viewport.Height)

	maxSpeed := c.CameraSpeed * clamp(c.zoomAlpha, c.MinZoomLevel, c.MaxZoomLevel)

	var movement *PawnMovement
	if c.owner != nil {
		movement = c.owner.movement
	}
	speed := maxSpeed
	if movement != nil {
		speed = DefaultPawnMaxSpeed
	}

	if c.AreCoordsInNoScrollZone(mouse) {
		return
	}

	mx := math.Trunc(mouse.X)
	my := math.Trunc(mouse.Y)

	if mx >= left && mx <= left+border {
		delta := 1 - (mx-left)/border
		speed = delta * maxSpeed
		c.MoveRight(-edgeScrollSpeed * delta)
	} else if mx >= right-border && mx <= right {
		delta := (mx - right + border) / border
		speed = delta * maxSpeed
		c.MoveRight(edgeScrollSpeed * delta)
	}

	if my >= top && my <= top+border {
		delta := 1 - (my-top)/border
		speed = delta * maxSpeed
		c.MoveForward(edgeScrollSpeed * delta)
	} else if my >= bottom-border && my <= bottom {
		delta := (my - (bottom - border)) / border
		speed = delta * maxSpeed
		c.MoveForward(-edgeScrollSpeed * delta)
	}

	if movement != nil {
		movement.MaxSpeed = speed
	}
}

// --- Swipe drag ---

// OnSwipeStarted begins a camera drag at pos. It fails when pos lies in a
// no-scroll zone (which also ends any drag in progress) or when pos does
// not hit the panning plane.
func (c *Camera) OnSwipeStarted(pos Vec2) bool {
	if c.AreCoordsInNoScrollZone(pos) {
		c.debugLogf("swipe at (%.1f,%.1f) rejected by no-scroll zone", pos.X, pos.Y)
		c.EndSwipeNow()
		return false
	}
	pc := c.controller()
	if pc == nil {
		return false
	}
	hit, ok := pc.TraceScreen(pos)
	if !ok {
		return false
	}
	c.swipeOrigin = hit
	c.swiping = true
	c.debugLogf("swipe started at (%.1f,%.1f,%.1f)", hit.X, hit.Y, hit.Z)
	return true
}

// OnSwipeUpdate moves the pawn by the flattened world delta between the
// drag origin and the point under pos, then makes the point under pos
// after the move the new origin, so each update applies only the motion
// since the previous one.
func (c *Camera) OnSwipeUpdate(pos Vec2) bool {
	pc := c.controller()
	if pc == nil || !c.swiping || c.owner == nil {
		return false
	}
	hit, ok := pc.TraceScreen(pos)
	if !ok {
		return false
	}
	delta := hit.Sub(c.swipeOrigin)
	delta.Z = 0
	if delta.IsNearlyZero() {
		return false
	}
	c.SetCameraTarget(c.owner.Location().Add(delta))
	// The view moved with the pawn, so the point under pos is new.
	if moved, ok := pc.TraceScreen(pos); ok {
		hit = moved
	}
	c.swipeOrigin = hit
	return true
}

// OnSwipeReleased ends the drag. It always reports false: a release never
// moves the camera, even though the final position is still traced.
func (c *Camera) OnSwipeReleased(pos Vec2) bool {
	if !c.swiping {
		return false
	}
	if pc := c.controller(); pc != nil {
		if hit, ok := pc.TraceScreen(pos); ok {
			c.debugLogf("swipe released at (%.1f,%.1f,%.1f)", hit.X, hit.Y, hit.Z)
		}
	}
	c.EndSwipeNow()
	return false
}

// EndSwipeNow drops any drag in progress.
func (c *Camera) EndSwipeNow() {
	c.swipeOrigin = Vec3{}
	c.swiping = false
}

// Swiping reports whether a drag is in progress.
func (c *Camera) Swiping() bool {
	return c.swiping
}
