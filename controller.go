package tdc

// Actor is a world object the player can pick on screen.
type Actor interface {
	Location() Vec3
}

// SwipeReceiver is an Actor that can be dragged by a swipe. Deltas are
// world-space offsets from the actor's location when the swipe began,
// measured on the horizontal plane through that location.
type SwipeReceiver interface {
	Actor
	OnInputSwipeUpdate(delta Vec3)
	OnInputSwipeReleased(delta Vec3, downTime float64)
}

// HoldReceiver is an Actor notified when it is held and let go.
type HoldReceiver interface {
	Actor
	OnInputHold()
	OnInputHoldReleased(downTime float64)
}

// TargetPicker finds the actor under a screen position and the world point
// that was hit. A nil actor with ok true means the ground was hit.
type TargetPicker interface {
	PickActor(screen Vec2) (actor Actor, world Vec3, ok bool)
}

// Mover issues movement orders to the main character.
type Mover interface {
	MoveToLocation(dest Vec3)
}

const (
	twoPointSwipeSpeed = 10000.0
	twoPointSwipeYaw   = 90.0
)

// PlayerController owns a gesture recognizer and drives one spectator pawn
// and its camera from it. It also implements ViewController for the camera.
//
// Collaborators are plain fields and may be nil; anything that needs a
// missing one is skipped for the frame.
type PlayerController struct {
	Pointer PointerSampler
	Mouse   MouseSampler
	Axes    AxisSampler

	// Projector turns screen positions into world rays; camera drags trace
	// them against the ground plane z=0. Picker, when set, resolves what
	// taps, holds and click-to-move land on.
	Projector Deprojector
	Picker    TargetPicker

	// MainCharacter and Mover are the character the camera follows and
	// the agent that walks it. Both are optional.
	MainCharacter Actor
	Mover         Mover

	// Viewport is the screen area the view fills, used for edge scroll.
	Viewport Rect

	// IgnoreInput drops pointer input while set.
	IgnoreInput bool

	input   *Input
	pawn    *SpectatorPawn
	handles []CallbackHandle

	selected       Actor
	swipeAnchor3D  Vec3
	prevSwipeMid   Vec2
	prevContact0   bool
	candidateMove  bool
	moveToCursor   bool
	moveCursorSpot Vec2
}

// NewPlayerController creates a controller possessing pawn, with a fresh
// recognizer whose gestures are already bound.
func NewPlayerController(pawn *SpectatorPawn) *PlayerController {
	pc := &PlayerController{
		input: NewInput(),
	}
	pc.Possess(pawn)
	pc.SetupInput()
	return pc
}

// Input returns the controller's gesture recognizer.
func (pc *PlayerController) Input() *Input { return pc.input }

// Pawn returns the possessed pawn, or nil.
func (pc *PlayerController) Pawn() *SpectatorPawn { return pc.pawn }

// Camera returns the possessed pawn's camera, or nil.
func (pc *PlayerController) Camera() *Camera {
	if pc.pawn == nil {
		return nil
	}
	return pc.pawn.Camera()
}

// Possess takes control of pawn, releasing any previous one.
func (pc *PlayerController) Possess(pawn *SpectatorPawn) {
	if pc.pawn != nil {
		pc.pawn.Possess(nil)
	}
	pc.pawn = pawn
	if pawn != nil {
		pawn.Possess(pc)
	}
}

// Selected returns the actor picked by the last swipe or hold, or nil.
func (pc *PlayerController) Selected() Actor { return pc.selected }

// SetupInput binds the camera gestures. It is called by
// NewPlayerController; calling it again replaces the bindings.
func (pc *PlayerController) SetupInput() {
	for _, h := range pc.handles {
		h.Remove()
	}
	in := pc.input
	pc.handles = []CallbackHandle{
		in.BindOnePoint(Tap, Pressed, pc.OnTapPressed),
		in.BindOnePoint(Hold, Pressed, pc.OnHoldPressed),
		in.BindOnePoint(Hold, Released, pc.OnHoldReleased),
		in.BindOnePoint(Swipe, Pressed, pc.OnSwipeStarted),
		in.BindOnePoint(Swipe, Repeat, pc.OnSwipeUpdate),
		in.BindOnePoint(Swipe, Released, pc.OnSwipeReleased),
		in.BindTwoPoint(SwipeTwoPoints, Pressed, pc.OnSwipeTwoPointsStarted),
		in.BindTwoPoint(SwipeTwoPoints, Repeat, pc.OnSwipeTwoPointsUpdate),
		in.BindTwoPoint(Pinch, Pressed, pc.OnPinchStarted),
		in.BindTwoPoint(Pinch, Repeat, pc.OnPinchUpdate),
	}
}

// --- Frame entry points ---

// ProcessPlayerInput samples the host input layer and runs gesture
// recognition for one frame. Nothing happens while paused, while input is
// ignored, or without a pointer sampler.
func (pc *PlayerController) ProcessPlayerInput(dt float64, paused bool) {
	if paused || pc.IgnoreInput || pc.Pointer == nil {
		return
	}
	contacts := pc.Pointer.Sample()
	pc.input.Update(dt, contacts)

	// Raw press/release of contact 0 drives click-to-move.
	c0 := contacts[0]
	if c0.Active && !pc.prevContact0 {
		pc.OnSetDestinationPressed()
	} else if !c0.Active && pc.prevContact0 {
		pc.OnSetDestinationReleased(c0.Position)
	}
	pc.prevContact0 = c0.Active
	if pc.input.TwoPointsActive() {
		pc.candidateMove = false
	}

	if pc.Mouse != nil {
		switch wheel := pc.Mouse.Wheel(); {
		case wheel > 0:
			pc.OnMouseScrollUp()
		case wheel < 0:
			pc.OnMouseScrollDown()
		}
	}
	if pc.Axes != nil {
		forward, right := pc.Axes.Axes()
		pc.MoveForward(forward)
		pc.MoveRight(right)
	}
}

// PlayerTick runs the per-frame camera work after input: a pending
// click-to-move, following the main character, edge scroll, pawn movement
// and camera animations.
func (pc *PlayerController) PlayerTick(dt float64) {
	if pc.moveToCursor {
		pc.moveToCursor = false
		pc.moveToScreenPosition(pc.moveCursorSpot)
	}

	if pc.pawn == nil {
		return
	}
	if pc.pawn.FollowMainCharacter && pc.MainCharacter != nil {
		loc := pc.MainCharacter.Location()
		loc.Z = followHeight
		pc.pawn.SetLocation(loc)
	}

	cam := pc.pawn.Camera()
	var mouse Vec2
	hasMouse := false
	if pc.Mouse != nil {
		mouse, hasMouse = pc.Mouse.CursorPosition()
	}
	cam.UpdateCameraMovement(pc.Viewport, mouse, hasMouse)

	pc.pawn.Tick(dt)
	cam.Update(float32(dt))
}

// View returns the camera view for this frame.
func (pc *PlayerController) View(dt float64) (View, bool) {
	cam := pc.Camera()
	if cam == nil {
		return View{}, false
	}
	return cam.View(dt)
}

// --- ViewController ---

// FocalLocation implements ViewController. The camera looks at the pawn.
func (pc *PlayerController) FocalLocation() Vec3 {
	if pc.pawn == nil {
		return Vec3{}
	}
	return pc.pawn.Location()
}

// CameraRotation implements ViewController.
func (pc *PlayerController) CameraRotation() Rotator {
	if pc.pawn == nil {
		return Rotator{}
	}
	return pc.pawn.Camera().FixedCameraAngle
}

// TraceScreen implements ViewController by intersecting the ray under pos
// with the ground plane.
func (pc *PlayerController) TraceScreen(pos Vec2) (Vec3, bool) {
	return pc.traceToPlane(pos, GroundPlane(0))
}

func (pc *PlayerController) traceToPlane(pos Vec2, plane Plane) (Vec3, bool) {
	if pc.Projector == nil {
		return Vec3{}, false
	}
	origin, dir, ok := pc.Projector.DeprojectScreenToWorld(pos)
	if !ok {
		return Vec3{}, false
	}
	return IntersectRayWithPlane(origin, dir, plane)
}

// friendlyTarget returns the actor under pos and the world point hit.
func (pc *PlayerController) friendlyTarget(pos Vec2) (Actor, Vec3, bool) {
	if pc.Picker != nil {
		return pc.Picker.PickActor(pos)
	}
	hit, ok := pc.TraceScreen(pos)
	return nil, hit, ok
}

// --- Click to move ---

// OnSetDestinationPressed marks the current press as a possible
// click-to-move.
func (pc *PlayerController) OnSetDestinationPressed() {
	pc.candidateMove = true
}

// OnSetDestinationReleased schedules a move to pos for the next PlayerTick
// if the press was not consumed by a camera drag.
func (pc *PlayerController) OnSetDestinationReleased(pos Vec2) {
	if !pc.candidateMove {
		return
	}
	pc.candidateMove = false
	pc.moveToCursor = true
	pc.moveCursorSpot = pos
}

func (pc *PlayerController) moveToScreenPosition(pos Vec2) {
	if _, hit, ok := pc.friendlyTarget(pos); ok {
		pc.SetNewMoveDestination(hit)
	}
}

// SetNewMoveDestination orders the main character to dest when it is
// farther than the camera config's MinDistanceToMoveCharacter.
func (pc *PlayerController) SetNewMoveDestination(dest Vec3) {
	cam := pc.Camera()
	if pc.MainCharacter == nil || pc.Mover == nil || cam == nil {
		return
	}
	if dest.Dist(pc.MainCharacter.Location()) > cam.MinDistanceToMoveCharacter {
		pc.Mover.MoveToLocation(dest)
	}
}

// --- Wheel and axes ---

// OnMouseScrollUp zooms out.
func (pc *PlayerController) OnMouseScrollUp() {
	if pc.pawn != nil {
		pc.pawn.OnMouseScrollUp()
	}
}

// OnMouseScrollDown zooms in.
func (pc *PlayerController) OnMouseScrollDown() {
	if pc.pawn != nil {
		pc.pawn.OnMouseScrollDown()
	}
}

// MoveForward moves the camera along its forward axis and walks the main
// character after it.
func (pc *PlayerController) MoveForward(val float64) {
	pc.moveAxis(val, (*SpectatorPawn).MoveForward)
}

// MoveRight moves the camera along its right axis and walks the main
// character after it.
func (pc *PlayerController) MoveRight(val float64) {
	pc.moveAxis(val, (*SpectatorPawn).MoveRight)
}

func (pc *PlayerController) moveAxis(val float64, move func(*SpectatorPawn, float64)) {
	if pc.pawn == nil || pc.MainCharacter == nil || val == 0 {
		return
	}
	move(pc.pawn, val)
	if pc.Mover != nil {
		pc.Mover.MoveToLocation(pc.pawn.Location())
	}
}

// --- Gesture handlers ---

// OnTapPressed turns following back on when the main character is tapped.
func (pc *PlayerController) OnTapPressed(pos Vec2, downTime float64) {
	if pc.pawn == nil || pc.MainCharacter == nil {
		return
	}
	if actor, _, ok := pc.friendlyTarget(pos); ok && actor == pc.MainCharacter {
		pc.pawn.FollowMainCharacter = true
	}
}

// OnHoldPressed selects the actor under the finger and notifies it.
func (pc *PlayerController) OnHoldPressed(pos Vec2, downTime float64) {
	actor, _, _ := pc.friendlyTarget(pos)
	pc.selected = actor
	if r, ok := actor.(HoldReceiver); ok {
		r.OnInputHold()
	}
}

// OnHoldReleased notifies the selected actor that the hold ended.
func (pc *PlayerController) OnHoldReleased(pos Vec2, downTime float64) {
	if r, ok := pc.selected.(HoldReceiver); ok {
		r.OnInputHoldReleased(downTime)
	}
}

// OnSwipeStarted starts a camera drag, picks the actor under the anchor,
// and stops following the main character.
func (pc *PlayerController) OnSwipeStarted(anchor Vec2, downTime float64) {
	if cam := pc.Camera(); cam != nil {
		cam.OnSwipeStarted(anchor)
	}

	actor, _, _ := pc.friendlyTarget(anchor)
	pc.selected = actor
	if actor != nil {
		pc.swipeAnchor3D = actor.Location()
	}

	if pc.pawn != nil {
		pc.pawn.FollowMainCharacter = false
	}
}

// OnSwipeUpdate drags the selected actor if it accepts swipes, otherwise
// pans the camera and cancels any pending click-to-move.
func (pc *PlayerController) OnSwipeUpdate(pos Vec2, downTime float64) {
	if r, ok := pc.selected.(SwipeReceiver); ok {
		if hit, ok := pc.traceToPlane(pos, GroundPlane(r.Location().Z)); ok {
			r.OnInputSwipeUpdate(hit.Sub(pc.swipeAnchor3D))
		}
	} else if cam := pc.Camera(); cam != nil {
		cam.OnSwipeUpdate(pos)
		pc.candidateMove = false
	}
}

// OnSwipeReleased finishes an actor drag or the camera drag.
func (pc *PlayerController) OnSwipeReleased(pos Vec2, downTime float64) {
	if r, ok := pc.selected.(SwipeReceiver); ok {
		if hit, ok := pc.traceToPlane(pos, GroundPlane(r.Location().Z)); ok {
			r.OnInputSwipeReleased(hit.Sub(pc.swipeAnchor3D), downTime)
		}
		if cam := pc.Camera(); cam != nil {
			cam.EndSwipeNow()
		}
		return
	}
	if cam := pc.Camera(); cam != nil {
		cam.OnSwipeReleased(pos)
	}
}

// OnSwipeTwoPointsStarted records the starting midpoint.
func (pc *PlayerController) OnSwipeTwoPointsStarted(pos1, pos2 Vec2, downTime float64) {
	pc.prevSwipeMid = pos1.Add(pos2).Scale(0.5)
}

// OnSwipeTwoPointsUpdate pushes the pawn in the direction the midpoint
// moved on screen, turned into world space by the camera yaw.
func (pc *PlayerController) OnSwipeTwoPointsUpdate(pos1, pos2 Vec2, downTime float64) {
	mid := pos1.Add(pos2).Scale(0.5)
	d := mid.Sub(pc.prevSwipeMid)
	dir := Vec3{d.X, d.Y, 0}.SafeNormal()
	pc.prevSwipeMid = mid

	if pc.pawn == nil {
		return
	}
	rot := pc.CameraRotation().Add(Rotator{Yaw: twoPointSwipeYaw})
	pc.pawn.AddMovementInput(rot.TransformVector(dir).Scale(twoPointSwipeSpeed), 1)
}

// OnPinchStarted hands the pinch to the camera. Following is left as is,
// so the camera can keep tracking the character at another zoom.
func (pc *PlayerController) OnPinchStarted(anchor1, anchor2 Vec2, downTime float64) {
	if cam := pc.Camera(); cam != nil {
		cam.OnPinchStarted(anchor1, anchor2, downTime)
	}
}

// OnPinchUpdate zooms the camera relative to the pinch anchors.
func (pc *PlayerController) OnPinchUpdate(pos1, pos2 Vec2, downTime float64) {
	if cam := pc.Camera(); cam != nil {
		cam.OnPinchUpdate(pc.input, pos1, pos2, downTime)
	}
}
