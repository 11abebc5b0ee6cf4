package tdc

import "math"

// Default floating-movement tuning for a spectator pawn.
const (
	DefaultPawnMaxSpeed     = 16000.0
	DefaultPawnAcceleration = 5000.0
	DefaultPawnDeceleration = 4000.0

	turningBoost = 8.0
)

// PawnMovement integrates accumulated movement input into velocity using
// floating-pawn rules: input is clamped to unit length, acceleration is
// applied along it, and velocity decays by Deceleration when there is no
// input.
type PawnMovement struct {
	MaxSpeed     float64
	Acceleration float64
	Deceleration float64
	Velocity     Vec3
}

// NewPawnMovement returns movement with the default tuning.
func NewPawnMovement() *PawnMovement {
	return &PawnMovement{
		MaxSpeed:     DefaultPawnMaxSpeed,
		Acceleration: DefaultPawnAcceleration,
		Deceleration: DefaultPawnDeceleration,
	}
}

// Step applies one frame of input and returns the displacement for dt.
func (m *PawnMovement) Step(input Vec3, dt float64) Vec3 {
	if dt <= 0 {
		return Vec3{}
	}
	control := clampLen(input, 1)
	analog := control.Len()
	maxSpeed := m.MaxSpeed * analog
	exceeding := m.Velocity.LenSq() > maxSpeed*maxSpeed*1.01

	if analog > 0 && !exceeding {
		if speed := m.Velocity.Len(); speed > 0 {
			m.Velocity = m.Velocity.Add(control.Scale(speed).Sub(m.Velocity).Scale(math.Min(dt*turningBoost, 1)))
		}
	} else if m.Velocity.LenSq() > 0 {
		old := m.Velocity
		speed := math.Max(m.Velocity.Len()-math.Abs(m.Deceleration)*dt, 0)
		m.Velocity = m.Velocity.SafeNormal().Scale(speed)
		if exceeding && m.Velocity.LenSq() < maxSpeed*maxSpeed {
			m.Velocity = old.SafeNormal().Scale(maxSpeed)
		}
	}

	limit := maxSpeed
	if m.Velocity.LenSq() > maxSpeed*maxSpeed*1.01 {
		limit = m.Velocity.Len()
	}
	m.Velocity = clampLen(m.Velocity.Add(control.Scale(math.Abs(m.Acceleration)*dt)), limit)
	return m.Velocity.Scale(dt)
}

// Stop zeroes the velocity.
func (m *PawnMovement) Stop() {
	m.Velocity = Vec3{}
}

func clampLen(v Vec3, max float64) Vec3 {
	if max <= 0 {
		return Vec3{}
	}
	if l := v.Len(); l > max {
		return v.Scale(max / l)
	}
	return v
}

// SpectatorPawn is the invisible actor the camera is attached to. It
// carries the Camera, accumulates movement input, and integrates it each
// Tick.
type SpectatorPawn struct {
	// FollowMainCharacter keeps the pawn over the controller's character
	// until the player drags the camera.
	FollowMainCharacter bool

	location     Vec3
	camera       *Camera
	movement     *PawnMovement
	controller   ViewController
	pendingInput Vec3
}

// NewSpectatorPawn creates a pawn with a camera configured from cfg and
// default floating movement.
func NewSpectatorPawn(cfg Config) *SpectatorPawn {
	p := &SpectatorPawn{
		FollowMainCharacter: true,
		camera:              NewCamera(cfg),
		movement:            NewPawnMovement(),
	}
	p.camera.owner = p
	return p
}

// Camera returns the pawn's camera.
func (p *SpectatorPawn) Camera() *Camera { return p.camera }

// Movement returns the pawn's movement component.
func (p *SpectatorPawn) Movement() *PawnMovement { return p.movement }

// Controller returns the possessing controller, or nil.
func (p *SpectatorPawn) Controller() ViewController { return p.controller }

// Possess attaches the pawn to a controller. Passing nil unpossesses.
func (p *SpectatorPawn) Possess(vc ViewController) {
	p.controller = vc
}

// Location returns the pawn's world location.
func (p *SpectatorPawn) Location() Vec3 { return p.location }

// SetLocation moves the pawn, clamped to the camera's movement bounds.
func (p *SpectatorPawn) SetLocation(loc Vec3) {
	p.location = p.camera.ClampCameraLocation(loc)
}

// AddMovementInput accumulates dir scaled by scale for the next Tick.
func (p *SpectatorPawn) AddMovementInput(dir Vec3, scale float64) {
	if scale == 0 {
		return
	}
	p.pendingInput = p.pendingInput.Add(dir.Scale(scale))
}

// PendingMovementInput returns the input accumulated since the last Tick.
func (p *SpectatorPawn) PendingMovementInput() Vec3 {
	return p.pendingInput
}

// MoveForward is the keyboard/gamepad forward axis.
func (p *SpectatorPawn) MoveForward(val float64) { p.camera.MoveForward(val) }

// MoveRight is the keyboard/gamepad right axis.
func (p *SpectatorPawn) MoveRight(val float64) { p.camera.MoveRight(val) }

// OnMouseScrollUp zooms out.
func (p *SpectatorPawn) OnMouseScrollUp() { p.camera.ZoomOut() }

// OnMouseScrollDown zooms in.
func (p *SpectatorPawn) OnMouseScrollDown() { p.camera.ZoomIn() }

// Tick consumes pending movement input and moves the pawn.
func (p *SpectatorPawn) Tick(dt float64) {
	input := p.pendingInput
	p.pendingInput = Vec3{}
	if p.movement == nil {
		return
	}
	disp := p.movement.Step(input, dt)
	if disp == (Vec3{}) {
		return
	}
	p.SetLocation(p.location.Add(disp))
}
