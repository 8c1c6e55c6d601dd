// Package actor implements the physics actor: a single movable
// character whose motion, collision response, and animation state are
// driven by a deterministic simulation over a static obstacle map.
package actor

import (
	"github.com/krumaska/opensurge/input"
	"github.com/krumaska/opensurge/obstacle"
)

// Actor is the long-lived entity described by the data model: kinematics,
// orientation, flags, timers, charge state, animation state, a layer
// tag, an input handle, tunable parameters, and a fixed sensor bank.
type Actor struct {
	X, Y        float32
	Xsp, Ysp    float32
	Gsp         float32
	Angle       Angle
	FacingRight bool

	Midair          bool
	WasMidair       bool
	TouchingCeiling bool
	InsideWall      bool
	WinningPose     bool
	StickyLock      bool

	HlockTimer    float32
	JumpLockTimer float32
	WaitTimer     float32
	MidairTimer   float32
	BreatheTimer  float32

	ChargeIntensity float32

	State AnimState
	Layer string

	Input input.Device
	Params Params

	bank *Bank

	referenceTime float32
	fixedTime     float32

	prevDown [6]bool
	probes   probeSet
	blocked  blockedAxes

	width, height float32
}

// New creates an Actor at position (x, y) with default tunables and the
// Normal pose active, facing right, Stopped.
func New(x, y float32) *Actor {
	a := &Actor{
		X: x, Y: y,
		FacingRight: true,
		State:       Stopped,
		Layer:       "default",
		Input:       input.NewSimulated(),
		Params:      DefaultParams(),
		bank:        NewBank(),
		width:       19,
		height:      38,
	}
	return a
}

// SetPosition implements set_position.
func (a *Actor) SetPosition(x, y float32) { a.X, a.Y = x, y }

// GetPosition implements get_position.
func (a *Actor) GetPosition() (float32, float32) { return a.X, a.Y }

// GetState implements get_state.
func (a *Actor) GetState() AnimState { return a.State }

// GetAngle implements get_angle: counter-clockwise degrees.
func (a *Actor) GetAngle() float64 { return a.Angle.Degrees() }

// GetMovmode implements get_movmode.
func (a *Actor) GetMovmode() Movmode { return a.Angle.Movmode() }

// GetLayer implements get_layer.
func (a *Actor) GetLayer() string { return a.Layer }

// SetLayer implements set_layer.
func (a *Actor) SetLayer(l string) { a.Layer = l }

func (a *Actor) IsMidair() bool          { return a.Midair }
func (a *Actor) IsTouchingCeiling() bool { return a.TouchingCeiling }
func (a *Actor) IsFacingRight() bool     { return a.FacingRight }
func (a *Actor) IsInsideWall() bool      { return a.InsideWall }

// EnableWinningPose implements enable_winning_pose.
func (a *Actor) EnableWinningPose() { a.WinningPose = true }

// Resurrect implements resurrect(position): returns success only from
// Dead/Drowned, per §7.
func (a *Actor) Resurrect(x, y float32) bool {
	if a.State != Dead && a.State != Drowned {
		return false
	}
	a.X, a.Y = x, y
	a.Xsp, a.Ysp, a.Gsp = 0, 0, 0
	a.Angle = AngleFloor
	a.State = Stopped
	a.Midair = false
	return true
}

// LockHorizontallyFor implements lock_horizontally_for(seconds): only
// increases hlock_timer, never decreases, and clamps negative durations
// to 0 per §7.
func (a *Actor) LockHorizontallyFor(seconds float32) {
	if seconds < 0 {
		seconds = 0
	}
	if seconds > a.HlockTimer {
		a.HlockTimer = seconds
	}
}

// BoundingBox implements bounding_box(&w, &h, &center).
func (a *Actor) BoundingBox() (w, h float32, centerX, centerY float32) {
	return a.width, a.height, a.X, a.Y
}

// IsStandingOnPlatform implements is_standing_on_platform(obstacle): true
// when grounded in Floor mode and the obstacle is a cloud directly below.
func (a *Actor) IsStandingOnPlatform(m obstacle.Map) bool {
	if a.Midair || a.GetMovmode() != Floor {
		return false
	}
	r := m.Probe(a.X, a.Y, obstacle.DirFloor, float32(a.height), a.Layer)
	return r.Hit && !r.Solid
}

// RollDelta implements roll_delta(): the sensor-height difference between
// the Normal and JumpRoll pose foot sensors (a measure of how far the
// actor's silhouette shrinks while rolling).
func (a *Actor) RollDelta() float32 {
	normal := a.bank.Get(PoseNormal, 0)
	roll := a.bank.Get(PoseJumpRoll, 0)
	return (normal.Y2 - normal.Y1) - (roll.Y2 - roll.Y1)
}

// ChargeIntensityValue implements charge_intensity().
func (a *Actor) ChargeIntensityValue() float32 { return a.ChargeIntensity }

// ResetModelParameters implements reset_model_parameters().
func (a *Actor) ResetModelParameters() { a.Params = DefaultParams() }

// --- input injection ---

func (a *Actor) WalkLeft()  { a.Input.SimulateDown(input.Left) }
func (a *Actor) WalkRight() { a.Input.SimulateDown(input.Right) }
func (a *Actor) Duck()      { a.Input.SimulateDown(input.Down) }
func (a *Actor) LookUp()    { a.Input.SimulateDown(input.Up) }
func (a *Actor) Jump()      { a.Input.SimulateDown(input.Fire1) }

// --- state setters ---

func (a *Actor) Kill() {
	a.State = Dead
	a.Xsp, a.Ysp, a.Gsp = 0, 0, 0
	a.FacingRight = true
}

func (a *Actor) Hit() {
	a.State = GettingHit
	if a.Xsp >= 0 {
		a.FacingRight = false
	} else {
		a.FacingRight = true
	}
	a.Ysp = a.Params.HitJmp
}

func (a *Actor) Bounce(strength float32) {
	a.State = Springing
	a.Ysp = strength
	a.Midair = true
}

func (a *Actor) Spring(strength float32) {
	a.Bounce(strength)
}

func (a *Actor) Roll() {
	if a.Midair || absf(a.Gsp) < a.Params.RollThreshold {
		return
	}
	a.State = Rolling
}

func (a *Actor) Drown() {
	a.State = Drowned
	a.Xsp, a.Ysp, a.Gsp = 0, 0, 0
	a.FacingRight = true
}

func (a *Actor) Breathe() {
	a.BreatheTimer = a.Params.WaitTime
	a.State = Breathing
}
