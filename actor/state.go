package actor

import "github.com/krumaska/opensurge/sensor"

// Movmode is the actor's current cardinal surface orientation, shared
// with the sensor package so sensor rotation and angle-derived movmode
// always agree on the same four values.
type Movmode = sensor.Movmode

const (
	Floor     = sensor.Floor
	LeftWall  = sensor.LeftWall
	Ceiling   = sensor.Ceiling
	RightWall = sensor.RightWall
)

// Pose selects which of the sensor bank's three precomputed geometry
// sets is active (§4.1).
type Pose uint8

const (
	PoseNormal Pose = iota
	PoseAirborne
	PoseJumpRoll
)

// AnimState is the actor's animation/control state (§3, §4.4).
type AnimState uint8

const (
	Stopped AnimState = iota
	Waiting
	Walking
	Running
	Jumping
	Rolling
	Pushing
	GettingHit
	Braking
	LookingUp
	Ducking
	Charging
	Springing
	Breathing
	Ledge
	Winning
	Dead
	Drowned
)

func (s AnimState) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Waiting:
		return "Waiting"
	case Walking:
		return "Walking"
	case Running:
		return "Running"
	case Jumping:
		return "Jumping"
	case Rolling:
		return "Rolling"
	case Pushing:
		return "Pushing"
	case GettingHit:
		return "GettingHit"
	case Braking:
		return "Braking"
	case LookingUp:
		return "LookingUp"
	case Ducking:
		return "Ducking"
	case Charging:
		return "Charging"
	case Springing:
		return "Springing"
	case Breathing:
		return "Breathing"
	case Ledge:
		return "Ledge"
	case Winning:
		return "Winning"
	case Dead:
		return "Dead"
	case Drowned:
		return "Drowned"
	default:
		return "Unknown"
	}
}

// pose returns the active sensor pose for the given state and midair
// flag, per §4.1.
func pose(state AnimState, midair bool) Pose {
	switch {
	case state == Jumping || state == Rolling:
		return PoseJumpRoll
	case midair || state == Springing:
		return PoseAirborne
	default:
		return PoseNormal
	}
}
