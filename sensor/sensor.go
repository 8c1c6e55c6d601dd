// Package sensor implements the axis-aligned line-segment probe the
// actor uses to query the obstacle map, including its movmode-dependent
// rotation into world space.
package sensor

import "github.com/krumaska/opensurge/obstacle"

// Movmode is the cardinal surface the actor is currently oriented to.
type Movmode uint8

const (
	Floor Movmode = iota
	LeftWall
	Ceiling
	RightWall
)

// Label names one of the seven sensors of the bank.
type Label uint8

const (
	A Label = iota
	B
	C
	D
	M
	N
	U
)

// Sensor is an axis-aligned line segment in sprite-local coordinates.
// It is immutable after construction except for Enabled, matching the
// "immutable thereafter except set_enabled" contract of the primitive.
type Sensor struct {
	Label          Label
	X1, Y1, X2, Y2 float32
	Enabled        bool
}

// NewVertical builds a vertical sensor at local x from y1 to y2.
func NewVertical(label Label, x, y1, y2 float32) Sensor {
	return Sensor{Label: label, X1: x, Y1: y1, X2: x, Y2: y2, Enabled: true}
}

// NewHorizontal builds a horizontal sensor at local y from x1 to x2.
func NewHorizontal(label Label, y, x1, x2 float32) Sensor {
	return Sensor{Label: label, X1: x1, Y1: y, X2: x2, Y2: y, Enabled: true}
}

// rotate applies the movmode coordinate rotation from spec §6.2:
//
//	Floor:     identity
//	RightWall: (x, y) -> (-y, x)
//	Ceiling:   (x, y) -> (-x, -y)
//	LeftWall:  (x, y) -> (y, -x)
func rotate(x, y float32, mode Movmode) (float32, float32) {
	switch mode {
	case Floor:
		return x, y
	case RightWall:
		return -y, x
	case Ceiling:
		return -x, -y
	case LeftWall:
		return y, -x
	default:
		return x, y
	}
}

// WorldPos returns both endpoints of the sensor in world space given the
// actor's anchor position and current movmode.
func (s Sensor) WorldPos(ax, ay float32, mode Movmode) (x1, y1, x2, y2 float32) {
	rx1, ry1 := rotate(s.X1, s.Y1, mode)
	rx2, ry2 := rotate(s.X2, s.Y2, mode)
	return ax + rx1, ay + ry1, ax + rx2, ay + ry2
}

// Head returns the lower-index endpoint in world space.
func (s Sensor) Head(ax, ay float32, mode Movmode) (float32, float32) {
	x1, y1, _, _ := s.WorldPos(ax, ay, mode)
	return x1, y1
}

// Tail returns the higher-index endpoint in world space.
func (s Sensor) Tail(ax, ay float32, mode Movmode) (float32, float32) {
	_, _, x2, y2 := s.WorldPos(ax, ay, mode)
	return x2, y2
}

// Direction returns the obstacle-map probe direction this sensor looks
// in, given the actor's movmode.
func (s Sensor) Direction(mode Movmode) obstacle.Direction {
	switch mode {
	case Floor:
		return obstacle.DirFloor
	case RightWall:
		return obstacle.DirRightWall
	case Ceiling:
		return obstacle.DirCeiling
	case LeftWall:
		return obstacle.DirLeftWall
	default:
		return obstacle.DirFloor
	}
}

// maxProbeDistance is generous enough for any of the bank's sensor
// lengths (the longest is 24px) plus a margin for the reacquisition walk.
const maxProbeDistance = 64

// Check rotates the sensor into world space and queries m at its tail,
// returning obstacle.ProbeResult{} (Hit == false) when disabled.
func (s Sensor) Check(ax, ay float32, mode Movmode, layer string, m obstacle.Map) obstacle.ProbeResult {
	if !s.Enabled {
		return obstacle.ProbeResult{}
	}
	tx, ty := s.Tail(ax, ay, mode)
	return m.Probe(tx, ty, s.Direction(mode), maxProbeDistance, layer)
}
