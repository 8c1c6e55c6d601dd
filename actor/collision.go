package actor

import (
	"github.com/krumaska/opensurge/obstacle"
	"github.com/krumaska/opensurge/sensor"
)

// wallResponse is stage 7 (§4.8): the M/N "pushing into a wall" sensors
// clamp gsp, snap the actor flush to the obstacle, and either detach the
// actor (non-floor movmodes) or mark it as Pushing (floor movmode).
func (a *Actor) wallResponse(m obstacle.Map) {
	mode := a.GetMovmode()
	hitM := a.blocked.negX || a.blocked.negY
	hitN := a.blocked.posX || a.blocked.posY
	if !hitM && !hitN {
		return
	}

	var hit obstacle.ProbeResult
	var dir obstacle.Direction
	switch {
	case mode == Floor && a.blocked.negX:
		hit, dir = a.probes.M, obstacle.DirLeftWall
	case mode == Floor && a.blocked.posX:
		hit, dir = a.probes.N, obstacle.DirRightWall
	case mode == RightWall && a.blocked.posY:
		hit, dir = a.probes.M, obstacle.DirFloor
	case mode == RightWall && a.blocked.negY:
		hit, dir = a.probes.N, obstacle.DirCeiling
	case mode == Ceiling && a.blocked.posX:
		hit, dir = a.probes.M, obstacle.DirRightWall
	case mode == Ceiling && a.blocked.negX:
		hit, dir = a.probes.N, obstacle.DirLeftWall
	case mode == LeftWall && a.blocked.negY:
		hit, dir = a.probes.M, obstacle.DirCeiling
	case mode == LeftWall && a.blocked.posY:
		hit, dir = a.probes.N, obstacle.DirFloor
	default:
		return
	}
	if !hit.Hit {
		return
	}

	if a.Gsp > 0 && hitN {
		a.Gsp = 0
	} else if a.Gsp < 0 && hitM {
		a.Gsp = 0
	}
	if a.Xsp > 0 && (dir == obstacle.DirRightWall) {
		a.Xsp = 0
	} else if a.Xsp < 0 && dir == obstacle.DirLeftWall {
		a.Xsp = 0
	}

	switch dir {
	case obstacle.DirFloor:
		a.Y = hit.GroundPos
	case obstacle.DirCeiling:
		a.Y = hit.GroundPos
	case obstacle.DirLeftWall, obstacle.DirRightWall:
		a.X = hit.GroundPos
	}

	if mode == Floor {
		if !a.Midair && a.State != Rolling && a.State != Charging &&
			absf(a.Gsp) <= 0.0001 {
			a.State = Pushing
		}
	} else {
		a.Angle = AngleFloor
		a.Midair = true
	}
}

// steepCeilingBand reports whether angle sits in one of §4.9's two
// bands a ceiling hit can reattach to rather than just bump against.
func steepCeilingBand(angle Angle) bool {
	return (angle >= 0xA0 && angle <= 0xBF) || (angle >= 0x40 && angle <= 0x5F)
}

// reacquireCeilingAngle derives the tilt of the surface under C/D the
// same way groundAngleTracking derives floor tilt from A/B, then folds
// it onto AngleCeiling so a sloped ceiling resolves to the matching
// steep-band angle instead of always snapping flat.
func (a *Actor) reacquireCeilingAngle() Angle {
	c, d := a.probes.C, a.probes.D
	if !c.Hit || !d.Hit {
		return AngleCeiling
	}
	p := a.currentPose()
	sC := a.bank.Get(p, sensor.C)
	sD := a.bank.Get(p, sensor.D)
	dx := int(sD.X1 - sC.X1)
	dy := int(d.GroundPos - c.GroundPos)
	return AngleCeiling + SlopeAngle(dx, dy)
}

// ceilingResponse is stage 8 (§4.9): the C/D "head hitting a ceiling"
// sensors pick whichever of the pair reports the more extreme surface.
// While still rising, the actor is given a chance to reattach to a
// steep ceiling band (looping upside-down onto it) before falling back
// to a flat head-bump that clamps ysp and snaps the head off the
// surface by one pixel.
func (a *Actor) ceilingResponse(m obstacle.Map) {
	if !a.blocked.negY && !a.blocked.posY {
		return
	}
	mode := a.GetMovmode()
	if mode == Floor || mode == Ceiling {
		hitCeiling := (mode == Floor && a.blocked.negY) || (mode == Ceiling && a.blocked.posY)
		if !hitCeiling {
			return
		}
	}

	c, d := a.probes.C, a.probes.D
	var hit obstacle.ProbeResult
	switch {
	case c.Hit && d.Hit:
		if mode == Ceiling {
			if c.GroundPos > d.GroundPos {
				hit = c
			} else {
				hit = d
			}
		} else if c.GroundPos < d.GroundPos {
			hit = c
		} else {
			hit = d
		}
	case c.Hit:
		hit = c
	case d.Hit:
		hit = d
	default:
		return
	}

	switch mode {
	case Floor, Ceiling:
		if a.Ysp < 0 {
			a.Angle = a.reacquireCeilingAngle()
			if steepCeilingBand(a.Angle) {
				fromX := -a.Xsp
				fromY := a.Ysp * -signf(Sin(a.Angle))
				if absf(fromY) > absf(fromX) {
					a.Gsp = fromY
				} else {
					a.Gsp = fromX
				}
				a.Xsp, a.Ysp = 0, 0
				if a.State != Rolling {
					if absf(a.Gsp) >= a.Params.RunThreshold {
						a.State = Running
					} else {
						a.State = Walking
					}
				}
				return
			}
			a.Ysp = 0
		}
		a.Angle = AngleFloor
		p := a.currentPose()
		sC := a.bank.Get(p, sensor.C)
		headLen := -sC.Y1
		if mode == Floor {
			a.Y = hit.GroundPos + headLen + 1
		} else {
			a.Y = hit.GroundPos - headLen - 1
		}
	case LeftWall, RightWall:
		if a.Xsp < 0 && mode == RightWall {
			a.Xsp = 0
		}
		if a.Xsp > 0 && mode == LeftWall {
			a.Xsp = 0
		}
		a.Y = hit.GroundPos
		a.Angle = AngleFloor
	}
}
