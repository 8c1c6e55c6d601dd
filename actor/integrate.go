package actor

import (
	"github.com/krumaska/opensurge/obstacle"
	"github.com/krumaska/opensurge/sensor"
)

// integrateVelocities is stage 5. While grounded, xsp/ysp are derived
// from gsp and angle per the §3 invariant; airborne velocities were
// already advanced by airPhysics during stage 4.
func (a *Actor) integrateVelocities(dt float32) {
	if a.Midair {
		return
	}
	a.Xsp = a.Gsp * Cos(a.Angle)
	a.Ysp = -a.Gsp * Sin(a.Angle)
}

// blockedAxes tracks which world axes got zeroed by a wall/ceiling hit
// during sub-stepped motion, consulted by the collision-response stages.
type blockedAxes struct {
	negX, posX, negY, posY bool
}

// subStepMotion is stage 6: translate in up to N small sub-steps,
// re-reading M/N/C/D after each and zeroing the blocked axis of the
// remaining displacement, per §4.7's per-movmode block-rule table.
func (a *Actor) subStepMotion(dt float32, m obstacle.Map) {
	dx := a.Xsp * dt
	dy := a.Ysp * dt

	maxSpeed := maxf(a.Params.CapSpeed, a.Params.TopYSpeed)
	n := int(maxSpeed/60/2 + 0.999999)
	if n < 1 {
		n = 1
	}
	disp := fastSqrt(dx*dx + dy*dy)
	byDisp := int(disp + 0.999999)
	if byDisp < n {
		n = byDisp
	}
	if n < 1 {
		n = 1
	}

	stepX := dx / float32(n)
	stepY := dy / float32(n)

	var blocked blockedAxes
	mode := a.GetMovmode()

	for i := 0; i < n; i++ {
		if blocked.negX && blocked.posX && blocked.negY && blocked.posY {
			break
		}

		sx, sy := stepX, stepY
		if (stepX < 0 && blocked.negX) || (stepX > 0 && blocked.posX) {
			sx = 0
		}
		if (stepY < 0 && blocked.negY) || (stepY > 0 && blocked.posY) {
			sy = 0
		}
		a.X += sx
		a.Y += sy

		p := a.currentPose()
		sM := a.bank.Get(p, sensor.M)
		sN := a.bank.Get(p, sensor.N)
		sC := a.bank.Get(p, sensor.C)
		sD := a.bank.Get(p, sensor.D)

		rM := sM.Check(a.X, a.Y, mode, a.Layer, m)
		rN := sN.Check(a.X, a.Y, mode, a.Layer, m)
		rC := sC.Check(a.X, a.Y, mode, a.Layer, m)
		rD := sD.Check(a.X, a.Y, mode, a.Layer, m)
		rM = solidOnly(rM)
		rN = solidOnly(rN)
		rC = solidOnly(rC)
		rD = solidOnly(rD)

		switch mode {
		case Floor:
			if rM.Hit {
				blocked.negX = true
			}
			if rN.Hit {
				blocked.posX = true
			}
			if rC.Hit || rD.Hit {
				blocked.negY = true
			}
		case RightWall:
			if rM.Hit {
				blocked.posY = true
			}
			if rN.Hit {
				blocked.negY = true
			}
			if rC.Hit || rD.Hit {
				blocked.negX = true
			}
		case Ceiling:
			if rM.Hit {
				blocked.posX = true
			}
			if rN.Hit {
				blocked.negX = true
			}
			if rC.Hit || rD.Hit {
				blocked.posY = true
			}
		case LeftWall:
			if rM.Hit {
				blocked.negY = true
			}
			if rN.Hit {
				blocked.posY = true
			}
			if rC.Hit || rD.Hit {
				blocked.posX = true
			}
		}
	}

	a.blocked = blocked
}
