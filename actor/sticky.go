package actor

import (
	"github.com/krumaska/opensurge/obstacle"
	"github.com/krumaska/opensurge/sensor"
)

// stickyMinReach and stickyMaxReach bound the downward re-probe in
// stickyPhysics (§4.10): the actor is allowed to have dropped as little
// as 4px and as much as 12px off a convex surface and still reattach.
const (
	stickyMinReach = 4
	stickyMaxReach = 12
)

// localDown returns the world-space unit displacement a foot sensor
// probes along for the given movmode, matching sensor.Direction's walk
// direction (DirFloor/+Y, DirRightWall/+X, DirCeiling/-Y, DirLeftWall/-X).
func localDown(mode Movmode) (float32, float32) {
	switch mode {
	case Floor:
		return 0, 1
	case RightWall:
		return 1, 0
	case Ceiling:
		return 0, -1
	case LeftWall:
		return -1, 0
	default:
		return 0, 1
	}
}

// footHit reports whether either foot sensor finds an obstacle with the
// actor's anchor at (x, y).
func (a *Actor) footHit(x, y float32, mode Movmode, m obstacle.Map) bool {
	p := a.currentPose()
	sA := a.bank.Get(p, sensor.A)
	sB := a.bank.Get(p, sensor.B)
	return sA.Check(x, y, mode, a.Layer, m).Hit || sB.Check(x, y, mode, a.Layer, m).Hit
}

// stickyPhysics is stage 9 (§4.10): the one tick where the actor went
// from grounded to midair (not through a jump, hit, spring, drowning, or
// death) gets a chance to re-attach across a small convex break in the
// surface, by walking the anchor down in local-down up to stickyMaxReach
// and re-probing at each step, instead of simply falling off it.
func (a *Actor) stickyPhysics(m obstacle.Map) {
	if a.StickyLock {
		return
	}
	if !a.Midair || a.WasMidair {
		return
	}
	switch a.State {
	case Jumping, GettingHit, Springing, Drowned, Dead:
		return
	}

	mode := a.GetMovmode()
	dx, dy := localDown(mode)
	origX, origY := a.X, a.Y

	reattached := false
	for u := float32(stickyMinReach); u <= stickyMaxReach; u++ {
		tx, ty := origX+dx*u, origY+dy*u
		if !a.footHit(tx, ty, mode, m) {
			continue
		}

		a.X, a.Y = tx, ty
		a.Midair = false
		a.readSensors(m)
		a.groundAngleTracking(m)

		if a.Midair {
			a.X, a.Y = origX, origY
			a.readSensors(m)
			break
		}

		reattached = true
		break
	}

	if reattached {
		a.StickyLock = false
		return
	}
	if a.State == Rolling {
		a.StickyLock = true
	}
}
