package actor

import "github.com/krumaska/opensurge/obstacle"

// timersAndStateFixup is stage 13 (§7): advance the remaining per-tick
// timers, then repair any animation state that the earlier stages left
// in a combination the state machine disallows (a state valid only on
// the ground surviving into midair, or a ground state with near-zero
// gsp still reading as "walking").
func (a *Actor) timersAndStateFixup(dt float32, m obstacle.Map) {
	a.HlockTimer = countDown(a.HlockTimer, dt)
	a.JumpLockTimer = countDown(a.JumpLockTimer, dt)
	if a.Midair {
		a.MidairTimer += dt
	}

	if a.Midair {
		switch a.State {
		case Pushing, Stopped, Waiting, Ducking, LookingUp, Braking:
			if absf(a.Gsp) >= a.Params.RunThreshold {
				a.State = Running
			} else {
				a.State = Walking
			}
		}
		return
	}

	switch a.State {
	case Walking:
		if absf(a.Gsp) < 0.0001 {
			a.State = Stopped
		} else if absf(a.Gsp) >= a.Params.RunThreshold {
			a.State = Running
		}
	case Running:
		if absf(a.Gsp) < a.Params.RunThreshold {
			a.State = Walking
		}
		if absf(a.Gsp) < 0.0001 {
			a.State = Stopped
		}
	case Stopped:
		if absf(a.Gsp) > 0.0001 {
			a.State = Walking
			a.WaitTimer = 0
		} else {
			a.WaitTimer += dt
			if a.WaitTimer >= a.Params.WaitTime {
				a.State = Waiting
			}
		}
	case Waiting:
		if absf(a.Gsp) > 0.0001 {
			a.State = Walking
			a.WaitTimer = 0
		}
	}

	a.checkLedge(m)
}

// ledgeProbeMargin is how far past the foot sensors' own depth
// centerGroundHit looks under the actor's center before concluding
// there is truly no ground there (a crack the foot sensors straddle
// still has ground at this depth; a real ledge does not).
const ledgeProbeMargin = 8

// centerGroundHit reports whether an obstacle sits under the actor's
// center, offset down by the foot sensors' depth plus ledgeProbeMargin.
func (a *Actor) centerGroundHit(m obstacle.Map) bool {
	return m.PointCollision(a.X, a.Y+footSensorLength+ledgeProbeMargin, obstacle.DirFloor, a.Layer)
}

// checkLedge implements §4.4's ledge detection: grounded in Floor mode,
// stopped, gsp near zero, one of the two foot sensors no longer finds
// ground beneath it, and nothing under the center either (otherwise an
// actor straddling a narrow crack with one foot over it would falsely
// read as balanced over a pit).
func (a *Actor) checkLedge(m obstacle.Map) {
	if a.State != Stopped && a.State != Waiting {
		return
	}
	if a.GetMovmode() != Floor {
		return
	}
	if absf(a.Gsp) > 0.0001 {
		return
	}
	if a.probes.A.Hit == a.probes.B.Hit {
		return
	}
	if a.centerGroundHit(m) {
		return
	}
	a.State = Ledge
}

func countDown(v, dt float32) float32 {
	v -= dt
	if v < 0 {
		v = 0
	}
	return v
}
