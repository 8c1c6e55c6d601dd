package actor

import "github.com/krumaska/opensurge/input"

// airPhysics implements §4.6: horizontal air control, air drag, and
// gravity, all expressed in per-second units so dt scales correctly.
func (a *Actor) airPhysics(dt float32) {
	p := &a.Params

	if !a.inputLocked() {
		if a.Input.Down(input.Left) && a.HlockTimer <= 0 {
			a.Xsp -= p.Air * dt
			if a.Xsp < -p.TopSpeed && a.Xsp+p.Air*dt >= -p.TopSpeed {
				a.Xsp = -p.TopSpeed
			}
		}
		if a.Input.Down(input.Right) && a.HlockTimer <= 0 {
			a.Xsp += p.Air * dt
			if a.Xsp > p.TopSpeed && a.Xsp-p.Air*dt <= p.TopSpeed {
				a.Xsp = p.TopSpeed
			}
		}
	}

	if a.Ysp < 0 && a.Ysp > p.AirDragThreshold*-1 && absf(a.Xsp) >= p.AirDragXThresh {
		c0, c1 := p.AirDragCoefficient()
		a.Xsp *= c0*dt + c1
	}

	grv := p.Grv
	if a.State == GettingHit {
		grv = grv * 6 / 7
	}
	a.Ysp += grv * dt
	if a.Ysp > p.TopYSpeed {
		a.Ysp = p.TopYSpeed
	}
}
