package actor

import "github.com/krumaska/opensurge/input"

// inputLocked reports whether the actor ignores player input entirely
// this tick, per §4.4 (Dead/Drowned/GettingHit).
func (a *Actor) inputLocked() bool {
	return a.State == Dead || a.State == Drowned || a.State == GettingHit
}

// applySpecialStates is stage 3: bookkeeping for states whose behavior
// is mostly "do nothing, just count down", run before any input is
// applied this tick.
func (a *Actor) applySpecialStates(dt float32) {
	switch a.State {
	case Dead, Drowned:
		a.FacingRight = true
	case Breathing:
		a.BreatheTimer -= dt
		if a.BreatheTimer <= 0 {
			a.BreatheTimer = 0
			if a.Midair {
				a.State = Walking
			}
		}
	}
}

// applyDynamics is stage 4: horizontal control, friction/deceleration,
// roll/charge dynamics, jump triggering, and air physics.
func (a *Actor) applyDynamics(dt float32) {
	if a.inputLocked() {
		if a.Midair {
			a.airPhysics(dt)
		}
		return
	}

	if a.Midair {
		a.jumpAttenuation()
		a.airPhysics(dt)
		return
	}

	a.groundDynamics(dt)
}

func (a *Actor) jumpAttenuation() {
	if a.State != Jumping {
		return
	}
	if !a.Input.Down(input.Fire1) && a.Ysp < a.Params.JmpRel {
		a.Ysp = a.Params.JmpRel
	}
}

func (a *Actor) groundDynamics(dt float32) {
	p := &a.Params
	leftHeld := a.Input.Down(input.Left) && a.HlockTimer <= 0
	rightHeld := a.Input.Down(input.Right) && a.HlockTimer <= 0
	downHeld := a.Input.Down(input.Down)
	upHeld := a.Input.Down(input.Up)

	switch a.State {
	case Rolling:
		a.rollDynamics(dt, leftHeld, rightHeld, downHeld)
		a.tryJump(upHeld, downHeld)
		return
	case Charging:
		a.chargeDynamics(dt, downHeld)
		return
	case Ducking:
		if !downHeld {
			a.State = Walking
		} else if a.Input.Pressed(input.Fire1) && p.Chrg != 0 {
			a.State = Charging
			a.ChargeIntensity = 0
		}
		a.applyFriction(dt)
		a.tryJump(upHeld, downHeld)
		return
	case LookingUp:
		if !upHeld {
			a.State = Walking
		}
		a.applyFriction(dt)
		a.tryJump(upHeld, downHeld)
		return
	}

	if downHeld && absf(a.Gsp) <= p.WalkThreshold {
		a.State = Ducking
		a.applyFriction(dt)
		return
	}
	if upHeld && absf(a.Gsp) <= p.WalkThreshold {
		a.State = LookingUp
		a.applyFriction(dt)
		return
	}

	opposing := (rightHeld && a.Gsp < 0) || (leftHeld && a.Gsp > 0)
	if opposing && absf(a.Gsp) >= p.BrakingThreshold && a.GetMovmode() == Floor {
		a.State = Braking
	}

	switch {
	case rightHeld && !leftHeld:
		if a.Gsp < 0 {
			a.Gsp += p.Dec * dt
			if a.Gsp > 0 {
				a.Gsp = 0
			}
		} else {
			a.Gsp += p.Acc * dt
		}
		if a.Gsp > p.TopSpeed {
			a.Gsp = p.TopSpeed
		}
		a.FacingRight = true
	case leftHeld && !rightHeld:
		if a.Gsp > 0 {
			a.Gsp -= p.Dec * dt
			if a.Gsp < 0 {
				a.Gsp = 0
			}
		} else {
			a.Gsp -= p.Acc * dt
		}
		if a.Gsp < -p.TopSpeed {
			a.Gsp = -p.TopSpeed
		}
		a.FacingRight = false
	default:
		a.applyFriction(dt)
		if a.State == Braking {
			a.State = Walking
		}
	}

	a.applySlopeForce(dt)

	if absf(a.Gsp) >= p.RollThreshold && downHeld {
		a.State = Rolling
	}

	a.tryJump(upHeld, downHeld)
}

func (a *Actor) applyFriction(dt float32) {
	p := &a.Params
	if a.Gsp > 0 {
		a.Gsp -= p.Frc * dt
		if a.Gsp < 0 {
			a.Gsp = 0
		}
	} else if a.Gsp < 0 {
		a.Gsp += p.Frc * dt
		if a.Gsp > 0 {
			a.Gsp = 0
		}
	}
}

// applySlopeForce pulls gsp along the slope's tangent component of
// gravity, the standard "rolling down a hill" term.
func (a *Actor) applySlopeForce(dt float32) {
	a.Gsp -= a.Params.Slp * Sin(a.Angle) * dt
}

func (a *Actor) rollDynamics(dt float32, leftHeld, rightHeld, downHeld bool) {
	p := &a.Params
	a.applyRollFriction(dt)

	slope := p.RollDownhillSlp
	if signf(a.Gsp) == signf(Sin(a.Angle)) {
		slope = p.RollUphillSlp
	}
	a.Gsp -= slope * Sin(a.Angle) * dt

	if leftHeld && a.Gsp > 0 {
		a.Gsp -= p.RollDec * dt
		if a.Gsp < 0 {
			a.Gsp = 0
		}
	} else if rightHeld && a.Gsp < 0 {
		a.Gsp += p.RollDec * dt
		if a.Gsp > 0 {
			a.Gsp = 0
		}
	}

	if absf(a.Gsp) < p.UnrollThreshold {
		if a.Gsp > 0 {
			a.State = Running
			if a.Gsp < p.TopSpeed {
				a.State = Walking
			}
		} else if a.Gsp == 0 {
			a.State = Stopped
		} else {
			a.State = Walking
		}
	}
}

func (a *Actor) applyRollFriction(dt float32) {
	p := &a.Params
	if a.Gsp > 0 {
		a.Gsp -= p.RollFrc * dt
		if a.Gsp < 0 {
			a.Gsp = 0
		}
	} else if a.Gsp < 0 {
		a.Gsp += p.RollFrc * dt
		if a.Gsp > 0 {
			a.Gsp = 0
		}
	}
}

func (a *Actor) chargeDynamics(dt float32, downHeld bool) {
	p := &a.Params
	if downHeld {
		a.ChargeIntensity += dt
		if a.ChargeIntensity > 1 {
			a.ChargeIntensity = 1
		}
		return
	}
	dir := float32(1)
	if !a.FacingRight {
		dir = -1
	}
	a.Gsp = dir * p.Chrg * (0.67 + 0.33*a.ChargeIntensity)
	a.JumpLockTimer = 3.0 / 32.0
	a.ChargeIntensity = 0
	a.State = Rolling
}

// tryJump handles the "any grounded state -> Jumping" transition,
// excluding Ducking/LookingUp (callers for those states don't call this
// with eligibility true) and suppressed while touching a ceiling.
func (a *Actor) tryJump(upHeld, downHeld bool) {
	if a.TouchingCeiling {
		return
	}
	if !a.Input.Pressed(input.Fire1) {
		return
	}
	if a.State != Rolling && (upHeld || downHeld) {
		return
	}

	p := &a.Params
	xsp := a.Gsp*Cos(a.Angle) - p.Jmp*Sin(a.Angle)
	ysp := -a.Gsp*Sin(a.Angle) + p.Jmp*Cos(a.Angle)
	a.Xsp = xsp
	a.Ysp = ysp
	a.Angle = AngleFloor
	a.State = Jumping
	a.Midair = true
}
