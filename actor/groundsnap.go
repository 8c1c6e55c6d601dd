package actor

import (
	"github.com/krumaska/opensurge/input"
	"github.com/krumaska/opensurge/obstacle"
	"github.com/krumaska/opensurge/sensor"
)

// probeDirection maps a movmode onto the obstacle-map direction its
// foot sensors search along, matching sensor.Direction's own mapping.
func probeDirection(mode Movmode) obstacle.Direction {
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

// groundProbeDepth is how far past the foot sensors' resting depth the
// two-point angle probe is willing to walk looking for ground (§4.3).
const groundProbeDepth = 3 * footSensorLength

// roundUpOdd rounds v up to the nearest odd integer, per §4.3's "half
// the sensor width, rounded up to odd" rule for the probe offset.
func roundUpOdd(v float32) float32 {
	n := int(v + 0.999999)
	if n%2 == 0 {
		n++
	}
	return float32(n)
}

// hoffDefault is the default lateral probe offset: half the current
// pose's A/B sensor spacing, rounded up to odd.
func (a *Actor) hoffDefault() float32 {
	p := a.currentPose()
	sA := a.bank.Get(p, sensor.A)
	sB := a.bank.Get(p, sensor.B)
	return roundUpOdd((sB.X1 - sA.X1) / 2)
}

// acceptGroundPoint implements §4.3's obstacle-acceptance rule: a solid
// hit always counts, a cloud only counts when axisCoord (the probe's
// un-advanced resting position) is still within CloudOffset of its edge.
func acceptGroundPoint(r obstacle.ProbeResult, axisCoord float32) bool {
	if !r.Hit {
		return false
	}
	if r.Solid {
		return true
	}
	return axisCoord < r.GroundPos+CloudOffset
}

// groundProbePoint walks downward in local-down from a virtual foot
// sensor offset xOffset from center, by up to groundProbeDepth, looking
// for ground to reacquire angle against.
func (a *Actor) groundProbePoint(xOffset float32, mode Movmode, m obstacle.Map) (obstacle.ProbeResult, float32) {
	p := a.currentPose()
	s := a.bank.Get(p, sensor.A)
	s.X1, s.X2 = xOffset, xOffset

	tx, ty := s.Tail(a.X, a.Y, mode)
	dir := probeDirection(mode)
	r := m.Probe(tx, ty, dir, groundProbeDepth, a.Layer)

	axisCoord := ty
	if !dir.Vertical() {
		axisCoord = tx
	}
	return r, axisCoord
}

// reacquireGroundAngle implements §4.3's two-point angle probe: two
// points hoff either side of center look for ground; their displacement
// maps through the slope table to a candidate angle, which is rejected
// outright on a large jump across differing obstacles (discontinuity
// suppression) and retried at a smaller hoff when it looks unstable and
// neither M nor N sensor is blocked, bottoming out at hoff=3 (or 1 right
// off a midair transition).
func (a *Actor) reacquireGroundAngle(m obstacle.Map) (Angle, bool) {
	mode := a.GetMovmode()
	hoff := a.hoffDefault()
	minHoff := float32(3)
	if a.WasMidair {
		minHoff = 1
	}

	for {
		ra, aCoord := a.groundProbePoint(-hoff, mode, m)
		rb, bCoord := a.groundProbePoint(hoff, mode, m)

		okA := acceptGroundPoint(ra, aCoord)
		okB := acceptGroundPoint(rb, bCoord)
		if !okA && !okB {
			return a.Angle, false
		}

		dx := int(2 * hoff)
		dy := int(rb.GroundPos - ra.GroundPos)
		candidate := SlopeAngle(dx, dy)
		jump := deltaAngle(candidate, a.Angle)

		differentObstacles := okA && okB && ra.Solid != rb.Solid
		if differentObstacles && jump > 0x25 {
			return a.Angle, false
		}

		unstable := absf(float32(dy)) > footSensorLength || jump > 0x14
		mnFree := !a.probes.M.Hit && !a.probes.N.Hit
		if unstable && mnFree && hoff > minHoff {
			hoff -= 2
			if hoff < minHoff {
				hoff = minHoff
			}
			continue
		}

		return candidate, true
	}
}

// groundAngleTracking re-derives Angle from the two-point ground probe
// on every grounded tick, per §4.3: not just the landing instant, but
// every tick after, is what keeps the actor's orientation following a
// slope as it walks across it.
func (a *Actor) groundAngleTracking(m obstacle.Map) {
	if a.Midair {
		return
	}
	if angle, ok := a.reacquireGroundAngle(m); ok {
		a.Angle = angle
	}
}

// groundSnap is stage 10 (§4.11): pick whichever of A/B is the better
// ground candidate for the current movmode and snap the actor's anchor
// onto it, offset by the sensor's own length so the sprite's feet (not
// its center) touch the surface.
func (a *Actor) groundSnap(m obstacle.Map) {
	if a.Midair {
		return
	}
	a.groundAngleTracking(m)
	best, ok := bestGroundProbe(a.probes.A, a.probes.B, a.GetMovmode())
	if !ok {
		return
	}
	switch a.GetMovmode() {
	case Floor:
		a.Y = best.GroundPos - (footSensorLength - 1)
	case Ceiling:
		a.Y = best.GroundPos + (footSensorLength - 1)
	case LeftWall:
		a.X = best.GroundPos + (footSensorLength - 1)
	case RightWall:
		a.X = best.GroundPos - (footSensorLength - 1)
	}
}

// footSensorLength is the normal-pose A/B sensor's local length (y2-y1),
// matching the bank geometry in sensorbank.go.
const footSensorLength = 20

// bestGroundProbe picks the A/B hit nearer the actor: the smaller
// GroundPos in Floor and RightWall, the larger in LeftWall and Ceiling.
func bestGroundProbe(a, b obstacle.ProbeResult, mode Movmode) (obstacle.ProbeResult, bool) {
	switch {
	case a.Hit && b.Hit:
		preferLarger := mode == LeftWall || mode == Ceiling
		if (a.GroundPos < b.GroundPos) != preferLarger {
			return a, true
		}
		return b, true
	case a.Hit:
		return a, true
	case b.Hit:
		return b, true
	default:
		return obstacle.ProbeResult{}, false
	}
}

// inAngleBand reports whether angle falls within [lo, hi], wrapping
// around the 0xFF/0x00 boundary when lo > hi.
func inAngleBand(angle Angle, lo, hi uint8) bool {
	v := uint8(angle)
	if lo <= hi {
		return v >= lo && v <= hi
	}
	return v >= lo || v <= hi
}

// gspFromAngleBand is §4.11's angle-band table: the near-level, shallow,
// and steep bands each reconstruct gsp from xsp/ysp differently, and
// everything outside them (a genuine wall/ceiling landing) falls back
// to the plain ysp/angle-sign reconstruction.
func gspFromAngleBand(angle Angle, xsp, ysp float32) float32 {
	switch {
	case inAngleBand(angle, 0xF0, 0x0F):
		return xsp
	case inAngleBand(angle, 0xE0, 0xEF) || inAngleBand(angle, 0x10, 0x1F):
		if absf(xsp) > ysp {
			return xsp
		}
		return 0.5 * ysp * -signf(Sin(angle))
	case inAngleBand(angle, 0xC0, 0xDF) || inAngleBand(angle, 0x20, 0x3F):
		if absf(xsp) > ysp {
			return xsp
		}
		return ysp * -signf(Sin(angle))
	default:
		if Sin(angle) > 0 {
			return -ysp
		}
		return ysp
	}
}

// groundReacquisition is stage 11 (§4.11): when the actor transitions
// from midair to grounded this tick, gsp is reconstructed from xsp/ysp
// through the angle-band table so motion direction is preserved across
// the landing.
func (a *Actor) groundReacquisition() {
	if a.Midair {
		return
	}
	if !a.WasMidair {
		return
	}

	a.Gsp = gspFromAngleBand(a.Angle, a.Xsp, a.Ysp)

	if a.State == Rolling {
		if a.MidairTimer >= 0.2 && a.released(input.Down) {
			if absf(a.Gsp) >= a.Params.RunThreshold {
				a.State = Running
			} else {
				a.State = Walking
			}
		}
	} else if a.State == Jumping || a.State == Springing {
		if absf(a.Gsp) >= a.Params.RunThreshold {
			a.State = Running
		} else if absf(a.Gsp) > 0.0001 {
			a.State = Walking
		} else {
			a.State = Stopped
		}
	}
	a.MidairTimer = 0
}

// fallOffTest is stage 12 (§4.12): detect the actor sliding off a steep
// non-floor surface too slowly to stay attached, detach it from the
// surface, and start the horizontal-lock grace timer.
func (a *Actor) fallOffTest() {
	if a.Midair {
		return
	}
	if a.GetMovmode() == Floor || a.HlockTimer != 0 || absf(a.Gsp) >= a.Params.FallOffThreshold {
		return
	}

	a.HlockTimer = 0.5
	if a.Angle >= 0x40 && a.Angle <= 0xC0 {
		a.Gsp = 0
		a.Angle = AngleFloor
		a.Midair = true
	}
}
