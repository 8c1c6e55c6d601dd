package actor

import (
	"github.com/krumaska/opensurge/obstacle"
	"github.com/krumaska/opensurge/sensor"
)

// CloudOffset is the tolerance (in pixels) a sensor tail may sit below a
// one-way platform's surface while still being considered "on top of
// it", per §4.2/§4.3.
const CloudOffset = 12

// probeSet holds the per-tick results of the seven labeled sensors,
// already passed through the efficiency gating and cloud filtering of
// §4.2.
type probeSet struct {
	A, B, C, D, M, N, U obstacle.ProbeResult
}

func (a *Actor) currentPose() Pose {
	return pose(a.State, a.Midair)
}

// readSensors implements §4.2: sensor-bank reads, efficiency gating,
// cloud filtering, and the midair/touching_ceiling/inside_wall flags.
func (a *Actor) readSensors(m obstacle.Map) {
	mode := a.GetMovmode()
	p := a.currentPose()

	sA := a.bank.Get(p, sensor.A)
	sB := a.bank.Get(p, sensor.B)
	sC := a.bank.Get(p, sensor.C)
	sD := a.bank.Get(p, sensor.D)
	sM := a.bank.Get(p, sensor.M)
	sN := a.bank.Get(p, sensor.N)
	sU := a.bank.Get(p, sensor.U)

	if a.Midair {
		sA.Enabled = a.Ysp >= 0
		sB.Enabled = a.Ysp >= 0
		sC.Enabled = a.Ysp < 0
		sD.Enabled = a.Ysp < 0
		sM.Enabled = a.Xsp < 0
		sN.Enabled = a.Xsp > 0
	} else {
		sA.Enabled = true
		sB.Enabled = true
		sC.Enabled = false
		sD.Enabled = false
		sM.Enabled = a.Gsp < 0
		sN.Enabled = a.Gsp > 0
	}

	var ps probeSet
	ps.A = sA.Check(a.X, a.Y, mode, a.Layer, m)
	ps.B = sB.Check(a.X, a.Y, mode, a.Layer, m)
	ps.C = sC.Check(a.X, a.Y, mode, a.Layer, m)
	ps.D = sD.Check(a.X, a.Y, mode, a.Layer, m)
	ps.M = sM.Check(a.X, a.Y, mode, a.Layer, m)
	ps.N = sN.Check(a.X, a.Y, mode, a.Layer, m)
	ps.U = sU.Check(a.X, a.Y, mode, a.Layer, m)

	// C/D/M/N ignore clouds entirely.
	ps.C = solidOnly(ps.C)
	ps.D = solidOnly(ps.D)
	ps.M = solidOnly(ps.M)
	ps.N = solidOnly(ps.N)

	// A/B cloud filtering.
	ignoreClouds := -a.Ysp > absf(a.Xsp)
	floorZero := mode == Floor && a.Angle == AngleFloor

	_, aTailY := sA.Tail(a.X, a.Y, mode)
	_, bTailY := sB.Tail(a.X, a.Y, mode)

	ps.A = filterCloud(ps.A, ignoreClouds, floorZero, aTailY)
	ps.B = filterCloud(ps.B, ignoreClouds, floorZero, bTailY)

	if ps.A.Hit && !ps.A.Solid && ps.B.Hit && !ps.B.Solid && mode == Floor {
		diff := ps.A.GroundPos - ps.B.GroundPos
		if absf(diff) > 8 {
			if ps.A.GroundPos < ps.B.GroundPos {
				ps.B = obstacle.ProbeResult{}
			} else {
				ps.A = obstacle.ProbeResult{}
			}
		}
	}

	a.probes = ps
	a.InsideWall = ps.U.Hit && ps.U.Solid
	a.Midair = !ps.A.Hit && !ps.B.Hit
	a.TouchingCeiling = ps.C.Hit || ps.D.Hit
	if !a.Midair {
		a.StickyLock = false
	}
}

func solidOnly(r obstacle.ProbeResult) obstacle.ProbeResult {
	if r.Hit && !r.Solid {
		return obstacle.ProbeResult{}
	}
	return r
}

func filterCloud(r obstacle.ProbeResult, ignoreClouds, floorZero bool, tailY float32) obstacle.ProbeResult {
	if !r.Hit || r.Solid {
		return r
	}
	if ignoreClouds {
		return obstacle.ProbeResult{}
	}
	if !floorZero {
		return obstacle.ProbeResult{}
	}
	if tailY >= r.GroundPos+CloudOffset {
		return obstacle.ProbeResult{}
	}
	return r
}
