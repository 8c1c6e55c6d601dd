package actor

import "github.com/krumaska/opensurge/sensor"

// DebugSensor is one sensor's world-space segment and its most recent
// probe result, for external debug rendering only.
type DebugSensor struct {
	Label          sensor.Label
	X1, Y1, X2, Y2 float32
	Hit, Solid     bool
}

// DebugSensors returns the seven-sensor bank's current world-space
// geometry and last probe results, for a debug overlay. It reads no
// live state beyond what readSensors already computed this tick.
func (a *Actor) DebugSensors() []DebugSensor {
	mode := a.GetMovmode()
	p := a.currentPose()
	out := make([]DebugSensor, 0, 7)

	add := func(l sensor.Label, hit, solid bool) {
		s := a.bank.Get(p, l)
		x1, y1, x2, y2 := s.WorldPos(a.X, a.Y, mode)
		out = append(out, DebugSensor{Label: l, X1: x1, Y1: y1, X2: x2, Y2: y2, Hit: hit, Solid: solid})
	}

	add(sensor.A, a.probes.A.Hit, a.probes.A.Solid)
	add(sensor.B, a.probes.B.Hit, a.probes.B.Solid)
	add(sensor.C, a.probes.C.Hit, a.probes.C.Solid)
	add(sensor.D, a.probes.D.Hit, a.probes.D.Solid)
	add(sensor.M, a.probes.M.Hit, a.probes.M.Solid)
	add(sensor.N, a.probes.N.Hit, a.probes.N.Solid)
	add(sensor.U, a.probes.U.Hit, a.probes.U.Solid)

	return out
}
