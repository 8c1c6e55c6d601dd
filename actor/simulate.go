package actor

import (
	"github.com/krumaska/opensurge/input"
	"github.com/krumaska/opensurge/obstacle"
)

const fixedDt float32 = 1.0 / 60.0

// Update drives one outer frame (§5's fixed-timestep driver). At 60 FPS
// the simulation runs frame-exact and deterministic; under jank it
// degrades to the real dt rather than running in slow motion.
func (a *Actor) Update(dt float32, m obstacle.Map) {
	a.referenceTime += dt
	var simDt float32
	if a.referenceTime <= a.fixedTime+fixedDt {
		simDt = fixedDt
		a.fixedTime += fixedDt
	} else {
		simDt = dt
		a.fixedTime = a.referenceTime
	}
	a.step(simDt, m)
}

// step runs the thirteen ordered stages of §5, in the fixed order the
// spec requires; it must never be reordered.
func (a *Actor) step(dt float32, m obstacle.Map) {
	a.readSensors(m)             // 1
	a.WasMidair = a.Midair       // 2 (cached before this tick's special-state handling changes it)
	a.applySpecialStates(dt)     // 3
	a.applyDynamics(dt)          // 4
	a.integrateVelocities(dt)    // 5
	a.subStepMotion(dt, m)       // 6
	a.wallResponse(m)            // 7
	a.ceilingResponse(m)         // 8
	a.stickyPhysics(m)           // 9
	a.groundSnap(m)              // 10
	a.groundReacquisition()      // 11
	a.fallOffTest()              // 12
	a.timersAndStateFixup(dt, m) // 13

	a.latchInput()
}

func (a *Actor) latchInput() {
	for _, b := range []input.Button{input.Left, input.Right, input.Up, input.Down, input.Fire1, input.Reserved} {
		a.prevDown[b] = a.Input.Down(b)
	}
}

// wasDown reports whether b was held on the previous tick, used to
// detect release edges (input.Device only exposes the press edge).
func (a *Actor) wasDown(b input.Button) bool { return a.prevDown[b] }

// released reports a this-tick up-edge: held last tick, not held now.
func (a *Actor) released(b input.Button) bool {
	return a.wasDown(b) && !a.Input.Down(b)
}
