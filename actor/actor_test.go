package actor

import (
	"testing"

	"github.com/krumaska/opensurge/input"
	"github.com/krumaska/opensurge/obstacle"
)

func flatFloor() *obstacle.Grid {
	g := obstacle.NewGrid(64, 16, 16)
	for x := 0; x < 64; x++ {
		g.SetCell(x, 10, obstacle.CellSolid)
	}
	return g
}

func newTestActor(x, y float32) (*Actor, *input.Simulated) {
	a := New(x, y)
	dev := input.NewSimulated()
	a.Input = dev
	return a, dev
}

// settleOnGround forces a's Midair/sensor state to reflect standing on m,
// without running a full tick (which would also apply dynamics/input).
func settleOnGround(a *Actor, m obstacle.Map) {
	a.readSensors(m)
	a.groundSnap(m)
}

func runTicks(a *Actor, m obstacle.Map, n int) {
	for i := 0; i < n; i++ {
		a.Update(fixedDt, m)
	}
}

func TestWalkingAcceleratesToAndClampsAtTopSpeed(t *testing.T) {
	m := flatFloor()
	a, dev := newTestActor(32, 140)
	a.Midair = false
	settleOnGround(a, m)

	dev.SimulateDown(input.Right)
	runTicks(a, m, 200)

	if a.Gsp != a.Params.TopSpeed {
		t.Fatalf("expected gsp clamped at topspeed %v after sustained acceleration, got %v", a.Params.TopSpeed, a.Gsp)
	}
	if !a.FacingRight {
		t.Fatalf("expected FacingRight while holding right")
	}
}

func TestJumpVelocityDecompositionOnFlatGround(t *testing.T) {
	m := flatFloor()
	a, dev := newTestActor(32, 140)
	settleOnGround(a, m)
	a.Angle = AngleFloor

	dev.SimulateDown(input.Fire1)
	a.step(fixedDt, m)

	if a.Ysp != a.Params.Jmp {
		t.Fatalf("expected ysp == jmp (%v) on flat ground, got %v", a.Params.Jmp, a.Ysp)
	}
	if a.State != Jumping {
		t.Fatalf("expected state Jumping, got %v", a.State)
	}
}

func TestJumpSuppressedWhileTouchingCeiling(t *testing.T) {
	a, dev := newTestActor(32, 140)
	a.TouchingCeiling = true
	dev.SimulateDown(input.Fire1)
	a.tryJump(false, false)
	if a.State == Jumping {
		t.Fatalf("jump should be suppressed while touching ceiling")
	}
}

func TestRollEntryAboveThreshold(t *testing.T) {
	m := flatFloor()
	a, dev := newTestActor(32, 140)
	settleOnGround(a, m)
	a.Gsp = a.Params.RollThreshold + 10
	a.State = Walking
	dev.SimulateDown(input.Down)

	a.groundDynamics(fixedDt)

	if a.State != Rolling {
		t.Fatalf("expected Rolling once gsp exceeds rollthreshold while holding down, got %v", a.State)
	}
}

func TestAirDragIdentityAtOne(t *testing.T) {
	p := DefaultParams()
	p.SetAirDrag(1)
	c0, c1 := p.AirDragCoefficient()
	if c0 != 0 || c1 != 1 {
		t.Fatalf("airdrag=1 should be the identity transform, got c0=%v c1=%v", c0, c1)
	}
}

func TestAirDragFullStopAtZero(t *testing.T) {
	p := DefaultParams()
	p.SetAirDrag(0)
	c0, c1 := p.AirDragCoefficient()
	if c0 != 0 || c1 != 0 {
		t.Fatalf("airdrag=0 should zero xsp next tick, got c0=%v c1=%v", c0, c1)
	}
}

func TestAngleMovmodeBoundariesResolveToOneBand(t *testing.T) {
	cases := []struct {
		a    Angle
		want Movmode
	}{
		{0x20, Floor},
		{0x60, LeftWall},
		{0xA0, Ceiling},
		{0xE0, RightWall},
	}
	for _, c := range cases {
		if got := c.a.Movmode(); got != c.want {
			t.Errorf("angle %#x: got movmode %v, want %v", byte(c.a), got, c.want)
		}
	}
}

func TestAngleDegreesFloorAndCeiling(t *testing.T) {
	if AngleFloor.Degrees() != 0 {
		t.Errorf("AngleFloor should be 0 degrees, got %v", AngleFloor.Degrees())
	}
	if d := AngleCeiling.Degrees(); d != 180 {
		t.Errorf("AngleCeiling should be 180 degrees, got %v", d)
	}
}

func TestShortHopApexLowerThanFullJump(t *testing.T) {
	m := flatFloor()

	apex := func(releaseEarly bool) float32 {
		a, dev := newTestActor(32, 140)
		settleOnGround(a, m)
		dev.SimulateDown(input.Fire1)
		a.step(fixedDt, m)
		if releaseEarly {
			dev.SimulateUp(input.Fire1)
		}
		minY := a.Y
		for i := 0; i < 60; i++ {
			a.Update(fixedDt, m)
			if a.Y < minY {
				minY = a.Y
			}
		}
		return minY
	}

	fullApex := apex(false)
	shortApex := apex(true)
	if shortApex >= fullApex {
		t.Fatalf("short hop should reach a lower apex (higher Y) than a full jump: short=%v full=%v", shortApex, fullApex)
	}
}
