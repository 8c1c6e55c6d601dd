package actor

import (
	"testing"

	"github.com/krumaska/opensurge/obstacle"
)

func TestCeilingResponseFlatBumpClampsAndOffsetsHead(t *testing.T) {
	a, _ := newTestActor(0, 0)
	a.Angle = AngleFloor
	a.Ysp = -100
	a.Xsp = 0
	a.blocked.negY = true
	a.probes.C = obstacle.ProbeResult{Hit: true, Solid: true, GroundPos: 50}
	a.probes.D = obstacle.ProbeResult{Hit: true, Solid: true, GroundPos: 50}

	a.ceilingResponse(nil)

	if a.Ysp != 0 {
		t.Fatalf("expected ysp clamped to 0 on a flat ceiling bump, got %v", a.Ysp)
	}
	if a.Angle != AngleFloor {
		t.Fatalf("expected angle flattened after a flat ceiling bump, got %v", a.Angle)
	}
	// headLen for the normal pose's C sensor is 24 (-Y1), so the head
	// should rest one pixel beyond the ceiling surface.
	want := float32(50 + 24 + 1)
	if a.Y != want {
		t.Fatalf("expected head snapped to %v, got %v", want, a.Y)
	}
}

func TestCeilingResponseReattachesOnSteepBand(t *testing.T) {
	a, _ := newTestActor(0, 0)
	a.Angle = AngleFloor
	a.Ysp = -200
	a.Xsp = 50
	a.blocked.negY = true
	// dx clamps to the slope limit regardless; dy = -11 puts the
	// reacquired angle exactly at the 0xA0 steep-band boundary.
	a.probes.C = obstacle.ProbeResult{Hit: true, Solid: true, GroundPos: 61}
	a.probes.D = obstacle.ProbeResult{Hit: true, Solid: true, GroundPos: 50}

	a.ceilingResponse(nil)

	if a.Angle != 0xA0 {
		t.Fatalf("expected reattachment to the steep band angle 0xA0, got %#x", a.Angle)
	}
	if a.Xsp != 0 || a.Ysp != 0 {
		t.Fatalf("expected velocities zeroed on ceiling reattachment, got xsp=%v ysp=%v", a.Xsp, a.Ysp)
	}
	if a.Gsp == 0 {
		t.Fatalf("expected gsp reconstructed from the pre-reattach velocity")
	}
	if a.State != Walking && a.State != Running {
		t.Fatalf("expected a grounded movement state after reattaching, got %v", a.State)
	}
}

func TestCeilingResponseSteepBandKeepsRollingState(t *testing.T) {
	a, _ := newTestActor(0, 0)
	a.State = Rolling
	a.Angle = AngleFloor
	a.Ysp = -200
	a.Xsp = 50
	a.blocked.negY = true
	a.probes.C = obstacle.ProbeResult{Hit: true, Solid: true, GroundPos: 61}
	a.probes.D = obstacle.ProbeResult{Hit: true, Solid: true, GroundPos: 50}

	a.ceilingResponse(nil)

	if a.State != Rolling {
		t.Fatalf("expected Rolling to survive a ceiling reattach, got %v", a.State)
	}
}
