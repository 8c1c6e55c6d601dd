package actor

import (
	"testing"

	"github.com/krumaska/opensurge/obstacle"
)

// steppedFloor builds a floor with a single one-tile drop at column 32,
// so a horizontally straddling sensor pair reads two different ground
// heights and groundAngleTracking has something to detect.
func steppedFloor() *obstacle.Grid {
	g := obstacle.NewGrid(64, 16, 16)
	for x := 0; x < 32; x++ {
		g.SetCell(x, 10, obstacle.CellSolid)
	}
	for x := 32; x < 64; x++ {
		g.SetCell(x, 11, obstacle.CellSolid)
	}
	return g
}

func TestGroundAngleTrackingDetectsStep(t *testing.T) {
	m := steppedFloor()
	a, _ := newTestActor(510, 140)
	a.Midair = false
	settleOnGround(a, m)

	if a.Midair {
		t.Fatalf("expected actor to settle on the floor, got Midair")
	}
	if a.Angle == AngleFloor {
		t.Fatalf("expected a nonzero angle while straddling a floor step, got AngleFloor")
	}
}

func TestGroundAngleTrackingHoldsFlatAngle(t *testing.T) {
	m := flatFloor()
	a, _ := newTestActor(100, 140)
	a.Midair = false
	settleOnGround(a, m)

	if a.Angle != AngleFloor {
		t.Fatalf("expected AngleFloor on a flat surface, got %v", a.Angle)
	}
}

func TestGroundAngleTrackingSkippedMidair(t *testing.T) {
	m := flatFloor()
	a, _ := newTestActor(100, 0)
	a.Midair = true
	a.Angle = AngleFloor + 10
	a.groundAngleTracking(m)

	if a.Angle != AngleFloor+10 {
		t.Fatalf("expected angle untouched while midair, got %v", a.Angle)
	}
}

func TestFallOffTestDetachesOnSteepSlowSurface(t *testing.T) {
	m := flatFloor()
	a, _ := newTestActor(32, 140)
	a.Midair = false
	settleOnGround(a, m)

	a.Angle = 0x80 // ceiling-band angle, within the steep-surface check
	a.Gsp = 0

	a.fallOffTest()

	if !a.Midair {
		t.Fatalf("expected actor to detach from a steep surface at zero ground speed")
	}
	if a.Angle != AngleFloor {
		t.Fatalf("expected angle reset to AngleFloor after fall-off, got %v", a.Angle)
	}
}

func TestGspFromAngleBandNearLevelUsesXsp(t *testing.T) {
	got := gspFromAngleBand(AngleFloor, 42, 999)
	if got != 42 {
		t.Fatalf("expected the near-level band to reconstruct gsp from xsp, got %v", got)
	}
}

func TestGspFromAngleBandShallowPrefersDominantXsp(t *testing.T) {
	got := gspFromAngleBand(0x18, 500, 10)
	if got != 500 {
		t.Fatalf("expected the shallow band to keep xsp when it dominates ysp, got %v", got)
	}
}

func TestGspFromAngleBandShallowHalvesYsp(t *testing.T) {
	angle := Angle(0x18)
	ysp := float32(100)
	got := gspFromAngleBand(angle, 1, ysp)
	want := 0.5 * ysp * -signf(Sin(angle))
	if got != want {
		t.Fatalf("expected shallow-band gsp %v, got %v", want, got)
	}
}

func TestGspFromAngleBandSteepUsesFullYsp(t *testing.T) {
	angle := Angle(0x30)
	ysp := float32(100)
	got := gspFromAngleBand(angle, 1, ysp)
	want := ysp * -signf(Sin(angle))
	if got != want {
		t.Fatalf("expected steep-band gsp %v, got %v", want, got)
	}
}

func TestGspFromAngleBandFallsBackOnWallLanding(t *testing.T) {
	angle := Angle(0x80)
	ysp := float32(77)
	got := gspFromAngleBand(angle, 0, ysp)
	want := ysp
	if Sin(angle) > 0 {
		want = -ysp
	}
	if got != want {
		t.Fatalf("expected wall/ceiling fallback gsp %v, got %v", want, got)
	}
}

func TestGroundReacquisitionPreservesDirectionOnLanding(t *testing.T) {
	m := flatFloor()
	a, _ := newTestActor(32, 100)
	a.Midair = true
	a.WasMidair = true
	a.Xsp = 200
	a.Ysp = 50

	settleOnGround(a, m)
	a.groundReacquisition()

	if a.Gsp != a.Xsp {
		t.Fatalf("expected gsp to inherit xsp on floor landing, got gsp=%v xsp=%v", a.Gsp, a.Xsp)
	}
}
