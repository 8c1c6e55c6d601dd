package actor

import (
	"testing"

	"github.com/krumaska/opensurge/obstacle"
)

// floorWithNarrowPit is solid everywhere except tile column 2 (world x
// in [32, 48)), a crack one foot sensor can straddle while the other
// still finds the floor, and with no ground at all under the center.
func floorWithNarrowPit() *obstacle.Grid {
	g := obstacle.NewGrid(8, 16, 16)
	for x := 0; x < 8; x++ {
		if x == 2 {
			continue
		}
		g.SetCell(x, 10, obstacle.CellSolid)
	}
	return g
}

func TestCheckLedgeIgnoresCrackWithGroundUnderCenter(t *testing.T) {
	m := flatFloor()
	a, _ := newTestActor(32, 140)
	a.Angle = AngleFloor
	a.Midair = false
	a.State = Stopped
	a.Gsp = 0
	a.probes.A.Hit = true
	a.probes.B.Hit = false

	a.checkLedge(m)

	if a.State == Ledge {
		t.Fatalf("expected ledge suppressed when ground still exists under the center")
	}
}

func TestCheckLedgeTriggersOverTruePit(t *testing.T) {
	m := floorWithNarrowPit()
	a, _ := newTestActor(32, 140)
	a.Angle = AngleFloor
	a.Midair = false
	a.State = Stopped
	a.Gsp = 0
	a.probes.A.Hit = true
	a.probes.B.Hit = false

	a.checkLedge(m)

	if a.State != Ledge {
		t.Fatalf("expected Ledge over a true pit with nothing under the center")
	}
}

func TestCheckLedgeIgnoredOffFloorMode(t *testing.T) {
	m := floorWithNarrowPit()
	a, _ := newTestActor(32, 140)
	a.Angle = 0x40 // LeftWall movmode
	a.Midair = false
	a.State = Stopped
	a.Gsp = 0
	a.probes.A.Hit = true
	a.probes.B.Hit = false

	a.checkLedge(m)

	if a.State == Ledge {
		t.Fatalf("expected ledge check to require Floor movmode")
	}
}

func TestCheckLedgeIgnoredWhenMoving(t *testing.T) {
	m := floorWithNarrowPit()
	a, _ := newTestActor(32, 140)
	a.Angle = AngleFloor
	a.Midair = false
	a.State = Stopped
	a.Gsp = 100
	a.probes.A.Hit = true
	a.probes.B.Hit = false

	a.checkLedge(m)

	if a.State == Ledge {
		t.Fatalf("expected ledge check to require near-zero gsp")
	}
}
