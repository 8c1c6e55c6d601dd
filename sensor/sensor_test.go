package sensor

import (
	"testing"

	"github.com/krumaska/opensurge/obstacle"
)

func TestRotateByMovmode(t *testing.T) {
	cases := []struct {
		name       string
		mode       Movmode
		x, y       float32
		wantX      float32
		wantY      float32
	}{
		{"floor identity", Floor, 3, 5, 3, 5},
		{"right wall", RightWall, 3, 5, -5, 3},
		{"ceiling", Ceiling, 3, 5, -3, -5},
		{"left wall", LeftWall, 3, 5, 5, -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotX, gotY := rotate(tc.x, tc.y, tc.mode)
			if gotX != tc.wantX || gotY != tc.wantY {
				t.Errorf("rotate(%v,%v,%v) = (%v,%v), want (%v,%v)", tc.x, tc.y, tc.mode, gotX, gotY, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestHeadTailOrdering(t *testing.T) {
	s := NewVertical(A, -9, 0, 20)
	hx, hy := s.Head(100, 100, Floor)
	tx, ty := s.Tail(100, 100, Floor)
	if hy >= ty {
		t.Errorf("expected head.y < tail.y, got head=(%v,%v) tail=(%v,%v)", hx, hy, tx, ty)
	}
}

func TestCheckDisabledSensorReturnsNoHit(t *testing.T) {
	s := NewVertical(A, 0, 0, 20)
	s.Enabled = false
	g := obstacle.NewGrid(10, 10, 10)
	g.SetCell(0, 5, obstacle.CellSolid)
	r := s.Check(0, 0, Floor, "", g)
	if r.Hit {
		t.Errorf("disabled sensor should never hit")
	}
}

func TestCheckFindsFloor(t *testing.T) {
	s := NewVertical(A, 0, 0, 20)
	g := obstacle.NewGrid(10, 10, 10)
	for x := 0; x < 10; x++ {
		g.SetCell(x, 5, obstacle.CellSolid)
	}
	r := s.Check(5, 0, Floor, "", g)
	if !r.Hit || !r.Solid {
		t.Fatalf("expected a solid hit, got %+v", r)
	}
}
