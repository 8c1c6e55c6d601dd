package obstacle

import "testing"

func TestGridPointCollision(t *testing.T) {
	g := NewGrid(4, 4, 10)
	g.SetCell(1, 2, CellSolid)
	g.SetCell(2, 1, CellCloud)

	cases := []struct {
		name string
		x, y float32
		dir  Direction
		want bool
	}{
		{"empty tile", 5, 5, DirFloor, false},
		{"solid tile from floor", 15, 25, DirFloor, true},
		{"solid tile from ceiling", 15, 25, DirCeiling, true},
		{"cloud tile from floor collides", 25, 15, DirFloor, true},
		{"cloud tile from ceiling passes", 25, 15, DirCeiling, false},
		{"cloud tile from wall passes", 25, 15, DirLeftWall, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := g.PointCollision(tc.x, tc.y, tc.dir, "")
			if got != tc.want {
				t.Errorf("PointCollision(%v,%v,%v) = %v, want %v", tc.x, tc.y, tc.dir, got, tc.want)
			}
		})
	}
}

func TestGridGroundPosition(t *testing.T) {
	g := NewGrid(4, 4, 10)
	g.SetCell(1, 2, CellSolid)

	pos, found := g.GroundPosition(15, 0, DirFloor, 100, "")
	if !found {
		t.Fatalf("expected to find ground")
	}
	if pos != 20 {
		t.Errorf("GroundPosition = %v, want 20", pos)
	}

	_, found = g.GroundPosition(35, 0, DirFloor, 30, "")
	if found {
		t.Errorf("expected no ground within range")
	}
}

func TestGridLayerRestriction(t *testing.T) {
	g := NewGrid(2, 2, 10)
	g.SetCell(0, 0, CellSolid)
	g.RestrictLayers("walls")

	if g.PointCollision(5, 5, DirFloor, "default") {
		t.Errorf("expected non-restricted layer to pass through")
	}
	if !g.PointCollision(5, 5, DirFloor, "walls") {
		t.Errorf("expected restricted layer to collide")
	}
}

func TestGenerateProducesSolidFloor(t *testing.T) {
	opts := DefaultGenerateOptions(42)
	opts.WidthTiles = 20
	opts.HeightTiles = 20
	g := Generate(opts)

	for x := 0; x < opts.WidthTiles; x++ {
		if g.Cell(x, opts.HeightTiles-1) != CellSolid {
			t.Fatalf("expected bottom row to be solid at x=%d", x)
		}
	}
}
