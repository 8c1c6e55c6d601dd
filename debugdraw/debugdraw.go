// Package debugdraw renders the obstacle grid, the actor's bounding box,
// and its live sensor probes with raylib, for the tuning demo binaries.
package debugdraw

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/krumaska/opensurge/actor"
	"github.com/krumaska/opensurge/obstacle"
)

// Camera converts world coordinates into screen coordinates by subtracting
// a scroll offset; platformdemo fills the offset each frame from its
// actor-following camera.Camera.
type Camera struct {
	OffsetX, OffsetY float32
}

func (c Camera) toScreen(x, y float32) (int32, int32) {
	return int32(x - c.OffsetX), int32(y - c.OffsetY)
}

// DrawGrid renders the obstacle grid's solid and cloud cells.
func DrawGrid(g *obstacle.Grid, cam Camera) {
	cell := g.CellSize()
	for gy := 0; gy < g.HeightTiles(); gy++ {
		for gx := 0; gx < g.WidthTiles(); gx++ {
			c := g.Cell(gx, gy)
			if c == obstacle.CellEmpty {
				continue
			}
			wx, wy := float32(gx)*cell, float32(gy)*cell
			sx, sy := cam.toScreen(wx, wy)

			var col rl.Color
			if c == obstacle.CellSolid {
				col = rl.Color{R: 90, G: 90, B: 100, A: 255}
			} else {
				col = rl.Color{R: 120, G: 180, B: 120, A: 160}
			}
			rl.DrawRectangle(sx, sy, int32(cell), int32(cell), col)
			rl.DrawRectangleLines(sx, sy, int32(cell), int32(cell), rl.Color{R: 30, G: 30, B: 35, A: 255})
		}
	}
}

// DrawActor renders the actor's bounding box, facing direction, and
// current animation state label.
func DrawActor(a *actor.Actor, cam Camera) {
	w, h, cx, cy := a.BoundingBox()
	sx, sy := cam.toScreen(cx-w/2, cy-h/2)

	col := rl.Color{R: 230, G: 90, B: 60, A: 255}
	if a.IsMidair() {
		col = rl.Color{R: 230, G: 190, B: 60, A: 255}
	}
	rl.DrawRectangleLines(sx, sy, int32(w), int32(h), col)

	cxi, cyi := cam.toScreen(cx, cy)
	dir := float32(1)
	if !a.IsFacingRight() {
		dir = -1
	}
	rl.DrawLine(cxi, cyi, cxi+int32(12*dir), cyi, col)

	label := a.GetState().String()
	rl.DrawText(label, sx, sy-16, 12, rl.White)
}

// DrawSensors renders the actor's seven-sensor bank as colored line
// segments, so a tuner can see which probes are firing each tick.
func DrawSensors(a *actor.Actor, cam Camera) {
	for _, s := range a.DebugSensors() {
		x1, y1 := cam.toScreen(s.X1, s.Y1)
		x2, y2 := cam.toScreen(s.X2, s.Y2)
		col := rl.Color{R: 120, G: 120, B: 255, A: 180}
		if s.Hit {
			if s.Solid {
				col = rl.Color{R: 255, G: 60, B: 60, A: 255}
			} else {
				col = rl.Color{R: 255, G: 200, B: 60, A: 255}
			}
		}
		rl.DrawLine(x1, y1, x2, y2, col)
	}
}
