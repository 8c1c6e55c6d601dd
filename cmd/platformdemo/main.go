// Platform demo - interactive visualization of the actor on a
// procedurally generated terrain, with a live parameter tuning panel.
//
// Usage: go run ./cmd/platformdemo
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/krumaska/opensurge/actor"
	"github.com/krumaska/opensurge/camera"
	"github.com/krumaska/opensurge/config"
	"github.com/krumaska/opensurge/debugdraw"
	"github.com/krumaska/opensurge/input"
	"github.com/krumaska/opensurge/obstacle"
	"github.com/krumaska/opensurge/telemetry"
)

const (
	windowWidth  = 1100
	windowHeight = 720
	viewWidth    = 820
	panelWidth   = windowWidth - viewWidth - 20
)

func main() {
	config.MustInit("")
	cfg := config.Cfg()

	rl.InitWindow(windowWidth, windowHeight, "Platform Actor Demo")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	m := obstacle.Generate(obstacle.DefaultGenerateOptions(1))
	worldW := float32(m.WidthTiles()) * m.CellSize()
	worldH := float32(m.HeightTiles()) * m.CellSize()

	a := actor.New(64, 64)
	kb := input.NewKeyboard()
	a.Input = kb

	perf := telemetry.NewPerfCollector(120)
	collector := telemetry.NewCollector(1.0, cfg.Derived.FixedDT)
	var tick int32

	cam := camera.New(viewWidth, windowHeight, worldW, worldH)
	paused := false
	showSensors := true

	for !rl.WindowShouldClose() {
		kb.Poll()

		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}
		if rl.IsKeyPressed(rl.KeyS) {
			showSensors = !showSensors
		}
		if rl.IsKeyPressed(rl.KeyR) {
			a = actor.New(64, 64)
			a.Input = kb
		}

		if !paused {
			perf.StartTick()
			perf.StartPhase(telemetry.PhaseSensors)
			a.Update(rl.GetFrameTime(), m)
			perf.EndTick()

			tick++
			px, _ := a.GetPosition()
			gsp := a.Gsp
			if gsp < 0 {
				gsp = -gsp
			}
			collector.RecordTick(px, gsp, a.IsMidair(), a.GetState() == actor.Ledge)
			if collector.ShouldFlush(tick) {
				ws := collector.Flush(tick)
				ws.LogStats()
			}
		}

		ax, ay := a.GetPosition()
		cam.Follow(ax, ay)
		minX, minY, _, _ := cam.VisibleWorldBounds()
		dcam := debugdraw.Camera{OffsetX: minX, OffsetY: minY}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 18, G: 18, B: 24, A: 255})

		debugdraw.DrawGrid(m, dcam)
		debugdraw.DrawActor(a, dcam)
		if showSensors {
			debugdraw.DrawSensors(a, dcam)
		}

		rl.DrawRectangleLines(0, 0, viewWidth, windowHeight, rl.DarkGray)
		drawPanel(a, perf)

		rl.EndDrawing()
	}
}

func drawPanel(a *actor.Actor, perf *telemetry.PerfCollector) {
	px := float32(viewWidth + 15)
	py := float32(15)

	rl.DrawText("Actor", int32(px), int32(py), 20, rl.RayWhite)
	py += 28

	x, y := a.GetPosition()
	rl.DrawText(fmt.Sprintf("pos: %.1f, %.1f", x, y), int32(px), int32(py), 14, rl.LightGray)
	py += 18
	rl.DrawText(fmt.Sprintf("state: %s", a.GetState()), int32(px), int32(py), 14, rl.LightGray)
	py += 18
	rl.DrawText(fmt.Sprintf("angle: %.0f deg", a.GetAngle()), int32(px), int32(py), 14, rl.LightGray)
	py += 18
	rl.DrawText(fmt.Sprintf("movmode: %v", a.GetMovmode()), int32(px), int32(py), 14, rl.LightGray)
	py += 28

	stats := perf.Stats()
	rl.DrawText(fmt.Sprintf("tick: %.2fms", float64(stats.AvgTickDuration.Microseconds())/1000), int32(px), int32(py), 14, rl.Gray)
	py += 30

	p := &a.Params
	py = slider(px, py, "acc", &p.Acc, 0, 1000)
	py = slider(px, py, "dec", &p.Dec, 0, 2000)
	py = slider(px, py, "frc", &p.Frc, 0, 1000)
	py = slider(px, py, "topspeed", &p.TopSpeed, 0, 1200)
	py = slider(px, py, "jmp", &p.Jmp, -1200, 0)
	py = slider(px, py, "grv", &p.Grv, 0, 1000)
	py += 10

	rl.DrawText("Arrows/Z to move, Space pause, R reset", int32(px), int32(py), 12, rl.Gray)
}

func slider(px, py float32, label string, v *float32, lo, hi float32) float32 {
	rl.DrawText(fmt.Sprintf("%s %.1f", label, *v), int32(px), int32(py), 14, rl.Gray)
	py += 16
	*v = gui.SliderBar(rl.Rectangle{X: px, Y: py, Width: panelWidth - 30, Height: 18}, "", "", *v, lo, hi)
	return py + 26
}
