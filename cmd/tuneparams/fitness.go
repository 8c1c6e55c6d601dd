package main

import (
	"math"

	"github.com/krumaska/opensurge/actor"
	"github.com/krumaska/opensurge/config"
	"github.com/krumaska/opensurge/input"
	"github.com/krumaska/opensurge/obstacle"
)

// flatGround builds a wide single-row floor strip, tall enough that the
// actor's jump apex never reaches the ceiling.
func flatGround(widthTiles int) *obstacle.Grid {
	const cellSize = 16
	g := obstacle.NewGrid(widthTiles, 40, cellSize)
	for gx := 0; gx < widthTiles; gx++ {
		g.SetCell(gx, 30, obstacle.CellSolid)
	}
	return g
}

// runProfile is the measured behavior of a parameter set on flat ground.
type runProfile struct {
	ticksToTopSpeed int32   // ticks of held Right before gsp reaches 99% of topspeed
	stopDistance    float32 // distance traveled after Right is released until gsp == 0
	jumpApexHeight  float32 // peak height above ground during a vertical jump
	jumpAirTime     int32   // ticks from jump press to landing
}

// FitnessEvaluator runs headless actor simulations and scores a parameter
// set against a target profile.
type FitnessEvaluator struct {
	params   *ParamVector
	dt       float32
	maxTicks int32
	target   runProfile
}

// NewFitnessEvaluator creates an evaluator with the classic-feel target
// profile computed from the parameter defaults.
func NewFitnessEvaluator(params *ParamVector, dt float32, maxTicks int32) *FitnessEvaluator {
	fe := &FitnessEvaluator{params: params, dt: dt, maxTicks: maxTicks}
	fe.target = fe.simulate(params.DefaultVector())
	return fe
}

// Evaluate computes fitness for a parameter vector (lower = better). It is
// the squared relative error between the run's measured profile and the
// target profile.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	p := fe.simulate(x)
	t := fe.target

	errOf := func(got, want float32) float64 {
		if want == 0 {
			return float64(got * got)
		}
		d := float64(got-want) / float64(want)
		return d * d
	}

	sum := errOf(float32(p.ticksToTopSpeed), float32(t.ticksToTopSpeed))
	sum += errOf(p.stopDistance, t.stopDistance)
	sum += errOf(p.jumpApexHeight, t.jumpApexHeight)
	sum += errOf(float32(p.jumpAirTime), float32(t.jumpAirTime))
	return sum
}

// simulate runs a scripted actor on flat ground: hold Right until
// topspeed, release and coast to a stop, then jump straight up and land.
func (fe *FitnessEvaluator) simulate(x []float64) runProfile {
	raw := fe.params.Clamp(x)

	var pc config.PhysicsConfig
	pc.Acc, pc.Dec, pc.Frc = raw[0], raw[1], raw[2]
	pc.TopSpeed, pc.Jmp, pc.Grv = raw[3], raw[4], raw[5]
	pc.CapSpeed, pc.TopYSpeed = 16, 16
	pc.RollThreshold, pc.UnrollThreshold = 1.0, 0.5
	pc.WalkThreshold, pc.RunThreshold = 1.0, 6.0
	pc.FallOffThresh, pc.BrakingThresh = 0.5, 4.0

	params := actor.NewParams(&pc)

	m := flatGround(4000)
	a := actor.New(64, 460)
	a.Params = params
	sim := input.NewSimulated()
	a.Input = sim

	// Let the actor settle onto the ground before scripting any input.
	for t := 0; t < 60; t++ {
		a.Update(fe.dt, m)
		sim.Advance()
		if !a.IsMidair() {
			break
		}
	}

	var profile runProfile

	sim.SimulateDown(input.Right)
	for t := int32(0); t < fe.maxTicks; t++ {
		a.Update(fe.dt, m)
		sim.Advance()
		if profile.ticksToTopSpeed == 0 && absf32(a.Gsp) >= 0.99*params.TopSpeed {
			profile.ticksToTopSpeed = t
			break
		}
	}
	sim.SimulateUp(input.Right)

	releaseX, _ := a.GetPosition()
	for t := int32(0); t < fe.maxTicks; t++ {
		a.Update(fe.dt, m)
		sim.Advance()
		if absf32(a.Gsp) < 0.01 {
			break
		}
	}
	endX, _ := a.GetPosition()
	profile.stopDistance = endX - releaseX

	_, jumpStartY := a.GetPosition()
	minY := jumpStartY
	sim.SimulateDown(input.Fire1)
	a.Update(fe.dt, m)
	sim.SimulateUp(input.Fire1)
	sim.Advance()
	for t := int32(0); t < fe.maxTicks; t++ {
		a.Update(fe.dt, m)
		sim.Advance()
		_, y := a.GetPosition()
		if y < minY {
			minY = y
		}
		if !a.IsMidair() && t > 2 {
			profile.jumpAirTime = t
			break
		}
	}
	profile.jumpApexHeight = jumpStartY - minY

	return profile
}

func absf32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
