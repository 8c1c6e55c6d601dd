package actor

import (
	"math"

	"github.com/krumaska/opensurge/config"
)

// Params holds the actor's tunable movement parameters. Values are
// expressed in pixels/second and pixels/second^2 regardless of the
// simulated dt, matching the units a 60 FPS Sonic-genesis engine uses.
type Params struct {
	Acc, Dec, Frc                     float32
	CapSpeed, TopSpeed, TopYSpeed     float32
	Air                               float32
	AirDrag                           float32 // ratio per 1/60s, in [0,1]
	Jmp, JmpRel, DieJmp, HitJmp       float32
	Grv, Slp, Chrg                    float32
	RollFrc, RollDec                  float32
	RollUphillSlp, RollDownhillSlp    float32
	RollThreshold, UnrollThreshold    float32
	WalkThreshold, RunThreshold       float32
	BrakingThreshold                  float32
	AirDragThreshold, AirDragXThresh  float32
	ChrgThreshold                     float32
	FallOffThreshold                  float32
	WaitTime                          float32
	WantJumpAttenuation               bool

	// airDragCoefficient is the precomputed {c0, c1} linear approximation
	// of pow(AirDrag, 60*dt); see deriveAirDragCoefficient and §4.6.
	airDragCoefficient [2]float32
}

// DefaultParams returns the canonical Sonic-genesis tuning, expressed at
// 60 FPS pixel units (acc=0.046875*60^2 etc. are pre-multiplied into
// per-second units here so Params is dt-independent).
func DefaultParams() Params {
	p := Params{
		Acc: 168.75, Dec: 1800, Frc: 168.75,
		CapSpeed: 960, TopSpeed: 360, TopYSpeed: 960,
		Air:              337.5,
		AirDrag:          0.96875,
		Jmp:              -390, JmpRel: -240, DieJmp: -420, HitJmp: -240,
		Grv: 787.5, Slp: 450, Chrg: 168.75,
		RollFrc: 84.375, RollDec: 450,
		RollUphillSlp: 281.25, RollDownhillSlp: 1125,
		RollThreshold: 61.875, UnrollThreshold: 30,
		WalkThreshold: 0, RunThreshold: 360, BrakingThreshold: 240,
		AirDragThreshold: 240, AirDragXThresh: 7.5,
		ChrgThreshold:     480,
		FallOffThreshold:  150,
		WaitTime:          3,
	}
	p.SetAirDrag(p.AirDrag)
	return p
}

// NewParams builds Params from a loaded config.PhysicsConfig, converting
// its 1/60s-unit fields into per-second units the same way DefaultParams
// does, so the YAML file can be authored in the classic engine's native
// constants.
func NewParams(c *config.PhysicsConfig) Params {
	const fps = 60.0
	p := Params{
		Acc: float32(c.Acc * fps * fps), Dec: float32(c.Dec * fps * fps), Frc: float32(c.Frc * fps * fps),
		CapSpeed: float32(c.CapSpeed * fps), TopSpeed: float32(c.TopSpeed * fps), TopYSpeed: float32(c.TopYSpeed * fps),
		Air:              float32(c.Air * fps * fps),
		AirDrag:          float32(c.AirDrag),
		Jmp:              float32(c.Jmp * fps * -1), JmpRel: float32(c.JmpRel * fps * -1),
		DieJmp: float32(c.DieJmp * fps * -1), HitJmp: float32(c.HitJmp * fps * -1),
		Grv: float32(c.Grv * fps * fps), Slp: float32(c.Slp * fps * fps), Chrg: float32(c.Chrg * fps * fps),
		RollFrc: float32(c.RollFrc * fps * fps), RollDec: float32(c.RollDec * fps * fps),
		RollUphillSlp: float32(c.RollUphillSlp * fps * fps), RollDownhillSlp: float32(c.RollDownhillSlp * fps * fps),
		RollThreshold: float32(c.RollThreshold * fps), UnrollThreshold: float32(c.UnrollThreshold * fps),
		WalkThreshold: float32(c.WalkThreshold * fps), RunThreshold: float32(c.RunThreshold * fps),
		BrakingThreshold: float32(c.BrakingThresh * fps),
		AirDragThreshold: float32(c.AirDragThresh * fps), AirDragXThresh: float32(c.AirDragXThresh * fps),
		ChrgThreshold:       float32(c.ChrgThreshold * fps),
		FallOffThreshold:    float32(c.FallOffThresh * fps),
		WaitTime:            float32(c.WaitTime) / fps,
		WantJumpAttenuation: c.WantJumpAtten,
	}
	p.SetAirDrag(p.AirDrag)
	return p
}

// SetAirDrag sets AirDrag, clamped to [0,1] per §7's clamp-and-fixup
// philosophy, and recomputes airDragCoefficient (§6.4's "set_airdrag
// also recomputes airdrag_coefficient" contract).
func (p *Params) SetAirDrag(v float32) {
	p.AirDrag = clampf(v, 0, 1)
	p.airDragCoefficient = deriveAirDragCoefficient(p.AirDrag)
}

// AirDragCoefficient returns the precomputed {c0, c1} pair.
func (p *Params) AirDragCoefficient() (c0, c1 float32) {
	return p.airDragCoefficient[0], p.airDragCoefficient[1]
}

// deriveAirDragCoefficient implements §4.6's linear approximation of
// pow(a, 60*dt): y = c0*dt + c1, with c0 = 60*a*ln(a), c1 = a*(1-ln(a))
// for 0 < a < 1; {0,1} for a=1 (no drag); {0,0} for a=0 (full stop).
func deriveAirDragCoefficient(a float32) [2]float32 {
	switch {
	case a >= 1:
		return [2]float32{0, 1}
	case a <= 0:
		return [2]float32{0, 0}
	default:
		lnA := float32(math.Log(float64(a)))
		c0 := 60 * a * lnA
		c1 := a * (1 - lnA)
		return [2]float32{c0, c1}
	}
}
