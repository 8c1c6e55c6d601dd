package main

import (
	"github.com/krumaska/opensurge/config"
)

// ParamSpec defines a single optimizable physics constant.
type ParamSpec struct {
	Name    string
	Min     float64
	Max     float64
	Default float64
}

// ParamVector holds the set of physics constants under optimization.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of ground/air constants fit
// against a target run profile.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "acc", Min: 0.01, Max: 0.15, Default: 0.046875},
			{Name: "dec", Min: 0.1, Max: 1.2, Default: 0.5},
			{Name: "frc", Min: 0.01, Max: 0.15, Default: 0.046875},
			{Name: "topspeed", Min: 3.0, Max: 10.0, Default: 6.0},
			{Name: "jmp", Min: 4.0, Max: 9.0, Default: 6.5},
			{Name: "grv", Min: 0.1, Max: 0.4, Default: 0.21875},
		},
	}
}

func (pv *ParamVector) Dim() int { return len(pv.Specs) }

func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig writes the parameter values into a config's physics block.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)
	cfg.Physics.Acc = clamped[0]
	cfg.Physics.Dec = clamped[1]
	cfg.Physics.Frc = clamped[2]
	cfg.Physics.TopSpeed = clamped[3]
	cfg.Physics.Jmp = clamped[4]
	cfg.Physics.Grv = clamped[5]
}
