// Package config provides configuration loading and access for the
// platform actor demo and tuning tools.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration for the demo binaries. The actor
// simulation core never reads this directly; callers build an
// actor.Params value from Config.Physics via actor.NewParams.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Simulation SimulationConfig `yaml:"simulation"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Actor      ActorConfig      `yaml:"actor"`

	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings for the demo window.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SimulationConfig holds fixed-timestep driver settings.
type SimulationConfig struct {
	FixedHz         float64 `yaml:"fixed_hz"`
	MaxCatchupTicks int     `yaml:"max_catchup_ticks"`
}

// PhysicsConfig holds the actor's tunable movement parameters, named
// after the constants they configure.
type PhysicsConfig struct {
	Acc             float64 `yaml:"acc"`
	Dec             float64 `yaml:"dec"`
	Frc             float64 `yaml:"frc"`
	TopSpeed        float64 `yaml:"topspeed"`
	TopYSpeed       float64 `yaml:"topyspeed"`
	CapSpeed        float64 `yaml:"capspeed"`
	Air             float64 `yaml:"air"`
	AirDrag         float64 `yaml:"airdrag"`
	AirDragThresh   float64 `yaml:"airdrag_threshold"`
	AirDragXThresh  float64 `yaml:"airdrag_xthreshold"`
	Jmp             float64 `yaml:"jmp"`
	JmpRel          float64 `yaml:"jmprel"`
	DieJmp          float64 `yaml:"diejmp"`
	HitJmp          float64 `yaml:"hitjmp"`
	Grv             float64 `yaml:"grv"`
	Slp             float64 `yaml:"slp"`
	Chrg            float64 `yaml:"chrg"`
	RollFrc         float64 `yaml:"rollfrc"`
	RollDec         float64 `yaml:"rolldec"`
	RollUphillSlp   float64 `yaml:"rolluphillslp"`
	RollDownhillSlp float64 `yaml:"rolldownhillslp"`
	RollThreshold   float64 `yaml:"rollthreshold"`
	UnrollThreshold float64 `yaml:"unrollthreshold"`
	WalkThreshold   float64 `yaml:"walkthreshold"`
	RunThreshold    float64 `yaml:"runthreshold"`
	FallOffThresh   float64 `yaml:"falloffthreshold"`
	BrakingThresh   float64 `yaml:"brakingthreshold"`
	ChrgThreshold   float64 `yaml:"chrgthreshold"`
	WaitTime        int     `yaml:"waittime"`
	MidairTimer     int     `yaml:"midairtimer"`
	BreatheTimer    int     `yaml:"breathetimer"`
	WantJumpAtten   bool    `yaml:"want_jump_attenuation"`
}

// ActorConfig holds the actor's bounding geometry and identity.
type ActorConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Layer  string  `yaml:"layer"`
}

// DerivedConfig holds values computed after loading.
type DerivedConfig struct {
	FixedDT float32 // 1 / Simulation.FixedHz
}

var global *Config

// Init loads configuration from path (embedded defaults if path is empty)
// and stores it as the package global. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging over embedded
// defaults. If path is empty, only the embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()
	return cfg, nil
}

func (c *Config) computeDerived() {
	if c.Simulation.FixedHz <= 0 {
		c.Simulation.FixedHz = 60.0
	}
	c.Derived.FixedDT = float32(1.0 / c.Simulation.FixedHz)
}

// WriteYAML writes the configuration to path, so a run's output directory
// carries the exact parameters that produced it.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config yaml: %w", err)
	}
	return nil
}
