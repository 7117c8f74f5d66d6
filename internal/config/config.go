package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/san-kum/mechlab/internal/fem"
	"github.com/san-kum/mechlab/internal/gravity"
	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"
)

// Unit conversions between input fields and SI.
const (
	EarthMass  = 5.97219e24 // kg
	Day        = 86400.0    // s
	Kilometer  = 1000.0     // m
	GUnit      = 1e-11      // G is entered in units of 1e-11 m³/(kg·s²)
	GigaPascal = 1e9        // Pa
)

const (
	DefaultTimestepDays = 1.0
	DefaultG            = 6.67430
	DefaultFrames       = 20
	DefaultScaleKm      = 400000.0
)

var ErrInvalid = errors.New("config: invalid input")

type Config struct {
	Orbit OrbitConfig `yaml:"orbit"`
	Beam  BeamConfig  `yaml:"beam"`
}

// OrbitConfig holds orbit inputs in the units a user types them in:
// km, m/s, Earth masses, days and 1e-11.
type OrbitConfig struct {
	TimestepDays float64      `yaml:"timestep_days"`
	G            float64      `yaml:"g"`
	Frames       int          `yaml:"frames"`
	ScaleKm      float64      `yaml:"scale_km"`
	Bodies       []BodyConfig `yaml:"bodies"`
	Satellites   []BodyConfig `yaml:"satellites"`
}

type BodyConfig struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	VX   float64 `yaml:"vx"`
	VY   float64 `yaml:"vy"`
	Mass float64 `yaml:"mass"`
}

type BeamConfig struct {
	Elements []ElementConfig `yaml:"elements"`
}

// ElementConfig takes the modulus in GPa.
type ElementConfig struct {
	Area       float64 `yaml:"area"`
	ModulusGPa float64 `yaml:"modulus_gpa"`
	Length     float64 `yaml:"length"`
	Force      float64 `yaml:"force"`
}

func DefaultConfig() *Config {
	return &Config{
		Orbit: OrbitConfig{
			TimestepDays: DefaultTimestepDays,
			G:            DefaultG,
			Frames:       DefaultFrames,
			ScaleKm:      DefaultScaleKm,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the run parameters to SI.
func (o OrbitConfig) Params() gravity.Params {
	return gravity.Params{G: o.G * GUnit, Dt: o.TimestepDays * Day}
}

// Scale returns the plot half-width in metres.
func (o OrbitConfig) Scale() float64 {
	return o.ScaleKm * Kilometer
}

func (b BodyConfig) body(mass float64) gravity.Body {
	return gravity.Body{
		Name: b.Name,
		Mass: mass,
		Pos:  r2.Vec{X: b.X * Kilometer, Y: b.Y * Kilometer},
		Vel:  r2.Vec{X: b.VX, Y: b.VY},
	}
}

// System builds a fresh gravity session from the configured bodies.
func (o OrbitConfig) System() (*gravity.System, error) {
	bodies := make([]gravity.Body, len(o.Bodies))
	for i, b := range o.Bodies {
		bodies[i] = b.body(b.Mass * EarthMass)
	}
	tracers := make([]gravity.Body, len(o.Satellites))
	for i, s := range o.Satellites {
		tracers[i] = s.body(0)
	}
	return gravity.NewSystem(bodies, tracers)
}

func (o OrbitConfig) Validate() error {
	if !finite(o.TimestepDays, o.G, o.ScaleKm) {
		return fmt.Errorf("%w: non-finite orbit parameter", ErrInvalid)
	}
	if o.TimestepDays < 0 {
		return fmt.Errorf("%w: timestep must not be negative", ErrInvalid)
	}
	if o.G < 0 {
		return fmt.Errorf("%w: G must not be negative", ErrInvalid)
	}
	if o.Frames < 0 {
		return fmt.Errorf("%w: frames must not be negative", ErrInvalid)
	}
	if o.ScaleKm <= 0 {
		return fmt.Errorf("%w: scale must be positive", ErrInvalid)
	}
	if len(o.Bodies)+len(o.Satellites) == 0 {
		return fmt.Errorf("%w: no bodies", ErrInvalid)
	}
	for i, b := range o.Bodies {
		if !finite(b.X, b.Y, b.VX, b.VY, b.Mass) || b.Mass < 0 {
			return fmt.Errorf("%w: body %d", ErrInvalid, i+1)
		}
	}
	for i, s := range o.Satellites {
		if !finite(s.X, s.Y, s.VX, s.VY) {
			return fmt.Errorf("%w: satellite %d", ErrInvalid, i+1)
		}
	}
	return nil
}

// Chain converts the elements to SI.
func (b BeamConfig) Chain() []fem.Element {
	elements := make([]fem.Element, len(b.Elements))
	for i, e := range b.Elements {
		elements[i] = fem.Element{
			Area:    e.Area,
			Modulus: e.ModulusGPa * GigaPascal,
			Length:  e.Length,
			Force:   e.Force,
		}
	}
	return elements
}

func (b BeamConfig) Validate() error {
	if len(b.Elements) == 0 {
		return fmt.Errorf("%w: no elements", ErrInvalid)
	}
	for i, e := range b.Elements {
		if !finite(e.Area, e.ModulusGPa, e.Length, e.Force) {
			return fmt.Errorf("%w: element %d has a non-finite value", ErrInvalid, i+1)
		}
	}
	return nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
