package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Orbit.TimestepDays != 1 {
		t.Errorf("expected 1 day timestep, got %f", cfg.Orbit.TimestepDays)
	}
	if cfg.Orbit.Frames != 20 {
		t.Errorf("expected 20 frames, got %d", cfg.Orbit.Frames)
	}

	p := cfg.Orbit.Params()
	if p.Dt != 86400 {
		t.Errorf("expected dt 86400s, got %f", p.Dt)
	}
	if math.Abs(p.G-6.6743e-11) > 1e-20 {
		t.Errorf("expected G 6.6743e-11, got %g", p.G)
	}
	if cfg.Orbit.Scale() != 4e8 {
		t.Errorf("expected scale 4e8 m, got %g", cfg.Orbit.Scale())
	}
}

func TestOrbitSystemUnits(t *testing.T) {
	o := GetOrbitPreset("moon-probe")
	sys, err := o.System()
	if err != nil {
		t.Fatalf("system: %v", err)
	}

	moon := sys.Bodies[1]
	if moon.Pos.X != 384400000 {
		t.Errorf("expected moon x in metres, got %f", moon.Pos.X)
	}
	if math.Abs(moon.Mass-0.0123*EarthMass) > 1e10 {
		t.Errorf("expected moon mass in kg, got %g", moon.Mass)
	}
	if moon.Vel.Y != 1000 {
		t.Errorf("expected velocity left in m/s, got %f", moon.Vel.Y)
	}
	if len(sys.Tracers) != 1 || sys.Tracers[0].Mass != 0 {
		t.Errorf("expected one massless satellite, got %+v", sys.Tracers)
	}
}

func TestBeamElementsUnits(t *testing.T) {
	b := GetBeamPreset("single")
	elements := b.Chain()
	if len(elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(elements))
	}
	if elements[0].Modulus != 1e9 {
		t.Errorf("expected modulus 1e9 Pa, got %g", elements[0].Modulus)
	}
	if elements[0].Stiffness() != 1e9 {
		t.Errorf("expected k 1e9, got %g", elements[0].Stiffness())
	}
}

func TestPresets(t *testing.T) {
	for _, name := range ListOrbitPresets() {
		if err := GetOrbitPreset(name).Validate(); err != nil {
			t.Errorf("orbit preset %s invalid: %v", name, err)
		}
	}
	for _, name := range ListBeamPresets() {
		if err := GetBeamPreset(name).Validate(); err != nil {
			t.Errorf("beam preset %s invalid: %v", name, err)
		}
	}

	if GetOrbitPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent orbit preset")
	}
	if GetBeamPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent beam preset")
	}

	names := ListBeamPresets()
	if len(names) != 3 || names[0] != "series" {
		t.Errorf("expected sorted beam presets, got %v", names)
	}
}

func TestGetPresetReturnsCopy(t *testing.T) {
	a := GetOrbitPreset("earth-moon")
	a.Bodies[0].Mass = 99

	b := GetOrbitPreset("earth-moon")
	if b.Bodies[0].Mass != 1 {
		t.Error("editing a preset copy changed the preset")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"negative timestep", func() error { o := *GetOrbitPreset("binary"); o.TimestepDays = -1; return o.Validate() }()},
		{"zero scale", func() error { o := *GetOrbitPreset("binary"); o.ScaleKm = 0; return o.Validate() }()},
		{"no bodies", OrbitConfig{TimestepDays: 1, ScaleKm: 1}.Validate()},
		{"NaN mass", func() error {
			o := *GetOrbitPreset("binary")
			o.Bodies[0].Mass = math.NaN()
			return o.Validate()
		}()},
		{"no elements", BeamConfig{}.Validate()},
		{"NaN force", BeamConfig{Elements: []ElementConfig{{Area: 1, ModulusGPa: 1, Length: 1, Force: math.Inf(1)}}}.Validate()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", tt.err)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.yaml")

	cfg := DefaultConfig()
	cfg.Orbit = *GetOrbitPreset("moon-probe")
	cfg.Beam = *GetBeamPreset("stepped")

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(loaded.Orbit.Satellites) != 1 || loaded.Orbit.Satellites[0].Name != "probe" {
		t.Errorf("satellites not loaded: %+v", loaded.Orbit.Satellites)
	}
	if len(loaded.Beam.Elements) != 3 || loaded.Beam.Elements[2].Force != 2500 {
		t.Errorf("elements not loaded: %+v", loaded.Beam.Elements)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beam.yaml")
	doc := "beam:\n  elements:\n    - {area: 1, modulus_gpa: 1, length: 1, force: 0}\n    - {area: 1, modulus_gpa: 1, length: 1, force: 100}\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Beam.Elements) != 2 || loaded.Beam.Elements[1].Force != 100 {
		t.Errorf("unexpected elements %+v", loaded.Beam.Elements)
	}
	if loaded.Orbit.Frames != DefaultFrames || loaded.Orbit.ScaleKm != DefaultScaleKm {
		t.Errorf("orbit defaults lost: %+v", loaded.Orbit)
	}
}
