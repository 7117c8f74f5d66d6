package config

import "sort"

var OrbitPresets = map[string]*OrbitConfig{
	"earth-moon": {
		TimestepDays: 1, G: DefaultG, Frames: 20, ScaleKm: 400000,
		Bodies: []BodyConfig{
			{Name: "earth", Mass: 1},
			{Name: "moon", X: 384400, VY: 1000, Mass: 0.0123},
		},
	},
	"moon-probe": {
		TimestepDays: 0.05, G: DefaultG, Frames: 200, ScaleKm: 450000,
		Bodies: []BodyConfig{
			{Name: "earth", Mass: 1},
			{Name: "moon", X: 384400, VY: 1000, Mass: 0.0123},
		},
		Satellites: []BodyConfig{
			{Name: "probe", X: -42164, VY: -3075},
		},
	},
	"binary": {
		TimestepDays: 0.1, G: DefaultG, Frames: 300, ScaleKm: 200000,
		Bodies: []BodyConfig{
			{Name: "a", X: -100000, VY: -700, Mass: 10},
			{Name: "b", X: 100000, VY: 700, Mass: 10},
		},
	},
}

var BeamPresets = map[string]*BeamConfig{
	"single": {
		Elements: []ElementConfig{{Area: 1, ModulusGPa: 1, Length: 1, Force: 100}},
	},
	"series": {
		Elements: []ElementConfig{
			{Area: 1, ModulusGPa: 1, Length: 1, Force: 0},
			{Area: 1, ModulusGPa: 1, Length: 1, Force: 100},
		},
	},
	"stepped": {
		Elements: []ElementConfig{
			{Area: 0.002, ModulusGPa: 70, Length: 0.5, Force: 1000},
			{Area: 0.001, ModulusGPa: 200, Length: 1.5, Force: -400},
			{Area: 0.0005, ModulusGPa: 110, Length: 1, Force: 2500},
		},
	},
}

// GetOrbitPreset returns a copy so callers can edit the result freely.
func GetOrbitPreset(name string) *OrbitConfig {
	p, ok := OrbitPresets[name]
	if !ok {
		return nil
	}
	c := *p
	c.Bodies = append([]BodyConfig(nil), p.Bodies...)
	c.Satellites = append([]BodyConfig(nil), p.Satellites...)
	return &c
}

func GetBeamPreset(name string) *BeamConfig {
	p, ok := BeamPresets[name]
	if !ok {
		return nil
	}
	return &BeamConfig{Elements: append([]ElementConfig(nil), p.Elements...)}
}

func ListOrbitPresets() []string {
	return sortedKeys(OrbitPresets)
}

func ListBeamPresets() []string {
	return sortedKeys(BeamPresets)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
