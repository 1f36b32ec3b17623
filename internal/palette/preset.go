package palette

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a named palette definition loadable from a YAML preset file.
type Preset struct {
	Name   string   `yaml:"name"`
	Colors []string `yaml:"colors"`
}

// presetFile is the on-disk shape of a preset collection.
type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// Palette builds the effective palette for the preset.
func (p Preset) Palette() (*Palette, error) {
	if len(p.Colors) == 0 {
		return nil, fmt.Errorf("preset %q has no colors", p.Name)
	}
	if len(p.Colors) > MaxColors {
		return nil, fmt.Errorf("preset %q has %d colors, maximum is %d", p.Name, len(p.Colors), MaxColors)
	}
	pal, err := FromHexes(p.Colors)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return pal, nil
}

// LoadPresets reads palette presets from a YAML file.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	return ParsePresets(data)
}

// ParsePresets parses palette presets from YAML data.
func ParsePresets(data []byte) ([]Preset, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	for _, p := range f.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset missing name")
		}
	}
	return f.Presets, nil
}

// FindPreset returns the preset with the given name.
func FindPreset(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
