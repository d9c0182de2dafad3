package config

import (
	"fmt"
	"sort"
)

// Preset represents a named movement feel.
type Preset string

const (
	PresetClassic Preset = "classic" // 1px steps, blocked diagonals stop dead
	PresetRelaxed Preset = "relaxed" // slide along walls
	PresetBrisk   Preset = "brisk"   // 2px steps, sliding
)

// Presets returns the known preset names in sorted order.
func Presets() []string {
	names := []string{string(PresetClassic), string(PresetRelaxed), string(PresetBrisk)}
	sort.Strings(names)
	return names
}

// ApplyPreset modifies the config based on a movement preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *Config, preset Preset) error {
	switch preset {
	case "":
		return nil
	case PresetClassic:
		cfg.Player.Speed = 1
		cfg.Player.Slide = false
	case PresetRelaxed:
		cfg.Player.Speed = 1
		cfg.Player.Slide = true
	case PresetBrisk:
		// Speed stays well below the smallest usual tile size; see mover.
		cfg.Player.Speed = 2
		cfg.Player.Slide = true
	default:
		return fmt.Errorf("config: unknown preset %q (known: %v)", preset, Presets())
	}
	return nil
}
