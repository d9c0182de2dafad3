package config

import (
	_ "embed"
)

//go:embed defaults/tilewalk.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration. It matches the embedded
// defaults/tilewalk.yaml.
func Default() Config {
	return Config{
		Viewport: ViewportConfig{
			Width:  116, // 29 tiles of 4px
			Height: 24,
		},
		Player: PlayerConfig{
			Width:     8,
			Height:    8,
			Speed:     1,
			Margin:    4,
			Slide:     false,
			Frames:    1,
			AnimSpeed: 0.1,
		},
		Render: RenderConfig{
			Scale:      4,
			Background: "#0a0a0f",
			Debug:      true,
		},
		Runtime: RuntimeConfig{
			TickRate: 60,
			HoldMS:   150,
		},
		Maps: MapsConfig{
			Dir:     "~/.tilewalk/maps",
			Default: "firehouse",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
