// Package config provides YAML-based configuration loading for tilewalk.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tilewalk/internal/core"
)

// Config contains all runtime configuration.
type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Player   PlayerConfig   `yaml:"player"`
	Render   RenderConfig   `yaml:"render"`
	Runtime  RuntimeConfig  `yaml:"runtime"`
	Maps     MapsConfig     `yaml:"maps"`
}

// ViewportConfig is the camera size in world pixels.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the controllable sprite.
type PlayerConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"`  // Pixels per tick per held direction
	Margin float64 `yaml:"margin"` // Collision corner inset

	// Spawn override in world pixels. Nil uses the map's spawn.
	SpawnX *float64 `yaml:"spawn_x"`
	SpawnY *float64 `yaml:"spawn_y"`

	// Slide lets a blocked diagonal move continue along the open axis.
	Slide bool `yaml:"slide"`

	Frames    int     `yaml:"frames"`     // Animation frames in the sprite strip
	AnimSpeed float64 `yaml:"anim_speed"` // Frame timer increment per moving tick
}

// RenderConfig controls drawing.
type RenderConfig struct {
	Scale      int    `yaml:"scale"`      // Window pixel scale
	Background string `yaml:"background"` // Hex color behind the map
	Debug      bool   `yaml:"debug"`      // Show the debug HUD
}

// RuntimeConfig controls the tick loop.
type RuntimeConfig struct {
	TickRate int `yaml:"tick_rate"`
	// HoldMS is how long a terminal key press counts as held.
	HoldMS int `yaml:"hold_ms"`
}

// MapsConfig controls where maps are found.
type MapsConfig struct {
	Dir     string `yaml:"dir"`
	Default string `yaml:"default"`
}

// Validate checks the configuration for values the engine cannot run with.
func (c Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("config: viewport size must be positive, got %dx%d",
			c.Viewport.Width, c.Viewport.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("config: player size must be positive, got %dx%d",
			c.Player.Width, c.Player.Height)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("config: player speed must be positive, got %v", c.Player.Speed)
	}
	if c.Player.Margin < 0 {
		return fmt.Errorf("config: player margin must not be negative, got %v", c.Player.Margin)
	}
	if c.Player.Frames <= 0 {
		return fmt.Errorf("config: player frames must be positive, got %d", c.Player.Frames)
	}
	if c.Runtime.TickRate <= 0 {
		return fmt.Errorf("config: tick rate must be positive, got %d", c.Runtime.TickRate)
	}
	if c.Runtime.HoldMS < 0 {
		return fmt.Errorf("config: hold_ms must not be negative, got %d", c.Runtime.HoldMS)
	}
	if c.Render.Scale <= 0 {
		return fmt.Errorf("config: render scale must be positive, got %d", c.Render.Scale)
	}
	if _, ok := core.ParseHex(c.Render.Background); !ok {
		return fmt.Errorf("config: invalid background color %q", c.Render.Background)
	}
	return nil
}

// Background returns the parsed background color.
func (c Config) Background() core.RGB {
	if rgb, ok := core.ParseHex(c.Render.Background); ok {
		return rgb
	}
	return core.ColorNight
}

// Spawn returns the configured spawn override, if both axes are set.
func (c Config) Spawn() (core.Vec, bool) {
	if c.Player.SpawnX == nil || c.Player.SpawnY == nil {
		return core.Vec{}, false
	}
	return core.Vec{X: *c.Player.SpawnX, Y: *c.Player.SpawnY}, true
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/")), nil
}
