package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) = %v", err)
	}

	def := Default()
	if cfg.Viewport != def.Viewport {
		t.Errorf("viewport = %+v, expected %+v", cfg.Viewport, def.Viewport)
	}
	if cfg.Render != def.Render || cfg.Runtime != def.Runtime || cfg.Maps != def.Maps {
		t.Errorf("embedded sections differ from Default()")
	}
	if cfg.Player.Speed != def.Player.Speed || cfg.Player.Margin != def.Player.Margin ||
		cfg.Player.Width != def.Player.Width || cfg.Player.Slide != def.Player.Slide {
		t.Errorf("player = %+v, expected %+v", cfg.Player, def.Player)
	}
	if _, ok := cfg.Spawn(); ok {
		t.Error("embedded config should not override the spawn")
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("player:\n  speed: 3\n  slide: true\n"))
	if err != nil {
		t.Fatalf("Parse = %v", err)
	}
	if cfg.Player.Speed != 3 || !cfg.Player.Slide {
		t.Errorf("player = %+v", cfg.Player)
	}
	if cfg.Player.Width != 8 || cfg.Viewport.Width != 116 {
		t.Errorf("unset keys lost their defaults: %+v", cfg)
	}
}

func TestParseSpawnOverride(t *testing.T) {
	cfg, err := Parse([]byte("player:\n  spawn_x: 40\n  spawn_y: 12.5\n"))
	if err != nil {
		t.Fatalf("Parse = %v", err)
	}
	p, ok := cfg.Spawn()
	if !ok || p.X != 40 || p.Y != 12.5 {
		t.Errorf("Spawn = %+v ok=%v", p, ok)
	}

	cfg, err = Parse([]byte("player:\n  spawn_x: 40\n"))
	if err != nil {
		t.Fatalf("Parse = %v", err)
	}
	if _, ok := cfg.Spawn(); ok {
		t.Error("a single axis should not count as an override")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero viewport", func(c *Config) { c.Viewport.Width = 0 }, "viewport"},
		{"negative player", func(c *Config) { c.Player.Height = -1 }, "player size"},
		{"zero speed", func(c *Config) { c.Player.Speed = 0 }, "speed"},
		{"negative margin", func(c *Config) { c.Player.Margin = -1 }, "margin"},
		{"zero frames", func(c *Config) { c.Player.Frames = 0 }, "frames"},
		{"zero tick rate", func(c *Config) { c.Runtime.TickRate = 0 }, "tick rate"},
		{"negative hold", func(c *Config) { c.Runtime.HoldMS = -5 }, "hold_ms"},
		{"zero scale", func(c *Config) { c.Render.Scale = 0 }, "scale"},
		{"bad color", func(c *Config) { c.Render.Background = "nope" }, "background"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("viewport:\n  width: 64\n  height: 64\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if cfg.Viewport.Width != 64 || cfg.Viewport.Height != 64 {
		t.Errorf("viewport = %+v", cfg.Viewport)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player:\n  speed: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for invalid custom config")
	}
}

func TestLoadFallsBackToLocalFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(LocalPath, []byte("runtime:\n  tick_rate: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if cfg.Runtime.TickRate != 30 {
		t.Errorf("tick rate = %d, expected local file value 30", cfg.Runtime.TickRate)
	}
}

func TestLoadUserFileWins(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	if err := os.MkdirAll(filepath.Join(dir, ".tilewalk"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".tilewalk", "config.yaml"), []byte("runtime:\n  tick_rate: 24\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(LocalPath, []byte("runtime:\n  tick_rate: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if cfg.Runtime.TickRate != 24 {
		t.Errorf("tick rate = %d, expected user file value 24", cfg.Runtime.TickRate)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if cfg.Viewport != Default().Viewport {
		t.Errorf("viewport = %+v, expected defaults", cfg.Viewport)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Player.Slide = true

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal = %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse = %v", err)
	}
	if !back.Player.Slide || back.Maps != cfg.Maps {
		t.Errorf("round trip lost values: %+v", back)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset Preset
		speed  float64
		slide  bool
	}{
		{PresetClassic, 1, false},
		{PresetRelaxed, 1, true},
		{PresetBrisk, 2, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			if err := ApplyPreset(&cfg, tc.preset); err != nil {
				t.Fatalf("ApplyPreset = %v", err)
			}
			if cfg.Player.Speed != tc.speed || cfg.Player.Slide != tc.slide {
				t.Errorf("player = speed %v slide %v", cfg.Player.Speed, cfg.Player.Slide)
			}
		})
	}

	cfg := Default()
	if err := ApplyPreset(&cfg, ""); err != nil || cfg.Player != Default().Player {
		t.Errorf("empty preset changed config or failed: %v", err)
	}
	if err := ApplyPreset(&cfg, "warp"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/walker")

	tests := []struct {
		in, want string
	}{
		{"~/.tilewalk/maps", "/home/walker/.tilewalk/maps"},
		{"~", "/home/walker"},
		{"/abs/path", "/abs/path"},
		{"rel/path", "rel/path"},
		{"", ""},
	}
	for _, tc := range tests {
		got, err := ExpandHome(tc.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q) = %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
