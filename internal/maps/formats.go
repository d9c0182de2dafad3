package maps

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/tilewalk/internal/core"
	"github.com/vovakirdan/tilewalk/internal/tilemap"
	"gopkg.in/yaml.v3"
)

// fileMap is the on-disk map structure shared by the JSON and YAML formats.
// JSON keys follow the camelCase map schema (mapWidth, tileSize); YAML keys
// use snake_case (map_width, tile_size).
type fileMap struct {
	ID      string     `json:"id" yaml:"id"`
	Name    string     `json:"name" yaml:"name"`
	Tileset string     `json:"tileset" yaml:"tileset"`
	Spawn   *fileSpawn `json:"spawn" yaml:"spawn"`

	tilemap.MapData `yaml:",inline"`
}

type fileSpawn struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// ParseJSON parses a JSON map file.
func ParseJSON(data []byte) (Map, error) {
	var fm fileMap
	if err := json.Unmarshal(data, &fm); err != nil {
		return Map{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return fm.toMap(), nil
}

// ParseYAML parses a YAML map file.
func ParseYAML(data []byte) (Map, error) {
	var fm fileMap
	if err := yaml.Unmarshal(data, &fm); err != nil {
		return Map{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return fm.toMap(), nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".json", ".yaml", ".yml"}
}

func (fm fileMap) toMap() Map {
	m := Map{
		ID:      fm.ID,
		Name:    fm.Name,
		Data:    fm.MapData,
		Tileset: fm.Tileset,
	}
	if fm.Spawn != nil {
		m.Spawn = &core.Vec{X: fm.Spawn.X, Y: fm.Spawn.Y}
	}
	return m
}
