package maps

import (
	"embed"
	"fmt"
	"path"
)

// DefaultID is the map used when none is configured.
const DefaultID = "firehouse"

//go:embed builtin/*.json
var builtinFS embed.FS

// Builtin returns the embedded maps sorted by file name.
// The embedded files are part of the binary, so a parse failure panics.
func Builtin() []Map {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		panic(fmt.Sprintf("maps: reading embedded maps: %v", err))
	}

	out := make([]Map, 0, len(entries))
	for _, e := range entries {
		name := path.Join("builtin", e.Name())
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			panic(fmt.Sprintf("maps: reading %s: %v", name, err))
		}
		m, err := ParseJSON(data)
		if err != nil {
			panic(fmt.Sprintf("maps: parsing %s: %v", name, err))
		}
		m.FilePath = name
		m.Builtin = true
		out = append(out, m)
	}
	return out
}

// Default returns the built-in default map.
func Default() Map {
	for _, m := range Builtin() {
		if m.ID == DefaultID {
			return m
		}
	}
	panic("maps: default map " + DefaultID + " is not embedded")
}
