package maps

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound is returned by LoadByID for an unknown map ID.
var ErrNotFound = errors.New("map not found")

// Loader handles loading maps from a directory. Built-in maps are always
// available; a file with the same ID as a built-in map replaces it.
type Loader struct {
	Root string
}

// NewLoader creates a new map loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans Root and returns every valid map plus the
// built-in ones, sorted by ID. Invalid files are skipped. A missing Root is
// not an error.
func (l *Loader) LoadAll() ([]Map, error) {
	byID := make(map[string]Map)
	for _, m := range Builtin() {
		byID[m.ID] = m
	}

	if l.Root != "" {
		err := filepath.WalkDir(l.Root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == l.Root && errors.Is(err, fs.ErrNotExist) {
					return filepath.SkipDir
				}
				return err
			}
			if d.IsDir() {
				return nil
			}
			if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
				return nil
			}

			m, err := l.LoadFile(path)
			if err != nil {
				// Skip invalid files
				return nil
			}
			byID[m.ID] = m
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
		}
	}

	all := make([]Map, 0, len(byID))
	for _, m := range byID {
		all = append(all, m)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})
	return all, nil
}

// LoadFile loads and validates a single map file. The ID defaults to the
// file name without extension and a relative tileset path is resolved
// against the map's directory.
func (l *Loader) LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Map{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	m, err := parseByExtension(data, ext)
	if err != nil {
		return Map{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	if m.ID == "" {
		m.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if m.Tileset != "" && !filepath.IsAbs(m.Tileset) {
		m.Tileset = filepath.Join(filepath.Dir(path), m.Tileset)
	}
	m.FilePath = path

	if _, err := m.Grid(); err != nil {
		return Map{}, fmt.Errorf("invalid map %s: %w", path, err)
	}
	return m, nil
}

// LoadByID loads a specific map by ID.
func (l *Loader) LoadByID(id string) (Map, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Map{}, err
	}

	for _, m := range all {
		if m.ID == id {
			return m, nil
		}
	}
	return Map{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all map IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(all))
	for i, m := range all {
		ids[i] = m.ID
	}
	return ids, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, ext string) (Map, error) {
	switch ext {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Map{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
