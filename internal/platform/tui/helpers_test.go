package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilewalk/internal/config"
	"github.com/vovakirdan/tilewalk/internal/core"
	"github.com/vovakirdan/tilewalk/internal/maps"
	"github.com/vovakirdan/tilewalk/internal/storage"
	"github.com/vovakirdan/tilewalk/internal/tilemap"
)

// fakeClock is a settable clock for held-key timing.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

// field is a 10x6 open map (tile size 8) with one wall tile at (3, 1).
func field(id string) maps.Map {
	var ground []tilemap.TileData
	for y := 0; y < 6; y++ {
		for x := 0; x < 10; x++ {
			ground = append(ground, tilemap.TileData{ID: 0, X: x, Y: y})
		}
	}
	return maps.Map{
		ID:   id,
		Name: "Field " + id,
		Data: tilemap.MapData{
			MapWidth:  10,
			MapHeight: 6,
			TileSize:  tilemap.IntPtr(8),
			Layers: []tilemap.LayerData{
				{Name: "ground", Tiles: ground},
				{Name: "walls", Collider: true, Tiles: []tilemap.TileData{{ID: 2, X: 3, Y: 1}}},
			},
		},
		Spawn: &core.Vec{X: 16, Y: 16},
	}
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Viewport.Width = 32
	cfg.Viewport.Height = 24
	return cfg
}

func testOptions(clock *fakeClock) Options {
	return Options{
		Config:   testConfig(),
		User:     "ana",
		Renderer: lipgloss.NewRenderer(io.Discard),
		Now:      clock.Now,
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newModel(t *testing.T, m maps.Map, opts Options) Model {
	t.Helper()
	model, err := NewModel(m, opts)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return model
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send applies msg and returns the updated play model.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
