package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilewalk/internal/config"
	"github.com/vovakirdan/tilewalk/internal/core"
	"github.com/vovakirdan/tilewalk/internal/maps"
	"github.com/vovakirdan/tilewalk/internal/render"
	"github.com/vovakirdan/tilewalk/internal/session"
	"github.com/vovakirdan/tilewalk/internal/storage"
	"github.com/vovakirdan/tilewalk/internal/tileset"
	"github.com/vovakirdan/tilewalk/internal/world"
)

// hudRows is the number of screen rows below the map.
const hudRows = 1

// statusTicks is how long a status message stays on the HUD.
const statusTicks = 90

// Options configures a play session.
type Options struct {
	Config  config.Config
	Tileset *tileset.Tileset // Nil draws the map without tiles
	Store   *storage.Store   // Nil disables checkpoints and session history
	User    string
	Fresh   bool // Ignore the saved checkpoint
	Logger  *log.Logger

	// Renderer styles the output. Nil uses the default lipgloss renderer.
	Renderer *lipgloss.Renderer
	// Now is the clock used for held keys. Nil uses time.Now.
	Now func() time.Time
}

// Model is the Bubble Tea model for walking a map.
type Model struct {
	world   *world.World
	canvas  *render.Canvas
	screen  *core.Screen
	painter *ScreenRenderer
	tiles   *tileset.Tileset
	style   render.Style
	rec     *session.Recorder

	keys    KeyMap
	help    help.Model
	held    *HeldKeys
	pending core.InputFrame
	now     func() time.Time
	config  core.RuntimeConfig

	debug       bool
	stats       render.Stats
	hover       world.Hover
	hovering    bool
	status      string
	statusUntil uint64
	quitting    bool
}

// NewModel creates a play model for m. Unless opts.Fresh is set, the
// player starts from the user's checkpoint on this map.
func NewModel(m maps.Map, opts Options) (Model, error) {
	w, err := world.New(m, opts.Config)
	if err != nil {
		return Model{}, err
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	canvas := render.NewCanvas(opts.Config.Viewport.Width, opts.Config.Viewport.Height)
	rc := core.RuntimeConfig{
		ScreenW:  canvas.Width(),
		ScreenH:  canvas.Rows() + hudRows,
		TickRate: opts.Config.Runtime.TickRate,
	}

	h := help.New()
	h.ShowAll = false

	model := Model{
		world:   w,
		canvas:  canvas,
		screen:  core.NewScreen(rc.ScreenW, rc.ScreenH),
		painter: NewScreenRenderer(opts.Renderer),
		tiles:   opts.Tileset,
		style:   render.DefaultStyle(opts.Config.Background()),
		rec:     session.New(opts.Store, opts.User, w, opts.Logger, now),
		keys:    DefaultKeyMap(),
		help:    h,
		held:    NewHeldKeys(time.Duration(opts.Config.Runtime.HoldMS) * time.Millisecond),
		pending: core.NewInputFrame(),
		now:     now,
		config:  rc,
		debug:   opts.Config.Render.Debug,
	}

	if !opts.Fresh && model.rec.Restore() {
		model.setStatus("checkpoint restored")
	}
	return model, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		//nolint:errcheck // Logged by the recorder, quitting regardless
		m.rec.Finish()
		m.quitting = true
		return m, tea.Quit

	case core.ActionCheckpoint:
		if err := m.rec.Checkpoint(); err != nil {
			m.setStatus("checkpoint failed: " + err.Error())
		} else {
			m.setStatus("checkpoint saved")
		}

	case core.ActionPause:
		m.pending.Set(core.ActionPause)
		m.held.Reset()

	case core.ActionNone:

	default:
		m.held.Press(action, m.now())
	}

	return m, nil
}

// handleMouse tracks the tile under the pointer. Each cell is one pixel
// wide and two pixels tall; the pointer samples the cell's center.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Y >= m.canvas.Rows() || msg.X >= m.canvas.Width() || msg.X < 0 || msg.Y < 0 {
		m.hovering = false
		return m, nil
	}
	m.hover = m.world.ClickToWorld(float64(msg.X)+0.5, float64(msg.Y)*2+1)
	m.hovering = true
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := m.held.Frame(now)
	if m.pending.Has(core.ActionPause) {
		frame.Set(core.ActionPause)
	}
	m.world.Step(frame)
	m.pending.Clear()

	if m.status != "" && m.world.State().Tick >= m.statusUntil {
		m.status = ""
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusUntil = m.world.State().Tick + statusTicks
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.drawScreen()

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return m.painter.Render(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// drawScreen rasterizes the world and the HUD into the screen buffer.
func (m *Model) drawScreen() {
	m.stats = render.DrawFrame(m.canvas, m.world.Frame(), m.tiles, m.style)
	m.canvas.ToScreen(m.screen, 0, m.style.Background)

	hud := core.Cell{Rune: ' ', Fg: core.ColorHUDText, Bg: core.ColorHUDPanel}
	row := m.screen.Height() - 1
	for x := range m.screen.Width() {
		m.screen.SetCell(x, row, hud)
	}
	m.screen.DrawTextColor(0, row, m.hudText(), core.ColorHUDText, core.ColorHUDPanel)
}

// hudText is the single status line below the map.
func (m Model) hudText() string {
	state := m.world.State()
	parts := []string{m.world.Map().Title()}

	if m.debug {
		pos := m.world.Player().Pos
		tile := m.world.Grid().TileAt(pos.X, pos.Y)
		parts = append(parts,
			fmt.Sprintf("x:%.0f y:%.0f", pos.X, pos.Y),
			fmt.Sprintf("tile:%d,%d", tile.X, tile.Y),
			m.world.Facing().String(),
		)
		if state.Moving {
			parts = append(parts, "moving")
		}
	}
	if m.hovering && m.hover.Inside {
		h := fmt.Sprintf("hover:%d,%d", m.hover.Tile.X, m.hover.Tile.Y)
		if m.hover.Solid {
			h += " solid"
		}
		parts = append(parts, h)
	}
	if m.stats.TilesetMissing {
		parts = append(parts, "no tileset")
	}
	if state.Paused {
		parts = append(parts, "PAUSED")
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return " " + strings.Join(parts, "  ")
}

// World returns the model's world.
func (m Model) World() *world.World {
	return m.world
}

// Screen returns the screen buffer as of the last View.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// Finish saves the final checkpoint and session. It is safe to call more
// than once.
func (m Model) Finish() error {
	return m.rec.Finish()
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for m.
func Run(m maps.Map, opts Options) error {
	model, err := NewModel(m, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover reports the tile under the pointer
	)

	_, err = p.Run()
	if ferr := model.Finish(); err == nil {
		err = ferr
	}
	return err
}
