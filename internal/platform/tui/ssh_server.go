package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tilewalk/internal/config"
	"github.com/vovakirdan/tilewalk/internal/session"
	"github.com/vovakirdan/tilewalk/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.tilewalk/host_key.
	HostKeyPath string

	// DBPath is the path to the checkpoint database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// World is the engine configuration every session starts from.
	World config.Config
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.tilewalk/tilewalk.db",
		IdleTimeout: 30 * time.Minute,
		World:       config.Default(),
	}
}

// sessionKey stores the per-connection session holder in the SSH context.
type sessionKey struct{}

// SSHServer wraps a Wish SSH server for tilewalk.
type SSHServer struct {
	config  SSHServerConfig
	catalog *Catalog
	server  *ssh.Server
	store   *storage.Store
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server serving the maps in catalog.
func NewSSHServer(cfg SSHServerConfig, catalog *Catalog) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilewalk-ssh",
	})

	if len(catalog.Maps()) == 0 {
		return nil, errors.New("no maps to serve")
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open checkpoint database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config:  cfg,
		catalog: catalog,
		store:   store,
		logger:  logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".tilewalk", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	holder := &sessionHolder{}
	sshSession.Context().SetValue(sessionKey{}, holder)

	opts := Options{
		Config:   s.config.World,
		Store:    s.store,
		User:     sshSession.User(),
		Logger:   s.logger.With("user", sshSession.User()),
		Renderer: bubbletea.MakeRenderer(sshSession),
	}
	model := NewSessionModel(s.catalog, opts, holder, pty.Window.Width, pty.Window.Height)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// loggingMiddleware logs SSH session events and saves the session of a
// connection that dropped without quitting.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		if holder, ok := sshSession.Context().Value(sessionKey{}).(*sessionHolder); ok {
			//nolint:errcheck // Logged by the recorder
			holder.finish()
		}
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "maps", len(s.catalog.Maps()))

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionHolder tracks the recorder of the world a connection is playing.
// The Bubble Tea goroutine sets it; the SSH handler reads it on disconnect.
type sessionHolder struct {
	mu  sync.Mutex
	rec *session.Recorder
}

func (h *sessionHolder) set(rec *session.Recorder) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rec = rec
}

func (h *sessionHolder) finish() error {
	h.mu.Lock()
	rec := h.rec
	h.mu.Unlock()
	if rec == nil {
		return nil
	}
	return rec.Finish()
}

// SessionModel manages the SSH session flow: map picker, then play.
type SessionModel struct {
	catalog  *Catalog
	opts     Options
	holder   *sessionHolder
	picker   PickerModel
	play     *Model
	width    int
	height   int
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(catalog *Catalog, opts Options, holder *sessionHolder, width, height int) SessionModel {
	var saves []storage.Checkpoint
	if opts.Store != nil {
		var err error
		saves, err = opts.Store.ListCheckpoints(opts.User)
		if err != nil && opts.Logger != nil {
			opts.Logger.Warn("could not list checkpoints", "error", err)
		}
	}
	if holder == nil {
		holder = &sessionHolder{}
	}

	return SessionModel{
		catalog: catalog,
		opts:    opts,
		holder:  holder,
		picker:  NewPickerModel(catalog.Maps(), saves, width, height),
		width:   width,
		height:  height,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.play != nil {
		return m.updatePlay(msg)
	}
	return m.updatePicker(msg)
}

// updatePicker handles updates while choosing a map.
func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPicker, cmd := m.picker.Update(msg)
	if picker, ok := newPicker.(PickerModel); ok {
		m.picker = picker
	}

	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// The picker quits on select; start the map instead
	if selected := m.picker.Selected(); selected != nil {
		opts := m.opts
		opts.Tileset = m.catalog.Tileset(selected.ID)
		play, err := NewModel(*selected, opts)
		if err != nil {
			if m.opts.Logger != nil {
				m.opts.Logger.Error("could not start map", "map", selected.ID, "error", err)
			}
			m.quitting = true
			return m, tea.Quit
		}
		if m.opts.Logger != nil {
			m.opts.Logger.Info("map started", "map", selected.ID)
		}
		m.holder.set(play.rec)
		m.play = &play
		return m, m.play.Init()
	}

	return m, cmd
}

// updatePlay handles updates while walking a map.
func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.play.Update(msg)
	if play, ok := newModel.(Model); ok {
		m.play = &play
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.play != nil {
		return m.play.View()
	}
	return m.picker.View()
}
