// tilewalk-window walks a tile map in a desktop window.
//
// Usage:
//
//	tilewalk-window [map]
//
// With no map the configured default map is used. Arrows/WASD move,
// P pauses, Ctrl+S saves a checkpoint and Esc/Q closes the window.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilewalk/internal/config"
	"github.com/vovakirdan/tilewalk/internal/maps"
	"github.com/vovakirdan/tilewalk/internal/platform/window"
	"github.com/vovakirdan/tilewalk/internal/session"
	"github.com/vovakirdan/tilewalk/internal/storage"
	"github.com/vovakirdan/tilewalk/internal/tileset"
)

var (
	flagConfig string
	flagPreset string
	flagDBPath string
	flagFresh  bool
	flagUser   string
	flagScale  int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilewalk-window [map]",
	Short: "Walk a tile map in a window",
	Long: `Open a window on a tile map. Checkpoints are shared with the terminal
version, so a walk can be resumed in either.

Examples:
  tilewalk-window
  tilewalk-window firehouse --scale 6
  tilewalk-window yard --fresh --preset brisk`,
	Args: cobra.MaximumNArgs(1),
	Run:  run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.Flags().StringVar(&flagPreset, "preset", "", "Movement preset: classic, relaxed, brisk")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.tilewalk/tilewalk.db", "Path to checkpoint database")
	rootCmd.Flags().BoolVar(&flagFresh, "fresh", false, "Ignore the saved checkpoint and start at the spawn")
	rootCmd.Flags().StringVar(&flagUser, "user", "", "Player name for checkpoints (default: $USER)")
	rootCmd.Flags().IntVar(&flagScale, "scale", 0, "Window pixel scale (0 = from config)")
}

func run(_ *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilewalk-window",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("loading config", "error", err)
	}
	if err := config.ApplyPreset(&cfg, config.Preset(flagPreset)); err != nil {
		logger.Fatal("applying preset", "error", err)
	}
	if flagScale > 0 {
		cfg.Render.Scale = flagScale
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", "error", err)
	}

	dir, err := config.ExpandHome(cfg.Maps.Dir)
	if err != nil {
		logger.Fatal("maps directory", "error", err)
	}
	id := cfg.Maps.Default
	if len(args) == 1 {
		id = args[0]
	}
	m, err := maps.NewLoader(dir).LoadByID(id)
	if errors.Is(err, maps.ErrNotFound) {
		logger.Fatal("unknown map", "map", id)
	}
	if err != nil {
		logger.Fatal("loading map", "map", id, "error", err)
	}

	tileSize := 0
	if m.Data.TileSize != nil {
		tileSize = *m.Data.TileSize
	}
	ts, err := tileset.Resolve(m.Tileset, tileSize)
	if err != nil {
		logger.Warn("tileset not loaded", "map", m.ID, "error", err)
	}

	user := flagUser
	if user == "" {
		user = os.Getenv("USER")
	}
	if user == "" {
		user = session.DefaultUser
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open checkpoint database", "error", err)
	}

	runErr := window.Run(m, window.Options{
		Config:  cfg,
		Tileset: ts,
		Store:   store,
		User:    user,
		Fresh:   flagFresh,
		Logger:  logger,
	})
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		logger.Fatal("window", "error", runErr)
	}
}
