package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilewalk/internal/maps"
	"github.com/vovakirdan/tilewalk/internal/platform/tui"
	"github.com/vovakirdan/tilewalk/internal/storage"
	"github.com/vovakirdan/tilewalk/internal/tileset"
)

var (
	flagFresh bool
	flagUser  string
)

var playCmd = &cobra.Command{
	Use:   "play [map]",
	Short: "Walk a map",
	Long: `Start walking the specified map, or pick one from a list.

The player resumes from its checkpoint on the map unless --fresh is given.
A checkpoint is saved on quit and with Ctrl+S.

Controls:
  Arrows/WASD  - Move (hold to keep moving)
  P            - Pause
  Ctrl+S       - Save checkpoint
  ?            - Help
  Q/Ctrl+C     - Quit

Examples:
  tilewalk play
  tilewalk play firehouse
  tilewalk play firehouse --fresh
  tilewalk play yard --maps ./maps --fps 30`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagFresh, "fresh", false, "Ignore the saved checkpoint and start at the spawn")
	playCmd.Flags().StringVar(&flagUser, "user", "", "Player name for checkpoints (default: $USER)")
}

func runPlay(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := openLog()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	loader, err := mapLoader(cfg)
	if err != nil {
		fail("%v", err)
	}

	user := flagUser
	if user == "" {
		user = currentUser()
	}

	// Open checkpoint storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open checkpoint database", "error", err)
		// Continue without storage - walking still works
	}

	var m maps.Map
	if len(args) == 1 {
		m, err = loader.LoadByID(args[0])
		if errors.Is(err, maps.ErrNotFound) {
			closeStore(store)
			fail("unknown map %q\nRun 'tilewalk maps' to see available maps.", args[0])
		}
		if err != nil {
			closeStore(store)
			fail("%v", err)
		}
	} else {
		selected, pickErr := pickMap(loader, store, user)
		if pickErr != nil {
			closeStore(store)
			fail("%v", pickErr)
		}
		// User quit the picker
		if selected == nil {
			closeStore(store)
			return
		}
		m = *selected
	}

	tileSize := 0
	if m.Data.TileSize != nil {
		tileSize = *m.Data.TileSize
	}
	ts, err := tileset.Resolve(m.Tileset, tileSize)
	if err != nil {
		// Play on without tiles; the HUD reports it
		logger.Warn("tileset not loaded", "map", m.ID, "error", err)
	}

	logger.Info("play started", "map", m.ID, "user", user, "fresh", flagFresh)
	runErr := tui.Run(m, tui.Options{
		Config:  cfg,
		Tileset: ts,
		Store:   store,
		User:    user,
		Fresh:   flagFresh,
		Logger:  logger,
	})

	// Close store before potential exit
	closeStore(store)

	if runErr != nil {
		fail("running map: %v", runErr)
	}
}

// pickMap shows the map picker sized to the terminal.
func pickMap(loader *maps.Loader, store *storage.Store, user string) (*maps.Map, error) {
	list, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}

	var saves []storage.Checkpoint
	if store != nil {
		saves, err = store.ListCheckpoints(user)
		if err != nil {
			return nil, err
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return tui.RunPicker(list, saves, width, height)
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
