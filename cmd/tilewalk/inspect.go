package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilewalk/internal/maps"
	"github.com/vovakirdan/tilewalk/internal/storage"
	"github.com/vovakirdan/tilewalk/internal/tileset"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <map>",
	Short: "Show details of a map",
	Long: `Display a map's geometry, its layers, its tileset status and the
play statistics recorded for it.

Examples:
  tilewalk inspect firehouse`,
	Args: cobra.ExactArgs(1),
	Run:  runInspect,
}

func runInspect(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	loader, err := mapLoader(cfg)
	if err != nil {
		fail("%v", err)
	}

	m, err := loader.LoadByID(args[0])
	if errors.Is(err, maps.ErrNotFound) {
		fail("unknown map %q\nRun 'tilewalk maps' to see available maps.", args[0])
	}
	if err != nil {
		fail("%v", err)
	}

	grid, err := m.Grid()
	if err != nil {
		fail("%v", err)
	}
	st := grid.Stats()
	px := grid.PixelSize()

	fmt.Printf("Map - %s (%s)\n", m.Title(), m.ID)
	if m.FilePath != "" {
		fmt.Printf("  File:       %s\n", m.FilePath)
	}
	fmt.Printf("  Size:       %dx%d tiles, %.0fx%.0f px\n", st.Width, st.Height, px.W, px.H)
	fmt.Printf("  Tile size:  %d\n", st.TileSize)
	if m.Spawn != nil {
		fmt.Printf("  Spawn:      %.0f, %.0f\n", m.Spawn.X, m.Spawn.Y)
	}

	tileSize := st.TileSize
	switch ts, tsErr := tileset.Resolve(m.Tileset, tileSize); {
	case tsErr != nil:
		fmt.Printf("  Tileset:    missing (%v)\n", tsErr)
	case m.Tileset == "":
		fmt.Printf("  Tileset:    generated, %dx%d\n", ts.Width(), ts.Height())
	default:
		fmt.Printf("  Tileset:    %s, %dx%d\n", ts.Path(), ts.Width(), ts.Height())
	}

	fmt.Println()
	fmt.Printf("  %-12s  %-8s  %6s  %s\n", "Layer", "Collider", "Tiles", "Out of range")
	fmt.Printf("  %-12s  %-8s  %6s  %s\n", "-----", "--------", "-----", "------------")
	for _, l := range st.Layers {
		collider := "no"
		if l.Collider {
			collider = "yes"
		}
		fmt.Printf("  %-12s  %-8s  %6d  %d\n", l.Name, collider, l.Tiles, l.OutOfRange)
	}
	fmt.Printf("\n  %d tiles, %d collider tiles, %d solid cells\n", st.TotalTiles, st.ColliderTiles, st.SolidCells)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Stats are optional
		return
	}
	defer store.Close()

	stats, err := store.GetMapStats(m.ID)
	if err != nil || stats.Sessions == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("  Sessions:   %d by %d players\n", stats.Sessions, stats.Players)
	fmt.Printf("  Walked:     %.0f px over %d ticks\n", stats.TotalDistance, stats.TotalTicks)
	fmt.Printf("  Last:       %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
}
