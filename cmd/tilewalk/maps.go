package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List all available maps",
	Long: `Shows the built-in maps and every valid map file in the maps directory.
Files that fail to load are skipped.`,
	Run: runMaps,
}

func runMaps(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	loader, err := mapLoader(cfg)
	if err != nil {
		fail("%v", err)
	}
	list, err := loader.LoadAll()
	if err != nil {
		fail("%v", err)
	}

	if len(list) == 0 {
		fmt.Println("No maps available.")
		return
	}

	fmt.Println("Available maps:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range list {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-9s  %-8s  %s\n", maxIDLen, "ID", "Size", "Source", "Name")
	fmt.Printf("  %-*s  %-9s  %-8s  %s\n", maxIDLen, "--", "----", "------", "----")

	// Print maps
	for _, m := range list {
		source := "file"
		if m.Builtin {
			source = "builtin"
		}
		size := fmt.Sprintf("%dx%d", m.Data.MapWidth, m.Data.MapHeight)
		fmt.Printf("  %-*s  %-9s  %-8s  %s\n", maxIDLen, m.ID, size, source, m.Title())
	}

	fmt.Println()
	fmt.Println("Run 'tilewalk play <id>' to walk a map.")
}
