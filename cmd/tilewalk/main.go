// tilewalk walks a player sprite around tile maps in the terminal.
//
// Usage:
//
//	tilewalk play [map]      - Walk a map (picker when no map is given)
//	tilewalk maps            - List available maps
//	tilewalk inspect <map>   - Show map geometry, layers and play stats
//	tilewalk serve           - Start SSH server for remote play
//	tilewalk saves           - Show checkpoints and recent sessions
//	tilewalk config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Config file (default search: ~/.tilewalk, ./configs, embedded)
//	--fps <rate>     - Override the configured tick rate
//	--preset <name>  - Movement preset: classic, relaxed, brisk
//	--db <path>      - Set database path (default: ~/.tilewalk/tilewalk.db)
//	--log <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagPreset  string
	flagDBPath  string
	flagLogPath string
	flagMapsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilewalk",
	Short: "tilewalk - Walk tile maps in your terminal",
	Long: `tilewalk is a small tile engine: a player sprite moves over a tile map
with wall collision while the camera follows it and only the visible
tiles are drawn.

Available commands:
  play     - Walk a map
  maps     - Show all available maps
  inspect  - Show details of one map
  serve    - Start SSH server for remote play
  saves    - View checkpoints and sessions
  config   - Print the effective configuration

Examples:
  tilewalk play
  tilewalk play firehouse --preset relaxed
  tilewalk inspect firehouse
  tilewalk serve --ssh :2222
  tilewalk saves`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Movement preset: classic, relaxed, brisk")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilewalk/tilewalk.db", "Path to checkpoint database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagMapsDir, "maps", "", "Maps directory override")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(configCmd)
}
