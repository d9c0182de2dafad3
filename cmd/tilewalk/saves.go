package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilewalk/internal/storage"
)

var (
	flagSavesUser  string
	flagSavesAll   bool
	flagSavesClear bool
	flagSavesLimit int
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "Show checkpoints and recent sessions",
	Long: `Display the saved checkpoints and the most recent play sessions.

Examples:
  tilewalk saves
  tilewalk saves --all
  tilewalk saves --user ana --clear`,
	Args: cobra.NoArgs,
	Run:  runSaves,
}

func init() {
	savesCmd.Flags().StringVar(&flagSavesUser, "user", "", "Player name (default: $USER)")
	savesCmd.Flags().BoolVar(&flagSavesAll, "all", false, "Show checkpoints of every player")
	savesCmd.Flags().BoolVar(&flagSavesClear, "clear", false, "Delete the player's checkpoints")
	savesCmd.Flags().IntVar(&flagSavesLimit, "limit", 10, "Number of recent sessions to show")
}

func runSaves(_ *cobra.Command, _ []string) {
	user := flagSavesUser
	if user == "" {
		user = currentUser()
	}

	// Open checkpoint storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening checkpoint database: %v", err)
	}
	defer store.Close()

	if flagSavesClear {
		n, err := store.ClearCheckpoints(user)
		if err != nil {
			store.Close()
			fail("%v", err)
		}
		fmt.Printf("Deleted %d checkpoints for %s.\n", n, user)
		return
	}

	filter := user
	if flagSavesAll {
		filter = ""
	}
	checkpoints, err := store.ListCheckpoints(filter)
	if err != nil {
		store.Close()
		fail("retrieving checkpoints: %v", err)
	}

	if flagSavesAll {
		fmt.Println("Checkpoints - all players")
	} else {
		fmt.Printf("Checkpoints - %s\n", user)
	}
	fmt.Println()
	if len(checkpoints) == 0 {
		fmt.Println("  No checkpoints saved yet.")
	} else {
		fmt.Printf("  %-12s  %-16s  %-12s  %-6s  %s\n", "Player", "Map", "Position", "Facing", "Saved")
		fmt.Printf("  %-12s  %-16s  %-12s  %-6s  %s\n", "------", "---", "--------", "------", "-----")
		for _, cp := range checkpoints {
			pos := fmt.Sprintf("%.0f,%.0f", cp.X, cp.Y)
			fmt.Printf("  %-12s  %-16s  %-12s  %-6s  %s\n",
				cp.User, cp.MapID, pos, cp.Facing, cp.UpdatedAt.Format("Jan 02 15:04"))
		}
	}

	sessions, err := store.RecentSessions(flagSavesLimit)
	if err != nil {
		store.Close()
		fail("retrieving sessions: %v", err)
	}

	fmt.Println()
	fmt.Println("Recent sessions")
	fmt.Println()
	if len(sessions) == 0 {
		fmt.Println("  No sessions recorded yet.")
		return
	}
	fmt.Printf("  %-12s  %-16s  %8s  %8s  %s\n", "Player", "Map", "Ticks", "Walked", "Ended")
	fmt.Printf("  %-12s  %-16s  %8s  %8s  %s\n", "------", "---", "-----", "------", "-----")
	for _, s := range sessions {
		fmt.Printf("  %-12s  %-16s  %8d  %8.0f  %s\n",
			s.User, s.MapID, s.Ticks, s.Distance, s.EndedAt.Format("Jan 02 15:04"))
	}
}
