// mazeblast is a terminal maze arcade: clear every pellet while adversaries
// roam the corridors, and pick up power items to shoot back.
//
// Usage:
//
//	mazeblast list              - List available mazes
//	mazeblast play <maze>       - Play a maze
//	mazeblast menu              - Pick mazes interactively
//	mazeblast serve             - Start SSH server for remote play
//	mazeblast scores <maze>     - Show high scores for a maze
//	mazeblast check <file>      - Validate a maze config file
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible play
//	--db <path>           - Set database path (default: ~/.mazeblast/scores.db)
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/mazeblast/internal/games/mazeblast"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazeblast",
	Short: "Mazeblast - a maze arcade for your terminal",
	Long: `Mazeblast is a tick-based maze arcade played in the terminal.

Eat every pellet to clear the level. Adversaries wander the maze and
cost you a life on contact. Power items let you fire projectiles that
send adversaries home for bonus points.

Available commands:
  list     - Show all available mazes
  play     - Play a specific maze directly
  menu     - Interactive maze picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  check    - Validate a maze config file

Examples:
  mazeblast list
  mazeblast play mazeblast
  mazeblast play mazeblast_arena --difficulty hard
  mazeblast menu
  mazeblast serve --ssh :2222
  mazeblast scores mazeblast`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazeblast/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(checkCmd)
}
