package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazeblast/internal/config"
	"github.com/vovakirdan/mazeblast/internal/core"
	"github.com/vovakirdan/mazeblast/internal/games/mazeblast"
	"github.com/vovakirdan/mazeblast/internal/platform/tui"
	"github.com/vovakirdan/mazeblast/internal/registry"
	"github.com/vovakirdan/mazeblast/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <maze>",
	Short: "Play a maze",
	Long: `Start playing the specified maze.

Controls:
  Arrows/WASD   - Steer (turns are buffered until the corridor opens)
  Enter/Space   - Start, or restart after game over
  P             - Pause
  R             - Restart (after game over)
  Esc/B         - Leave (when idle, paused or after game over)
  Ctrl+S        - Save a text screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - More lives, longer power, gentler adversaries
  normal - The maze as configured
  hard   - Fewer lives, shorter power, restless adversaries

Examples:
  mazeblast play mazeblast
  mazeblast play mazeblast_arena --difficulty hard
  mazeblast play mazeblast --config ./my-maze.yaml
  mazeblast play mazeblast --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// applyGameFlags hands --config and --difficulty to the maze package.
func applyGameFlags() error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	mazeblast.SetConfigPath(flagConfig)
	mazeblast.SetDifficultyPreset(preset)
	return nil
}

// terminalConfig builds the runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown maze %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'mazeblast list' to see available mazes.")
		os.Exit(1)
	}
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := mustLogger(true)
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating maze: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	result, runErr := tui.Run(game, store, logger, terminalConfig())
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running maze: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
	if result.State.Started {
		fmt.Printf("Score: %d  Level: %d\n", result.State.Score, result.State.Level)
	}
}
