package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazeblast/internal/platform/tui"
	"github.com/vovakirdan/mazeblast/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a maze picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a maze and Tab to
browse high scores. Leaving a maze with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select maze
  Tab          - High scores
  Q            - Quit

Examples:
  mazeblast menu
  mazeblast menu --difficulty easy
  mazeblast menu --fps 30 --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := mustLogger(true)
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	notice := ""
	for {
		menuResult, err := tui.RunMenu(store, cfg, notice)
		if err != nil {
			logger.Error("menu failed", "error", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config
		notice = ""

		switch {
		case menuResult.Quit:
			return

		case menuResult.WantsScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
				return
			}
			if !goBack {
				return
			}
			continue
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			notice = err.Error()
			continue
		}

		result, err := tui.Run(game, store, logger, cfg)
		if err != nil {
			logger.Error("cannot run maze", "game", menuResult.GameID, "error", err)
			notice = fmt.Sprintf("Cannot load %s: %v", menuResult.GameID, err)
			continue
		}
		if !result.BackToMenu {
			return
		}
	}
}
