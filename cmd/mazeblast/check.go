package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazeblast/internal/config"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a maze config file",
	Long: `Load a maze config YAML the way play does and report every problem.

Missing keys fall back to the built-in defaults, so a file may hold only
a layout. On success the maze size, pellet count and spawns are printed.

Examples:
  mazeblast check ./my-maze.yaml
  mazeblast play mazeblast --config ./my-maze.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	if err := checkMaze(os.Stdout, args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
		os.Exit(1)
	}
}

// checkMaze validates the file at path and writes a summary to w.
func checkMaze(w io.Writer, path string) error {
	cfg, err := config.LoadMazeFile(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	layout, err := cfg.ParseLayout()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s: ok\n", cfg.Name)
	fmt.Fprintf(w, "  size:        %d x %d\n", layout.Cols(), layout.Rows())
	fmt.Fprintf(w, "  pellets:     %d\n", layout.PelletCount())
	fmt.Fprintf(w, "  player:      row %d, col %d\n", layout.PlayerSpawn.Row, layout.PlayerSpawn.Col)
	fmt.Fprintf(w, "  adversaries: %d\n", len(layout.AdversarySpawns))
	fmt.Fprintf(w, "  lives:       %d\n", cfg.Session.Lives)
	fmt.Fprintf(w, "  wall policy: %s\n", cfg.Projectiles.WallPolicy)
	return nil
}
