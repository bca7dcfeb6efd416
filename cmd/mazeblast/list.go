package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazeblast/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available mazes",
	Long:  `Shows every maze that can be played or served.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No mazes available.")
		return
	}

	fmt.Println("Available mazes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'mazeblast play <id>' to play a maze.")
}
