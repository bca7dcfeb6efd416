package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// Maze ids with embedded defaults.
const (
	MazeClassic = "mazeblast"
	MazeArena   = "mazeblast_arena"
)

// DefaultMazeConfig returns the classic rules on a small fallback maze.
// Loaded files are decoded on top of this, so omitted fields keep these values.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Name: "Mazeblast",
		Session: SessionConfig{
			Lives:        3,
			PelletPoints: 10,
			HitPoints:    50,
		},
		Power: PowerConfig{
			Duration:     7 * time.Second,
			FireInterval: 300 * time.Millisecond,
			ItemInterval: 20 * time.Second,
		},
		Adversaries: AdversaryConfig{
			RedirectChance: 0.15,
			ExitDir:        "up",
		},
		Projectiles: ProjectileConfig{
			WallPolicy: "spawn",
		},
		Timing: TimingConfig{
			StepInterval: 120 * time.Millisecond,
			MaxDelta:     250 * time.Millisecond,
		},
		Layout: []string{
			"###########",
			"#....#....#",
			"#.##.#.##.#",
			"  ... ...  ",
			"#.##.G.##.#",
			"#....P....#",
			"###########",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a maze.
func GetDefaultYAML(mazeID string) []byte {
	switch mazeID {
	case MazeClassic:
		return defaultClassicYAML
	case MazeArena:
		return defaultArenaYAML
	default:
		return nil
	}
}
