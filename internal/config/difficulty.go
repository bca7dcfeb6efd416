package config

import (
	"fmt"
	"strings"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the valid presets in order of difficulty.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset parses a preset name. An empty name selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyMazePreset adjusts lives, power timings and adversary aggression.
// Normal leaves the loaded config untouched.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Session.Lives = 5
		cfg.Power.Duration += 3 * time.Second
		cfg.Power.ItemInterval = 15 * time.Second
		cfg.Adversaries.RedirectChance = 0.10
	case DifficultyHard:
		cfg.Session.Lives = 2
		cfg.Power.Duration = 5 * time.Second
		cfg.Power.ItemInterval = 25 * time.Second
		cfg.Adversaries.RedirectChance = 0.30
	}
}
