package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/mazeblast/internal/engine"
)

func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestEmbeddedDefaultsAreValid(t *testing.T) {
	tests := []struct {
		id     string
		name   string
		policy engine.WallPolicy
	}{
		{MazeClassic, "Mazeblast", engine.WallPolicySpawn},
		{MazeArena, "Mazeblast Arena", engine.WallPolicyAnyBlock},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			cfg, err := decodeMaze(GetDefaultYAML(tc.id))
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("Validate() failed: %v", err)
			}
			if cfg.Name != tc.name {
				t.Errorf("Name = %q, expected %q", cfg.Name, tc.name)
			}
			s, err := cfg.Settings()
			if err != nil {
				t.Fatalf("Settings() failed: %v", err)
			}
			if s.WallPolicy != tc.policy {
				t.Errorf("WallPolicy = %v, expected %v", s.WallPolicy, tc.policy)
			}
		})
	}
}

func TestDefaultMazeConfigIsValid(t *testing.T) {
	cfg := DefaultMazeConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}

	s, err := cfg.Settings()
	if err != nil {
		t.Fatalf("Settings() failed: %v", err)
	}
	if s != engine.DefaultSettings() {
		t.Errorf("hardcoded config should match engine defaults:\n got %+v\nwant %+v", s, engine.DefaultSettings())
	}
}

func TestLoadMazeEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadMaze(MazeClassic, "")
	if err != nil {
		t.Fatalf("LoadMaze() failed: %v", err)
	}
	if len(cfg.Layout) != 15 {
		t.Errorf("expected the 15-row classic layout, got %d rows", len(cfg.Layout))
	}
	if cfg.Timing.StepInterval != 120*time.Millisecond {
		t.Errorf("StepInterval = %v, expected 120ms", cfg.Timing.StepInterval)
	}
}

func TestLoadMazeUnknownID(t *testing.T) {
	isolate(t)

	if _, err := LoadMaze("nope", ""); err == nil {
		t.Error("expected error for unknown maze")
	}
}

func TestLoadMazeSearchOrder(t *testing.T) {
	dir := isolate(t)
	home := os.Getenv("HOME")

	writeFile(t, filepath.Join(dir, "configs", "mazeblast.yaml"), "name: Local\n")
	cfg, err := LoadMaze(MazeClassic, "")
	if err != nil {
		t.Fatalf("LoadMaze() failed: %v", err)
	}
	if cfg.Name != "Local" {
		t.Errorf("expected local config, got %q", cfg.Name)
	}

	writeFile(t, filepath.Join(home, ".mazeblast", "configs", "mazeblast.yaml"), "name: User\n")
	cfg, err = LoadMaze(MazeClassic, "")
	if err != nil {
		t.Fatalf("LoadMaze() failed: %v", err)
	}
	if cfg.Name != "User" {
		t.Errorf("expected user config to win over local, got %q", cfg.Name)
	}

	custom := filepath.Join(dir, "custom.yaml")
	writeFile(t, custom, "name: Custom\n")
	cfg, err = LoadMaze(MazeClassic, custom)
	if err != nil {
		t.Fatalf("LoadMaze() failed: %v", err)
	}
	if cfg.Name != "Custom" {
		t.Errorf("expected custom config to win, got %q", cfg.Name)
	}
}

func TestLoadMazeBrokenLocalFallsThrough(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "configs", "mazeblast.yaml"), "session: [not, a, map\n")

	cfg, err := LoadMaze(MazeClassic, "")
	if err != nil {
		t.Fatalf("LoadMaze() failed: %v", err)
	}
	if cfg.Name != "Mazeblast" || len(cfg.Layout) != 15 {
		t.Errorf("expected embedded classic config, got %q with %d rows", cfg.Name, len(cfg.Layout))
	}
}

func TestLoadMazeFilePartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	writeFile(t, path, `
power:
  duration: 9s
layout:
  - "#####"
  - "#P.G#"
  - "#####"
`)

	cfg, err := LoadMazeFile(path)
	if err != nil {
		t.Fatalf("LoadMazeFile() failed: %v", err)
	}
	if cfg.Power.Duration != 9*time.Second {
		t.Errorf("Duration = %v, expected 9s", cfg.Power.Duration)
	}
	if cfg.Power.FireInterval != 300*time.Millisecond {
		t.Errorf("omitted FireInterval should keep default, got %v", cfg.Power.FireInterval)
	}
	if cfg.Session.Lives != 3 {
		t.Errorf("omitted Lives should keep default, got %d", cfg.Session.Lives)
	}
	if len(cfg.Layout) != 3 {
		t.Errorf("layout should be replaced, got %d rows", len(cfg.Layout))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() failed: %v", err)
	}
}

func TestLoadMazeFileErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "power:\n  duration: soon\n")

	if _, err := LoadMazeFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadMazeFile(bad); err == nil {
		t.Error("expected error for unparseable duration")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultMazeConfig()
	cfg.Adversaries.ExitDir = "sideways"
	cfg.Layout = []string{"#..G#"}
	cfg.Timing.StepInterval = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	if !errors.Is(err, engine.ErrNoPlayerSpawn) {
		t.Errorf("expected ErrNoPlayerSpawn in %v", err)
	}
	for _, want := range []string{"exit_dir", "step_interval"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}
}

func TestSettingsRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MazeConfig)
	}{
		{"wall policy", func(c *MazeConfig) { c.Projectiles.WallPolicy = "bounce" }},
		{"no exit", func(c *MazeConfig) { c.Adversaries.ExitDir = "none" }},
		{"zero lives", func(c *MazeConfig) { c.Session.Lives = 0 }},
		{"redirect chance", func(c *MazeConfig) { c.Adversaries.RedirectChance = 1.5 }},
		{"fire interval", func(c *MazeConfig) { c.Power.FireInterval = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMazeConfig()
			tc.mutate(&cfg)
			if _, err := cfg.Settings(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"HARD", DifficultyHard, false},
		{" normal ", DifficultyNormal, false},
		{"fixed", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestApplyMazePreset(t *testing.T) {
	base := DefaultMazeConfig()

	easy := DefaultMazeConfig()
	ApplyMazePreset(&easy, DifficultyEasy)
	if easy.Session.Lives != 5 || easy.Power.Duration != 10*time.Second {
		t.Errorf("easy: lives=%d duration=%v", easy.Session.Lives, easy.Power.Duration)
	}

	hard := DefaultMazeConfig()
	ApplyMazePreset(&hard, DifficultyHard)
	if hard.Session.Lives != 2 || hard.Adversaries.RedirectChance <= base.Adversaries.RedirectChance {
		t.Errorf("hard: lives=%d redirect=%v", hard.Session.Lives, hard.Adversaries.RedirectChance)
	}

	normal := DefaultMazeConfig()
	ApplyMazePreset(&normal, DifficultyNormal)
	if normal.Session != base.Session || normal.Power != base.Power || normal.Adversaries != base.Adversaries {
		t.Error("normal preset should not change the config")
	}

	for _, p := range Presets {
		cfg := DefaultMazeConfig()
		ApplyMazePreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s preset produced invalid config: %v", p, err)
		}
	}
}
