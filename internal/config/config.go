// Package config provides YAML-based maze configuration loading and
// difficulty presets for mazeblast.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/mazeblast/internal/engine"
)

// MazeConfig contains everything needed to build a session for one maze.
type MazeConfig struct {
	Name        string           `yaml:"name"`
	Session     SessionConfig    `yaml:"session"`
	Power       PowerConfig      `yaml:"power"`
	Adversaries AdversaryConfig  `yaml:"adversaries"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Timing      TimingConfig     `yaml:"timing"`
	Layout      []string         `yaml:"layout"`
}

// SessionConfig defines lives and scoring.
type SessionConfig struct {
	Lives        int `yaml:"lives"`
	PelletPoints int `yaml:"pellet_points"`
	HitPoints    int `yaml:"hit_points"`
}

// PowerConfig defines power mode and item timings.
type PowerConfig struct {
	Duration     time.Duration `yaml:"duration"`
	FireInterval time.Duration `yaml:"fire_interval"`
	ItemInterval time.Duration `yaml:"item_interval"`
}

// AdversaryConfig defines adversary behavior.
type AdversaryConfig struct {
	RedirectChance float64 `yaml:"redirect_chance"` // Per-tick probability, 0.0 to 1.0
	ExitDir        string  `yaml:"exit_dir"`        // Heading after being sent home
}

// ProjectileConfig defines projectile behavior.
type ProjectileConfig struct {
	WallPolicy string `yaml:"wall_policy"` // "spawn" or "any"
}

// TimingConfig defines how wall time maps to ticks.
type TimingConfig struct {
	StepInterval time.Duration `yaml:"step_interval"` // Wall time per tick
	MaxDelta     time.Duration `yaml:"max_delta"`     // Upper bound for one tick's delta
}

// Settings converts the config into engine rules.
func (c MazeConfig) Settings() (engine.Settings, error) {
	exit, err := engine.ParseDir(c.Adversaries.ExitDir)
	if err != nil {
		return engine.Settings{}, fmt.Errorf("config: adversaries.exit_dir: %w", err)
	}
	policy, err := engine.ParseWallPolicy(c.Projectiles.WallPolicy)
	if err != nil {
		return engine.Settings{}, fmt.Errorf("config: projectiles.wall_policy: %w", err)
	}

	s := engine.Settings{
		Lives:          c.Session.Lives,
		PelletPoints:   c.Session.PelletPoints,
		HitPoints:      c.Session.HitPoints,
		PowerDuration:  c.Power.Duration,
		FireInterval:   c.Power.FireInterval,
		ItemInterval:   c.Power.ItemInterval,
		RedirectChance: c.Adversaries.RedirectChance,
		ExitDir:        exit,
		WallPolicy:     policy,
	}
	if err := s.Validate(); err != nil {
		return engine.Settings{}, fmt.Errorf("config: %w", err)
	}
	return s, nil
}

// ParseLayout parses the maze rows.
func (c MazeConfig) ParseLayout() (*engine.Layout, error) {
	l, err := engine.ParseLayout(c.Layout)
	if err != nil {
		return nil, fmt.Errorf("config: layout: %w", err)
	}
	return l, nil
}

// Validate checks everything a session needs, so a bad maze fails at startup
// instead of mid-game.
func (c MazeConfig) Validate() error {
	var errs []error
	if _, err := c.Settings(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.ParseLayout(); err != nil {
		errs = append(errs, err)
	}
	if c.Timing.StepInterval <= 0 {
		errs = append(errs, fmt.Errorf("config: timing.step_interval must be positive, got %v", c.Timing.StepInterval))
	}
	if c.Timing.MaxDelta < 0 {
		errs = append(errs, fmt.Errorf("config: timing.max_delta must not be negative, got %v", c.Timing.MaxDelta))
	}
	return errors.Join(errs...)
}
