package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// WallPolicy decides when a blocked projectile is destroyed.
type WallPolicy uint8

const (
	// WallPolicySpawn destroys a projectile only when it is blocked while
	// still on the cell it was fired from. A projectile that travelled and was
	// blocked later stays where it stopped.
	WallPolicySpawn WallPolicy = iota

	// WallPolicyAnyBlock destroys a projectile on any tick the resolver
	// refuses to move it.
	WallPolicyAnyBlock
)

func (w WallPolicy) String() string {
	switch w {
	case WallPolicySpawn:
		return "spawn"
	case WallPolicyAnyBlock:
		return "any"
	default:
		return "unknown"
	}
}

// ParseWallPolicy parses "spawn" or "any". An empty string selects WallPolicySpawn.
func ParseWallPolicy(s string) (WallPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "spawn":
		return WallPolicySpawn, nil
	case "any":
		return WallPolicyAnyBlock, nil
	default:
		return WallPolicySpawn, fmt.Errorf("engine: unknown wall policy %q", s)
	}
}

// Settings are the tunable rules of a session.
type Settings struct {
	Lives          int           // Lives at the start of a session
	PelletPoints   int           // Score per pellet
	HitPoints      int           // Score per adversary hit by a projectile
	PowerDuration  time.Duration // Length of power mode after a pickup
	FireInterval   time.Duration // Projectile cadence while powered
	ItemInterval   time.Duration // Time between power item spawns
	RedirectChance float64       // Per-tick chance an adversary picks a new heading
	ExitDir        Dir           // Heading given to adversaries sent home
	WallPolicy     WallPolicy
}

// DefaultSettings returns the classic rules.
func DefaultSettings() Settings {
	return Settings{
		Lives:          3,
		PelletPoints:   10,
		HitPoints:      50,
		PowerDuration:  7 * time.Second,
		FireInterval:   300 * time.Millisecond,
		ItemInterval:   20 * time.Second,
		RedirectChance: 0.15,
		ExitDir:        DirUp,
		WallPolicy:     WallPolicySpawn,
	}
}

// Validate checks that the settings describe a playable session.
func (s Settings) Validate() error {
	var errs []error
	if s.Lives < 1 {
		errs = append(errs, fmt.Errorf("lives must be at least 1, got %d", s.Lives))
	}
	if s.PelletPoints < 0 || s.HitPoints < 0 {
		errs = append(errs, fmt.Errorf("points must not be negative"))
	}
	if s.PowerDuration <= 0 {
		errs = append(errs, fmt.Errorf("power duration must be positive, got %v", s.PowerDuration))
	}
	if s.FireInterval <= 0 {
		errs = append(errs, fmt.Errorf("fire interval must be positive, got %v", s.FireInterval))
	}
	if s.ItemInterval <= 0 {
		errs = append(errs, fmt.Errorf("item interval must be positive, got %v", s.ItemInterval))
	}
	if s.RedirectChance < 0 || s.RedirectChance > 1 {
		errs = append(errs, fmt.Errorf("redirect chance must be within [0,1], got %v", s.RedirectChance))
	}
	if s.ExitDir == DirNone || s.ExitDir > DirRight {
		errs = append(errs, fmt.Errorf("exit direction must be a unit direction, got %v", s.ExitDir))
	}
	if s.WallPolicy > WallPolicyAnyBlock {
		errs = append(errs, fmt.Errorf("unknown wall policy %d", s.WallPolicy))
	}
	if len(errs) > 0 {
		return fmt.Errorf("engine: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}
