package engine

import "time"

// Snapshot is a read-only copy of the session, safe to keep and inspect
// after later ticks. Renderers and HUDs read this, never the Session.
type Snapshot struct {
	Tick             uint64
	State            Lifecycle
	Score            int
	Lives            int
	Level            int
	PelletsRemaining int
	Powered          bool
	PowerRemaining   time.Duration

	Tiles       [][]Tile
	Player      Player
	Adversaries []Adversary
	Projectiles []Projectile
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	adversaries := make([]Adversary, len(s.adversaries))
	copy(adversaries, s.adversaries)
	projectiles := make([]Projectile, len(s.projectiles))
	copy(projectiles, s.projectiles)

	return Snapshot{
		Tick:             s.tick,
		State:            s.state,
		Score:            s.score,
		Lives:            s.lives,
		Level:            s.level,
		PelletsRemaining: s.pelletsRemaining,
		Powered:          s.powered,
		PowerRemaining:   s.powerRemaining,
		Tiles:            s.grid.Matrix(),
		Player:           s.player,
		Adversaries:      adversaries,
		Projectiles:      projectiles,
	}
}

// Rows returns the maze height.
func (sn Snapshot) Rows() int {
	return len(sn.Tiles)
}

// Cols returns the maze width.
func (sn Snapshot) Cols() int {
	if len(sn.Tiles) == 0 {
		return 0
	}
	return len(sn.Tiles[0])
}

// TileAt returns the tile at p, or TileWall outside the maze.
func (sn Snapshot) TileAt(p Pos) Tile {
	if p.Row < 0 || p.Row >= sn.Rows() || p.Col < 0 || p.Col >= sn.Cols() {
		return TileWall
	}
	return sn.Tiles[p.Row][p.Col]
}

// AdversaryAt returns the slot of the first adversary on p.
func (sn Snapshot) AdversaryAt(p Pos) (int, bool) {
	for _, a := range sn.Adversaries {
		if a.Pos == p {
			return a.Slot, true
		}
	}
	return 0, false
}

// ProjectileAt reports whether a projectile occupies p.
func (sn Snapshot) ProjectileAt(p Pos) bool {
	for _, pr := range sn.Projectiles {
		if pr.Pos == p {
			return true
		}
	}
	return false
}
