package engine

import "time"

// Projectile travels in a straight line and sends the first adversary it
// meets back home.
type Projectile struct {
	Pos    Pos
	Dir    Dir
	Origin Pos // Cell it was fired from
}

// pickUpPowerItem clears the item under the player and (re)starts power mode
// at full duration.
func (s *Session) pickUpPowerItem(res *TickResult) {
	s.grid.Set(s.player.Pos, TileEmpty)
	s.powered = true
	s.powerRemaining = s.settings.PowerDuration
	res.add(Event{Kind: EventPowerPickup, Pos: s.player.Pos})
}

// decayPower counts power mode down and ends it at zero.
func (s *Session) decayPower(res *TickResult, dt time.Duration) {
	if !s.powered {
		return
	}
	s.powerRemaining -= dt
	if s.powerRemaining <= 0 {
		s.powered = false
		s.powerRemaining = 0
		res.add(Event{Kind: EventPowerExpired, Pos: s.player.Pos})
	}
}

// tickItemSpawn replaces the power item every ItemInterval, so at most one
// exists at a time.
func (s *Session) tickItemSpawn(res *TickResult, dt time.Duration) {
	s.itemTimer += dt
	if s.itemTimer < s.settings.ItemInterval {
		return
	}
	s.itemTimer = 0
	s.grid.ClearPowerItems()
	if p, ok := s.grid.PlacePowerItem(s.rng); ok {
		res.add(Event{Kind: EventItemSpawned, Pos: p})
	}
}

// tickFireCadence emits one projectile per FireInterval while powered, aimed
// along the player's facing. Nothing is fired before the player has ever
// faced a direction. The timer holds at zero while unpowered.
func (s *Session) tickFireCadence(res *TickResult, dt time.Duration) {
	if !s.powered {
		s.fireTimer = 0
		return
	}
	s.fireTimer += dt
	if s.fireTimer < s.settings.FireInterval {
		return
	}
	s.fireTimer = 0
	if s.player.Facing == DirNone {
		return
	}
	s.projectiles = append(s.projectiles, Projectile{
		Pos:    s.player.Pos,
		Dir:    s.player.Facing,
		Origin: s.player.Pos,
	})
	res.add(Event{Kind: EventProjectileFired, Pos: s.player.Pos})
}

// advanceProjectiles moves every projectile once, drops the ones the wall
// policy destroys, and resolves hits against adversaries in slot order.
func (s *Session) advanceProjectiles(res *TickResult) {
	live := s.projectiles[:0]
	for _, p := range s.projectiles {
		next := Resolve(s.grid, p.Pos, p.Dir)
		if next == p.Pos && s.destroyedByWall(p) {
			continue
		}
		p.Pos = next
		if s.hitAdversary(res, p) {
			continue
		}
		live = append(live, p)
	}
	s.projectiles = live
}

// destroyedByWall is called for a projectile the resolver refused to move.
func (s *Session) destroyedByWall(p Projectile) bool {
	switch s.settings.WallPolicy {
	case WallPolicyAnyBlock:
		return true
	default:
		return p.Pos == p.Origin
	}
}

// hitAdversary sends the first adversary on the projectile's cell home and
// awards the hit bonus. It reports whether the projectile was consumed.
func (s *Session) hitAdversary(res *TickResult, p Projectile) bool {
	for i := range s.adversaries {
		a := &s.adversaries[i]
		if a.Pos != p.Pos {
			continue
		}
		a.sendHome(s.settings.ExitDir)
		s.score += s.settings.HitPoints
		res.add(Event{Kind: EventAdversaryHit, Pos: p.Pos, Slot: a.Slot, Points: s.settings.HitPoints})
		return true
	}
	return false
}

// Powered reports whether power mode is active.
func (s *Session) Powered() bool {
	return s.powered
}

// PowerRemaining returns the time left in power mode.
func (s *Session) PowerRemaining() time.Duration {
	return s.powerRemaining
}
