package engine

import (
	"testing"
	"time"
)

// powerLayout gives the player a dead-end lane; the adversary is walled in.
var powerLayout = []string{
	"#######",
	"#P    #",
	"#######",
	"#G.####",
	"#######",
}

func poweredSession(t *testing.T, settings Settings) *Session {
	t.Helper()
	s := startedSession(t, powerLayout, settings, &scriptedRand{})
	s.grid.Set(P(1, 2), TilePowerItem)
	s.SetDesiredDirection(DirRight)
	return s
}

func TestPowerPickup(t *testing.T) {
	s := poweredSession(t, calmSettings())

	res := s.Tick(frame)

	if !res.Has(EventPowerPickup) {
		t.Fatal("expected power pickup event")
	}
	if !s.Powered() {
		t.Fatal("expected power mode")
	}
	if s.PowerRemaining() != 7*time.Second {
		t.Errorf("pickup tick should not decay power, remaining %v", s.PowerRemaining())
	}
	if s.grid.At(P(1, 2)) != TileEmpty {
		t.Error("power item should be consumed")
	}
}

func TestPowerExpires(t *testing.T) {
	s := poweredSession(t, calmSettings())
	s.Tick(frame)

	for i := 0; i < 69; i++ {
		if res := s.Tick(frame); res.Has(EventPowerExpired) {
			t.Fatalf("power expired early on tick %d", i+2)
		}
	}
	if !s.Powered() || s.PowerRemaining() != frame {
		t.Fatalf("expected %v left, got powered=%v remaining=%v", frame, s.Powered(), s.PowerRemaining())
	}

	res := s.Tick(frame)
	if !res.Has(EventPowerExpired) {
		t.Error("expected power expired event")
	}
	if s.Powered() || s.PowerRemaining() != 0 {
		t.Errorf("expected power off at zero, got powered=%v remaining=%v", s.Powered(), s.PowerRemaining())
	}
}

func TestPickupWhilePoweredRefreshes(t *testing.T) {
	s := poweredSession(t, calmSettings())
	for i := 0; i < 10; i++ {
		s.Tick(frame)
	}
	if s.player.Pos != P(1, 5) {
		t.Fatalf("expected player parked at (1,5), got %v", s.player.Pos)
	}

	s.grid.Set(P(1, 5), TilePowerItem)
	s.Tick(frame)

	if s.PowerRemaining() != 7*time.Second {
		t.Errorf("expected full duration after second pickup, got %v", s.PowerRemaining())
	}
}

func TestFireCadence(t *testing.T) {
	s := poweredSession(t, calmSettings())

	s.Tick(frame)
	s.Tick(frame)
	if len(s.projectiles) != 0 {
		t.Fatalf("fired too early: %d projectiles", len(s.projectiles))
	}

	res := s.Tick(frame)
	if !res.Has(EventProjectileFired) {
		t.Fatal("expected a projectile on the third powered tick")
	}
	if len(s.projectiles) != 1 {
		t.Fatalf("expected 1 projectile, got %d", len(s.projectiles))
	}
	p := s.projectiles[0]
	if p.Origin != P(1, 4) || p.Pos != P(1, 5) || p.Dir != DirRight {
		t.Errorf("unexpected projectile %+v", p)
	}
	snap := s.Snapshot()
	if !snap.ProjectileAt(P(1, 5)) || snap.ProjectileAt(P(1, 4)) {
		t.Error("snapshot should show the projectile at (1,5) only")
	}
}

func TestNoFireWhileUnpowered(t *testing.T) {
	s := startedSession(t, powerLayout, calmSettings(), &scriptedRand{})
	s.SetDesiredDirection(DirRight)

	for i := 0; i < 20; i++ {
		if res := s.Tick(frame); res.Has(EventProjectileFired) {
			t.Fatalf("fired without power on tick %d", i+1)
		}
	}
	if s.fireTimer != 0 {
		t.Errorf("fire timer should hold at zero, got %v", s.fireTimer)
	}
}

func TestNoFireWithoutFacing(t *testing.T) {
	s := startedSession(t, powerLayout, calmSettings(), &scriptedRand{})
	s.grid.Set(P(1, 1), TilePowerItem)

	for i := 0; i < 10; i++ {
		s.Tick(frame)
	}
	if !s.Powered() {
		t.Fatal("expected power mode from the item under the spawn")
	}
	if len(s.projectiles) != 0 {
		t.Errorf("player never faced a direction, got %d projectiles", len(s.projectiles))
	}
}

func TestProjectileWallPolicy(t *testing.T) {
	tests := []struct {
		name   string
		policy WallPolicy
		after4 int
		after6 int
	}{
		{"spawn keeps travelled projectile", WallPolicySpawn, 1, 1},
		{"any block destroys", WallPolicyAnyBlock, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			settings := calmSettings()
			settings.WallPolicy = tc.policy
			s := poweredSession(t, settings)

			for i := 0; i < 4; i++ {
				s.Tick(frame)
			}
			if len(s.projectiles) != tc.after4 {
				t.Fatalf("after 4 ticks: expected %d projectiles, got %d", tc.after4, len(s.projectiles))
			}

			s.Tick(frame)
			res := s.Tick(frame)
			if !res.Has(EventProjectileFired) {
				t.Fatal("expected a second projectile on tick 6")
			}
			if len(s.projectiles) != tc.after6 {
				t.Fatalf("after 6 ticks: expected %d projectiles, got %d", tc.after6, len(s.projectiles))
			}
			for _, p := range s.projectiles {
				if p.Pos != P(1, 5) {
					t.Errorf("stuck projectile should rest at (1,5), got %v", p.Pos)
				}
			}
		})
	}
}

var shootingLayout = []string{
	"#########",
	"#P.  GG #",
	"#########",
}

func TestProjectileHitSendsAdversaryHome(t *testing.T) {
	s := startedSession(t, shootingLayout, calmSettings(), &scriptedRand{})
	s.adversaries[0].Pos = P(1, 4)
	s.adversaries[1].Pos = P(1, 4)
	s.projectiles = []Projectile{{Pos: P(1, 3), Dir: DirRight, Origin: P(1, 3)}}

	res := s.Tick(frame)

	if !res.Has(EventAdversaryHit) {
		t.Fatal("expected a hit")
	}
	if s.Score() != 50 {
		t.Errorf("expected 50 points, got %d", s.Score())
	}
	if len(s.projectiles) != 0 {
		t.Errorf("projectile should be consumed, got %d", len(s.projectiles))
	}
	if s.adversaries[0].Pos != P(1, 5) || s.adversaries[0].Dir != DirUp {
		t.Errorf("slot 0 should be home facing up, got %+v", s.adversaries[0])
	}
	if s.adversaries[1].Pos != P(1, 4) {
		t.Errorf("slot 1 should not be hit, got %+v", s.adversaries[1])
	}
	for _, e := range res.Events {
		if e.Kind == EventAdversaryHit && (e.Slot != 0 || e.Points != 50) {
			t.Errorf("unexpected hit event %v", e)
		}
	}
}

func TestProjectileTravelsBeforeHitting(t *testing.T) {
	s := startedSession(t, shootingLayout, calmSettings(), &scriptedRand{})
	s.adversaries[0].Pos = P(1, 4)
	s.projectiles = []Projectile{{Pos: P(1, 2), Dir: DirRight, Origin: P(1, 2)}}

	if res := s.Tick(frame); res.Has(EventAdversaryHit) {
		t.Fatal("hit one cell too early")
	}
	if s.projectiles[0].Pos != P(1, 3) {
		t.Fatalf("expected projectile at (1,3), got %v", s.projectiles[0].Pos)
	}
	if res := s.Tick(frame); !res.Has(EventAdversaryHit) {
		t.Error("expected a hit on the second tick")
	}
}

func TestItemSpawnCadence(t *testing.T) {
	settings := calmSettings()
	settings.ItemInterval = 3 * frame
	rng := &scriptedRand{ints: []int{3, 5}}
	s := startedSession(t, corridorLayout, settings, rng)

	s.Tick(frame)
	s.Tick(frame)
	res := s.Tick(frame)

	if !res.Has(EventItemSpawned) {
		t.Fatal("expected an item on the third tick")
	}
	if rng.lastN != 7 {
		t.Errorf("expected 7 candidate cells, got %d", rng.lastN)
	}
	if s.grid.At(P(1, 4)) != TilePowerItem {
		t.Error("expected item at (1,4)")
	}

	for i := 0; i < 3; i++ {
		s.Tick(frame)
	}
	if s.grid.At(P(1, 4)) != TileEmpty || s.grid.At(P(1, 6)) != TilePowerItem {
		t.Error("expected the item to move to (1,6)")
	}
	if n := s.grid.Count(TilePowerItem); n != 1 {
		t.Errorf("expected exactly one item, got %d", n)
	}
}
