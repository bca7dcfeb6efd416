package engine

import (
	"testing"
	"time"
)

// scriptedRand replays fixed values. Once exhausted, Float64 returns 1 (never
// redirect) and Intn returns 0.
type scriptedRand struct {
	floats []float64
	ints   []int
	lastN  int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 1
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Intn(n int) int {
	r.lastN = n
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

// gridFrom builds a grid from glyph rows: '#' wall, '.' pellet, 'o' power item,
// anything else empty.
func gridFrom(rows ...string) *Grid {
	g := NewGrid(len(rows), len(rows[0]))
	for r, line := range rows {
		for c, ch := range line {
			switch ch {
			case '#':
				g.Set(P(r, c), TileWall)
			case '.':
				g.Set(P(r, c), TilePellet)
			case 'o':
				g.Set(P(r, c), TilePowerItem)
			}
		}
	}
	return g
}

// corridorLayout is a single corridor. The adversary at (1,7) faces a wall
// and, with redirects disabled, never leaves home.
var corridorLayout = []string{
	"#########",
	"#P     G#",
	"#.#######",
	"#########",
}

// calmSettings disables random redirects so adversaries follow their heading.
func calmSettings() Settings {
	s := DefaultSettings()
	s.RedirectChance = 0
	return s
}

func mustLayout(t *testing.T, rows []string) *Layout {
	t.Helper()
	l, err := ParseLayout(rows)
	if err != nil {
		t.Fatalf("ParseLayout() failed: %v", err)
	}
	return l
}

func startedSession(t *testing.T, rows []string, settings Settings, rng Rand) *Session {
	t.Helper()
	s, err := NewSession(mustLayout(t, rows), settings, rng)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	return s
}

const frame = 100 * time.Millisecond
