package engine

import (
	"errors"
	"fmt"
)

// Layout glyphs.
const (
	GlyphWall      = '#'
	GlyphPellet    = '.'
	GlyphEmpty     = ' '
	GlyphEmptyAlt  = '_'
	GlyphPlayer    = 'P'
	GlyphAdversary = 'G'
)

// Layout parse errors. Returned errors wrap one of these with the offending
// row and column.
var (
	ErrEmptyLayout          = errors.New("layout has no rows")
	ErrRaggedLayout         = errors.New("layout rows differ in length")
	ErrUnknownTile          = errors.New("unknown layout glyph")
	ErrNoPlayerSpawn        = errors.New("layout has no player spawn")
	ErrMultiplePlayerSpawns = errors.New("layout has more than one player spawn")
	ErrNoAdversarySpawn     = errors.New("layout has no adversary spawn")
	ErrNoPellets            = errors.New("layout has no pellets")
)

// Layout is the parsed, immutable maze description. Every level and every
// full reset regenerates its grid from the same layout.
type Layout struct {
	base            *Grid
	PlayerSpawn     Pos
	AdversarySpawns []Pos
}

// ParseLayout parses rows of glyphs into a Layout.
// It fails fast on ragged rows, unknown glyphs, missing or duplicate spawns,
// and mazes that could never be cleared.
func ParseLayout(rows []string) (*Layout, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("engine: %w", ErrEmptyLayout)
	}

	cols := len([]rune(rows[0]))
	if cols == 0 {
		return nil, fmt.Errorf("engine: row 0 is empty: %w", ErrEmptyLayout)
	}

	l := &Layout{base: NewGrid(len(rows), cols)}
	playerFound := false

	for r, line := range rows {
		cells := []rune(line)
		if len(cells) != cols {
			return nil, fmt.Errorf("engine: row %d has %d cells, want %d: %w", r, len(cells), cols, ErrRaggedLayout)
		}
		for c, ch := range cells {
			p := Pos{Row: r, Col: c}
			switch ch {
			case GlyphWall:
				l.base.Set(p, TileWall)
			case GlyphPellet:
				l.base.Set(p, TilePellet)
			case GlyphEmpty, GlyphEmptyAlt:
				l.base.Set(p, TileEmpty)
			case GlyphPlayer:
				if playerFound {
					return nil, fmt.Errorf("engine: second player spawn at %v: %w", p, ErrMultiplePlayerSpawns)
				}
				playerFound = true
				l.PlayerSpawn = p
				l.base.Set(p, TileEmpty)
			case GlyphAdversary:
				l.AdversarySpawns = append(l.AdversarySpawns, p)
				l.base.Set(p, TileEmpty)
			default:
				return nil, fmt.Errorf("engine: glyph %q at %v: %w", ch, p, ErrUnknownTile)
			}
		}
	}

	if !playerFound {
		return nil, fmt.Errorf("engine: %w", ErrNoPlayerSpawn)
	}
	if len(l.AdversarySpawns) == 0 {
		return nil, fmt.Errorf("engine: %w", ErrNoAdversarySpawn)
	}
	if l.base.CountPellets() == 0 {
		return nil, fmt.Errorf("engine: %w", ErrNoPellets)
	}

	return l, nil
}

// Grid returns a freshly generated grid for this layout.
func (l *Layout) Grid() *Grid {
	return l.base.Clone()
}

// Rows returns the layout height.
func (l *Layout) Rows() int {
	return l.base.Rows()
}

// Cols returns the layout width.
func (l *Layout) Cols() int {
	return l.base.Cols()
}

// PelletCount returns the number of pellets in a freshly generated grid.
func (l *Layout) PelletCount() int {
	return l.base.CountPellets()
}
