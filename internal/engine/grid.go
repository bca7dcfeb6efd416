package engine

import "fmt"

// Grid is a fixed-size tile matrix stored row-major: index = row*cols + col.
// Its shape never changes after construction; only cell contents do.
type Grid struct {
	rows  int
	cols  int
	tiles []Tile
}

// NewGrid creates a rows x cols grid with every cell empty.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{
		rows:  rows,
		cols:  cols,
		tiles: make([]Tile, rows*cols),
	}
	for i := range g.tiles {
		g.tiles[i] = TileEmpty
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) index(p Pos) int {
	return p.Row*g.cols + p.Col
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the tile at p. Cells outside the grid read as TileWall.
func (g *Grid) At(p Pos) Tile {
	if !g.InBounds(p) {
		return TileWall
	}
	return g.tiles[g.index(p)]
}

// Set overwrites the tile at p. Out-of-bounds writes are ignored.
func (g *Grid) Set(p Pos, t Tile) {
	if g.InBounds(p) {
		g.tiles[g.index(p)] = t
	}
}

// Count returns how many cells hold tile t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, tile := range g.tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// CountPellets returns the number of pellet cells.
func (g *Grid) CountPellets() int {
	return g.Count(TilePellet)
}

// ConsumePellet empties a pellet cell.
// Calling it on any other tile is a programming error and panics; callers
// check the tile first.
func (g *Grid) ConsumePellet(p Pos) {
	if t := g.At(p); t != TilePellet {
		panic(fmt.Sprintf("engine: ConsumePellet at %v on %v tile", p, t))
	}
	g.tiles[g.index(p)] = TileEmpty
}

// isBorder reports whether p is on the outer ring of the grid.
func (g *Grid) isBorder(p Pos) bool {
	return p.Row == 0 || p.Row == g.rows-1 || p.Col == 0 || p.Col == g.cols-1
}

// PlacePowerItem turns one uniformly chosen empty, non-border cell into a
// power item and returns it. Walls and pellets are never touched.
// Returns false when no candidate cell exists.
func (g *Grid) PlacePowerItem(rng Rand) (Pos, bool) {
	var candidates []Pos
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			p := Pos{Row: row, Col: col}
			if g.tiles[g.index(p)] == TileEmpty && !g.isBorder(p) {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		return Pos{}, false
	}
	p := candidates[rng.Intn(len(candidates))]
	g.tiles[g.index(p)] = TilePowerItem
	return p, true
}

// ClearPowerItems resets every power item cell to empty.
func (g *Grid) ClearPowerItems() {
	for i, t := range g.tiles {
		if t == TilePowerItem {
			g.tiles[i] = TileEmpty
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		tiles: tiles,
	}
}

// Matrix returns a copy of the tiles as a slice of rows.
func (g *Grid) Matrix() [][]Tile {
	m := make([][]Tile, g.rows)
	for row := range m {
		m[row] = make([]Tile, g.cols)
		copy(m[row], g.tiles[row*g.cols:(row+1)*g.cols])
	}
	return m
}
