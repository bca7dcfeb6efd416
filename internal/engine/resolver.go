package engine

// Resolve returns where an entity standing on p ends up after one step in d.
// It is the single movement rule for the player, adversaries and projectiles:
//
//  1. step one cell in d
//  2. wrap horizontally (columns only; rows never wrap)
//  3. if the resulting cell is a wall, or lies above or below the grid, stay on p
//
// DirNone always resolves to p.
func Resolve(g *Grid, p Pos, d Dir) Pos {
	next := p.Step(d)

	switch {
	case next.Col < 0:
		next.Col = g.Cols() - 1
	case next.Col >= g.Cols():
		next.Col = 0
	}

	if g.At(next) == TileWall {
		return p
	}
	return next
}

// CanStep reports whether stepping from p in d actually moves.
func CanStep(g *Grid, p Pos, d Dir) bool {
	return Resolve(g, p, d) != p
}
