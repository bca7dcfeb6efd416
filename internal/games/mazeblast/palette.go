package mazeblast

import (
	"github.com/vovakirdan/mazeblast/internal/core"
	"github.com/vovakirdan/mazeblast/internal/engine"
)

// Glyphs drawn for each maze element.
const (
	glyphWall       = '█'
	glyphPellet     = '·'
	glyphPowerItem  = '◆'
	glyphProjectile = '•'
	glyphAdversary  = 'Ω'
	glyphPlayer     = '@'
	glyphLife       = '♥'
)

// adversaryColors is indexed by slot, cycling when a maze has more
// adversaries than colors.
var adversaryColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorOrange,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
}

func adversaryColor(slot int) core.Color {
	return adversaryColors[slot%len(adversaryColors)]
}

func playerColor(powered bool) core.Color {
	if powered {
		return core.ColorBrightCyan
	}
	return core.ColorBrightYellow
}

func tileCell(t engine.Tile) (rune, core.Color) {
	switch t {
	case engine.TileWall:
		return glyphWall, core.ColorBlue
	case engine.TilePellet:
		return glyphPellet, core.ColorWhite
	case engine.TilePowerItem:
		return glyphPowerItem, core.ColorBrightYellow
	default:
		return ' ', core.ColorDefault
	}
}
