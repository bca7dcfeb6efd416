// Package engine implements the maze simulation: the tile grid, the shared
// movement resolver, adversary steering, power mode with projectiles, and the
// session lifecycle that ties them into one tick.
//
// The package is UI-agnostic. Given the same layout, settings, random source
// and sequence of commands and deltas, a Session always reaches the same state.
package engine

import (
	"fmt"
	"strings"
)

// Dir is a unit step on the grid, or DirNone for standing still.
type Dir uint8

const (
	DirNone Dir = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four unit directions in a fixed order.
// Adversary steering enumerates in this order, which keeps seeded runs reproducible.
var Directions = [4]Dir{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the (row, col) offset of one step in this direction.
// Up decreases the row (origin is top-left).
func (d Dir) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. DirNone stays DirNone.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// String returns the lowercase name of the direction.
func (d Dir) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDir parses a direction name as written in maze configuration.
func ParseDir(s string) (Dir, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	case "none", "":
		return DirNone, nil
	default:
		return DirNone, fmt.Errorf("engine: unknown direction %q", s)
	}
}

// Pos is a cell on the grid.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// Step returns the cell one step away in d, without wrap or wall checks.
func (p Pos) Step(d Dir) Pos {
	dr, dc := d.Delta()
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Tile is the content of a single grid cell.
// The zero value is TileWall so that anything outside the grid reads as solid.
type Tile uint8

const (
	TileWall Tile = iota
	TileEmpty
	TilePellet
	TilePowerItem
)

func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileEmpty:
		return "empty"
	case TilePellet:
		return "pellet"
	case TilePowerItem:
		return "power-item"
	default:
		return "unknown"
	}
}
