package mazeblast

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/mazeblast/internal/core"
	"github.com/vovakirdan/mazeblast/internal/engine"
)

// Render draws the HUD, the maze and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	snap := g.session.Snapshot()
	g.renderHUD(dst, snap)

	if g.tooSmall() {
		g.renderOverlay(dst, core.ColorYellow, "Window too small", "Resize to continue")
		return
	}

	offX := (dst.Width() - snap.Cols()) / 2
	offY := hudHeight
	renderMaze(dst, snap, offX, offY)

	switch {
	case snap.State == engine.LifecycleIdle:
		g.renderOverlay(dst, core.ColorBrightYellow, strings.ToUpper(g.title), "Press Enter to start")
	case snap.State == engine.LifecycleGameOver:
		g.renderOverlay(dst, core.ColorBrightRed, "Game Over",
			fmt.Sprintf("Score %d  Level %d", snap.Score, snap.Level),
			"Press R to restart")
	case g.paused:
		g.renderOverlay(dst, core.ColorWhite, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *core.Screen, snap engine.Snapshot) {
	x := 1
	draw := func(text string, c core.Color) {
		dst.DrawTextColored(x, 0, text, c)
		x += len([]rune(text))
	}

	draw(strings.ToUpper(g.title), core.ColorBrightYellow)
	draw(fmt.Sprintf("  Score: %d  Level: %d  ", snap.Score, snap.Level), core.ColorDefault)
	draw(strings.Repeat(string(glyphLife), max(snap.Lives, 0)), core.ColorBrightRed)
	if snap.Powered {
		draw(fmt.Sprintf("  POWER %.1fs", snap.PowerRemaining.Seconds()), core.ColorBrightCyan)
	}

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderMaze draws tiles, then projectiles, adversaries and the player on top.
func renderMaze(dst *core.Screen, snap engine.Snapshot, offX, offY int) {
	for row := range snap.Rows() {
		for col := range snap.Cols() {
			r, c := tileCell(snap.Tiles[row][col])
			dst.SetColored(offX+col, offY+row, r, c)
		}
	}

	for _, p := range snap.Projectiles {
		dst.SetColored(offX+p.Pos.Col, offY+p.Pos.Row, glyphProjectile, core.ColorBrightWhite)
	}

	// Drawn in reverse so the lowest slot wins a shared cell.
	for i := len(snap.Adversaries) - 1; i >= 0; i-- {
		a := snap.Adversaries[i]
		dst.SetColored(offX+a.Pos.Col, offY+a.Pos.Row, glyphAdversary, adversaryColor(a.Slot))
	}

	p := snap.Player.Pos
	dst.SetColored(offX+p.Col, offY+p.Row, glyphPlayer, playerColor(snap.Powered))
}

// renderOverlay draws a framed message box centered on the screen.
func (g *Game) renderOverlay(dst *core.Screen, c core.Color, title string, lines ...string) {
	w := len([]rune(title))
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 4

	box := dst.Bounds().Centered(w, h)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	dst.DrawTextColored(box.X+(w-len([]rune(title)))/2, box.Y+1, title, c)
	for i, l := range lines {
		dst.DrawText(box.X+(w-len([]rune(l)))/2, box.Y+3+i, l)
	}
}
