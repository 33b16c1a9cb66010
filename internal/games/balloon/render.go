package balloon

import (
	"fmt"
	"math"

	"github.com/vovakirdan/balloon-shooter/internal/core"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Render draws the current game state to the screen, scaling arena units to
// character cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	fieldH := dst.Height() - hudRows
	if fieldH < 1 || dst.Width() < 1 {
		return
	}

	arena := g.world.Arena
	sx := float64(dst.Width()) / arena.W
	sy := float64(fieldH) / arena.H

	for _, s := range g.Sprites() {
		x0, x1 := cellSpan(s.Box.X, s.Box.Right(), sx)
		y0, y1 := cellSpan(s.Box.Y, s.Box.Bottom(), sy)
		dst.FillArea(x0, y0+hudRows, x1-x0, y1-y0, s.Glyph, s.Color)
	}

	g.drawHUD(dst)

	if g.status == Terminated && g.reason == core.EndHit {
		drawCenteredMessage(dst, "POP!", fmt.Sprintf("Balloon down after %d shots", g.world.Player.ShotsFired()))
	}
}

// cellSpan maps [lo, hi) in arena units to a half-open cell range of at
// least one cell.
func cellSpan(lo, hi, scale float64) (int, int) {
	a := int(math.Floor(lo * scale))
	b := int(math.Ceil(hi * scale))
	if b <= a {
		b = a + 1
	}
	return a, b
}

// drawHUD draws the status line.
func (g *Game) drawHUD(dst *core.Screen) {
	p := g.world.Player
	gun := "ready"
	if !p.Ready() {
		gun = "reloading"
	}
	dst.DrawText(1, 0, fmt.Sprintf("BALLOON SHOOTER  shots: %d  gun: %s", p.ShotsFired(), gun))
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillArea(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
