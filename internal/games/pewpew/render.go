package pewpew

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/pewpew/internal/actor"
	"github.com/vovakirdan/pewpew/internal/core"
)

// Glyphs for the player by facing quadrant, clockwise from up.
var facingGlyphs = [4]rune{'▲', '▶', '▼', '◀'}

const crosshairGlyph = '+'

// Render draws the world scaled onto the character grid, then the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	for _, a := range g.Actors() {
		x, y := g.cellFor(dst, actor.WorldToScreen(g.screenW, g.screenH, a.Pos))
		dst.SetColored(x, y, actorGlyph(a), actorColor(a))
	}

	if g.input.Fire {
		x, y := g.cellFor(dst, r2.Vec{X: g.input.XClick, Y: g.input.YClick})
		dst.SetColored(x, y, crosshairGlyph, core.ColorRed)
	}

	hud := g.cfg.HUD
	lx, ly := g.cellFor(dst, r2.Vec{X: hud.LevelX, Y: hud.LevelY})
	dst.DrawTextColored(lx, ly, fmt.Sprintf("Level: %d", g.level), core.ColorBrightWhite)
	sx, sy := g.cellFor(dst, r2.Vec{X: hud.ScoreX, Y: hud.ScoreY})
	dst.DrawTextColored(sx, sy, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// cellFor maps a screen-pixel point onto the character grid.
func (g *Game) cellFor(dst *core.Screen, p r2.Vec) (int, int) {
	x := int(p.X * float64(dst.Width()) / g.screenW)
	y := int(p.Y * float64(dst.Height()) / g.screenH)
	return core.Clamp(x, 0, dst.Width()-1), core.Clamp(y, 0, dst.Height()-1)
}

func actorGlyph(a actor.Actor) rune {
	switch a.Kind {
	case actor.KindPlayer:
		return facingGlyphs[facingQuadrant(a.Facing)]
	default:
		return '?'
	}
}

func actorColor(a actor.Actor) core.Color {
	switch a.Kind {
	case actor.KindPlayer:
		return core.ColorYellow
	default:
		return core.ColorDefault
	}
}

// facingQuadrant buckets an angle into up/right/down/left.
func facingQuadrant(angle float64) int {
	turn := math.Mod(angle, 2*math.Pi)
	if turn < 0 {
		turn += 2 * math.Pi
	}
	return int(math.Round(turn/(math.Pi/2))) % 4
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
