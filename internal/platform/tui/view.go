package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-invasion/internal/core"
	"github.com/vovakirdan/tui-invasion/internal/invasion"
)

// hudRows is the number of screen rows above the play area.
const hudRows = 1

// Glyphs for each entity kind.
const (
	glyphPlayer     = '▲'
	glyphEnemy      = '▼'
	glyphBoss       = '█'
	glyphProjectile = '|'
)

// blinkTicks is the half-period of the invulnerability blink.
const blinkTicks = 6

// viewport maps play-area pixels onto screen cells.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(s *core.Screen, snap invasion.Snapshot) viewport {
	rows := s.Height() - hudRows
	if rows < 1 || snap.Width <= 0 || snap.Height <= 0 {
		return viewport{top: hudRows}
	}
	return viewport{
		sx:  float64(s.Width()) / snap.Width,
		sy:  float64(rows) / snap.Height,
		top: hudRows,
	}
}

// cellRect returns the cells covered by b. Every visible entity covers at
// least one cell.
func (v viewport) cellRect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, v.top+y0, x1-x0, y1-y0)
}

// DrawSnapshot renders a session snapshot onto the screen: HUD row, play
// area, then any announcement, pause or game-over overlay.
func DrawSnapshot(s *core.Screen, snap invasion.Snapshot, highScore int) {
	s.Clear()
	if s.Width() == 0 || s.Height() <= hudRows {
		return
	}

	drawHUD(s, snap, highScore)

	v := newViewport(s, snap)
	for _, e := range snap.Entities {
		drawEntity(s, v, e, snap.Tick)
	}

	switch {
	case snap.GameOver():
		drawOverlay(s, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Score %d  Wave %d", snap.HUD.Score, snap.HUD.Wave),
			"r restart   q quit")
	case snap.Paused:
		drawOverlay(s, core.ColorBrightYellow, "PAUSED", "p resume")
	case snap.Message != "":
		color := core.ColorBrightCyan
		if snap.HUD.HasBoss {
			color = core.ColorBrightMagenta
		}
		drawOverlay(s, color, snap.Message)
	}
}

func drawHUD(s *core.Screen, snap invasion.Snapshot, highScore int) {
	hud := snap.HUD
	left := fmt.Sprintf(" SCORE %d  WAVE %d  LIVES %s", hud.Score, hud.Wave, strings.Repeat("♥", hud.Lives))
	s.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf("HI %d ", max(highScore, hud.Score))
	if hud.HasBoss {
		right = fmt.Sprintf("BOSS %s%s  %s",
			strings.Repeat("■", hud.BossHealth),
			strings.Repeat("□", invasion.BossHealth-hud.BossHealth),
			right)
	}
	s.DrawTextColored(s.Width()-len([]rune(right)), 0, right, core.ColorGray)
}

func drawEntity(s *core.Screen, v viewport, e invasion.EntityView, tick uint64) {
	var glyph rune
	var color core.Color

	switch e.Kind {
	case invasion.KindPlayer:
		if e.Visual == invasion.VisualInvulnerable && (tick/blinkTicks)%2 == 1 {
			return
		}
		glyph, color = glyphPlayer, core.ColorBrightGreen
	case invasion.KindEnemy:
		glyph, color = glyphEnemy, core.ColorRed
	case invasion.KindBoss:
		glyph, color = glyphBoss, core.ColorMagenta
		if e.Visual == invasion.VisualEnraged {
			color = core.ColorBrightRed
		}
	case invasion.KindProjectile:
		glyph, color = glyphProjectile, core.ColorBrightYellow
	default:
		return
	}

	r := v.cellRect(e.Box)
	// Entities above the play area must not draw over the HUD.
	if r.Y < v.top {
		h := r.Bottom() - v.top
		if h <= 0 {
			return
		}
		r = core.NewRect(r.X, v.top, r.W, h)
	}
	s.FillRect(r, glyph, color)
}

// drawOverlay draws a centered box with one line of text per argument.
func drawOverlay(s *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect((s.Width()-width-4)/2, (s.Height()-len(lines)-2)/2, width+4, len(lines)+2)

	s.FillRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, c)
	for i, l := range lines {
		s.DrawTextCentered(box.Y+1+i, l, c)
	}
}
