package mirror

import (
	"fmt"
	"math"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/mirror-lane/internal/core"
	"github.com/vovakirdan/mirror-lane/internal/games/mirror/core"
)

// Visual characters for rendering
const (
	CursorChar   = '▲'
	DividerChar  = '┄'
	ParticleChar = '*'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	if g.engine.BackgroundVisible() {
		g.drawBackground(dst)
	}

	cursorFrame, hasCursor := g.engine.Lane().FrameAt(g.worldX(g.cursor))
	for _, f := range g.engine.Frames() {
		highlighted := hasCursor && f.ID == cursorFrame.ID
		g.drawFrame(dst, f, highlighted)
	}

	for _, b := range g.bursts {
		g.drawBurst(dst, b)
	}

	dst.SetColored(g.cursor, g.cfg.View.LaneRow+cursorRow, CursorChar, platformcore.ColorBrightYellow)

	// HUD
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", g.engine.Score()), platformcore.ColorBrightWhite)
	seconds := fmt.Sprintf(" Seconds: %d ", g.engine.Elapsed())
	dst.DrawText(dst.Width()-utf8.RuneCountInString(seconds)-2, 0, seconds)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawBackground draws the oscillating characters at their swung positions.
func (g *Game) drawBackground(dst *platformcore.Screen) {
	off := g.engine.BackgroundOffset()
	for _, c := range g.chars {
		x := g.column(c.x+off) - utf8.RuneCountInString(c.art)/2
		dst.DrawTextColored(x, c.row, c.art, c.color)
	}
}

// drawFrame renders one frame as a box with the top row above a divider
// and the bottom row below it.
func (g *Game) drawFrame(dst *platformcore.Screen, f core.Frame, highlighted bool) {
	x0 := g.column(f.Position)
	w := g.column(f.Right()) - x0
	top := g.cfg.View.LaneRow

	border := platformcore.ColorGray
	if highlighted {
		border = platformcore.ColorBrightYellow
	}
	dst.DrawBoxColored(platformcore.NewRect(x0, top, w, frameHeight), border)

	inner := w - 2
	if inner <= 0 {
		return
	}
	dst.DrawHLine(x0+1, top+2, inner, DividerChar, platformcore.ColorGray)

	phase := g.spinPhase()
	slots := f.Slots()
	for i := 0; i < slots; i++ {
		x := x0 + 1 + i*inner/slots
		g.drawSprite(dst, x, top+1, f.Top[i], phase)
		g.drawSprite(dst, x, top+3, f.Bottom[i], phase)
	}

	if g.cfg.View.ShowNames {
		dst.DrawTextColored(x0, top+namesRow, f.Name, platformcore.ColorGray)
	}
}

func (g *Game) drawSprite(dst *platformcore.Screen, x, y int, s core.Sprite, phase int) {
	st, ok := g.styles[s]
	if !ok {
		dst.Set(x, y, '?')
		return
	}
	color := st.color
	if phase > 0 && len(g.palette) > 0 {
		color = g.palette[(st.index+phase)%len(g.palette)]
	}
	dst.SetColored(x, y, st.glyph, color)
}

// spinPhase returns how many colour steps the sprites have cycled through.
// Mirrored sprites share a phase so colour never breaks a match.
func (g *Game) spinPhase() int {
	if g.cfg.View.SpinRate <= 0 {
		return 0
	}
	return int(g.engine.Clock() * g.cfg.View.SpinRate)
}

// drawBurst draws a selection result with particles spreading as it ages.
func (g *Game) drawBurst(dst *platformcore.Screen, b burst) {
	cx := g.column(b.x)
	y := g.cfg.View.LaneRow + burstRow

	label, color := "miss", platformcore.ColorBrightRed
	if b.success {
		label, color = "+1", platformcore.ColorBrightGreen
	}

	dur := g.cfg.Timing.EffectDuration
	spread := 1
	if dur > 0 {
		spread += int(math.Round((1 - b.ttl/dur) * 3))
	}
	half := utf8.RuneCountInString(label) / 2
	dst.SetColored(cx-half-spread, y, ParticleChar, color)
	dst.SetColored(cx+half+spread, y, ParticleChar, color)
	dst.DrawTextColored(cx-half, y, label, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *platformcore.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(platformcore.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(platformcore.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-utf8.RuneCountInString(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-utf8.RuneCountInString(subtitle))/2, boxY+3, subtitle)
}
