package match3

import (
	"fmt"

	"github.com/vovakirdan/puzzle-deck/internal/core"
)

const (
	cellW      = 2 // glyph plus spacing
	boardTop   = 3
	boardLeft  = 2
	panelWidth = 34
)

func gemColor(c GemColor) core.Color {
	switch c {
	case Ruby:
		return core.ColorBrightRed
	case Emerald:
		return core.ColorBrightGreen
	case Sapphire:
		return core.ColorBrightBlue
	case Topaz:
		return core.ColorBrightYellow
	case Amethyst:
		return core.ColorBrightMagenta
	case Citrine:
		return core.ColorOrange
	case Pearl:
		return core.ColorBrightWhite
	default:
		return core.ColorDefault
	}
}

func gemGlyph(cell Cell) rune {
	switch cell.Special {
	case SpecialFlame:
		return '▲'
	case SpecialStar:
		return '★'
	case SpecialHypercube:
		return '◎'
	case SpecialSupernova:
		return '✸'
	}
	if cell.Color == Empty {
		return ' '
	}
	return '●'
}

// Draw renders the board, HUD and mode panels into the screen buffer.
func (g *Game) Draw(dst *core.Screen) {
	dst.Clear()
	e := g.engine

	g.drawHUD(dst)
	g.drawBoard(dst)
	g.drawPanel(dst)

	switch e.GetState() {
	case StateGameOver:
		g.drawOverlay(dst, "Game Over",
			fmt.Sprintf("Score: %d  Level: %d", e.GetScore(), e.GetLevel()),
			"Press R to restart")
	case StatePaused:
		g.drawOverlay(dst, "Paused", "Press P to continue", "")
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	e := g.engine

	hud := fmt.Sprintf(" %s   Score: %d   Level: %d", g.Title(), e.GetScore(), e.GetLevel())
	if t := e.GetTimeRemaining(); t >= 0 {
		hud += fmt.Sprintf("   Time: %4.1fs", t)
	}
	if m := e.MovesRemaining(); m >= 0 {
		hud += fmt.Sprintf("   Moves: %d", m)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) drawBoard(dst *core.Screen) {
	e := g.engine
	boxW := BoardSize*cellW + 3
	boxH := BoardSize + 2
	dst.DrawBox(boardLeft-1, boardTop-1, boxW, boxH, core.ColorGray)

	zone := e.Zone()

	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			p := Pos{Row: r, Col: c}
			cell := Cell{
				Color:   e.GetCell(r, c),
				Special: e.GetSpecial(r, c),
			}

			x := boardLeft + 1 + c*cellW
			y := boardTop + r

			color := gemColor(cell.Color)
			if zone.Contains(p) {
				dst.SetColored(x-1, y, '[', core.ColorBrightCyan)
				dst.SetColored(x+1, y, ']', core.ColorBrightCyan)
			}
			if g.hintTicks > 0 && (p == g.hintA || p == g.hintB) {
				color = core.ColorBrightWhite
			}
			dst.SetColored(x, y, gemGlyph(cell), color)
		}
	}

	g.drawSurgeMarkers(dst)
	g.drawCursor(dst)
}

// drawSurgeMarkers labels active surge lines with their trigger digit at the
// board edge.
func (g *Game) drawSurgeMarkers(dst *core.Screen) {
	if g.mode != ModeGemSurge {
		return
	}
	for i, line := range g.engine.SurgeLines() {
		digit := rune('1' + i)
		if line.Horizontal {
			y := boardTop + line.Index
			dst.SetColored(boardLeft-2, y, digit, core.ColorBrightYellow)
		} else {
			x := boardLeft + 1 + line.Index*cellW
			dst.SetColored(x, boardTop-2, digit, core.ColorBrightYellow)
		}
	}
}

func (g *Game) drawCursor(dst *core.Screen) {
	mark := func(p Pos, c core.Color) {
		x := boardLeft + 1 + p.Col*cellW
		y := boardTop + p.Row
		dst.SetColored(x-1, y, '(', c)
		dst.SetColored(x+1, y, ')', c)
	}

	if g.mode == ModeTwist {
		// Outline the 2x2 block under the cursor.
		for dr := 0; dr < 2; dr++ {
			for dc := 0; dc < 2; dc++ {
				mark(Pos{Row: g.cursor.Row + dr, Col: g.cursor.Col + dc}, core.ColorBrightWhite)
			}
		}
		return
	}

	if g.hasSelected {
		mark(g.selected, core.ColorBrightYellow)
	}
	mark(g.cursor, core.ColorBrightWhite)
}

func (g *Game) drawPanel(dst *core.Screen) {
	e := g.engine
	x := boardLeft + BoardSize*cellW + 6
	if x+panelWidth > dst.Width() {
		return
	}
	y := boardTop

	line := func(s string) {
		dst.DrawText(x, y, s)
		y++
	}
	lineColored := func(s string, c core.Color) {
		dst.DrawTextColored(x, y, s, c)
		y++
	}

	switch g.mode {
	case ModeCascadeRush:
		line(fmt.Sprintf("Zones captured: %d", e.ZonesCaptured()))
		line(fmt.Sprintf("Zones missed:   %d", e.ZonesMissed()))
		line(fmt.Sprintf("Bonus time:     %.1fs", e.BonusTime()))
		if z := e.Zone(); z.Active {
			y++
			lineColored(fmt.Sprintf("Zone at %d,%d  %.1fs left", z.Row, z.Col, z.Remaining),
				core.ColorBrightCyan)
		}

	case ModeGemSurge:
		line(fmt.Sprintf("Wave %d", e.Wave()))
		line(fmt.Sprintf("Progress: %d / %d", e.WaveScore(), e.WaveTarget()))
		lineColored(fmt.Sprintf("Featured: %s", e.FeaturedColor()), gemColor(e.FeaturedColor()))
		y++
		lines := e.SurgeLines()
		if len(lines) == 0 {
			line("No surge lines")
			break
		}
		line("Surge lines (press digit):")
		for i, l := range lines {
			axis := "row"
			if !l.Horizontal {
				axis = "col"
			}
			line(fmt.Sprintf("  %d: %s %d  %.1fs", i+1, axis, l.Index, l.Remaining))
		}

	default:
		line(fmt.Sprintf("Next level at %d", ScoreForLevel(e.GetLevel()+1)))
		if e.GetCascade() > 1 {
			lineColored(fmt.Sprintf("Cascade x%d!", e.GetCascade()), core.ColorBrightYellow)
		}
	}

	y++
	for _, h := range e.LightningHints() {
		axis := "row"
		idx := h.Center.Row
		if !h.Horizontal {
			axis = "col"
			idx = h.Center.Col
		}
		lineColored(fmt.Sprintf("Lightning: %s %d", axis, idx), core.ColorBrightCyan)
	}
}

func (g *Game) drawOverlay(dst *core.Screen, line1, line2, line3 string) {
	w, h := dst.Width(), dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	if len(line3) > maxLen {
		maxLen = len(line3)
	}

	boxW := maxLen + 6
	boxH := 7
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for yy := boxY + 1; yy < boxY+boxH-1; yy++ {
		for xx := boxX + 1; xx < boxX+boxW-1; xx++ {
			dst.Set(xx, yy, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
	if line3 != "" {
		dst.DrawTextCentered(boxY+5, line3)
	}
}
