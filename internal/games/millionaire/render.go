package millionaire

import (
	"fmt"

	"github.com/vovakirdan/puzzle-deck/internal/core"
)

const (
	questionTop  = 3
	questionLeft = 2
	answerWidth  = 56
	ladderWidth  = 20
)

var optionLabels = [4]rune{'A', 'B', 'C', 'D'}

// Draw renders the quiz screen: question and options on the left, prize
// ladder on the right, lifeline bar and timer on top.
func (g *Game) Draw(dst *core.Screen) {
	dst.Clear()
	s := g.session

	if g.loadErr != nil {
		dst.DrawTextCentered(dst.Height()/2, "Failed to load questions")
		dst.DrawTextCentered(dst.Height()/2+1, g.loadErr.Error())
		return
	}

	switch s.State() {
	case StateTitle:
		g.drawTitle(dst)
		return
	case StateFinalResults:
		g.drawFinalResults(dst)
		return
	}

	g.drawHUD(dst)
	g.drawQuestion(dst)
	g.drawLadder(dst)

	switch s.State() {
	case StateLifelineConfirm:
		g.drawConfirm(dst, fmt.Sprintf("Use %s?", s.PendingLifeline()))
	case StateWalkawayConfirm:
		g.drawConfirm(dst, fmt.Sprintf("Walk away with $%d?", s.Winnings()))
	case StateLifelineResult:
		g.drawLifelineResult(dst)
	}
}

func (g *Game) drawTitle(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-3, "WHO WANTS TO BE A MILLIONAIRE")
	dst.DrawTextCentered(mid-1, fmt.Sprintf("%d questions loaded", g.pool.Len()))
	dst.DrawTextCentered(mid+1, "Enter to play, Esc to leave")
	dst.DrawTextCentered(mid+3, "1: 50-50   2: Phone   3: Audience   W: Walk away")
}

func (g *Game) drawFinalResults(dst *core.Screen) {
	s := g.session
	mid := dst.Height() / 2

	var headline string
	switch s.Outcome() {
	case OutcomeWon:
		headline = "YOU ARE A MILLIONAIRE!"
	case OutcomeWalkedAway:
		headline = "You walked away"
	case OutcomeTimeout:
		headline = "Time ran out"
	default:
		headline = "Wrong answer"
	}
	dst.DrawTextCentered(mid-2, headline)
	dst.DrawTextCentered(mid, fmt.Sprintf("You take home $%d", s.FinalPrize()))
	dst.DrawTextCentered(mid+2, "Press R to play again, Esc to leave")
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.session
	l := s.Lifelines()

	mark := func(available bool, label string) string {
		if available {
			return "[ " + label + " ]"
		}
		return "  " + label + "  "
	}
	hud := fmt.Sprintf(" Level %d/%d   $%d   %s %s %s",
		s.Level()+1, len(PrizeLadder), s.Winnings(),
		mark(l.FiftyFifty, "1:50-50"),
		mark(l.Phone, "2:Phone"),
		mark(l.Audience, "3:Audience"))
	dst.DrawText(0, 0, hud)

	timer := fmt.Sprintf("Time: %3.0fs ", s.TimeRemaining())
	dst.DrawTextColored(dst.Width()-len(timer), 0, timer, timerColor(s.TimeRemaining()))
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func timerColor(remaining float64) core.Color {
	switch {
	case remaining <= 10:
		return core.ColorBrightRed
	case remaining <= 30:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightGreen
	}
}

func (g *Game) drawQuestion(dst *core.Screen) {
	s := g.session
	q := s.Question()
	if q == nil {
		return
	}

	y := questionTop
	if q.Category != "" {
		dst.DrawTextColored(questionLeft, y, q.Category, core.ColorGray)
		y++
	}
	for _, line := range wrapText(q.Text, answerWidth) {
		dst.DrawText(questionLeft, y, line)
		y++
	}
	y++

	eliminated := s.Eliminated()
	audience := s.Audience()
	for i := 0; i < 4; i++ {
		prefix := "  "
		color := core.ColorDefault
		switch {
		case eliminated[i]:
			color = core.ColorGray
		case s.LockedAnswer() == i:
			prefix = "> "
			color = core.ColorBrightYellow
		case s.State() == StatePlaying && g.cursor == i:
			prefix = "> "
			color = core.ColorBrightWhite
		}

		text := q.Options[i]
		if eliminated[i] {
			text = "-"
		}
		line := fmt.Sprintf("%s%c) %s", prefix, optionLabels[i], text)
		if audience != nil {
			line += fmt.Sprintf("   %d%%", audience[i])
		}
		if phone := s.Phone(); phone != nil && phone.Index == i {
			line += fmt.Sprintf("   <- friend (%s)", phone.Confidence)
		}
		dst.DrawTextColored(questionLeft, y, line, color)
		y++
	}
}

func (g *Game) drawLadder(dst *core.Screen) {
	s := g.session
	x := dst.Width() - ladderWidth
	if x <= questionLeft+answerWidth {
		return
	}

	for i := len(PrizeLadder) - 1; i >= 0; i-- {
		y := questionTop + (len(PrizeLadder) - 1 - i)
		if y >= dst.Height() {
			break
		}
		color := core.ColorGray
		switch {
		case i == s.Level():
			color = core.ColorBrightYellow
		case i == safeHavens[0] || i == safeHavens[1]:
			color = core.ColorBrightCyan
		case i < s.Level():
			color = core.ColorGreen
		}
		dst.DrawTextColored(x, y, fmt.Sprintf("%2d  $%d", i+1, PrizeLadder[i]), color)
	}
}

func (g *Game) drawConfirm(dst *core.Screen, prompt string) {
	s := g.session
	w := dst.Width()
	boxW := len(prompt) + 8
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := dst.Height()/2 - 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+1, prompt)
	dst.DrawTextCentered(boxY+3,
		fmt.Sprintf("Enter: yes   Esc: no   (%.0fs)", s.ConfirmRemaining()))
}

func (g *Game) drawLifelineResult(dst *core.Screen) {
	s := g.session
	var lines []string

	switch s.LastLifeline() {
	case LifelineFiftyFifty:
		lines = []string{"Two wrong answers removed."}
	case LifelinePhone:
		if p := s.Phone(); p != nil {
			lines = []string{
				fmt.Sprintf("Your friend says: %c", optionLabels[p.Index]),
				fmt.Sprintf("Confidence: %s", p.Confidence),
			}
		}
	case LifelineAudience:
		lines = []string{"The audience has voted."}
	}
	if len(lines) == 0 {
		return
	}

	boxW := 40
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := dst.Height() - boxH - 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightCyan)
	for i, line := range lines {
		dst.DrawTextCentered(boxY+1+i, line)
	}
	dst.DrawTextCentered(boxY+boxH-2, "Enter to continue")
}

// wrapText splits s into lines at most width runes long, breaking on spaces.
func wrapText(s string, width int) []string {
	var lines []string
	for len(s) > width {
		cut := width
		for cut > 0 && s[cut] != ' ' {
			cut--
		}
		if cut == 0 {
			cut = width
		}
		lines = append(lines, s[:cut])
		for cut < len(s) && s[cut] == ' ' {
			cut++
		}
		s = s[cut:]
	}
	if s != "" {
		lines = append(lines, s)
	}
	return lines
}
