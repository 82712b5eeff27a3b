package millionaire

import (
	"time"

	"github.com/vovakirdan/puzzle-deck/internal/core"
	"github.com/vovakirdan/puzzle-deck/internal/plugin"
)

// questionsPath is an optional external question file set from the CLI
// before the plugin initializes. Empty means the built-in set.
var questionsPath string

// SetQuestionsPath points the plugin at an external question JSON file.
func SetQuestionsPath(path string) {
	questionsPath = path
}

// Game adapts the quiz session to the plugin lifecycle.
type Game struct {
	cfg     core.HostConfig
	pool    *Pool
	session *Session

	cursor     int
	loadErr    error
	wantsClose bool
}

// New creates an uninitialized quiz plugin.
func New() *Game {
	return &Game{}
}

func init() {
	plugin.Register("millionaire", func() plugin.Plugin { return New() })
}

// ID returns the plugin identifier.
func (g *Game) ID() string { return "millionaire" }

// Title returns the display name.
func (g *Game) Title() string { return "Who Wants to Be a Millionaire" }

// Init loads the question pool and resets the session to the title screen.
func (g *Game) Init(cfg core.HostConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.cfg = cfg
	g.cursor = 0
	g.wantsClose = false
	g.loadErr = nil

	g.pool = NewPool(seed)
	if questionsPath != "" {
		g.loadErr = g.pool.LoadQuestions(questionsPath)
	}
	if questionsPath == "" || g.loadErr != nil {
		if err := g.pool.LoadDefaults(); err != nil {
			g.loadErr = err
		}
	}
	g.session = NewSession(g.pool, seed+1)
}

// Update processes one tick of input and advances the session clocks.
func (g *Game) Update(in core.InputFrame) core.Status {
	s := g.session

	switch s.State() {
	case StateTitle:
		if in.Has(core.ActionSelect) {
			s.Start()
		}
		if in.Has(core.ActionCancel) {
			g.wantsClose = true
		}

	case StatePlaying:
		g.handlePlaying(in)

	case StateAnswerLocked:
		if in.Has(core.ActionSelect) {
			s.Reveal()
		}

	case StateLifelineConfirm, StateWalkawayConfirm:
		if in.Has(core.ActionSelect) {
			s.Confirm()
		}
		if in.Has(core.ActionCancel) {
			s.Cancel()
		}

	case StateLifelineResult:
		if in.Has(core.ActionSelect) || in.Has(core.ActionCancel) {
			s.Acknowledge()
		}

	case StateFinalResults:
		if in.Has(core.ActionRestart) {
			s.Start()
			g.cursor = 0
		}
		if in.Has(core.ActionCancel) {
			g.wantsClose = true
		}
	}

	tickRate := g.cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultHostConfig().TickRate
	}
	s.Tick(1.0 / float64(tickRate))

	return g.status()
}

func (g *Game) handlePlaying(in core.InputFrame) {
	s := g.session

	// The walk-away key doubles as cursor-up on some layouts; when it fires,
	// swallow the frame so the cursor does not move under the confirm prompt.
	if in.Has(core.ActionWalkAway) {
		s.RequestWalkAway()
		return
	}

	if in.Has(core.ActionUp) {
		g.moveCursor(-1)
	}
	if in.Has(core.ActionDown) {
		g.moveCursor(1)
	}
	if in.Has(core.ActionSelect) {
		s.LockAnswer(g.cursor)
	}
	if in.Has(core.ActionCancel) {
		g.wantsClose = true
	}

	switch in.Num() {
	case 0:
		s.RequestLifeline(LifelineFiftyFifty)
	case 1:
		s.RequestLifeline(LifelinePhone)
	case 2:
		s.RequestLifeline(LifelineAudience)
	}
}

// moveCursor steps over eliminated options.
func (g *Game) moveCursor(delta int) {
	eliminated := g.session.Eliminated()
	for i := 0; i < 4; i++ {
		g.cursor = (g.cursor + delta + 4) % 4
		if !eliminated[g.cursor] {
			return
		}
	}
}

func (g *Game) status() core.Status {
	s := g.session
	score := s.Winnings()
	if s.State() == StateFinalResults {
		score = s.FinalPrize()
	}
	return core.Status{
		Score: score,
		Done:  s.State() == StateFinalResults,
	}
}

// Shutdown releases nothing; the pool lives in memory only.
func (g *Game) Shutdown() {}

// WantsClose reports whether the player backed out of the quiz.
func (g *Game) WantsClose() bool { return g.wantsClose }
