package match3

import (
	"time"

	"github.com/vovakirdan/puzzle-deck/internal/core"
	"github.com/vovakirdan/puzzle-deck/internal/plugin"
)

// hintFlashSeconds is how long a requested hint stays highlighted.
// Settable from configuration before the plugin initializes.
var hintFlashSeconds = 3.0

// SetHintFlash overrides the hint highlight duration.
func SetHintFlash(seconds float64) {
	if seconds > 0 {
		hintFlashSeconds = seconds
	}
}

// Game adapts the match-3 engine to the plugin lifecycle: cursor movement,
// gem selection, mode timers and rendering. All game rules live in Engine.
type Game struct {
	mode   Mode
	engine *Engine
	cfg    core.HostConfig

	cursor      Pos
	selected    Pos
	hasSelected bool

	hintA, hintB   Pos
	hintTicks      int
	hintFlashTicks int

	wantsClose bool
}

func newGame(mode Mode) *Game {
	return &Game{mode: mode}
}

func init() {
	plugin.Register("gems", func() plugin.Plugin { return newGame(ModeClassic) })
	plugin.Register("gems_blitz", func() plugin.Plugin { return newGame(ModeBlitz) })
	plugin.Register("gems_twist", func() plugin.Plugin { return newGame(ModeTwist) })
	plugin.Register("gems_rush", func() plugin.Plugin { return newGame(ModeCascadeRush) })
	plugin.Register("gems_surge", func() plugin.Plugin { return newGame(ModeGemSurge) })
}

// ID returns the plugin identifier for the game's mode.
func (g *Game) ID() string {
	switch g.mode {
	case ModeBlitz:
		return "gems_blitz"
	case ModeTwist:
		return "gems_twist"
	case ModeCascadeRush:
		return "gems_rush"
	case ModeGemSurge:
		return "gems_surge"
	default:
		return "gems"
	}
}

// Title returns the display name for the game's mode.
func (g *Game) Title() string {
	switch g.mode {
	case ModeBlitz:
		return "Gems (Blitz)"
	case ModeTwist:
		return "Gems (Twist)"
	case ModeCascadeRush:
		return "Gems (Cascade Rush)"
	case ModeGemSurge:
		return "Gems (Gem Surge)"
	default:
		return "Gems"
	}
}

// Init starts a fresh game.
func (g *Game) Init(cfg core.HostConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.cfg = cfg
	g.engine = NewEngine(seed)
	g.engine.InitGame(g.mode)
	g.cursor = Pos{}
	g.hasSelected = false
	g.hintTicks = 0
	g.wantsClose = false

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultHostConfig().TickRate
	}
	g.hintFlashTicks = int(hintFlashSeconds * float64(tickRate))
}

// Update processes one tick of input and advances mode timers.
func (g *Game) Update(in core.InputFrame) core.Status {
	e := g.engine

	if in.Has(core.ActionRestart) && e.GetState() == StateGameOver {
		g.Init(core.HostConfig{
			ScreenW:  g.cfg.ScreenW,
			ScreenH:  g.cfg.ScreenH,
			TickRate: g.cfg.TickRate,
			Seed:     e.rng.Int63(),
		})
		return g.status()
	}

	if in.Has(core.ActionPause) {
		e.SetPaused(e.GetState() != StatePaused)
	}

	if e.GetState() == StateIdle {
		g.handleMovement(in)

		if in.Has(core.ActionSelect) {
			g.handleSelect()
		}
		if in.Has(core.ActionCancel) {
			if g.hasSelected {
				g.hasSelected = false
			} else {
				g.wantsClose = true
			}
		}
		if in.Has(core.ActionHint) {
			if a, b, ok := e.Hint(); ok {
				g.hintA, g.hintB = a, b
				g.hintTicks = g.hintFlashTicks
			}
		}
		if n := in.Num(); n >= 0 {
			e.TriggerSurgeLine(n)
		}
	}

	if g.hintTicks > 0 {
		g.hintTicks--
	}

	tickRate := g.cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultHostConfig().TickRate
	}
	e.Tick(1.0 / float64(tickRate))

	return g.status()
}

func (g *Game) handleMovement(in core.InputFrame) {
	maxIdx := BoardSize - 1
	if g.mode == ModeTwist {
		// The cursor addresses the top-left of a 2x2 block.
		maxIdx = BoardSize - 2
	}

	if in.Has(core.ActionUp) {
		g.cursor.Row = core.Clamp(g.cursor.Row-1, 0, maxIdx)
	}
	if in.Has(core.ActionDown) {
		g.cursor.Row = core.Clamp(g.cursor.Row+1, 0, maxIdx)
	}
	if in.Has(core.ActionLeft) {
		g.cursor.Col = core.Clamp(g.cursor.Col-1, 0, maxIdx)
	}
	if in.Has(core.ActionRight) {
		g.cursor.Col = core.Clamp(g.cursor.Col+1, 0, maxIdx)
	}
}

// handleSelect implements pick-up/drop selection. In Twist mode a single
// select rotates the block under the cursor instead.
func (g *Game) handleSelect() {
	e := g.engine

	if g.mode == ModeTwist {
		e.TryRotate(g.cursor)
		return
	}

	if !g.hasSelected {
		g.selected = g.cursor
		g.hasSelected = true
		return
	}

	if g.selected == g.cursor {
		g.hasSelected = false
		return
	}

	if !adjacent(g.selected, g.cursor) {
		g.selected = g.cursor
		return
	}

	a, b := g.selected, g.cursor
	g.hasSelected = false
	if e.GetSpecial(a.Row, a.Col) == SpecialHypercube ||
		e.GetSpecial(b.Row, b.Col) == SpecialHypercube {
		e.SwapHypercube(a, b)
		return
	}
	e.TrySwap(a, b)
}

func (g *Game) status() core.Status {
	return core.Status{
		Score:  g.engine.GetScore(),
		Done:   g.engine.GetState() == StateGameOver,
		Paused: g.engine.GetState() == StatePaused,
	}
}

// Shutdown releases nothing; the engine has no external resources.
func (g *Game) Shutdown() {}

// WantsClose reports whether the player backed out of the board.
func (g *Game) WantsClose() bool { return g.wantsClose }
