package match3

import "math/rand"

// GameState is the orchestrator-facing engine state.
type GameState int

const (
	StateIdle GameState = iota
	StateSwapping
	StateChecking
	StateRemoving
	StateFalling
	StateFilling
	StateGameOver
	StatePaused
)

// String returns a short state name.
func (s GameState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSwapping:
		return "swapping"
	case StateChecking:
		return "checking"
	case StateRemoving:
		return "removing"
	case StateFalling:
		return "falling"
	case StateFilling:
		return "filling"
	case StateGameOver:
		return "game_over"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Engine is one match-3 game. It is an ordinary value: a host may hold any
// number of instances, and every operation takes the engine as receiver.
// All operations are synchronous and run to completion; the board is fully
// settled whenever a mutating call returns.
type Engine struct {
	rng   *rand.Rand
	board Board
	mode  Mode
	state GameState

	score   int
	level   int
	cascade int

	timeRemaining  float64 // seconds; -1 in untimed modes
	movesRemaining int     // -1 when unlimited

	rush    rushState
	surge   surgeState
	effects effectQueue

	// lightning hints from the last resolved turn; purely a visual
	// affordance for the host, never executed by the engine.
	lightning []LightningHint
}

// NewEngine creates an engine with its own RNG. The host seeds once from the
// wall clock, or with a fixed seed for reproducible games.
func NewEngine(seed int64) *Engine {
	return &Engine{
		rng:   rand.New(rand.NewSource(seed)),
		state: StateIdle,
		level: 1,
	}
}

// InitGame starts a fresh game in the given mode: a seeded board with no
// initial match and at least one valid move, score and cascade reset.
func (e *Engine) InitGame(mode Mode) {
	e.mode = mode
	e.score = 0
	e.level = 1
	e.cascade = 0
	e.effects.reset()
	e.lightning = nil
	e.initModeState()

	e.fillInitialBoard()
	for !e.hasAnyMoveForMode() {
		e.shuffleBoard()
	}
	e.state = StateIdle
}

// fillInitialBoard populates every cell with a color that does not complete
// a run with its already-placed left/up neighbors.
func (e *Engine) fillInitialBoard() {
	e.board = Board{}
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			p := Pos{Row: r, Col: c}
			e.board.Set(p, Cell{Color: e.colorAvoidingRuns(p)})
		}
	}
}

// TrySwap validates and executes a player swap. On success a full turn has
// resolved and the board is settled; on failure the board is untouched.
func (e *Engine) TrySwap(a, b Pos) bool {
	if e.state != StateIdle {
		return false
	}
	if !e.IsValidSwap(a, b) {
		return false
	}

	pre := e.board
	e.state = StateSwapping
	e.swapCells(a, b)
	e.beginTurn()

	if e.resolveCascades() == 0 {
		// Unreachable after IsValidSwap, but the contract is that a failed
		// swap leaves the board bit-identical.
		e.board = pre
		e.state = StateIdle
		return false
	}

	e.finishTurn()
	return true
}

// TryRotate validates and executes a Twist-mode 2x2 clockwise rotation with
// top-left p. Same guarantees as TrySwap.
func (e *Engine) TryRotate(p Pos) bool {
	if e.state != StateIdle || e.mode != ModeTwist {
		return false
	}
	if !e.IsValidRotation(p) {
		return false
	}

	pre := e.board
	e.state = StateSwapping
	e.rotateBlock(p, true)
	e.beginTurn()

	if e.resolveCascades() == 0 {
		e.board = pre
		e.state = StateIdle
		return false
	}

	e.finishTurn()
	return true
}

// SwapHypercube executes the special swap rules when at least one endpoint is
// a hypercube. Swapping with a normal gem detonates the hypercube against
// that gem's color; swapping two hypercubes wipes the whole board. Returns
// false if neither cell is a hypercube or the other cell is empty.
func (e *Engine) SwapHypercube(a, b Pos) bool {
	if e.state != StateIdle {
		return false
	}
	if !e.board.InBounds(a) || !e.board.InBounds(b) || !adjacent(a, b) {
		return false
	}

	ca, cb := e.board.At(a), e.board.At(b)
	if ca.Special != SpecialHypercube && cb.Special != SpecialHypercube {
		return false
	}
	if ca.Color == Empty || cb.Color == Empty {
		return false
	}

	e.state = StateSwapping
	e.beginTurn()

	if ca.Special == SpecialHypercube && cb.Special == SpecialHypercube {
		for r := 0; r < BoardSize; r++ {
			for c := 0; c < BoardSize; c++ {
				e.clearForResolution(Pos{Row: r, Col: c})
			}
		}
		e.addScore(64 * 50 * 3)
	} else {
		hyper, other := a, cb
		if cb.Special == SpecialHypercube {
			hyper, other = b, ca
		}
		e.clearForResolution(hyper)
		e.effects.push(Effect{Pos: hyper, Kind: SpecialHypercube, TargetColor: other.Color})
		e.drainEffects()
	}

	e.settle()
	return true
}

// beginTurn resets the per-move counters.
func (e *Engine) beginTurn() {
	e.cascade = 0
	e.lightning = e.lightning[:0]
	if e.movesRemaining > 0 {
		e.movesRemaining--
	}
}

// resolveCascades runs the post-move loop until the board is stable:
// detect -> build specials -> remove -> drain effect queue -> fall -> refill.
// Returns the number of match waves resolved.
func (e *Engine) resolveCascades() int {
	waves := 0
	for {
		e.state = StateChecking
		matches, hints := FindMatches(&e.board)
		if len(matches) == 0 {
			break
		}
		waves++
		e.cascade++
		e.lightning = append(e.lightning, hints...)

		if e.mode == ModeCascadeRush {
			bonus := float64(e.cascade * 2)
			e.timeRemaining += bonus
			e.rush.BonusTime += bonus
		}

		pending := BuildSpecials(matches)
		e.state = StateRemoving
		e.removeMatches(matches, pending)
		e.drainEffects()

		e.state = StateFalling
		ApplyGravity(&e.board)
		e.state = StateFilling
		Refill(&e.board, e.rng)
	}
	return waves
}

// removeMatches clears matched cells, converting pending-special targets in
// place (color preserved) and enqueueing the payload of any pre-existing
// special that is not being re-upgraded this step.
func (e *Engine) removeMatches(matches []Match, pending []PendingSpecial) {
	pendingAt := make(map[Pos]PendingSpecial, len(pending))
	for _, ps := range pending {
		pendingAt[ps.Pos] = ps
	}

	for _, m := range matches {
		e.addScore(e.matchScore(m))

		for _, p := range m.Positions {
			if ps, ok := pendingAt[p]; ok {
				e.board.Set(p, Cell{Color: ps.Color, Special: ps.Kind, Spawning: true})
				continue
			}
			cell := e.board.At(p)
			if cell.Color == Empty || cell.Spawning {
				continue
			}
			if cell.Special != SpecialNone {
				e.effects.push(Effect{Pos: p, Kind: cell.Special, TargetColor: cell.Color})
			}
			e.clearForResolution(p)
		}
	}
}

// drainEffects pops queued detonations FIFO, incrementing the cascade per
// pop. Specials cleared by an effect enqueue their own payloads in the order
// the effect traverses them, so chains stay deterministic and bounded.
func (e *Engine) drainEffects() {
	for !e.effects.empty() {
		ef := e.effects.pop()
		e.cascade++

		cleared := 0
		for _, p := range effectTargets(ef, &e.board) {
			cell := e.board.At(p)
			if cell.Color == Empty {
				continue
			}
			if cell.Special != SpecialNone && p != ef.Pos && !cell.Spawning {
				e.effects.push(Effect{Pos: p, Kind: cell.Special, TargetColor: cell.Color})
			}
			e.clearForResolution(p)
			cleared++
		}

		e.addScore(specialEffectScore(ef.Kind, cleared, e.cascade))
	}
}

// clearForResolution empties a cell during resolution and credits a rush-zone
// capture when the cleared cell lies inside the active zone.
func (e *Engine) clearForResolution(p Pos) {
	if e.mode == ModeCascadeRush && e.rush.Zone.Contains(p) {
		e.rush.Zone.Active = false
		e.rush.Captured++
		e.rush.SpawnTimer = 0
	}
	e.board.ClearCell(p)
}

// settle finishes a resolution that started mid-turn (hypercube swaps, surge
// lines): gravity, refill, then any follow-on cascades, then end-of-turn
// bookkeeping.
func (e *Engine) settle() {
	e.state = StateFalling
	ApplyGravity(&e.board)
	e.state = StateFilling
	Refill(&e.board, e.rng)
	e.resolveCascades()
	e.finishTurn()
}

// finishTurn clears spawn shields, rescues stuck boards while budget
// remains, and lands on idle or game over.
func (e *Engine) finishTurn() {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			e.board[r][c].Spawning = false
		}
	}

	if e.state == StateGameOver {
		return
	}

	for !e.hasAnyMoveForMode() {
		if e.stuckEndsGame() {
			e.state = StateGameOver
			return
		}
		e.shuffleBoard()
	}

	if e.budgetExhausted() {
		e.state = StateGameOver
		return
	}
	e.state = StateIdle
}

// CheckGameOver reports whether the game has ended: no valid move remains and
// the mode's time or move budget is exhausted, or, in Twist, no valid rotation
// remains at all. A stuck board with budget remaining is reshuffled, not
// ended, except in Twist where a rotationless board is terminal.
func (e *Engine) CheckGameOver() bool {
	if e.state == StateGameOver {
		return true
	}
	return !e.hasAnyMoveForMode() && e.stuckEndsGame()
}

// SetPaused toggles the paused state; resolution never runs while paused.
func (e *Engine) SetPaused(paused bool) {
	switch {
	case paused && e.state == StateIdle:
		e.state = StatePaused
	case !paused && e.state == StatePaused:
		e.state = StateIdle
	}
}

// Read-only accessors.

// GetCell returns the gem color at (row, col); Empty out of bounds.
func (e *Engine) GetCell(row, col int) GemColor {
	return e.board.ColorAt(Pos{Row: row, Col: col})
}

// GetSpecial returns the special kind at (row, col); SpecialNone out of bounds.
func (e *Engine) GetSpecial(row, col int) SpecialKind {
	return e.board.At(Pos{Row: row, Col: col}).Special
}

// GetScore returns the current score.
func (e *Engine) GetScore() int { return e.score }

// GetLevel returns the current level (1..99, monotone within a game).
func (e *Engine) GetLevel() int { return e.level }

// GetMode returns the active mode.
func (e *Engine) GetMode() Mode { return e.mode }

// GetState returns the orchestrator state.
func (e *Engine) GetState() GameState { return e.state }

// GetCascade returns the cascade depth of the last resolved turn.
func (e *Engine) GetCascade() int { return e.cascade }

// GetTimeRemaining returns remaining seconds, or -1 in untimed modes.
func (e *Engine) GetTimeRemaining() float64 { return e.timeRemaining }

// MovesRemaining returns remaining moves, or -1 when unlimited.
func (e *Engine) MovesRemaining() int { return e.movesRemaining }

// Zone returns the current rush zone (Cascade Rush mode).
func (e *Engine) Zone() RushZone { return e.rush.Zone }

// ZonesCaptured returns how many rush zones have been captured.
func (e *Engine) ZonesCaptured() int { return e.rush.Captured }

// ZonesMissed returns how many rush zones expired uncaptured.
func (e *Engine) ZonesMissed() int { return e.rush.Missed }

// BonusTime returns the seconds earned from cascades in Cascade Rush.
func (e *Engine) BonusTime() float64 { return e.rush.BonusTime }

// Wave returns the Gem Surge wave number (1-based).
func (e *Engine) Wave() int { return e.surge.Wave }

// WaveScore returns the score accumulated toward the current wave target.
func (e *Engine) WaveScore() int { return e.surge.WaveScore }

// WaveTarget returns the current wave's score target.
func (e *Engine) WaveTarget() int { return e.surge.WaveTarget }

// FeaturedColor returns the Gem Surge featured color.
func (e *Engine) FeaturedColor() GemColor { return e.surge.FeaturedColor }

// SurgeLines returns the active surge lines.
func (e *Engine) SurgeLines() []SurgeLine { return e.surge.Lines }

// LightningHints returns the >=5-run hints from the last resolved turn.
func (e *Engine) LightningHints() []LightningHint { return e.lightning }
