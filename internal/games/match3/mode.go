package match3

import "math"

// Mode selects the rule set an engine runs.
type Mode int

const (
	ModeClassic Mode = iota
	ModeBlitz
	ModeTwist
	ModeCascadeRush
	ModeGemSurge
)

// String returns the mode's config/CLI name.
func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeBlitz:
		return "blitz"
	case ModeTwist:
		return "twist"
	case ModeCascadeRush:
		return "rush"
	case ModeGemSurge:
		return "surge"
	default:
		return "unknown"
	}
}

// ParseMode resolves a mode name; unknown names fall back to classic.
func ParseMode(s string) Mode {
	switch s {
	case "blitz":
		return ModeBlitz
	case "twist":
		return ModeTwist
	case "rush":
		return ModeCascadeRush
	case "surge":
		return ModeGemSurge
	default:
		return ModeClassic
	}
}

// Mode timing constants.
const (
	blitzDuration = 60.0
	rushDuration  = 30.0
	surgeDuration = 45.0

	zoneSpawnInterval = 8.0 // seconds between rush-zone spawns when none is active
	zoneMinDuration   = 3.0
	zoneSize          = 3 // rush zones are 3x3

	surgeLineInterval = 6.0  // seconds between surge-line spawns below the cap
	surgeLineFuse     = 10.0 // seconds a surge line stays triggerable
	maxSurgeLines     = 8

	initialWaveTarget = 1000
	waveTargetGrowth  = 1.75
)

// RushZone is a 3x3 capture target in Cascade Rush mode.
type RushZone struct {
	Row, Col  int // top-left corner
	Remaining float64
	Active    bool
}

// Contains reports whether p lies inside the zone.
func (z RushZone) Contains(p Pos) bool {
	return z.Active &&
		p.Row >= z.Row && p.Row < z.Row+zoneSize &&
		p.Col >= z.Col && p.Col < z.Col+zoneSize
}

type rushState struct {
	Zone       RushZone
	Captured   int
	Missed     int
	SpawnTimer float64
	BonusTime  float64 // total seconds earned from cascades
}

// SurgeLine is a pending whole-row or whole-column clear the player can
// trigger in Gem Surge mode.
type SurgeLine struct {
	Horizontal bool
	Index      int
	Remaining  float64
}

type surgeState struct {
	Wave          int
	WaveTarget    int
	WaveScore     int
	FeaturedColor GemColor
	Lines         []SurgeLine
	SpawnTimer    float64
}

// Tick advances mode timers by dt seconds. Countdowns reaching zero set
// game over; resolution never runs concurrently with Tick, so a cascade
// always completes before the clock can end the game.
func (e *Engine) Tick(dt float64) {
	if e.state == StateGameOver || e.state == StatePaused || dt <= 0 {
		return
	}

	switch e.mode {
	case ModeBlitz:
		e.countDown(dt)

	case ModeCascadeRush:
		e.countDown(dt)
		if e.state == StateGameOver {
			return
		}
		e.tickRushZone(dt)

	case ModeGemSurge:
		e.countDown(dt)
		if e.state == StateGameOver {
			return
		}
		e.tickSurgeLines(dt)
	}
}

func (e *Engine) countDown(dt float64) {
	e.timeRemaining -= dt
	if e.timeRemaining <= 0 {
		e.timeRemaining = 0
		e.state = StateGameOver
	}
}

func (e *Engine) tickRushZone(dt float64) {
	if e.rush.Zone.Active {
		e.rush.Zone.Remaining -= dt
		if e.rush.Zone.Remaining <= 0 {
			e.rush.Zone.Active = false
			e.rush.Missed++
			e.rush.SpawnTimer = 0
		}
		return
	}

	e.rush.SpawnTimer += dt
	if e.rush.SpawnTimer >= zoneSpawnInterval {
		e.spawnRushZone()
	}
}

// spawnRushZone places a fresh 3x3 zone with a uniformly random top-left in
// [0..5]x[0..5]. The zone lasts 10*0.9^(level-1) seconds, clamped to >=3.
func (e *Engine) spawnRushZone() {
	duration := 10 * math.Pow(0.9, float64(e.level-1))
	if duration < zoneMinDuration {
		duration = zoneMinDuration
	}
	e.rush.Zone = RushZone{
		Row:       e.rng.Intn(BoardSize - zoneSize + 1),
		Col:       e.rng.Intn(BoardSize - zoneSize + 1),
		Remaining: duration,
		Active:    true,
	}
	e.rush.SpawnTimer = 0
}

func (e *Engine) tickSurgeLines(dt float64) {
	kept := e.surge.Lines[:0]
	for _, line := range e.surge.Lines {
		line.Remaining -= dt
		if line.Remaining > 0 {
			kept = append(kept, line)
		}
	}
	e.surge.Lines = kept

	e.surge.SpawnTimer += dt
	if e.surge.SpawnTimer >= surgeLineInterval && len(e.surge.Lines) < maxSurgeLines {
		e.spawnSurgeLine()
	}
}

func (e *Engine) spawnSurgeLine() {
	e.surge.Lines = append(e.surge.Lines, SurgeLine{
		Horizontal: e.rng.Intn(2) == 0,
		Index:      e.rng.Intn(BoardSize),
		Remaining:  surgeLineFuse,
	})
	e.surge.SpawnTimer = 0
}

// TriggerSurgeLine clears surge line i (a whole row or column), pays
// 150 + 25 per cleared cell, and resolves any resulting cascades.
// Returns false outside Gem Surge mode or for an inactive index.
func (e *Engine) TriggerSurgeLine(i int) bool {
	if e.mode != ModeGemSurge || e.state != StateIdle {
		return false
	}
	if i < 0 || i >= len(e.surge.Lines) {
		return false
	}

	line := e.surge.Lines[i]
	e.surge.Lines = append(e.surge.Lines[:i], e.surge.Lines[i+1:]...)

	cleared := 0
	for j := 0; j < BoardSize; j++ {
		p := Pos{Row: line.Index, Col: j}
		if !line.Horizontal {
			p = Pos{Row: j, Col: line.Index}
		}
		cell := e.board.At(p)
		if cell.Color == Empty {
			continue
		}
		if cell.Special != SpecialNone {
			e.effects.push(Effect{Pos: p, Kind: cell.Special, TargetColor: cell.Color})
		}
		e.clearForResolution(p)
		cleared++
	}

	e.cascade = 0
	e.addScore(150 + 25*cleared)
	e.drainEffects()
	e.settle()
	return true
}

// checkWaveAdvance rolls Gem Surge to the next wave whenever the wave score
// reaches the target: bonus time max(5, 15-2*(wave-2)), target x1.75, wave
// score reset, featured color re-randomized.
func (e *Engine) checkWaveAdvance() {
	for e.surge.WaveScore >= e.surge.WaveTarget {
		bonus := 15 - 2*(e.surge.Wave-2)
		if bonus < 5 {
			bonus = 5
		}
		e.timeRemaining += float64(bonus)
		e.surge.Wave++
		e.surge.WaveTarget = int(float64(e.surge.WaveTarget) * waveTargetGrowth)
		e.surge.WaveScore = 0
		e.surge.FeaturedColor = randomColor(e.rng)
	}
}

// initModeState seeds per-mode counters for a fresh game.
func (e *Engine) initModeState() {
	e.timeRemaining = -1 // untimed
	e.movesRemaining = -1
	e.rush = rushState{}
	e.surge = surgeState{}

	switch e.mode {
	case ModeBlitz:
		e.timeRemaining = blitzDuration
	case ModeCascadeRush:
		e.timeRemaining = rushDuration
	case ModeGemSurge:
		e.timeRemaining = surgeDuration
		e.surge = surgeState{
			Wave:          1,
			WaveTarget:    initialWaveTarget,
			FeaturedColor: randomColor(e.rng),
		}
	}
}

// budgetExhausted reports whether the mode's time or move budget is spent.
// Untimed modes carry timeRemaining -1 and movesRemaining -1.
func (e *Engine) budgetExhausted() bool {
	return e.timeRemaining == 0 || e.movesRemaining == 0
}

// stuckEndsGame reports whether a board with no available move ends the game.
// Twist has no reshuffle rescue: the game ends as soon as no rotation
// produces a match. Other modes end only when the budget is spent.
func (e *Engine) stuckEndsGame() bool {
	return e.mode == ModeTwist || e.budgetExhausted()
}
