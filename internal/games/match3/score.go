package match3

// MaxLevel caps level progression.
const MaxLevel = 99

// baseScore returns the base score for a match of the given length.
func baseScore(matchLen int) int {
	switch {
	case matchLen >= 5:
		return 200
	case matchLen == 4:
		return 100
	default:
		return 50
	}
}

// matchScore computes the score one match is worth right now:
// base * length * max(1, cascade) * modeMultiplier / 3, with truncating
// integer division. In Gem Surge the result doubles when the matched color is
// the featured color; the doubling applies only to base match scores, never
// to special-effect scores.
func (e *Engine) matchScore(m Match) int {
	cascade := e.cascade
	if cascade < 1 {
		cascade = 1
	}
	s := baseScore(m.Len()) * m.Len() * cascade * e.modeMultiplier() / 3
	if e.mode == ModeGemSurge && m.Color == e.surge.FeaturedColor {
		s *= 2
	}
	return s
}

// specialEffectScore computes the score an executed effect is worth:
// 50 per cleared cell, times the effect's kind multiplier, times
// max(1, cascade).
func specialEffectScore(kind SpecialKind, cleared, cascade int) int {
	if cascade < 1 {
		cascade = 1
	}
	return int(float64(cleared*50*cascade) * specialMultiplier(kind))
}

// modeMultiplier is the per-mode score multiplier.
func (e *Engine) modeMultiplier() int {
	switch e.mode {
	case ModeBlitz:
		return 2
	case ModeCascadeRush:
		return 3
	default:
		return 1
	}
}

// ScoreForLevel returns the score threshold at which level n unlocks.
// Level 1 unlocks at 0; level n at (n-1)*(2000+(n-2)*500)/2.
func ScoreForLevel(n int) int {
	if n <= 1 {
		return 0
	}
	return (n - 1) * (2000 + (n-2)*500) / 2
}

// levelForScore returns the largest level L <= MaxLevel whose threshold is
// at most score.
func levelForScore(score int) int {
	level := 1
	for level < MaxLevel && ScoreForLevel(level+1) <= score {
		level++
	}
	return level
}

// addScore credits points, feeds the Gem Surge wave counter, and advances the
// level monotonically.
func (e *Engine) addScore(delta int) {
	if delta <= 0 {
		return
	}
	e.score += delta
	if e.mode == ModeGemSurge {
		e.surge.WaveScore += delta
		e.checkWaveAdvance()
	}
	if lv := levelForScore(e.score); lv > e.level {
		e.level = lv
	}
}
