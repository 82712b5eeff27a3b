package match3

// MaxQueuedEffects caps the effect FIFO; chain reactions beyond the cap are
// dropped so resolution stays bounded.
const MaxQueuedEffects = 16

// Effect is a deferred special-gem detonation. An effect is enqueued whenever
// a special gem is removed by anything other than its own creation.
type Effect struct {
	Pos         Pos
	Kind        SpecialKind
	TargetColor GemColor // color the special carried; hypercubes clear this color
}

// effectQueue is a bounded FIFO of pending detonations. FIFO order and the
// cascade-increment-per-pop rule make chain reactions deterministic.
type effectQueue struct {
	items []Effect
}

func (q *effectQueue) push(e Effect) bool {
	if len(q.items) >= MaxQueuedEffects {
		return false
	}
	q.items = append(q.items, e)
	return true
}

func (q *effectQueue) pop() Effect {
	e := q.items[0]
	q.items = q.items[1:]
	return e
}

func (q *effectQueue) empty() bool {
	return len(q.items) == 0
}

func (q *effectQueue) reset() {
	q.items = q.items[:0]
}

// effectTargets returns the cells an effect touches, in the order the effect
// traverses them. Nested specials enqueue in exactly this order.
func effectTargets(e Effect, b *Board) []Pos {
	var targets []Pos
	add := func(p Pos) {
		if b.InBounds(p) {
			targets = append(targets, p)
		}
	}

	switch e.Kind {
	case SpecialFlame:
		for r := e.Pos.Row - 1; r <= e.Pos.Row+1; r++ {
			for c := e.Pos.Col - 1; c <= e.Pos.Col+1; c++ {
				add(Pos{Row: r, Col: c})
			}
		}

	case SpecialStar:
		for c := 0; c < BoardSize; c++ {
			add(Pos{Row: e.Pos.Row, Col: c})
		}
		for r := 0; r < BoardSize; r++ {
			if r != e.Pos.Row {
				add(Pos{Row: r, Col: e.Pos.Col})
			}
		}

	case SpecialHypercube:
		for r := 0; r < BoardSize; r++ {
			for c := 0; c < BoardSize; c++ {
				if b[r][c].Color == e.TargetColor {
					add(Pos{Row: r, Col: c})
				}
			}
		}

	case SpecialSupernova:
		// Union of three rows and three columns through the center.
		inRows := func(r int) bool {
			return r >= e.Pos.Row-1 && r <= e.Pos.Row+1
		}
		for r := e.Pos.Row - 1; r <= e.Pos.Row+1; r++ {
			for c := 0; c < BoardSize; c++ {
				add(Pos{Row: r, Col: c})
			}
		}
		for c := e.Pos.Col - 1; c <= e.Pos.Col+1; c++ {
			if c < 0 || c >= BoardSize {
				continue
			}
			for r := 0; r < BoardSize; r++ {
				if !inRows(r) {
					add(Pos{Row: r, Col: c})
				}
			}
		}
	}

	return targets
}

// specialMultiplier is the score multiplier each effect kind carries.
func specialMultiplier(kind SpecialKind) float64 {
	switch kind {
	case SpecialFlame:
		return 1.5
	case SpecialStar:
		return 1.75
	case SpecialHypercube:
		return 1.5
	case SpecialSupernova:
		return 2.0
	default:
		return 1.0
	}
}
