package match3

// Match is a maximal run of >=3 collinear same-color gems.
type Match struct {
	Positions  []Pos // ordered along the run
	Horizontal bool
	Color      GemColor
}

// Len returns the number of cells in the match.
func (m Match) Len() int {
	return len(m.Positions)
}

// Center returns the canonical center cell of the run, the one that upgrades
// into a special for length >=4 matches.
func (m Match) Center() Pos {
	return m.Positions[m.Len()/2]
}

// LightningHint marks a >=5 straight run. It names the row or column through
// the run's center so a host can show a lightning-strike visual; the engine
// itself never acts on it (the special spawned by the same match is
// authoritative and cells are never cleared twice).
type LightningHint struct {
	Center     Pos
	Horizontal bool // orientation of the run that produced the hint
}

// FindMatches scans the board row-major for horizontal runs, then for
// vertical runs, and returns all maximal runs of length >=3 together with
// lightning hints for runs of length >=5. A cell claimed by both a horizontal
// and a vertical run appears in both matches; removal is idempotent so the
// overlap only affects bookkeeping.
func FindMatches(b *Board) ([]Match, []LightningHint) {
	var matches []Match
	var hints []LightningHint

	record := func(positions []Pos, horizontal bool, color GemColor) {
		m := Match{Positions: positions, Horizontal: horizontal, Color: color}
		matches = append(matches, m)
		if m.Len() >= 5 {
			hints = append(hints, LightningHint{Center: m.Center(), Horizontal: horizontal})
		}
	}

	// Horizontal runs
	for r := 0; r < BoardSize; r++ {
		c := 0
		for c < BoardSize {
			color := b[r][c].Color
			if color == Empty {
				c++
				continue
			}
			end := c + 1
			for end < BoardSize && b[r][end].Color == color {
				end++
			}
			if end-c >= 3 {
				positions := make([]Pos, 0, end-c)
				for i := c; i < end; i++ {
					positions = append(positions, Pos{Row: r, Col: i})
				}
				record(positions, true, color)
			}
			c = end
		}
	}

	// Vertical runs
	for c := 0; c < BoardSize; c++ {
		r := 0
		for r < BoardSize {
			color := b[r][c].Color
			if color == Empty {
				r++
				continue
			}
			end := r + 1
			for end < BoardSize && b[end][c].Color == color {
				end++
			}
			if end-r >= 3 {
				positions := make([]Pos, 0, end-r)
				for i := r; i < end; i++ {
					positions = append(positions, Pos{Row: i, Col: c})
				}
				record(positions, false, color)
			}
			r = end
		}
	}

	return matches, hints
}

// HasMatches reports whether any run of >=3 exists on the board.
func HasMatches(b *Board) bool {
	m, _ := FindMatches(b)
	return len(m) > 0
}

// runThrough reports whether the cell at p participates in a >=3 run.
func runThrough(b *Board, p Pos) bool {
	color := b.At(p).Color
	if color == Empty {
		return false
	}

	// Horizontal extent through p
	n := 1
	for c := p.Col - 1; c >= 0 && b[p.Row][c].Color == color; c-- {
		n++
	}
	for c := p.Col + 1; c < BoardSize && b[p.Row][c].Color == color; c++ {
		n++
	}
	if n >= 3 {
		return true
	}

	// Vertical extent through p
	n = 1
	for r := p.Row - 1; r >= 0 && b[r][p.Col].Color == color; r-- {
		n++
	}
	for r := p.Row + 1; r < BoardSize && b[r][p.Col].Color == color; r++ {
		n++
	}
	return n >= 3
}
