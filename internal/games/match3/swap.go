package match3

// IsValidSwap reports whether swapping a and b is legal: both in bounds,
// 4-adjacent, both non-empty, and the swap leaves at least one of the two
// cells on a >=3 run. The board is left untouched.
func (e *Engine) IsValidSwap(a, b Pos) bool {
	if !e.board.InBounds(a) || !e.board.InBounds(b) || !adjacent(a, b) {
		return false
	}
	if e.board.IsEmpty(a) || e.board.IsEmpty(b) {
		return false
	}

	e.swapCells(a, b)
	ok := runThrough(&e.board, a) || runThrough(&e.board, b)
	e.swapCells(a, b)
	return ok
}

func (e *Engine) swapCells(a, b Pos) {
	e.board[a.Row][a.Col], e.board[b.Row][b.Col] = e.board[b.Row][b.Col], e.board[a.Row][a.Col]
}

// IsValidRotation reports whether rotating the 2x2 block with top-left p
// clockwise produces a >=3 run at any of the four positions.
func (e *Engine) IsValidRotation(p Pos) bool {
	if p.Row < 0 || p.Col < 0 || p.Row+1 >= BoardSize || p.Col+1 >= BoardSize {
		return false
	}
	quad := [4]Pos{
		p,
		{Row: p.Row, Col: p.Col + 1},
		{Row: p.Row + 1, Col: p.Col + 1},
		{Row: p.Row + 1, Col: p.Col},
	}
	for _, q := range quad {
		if e.board.IsEmpty(q) {
			return false
		}
	}

	e.rotateBlock(p, true)
	ok := false
	for _, q := range quad {
		if runThrough(&e.board, q) {
			ok = true
			break
		}
	}
	e.rotateBlock(p, false)
	return ok
}

// rotateBlock rotates the 2x2 block with top-left p. Clockwise:
// (tl, tr, br, bl) <- (bl, tl, tr, br).
func (e *Engine) rotateBlock(p Pos, clockwise bool) {
	tl := Pos{Row: p.Row, Col: p.Col}
	tr := Pos{Row: p.Row, Col: p.Col + 1}
	br := Pos{Row: p.Row + 1, Col: p.Col + 1}
	bl := Pos{Row: p.Row + 1, Col: p.Col}

	a, b, c, d := e.board.At(tl), e.board.At(tr), e.board.At(br), e.board.At(bl)
	if clockwise {
		e.board.Set(tl, d)
		e.board.Set(tr, a)
		e.board.Set(br, b)
		e.board.Set(bl, c)
	} else {
		e.board.Set(tl, b)
		e.board.Set(tr, c)
		e.board.Set(br, d)
		e.board.Set(bl, a)
	}
}

// FindValidMove returns one legal swap, scanning row-major and trying the
// right and down neighbor of each cell. Used for hints and stuck detection.
func (e *Engine) FindValidMove() (Pos, Pos, bool) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			a := Pos{Row: r, Col: c}
			right := Pos{Row: r, Col: c + 1}
			down := Pos{Row: r + 1, Col: c}
			if e.board.InBounds(right) && e.IsValidSwap(a, right) {
				return a, right, true
			}
			if e.board.InBounds(down) && e.IsValidSwap(a, down) {
				return a, down, true
			}
		}
	}
	return Pos{}, Pos{}, false
}

// Hint returns a valid swap, or ok=false if the board is stuck.
func (e *Engine) Hint() (Pos, Pos, bool) {
	return e.FindValidMove()
}

func (e *Engine) hasAnyValidMove() bool {
	_, _, ok := e.FindValidMove()
	return ok
}

func (e *Engine) hasAnyValidRotation() bool {
	for r := 0; r+1 < BoardSize; r++ {
		for c := 0; c+1 < BoardSize; c++ {
			if e.IsValidRotation(Pos{Row: r, Col: c}) {
				return true
			}
		}
	}
	return false
}

// hasAnyMoveForMode checks the move kind the current mode uses.
func (e *Engine) hasAnyMoveForMode() bool {
	if e.mode == ModeTwist {
		return e.hasAnyValidRotation()
	}
	return e.hasAnyValidMove()
}

// shuffleBoard rescues a stuck board: Fisher-Yates over all non-empty cells,
// place back, re-roll any incidental runs without scoring. Callers loop while
// the board stays dead.
func (e *Engine) shuffleBoard() {
	var cells []Cell
	var slots []Pos
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			p := Pos{Row: r, Col: c}
			if cell := e.board.At(p); cell.Color != Empty {
				cells = append(cells, cell)
				slots = append(slots, p)
			}
		}
	}

	for i := len(cells) - 1; i > 0; i-- {
		j := e.rng.Intn(i + 1)
		cells[i], cells[j] = cells[j], cells[i]
	}
	for i, p := range slots {
		e.board.Set(p, cells[i])
	}

	e.removeIncidentalRuns()
}

// removeIncidentalRuns re-rolls colors on cells that happen to form runs
// after a shuffle or initial fill, so the board starts settled.
func (e *Engine) removeIncidentalRuns() {
	for {
		matches, _ := FindMatches(&e.board)
		if len(matches) == 0 {
			return
		}
		for _, m := range matches {
			for _, p := range m.Positions {
				cell := e.board.At(p)
				cell.Color = e.colorAvoidingRuns(p)
				e.board.Set(p, cell)
			}
		}
	}
}

// colorAvoidingRuns picks a random color that does not complete a run of 3
// with the two neighbors to the left or above p.
func (e *Engine) colorAvoidingRuns(p Pos) GemColor {
	for {
		color := randomColor(e.rng)
		if p.Col >= 2 &&
			e.board[p.Row][p.Col-1].Color == color &&
			e.board[p.Row][p.Col-2].Color == color {
			continue
		}
		if p.Row >= 2 &&
			e.board[p.Row-1][p.Col].Color == color &&
			e.board[p.Row-2][p.Col].Color == color {
			continue
		}
		return color
	}
}
