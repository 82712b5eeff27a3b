package match3

import "testing"

func TestInitGameProducesSettledBoard(t *testing.T) {
	for _, mode := range []Mode{ModeClassic, ModeBlitz, ModeTwist, ModeCascadeRush, ModeGemSurge} {
		e := NewEngine(42)
		e.InitGame(mode)

		if e.board.EmptyCount() != 0 {
			t.Errorf("%v: board has empty cells after init", mode)
		}
		if HasMatches(&e.board) {
			t.Errorf("%v: board starts with a match", mode)
		}
		if !e.hasAnyMoveForMode() {
			t.Errorf("%v: board starts with no valid move", mode)
		}
		if e.GetState() != StateIdle {
			t.Errorf("%v: state after init is %v", mode, e.GetState())
		}
		if e.GetScore() != 0 || e.GetLevel() != 1 {
			t.Errorf("%v: score/level not reset", mode)
		}
	}
}

func TestSameSeedSameBoard(t *testing.T) {
	a := NewEngine(99)
	a.InitGame(ModeClassic)
	b := NewEngine(99)
	b.InitGame(ModeClassic)

	if a.board != b.board {
		t.Error("identical seeds should produce identical boards")
	}
}

func TestFailedSwapLeavesBoardUntouched(t *testing.T) {
	e := newTestEngine(ModeClassic)
	before := e.board

	// No adjacent swap on the checker board completes a run.
	if e.TrySwap(Pos{Row: 0, Col: 0}, Pos{Row: 0, Col: 1}) {
		t.Fatal("swap on checker board should not succeed")
	}
	if e.board != before {
		t.Error("failed swap mutated the board")
	}
	if e.GetScore() != 0 {
		t.Error("failed swap changed the score")
	}
	if e.GetState() != StateIdle {
		t.Errorf("state after failed swap: %v", e.GetState())
	}
}

func TestSwapRejectsBadArguments(t *testing.T) {
	e := newTestEngine(ModeClassic)
	cases := []struct {
		name string
		a, b Pos
	}{
		{"out of bounds", Pos{Row: -1, Col: 0}, Pos{Row: 0, Col: 0}},
		{"not adjacent", Pos{Row: 0, Col: 0}, Pos{Row: 0, Col: 2}},
		{"diagonal", Pos{Row: 0, Col: 0}, Pos{Row: 1, Col: 1}},
		{"same cell", Pos{Row: 3, Col: 3}, Pos{Row: 3, Col: 3}},
	}
	for _, tc := range cases {
		if e.TrySwap(tc.a, tc.b) {
			t.Errorf("%s: swap should be rejected", tc.name)
		}
	}
}

func TestSuccessfulSwapResolvesAndRefills(t *testing.T) {
	e := newTestEngine(ModeClassic)
	// Place two amethysts so that swapping (3,4) down completes a run at
	// row 4, cols 2..4.
	e.board[4][2] = Cell{Color: Amethyst}
	e.board[4][3] = Cell{Color: Amethyst}
	e.board[3][4] = Cell{Color: Amethyst}

	if !e.TrySwap(Pos{Row: 3, Col: 4}, Pos{Row: 4, Col: 4}) {
		t.Fatal("swap completing a run should succeed")
	}
	if e.GetScore() < 50 {
		t.Errorf("score after a 3-match: got %d, want >= 50", e.GetScore())
	}
	if e.GetCascade() < 1 {
		t.Errorf("cascade after a resolved turn: got %d", e.GetCascade())
	}
	if e.board.EmptyCount() != 0 {
		t.Error("board not refilled after resolution")
	}
	if HasMatches(&e.board) {
		t.Error("matches left on the board after resolution")
	}
	if s := e.GetState(); s != StateIdle && s != StateGameOver {
		t.Errorf("state after turn: %v", s)
	}
}

func TestRotateOnlyInTwistMode(t *testing.T) {
	e := newTestEngine(ModeClassic)
	if e.TryRotate(Pos{Row: 2, Col: 2}) {
		t.Error("rotation must be rejected outside Twist mode")
	}
}

func TestRotateResolvesMatch(t *testing.T) {
	e := newTestEngine(ModeTwist)
	// Row 5 holds two amethysts at cols 2,3; the block at (4,4) carries a
	// third at its bottom-right. Rotating clockwise moves (5,5) to (5,4),
	// completing the run.
	e.board[5][2] = Cell{Color: Amethyst}
	e.board[5][3] = Cell{Color: Amethyst}
	e.board[5][5] = Cell{Color: Amethyst}

	if !e.IsValidRotation(Pos{Row: 4, Col: 4}) {
		t.Fatal("rotation should be valid")
	}
	before := e.board
	if !e.TryRotate(Pos{Row: 4, Col: 4}) {
		t.Fatal("rotation completing a run should succeed")
	}
	if e.board == before {
		t.Error("board unchanged after successful rotation")
	}
	if e.GetScore() == 0 {
		t.Error("rotation that matched scored nothing")
	}
}

func TestFailedRotationRestoresBoard(t *testing.T) {
	e := newTestEngine(ModeTwist)
	before := e.board
	if e.TryRotate(Pos{Row: 0, Col: 0}) {
		t.Fatal("rotation on checker board should fail")
	}
	if e.board != before {
		t.Error("failed rotation mutated the board")
	}
}

func TestHypercubeSwapAgainstGem(t *testing.T) {
	e := newTestEngine(ModeClassic)
	e.board[4][4] = Cell{Color: Pearl, Special: SpecialHypercube}

	if !e.SwapHypercube(Pos{Row: 4, Col: 4}, Pos{Row: 4, Col: 5}) {
		t.Fatal("hypercube swap should succeed")
	}
	if e.board.EmptyCount() != 0 {
		t.Error("board not refilled after hypercube swap")
	}
	// All 16 checker cells of the target color plus the hypercube itself
	// were cleared at 50 points x1.5.
	if want := int(float64(16*50) * 1.5); e.GetScore() < want {
		t.Errorf("score: got %d, want >= %d", e.GetScore(), want)
	}
}

func TestHypercubeSwapRejectsNonHypercube(t *testing.T) {
	e := newTestEngine(ModeClassic)
	if e.SwapHypercube(Pos{Row: 4, Col: 4}, Pos{Row: 4, Col: 5}) {
		t.Error("swap without a hypercube endpoint should be rejected")
	}
}

func TestDoubleHypercubeWipesBoard(t *testing.T) {
	e := newTestEngine(ModeClassic)
	e.board[4][4] = Cell{Color: Pearl, Special: SpecialHypercube}
	e.board[4][5] = Cell{Color: Pearl, Special: SpecialHypercube}

	if !e.SwapHypercube(Pos{Row: 4, Col: 4}, Pos{Row: 4, Col: 5}) {
		t.Fatal("double hypercube swap should succeed")
	}
	if e.GetScore() < 64*50*3 {
		t.Errorf("score: got %d, want >= %d", e.GetScore(), 64*50*3)
	}
	if e.board.EmptyCount() != 0 {
		t.Error("board not refilled after wipe")
	}
}

func TestShuffleSettlesWithoutScoring(t *testing.T) {
	e := newTestEngine(ModeClassic)
	e.shuffleBoard()

	if e.GetScore() != 0 {
		t.Error("shuffle must not score")
	}
	if HasMatches(&e.board) {
		t.Error("shuffle left matches on the board")
	}
	if e.board.EmptyCount() != 0 {
		t.Error("shuffle emptied cells")
	}
}

func TestFindValidMoveOnCheckerBoard(t *testing.T) {
	e := newTestEngine(ModeClassic)
	if _, _, ok := e.FindValidMove(); ok {
		t.Error("checker board should have no valid move")
	}

	// Add a near-match; the scan should find the enabling swap.
	e.board[4][2] = Cell{Color: Amethyst}
	e.board[4][3] = Cell{Color: Amethyst}
	e.board[3][4] = Cell{Color: Amethyst}
	a, b, ok := e.Hint()
	if !ok {
		t.Fatal("expected a valid move")
	}
	if !e.IsValidSwap(a, b) {
		t.Errorf("hint returned invalid swap %v <-> %v", a, b)
	}
}

func TestGravityAndRefill(t *testing.T) {
	e := newTestEngine(ModeClassic)
	for c := 0; c < BoardSize; c++ {
		e.board.ClearCell(Pos{Row: 3, Col: c})
	}

	moved := ApplyGravity(&e.board)
	if !moved {
		t.Fatal("gravity should move gems into the gap")
	}
	// Empties collect at the top.
	for c := 0; c < BoardSize; c++ {
		if e.board[0][c].Color != Empty {
			t.Errorf("top of column %d not empty after gravity", c)
		}
		for r := 1; r < BoardSize; r++ {
			if e.board[r][c].Color == Empty {
				t.Errorf("hole below the surface at (%d,%d)", r, c)
			}
		}
	}

	filled := Refill(&e.board, e.rng)
	if filled != BoardSize {
		t.Errorf("refill count: got %d, want %d", filled, BoardSize)
	}
	if e.board.EmptyCount() != 0 {
		t.Error("board still has holes after refill")
	}
}

func TestCheckGameOverNeedsBothConditions(t *testing.T) {
	e := newTestEngine(ModeClassic)
	// Checker board is stuck, but classic has no budget to exhaust.
	if e.CheckGameOver() {
		t.Error("stuck board with unlimited budget is not game over")
	}

	e = newTestEngine(ModeBlitz)
	e.timeRemaining = 0
	if !e.CheckGameOver() {
		t.Error("stuck board with exhausted time is game over")
	}

	// With moves left on the board, an exhausted clock alone is also the end;
	// the engine reports it through Tick.
	e = newTestEngine(ModeBlitz)
	e.board[4][2] = Cell{Color: Amethyst}
	e.board[4][3] = Cell{Color: Amethyst}
	e.board[3][4] = Cell{Color: Amethyst}
	e.Tick(blitzDuration + 1)
	if e.GetState() != StateGameOver {
		t.Error("blitz should end when the clock runs out")
	}
}

func TestPauseBlocksEverything(t *testing.T) {
	e := newTestEngine(ModeBlitz)
	e.SetPaused(true)

	before := e.timeRemaining
	e.Tick(5)
	if e.timeRemaining != before {
		t.Error("clock ran while paused")
	}
	if e.TrySwap(Pos{Row: 0, Col: 0}, Pos{Row: 0, Col: 1}) {
		t.Error("swap accepted while paused")
	}

	e.SetPaused(false)
	if e.GetState() != StateIdle {
		t.Errorf("unpause should restore idle, got %v", e.GetState())
	}
}
