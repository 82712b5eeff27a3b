package match3

import "testing"

func TestEffectQueueFIFOAndCap(t *testing.T) {
	var q effectQueue
	for i := 0; i < MaxQueuedEffects; i++ {
		if !q.push(Effect{Pos: Pos{Row: i % BoardSize}}) {
			t.Fatalf("push %d rejected below cap", i)
		}
	}
	if q.push(Effect{}) {
		t.Error("push beyond cap should be rejected")
	}
	first := q.pop()
	if first.Pos.Row != 0 {
		t.Errorf("queue is not FIFO: popped %+v", first)
	}
}

func TestFlameTargets(t *testing.T) {
	e := newTestEngine(ModeClassic)

	got := effectTargets(Effect{Pos: Pos{Row: 4, Col: 4}, Kind: SpecialFlame}, &e.board)
	if len(got) != 9 {
		t.Errorf("interior flame: got %d targets, want 9", len(got))
	}

	got = effectTargets(Effect{Pos: Pos{Row: 0, Col: 0}, Kind: SpecialFlame}, &e.board)
	if len(got) != 4 {
		t.Errorf("corner flame: got %d targets, want 4", len(got))
	}
}

func TestStarTargetsRowAndColumnOnce(t *testing.T) {
	e := newTestEngine(ModeClassic)
	got := effectTargets(Effect{Pos: Pos{Row: 2, Col: 5}, Kind: SpecialStar}, &e.board)
	// Full row plus full column, center counted once.
	if len(got) != 2*BoardSize-1 {
		t.Errorf("star: got %d targets, want %d", len(got), 2*BoardSize-1)
	}
	seen := make(map[Pos]bool)
	for _, p := range got {
		if seen[p] {
			t.Fatalf("star targets contain duplicate %v", p)
		}
		seen[p] = true
	}
}

func TestHypercubeTargetsOneColor(t *testing.T) {
	e := newTestEngine(ModeClassic)
	got := effectTargets(Effect{Pos: Pos{Row: 0, Col: 0}, Kind: SpecialHypercube, TargetColor: Ruby}, &e.board)
	// The checker pattern holds 16 cells of each color.
	if len(got) != 16 {
		t.Errorf("hypercube: got %d targets, want 16", len(got))
	}
	for _, p := range got {
		if e.board.ColorAt(p) != Ruby {
			t.Errorf("hypercube target %v is not the target color", p)
		}
	}
}

func TestSupernovaTargets(t *testing.T) {
	e := newTestEngine(ModeClassic)

	// Interior: 3 full rows plus the remainder of 3 columns, no duplicates.
	got := effectTargets(Effect{Pos: Pos{Row: 4, Col: 4}, Kind: SpecialSupernova}, &e.board)
	if len(got) != 3*BoardSize+3*(BoardSize-3) {
		t.Errorf("interior supernova: got %d targets, want %d",
			len(got), 3*BoardSize+3*(BoardSize-3))
	}
	seen := make(map[Pos]bool)
	for _, p := range got {
		if seen[p] {
			t.Fatalf("supernova targets contain duplicate %v", p)
		}
		seen[p] = true
	}

	// Corner: 2 rows and 2 columns survive clipping.
	got = effectTargets(Effect{Pos: Pos{Row: 0, Col: 0}, Kind: SpecialSupernova}, &e.board)
	if len(got) != 2*BoardSize+2*(BoardSize-2) {
		t.Errorf("corner supernova: got %d targets, want %d",
			len(got), 2*BoardSize+2*(BoardSize-2))
	}
}

func TestSpecialMultipliers(t *testing.T) {
	cases := []struct {
		kind SpecialKind
		want float64
	}{
		{SpecialFlame, 1.5},
		{SpecialStar, 1.75},
		{SpecialHypercube, 1.5},
		{SpecialSupernova, 2.0},
	}
	for _, tc := range cases {
		if got := specialMultiplier(tc.kind); got != tc.want {
			t.Errorf("%v: got %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestDrainHypercubeScoresAndClears(t *testing.T) {
	// A detonating hypercube removes every gem of the target color and pays
	// 50 per cell with the 1.5x kind multiplier at cascade 1.
	e := newTestEngine(ModeClassic)
	e.clearForResolution(Pos{Row: 4, Col: 4})
	e.effects.push(Effect{Pos: Pos{Row: 4, Col: 4}, Kind: SpecialHypercube, TargetColor: Emerald})
	e.cascade = 0

	e.drainEffects()

	if n := e.board.CountColor(Emerald); n != 0 {
		t.Errorf("%d emeralds survived the hypercube", n)
	}
	want := int(float64(16*50*1) * 1.5)
	if e.score != want {
		t.Errorf("score: got %d, want %d", e.score, want)
	}
	if e.cascade != 1 {
		t.Errorf("cascade: got %d, want 1", e.cascade)
	}
}

func TestDrainChainsNestedSpecials(t *testing.T) {
	// A flame that clears a star enqueues the star; both detonate.
	e := newTestEngine(ModeClassic)
	e.board[3][3] = Cell{Color: Amethyst, Special: SpecialStar}
	e.effects.push(Effect{Pos: Pos{Row: 2, Col: 2}, Kind: SpecialFlame, TargetColor: Citrine})
	e.cascade = 0

	e.drainEffects()

	if e.board[3][3].Color != Empty {
		t.Error("flame should have cleared the star cell")
	}
	// The chained star empties its row and column.
	for c := 0; c < BoardSize; c++ {
		if c >= 1 && c <= 3 {
			continue // already hit by the flame
		}
		if e.board[3][c].Color != Empty {
			t.Errorf("row cell (3,%d) survived the chained star", c)
		}
	}
	for r := 0; r < BoardSize; r++ {
		if r >= 1 && r <= 3 {
			continue
		}
		if e.board[r][3].Color != Empty {
			t.Errorf("column cell (%d,3) survived the chained star", r)
		}
	}
	if e.cascade != 2 {
		t.Errorf("cascade after chain: got %d, want 2", e.cascade)
	}
}

func TestSpawningSpecialNotDetonatedByOwnWave(t *testing.T) {
	e := newTestEngine(ModeClassic)
	for c := 2; c <= 5; c++ {
		e.board[3][c] = Cell{Color: Amethyst}
	}

	matches, _ := FindMatches(&e.board)
	pending := BuildSpecials(matches)
	e.cascade = 1
	e.removeMatches(matches, pending)

	cell := e.board[3][4]
	if cell.Special != SpecialFlame || cell.Color != Amethyst || !cell.Spawning {
		t.Fatalf("expected spawning flame at (3,4), got %+v", cell)
	}
	if !e.effects.empty() {
		t.Error("a freshly spawned special must not enqueue its own effect")
	}
}

func TestPreexistingSpecialEnqueuedOnRemoval(t *testing.T) {
	e := newTestEngine(ModeClassic)
	for c := 2; c <= 4; c++ {
		e.board[3][c] = Cell{Color: Amethyst}
	}
	e.board[3][3].Special = SpecialFlame

	matches, _ := FindMatches(&e.board)
	e.cascade = 1
	e.removeMatches(matches, BuildSpecials(matches))
	e.drainEffects()

	// The flame's 3x3 neighborhood is gone.
	for r := 2; r <= 4; r++ {
		for c := 2; c <= 4; c++ {
			if e.board[r][c].Color != Empty {
				t.Errorf("cell (%d,%d) survived the flame", r, c)
			}
		}
	}
}
