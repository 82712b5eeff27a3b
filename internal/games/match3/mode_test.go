package match3

import "testing"

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want Mode
	}{
		{"classic", ModeClassic},
		{"blitz", ModeBlitz},
		{"twist", ModeTwist},
		{"rush", ModeCascadeRush},
		{"surge", ModeGemSurge},
		{"bogus", ModeClassic},
	}
	for _, tc := range cases {
		if got := ParseMode(tc.in); got != tc.want {
			t.Errorf("%q: got %v, want %v", tc.in, got, tc.want)
		}
	}
	for _, m := range []Mode{ModeClassic, ModeBlitz, ModeTwist, ModeCascadeRush, ModeGemSurge} {
		if ParseMode(m.String()) != m {
			t.Errorf("round trip failed for %v", m)
		}
	}
}

func TestInitModeStateBudgets(t *testing.T) {
	cases := []struct {
		mode     Mode
		wantTime float64
	}{
		{ModeClassic, -1},
		{ModeBlitz, blitzDuration},
		{ModeTwist, -1},
		{ModeCascadeRush, rushDuration},
		{ModeGemSurge, surgeDuration},
	}
	for _, tc := range cases {
		e := newTestEngine(tc.mode)
		if e.GetTimeRemaining() != tc.wantTime {
			t.Errorf("%v: time %v, want %v", tc.mode, e.GetTimeRemaining(), tc.wantTime)
		}
		if e.budgetExhausted() {
			t.Errorf("%v: fresh game reports exhausted budget", tc.mode)
		}
	}
}

func TestBlitzClockEndsGame(t *testing.T) {
	e := newTestEngine(ModeBlitz)
	e.Tick(30)
	if e.GetState() != StateIdle {
		t.Fatalf("mid-game state: %v", e.GetState())
	}
	e.Tick(31)
	if e.GetState() != StateGameOver {
		t.Error("blitz should end when the clock hits zero")
	}
	if e.GetTimeRemaining() != 0 {
		t.Errorf("clock should clamp at 0, got %v", e.GetTimeRemaining())
	}

	// Ticking a finished game is a no-op.
	e.Tick(10)
	if e.GetTimeRemaining() != 0 {
		t.Error("finished game still ticking")
	}
}

func TestUntimedModesIgnoreTick(t *testing.T) {
	e := newTestEngine(ModeClassic)
	e.Tick(1000)
	if e.GetState() != StateIdle {
		t.Error("classic has no clock to run out")
	}
	if e.GetTimeRemaining() != -1 {
		t.Errorf("untimed clock moved: %v", e.GetTimeRemaining())
	}
}

func TestTwistStuckBoardEndsGame(t *testing.T) {
	e := newTestEngine(ModeTwist)
	if e.hasAnyValidRotation() {
		t.Fatal("expected no valid rotation on the checker board")
	}
	if !e.CheckGameOver() {
		t.Error("twist with no valid rotation should be game over")
	}
	e.finishTurn()
	if e.GetState() != StateGameOver {
		t.Errorf("finishTurn state = %v, want %v", e.GetState(), StateGameOver)
	}
}

func TestRushZoneSpawnsAndExpires(t *testing.T) {
	e := newTestEngine(ModeCascadeRush)

	e.Tick(zoneSpawnInterval)
	z := e.Zone()
	if !z.Active {
		t.Fatal("zone should spawn after the interval")
	}
	if z.Row < 0 || z.Row > BoardSize-zoneSize || z.Col < 0 || z.Col > BoardSize-zoneSize {
		t.Errorf("zone out of range: %+v", z)
	}
	if z.Remaining != 10 {
		t.Errorf("level-1 zone duration: got %v, want 10", z.Remaining)
	}

	e.Tick(z.Remaining + 0.1)
	if e.Zone().Active {
		t.Error("expired zone still active")
	}
	if e.ZonesMissed() != 1 {
		t.Errorf("missed count: got %d, want 1", e.ZonesMissed())
	}
}

func TestRushZoneDurationShrinksWithLevel(t *testing.T) {
	e := newTestEngine(ModeCascadeRush)
	e.level = 30
	e.spawnRushZone()
	if got := e.Zone().Remaining; got != zoneMinDuration {
		t.Errorf("high-level zone duration: got %v, want clamp %v", got, zoneMinDuration)
	}
}

func TestRushZoneCapture(t *testing.T) {
	e := newTestEngine(ModeCascadeRush)
	e.spawnRushZone()
	z := e.Zone()

	e.clearForResolution(Pos{Row: z.Row + 1, Col: z.Col + 1})
	if e.Zone().Active {
		t.Error("captured zone still active")
	}
	if e.ZonesCaptured() != 1 {
		t.Errorf("captured count: got %d, want 1", e.ZonesCaptured())
	}
	if e.ZonesMissed() != 0 {
		t.Errorf("capture counted as miss")
	}
}

func TestRushCascadesEarnBonusTime(t *testing.T) {
	e := newTestEngine(ModeCascadeRush)
	for c := 2; c <= 4; c++ {
		e.board[3][c] = Cell{Color: Amethyst}
	}

	before := e.GetTimeRemaining()
	e.beginTurn()
	waves := e.resolveCascades()
	if waves < 1 {
		t.Fatal("expected at least one wave")
	}
	if e.BonusTime() < 2 {
		t.Errorf("first cascade should earn 2s, got %v", e.BonusTime())
	}
	if e.GetTimeRemaining() <= before {
		t.Error("bonus time not added to the clock")
	}
}

func TestSurgeWaveAdvance(t *testing.T) {
	e := newTestEngine(ModeGemSurge)
	if e.Wave() != 1 || e.WaveTarget() != initialWaveTarget {
		t.Fatalf("fresh surge state: wave %d target %d", e.Wave(), e.WaveTarget())
	}

	before := e.GetTimeRemaining()
	e.addScore(initialWaveTarget)

	if e.Wave() != 2 {
		t.Errorf("wave: got %d, want 2", e.Wave())
	}
	if e.WaveScore() != 0 {
		t.Errorf("wave score should reset, got %d", e.WaveScore())
	}
	if want := int(float64(initialWaveTarget) * waveTargetGrowth); e.WaveTarget() != want {
		t.Errorf("wave target: got %d, want %d", e.WaveTarget(), want)
	}
	if e.GetTimeRemaining() <= before {
		t.Error("wave advance should add bonus time")
	}
}

func TestSurgeWaveBonusFloorsAtFive(t *testing.T) {
	e := newTestEngine(ModeGemSurge)
	e.surge.Wave = 10
	e.surge.WaveTarget = 100
	e.surge.WaveScore = 100
	before := e.GetTimeRemaining()

	e.checkWaveAdvance()
	if got := e.GetTimeRemaining() - before; got != 5 {
		t.Errorf("late-wave bonus: got %vs, want 5s", got)
	}
}

func TestSurgeLineSpawnAndExpiry(t *testing.T) {
	e := newTestEngine(ModeGemSurge)

	e.Tick(surgeLineInterval)
	if len(e.SurgeLines()) != 1 {
		t.Fatalf("expected 1 surge line, got %d", len(e.SurgeLines()))
	}
	line := e.SurgeLines()[0]
	if line.Remaining != surgeLineFuse {
		t.Errorf("fresh line fuse: got %v, want %v", line.Remaining, surgeLineFuse)
	}

	e.Tick(surgeLineFuse + 0.1)
	for _, l := range e.SurgeLines() {
		if l.Remaining <= 0 {
			t.Errorf("expired line kept: %+v", l)
		}
	}
}

func TestTriggerSurgeLine(t *testing.T) {
	e := newTestEngine(ModeGemSurge)
	e.surge.Lines = append(e.surge.Lines, SurgeLine{Horizontal: true, Index: 3, Remaining: 5})

	if !e.TriggerSurgeLine(0) {
		t.Fatal("trigger should succeed")
	}
	if len(e.SurgeLines()) != 0 {
		t.Error("triggered line not removed")
	}
	// 150 + 25 per cleared cell for a full row, possibly plus cascades.
	if e.GetScore() < 150+25*BoardSize {
		t.Errorf("score: got %d, want >= %d", e.GetScore(), 150+25*BoardSize)
	}
	if e.board.EmptyCount() != 0 {
		t.Error("board not refilled after line clear")
	}
}

func TestTriggerSurgeLineRejected(t *testing.T) {
	e := newTestEngine(ModeClassic)
	if e.TriggerSurgeLine(0) {
		t.Error("trigger outside Gem Surge must fail")
	}

	e = newTestEngine(ModeGemSurge)
	if e.TriggerSurgeLine(0) {
		t.Error("trigger with no active lines must fail")
	}
	if e.TriggerSurgeLine(-1) {
		t.Error("negative index must fail")
	}
}
