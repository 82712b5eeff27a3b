package match3

import "testing"

func threeMatch(color GemColor) Match {
	return Match{
		Positions:  []Pos{{4, 2}, {4, 3}, {4, 4}},
		Horizontal: true,
		Color:      color,
	}
}

func TestMatchScoreBase(t *testing.T) {
	e := newTestEngine(ModeClassic)
	e.cascade = 1

	// 50 * 3 * 1 * 1 / 3
	if got := e.matchScore(threeMatch(Amethyst)); got != 50 {
		t.Errorf("3-match: got %d, want 50", got)
	}

	// Division truncates: 100 * 4 * 1 * 1 / 3 = 133.
	m := Match{
		Positions:  []Pos{{4, 2}, {4, 3}, {4, 4}, {4, 5}},
		Horizontal: true,
		Color:      Amethyst,
	}
	if got := e.matchScore(m); got != 133 {
		t.Errorf("4-match: got %d, want 133", got)
	}

	// 200 * 5 * 1 * 1 / 3 = 333.
	m.Positions = append(m.Positions, Pos{Row: 4, Col: 6})
	if got := e.matchScore(m); got != 333 {
		t.Errorf("5-match: got %d, want 333", got)
	}
}

func TestMatchScoreCascadeMultiplies(t *testing.T) {
	e := newTestEngine(ModeClassic)

	e.cascade = 0 // treated as 1
	if got := e.matchScore(threeMatch(Amethyst)); got != 50 {
		t.Errorf("cascade 0: got %d, want 50", got)
	}
	e.cascade = 3
	if got := e.matchScore(threeMatch(Amethyst)); got != 150 {
		t.Errorf("cascade 3: got %d, want 150", got)
	}
}

func TestMatchScoreModeMultipliers(t *testing.T) {
	cases := []struct {
		mode Mode
		want int
	}{
		{ModeClassic, 50},
		{ModeBlitz, 100},
		{ModeTwist, 50},
		{ModeCascadeRush, 150},
		{ModeGemSurge, 50},
	}
	for _, tc := range cases {
		e := newTestEngine(tc.mode)
		e.cascade = 1
		e.surge.FeaturedColor = Citrine // not the matched color
		if got := e.matchScore(threeMatch(Amethyst)); got != tc.want {
			t.Errorf("%v: got %d, want %d", tc.mode, got, tc.want)
		}
	}
}

func TestSurgeFeaturedColorDoubles(t *testing.T) {
	e := newTestEngine(ModeGemSurge)
	e.cascade = 1
	e.surge.FeaturedColor = Amethyst

	if got := e.matchScore(threeMatch(Amethyst)); got != 100 {
		t.Errorf("featured 3-match: got %d, want 100", got)
	}
	if got := e.matchScore(threeMatch(Citrine)); got != 50 {
		t.Errorf("non-featured 3-match: got %d, want 50", got)
	}
}

func TestSpecialEffectScore(t *testing.T) {
	cases := []struct {
		kind    SpecialKind
		cleared int
		cascade int
		want    int
	}{
		{SpecialFlame, 9, 1, 675},       // 9*50*1 * 1.5
		{SpecialStar, 15, 1, 1312},      // 15*50*1 * 1.75
		{SpecialHypercube, 16, 1, 1200}, // 16*50*1 * 1.5
		{SpecialSupernova, 39, 2, 7800}, // 39*50*2 * 2.0
		{SpecialFlame, 9, 0, 675},       // cascade 0 treated as 1
	}
	for _, tc := range cases {
		if got := specialEffectScore(tc.kind, tc.cleared, tc.cascade); got != tc.want {
			t.Errorf("%v cleared=%d cascade=%d: got %d, want %d",
				tc.kind, tc.cleared, tc.cascade, got, tc.want)
		}
	}
}

func TestScoreForLevel(t *testing.T) {
	cases := []struct {
		level int
		want  int
	}{
		{1, 0},
		{2, 1000},
		{3, 2500},
		{4, 4500},
		{5, 7000},
	}
	for _, tc := range cases {
		if got := ScoreForLevel(tc.level); got != tc.want {
			t.Errorf("level %d: got %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestLevelForScore(t *testing.T) {
	if got := levelForScore(999); got != 1 {
		t.Errorf("999 points: got level %d, want 1", got)
	}
	if got := levelForScore(1000); got != 2 {
		t.Errorf("1000 points: got level %d, want 2", got)
	}
	if got := levelForScore(1 << 40); got != MaxLevel {
		t.Errorf("huge score: got level %d, want %d", got, MaxLevel)
	}
}

func TestAddScoreAdvancesLevelMonotonically(t *testing.T) {
	e := newTestEngine(ModeClassic)
	e.addScore(1200)
	if e.GetLevel() != 2 {
		t.Errorf("level: got %d, want 2", e.GetLevel())
	}
	// Level never drops, even if the mapping would say otherwise.
	e.level = 5
	e.addScore(1)
	if e.GetLevel() != 5 {
		t.Errorf("level dropped: got %d", e.GetLevel())
	}
	e.addScore(0)
	e.addScore(-10)
	if e.GetScore() != 1201 {
		t.Errorf("non-positive deltas must be ignored, score %d", e.GetScore())
	}
}
