package millionaire

import (
	"math/rand"
	"testing"
)

func newTestLifelines(seed int64) *Lifelines {
	return NewLifelines(rand.New(rand.NewSource(seed)))
}

func TestFiftyFiftyEliminatesTwoWrong(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		l := newTestLifelines(seed)
		order, ok := l.ApplyFiftyFifty(2)
		if !ok {
			t.Fatal("fresh lifeline rejected")
		}
		if order[0] == order[1] {
			t.Fatalf("seed %d: same option eliminated twice", seed)
		}
		for _, idx := range order {
			if idx == 2 {
				t.Fatalf("seed %d: correct option eliminated", seed)
			}
			if idx < 0 || idx > 3 {
				t.Fatalf("seed %d: index %d out of range", seed, idx)
			}
		}
	}
}

func TestLifelinesSingleUse(t *testing.T) {
	l := newTestLifelines(1)

	if _, ok := l.ApplyFiftyFifty(0); !ok {
		t.Fatal("first use rejected")
	}
	if _, ok := l.ApplyFiftyFifty(0); ok {
		t.Error("second 50:50 should be rejected")
	}
	if _, ok := l.GetPhoneResult(0, Easy, [4]bool{}); !ok {
		t.Fatal("first phone rejected")
	}
	if _, ok := l.GetPhoneResult(0, Easy, [4]bool{}); ok {
		t.Error("second phone should be rejected")
	}
	if _, ok := l.GetAudiencePoll(0, Easy, [4]bool{}); !ok {
		t.Fatal("first audience rejected")
	}
	if _, ok := l.GetAudiencePoll(0, Easy, [4]bool{}); ok {
		t.Error("second audience should be rejected")
	}

	l.Reset()
	if _, ok := l.ApplyFiftyFifty(0); !ok {
		t.Error("reset should restore lifelines")
	}
}

func TestAudiencePollSumsTo100(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		l := newTestLifelines(seed)
		poll, ok := l.GetAudiencePoll(1, Medium, [4]bool{})
		if !ok {
			t.Fatal("poll rejected")
		}
		sum := 0
		for i, p := range poll {
			if p < 0 {
				t.Fatalf("seed %d: negative percentage at %d", seed, i)
			}
			sum += p
		}
		if sum != 100 {
			t.Fatalf("seed %d: poll sums to %d", seed, sum)
		}
		if poll[1] < 30 || poll[1] > 50 {
			t.Fatalf("seed %d: medium correct %d outside [30,50]", seed, poll[1])
		}
	}
}

func TestAudiencePollWindows(t *testing.T) {
	cases := []struct {
		d      Difficulty
		lo, hi int
	}{
		{Easy, 40, 70},
		{Medium, 30, 50},
		{Hard, 20, 40},
	}
	for _, tc := range cases {
		for seed := int64(0); seed < 30; seed++ {
			l := newTestLifelines(seed)
			poll, _ := l.GetAudiencePoll(0, tc.d, [4]bool{})
			if poll[0] < tc.lo || poll[0] > tc.hi {
				t.Fatalf("%s seed %d: correct %d outside [%d,%d]",
					tc.d, seed, poll[0], tc.lo, tc.hi)
			}
		}
	}
}

// Scenario: 50:50 first, then the audience poll over the two survivors.
func TestAudienceAfterFiftyFifty(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		l := newTestLifelines(seed)
		order, _ := l.ApplyFiftyFifty(2)
		var eliminated [4]bool
		eliminated[order[0]] = true
		eliminated[order[1]] = true

		poll, ok := l.GetAudiencePoll(2, Hard, eliminated)
		if !ok {
			t.Fatal("poll rejected")
		}
		if poll[2] < 55 || poll[2] > 75 {
			t.Fatalf("seed %d: correct %d outside [55,75]", seed, poll[2])
		}
		sum := 0
		for i, p := range poll {
			if eliminated[i] && p != 0 {
				t.Fatalf("seed %d: eliminated option %d polls %d", seed, i, p)
			}
			sum += p
		}
		if sum != 100 {
			t.Fatalf("seed %d: poll sums to %d", seed, sum)
		}
	}
}

func TestPhoneResultValidIndex(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		l := newTestLifelines(seed)
		result, ok := l.GetPhoneResult(3, Medium, [4]bool{})
		if !ok {
			t.Fatal("phone rejected")
		}
		if result.Index < 0 || result.Index > 3 {
			t.Fatalf("seed %d: index %d out of range", seed, result.Index)
		}
		if result.IsCorrect != (result.Index == 3) {
			t.Fatalf("seed %d: IsCorrect inconsistent with index", seed)
		}
	}
}

func TestPhoneAvoidsEliminated(t *testing.T) {
	eliminated := [4]bool{false, true, false, true}
	for seed := int64(0); seed < 200; seed++ {
		l := newTestLifelines(seed)
		result, _ := l.GetPhoneResult(0, Hard, eliminated)
		if !result.IsCorrect && eliminated[result.Index] {
			t.Fatalf("seed %d: friend suggested eliminated option %d", seed, result.Index)
		}
	}
}

// The friend on a hard question is right about 40% of the time
// (0.8 x 0.5 multiplier), and when right is usually confident.
func TestPhoneAccuracyOnHardQuestions(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))
	const trials = 10000

	correct := 0
	highGivenCorrect := 0
	for i := 0; i < trials; i++ {
		l := NewLifelines(rng)
		result, ok := l.GetPhoneResult(1, Hard, [4]bool{})
		if !ok {
			t.Fatal("phone rejected")
		}
		if result.IsCorrect {
			correct++
			if result.Confidence == High {
				highGivenCorrect++
			}
		}
	}

	if correct < 3800 || correct > 4200 {
		t.Errorf("correct suggestions: got %d, want 4000 +/- 200", correct)
	}
	// High confidence on a correct hard answer fires at 0.5 x 0.5 = 25%.
	ratio := float64(highGivenCorrect) / float64(correct)
	if ratio < 0.20 || ratio > 0.30 {
		t.Errorf("high confidence given correct: got %.2f, want ~0.25", ratio)
	}
}

// On easy questions the friend is right 80% of the time and, when right,
// confident more often than not.
func TestPhoneConfidenceOnEasyQuestions(t *testing.T) {
	rng := rand.New(rand.NewSource(4321))
	const trials = 10000

	correct := 0
	highGivenCorrect := 0
	for i := 0; i < trials; i++ {
		l := NewLifelines(rng)
		result, _ := l.GetPhoneResult(0, Easy, [4]bool{})
		if result.IsCorrect {
			correct++
			if result.Confidence == High {
				highGivenCorrect++
			}
		}
	}

	if correct < 7700 || correct > 8300 {
		t.Errorf("correct suggestions: got %d, want ~8000", correct)
	}
	if ratio := float64(highGivenCorrect) / float64(correct); ratio <= 0.40 {
		t.Errorf("high confidence given correct: got %.2f, want > 0.40", ratio)
	}
}
