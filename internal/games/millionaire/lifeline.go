package millionaire

import "math/rand"

// Confidence grades a phone-a-friend suggestion.
type Confidence int

const (
	Low Confidence = iota
	MediumConfidence
	High
)

// String returns the confidence's display name.
func (c Confidence) String() string {
	switch c {
	case High:
		return "high"
	case MediumConfidence:
		return "medium"
	default:
		return "low"
	}
}

// PhoneResult is a phone-a-friend suggestion.
type PhoneResult struct {
	Index      int
	Confidence Confidence
	IsCorrect  bool
}

// Lifelines tracks availability of the three classic lifelines. Each apply
// method consumes its flag; calling an unavailable lifeline is rejected
// without state change.
type Lifelines struct {
	rng *rand.Rand

	FiftyFifty bool
	Phone      bool
	Audience   bool
}

// NewLifelines returns all three lifelines available.
func NewLifelines(rng *rand.Rand) *Lifelines {
	return &Lifelines{rng: rng, FiftyFifty: true, Phone: true, Audience: true}
}

// Reset re-enables all lifelines for a new game.
func (l *Lifelines) Reset() {
	l.FiftyFifty = true
	l.Phone = true
	l.Audience = true
}

// difficultyMultiplier scales the friend's accuracy.
func difficultyMultiplier(d Difficulty) float64 {
	switch d {
	case Easy:
		return 1.0
	case Medium:
		return 0.7
	case Hard:
		return 0.5
	default:
		return 0.8
	}
}

// ApplyFiftyFifty eliminates two of the three wrong options, chosen
// uniformly. Returns the elimination order for the host's reveal animation,
// or ok=false if the lifeline was already used.
func (l *Lifelines) ApplyFiftyFifty(correctIdx int) ([2]int, bool) {
	if !l.FiftyFifty {
		return [2]int{}, false
	}
	l.FiftyFifty = false

	wrong := make([]int, 0, 3)
	for i := 0; i < 4; i++ {
		if i != correctIdx {
			wrong = append(wrong, i)
		}
	}
	for i := len(wrong) - 1; i > 0; i-- {
		j := l.rng.Intn(i + 1)
		wrong[i], wrong[j] = wrong[j], wrong[i]
	}
	return [2]int{wrong[0], wrong[1]}, true
}

// GetPhoneResult simulates the friend. The friend is right with probability
// 0.8 times the difficulty multiplier; confidence skews high on correct
// suggestions and low on guesses. A wrong suggestion avoids options already
// eliminated by 50:50.
func (l *Lifelines) GetPhoneResult(correctIdx int, d Difficulty, eliminated [4]bool) (PhoneResult, bool) {
	if !l.Phone {
		return PhoneResult{}, false
	}
	l.Phone = false

	m := difficultyMultiplier(d)
	if l.rng.Float64() < 0.8*m {
		confidence := Low
		if l.rng.Float64() < 0.5*m {
			confidence = High
		} else if l.rng.Float64() < 0.85 {
			confidence = MediumConfidence
		}
		return PhoneResult{Index: correctIdx, Confidence: confidence, IsCorrect: true}, true
	}

	var wrong []int
	for i := 0; i < 4; i++ {
		if i != correctIdx && !eliminated[i] {
			wrong = append(wrong, i)
		}
	}
	if len(wrong) == 0 {
		for i := 0; i < 4; i++ {
			if i != correctIdx {
				wrong = append(wrong, i)
			}
		}
	}

	confidence := Low
	r := l.rng.Float64()
	if r < 0.15 {
		confidence = High
	} else if r < 0.50 {
		confidence = MediumConfidence
	}
	return PhoneResult{
		Index:      wrong[l.rng.Intn(len(wrong))],
		Confidence: confidence,
		IsCorrect:  false,
	}, true
}

// audienceWindow is the correct-answer percentage range per difficulty.
func audienceWindow(d Difficulty) (lo, hi int) {
	switch d {
	case Easy:
		return 40, 70
	case Hard:
		return 20, 40
	default:
		return 30, 50
	}
}

// GetAudiencePoll simulates the audience vote. The percentages always sum to
// 100 and eliminated options poll at zero. After a 50:50 the correct answer
// polls in [55, 75] and the surviving wrong option takes the complement.
func (l *Lifelines) GetAudiencePoll(correctIdx int, d Difficulty, eliminated [4]bool) ([4]int, bool) {
	if !l.Audience {
		return [4]int{}, false
	}
	l.Audience = false

	var wrong []int
	for i := 0; i < 4; i++ {
		if i != correctIdx && !eliminated[i] {
			wrong = append(wrong, i)
		}
	}

	var percentages [4]int
	if len(wrong) == 0 {
		percentages[correctIdx] = 100
		return percentages, true
	}
	if len(wrong) == 1 {
		correct := 55 + l.rng.Intn(21)
		percentages[correctIdx] = correct
		percentages[wrong[0]] = 100 - correct
		return percentages, true
	}

	lo, hi := audienceWindow(d)
	correct := lo + l.rng.Intn(hi-lo+1)
	percentages[correctIdx] = correct

	remaining := 100 - correct
	for k := len(wrong); k > 1; k-- {
		share := 1 + l.rng.Intn(remaining-(k-1))
		percentages[wrong[len(wrong)-k]] = share
		remaining -= share
	}
	percentages[wrong[len(wrong)-1]] = remaining
	return percentages, true
}
