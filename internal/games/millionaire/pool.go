package millionaire

import (
	_ "embed"
	"math/rand"
)

//go:embed questions.json
var defaultQuestions []byte

// Pool holds the loaded questions and hands them out per prize level without
// repeats. It owns the RNG used for selection and answer shuffling.
type Pool struct {
	rng       *rand.Rand
	questions []Question
}

// NewPool creates an empty pool with its own seeded RNG.
func NewPool(seed int64) *Pool {
	return &Pool{rng: rand.New(rand.NewSource(seed))}
}

// LoadQuestions replaces the pool contents from a JSON file.
func (p *Pool) LoadQuestions(path string) error {
	questions, err := LoadQuestionFile(path)
	if err != nil {
		return err
	}
	p.questions = questions
	return nil
}

// LoadDefaults loads the built-in question set compiled into the binary.
func (p *Pool) LoadDefaults() error {
	questions, err := ParseQuestions(defaultQuestions)
	if err != nil {
		return err
	}
	p.questions = questions
	return nil
}

// Len returns the number of loaded questions.
func (p *Pool) Len() int { return len(p.questions) }

// ResetForNewGame clears the used flag on every question.
func (p *Pool) ResetForNewGame() {
	for i := range p.questions {
		p.questions[i].Used = false
	}
}

// NextQuestion picks an unused question for the given prize level: first from
// the level's difficulty band, falling back to any unused question, and nil
// when the pool is exhausted. The returned question is marked used.
func (p *Pool) NextQuestion(level int) *Question {
	difficulty := DifficultyForLevel(level)

	var candidates []int
	for i := range p.questions {
		if !p.questions[i].Used && p.questions[i].Difficulty == difficulty {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		for i := range p.questions {
			if !p.questions[i].Used {
				candidates = append(candidates, i)
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	q := &p.questions[candidates[p.rng.Intn(len(candidates))]]
	q.Used = true
	return q
}

// ShuffleAnswers permutes a question's four options in place with
// Fisher-Yates, keeping CorrectIndex pointing at the same answer text. The
// returned permutation maps each final position to the option's original
// slot, so UnshuffleAnswers can restore the question exactly.
func (p *Pool) ShuffleAnswers(q *Question) [4]int {
	perm := [4]int{0, 1, 2, 3}
	for i := 3; i > 0; i-- {
		j := p.rng.Intn(i + 1)
		q.Options[i], q.Options[j] = q.Options[j], q.Options[i]
		perm[i], perm[j] = perm[j], perm[i]
		switch q.CorrectIndex {
		case i:
			q.CorrectIndex = j
		case j:
			q.CorrectIndex = i
		}
	}
	return perm
}

// UnshuffleAnswers reverses a ShuffleAnswers call using its permutation.
func UnshuffleAnswers(q *Question, perm [4]int) {
	var options [4]string
	for pos, orig := range perm {
		options[orig] = q.Options[pos]
	}
	q.Options = options
	q.CorrectIndex = perm[q.CorrectIndex]
}
