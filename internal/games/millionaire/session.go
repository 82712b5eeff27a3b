package millionaire

import "math/rand"

// SessionState is one node of the quiz state machine.
type SessionState int

const (
	StateTitle SessionState = iota
	StatePlaying
	StateAnswerLocked
	StateLifelineConfirm
	StateLifelineResult
	StateWalkawayConfirm
	StateFinalResults
)

// LifelineKind names a lifeline for confirm prompts and result display.
type LifelineKind int

const (
	LifelineNone LifelineKind = iota
	LifelineFiftyFifty
	LifelinePhone
	LifelineAudience
)

// String returns the lifeline's display name.
func (k LifelineKind) String() string {
	switch k {
	case LifelineFiftyFifty:
		return "50:50"
	case LifelinePhone:
		return "Phone a Friend"
	case LifelineAudience:
		return "Ask the Audience"
	default:
		return "none"
	}
}

// Outcome records how a session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeWrong
	OutcomeTimeout
	OutcomeWalkedAway
)

// PrizeLadder is the 15-level prize table, level 0 first.
var PrizeLadder = [15]int{
	100, 200, 300, 500, 1000,
	2000, 4000, 8000, 16000, 32000,
	64000, 125000, 250000, 500000, 1000000,
}

// Safe havens: a wrong answer cannot drop winnings below the highest haven
// already passed.
var safeHavens = [2]int{4, 9}

// Session timers, in seconds.
const (
	lifelineCountdown = 30.0
	confirmMinimum    = 5.0
	revealDelay       = 3.0
)

// questionTime is the per-question countdown by difficulty band.
func questionTime(d Difficulty) float64 {
	switch d {
	case Easy:
		return 90
	case Hard:
		return 60
	default:
		return 75
	}
}

// Session drives one run up the prize ladder. It owns the per-question state
// (countdown, eliminations, lifeline results) and delegates question supply
// to the pool and lifeline math to Lifelines.
type Session struct {
	pool      *Pool
	lifelines *Lifelines
	rng       *rand.Rand

	state SessionState
	level int

	question   *Question
	eliminated [4]bool
	phone      *PhoneResult
	audience   *[4]int

	timeRemaining    float64
	confirmRemaining float64
	revealRemaining  float64

	pendingLifeline LifelineKind
	lastLifeline    LifelineKind
	lockedAnswer    int

	winnings   int
	finalPrize int
	outcome    Outcome
}

// NewSession wires a session over a loaded pool.
func NewSession(pool *Pool, seed int64) *Session {
	rng := rand.New(rand.NewSource(seed))
	return &Session{
		pool:      pool,
		lifelines: NewLifelines(rng),
		rng:       rng,
		state:     StateTitle,
	}
}

// Start begins a fresh run: pool reset, lifelines restored, first question up.
func (s *Session) Start() {
	s.pool.ResetForNewGame()
	s.lifelines.Reset()
	s.level = 0
	s.winnings = 0
	s.finalPrize = 0
	s.outcome = OutcomeNone
	s.advanceQuestion()
}

// advanceQuestion draws the next question and resets per-question state.
func (s *Session) advanceQuestion() {
	s.question = s.pool.NextQuestion(s.level)
	if s.question == nil {
		// Pool exhausted: the run ends with current winnings intact.
		s.finalPrize = s.winnings
		s.outcome = OutcomeWalkedAway
		s.state = StateFinalResults
		return
	}
	s.pool.ShuffleAnswers(s.question)

	s.eliminated = [4]bool{}
	s.phone = nil
	s.audience = nil
	s.lastLifeline = LifelineNone
	s.lockedAnswer = -1
	s.timeRemaining = questionTime(s.question.Difficulty)
	s.state = StatePlaying
}

// Tick advances the session clocks by dt seconds. The question countdown runs
// only while playing; hitting zero counts as a wrong answer. Confirm windows
// auto-confirm on expiry.
func (s *Session) Tick(dt float64) {
	if dt <= 0 {
		return
	}

	switch s.state {
	case StatePlaying:
		s.timeRemaining -= dt
		if s.timeRemaining <= 0 {
			s.timeRemaining = 0
			s.endRun(OutcomeTimeout)
		}

	case StateLifelineConfirm, StateWalkawayConfirm:
		s.confirmRemaining -= dt
		if s.confirmRemaining <= 0 {
			s.Confirm()
		}

	case StateAnswerLocked:
		s.revealRemaining -= dt
		if s.revealRemaining <= 0 {
			s.Reveal()
		}
	}
}

// LockAnswer commits to option i and enters the reveal delay. Eliminated
// options cannot be locked.
func (s *Session) LockAnswer(i int) bool {
	if s.state != StatePlaying || i < 0 || i > 3 || s.eliminated[i] {
		return false
	}
	s.lockedAnswer = i
	s.revealRemaining = revealDelay
	s.state = StateAnswerLocked
	return true
}

// Reveal resolves a locked answer immediately.
func (s *Session) Reveal() {
	if s.state != StateAnswerLocked {
		return
	}
	if s.lockedAnswer == s.question.CorrectIndex {
		s.winnings = PrizeLadder[s.level]
		s.level++
		if s.level >= len(PrizeLadder) {
			s.finalPrize = s.winnings
			s.outcome = OutcomeWon
			s.state = StateFinalResults
			return
		}
		s.advanceQuestion()
		return
	}
	s.endRun(OutcomeWrong)
}

// endRun finishes the session with the safe-haven prize for wrong answers
// and timeouts.
func (s *Session) endRun(outcome Outcome) {
	prize := 0
	for _, haven := range safeHavens {
		if s.level > haven {
			prize = PrizeLadder[haven]
		}
	}
	s.finalPrize = prize
	s.outcome = outcome
	s.state = StateFinalResults
}

// RequestLifeline opens the confirm prompt for an available lifeline.
func (s *Session) RequestLifeline(kind LifelineKind) bool {
	if s.state != StatePlaying || !s.lifelineAvailable(kind) {
		return false
	}
	s.pendingLifeline = kind
	s.openConfirm(StateLifelineConfirm)
	return true
}

// RequestWalkAway opens the walk-away confirm prompt.
func (s *Session) RequestWalkAway() bool {
	if s.state != StatePlaying {
		return false
	}
	s.openConfirm(StateWalkawayConfirm)
	return true
}

// openConfirm freezes the question clock and arms the confirm window with
// whatever time remains, floored at the minimum. Because the clock does not
// run while confirming, cancelling returns the elapsed window to the player.
func (s *Session) openConfirm(state SessionState) {
	s.confirmRemaining = s.timeRemaining
	if s.confirmRemaining < confirmMinimum {
		s.confirmRemaining = confirmMinimum
	}
	s.state = state
}

// Confirm resolves the active confirm prompt.
func (s *Session) Confirm() {
	switch s.state {
	case StateLifelineConfirm:
		s.engageLifeline(s.pendingLifeline)
	case StateWalkawayConfirm:
		s.finalPrize = s.winnings
		s.outcome = OutcomeWalkedAway
		s.state = StateFinalResults
	}
}

// Cancel dismisses the active confirm or lifeline-result prompt.
func (s *Session) Cancel() {
	switch s.state {
	case StateLifelineConfirm, StateWalkawayConfirm:
		s.pendingLifeline = LifelineNone
		s.state = StatePlaying
	case StateLifelineResult:
		s.Acknowledge()
	}
}

// engageLifeline executes a confirmed lifeline and shows its result. The
// question countdown restarts at the lifeline allowance.
func (s *Session) engageLifeline(kind LifelineKind) {
	q := s.question
	applied := false

	switch kind {
	case LifelineFiftyFifty:
		if order, ok := s.lifelines.ApplyFiftyFifty(q.CorrectIndex); ok {
			s.eliminated[order[0]] = true
			s.eliminated[order[1]] = true
			applied = true
		}
	case LifelinePhone:
		if result, ok := s.lifelines.GetPhoneResult(q.CorrectIndex, q.Difficulty, s.eliminated); ok {
			s.phone = &result
			applied = true
		}
	case LifelineAudience:
		if poll, ok := s.lifelines.GetAudiencePoll(q.CorrectIndex, q.Difficulty, s.eliminated); ok {
			s.audience = &poll
			applied = true
		}
	}

	s.pendingLifeline = LifelineNone
	if !applied {
		s.state = StatePlaying
		return
	}
	s.lastLifeline = kind
	s.timeRemaining = lifelineCountdown
	s.state = StateLifelineResult
}

// Acknowledge dismisses the lifeline result display and resumes play.
func (s *Session) Acknowledge() {
	if s.state == StateLifelineResult {
		s.state = StatePlaying
	}
}

func (s *Session) lifelineAvailable(kind LifelineKind) bool {
	switch kind {
	case LifelineFiftyFifty:
		return s.lifelines.FiftyFifty
	case LifelinePhone:
		return s.lifelines.Phone
	case LifelineAudience:
		return s.lifelines.Audience
	default:
		return false
	}
}

// Read-only accessors.

// State returns the current machine state.
func (s *Session) State() SessionState { return s.state }

// Level returns the current prize level (0..14).
func (s *Session) Level() int { return s.level }

// Question returns the question on screen, nil before Start.
func (s *Session) Question() *Question { return s.question }

// Eliminated reports which options 50:50 removed.
func (s *Session) Eliminated() [4]bool { return s.eliminated }

// Phone returns the phone-a-friend result, nil if unused this question.
func (s *Session) Phone() *PhoneResult { return s.phone }

// Audience returns the audience poll, nil if unused this question.
func (s *Session) Audience() *[4]int { return s.audience }

// TimeRemaining returns the question countdown in seconds.
func (s *Session) TimeRemaining() float64 { return s.timeRemaining }

// ConfirmRemaining returns the active confirm window in seconds.
func (s *Session) ConfirmRemaining() float64 { return s.confirmRemaining }

// PendingLifeline returns the lifeline awaiting confirmation.
func (s *Session) PendingLifeline() LifelineKind { return s.pendingLifeline }

// LastLifeline returns the lifeline whose result is on display.
func (s *Session) LastLifeline() LifelineKind { return s.lastLifeline }

// LockedAnswer returns the committed option, -1 if none.
func (s *Session) LockedAnswer() int { return s.lockedAnswer }

// Winnings returns the prize for the highest level answered correctly.
func (s *Session) Winnings() int { return s.winnings }

// FinalPrize returns the payout once the session has ended.
func (s *Session) FinalPrize() int { return s.finalPrize }

// Outcome reports how the session ended, OutcomeNone while running.
func (s *Session) Outcome() Outcome { return s.outcome }

// Lifelines exposes availability for rendering.
func (s *Session) Lifelines() *Lifelines { return s.lifelines }
