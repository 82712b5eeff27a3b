// Package millionaire implements the quiz engine behind the "Millionaire"
// plugin: a question pool loaded from JSON, the three classic lifelines, and
// a session state machine over a 15-level prize ladder. Like the gem engine
// it is a plain value; all randomness flows through one per-pool RNG.
package millionaire

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Difficulty bands a question. Prize levels map onto bands; see
// DifficultyForLevel.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// DifficultyForLevel maps a prize level (0..14) to its question band.
func DifficultyForLevel(level int) Difficulty {
	switch {
	case level <= 4:
		return Easy
	case level <= 9:
		return Medium
	default:
		return Hard
	}
}

// Question is one quiz entry. Exactly one option index equals CorrectIndex.
type Question struct {
	ID           string
	Text         string
	Options      [4]string
	CorrectIndex int
	Difficulty   Difficulty
	Category     string
	Used         bool
}

// Loader limits. Oversized files are rejected; overlong text is truncated.
const (
	MaxQuestions   = 2000
	MaxFileSize    = 5 << 20
	maxQuestionLen = 512
	maxOptionLen   = 256
	maxCategoryLen = 64
	maxIDLen       = 16
)

type questionFile struct {
	Questions []questionEntry `json:"questions"`
}

type questionEntry struct {
	ID               string   `json:"id"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Type             string   `json:"type"`
}

// LoadQuestionFile reads and parses a question JSON file. Individual malformed
// entries are skipped; the call fails only when the file is unreadable,
// oversized, or yields zero valid questions.
func LoadQuestionFile(path string) ([]Question, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("millionaire: %w", err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("millionaire: %s exceeds %d bytes", path, MaxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("millionaire: %w", err)
	}
	return ParseQuestions(data)
}

// ParseQuestions parses question JSON from memory, applying per-entry
// validation, entity decoding, length caps and defaults. The correct answer
// lands in slot 0; call Pool.ShuffleAnswers before presenting.
func ParseQuestions(data []byte) ([]Question, error) {
	var file questionFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("millionaire: parse questions: %w", err)
	}

	questions := make([]Question, 0, len(file.Questions))
	for i, entry := range file.Questions {
		if len(questions) >= MaxQuestions {
			break
		}
		q, ok := buildQuestion(entry, i)
		if !ok {
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("millionaire: no valid questions")
	}
	return questions, nil
}

func buildQuestion(entry questionEntry, index int) (Question, bool) {
	text := truncate(DecodeEntities(strings.TrimSpace(entry.Question)), maxQuestionLen)
	correct := truncate(DecodeEntities(strings.TrimSpace(entry.CorrectAnswer)), maxOptionLen)
	if text == "" || correct == "" || len(entry.IncorrectAnswers) != 3 {
		return Question{}, false
	}

	q := Question{
		Text:         text,
		CorrectIndex: 0,
		Difficulty:   Medium,
		Category:     truncate(DecodeEntities(entry.Category), maxCategoryLen),
	}
	q.Options[0] = correct
	for i, wrong := range entry.IncorrectAnswers {
		w := truncate(DecodeEntities(strings.TrimSpace(wrong)), maxOptionLen)
		if w == "" {
			return Question{}, false
		}
		q.Options[i+1] = w
	}

	switch Difficulty(entry.Difficulty) {
	case Easy, Medium, Hard:
		q.Difficulty = Difficulty(entry.Difficulty)
	}

	q.ID = truncate(entry.ID, maxIDLen)
	if q.ID == "" {
		q.ID = "q" + strconv.Itoa(index)
	}
	return q, true
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// namedEntities covers the punctuation entities question feeds actually use.
var namedEntities = map[string]string{
	"quot":   `"`,
	"amp":    "&",
	"lt":     "<",
	"gt":     ">",
	"apos":   "'",
	"nbsp":   " ",
	"mdash":  "-",
	"hellip": "...",
}

// accentSuffixes are the accent markers in named letter entities like
// "eacute" or "Ntilde"; the entity decodes to its plain base letter.
var accentSuffixes = []string{
	"acute", "grave", "circ", "uml", "tilde", "cedil", "ring", "slash",
}

// DecodeEntities resolves the HTML entities that appear in trivia exports:
// the common named punctuation set, numeric &#N; for ASCII N, and accented
// letter entities transliterated to their base letter. Unknown entities pass
// through unchanged.
func DecodeEntities(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '&' {
			b.WriteByte(s[i])
			i++
			continue
		}
		end := strings.IndexByte(s[i:], ';')
		if end < 0 || end > 9 {
			b.WriteByte(s[i])
			i++
			continue
		}
		name := s[i+1 : i+end]
		if decoded, ok := decodeEntity(name); ok {
			b.WriteString(decoded)
		} else {
			b.WriteString(s[i : i+end+1])
		}
		i += end + 1
	}
	return b.String()
}

func decodeEntity(name string) (string, bool) {
	if v, ok := namedEntities[name]; ok {
		return v, true
	}

	if strings.HasPrefix(name, "#") {
		n, err := strconv.Atoi(name[1:])
		if err != nil || n < 0 || n >= 128 {
			return "", false
		}
		return string(rune(n)), true
	}

	for _, suffix := range accentSuffixes {
		base, found := strings.CutSuffix(name, suffix)
		if !found || len(base) != 1 {
			continue
		}
		c := base[0]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return base, true
		}
	}
	return "", false
}
