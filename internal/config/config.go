// Package config provides YAML-based configuration loading for the
// puzzle-deck platform.
package config

// GemsConfig contains host-side settings for the Gems plugin family. Rule
// constants (board size, scoring, mode timers) are fixed in the engine and
// intentionally not configurable.
type GemsConfig struct {
	Gameplay GemsGameplay `yaml:"gameplay"`
}

// GemsGameplay tunes presentation-level behavior.
type GemsGameplay struct {
	DefaultMode      string  `yaml:"default_mode"`       // classic, blitz, twist, rush, surge
	HintFlashSeconds float64 `yaml:"hint_flash_seconds"` // how long a requested hint stays lit
}

// QuizConfig contains settings for the Millionaire plugin.
type QuizConfig struct {
	Questions QuizQuestions `yaml:"questions"`
}

// QuizQuestions selects the question source.
type QuizQuestions struct {
	File string `yaml:"file"` // path to a question JSON; empty = built-in set
}

// DefaultGemsConfig returns the default Gems configuration.
func DefaultGemsConfig() GemsConfig {
	return GemsConfig{
		Gameplay: GemsGameplay{
			DefaultMode:      "classic",
			HintFlashSeconds: 3.0,
		},
	}
}

// DefaultQuizConfig returns the default Millionaire configuration.
func DefaultQuizConfig() QuizConfig {
	return QuizConfig{}
}
