package config

import (
	_ "embed"
)

//go:embed defaults/gems.yaml
var defaultGemsYAML []byte

//go:embed defaults/quiz.yaml
var defaultQuizYAML []byte

// GetDefaultYAML returns the embedded default YAML for a plugin family.
func GetDefaultYAML(pluginID string) []byte {
	switch pluginID {
	case "gems":
		return defaultGemsYAML
	case "millionaire":
		return defaultQuizYAML
	default:
		return nil
	}
}
