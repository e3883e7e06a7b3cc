package adaptive

import (
	"strings"

	"interview-service/internal/models"
)

// Config holds the scoring and threshold table for difficulty adjustment.
type Config struct {
	// Window is how many of the most recent user turns are considered.
	Window int

	PositiveTerms []string
	NegativeTerms []string

	PositiveWeight int
	NegativeWeight int

	// One-step transition thresholds. Up-thresholds are intentionally lower
	// than the down-thresholds' magnitude: escalation wins unless struggling
	// signals are strong and repeated.
	EasyToMedium int
	MediumToHard int
	HardToMedium int
	MediumToEasy int
}

// DefaultConfig returns the stock heuristic tuning.
func DefaultConfig() *Config {
	return &Config{
		Window: 10,
		PositiveTerms: []string{
			"optimize", "complexity", "efficient", "trade-off", "edge case",
			"time complexity", "space complexity", "algorithm", "solution",
		},
		NegativeTerms: []string{
			"stuck", "confused", "not sure", "don't know", "help", "hint", "struggling",
		},
		PositiveWeight: 2,
		NegativeWeight: -3,
		EasyToMedium:   4,
		MediumToHard:   6,
		HardToMedium:   -5,
		MediumToEasy:   -8,
	}
}

// Assessor maps recent conversation signals to a difficulty decision.
type Assessor struct {
	config *Config
}

// NewAssessor creates an assessor; a nil config uses the defaults.
func NewAssessor(config *Config) *Assessor {
	if config == nil {
		config = DefaultConfig()
	}
	return &Assessor{config: config}
}

// Assess scores the recent user turns and returns the next difficulty.
// The result never differs from current by more than one ordered step.
func (a *Assessor) Assess(history []models.Message, current models.Difficulty) models.Difficulty {
	score := a.Score(history)

	switch {
	case score >= a.config.EasyToMedium && current == models.DifficultyEasy:
		return models.DifficultyMedium
	case score >= a.config.MediumToHard && current == models.DifficultyMedium:
		return models.DifficultyHard
	case score <= a.config.HardToMedium && current == models.DifficultyHard:
		return models.DifficultyMedium
	case score <= a.config.MediumToEasy && current == models.DifficultyMedium:
		return models.DifficultyEasy
	}
	return current
}

// Score computes the keyword score over the trailing window of user turns.
// Each term contributes once if present anywhere in the window text.
func (a *Assessor) Score(history []models.Message) int {
	recent := make([]string, 0, a.config.Window)
	for i := len(history) - 1; i >= 0 && len(recent) < a.config.Window; i-- {
		if history[i].Role == models.RoleUser {
			recent = append(recent, history[i].Content)
		}
	}
	text := strings.ToLower(strings.Join(recent, " "))

	score := 0
	for _, term := range a.config.PositiveTerms {
		if strings.Contains(text, term) {
			score += a.config.PositiveWeight
		}
	}
	for _, term := range a.config.NegativeTerms {
		if strings.Contains(text, term) {
			score += a.config.NegativeWeight
		}
	}
	return score
}
