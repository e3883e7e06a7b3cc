package adaptive

import (
	"testing"

	"interview-service/internal/models"
)

func userTurns(contents ...string) []models.Message {
	messages := make([]models.Message, 0, len(contents))
	for _, c := range contents {
		messages = append(messages, models.Message{Role: models.RoleUser, Content: c})
	}
	return messages
}

func TestAssessTransitions(t *testing.T) {
	strong := userTurns("I would optimize the solution, the time complexity is O(n) and space complexity is O(1), handling every edge case with an efficient algorithm")
	struggling := userTurns("I'm stuck and confused, not sure what to do, I don't know, can I get a hint, still struggling")
	neutral := userTurns("let me think about this for a moment")

	tests := []struct {
		name    string
		history []models.Message
		current models.Difficulty
		want    models.Difficulty
	}{
		{"strong signals escalate easy", strong, models.DifficultyEasy, models.DifficultyMedium},
		{"strong signals escalate medium", strong, models.DifficultyMedium, models.DifficultyHard},
		{"strong signals cap at hard", strong, models.DifficultyHard, models.DifficultyHard},
		{"struggling signals lower hard", struggling, models.DifficultyHard, models.DifficultyMedium},
		{"struggling signals lower medium", struggling, models.DifficultyMedium, models.DifficultyEasy},
		{"struggling signals floor at easy", struggling, models.DifficultyEasy, models.DifficultyEasy},
		{"neutral text holds steady", neutral, models.DifficultyMedium, models.DifficultyMedium},
		{"empty history holds steady", nil, models.DifficultyMedium, models.DifficultyMedium},
	}

	assessor := NewAssessor(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := assessor.Assess(tt.history, tt.current)
			if got != tt.want {
				t.Errorf("Assess() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAssessNeverJumpsTwoSteps(t *testing.T) {
	assessor := NewAssessor(nil)
	histories := [][]models.Message{
		userTurns("optimize complexity efficient trade-off edge case algorithm solution"),
		userTurns("stuck confused not sure don't know help hint struggling"),
	}
	for _, history := range histories {
		for _, current := range []models.Difficulty{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard} {
			next := assessor.Assess(history, current)
			diff := next.Order() - current.Order()
			if diff < -1 || diff > 1 {
				t.Errorf("Assess moved %s -> %s, more than one step", current, next)
			}
		}
	}
}

func TestScorePresenceBased(t *testing.T) {
	assessor := NewAssessor(nil)

	// Repeating a term must not score it twice.
	once := assessor.Score(userTurns("the algorithm"))
	twice := assessor.Score(userTurns("the algorithm and another algorithm"))
	if once != twice {
		t.Errorf("repeated term scored differently: %d vs %d", once, twice)
	}
	if once != 2 {
		t.Errorf("Score = %d, want 2 for a single positive term", once)
	}
}

func TestScoreIgnoresAssistantTurns(t *testing.T) {
	assessor := NewAssessor(nil)
	history := []models.Message{
		{Role: models.RoleAssistant, Content: "think about the algorithm and time complexity"},
	}
	if got := assessor.Score(history); got != 0 {
		t.Errorf("Score over assistant-only history = %d, want 0", got)
	}
}

func TestScoreWindowLimitsUserTurns(t *testing.T) {
	config := DefaultConfig()
	config.Window = 2
	assessor := NewAssessor(config)

	history := userTurns("algorithm", "plain turn", "another plain turn")
	if got := assessor.Score(history); got != 0 {
		t.Errorf("Score = %d, want 0 once the positive turn falls outside the window", got)
	}
}
