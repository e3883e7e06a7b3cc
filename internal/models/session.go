package models

import (
	"fmt"
	"time"
)

// Interviewer is the persona assigned at session creation, immutable after.
type Interviewer struct {
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	Personality string `json:"personality"`
	Company     string `json:"company_specialty,omitempty"`
}

// RoundProgress tracks how many questions of a round have been issued.
type RoundProgress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

func (p RoundProgress) String() string {
	return fmt.Sprintf("%d/%d", p.Current, p.Total)
}

// PerformanceMetrics accumulates per-session heuristic signals.
type PerformanceMetrics struct {
	HintsUsed             int          `json:"hints_used"`
	ClarificationsAsked   int          `json:"clarifications_asked"`
	CodeSubmissions       int          `json:"code_submissions"`
	SuccessfulExecutions  int          `json:"successful_executions"`
	TimePerProblemSeconds []int        `json:"time_per_problem"`
	DifficultyProgression []Difficulty `json:"difficulty_progression"`
}

// Session is one candidate's run through the interview.
type Session struct {
	ID       string `json:"id"`
	Company  string `json:"company"`
	Language string `json:"language"`

	Interviewer Interviewer `json:"interviewer"`

	ConversationHistory []Message  `json:"conversation_history"`
	UsedQuestions       []Question `json:"used_questions"`

	CurrentRound      Round                   `json:"current_round"`
	CurrentDifficulty Difficulty              `json:"current_difficulty"`
	RoundProgress     map[Round]RoundProgress `json:"round_progress"`

	Metrics PerformanceMetrics `json:"performance_metrics"`

	StartTime        time.Time `json:"start_time"`
	LastActionTime   time.Time `json:"last_action_time"`
	LastQuestionTime time.Time `json:"last_question_time"`
}

// Touch records an inbound action against the session.
func (s *Session) Touch() {
	s.LastActionTime = time.Now()
}

// Progress returns the active round's progress counter.
func (s *Session) Progress() RoundProgress {
	return s.RoundProgress[s.CurrentRound]
}

// Clone deep-copies the session so registry snapshots never alias live state.
func (s *Session) Clone() *Session {
	c := *s

	c.ConversationHistory = make([]Message, len(s.ConversationHistory))
	copy(c.ConversationHistory, s.ConversationHistory)

	c.UsedQuestions = make([]Question, len(s.UsedQuestions))
	copy(c.UsedQuestions, s.UsedQuestions)

	c.RoundProgress = make(map[Round]RoundProgress, len(s.RoundProgress))
	for round, progress := range s.RoundProgress {
		c.RoundProgress[round] = progress
	}

	c.Metrics.TimePerProblemSeconds = make([]int, len(s.Metrics.TimePerProblemSeconds))
	copy(c.Metrics.TimePerProblemSeconds, s.Metrics.TimePerProblemSeconds)

	c.Metrics.DifficultyProgression = make([]Difficulty, len(s.Metrics.DifficultyProgression))
	copy(c.Metrics.DifficultyProgression, s.Metrics.DifficultyProgression)

	return &c
}
