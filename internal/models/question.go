package models

// Example is one worked input/output pair of a coding problem.
type Example struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}

// Question is either a free-text prompt (theoretical/hr rounds) or a
// structured coding problem. Catalog entries are immutable; the orchestrator
// only copies them into used-questions and conversation text.
type Question struct {
	Title       string    `json:"title,omitempty"`
	Difficulty  string    `json:"difficulty,omitempty"`
	Description string    `json:"description,omitempty"`
	Examples    []Example `json:"examples,omitempty"`
	Constraints []string  `json:"constraints,omitempty"`
	FollowUp    string    `json:"follow_up,omitempty"`
	Hints       []string  `json:"hints,omitempty"`

	// Text holds the whole prompt for free-text questions.
	Text string `json:"text,omitempty"`
}

// IsPrompt reports whether the question is a plain free-text prompt.
func (q Question) IsPrompt() bool {
	return q.Text != ""
}

// Identity is the key used for repeat-avoidance: the title for structured
// problems, the full text for prompts.
func (q Question) Identity() string {
	if q.Title != "" {
		return q.Title
	}
	return q.Text
}
