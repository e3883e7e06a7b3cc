package catalog

import (
	"fmt"
	"math/rand"
	"strings"

	"interview-service/internal/models"
)

// DefaultCompany is used when the requested company has no bank.
const DefaultCompany = "Google"

// FallbackPrompt is returned when a round bucket is completely empty.
const FallbackPrompt = "Tell me about your experience with algorithms and data structures."

// Select picks a question for the company/round/difficulty, avoiding entries
// whose identity already appears in exclude. It has no side effects; the
// caller records the returned question into the session's used list.
//
// Fallback chain: unknown company -> default bank; missing dsa difficulty
// bucket -> medium -> empty; exclusion emptying the pool -> first unfiltered
// entry (repeats beat nothing); empty bucket -> generic prompt.
func Select(company string, round models.Round, difficulty models.Difficulty, exclude []models.Question) models.Question {
	bank, ok := questionBank[company]
	if !ok {
		bank = questionBank[DefaultCompany]
	}

	var pool []models.Question
	if round == models.RoundDSA {
		pool = bank.DSA[difficulty]
		if len(pool) == 0 {
			pool = bank.DSA[models.DifficultyMedium]
		}
	} else if round == models.RoundTheoretical {
		pool = prompts(bank.Theoretical)
	} else {
		pool = prompts(bank.HR)
	}

	if len(pool) == 0 {
		return models.Question{Text: FallbackPrompt}
	}

	used := make(map[string]bool, len(exclude))
	for _, q := range exclude {
		used[q.Identity()] = true
	}

	available := make([]models.Question, 0, len(pool))
	for _, q := range pool {
		if !used[q.Identity()] {
			available = append(available, q)
		}
	}

	if len(available) == 0 {
		return pool[0]
	}
	return available[rand.Intn(len(available))]
}

func prompts(texts []string) []models.Question {
	qs := make([]models.Question, 0, len(texts))
	for _, text := range texts {
		qs = append(qs, models.Question{Text: text})
	}
	return qs
}

// FormatQuestion renders a question for display: prompts pass through,
// structured problems get the LeetCode-style markdown layout.
func FormatQuestion(q models.Question) string {
	if q.IsPrompt() {
		return q.Text
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (%s)\n\n", q.Title, q.Difficulty)
	b.WriteString(q.Description)
	b.WriteString("\n\n")

	if len(q.Examples) > 0 {
		b.WriteString("**Examples:**\n\n")
		for i, ex := range q.Examples {
			fmt.Fprintf(&b, "Example %d:\n", i+1)
			fmt.Fprintf(&b, "Input: %s\n", ex.Input)
			fmt.Fprintf(&b, "Output: %s\n", ex.Output)
			if ex.Explanation != "" {
				fmt.Fprintf(&b, "Explanation: %s\n", ex.Explanation)
			}
			b.WriteString("\n")
		}
	}

	if len(q.Constraints) > 0 {
		b.WriteString("**Constraints:**\n")
		for _, c := range q.Constraints {
			fmt.Fprintf(&b, "• %s\n", c)
		}
		b.WriteString("\n")
	}

	if q.FollowUp != "" {
		fmt.Fprintf(&b, "**Follow-up:** %s", q.FollowUp)
	}

	return b.String()
}
