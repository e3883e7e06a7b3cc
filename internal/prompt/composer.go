package prompt

import (
	"fmt"
	"strings"

	"interview-service/internal/models"
)

// Persona builds the system message establishing the interviewer identity for
// a round. Empty required fields leave their placeholder in place rather than
// failing; a visible placeholder beats a dropped message.
func Persona(round models.Round, interviewer models.Interviewer, company string) models.Message {
	template, ok := personaTemplates[round]
	if !ok {
		template = personaTemplates[models.RoundDSA]
	}

	content := template
	if interviewer.Name != "" {
		content = strings.ReplaceAll(content, "{INTERVIEWER_NAME}", interviewer.Name)
	}
	if company != "" {
		content = strings.ReplaceAll(content, "{COMPANY}", company)
	}
	if interviewer.Personality != "" {
		content = strings.ReplaceAll(content, "{PERSONALITY}", interviewer.Personality)
	}

	return models.Message{Role: models.RoleSystem, Content: content}
}

// Welcome builds the interviewer's opening message.
func Welcome(interviewer models.Interviewer, company string) string {
	return fmt.Sprintf(`Hi! I'm %s, I'll be your interviewer today for this %s interview.

Let me walk you through what we'll cover in the next 90 minutes:

**🔷 DSA Coding Round (45 min):** Two algorithm problems - I'll ask you to code solutions
**🔷 Technical Discussion (20 min):** System design and CS fundamentals
**🔷 Behavioral Round (25 min):** Your experiences and leadership stories

Feel free to think out loud, ask clarifying questions anytime, or request hints if you're stuck. I'm here to help you do your best!

Ready to start with the first coding problem?`, interviewer.Name, company)
}

// ClarifyInstruction steers one completion call answering a clarification.
func ClarifyInstruction() string {
	return "Answer their clarification briefly (1-2 sentences). Be helpful but don't give away the solution."
}

// HintInstruction escalates specificity with the hint level: strategic, then
// implementation-specific, then pseudocode-level with an escalation nudge.
func HintInstruction(level int, questionTitle string) string {
	var instruction string
	switch {
	case level <= 1:
		instruction = "Give a strategic hint about the approach/algorithm to use. Don't reveal implementation details. Keep it to 2 sentences."
	case level == 2:
		instruction = "Give a more specific hint about implementation. You can mention a specific data structure. Keep it to 2 sentences."
	default:
		instruction = "Give a detailed hint with pseudocode structure. Suggest they can ask for help if still stuck. 2-3 sentences."
	}
	if questionTitle == "" {
		questionTitle = "coding problem"
	}
	return fmt.Sprintf("%s Current problem: %s", instruction, questionTitle)
}

// ReviewInstruction picks the transient follow-up instruction for an answer,
// by round and submission kind. The closing phrases double as the transition
// signal the orchestrator scans for.
func ReviewInstruction(round models.Round, isCode bool) string {
	if isCode {
		return `Review their code briefly (2 sentences). Ask ONE follow-up about complexity or edge cases. Then say "Good work. Let's move to the next problem." to transition.`
	}
	if round == models.RoundTheoretical {
		return `Acknowledge their answer (1 sentence). Ask ONE thoughtful follow-up OR say "Let me ask about another topic." to transition.`
	}
	return `Show empathy and understanding (1 sentence). Ask ONE follow-up like "What did you learn?" OR say "Thanks for sharing. Let me ask another question." to transition.`
}

// WithInstruction assembles the ephemeral outbound message list for one
// completion call: retained history, the new user turn, then the steering
// instruction. The retained history is never mutated, so no strip step can be
// forgotten.
func WithInstruction(history []models.Message, userTurn, instruction string) []models.Message {
	outbound := make([]models.Message, 0, len(history)+2)
	outbound = append(outbound, history...)
	if userTurn != "" {
		outbound = append(outbound, models.Message{Role: models.RoleUser, Content: userTurn})
	}
	outbound = append(outbound, models.Message{Role: models.RoleSystem, Content: instruction})
	return outbound
}

// FeedbackStats carries the locally computed numbers interpolated into the
// one-shot feedback request.
type FeedbackStats struct {
	DurationMinutes   int
	DSAProgress       models.RoundProgress
	TheoryProgress    models.RoundProgress
	HRProgress        models.RoundProgress
	HintsUsed         int
	CodeSubmissions   int
	SuccessfulRuns    int
	AvgSecondsPerTask int
	Progression       []models.Difficulty
}

// FeedbackMessages builds the dedicated one-shot completion request for final
// feedback. It does not reuse the retained conversation history.
func FeedbackMessages(interviewer models.Interviewer, company string, stats FeedbackStats) []models.Message {
	progression := make([]string, 0, len(stats.Progression))
	for _, d := range stats.Progression {
		progression = append(progression, string(d))
	}

	return []models.Message{
		{
			Role:    models.RoleSystem,
			Content: fmt.Sprintf("You are %s from %s. Provide detailed, constructive interview feedback.", interviewer.Name, company),
		},
		{
			Role: models.RoleUser,
			Content: fmt.Sprintf(`Provide final interview feedback.

**Interview Stats:**
- Duration: %d minutes
- Company: %s
- DSA Problems: %s
- Technical Questions: %s
- Behavioral Questions: %s
- Hints Used: %d
- Code Submissions: %d
- Successful Executions: %d
- Average Time per Problem: %ds
- Difficulty Progression: %s

**Format your feedback as:**

**Overall Assessment:** (2-3 sentences summary)

**Technical Skills:**
- Coding ability: (specific observation)
- Problem-solving approach: (specific observation)
- Complexity analysis: (specific observation)

**Communication:**
- Clarity of explanation: (specific observation)
- Questions asked: (quality assessment)

**Strengths:**
1. [Specific strength with example]
2. [Specific strength with example]
3. [Specific strength with example]

**Areas for Improvement:**
1. [Specific area with actionable advice]
2. [Specific area with actionable advice]
3. [Specific area with actionable advice]

**Recommendation:** [Strong Hire / Hire / Maybe / No Hire]
**Reasoning:** (2 sentences explaining the recommendation)

**Next Steps:**
1. [Specific action item]
2. [Specific action item]`,
				stats.DurationMinutes, company,
				stats.DSAProgress, stats.TheoryProgress, stats.HRProgress,
				stats.HintsUsed, stats.CodeSubmissions, stats.SuccessfulRuns,
				stats.AvgSecondsPerTask, strings.Join(progression, " → ")),
		},
	}
}
