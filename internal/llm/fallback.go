package llm

import (
	"strings"

	"interview-service/internal/models"
)

// Fallback is the deterministic rule-based responder used when the provider
// is unavailable. It inspects the last user message for shallow signals and
// returns an interviewer-shaped reply.
func Fallback(messages []models.Message) string {
	var lastUserMsg string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == models.RoleUser {
			lastUserMsg = messages[i].Content
			break
		}
	}

	lower := strings.ToLower(lastUserMsg)

	if strings.Contains(lastUserMsg, "```") || strings.Contains(lower, "solution") {
		return "Thanks for sharing your solution. Let me review this. Can you walk me through your approach and explain the time complexity?"
	}
	if strings.Contains(lower, "hint") {
		return "Think about what data structure would give you O(1) lookup time. What operations do you need to perform efficiently?"
	}
	if strings.Contains(lastUserMsg, "?") {
		return "That's a good question. Let me clarify: focus on the core algorithm first, then we can optimize. What's your initial approach?"
	}
	return "I see what you're thinking. Could you elaborate on that approach? What would be the time and space complexity?"
}
