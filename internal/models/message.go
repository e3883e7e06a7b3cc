package models

// Role tags who authored a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single role-tagged turn in the conversation history.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
