package llm

import "context"

// Roles used in conversational turns.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one role-tagged conversational turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// LLM sends a conversation to a completion endpoint and returns the generated text.
type LLM interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}

// splitSystem separates system turns from the rest, for APIs that take the
// system instruction out of band.
func splitSystem(messages []Message) (string, []Message) {
	var system string
	rest := make([]Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == RoleSystem {
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
			continue
		}
		rest = append(rest, m)
	}
	return system, rest
}
