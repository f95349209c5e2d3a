package chat

import (
	"fmt"

	"github.com/Pkra99/persona-ai/internal/llm"
)

// MaxContextTurns caps the history a client may attach to a request. The
// client is expected to trim to 10; the server accepts a little slack.
const MaxContextTurns = 12

// Turn is one prior exchange in the conversation, as supplied by the client.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the body of POST /api/chat. PersonaID selects a preset persona;
// PersonaName overrides the displayed name either way.
type Request struct {
	PersonaID   string `json:"personaId"`
	PersonaName string `json:"personaName"`
	UserMessage string `json:"userMessage"`
	Context     []Turn `json:"context"`
}

// ValidationError names the request field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validate checks the request against the API contract. It is a pure
// function of the request and reports the first offending field.
func (r *Request) Validate() error {
	if len(r.UserMessage) < 1 {
		return &ValidationError{Field: "userMessage", Reason: "must not be empty"}
	}
	if len(r.Context) > MaxContextTurns {
		return &ValidationError{
			Field:  "context",
			Reason: fmt.Sprintf("must not exceed %d turns, got %d", MaxContextTurns, len(r.Context)),
		}
	}
	for i, turn := range r.Context {
		if turn.Role != llm.RoleUser && turn.Role != llm.RoleAssistant {
			return &ValidationError{
				Field:  fmt.Sprintf("context[%d].role", i),
				Reason: fmt.Sprintf("must be %q or %q", llm.RoleUser, llm.RoleAssistant),
			}
		}
	}
	return nil
}
