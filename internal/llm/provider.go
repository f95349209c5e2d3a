package llm

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of the sequence forwarded to the completion provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider is the completion gateway contract. Complete sends the message
// sequence unchanged and returns the generated reply text. An empty string
// with a nil error means the provider produced no content.
type Provider interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
