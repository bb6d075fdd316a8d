package ai

import "context"

// AI is the outbound language-model port. Implementations know nothing
// about HTTP handlers or the scheme knowledge base.
type AI interface {
	GetReply(ctx context.Context, messages []Message) (string, error)
}

// Message is the provider-neutral chat format.
type Message struct {
	Role    string // "user" | "assistant" | "system"
	Content string
}
