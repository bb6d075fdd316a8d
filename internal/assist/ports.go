package assist

import "context"

// ChatMessage is one prior turn supplied by the caller. History is
// owned by the client: it arrives on every request and is never stored.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type AskRequest struct {
	Query   string
	Lang    string
	History []ChatMessage
}

// Answer is the assistant's reply. Fallback marks text served from the
// local scheme knowledge base instead of the provider.
type Answer struct {
	Response string
	Fallback bool
}

// Service orchestrates one question end to end.
type Service interface {
	Ask(ctx context.Context, req AskRequest) (Answer, error)
}
