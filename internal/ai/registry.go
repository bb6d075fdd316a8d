package ai

import (
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Provider is one resolved upstream configuration. All supported
// providers speak the OpenAI-compatible chat completions dialect.
type Provider struct {
	ID    string
	URL   string
	Model string
	Key   string
	Auth  func(key string) string // builds the Authorization header value
}

func bearer(key string) string { return "Bearer " + key }

var catalog = map[string]Provider{
	"groq": {
		ID:    "groq",
		URL:   "https://api.groq.com/openai/v1/chat/completions",
		Model: "llama-3.1-8b-instant",
		Auth:  bearer,
	},
	"openai": {
		ID:    "openai",
		URL:   "https://api.openai.com/v1/chat/completions",
		Model: openai.GPT4oMini,
		Auth:  bearer,
	},
	"openrouter": {
		ID:    "openrouter",
		URL:   "https://openrouter.ai/api/v1/chat/completions",
		Model: "meta-llama/llama-3.1-8b-instruct:free",
		Auth:  bearer,
	},
	"together": {
		ID:    "together",
		URL:   "https://api.together.xyz/v1/chat/completions",
		Model: "meta-llama/Meta-Llama-3.1-8B-Instruct-Turbo",
		Auth:  bearer,
	},
}

// Resolve looks the identifier up in the catalog and applies the model
// override and credential. Unknown identifiers return ok=false together
// with a Provider that still echoes the requested id, model and key, so
// callers can report on the selection either way.
func Resolve(id, model, key string) (Provider, bool) {
	lid := strings.ToLower(strings.TrimSpace(id))
	p, ok := catalog[lid]
	if !ok {
		return Provider{ID: lid, Model: model, Key: key, Auth: bearer}, false
	}
	if model != "" {
		p.Model = model
	}
	p.Key = key
	return p, true
}
