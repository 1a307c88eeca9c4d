package generator

import "context"

// LLMClient abstracts the hosted model service so the orchestrator and the
// UI can be exercised against a mock.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings carries the configuration a concrete client is built from.
type LLMSettings struct {
	Model   string
	APIKey  string
	BaseURL string
}
