package generator

import "context"

// LLMClient abstracts the chat completion backend so the pipeline can be
// swapped onto a mock.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings is the base configuration for a concrete client.
type LLMSettings struct {
	Model   string
	APIKey  string
	BaseURL string
}
