package generator

import (
	"context"
	"strings"
)

// MockLLM is a placeholder client for local runs without an API key. It
// echoes the email content back with a canned preamble.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	var sb strings.Builder
	sb.WriteString("Thanks for your email.\n\n")
	sb.WriteString("(mock reply; instruction was: ")
	sb.WriteString(prompt.System)
	sb.WriteString(")\n")
	return sb.String(), nil
}
