package core

import (
	"context"
)

// LLMClient abstracts the completion API (OpenRouter, HF Inference, mock).
// Complete sends the messages and returns the assistant reply text.
type LLMClient interface {
	Complete(ctx context.Context, messages []Message, maxTokens int) (string, error)
}

// ToolExecutor dispatches a parsed invocation against the static registry.
// The returned string is always the tool-result content: failures are
// normalized into a JSON {"error": ...} payload, never surfaced as an error.
type ToolExecutor interface {
	Execute(ctx context.Context, name string, args map[string]any) string
	Has(name string) bool
	Names() []string
}
