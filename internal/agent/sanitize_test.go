package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodfoods/goodfoods/internal/core"
)

func toolCall(id string) core.ToolCall {
	c := core.ToolCall{ID: id, Type: "function"}
	c.Function.Name = "book_table"
	c.Function.Arguments = "{}"
	return c
}

func TestSanitizeHistory_DropsDanglingToolCall(t *testing.T) {
	history := []core.Message{
		{Role: "user", Content: "book me a table"},
		{Role: "assistant", Content: "on it", ToolCalls: []core.ToolCall{toolCall("call_1")}},
		{Role: "user", Content: "hello?"},
	}
	clean := SanitizeHistory(history)
	require.Len(t, clean, 2)
	assert.Equal(t, "user", clean[0].Role)
	assert.Equal(t, "hello?", clean[1].Content)
}

func TestSanitizeHistory_DropsTrailingToolCall(t *testing.T) {
	history := []core.Message{
		{Role: "user", Content: "book me a table"},
		{Role: "assistant", ToolCalls: []core.ToolCall{toolCall("call_1")}},
	}
	clean := SanitizeHistory(history)
	require.Len(t, clean, 1)
	assert.Equal(t, "user", clean[0].Role)
}

func TestSanitizeHistory_DropsMismatchedToolResult(t *testing.T) {
	// The next message is role tool but answers a different call id.
	history := []core.Message{
		{Role: "assistant", ToolCalls: []core.ToolCall{toolCall("call_1")}},
		{Role: "tool", Content: "{}", ToolCallID: "call_other"},
	}
	clean := SanitizeHistory(history)
	require.Len(t, clean, 1)
	assert.Equal(t, "tool", clean[0].Role)
}

func TestSanitizeHistory_KeepsAnsweredToolCall(t *testing.T) {
	history := []core.Message{
		{Role: "user", Content: "any italian places?"},
		{Role: "assistant", Content: "checking", ToolCalls: []core.ToolCall{toolCall("call_1")}},
		{Role: "tool", Content: `{"restaurants":[]}`, ToolCallID: "call_1"},
		{Role: "assistant", Content: "none found"},
	}
	clean := SanitizeHistory(history)
	assert.Equal(t, history, clean)
}

func TestSanitizeHistory_Idempotent(t *testing.T) {
	history := []core.Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant", ToolCalls: []core.ToolCall{toolCall("call_1")}},
		{Role: "assistant", Content: "plain reply"},
		{Role: "assistant", ToolCalls: []core.ToolCall{toolCall("call_2")}},
		{Role: "tool", Content: "{}", ToolCallID: "call_2"},
	}
	once := SanitizeHistory(history)
	twice := SanitizeHistory(once)
	assert.Equal(t, once, twice)
}

func TestSanitizeHistory_PlainMessagesUntouched(t *testing.T) {
	history := []core.Message{
		{Role: "system", Content: "be nice"},
		{Role: "user", Content: "table for 4"},
		{Role: "assistant", Content: "which city?"},
	}
	assert.Equal(t, history, SanitizeHistory(history))
}
