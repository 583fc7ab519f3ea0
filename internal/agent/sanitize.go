package agent

import (
	"github.com/goodfoods/goodfoods/internal/core"
)

// SanitizeHistory drops any assistant message carrying tool_calls that is
// not immediately followed by a role=tool message answering one of those
// calls. Such orphans arise when a prior turn crashed between recording the
// call and recording its result; sending them to the model is a protocol
// violation. Pure and idempotent: the loop may receive an already-sanitized
// transcript on later turns. No other message is altered or reordered.
func SanitizeHistory(messages []core.Message) []core.Message {
	clean := make([]core.Message, 0, len(messages))
	for i, msg := range messages {
		if msg.Role == "assistant" && len(msg.ToolCalls) > 0 {
			if i+1 >= len(messages) || messages[i+1].Role != "tool" || !answersCall(msg.ToolCalls, messages[i+1].ToolCallID) {
				continue
			}
		}
		clean = append(clean, msg)
	}
	return clean
}

func answersCall(calls []core.ToolCall, toolCallID string) bool {
	for _, c := range calls {
		if c.ID == toolCallID {
			return true
		}
	}
	return false
}
