package core

// Message represents a chat message in the conversation transcript.
// An assistant message carrying ToolCalls must be immediately followed by a
// role=tool message whose ToolCallID matches; SanitizeHistory enforces this
// before any transcript is sent to the model.
type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// ToolCall is a single tool invocation request (OpenAI wire shape).
type ToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

// Invocation is a parsed tool directive from a model reply: tool name plus
// decoded arguments. Consumed exactly once by the executor.
type Invocation struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// Plan is the planner's per-turn read of the conversation. Produced fresh
// each turn; never persisted beyond the turn's result.
type Plan struct {
	Intent           string         `json:"intent"`
	Slots            map[string]any `json:"slots"`
	RecommendedTools []string       `json:"recommended_tools"`
	MissingSlots     []string       `json:"missing_slots,omitempty"`
	Reasoning        string         `json:"reasoning,omitempty"`
}

// TurnResult is what the orchestration loop returns to the caller.
// UsedTools is empty or holds exactly one tool name.
type TurnResult struct {
	Content   string   `json:"content"`
	Plan      Plan     `json:"plan"`
	UsedTools []string `json:"used_tools"`
}
