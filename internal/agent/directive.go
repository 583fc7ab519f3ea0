package agent

import (
	"encoding/json"
	"strings"

	"github.com/goodfoods/goodfoods/internal/core"
)

// DetectToolCall scans a model reply for the fixed wire grammar:
//
//	TOOL: tool_name
//	ARGS: { ... }
//
// The name runs to end of line; the ARGS JSON object extends to end of
// string. At most one call per reply. Fail-open and total: a reply without
// TOOL:, or with a directive that doesn't parse, is treated as plain text
// rather than a parser error.
func DetectToolCall(text string) (core.Invocation, bool) {
	_, after, found := strings.Cut(text, "TOOL:")
	if !found {
		return core.Invocation{}, false
	}
	name := after
	if i := strings.IndexByte(name, '\n'); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return core.Invocation{}, false
	}

	_, argsText, found := strings.Cut(after, "ARGS:")
	if !found {
		return core.Invocation{}, false
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(argsText)), &args); err != nil {
		return core.Invocation{}, false
	}
	return core.Invocation{Name: name, Args: args}, true
}
